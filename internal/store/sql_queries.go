package store

import (
	"encoding/json"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-qes-vault/models"
)

const passwordEntriesTable = "password_entries"

var passwordEntryColumns = []string{
	"id", "name", "username", "url", "envelope", "algorithm", "layers", "created_at", "updated_at",
}

func buildSavePasswordEntryQuery(b sq.StatementBuilderType, entry models.PasswordEntry) (string, []any, error) {
	envelope, err := json.Marshal(entry.Envelope)
	if err != nil {
		return "", nil, fmt.Errorf("%w: marshal envelope: %w", ErrBuildingSQLQuery, err)
	}

	query, args, err := b.Insert(passwordEntriesTable).
		Columns(passwordEntryColumns...).
		Values(
			entry.ID,
			entry.Name,
			entry.Username,
			entry.URL,
			string(envelope),
			entry.Algorithm,
			entry.Layers,
			entry.CreatedAt,
			entry.UpdatedAt,
		).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildGetPasswordEntryQuery(b sq.StatementBuilderType, id string) (string, []any, error) {
	query, args, err := b.Select(passwordEntryColumns...).
		From(passwordEntriesTable).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

// buildListPasswordEntriesQuery matches NameContains case-insensitively on
// both dialects.
func buildListPasswordEntriesQuery(b sq.StatementBuilderType, filter models.PasswordEntryFilter) (string, []any, error) {
	q := b.Select(passwordEntryColumns...).
		From(passwordEntriesTable).
		OrderBy("name ASC")

	if filter.NameContains != "" {
		q = q.Where(sq.Expr("LOWER(name) LIKE ?", "%"+strings.ToLower(filter.NameContains)+"%"))
	}
	if filter.Limit > 0 {
		q = q.Limit(filter.Limit)
	}

	query, args, err := q.ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildDeletePasswordEntryQuery(b sq.StatementBuilderType, id string) (string, []any, error) {
	query, args, err := b.Delete(passwordEntriesTable).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

// rowScanner is satisfied by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanPasswordEntry(row rowScanner) (models.PasswordEntry, error) {
	var (
		entry    models.PasswordEntry
		envelope string
	)

	err := row.Scan(
		&entry.ID,
		&entry.Name,
		&entry.Username,
		&entry.URL,
		&envelope,
		&entry.Algorithm,
		&entry.Layers,
		&entry.CreatedAt,
		&entry.UpdatedAt,
	)
	if err != nil {
		return models.PasswordEntry{}, err
	}

	if err = json.Unmarshal([]byte(envelope), &entry.Envelope); err != nil {
		return models.PasswordEntry{}, fmt.Errorf("decode stored envelope: %w", err)
	}
	return entry, nil
}
