package store

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/MKhiriev/go-qes-vault/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	dollarBuilder   = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
	questionBuilder = sq.StatementBuilder.PlaceholderFormat(sq.Question)
)

func TestBuildSavePasswordEntryQuery(t *testing.T) {
	layers := 2
	now := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	entry := models.PasswordEntry{
		ID:        "id-1",
		Name:      "mail",
		Envelope:  models.Envelope{Ciphertext: "c", IV: "i", Salt: "s", Algorithm: "QES-512", Layers: &layers},
		Algorithm: "QES-512",
		Layers:    2,
		CreatedAt: now,
		UpdatedAt: now,
	}

	t.Run("postgres placeholders", func(t *testing.T) {
		query, args, err := buildSavePasswordEntryQuery(dollarBuilder, entry)
		require.NoError(t, err)

		assert.True(t, strings.HasPrefix(query, "INSERT INTO password_entries"))
		assert.Contains(t, query, "$1")
		assert.Contains(t, query, "$9")
		require.Len(t, args, 9)
		assert.Equal(t, "id-1", args[0])
		assert.Equal(t, "mail", args[1])

		var stored models.Envelope
		require.NoError(t, json.Unmarshal([]byte(args[4].(string)), &stored))
		assert.Equal(t, entry.Envelope, stored)
	})

	t.Run("sqlite placeholders", func(t *testing.T) {
		query, _, err := buildSavePasswordEntryQuery(questionBuilder, entry)
		require.NoError(t, err)
		assert.NotContains(t, query, "$1")
		assert.Equal(t, 9, strings.Count(query, "?"))
	})
}

func TestBuildGetPasswordEntryQuery(t *testing.T) {
	query, args, err := buildGetPasswordEntryQuery(dollarBuilder, "abc")
	require.NoError(t, err)

	q := strings.ToLower(query)
	assert.Contains(t, q, "select id, name, username, url, envelope, algorithm, layers, created_at, updated_at")
	assert.Contains(t, q, "from password_entries")
	assert.Contains(t, query, "id = $1")
	assert.Equal(t, []any{"abc"}, args)
}

func TestBuildListPasswordEntriesQuery(t *testing.T) {
	tests := []struct {
		name       string
		filter     models.PasswordEntryFilter
		checkQuery func(t *testing.T, query string, args []any)
	}{
		{
			name:   "no filter",
			filter: models.PasswordEntryFilter{},
			checkQuery: func(t *testing.T, query string, args []any) {
				assert.NotContains(t, query, "WHERE")
				assert.NotContains(t, query, "LIMIT")
				assert.Contains(t, query, "ORDER BY name ASC")
				assert.Empty(t, args)
			},
		},
		{
			name:   "name search is case-insensitive",
			filter: models.PasswordEntryFilter{NameContains: "MaIl"},
			checkQuery: func(t *testing.T, query string, args []any) {
				assert.Contains(t, query, "LOWER(name) LIKE $1")
				assert.Equal(t, []any{"%mail%"}, args)
			},
		},
		{
			name:   "limit",
			filter: models.PasswordEntryFilter{Limit: 5},
			checkQuery: func(t *testing.T, query string, args []any) {
				assert.Contains(t, query, "LIMIT 5")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, args, err := buildListPasswordEntriesQuery(dollarBuilder, tt.filter)
			require.NoError(t, err)
			tt.checkQuery(t, query, args)
		})
	}
}

func TestBuildDeletePasswordEntryQuery(t *testing.T) {
	query, args, err := buildDeletePasswordEntryQuery(questionBuilder, "abc")
	require.NoError(t, err)

	assert.Equal(t, "DELETE FROM password_entries WHERE id = ?", query)
	assert.Equal(t, []any{"abc"}, args)
}
