package store

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"github.com/MKhiriev/go-qes-vault/internal/logger"
	"github.com/MKhiriev/go-qes-vault/internal/validators"
)

// localEnvelopeStorage keeps envelopes as files in a single directory.
// Writes go through a temporary file and a rename, so readers never observe
// a partially written envelope.
type localEnvelopeStorage struct {
	dir    string
	logger *logger.Logger
}

// NewLocalEnvelopeStorage creates dir if needed and returns an
// [EnvelopeStorage] rooted at it.
func NewLocalEnvelopeStorage(dir string, log *logger.Logger) (EnvelopeStorage, error) {
	if err := os.MkdirAll(dir, 0o700); err != nil {
		log.Err(err).Str("func", "NewLocalEnvelopeStorage").Str("dir", dir).Msg("error creating envelope directory")
		return nil, fmt.Errorf("error creating envelope directory: %w", err)
	}

	return &localEnvelopeStorage{dir: dir, logger: log}, nil
}

func (s *localEnvelopeStorage) Put(ctx context.Context, name string, data []byte) error {
	if err := validators.ValidateEnvelopeFileName(name); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(s.dir, ".tmp-*")
	if err != nil {
		return fmt.Errorf("create temp envelope: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err = tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("write envelope: %w", err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("close envelope: %w", err)
	}
	if err = os.Rename(tmp.Name(), filepath.Join(s.dir, name)); err != nil {
		return fmt.Errorf("store envelope: %w", err)
	}

	logger.FromContext(ctx).Debug().
		Str("func", "localEnvelopeStorage.Put").
		Str("name", name).
		Int("size", len(data)).
		Msg("envelope stored")
	return nil
}

func (s *localEnvelopeStorage) Get(ctx context.Context, name string) ([]byte, error) {
	if err := validators.ValidateEnvelopeFileName(name); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(filepath.Join(s.dir, name))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, ErrEnvelopeNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("read envelope: %w", err)
	}
	return data, nil
}

func (s *localEnvelopeStorage) List(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	dirEntries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, fmt.Errorf("list envelopes: %w", err)
	}

	names := make([]string, 0, len(dirEntries))
	for _, e := range dirEntries {
		if e.Type().IsRegular() && validators.ValidateEnvelopeFileName(e.Name()) == nil {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)
	return names, nil
}

func (s *localEnvelopeStorage) Delete(ctx context.Context, name string) error {
	if err := validators.ValidateEnvelopeFileName(name); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	err := os.Remove(filepath.Join(s.dir, name))
	if errors.Is(err, fs.ErrNotExist) {
		return ErrEnvelopeNotFound
	}
	if err != nil {
		return fmt.Errorf("delete envelope: %w", err)
	}
	return nil
}
