package client

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/MKhiriev/go-qes-vault/internal/service"
	"github.com/MKhiriev/go-qes-vault/models"
)

const outputFileMode = 0o600

// fileOptions are the flags shared by the file commands.
type fileOptions struct {
	layers       int
	assumeLayers int
	outDir       string
	force        bool
}

// encryptFile writes path's envelope next to it, or into opts.outDir, and
// returns the written path.
func (a *App) encryptFile(ctx context.Context, path, password string, opts fileOptions) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", path, err)
	}

	encrypted, err := a.cipher.EncryptFile(ctx, models.FileEncryptionRequest{
		Name:     filepath.Base(path),
		Data:     data,
		Password: password,
		Layers:   opts.layers,
	})
	if err != nil {
		return "", err
	}

	body, err := service.MarshalEnvelope(encrypted.Envelope)
	if err != nil {
		return "", err
	}

	target := filepath.Join(outputDir(path, opts.outDir), encrypted.Name)
	if err = writeOutput(target, body, opts.force); err != nil {
		return "", err
	}

	a.logger.Debug().
		Str("func", "*App.encryptFile").
		Str("source", path).
		Str("target", target).
		Int("size", len(data)).
		Int("layers", encrypted.Envelope.LayerCount()).
		Msg("file encrypted")

	return target, nil
}

// decryptFile restores the file held in the envelope at path and returns the
// written path. "x.encrypted" becomes "x"; other names get a "decrypted_"
// prefix.
func (a *App) decryptFile(ctx context.Context, path, password string, opts fileOptions) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", path, err)
	}

	decrypted, err := a.cipher.DecryptFile(ctx, models.FileDecryptionRequest{
		Name:         filepath.Base(path),
		Data:         data,
		Password:     password,
		AssumeLayers: opts.assumeLayers,
	})
	if err != nil {
		return "", err
	}

	target := filepath.Join(outputDir(path, opts.outDir), decrypted.Name)
	if err = writeOutput(target, decrypted.Data, opts.force); err != nil {
		return "", err
	}

	a.logger.Debug().
		Str("func", "*App.decryptFile").
		Str("source", path).
		Str("target", target).
		Int("size", len(decrypted.Data)).
		Msg("file decrypted")

	return target, nil
}

// writeOutput creates target. An existing file is only replaced when force
// is set.
func writeOutput(target string, data []byte, force bool) error {
	flags := os.O_WRONLY | os.O_CREATE | os.O_EXCL
	if force {
		flags = os.O_WRONLY | os.O_CREATE | os.O_TRUNC
	}

	f, err := os.OpenFile(target, flags, outputFileMode)
	if errors.Is(err, os.ErrExist) {
		return fmt.Errorf("%w: %s (use --force to replace it)", ErrOutputExists, target)
	}
	if err != nil {
		return fmt.Errorf("write %s: %w", target, err)
	}

	if _, err = f.Write(data); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", target, err)
	}
	if err = f.Close(); err != nil {
		return fmt.Errorf("write %s: %w", target, err)
	}
	return nil
}

func outputDir(source, outDir string) string {
	if outDir != "" {
		return outDir
	}
	return filepath.Dir(source)
}
