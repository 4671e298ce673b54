package client

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/go-qes-vault/internal/crypto"
)

var (
	ErrPasswordRequired = fmt.Errorf("%w: password is required: use --password or set %s", crypto.ErrInvalidInput, PasswordEnv)
	ErrClipboard        = errors.New("copy to clipboard")
	ErrBatchFailed      = errors.New("batch failed")
	ErrOutputExists     = errors.New("output file already exists")
)
