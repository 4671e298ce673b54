package service

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/go-qes-vault/internal/crypto"
)

var (
	ErrVersionIsNotSpecified = errors.New("app version is not specified")

	// ErrRoundTripMismatch is returned by Compare when a decrypted result
	// differs from the original plaintext.
	ErrRoundTripMismatch = fmt.Errorf("%w: round trip produced different plaintext", crypto.ErrDecryption)
)
