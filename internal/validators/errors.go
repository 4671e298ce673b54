package validators

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/go-qes-vault/internal/crypto"
)

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")
)

// Every rule violation wraps crypto.ErrInvalidInput so that transports map
// them the same way as cipher precondition failures.
var (
	ErrEmptyPassword       = fmt.Errorf("%w: password is required", crypto.ErrInvalidInput)
	ErrEmptyMasterPassword = fmt.Errorf("%w: master password is required", crypto.ErrInvalidInput)
	ErrInvalidLayers       = fmt.Errorf("%w: layers must be >= 1", crypto.ErrInvalidInput)
	ErrTooManyLayers       = fmt.Errorf("%w: layer count above the server limit (app max_layers)", crypto.ErrInvalidInput)
	ErrEmptyCiphertext     = fmt.Errorf("%w: ciphertext is required", crypto.ErrInvalidInput)
	ErrInvalidCiphertext   = fmt.Errorf("%w: ciphertext must be base64 of whole AES blocks", crypto.ErrInvalidInput)
	ErrInvalidIV           = fmt.Errorf("%w: iv must be %d hex-encoded bytes", crypto.ErrInvalidInput, crypto.IVSize)
	ErrInvalidSalt         = fmt.Errorf("%w: salt must be %d hex-encoded bytes", crypto.ErrInvalidInput, crypto.SaltSize)
	ErrEmptyName           = fmt.Errorf("%w: name is required", crypto.ErrInvalidInput)
	ErrInvalidFileName     = fmt.Errorf("%w: invalid envelope file name", crypto.ErrInvalidInput)
	ErrMalformedEnvelope   = fmt.Errorf("%w: malformed envelope", crypto.ErrInvalidInput)
)
