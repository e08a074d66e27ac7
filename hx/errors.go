package hx

import "errors"

// Sentinel errors for fragment requests.
var (
	ErrNotFound         = errors.New("hx: fragment not found")
	ErrDecryptFailed    = errors.New("hx: parameter decryption failed")
	ErrSignatureInvalid = errors.New("hx: signature verification failed")
	ErrInvalidFormat    = errors.New("hx: invalid parameter format")
)

// IsNotFound checks if err is a not-found error.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsDecryptionError checks if err is a decryption or signature error.
func IsDecryptionError(err error) bool {
	return errors.Is(err, ErrDecryptFailed) || errors.Is(err, ErrSignatureInvalid)
}

// IsBadRequest checks if err means the request parameters could not be
// trusted or read.
func IsBadRequest(err error) bool {
	return IsDecryptionError(err) || errors.Is(err, ErrInvalidFormat)
}
