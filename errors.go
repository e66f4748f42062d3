package acorn

import "errors"

// ErrInvalidKeySize is returned when a key does not have length KeySize.
var ErrInvalidKeySize = errors.New("acorn: invalid key size")

// ErrInvalidNonceSize is returned when a nonce does not have length
// NonceSize.
var ErrInvalidNonceSize = errors.New("acorn: invalid nonce size")

// errAuthenticationFailed is returned by Open, the cipher.AEAD-shaped
// wrapper, on tag mismatch. Decrypt reports the same condition as a
// boolean, per the public entry point contract.
var errAuthenticationFailed = errors.New("acorn: message authentication failed")
