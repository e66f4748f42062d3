package acorn

import (
	"crypto/cipher"
	"crypto/subtle"
	"encoding/binary"
)

// Encrypt runs the four ACORN-128 phases in order — initialize, absorb
// AD, encrypt, finalize — over a freshly zeroed state and returns the
// ciphertext (same length as plaintext) and the 128-bit authentication
// tag. key and nonce must be KeySize and NonceSize bytes respectively;
// any other length returns ErrInvalidKeySize or ErrInvalidNonceSize and
// no cryptographic operation is performed. ad and plaintext may be empty
// and are never mutated; ciphertext is a newly allocated slice and never
// aliases plaintext.
func Encrypt(key, nonce, ad, plaintext []byte) (ciphertext []byte, tag [TagSize]byte, err error) {
	k, n, err := checkSizes(key, nonce)
	if err != nil {
		return nil, tag, err
	}

	var s state
	s.initialize(k, n)
	s.absorbAD(ad)

	ciphertext = make([]byte, len(plaintext))
	s.encryptBytes(ciphertext, plaintext)
	tag = s.finalize()
	return ciphertext, tag, nil
}

// Decrypt reverses Encrypt: it runs the same four phases against the
// given ciphertext, recomputes the tag, and compares it against
// expectedTag in constant time. ok is false whenever verification fails,
// in which case plaintext holds recovered but unauthenticated bytes that
// callers MUST discard rather than trust.
func Decrypt(key, nonce, ad, ciphertext []byte, expectedTag [TagSize]byte) (plaintext []byte, ok bool, err error) {
	k, n, err := checkSizes(key, nonce)
	if err != nil {
		return nil, false, err
	}

	var s state
	s.initialize(k, n)
	s.absorbAD(ad)

	plaintext = make([]byte, len(ciphertext))
	s.decryptBytes(plaintext, ciphertext)
	tag := s.finalize()

	ok = constantTimeEqual(tag, expectedTag)
	return plaintext, ok, nil
}

// constantTimeEqual compares two 128-bit tags by accumulating the
// bit-wise OR of their XOR difference and testing once against zero; it
// never early-exits on a per-byte match or mismatch.
func constantTimeEqual(a, b [TagSize]byte) bool {
	return subtle.ConstantTimeCompare(a[:], b[:]) == 1
}

// checkSizes validates key and nonce lengths and repacks them into the
// little-endian 32-bit words the clock operates on.
func checkSizes(key, nonce []byte) (k, n *[4]uint32, err error) {
	if len(key) != KeySize {
		return nil, nil, ErrInvalidKeySize
	}
	if len(nonce) != NonceSize {
		return nil, nil, ErrInvalidNonceSize
	}
	var kw, nw [4]uint32
	for i := range kw {
		kw[i] = binary.LittleEndian.Uint32(key[i*4:])
		nw[i] = binary.LittleEndian.Uint32(nonce[i*4:])
	}
	return &kw, &nw, nil
}

// AEAD adapts Encrypt/Decrypt to the standard library's crypto/cipher.AEAD
// interface, for callers that want to use ACORN-128 interchangeably with
// any other AEAD in the ecosystem.
type AEAD struct {
	key []byte
}

var _ cipher.AEAD = (*AEAD)(nil)

// NewAEAD returns an AEAD bound to the given 128-bit key. It returns
// ErrInvalidKeySize if key does not have length KeySize.
func NewAEAD(key []byte) (*AEAD, error) {
	if len(key) != KeySize {
		return nil, ErrInvalidKeySize
	}
	k := make([]byte, KeySize)
	copy(k, key)
	return &AEAD{key: k}, nil
}

// NonceSize implements cipher.AEAD.
func (a *AEAD) NonceSize() int { return NonceSize }

// Overhead implements cipher.AEAD.
func (a *AEAD) Overhead() int { return TagSize }

// Seal implements cipher.AEAD. It panics if nonce does not have length
// NonceSize, matching the stdlib's own AEAD implementations.
func (a *AEAD) Seal(dst, nonce, plaintext, additionalData []byte) []byte {
	if len(nonce) != NonceSize {
		panic("acorn: invalid nonce size")
	}
	ct, tag, err := Encrypt(a.key, nonce, additionalData, plaintext)
	if err != nil {
		panic(err)
	}
	dst = append(dst, ct...)
	dst = append(dst, tag[:]...)
	return dst
}

// Open implements cipher.AEAD. It panics if nonce does not have length
// NonceSize or if ciphertext is shorter than Overhead, matching the
// stdlib's own AEAD implementations; it returns errAuthenticationFailed
// (not a panic) on tag mismatch.
func (a *AEAD) Open(dst, nonce, ciphertext, additionalData []byte) ([]byte, error) {
	if len(nonce) != NonceSize {
		panic("acorn: invalid nonce size")
	}
	if len(ciphertext) < TagSize {
		panic("acorn: ciphertext too short")
	}
	n := len(ciphertext) - TagSize
	var tag [TagSize]byte
	copy(tag[:], ciphertext[n:])

	pt, ok, err := Decrypt(a.key, nonce, additionalData, ciphertext[:n], tag)
	if err != nil {
		panic(err)
	}
	if !ok {
		return dst, errAuthenticationFailed
	}
	dst = append(dst, pt...)
	return dst, nil
}
