// Package acorn implements the ACORN-128 authenticated encryption
// algorithm designed by Hongjun Wu, as specified in
//
//	https://competitions.cr.yp.to/round3/acornv3.pdf
//
// ACORN was one of the six winners of the CAESAR competition: it is the
// second choice for use case 1 (lightweight applications in
// resource-constrained environments). If you are not operating in a
// resource-constrained environment, AES-GCM or ChaCha20-Poly1305 are
// probably a better choice.
//
// ACORN-128 is secure only if:
//
//  1. The key is generated in a secure, random way.
//  2. A (key, nonce) pair is never used to protect more than one message.
//  3. On verification failure, the decrypted plaintext and the wrong
//     authentication tag are never released to anything downstream.
//
// Reusing a nonce allows an attacker to trivially forge arbitrary
// messages. This package does not generate nonces, derive keys, or manage
// key lifetimes — that is the caller's responsibility.
//
// The state register is 293 bits, split across seven linear feedback
// shift registers of unequal length (61, 46, 47, 39, 37, 59, 4 bits). Four
// phases run in strict order for every call: initialization, associated
// data absorption, plaintext/ciphertext processing, and finalization.
package acorn

// KeySize is the length, in bytes, of an ACORN-128 key.
const KeySize = 128 / 8

// NonceSize is the length, in bytes, of an ACORN-128 nonce.
const NonceSize = 128 / 8

// TagSize is the length, in bytes, of an ACORN-128 authentication tag.
const TagSize = 128 / 8
