package acorn

import "encoding/binary"

// allBits and noBits are the two legal values for a clock's ca/cb control
// words: every lane set, or every lane clear. Control bits never vary
// within a single call to updateWord/updateByte.
const (
	allBits uint32 = 0xffffffff
	noBits  uint32 = 0
)

// initialize runs the 1792-clock key/nonce loading schedule: 128 clocks
// of key, 128 of nonce, one flip clock, then 1535 more clocks repeating
// the key. s is zeroed first, so any prior contents are discarded.
func (s *state) initialize(key, nonce *[4]uint32) {
	s.reset()
	for i := range key {
		s.updateWord(key[i], allBits, allBits)
	}
	for i := range nonce {
		s.updateWord(nonce[i], allBits, allBits)
	}
	s.updateWord(key[0]^1, allBits, allBits)
	for i := 32; i < 1536; i += 32 {
		s.updateWord(key[i%128/32], allBits, allBits)
	}
}

// pad appends the domain-separating 256-clock pad shared by the AD
// absorber and the message processor: a single 1 bit, 127 more 0 bits
// with ca held high, then 128 0 bits with ca dropped to low. cb
// distinguishes which phase is padding: AD always pads with cb=1, the
// message phase with cb=0.
func (s *state) pad(cb uint32) {
	s.updateWord(1, allBits, cb)
	for i := 32; i < 128; i += 32 {
		s.updateWord(0, allBits, cb)
	}
	for i := 128; i < 256; i += 32 {
		s.updateWord(0, noBits, cb)
	}
}

// absorbAD clocks every byte of the associated data through the state
// with ca=cb=1, discarding the keystream, then applies the shared pad
// with cb=1. An empty AD still runs the pad.
func (s *state) absorbAD(ad []byte) {
	i := 0
	for ; i+4 <= len(ad); i += 4 {
		s.updateWord(binary.LittleEndian.Uint32(ad[i:]), allBits, allBits)
	}
	for ; i < len(ad); i++ {
		s.updateByte(ad[i], 0xff, 0xff)
	}
	s.pad(allBits)
}

// encryptBytes XORs every plaintext byte with the keystream produced by
// its own clock, and feeds the plaintext bit (not the ciphertext bit)
// back into the state. The shared pad is then applied with cb=0.
func (s *state) encryptBytes(dst, src []byte) {
	i := 0
	for ; i+4 <= len(src); i += 4 {
		m := binary.LittleEndian.Uint32(src[i:])
		ks := s.updateWord(m, allBits, noBits)
		binary.LittleEndian.PutUint32(dst[i:], m^ks)
	}
	for ; i < len(src); i++ {
		m := src[i]
		ks := s.updateByte(m, 0xff, 0x00)
		dst[i] = m ^ ks
	}
	s.pad(noBits)
}

// decryptBytes computes the keystream bit first, derives the recovered
// plaintext bit from the ciphertext, and feeds that recovered plaintext
// bit — not the ciphertext bit — back into the state via the clock's
// message input. The shared pad is then applied with cb=0, identically
// to encryptBytes.
func (s *state) decryptBytes(dst, src []byte) {
	i := 0
	for ; i+4 <= len(src); i += 4 {
		c := binary.LittleEndian.Uint32(src[i:])
		p := s.updateWordDecrypt(c, allBits, noBits)
		binary.LittleEndian.PutUint32(dst[i:], p)
	}
	for ; i < len(src); i++ {
		dst[i] = s.updateByteDecrypt(src[i], 0xff, 0x00)
	}
	s.pad(noBits)
}

// finalize runs the 768-clock tail: 640 discarded clocks followed by 128
// clocks whose keystream becomes the tag, packed LSB-first per byte via
// binary.LittleEndian.
func (s *state) finalize() [TagSize]byte {
	for i := 0; i < 640; i += 32 {
		s.updateWord(0, allBits, allBits)
	}
	var tag [TagSize]byte
	for i := 0; i < TagSize; i += 4 {
		ks := s.updateWord(0, allBits, allBits)
		binary.LittleEndian.PutUint32(tag[i:], ks)
	}
	return tag
}
