package acorn

// maj and ch are ACORN's two non-linear boolean functions, applied
// bit-wise across a packed word of parallel lanes.
func maj(x, y, z uint32) uint32 {
	return (x & y) ^ (x & z) ^ (y & z)
}

func ch(x, y, z uint32) uint32 {
	return (x & y) ^ (^x & z)
}

// state is the packed-word representation of the 293-bit ACORN register.
// The seven logical LFSRs (lengths 61, 46, 47, 39, 37, 59, 4) are held in
// six uint64 fields, named by the bit index at which each one starts; the
// last two registers (59 and 4 bits, 63 bits together) are merged into
// r230 since they fit in a single 64-bit word with room to spare. All
// indexed bit positions named in the clock below refer to the logical
// 293-bit addressing of the register, not to bit offsets within a field.
type state struct {
	r0, r61, r107, r154, r193, r230 uint64
}

// updateWord runs 32 clocks at once, consuming 32 message bits packed
// LSB-first-per-lane in m and returning the 32 keystream bits produced,
// packed the same way. ca and cb must each be either 0x00000000 (bit
// clear across all 32 lanes) or 0xffffffff (bit set across all 32 lanes);
// the control bits are constant for any given clock, not per-bit, so
// every lane in one call shares the same ca/cb.
func (s *state) updateWord(m, ca, cb uint32) uint32 {
	w244 := uint32(s.r230 >> 14)
	w235 := uint32(s.r230 >> 5)
	w196 := uint32(s.r193 >> 3)
	w160 := uint32(s.r154 >> 6)
	w111 := uint32(s.r107 >> 4)
	w66 := uint32(s.r61 >> 5)
	w23 := uint32(s.r0 >> 23)
	w12 := uint32(s.r0 >> 12)
	w0 := uint32(s.r0)

	// Step A: pre-mix the six register-boundary taps. x289 skips its own
	// self-XOR here because that happens implicitly when it is folded
	// into r230 below.
	x289 := w235 ^ uint32(s.r230)
	f230 := uint32(s.r230) ^ w196 ^ uint32(s.r193)
	f193 := uint32(s.r193) ^ w160 ^ uint32(s.r154)
	f154 := uint32(s.r154) ^ w111 ^ uint32(s.r107)
	f107 := uint32(s.r107) ^ w66 ^ uint32(s.r61)
	f61 := uint32(s.r61) ^ w23 ^ w0

	// Step B: keystream, using post-Step-A values for the boundary bits
	// and pre-Step-A values for the interior taps.
	ks := w12 ^ f154 ^ maj(w235, f61, f193) ^ ch(f230, w111, w66)

	// Step C: feedback bit.
	f := w0 ^ ^f107 ^ maj(w244, w23, w160) ^ (ca & w196) ^ (cb & ks)

	// Step D: shift the whole register down by 32 (toward S[0]) and insert the new
	// boundary bits and the new top bit (f ^ m) in the positions they
	// shift into.
	s293 := f ^ m
	s.r230 = s.r230>>32 ^ uint64(x289)<<(289-230-32) ^ uint64(s293)<<(293-230-32)
	s.r193 = s.r193>>32 ^ uint64(f230)<<(230-193-32)
	s.r154 = s.r154>>32 ^ uint64(f193)<<(193-154-32)
	s.r107 = s.r107>>32 ^ uint64(f154)<<(154-107-32)
	s.r61 = s.r61>>32 ^ uint64(f107)<<(107-61-32)
	s.r0 = s.r0>>32 ^ uint64(f61)<<(61-32)

	return ks
}

// updateByte is updateWord narrowed to 8 lanes; it exists so plaintext
// and associated data that are not a multiple of 4 bytes can be processed
// down to single-byte granularity without ever falling back to a 1-bit
// clock. ca and cb must each be either 0x00 or 0xff.
func (s *state) updateByte(m, ca, cb uint8) uint8 {
	w244 := uint8(s.r230 >> 14)
	w235 := uint8(s.r230 >> 5)
	w196 := uint8(s.r193 >> 3)
	w160 := uint8(s.r154 >> 6)
	w111 := uint8(s.r107 >> 4)
	w66 := uint8(s.r61 >> 5)
	w23 := uint8(s.r0 >> 23)
	w12 := uint8(s.r0 >> 12)
	w0 := uint8(s.r0)

	x289 := (w235 ^ uint8(s.r230))
	f230 := uint8(s.r230) ^ w196 ^ uint8(s.r193)
	f193 := uint8(s.r193) ^ w160 ^ uint8(s.r154)
	f154 := uint8(s.r154) ^ w111 ^ uint8(s.r107)
	f107 := uint8(s.r107) ^ w66 ^ uint8(s.r61)
	f61 := uint8(s.r61) ^ w23 ^ w0

	ks := w12 ^ f154 ^ uint8(maj(uint32(w235), uint32(f61), uint32(f193))) ^ uint8(ch(uint32(f230), uint32(w111), uint32(w66)))

	f := w0 ^ ^f107 ^ uint8(maj(uint32(w244), uint32(w23), uint32(w160))) ^ (ca & w196) ^ (cb & ks)

	s293 := f ^ m
	s.r230 = s.r230>>8 ^ uint64(x289)<<(289-230-8) ^ uint64(s293)<<(293-230-8)
	s.r193 = s.r193>>8 ^ uint64(f230)<<(230-193-8)
	s.r154 = s.r154>>8 ^ uint64(f193)<<(193-154-8)
	s.r107 = s.r107>>8 ^ uint64(f154)<<(154-107-8)
	s.r61 = s.r61>>8 ^ uint64(f107)<<(107-61-8)
	s.r0 = s.r0>>8 ^ uint64(f61)<<(61-8)

	return ks
}

// updateWordDecrypt is updateWord's decrypt-side twin: the message bits
// fed back into the register are the recovered plaintext
// bits, derived from the ciphertext word c only after the keystream for
// this clock is known, not supplied by the caller up front. It returns
// the recovered plaintext word.
func (s *state) updateWordDecrypt(c, ca, cb uint32) uint32 {
	w244 := uint32(s.r230 >> 14)
	w235 := uint32(s.r230 >> 5)
	w196 := uint32(s.r193 >> 3)
	w160 := uint32(s.r154 >> 6)
	w111 := uint32(s.r107 >> 4)
	w66 := uint32(s.r61 >> 5)
	w23 := uint32(s.r0 >> 23)
	w12 := uint32(s.r0 >> 12)
	w0 := uint32(s.r0)

	x289 := w235 ^ uint32(s.r230)
	f230 := uint32(s.r230) ^ w196 ^ uint32(s.r193)
	f193 := uint32(s.r193) ^ w160 ^ uint32(s.r154)
	f154 := uint32(s.r154) ^ w111 ^ uint32(s.r107)
	f107 := uint32(s.r107) ^ w66 ^ uint32(s.r61)
	f61 := uint32(s.r61) ^ w23 ^ w0

	ks := w12 ^ f154 ^ maj(w235, f61, f193) ^ ch(f230, w111, w66)
	p := c ^ ks

	f := w0 ^ ^f107 ^ maj(w244, w23, w160) ^ (ca & w196) ^ (cb & ks)

	s293 := f ^ p
	s.r230 = s.r230>>32 ^ uint64(x289)<<(289-230-32) ^ uint64(s293)<<(293-230-32)
	s.r193 = s.r193>>32 ^ uint64(f230)<<(230-193-32)
	s.r154 = s.r154>>32 ^ uint64(f193)<<(193-154-32)
	s.r107 = s.r107>>32 ^ uint64(f154)<<(154-107-32)
	s.r61 = s.r61>>32 ^ uint64(f107)<<(107-61-32)
	s.r0 = s.r0>>32 ^ uint64(f61)<<(61-32)

	return p
}

// updateByteDecrypt is updateWordDecrypt narrowed to 8 lanes.
func (s *state) updateByteDecrypt(c, ca, cb uint8) uint8 {
	w244 := uint8(s.r230 >> 14)
	w235 := uint8(s.r230 >> 5)
	w196 := uint8(s.r193 >> 3)
	w160 := uint8(s.r154 >> 6)
	w111 := uint8(s.r107 >> 4)
	w66 := uint8(s.r61 >> 5)
	w23 := uint8(s.r0 >> 23)
	w12 := uint8(s.r0 >> 12)
	w0 := uint8(s.r0)

	x289 := w235 ^ uint8(s.r230)
	f230 := uint8(s.r230) ^ w196 ^ uint8(s.r193)
	f193 := uint8(s.r193) ^ w160 ^ uint8(s.r154)
	f154 := uint8(s.r154) ^ w111 ^ uint8(s.r107)
	f107 := uint8(s.r107) ^ w66 ^ uint8(s.r61)
	f61 := uint8(s.r61) ^ w23 ^ w0

	ks := w12 ^ f154 ^ uint8(maj(uint32(w235), uint32(f61), uint32(f193))) ^ uint8(ch(uint32(f230), uint32(w111), uint32(w66)))
	p := c ^ ks

	f := w0 ^ ^f107 ^ uint8(maj(uint32(w244), uint32(w23), uint32(w160))) ^ (ca & w196) ^ (cb & ks)

	s293 := f ^ p
	s.r230 = s.r230>>8 ^ uint64(x289)<<(289-230-8) ^ uint64(s293)<<(293-230-8)
	s.r193 = s.r193>>8 ^ uint64(f230)<<(230-193-8)
	s.r154 = s.r154>>8 ^ uint64(f193)<<(193-154-8)
	s.r107 = s.r107>>8 ^ uint64(f154)<<(154-107-8)
	s.r61 = s.r61>>8 ^ uint64(f107)<<(107-61-8)
	s.r0 = s.r0>>8 ^ uint64(f61)<<(61-8)

	return p
}

func (s *state) reset() {
	*s = state{}
}
