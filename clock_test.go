package acorn

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

// bitState is a literal, unoptimized rendering of the clock: 293
// individual bits, one clock per call, Steps A-D exactly as written. It
// exists only so the packed, word-parallel state in clock.go can be
// cross-validated against it: a word-level update must be byte-identical
// to 32 (or 8) successive bit-serial clocks for every legal input.
// Nothing outside this test file ever constructs one.
type bitState struct {
	bits [293]bool
}

func majBit(x, y, z bool) bool {
	return (x && y) != (x && z) != (y && z)
}

func chBit(x, y, z bool) bool {
	return (x && y) != (!x && z)
}

// clock runs exactly one ACORN clock: Step A's six boundary pre-mixes,
// Step B's keystream bit, Step C's feedback bit, and Step D's
// shift-and-insert. m, ca, cb are each a single bit.
func (s *bitState) clock(m, ca, cb bool) bool {
	// Step A — each assignment observes the bits already updated by the
	// previous ones in this list.
	s.bits[289] = s.bits[289] != s.bits[235] != s.bits[230]
	s.bits[230] = s.bits[230] != s.bits[196] != s.bits[193]
	s.bits[193] = s.bits[193] != s.bits[160] != s.bits[154]
	s.bits[154] = s.bits[154] != s.bits[111] != s.bits[107]
	s.bits[107] = s.bits[107] != s.bits[66] != s.bits[61]
	s.bits[61] = s.bits[61] != s.bits[23] != s.bits[0]

	// Step B
	ks := s.bits[12] != s.bits[154] != majBit(s.bits[235], s.bits[61], s.bits[193]) != chBit(s.bits[230], s.bits[111], s.bits[66])

	// Step C
	f := s.bits[0] != !s.bits[107] != majBit(s.bits[244], s.bits[23], s.bits[160]) != (ca && s.bits[196]) != (cb && ks)

	// Step D
	for j := 0; j < 292; j++ {
		s.bits[j] = s.bits[j+1]
	}
	s.bits[292] = f != m

	return ks
}

// bit returns logical state bit i from the packed word-parallel
// representation, using the same register-boundary layout as clock.go's
// doc comment ({0,61,107,154,193,230,293}, with the last two logical
// registers merged into r230).
func (s *state) bit(i int) bool {
	switch {
	case i < 61:
		return s.r0&(uint64(1)<<uint(i)) != 0
	case i < 107:
		return s.r61&(uint64(1)<<uint(i-61)) != 0
	case i < 154:
		return s.r107&(uint64(1)<<uint(i-107)) != 0
	case i < 193:
		return s.r154&(uint64(1)<<uint(i-154)) != 0
	case i < 230:
		return s.r193&(uint64(1)<<uint(i-193)) != 0
	default:
		return s.r230&(uint64(1)<<uint(i-230)) != 0
	}
}

// asBitState renders the packed state's 293 logical bits into a
// bitState, for post-clock comparison.
func (s *state) asBitState() bitState {
	var b bitState
	for i := range b.bits {
		b.bits[i] = s.bit(i)
	}
	return b
}

func randomBitState(r *rand.Rand) (*state, bitState) {
	var s state
	s.r0 = r.Uint64() & (1<<61 - 1)
	s.r61 = r.Uint64() & (1<<46 - 1)
	s.r107 = r.Uint64() & (1<<47 - 1)
	s.r154 = r.Uint64() & (1<<39 - 1)
	s.r193 = r.Uint64() & (1<<37 - 1)
	s.r230 = r.Uint64() & (1<<63 - 1)
	return &s, s.asBitState()
}

// TestUpdateWordMatchesBitSerial checks that the 32-bit packed clock
// matches 32 successive single-bit clocks for random (m, ca, cb) values
// and random starting states.
func TestUpdateWordMatchesBitSerial(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	for trial := 0; trial < 500; trial++ {
		packed, ref := randomBitState(r)
		m := r.Uint32()
		ca := r.Uint32()%2 == 0
		cb := r.Uint32()%2 == 0
		caWord, cbWord := boolWord(ca), boolWord(cb)

		gotKs := packed.updateWord(m, caWord, cbWord)

		var wantKs uint32
		for lane := 0; lane < 32; lane++ {
			bit := ref.clock((m>>uint(lane))&1 == 1, ca, cb)
			if bit {
				wantKs |= 1 << uint(lane)
			}
		}

		require.Equal(t, wantKs, gotKs, "trial %d: keystream mismatch", trial)
		require.Equal(t, ref, packed.asBitState(), "trial %d: post-clock state mismatch", trial)
	}
}

// TestUpdateByteMatchesBitSerial is the 8-lane analogue of
// TestUpdateWordMatchesBitSerial.
func TestUpdateByteMatchesBitSerial(t *testing.T) {
	r := rand.New(rand.NewSource(2))
	for trial := 0; trial < 500; trial++ {
		packed, ref := randomBitState(r)
		m := uint8(r.Uint32())
		ca := r.Uint32()%2 == 0
		cb := r.Uint32()%2 == 0
		caByte, cbByte := boolByte(ca), boolByte(cb)

		gotKs := packed.updateByte(m, caByte, cbByte)

		var wantKs uint8
		for lane := 0; lane < 8; lane++ {
			bit := ref.clock((m>>uint(lane))&1 == 1, ca, cb)
			if bit {
				wantKs |= 1 << uint(lane)
			}
		}

		require.Equal(t, wantKs, gotKs, "trial %d: keystream mismatch", trial)
		require.Equal(t, ref, packed.asBitState(), "trial %d: post-clock state mismatch", trial)
	}
}

// TestUpdateWordDecryptMatchesBitSerial cross-checks the decrypt-side
// clock: feeding it the ciphertext word that the bit-serial reference's
// own keystream would have produced from some plaintext must recover
// that same plaintext and leave both states identical.
func TestUpdateWordDecryptMatchesBitSerial(t *testing.T) {
	r := rand.New(rand.NewSource(3))
	for trial := 0; trial < 500; trial++ {
		packedDec, ref := randomBitState(r)

		p := r.Uint32()
		ca := r.Uint32()%2 == 0
		cb := r.Uint32()%2 == 0
		caWord, cbWord := boolWord(ca), boolWord(cb)

		var c uint32
		for lane := 0; lane < 32; lane++ {
			pBit := (p>>uint(lane))&1 == 1
			if ref.clock(pBit, ca, cb) != pBit {
				c |= 1 << uint(lane)
			}
		}

		gotP := packedDec.updateWordDecrypt(c, caWord, cbWord)
		require.Equal(t, p, gotP, "trial %d: recovered plaintext mismatch", trial)
		require.Equal(t, ref, packedDec.asBitState(), "trial %d: decrypt state diverged from bit-serial reference", trial)
	}
}

func boolWord(b bool) uint32 {
	if b {
		return allBits
	}
	return noBits
}

func boolByte(b bool) uint8 {
	if b {
		return 0xff
	}
	return 0x00
}
