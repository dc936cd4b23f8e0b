// Package rijndael implements the AES-128 block cipher from scratch: GF(2^8)
// field arithmetic, computed substitution boxes, key expansion, and the
// ten-round transformation pipeline of FIPS-197.
//
// Cipher implements crypto/cipher.Block, so it composes with the standard
// library's modes of operation as well as the ecb subpackage.
//
// This implementation is table-driven and makes no constant-time guarantees;
// it is intended for study and interoperability testing, not for protecting
// secrets on shared hardware. Use crypto/aes where that matters, particularly
// on platforms where SupportsHardwareAES reports true.
package rijndael

import (
	"crypto/cipher"
	"strconv"

	"github.com/george-galvin/rijndael/internal/gf"
)

// BlockSize is the AES block size in bytes.
const BlockSize = 16

// KeySize is the only supported key size in bytes. AES-192 and AES-256 are
// not implemented.
const KeySize = 16

// KeySizeError is returned by NewCipher for keys that are not 16 bytes.
type KeySizeError int

func (k KeySizeError) Error() string {
	return "rijndael: invalid key size " + strconv.Itoa(int(k))
}

// A Cipher is an instance of AES-128 under a single expanded key. It holds no
// global state: the substitution boxes and the round-key schedule are plain
// values, immutable after construction and safe for concurrent use.
type Cipher struct {
	sched [scheduleSize]byte
	tab   *tables
}

var _ cipher.Block = (*Cipher)(nil)

// NewCipher returns a Cipher for the given 16-byte key.
func NewCipher(key []byte) (*Cipher, error) {
	if len(key) != KeySize {
		return nil, KeySizeError(len(key))
	}

	tab := aesTables()
	return &Cipher{
		sched: expandKey(tab, key),
		tab:   tab,
	}, nil
}

// BlockSize returns the AES block size, 16 bytes.
func (c *Cipher) BlockSize() int {
	return BlockSize
}

// Encrypt encrypts the 16-byte block in src into dst, which may overlap.
func (c *Cipher) Encrypt(dst, src []byte) {
	if len(src) < BlockSize {
		panic("rijndael: input not full block")
	}
	if len(dst) < BlockSize {
		panic("rijndael: output not full block")
	}

	var s state
	copy(s[:], src)

	addRoundKey(&s, c.sched[0:16])
	for round := 1; round <= 10; round++ {
		subBytes(&s, &c.tab.sbox)
		shiftRows(&s)
		if round != 10 {
			mixColumns(&s)
		}
		addRoundKey(&s, c.sched[16*round:16*round+16])
	}

	copy(dst, s[:])
}

// Decrypt decrypts the 16-byte block in src into dst, which may overlap.
func (c *Cipher) Decrypt(dst, src []byte) {
	if len(src) < BlockSize {
		panic("rijndael: input not full block")
	}
	if len(dst) < BlockSize {
		panic("rijndael: output not full block")
	}

	var s state
	copy(s[:], src)

	// Round keys are consumed in descending order; InvMixColumns is skipped
	// in the first decryption round, mirroring the MixColumns skip in the
	// last encryption round.
	for round := 10; round >= 1; round-- {
		addRoundKey(&s, c.sched[16*round:16*round+16])
		if round != 10 {
			invMixColumns(&s)
		}
		invShiftRows(&s)
		subBytes(&s, &c.tab.invSBox)
	}
	addRoundKey(&s, c.sched[0:16])

	copy(dst, s[:])
}

// state is a block being transformed, a 4x4 byte matrix filled column-major:
// s[0..3] is column 0, rows 0..3.
type state [BlockSize]byte

func addRoundKey(s *state, rk []byte) {
	for i := range s {
		s[i] ^= rk[i]
	}
}

func subBytes(s *state, box *[256]byte) {
	for i := range s {
		s[i] = box[s[i]]
	}
}

// shiftRows rotates row r left by r positions. Row r occupies indices
// r, r+4, r+8, r+12 in the column-major layout.
func shiftRows(s *state) {
	s[1], s[5], s[9], s[13] = s[5], s[9], s[13], s[1]
	s[2], s[6], s[10], s[14] = s[10], s[14], s[2], s[6]
	s[3], s[7], s[11], s[15] = s[15], s[3], s[7], s[11]
}

func invShiftRows(s *state) {
	s[1], s[5], s[9], s[13] = s[13], s[1], s[5], s[9]
	s[2], s[6], s[10], s[14] = s[10], s[14], s[2], s[6]
	s[3], s[7], s[11], s[15] = s[7], s[11], s[15], s[3]
}

func mixColumns(s *state) {
	for c := 0; c < BlockSize; c += 4 {
		c0, c1, c2, c3 := s[c], s[c+1], s[c+2], s[c+3]
		s[c] = gf.Mul(2, c0) ^ gf.Mul(3, c1) ^ c2 ^ c3
		s[c+1] = c0 ^ gf.Mul(2, c1) ^ gf.Mul(3, c2) ^ c3
		s[c+2] = c0 ^ c1 ^ gf.Mul(2, c2) ^ gf.Mul(3, c3)
		s[c+3] = gf.Mul(3, c0) ^ c1 ^ c2 ^ gf.Mul(2, c3)
	}
}

func invMixColumns(s *state) {
	for c := 0; c < BlockSize; c += 4 {
		c0, c1, c2, c3 := s[c], s[c+1], s[c+2], s[c+3]
		s[c] = gf.Mul(14, c0) ^ gf.Mul(11, c1) ^ gf.Mul(13, c2) ^ gf.Mul(9, c3)
		s[c+1] = gf.Mul(9, c0) ^ gf.Mul(14, c1) ^ gf.Mul(11, c2) ^ gf.Mul(13, c3)
		s[c+2] = gf.Mul(13, c0) ^ gf.Mul(9, c1) ^ gf.Mul(14, c2) ^ gf.Mul(11, c3)
		s[c+3] = gf.Mul(11, c0) ^ gf.Mul(13, c1) ^ gf.Mul(9, c2) ^ gf.Mul(14, c3)
	}
}

// SupportsHardwareAES reports whether the CPU has AES instructions. This
// package never uses them; callers on such platforms should prefer crypto/aes
// unless they specifically need this software implementation.
func SupportsHardwareAES() bool {
	return hasHardwareAES()
}
