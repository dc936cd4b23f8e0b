package rijndael

import (
	"math/bits"
	"sync"

	"github.com/george-galvin/rijndael/internal/gf"
)

// tables holds the forward and inverse substitution boxes. Both are computed,
// not transcribed: each forward entry is the field inverse of its index pushed
// through the affine transformation of FIPS-197 §5.1.1, and the inverse table
// is filled from the forward one, which makes the pair bijective by
// construction.
type tables struct {
	sbox    [256]byte
	invSBox [256]byte
}

// aesTables builds the substitution boxes on first use. They are immutable
// afterward and shared read-only by every Cipher in the process.
var aesTables = sync.OnceValue(buildTables)

func buildTables() *tables {
	t := new(tables)
	for v := range 256 {
		inv := gf.Inverse(byte(v))
		s := inv ^
			bits.RotateLeft8(inv, 1) ^
			bits.RotateLeft8(inv, 2) ^
			bits.RotateLeft8(inv, 3) ^
			bits.RotateLeft8(inv, 4) ^
			0x63
		t.sbox[v] = s
		t.invSBox[s] = byte(v)
	}
	return t
}
