// Package gf implements arithmetic over GF(2^8), the finite field AES uses for
// all byte-level math. Addition is XOR; multiplication is carry-less polynomial
// multiplication reduced modulo the Rijndael polynomial.
package gf

// poly is the Rijndael reducing polynomial, x^8 + x^4 + x^3 + x + 1.
const poly = 0x11b

// Mul returns the product of a and b in GF(2^8).
func Mul(a, b byte) byte {
	var p uint16
	for i := range 8 {
		if b&(1<<i) != 0 {
			p ^= uint16(a) << i
		}
	}
	for i := 15; i >= 8; i-- {
		if p&(1<<i) != 0 {
			p ^= poly << (i - 8)
		}
	}
	return byte(p)
}

// Inverse returns the multiplicative inverse of x, computed as x^254 by 254
// sequential multiplications.
//
// Zero has no inverse in the field; the loop yields 0 there, since the seed is
// annihilated on the first multiply. S-box construction is the only caller that
// ever passes 0, and its affine step maps that 0 to the canonical 0x63 entry
// regardless.
func Inverse(x byte) byte {
	r := byte(1)
	for range 254 {
		r = Mul(r, x)
	}
	return r
}
