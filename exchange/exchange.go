// Package exchange derives 128-bit block cipher keys from a Diffie-Hellman
// exchange over the ristretto255 group, so two parties can agree on an AES-128
// key without ever typing one in hex.
//
// Both sides derive the same key: the holder of private scalar dA computes
// Key(dA, qB), and the holder of dB computes Key(dB, qA). The shared group
// element is hashed down to 16 bytes under a fixed domain label.
package exchange

import (
	"crypto/sha256"
	"io"

	"github.com/gtank/ristretto255"
)

// KeySize is the size, in bytes, of a derived cipher key.
const KeySize = 16

// domain separates this package's key derivation from other uses of the same
// shared secret.
const domain = "rijndael/exchange"

// NewKeyPair generates a private scalar and its public element from the given
// source of randomness.
func NewKeyPair(rand io.Reader) (*ristretto255.Scalar, *ristretto255.Element, error) {
	var seed [64]byte
	if _, err := io.ReadFull(rand, seed[:]); err != nil {
		return nil, nil, err
	}

	d, err := ristretto255.NewScalar().SetUniformBytes(seed[:])
	if err != nil {
		return nil, nil, err
	}
	q := ristretto255.NewIdentityElement().ScalarBaseMult(d)
	return d, q, nil
}

// Key derives the shared 16-byte cipher key between the holder of the private
// scalar d and the owner of the public element q.
func Key(d *ristretto255.Scalar, q *ristretto255.Element) []byte {
	ss := ristretto255.NewIdentityElement().ScalarMult(d, q)

	h := sha256.New()
	h.Write([]byte(domain))
	h.Write(ss.Bytes())
	return h.Sum(nil)[:KeySize]
}
