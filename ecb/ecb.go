// Package ecb implements the Electronic Codebook mode of operation: each block
// is encrypted independently under the same key, with no chaining between
// blocks.
//
// ECB leaks structure: identical plaintext blocks produce identical ciphertext
// blocks, so repeated content in the input is visible in the output. It is kept
// here for interoperability with tools that expect it; use an authenticated
// mode for anything that matters.
package ecb

import "crypto/cipher"

type ecb struct {
	b       cipher.Block
	decrypt bool
}

var _ cipher.BlockMode = (*ecb)(nil)

// NewEncrypter returns a BlockMode which encrypts in ECB mode using the given
// Block.
func NewEncrypter(b cipher.Block) cipher.BlockMode {
	return &ecb{b: b}
}

// NewDecrypter returns a BlockMode which decrypts in ECB mode using the given
// Block.
func NewDecrypter(b cipher.Block) cipher.BlockMode {
	return &ecb{b: b, decrypt: true}
}

func (e *ecb) BlockSize() int {
	return e.b.BlockSize()
}

func (e *ecb) CryptBlocks(dst, src []byte) {
	bs := e.b.BlockSize()
	if len(src)%bs != 0 {
		panic("ecb: input not full blocks")
	}
	if len(dst) < len(src) {
		panic("ecb: output smaller than input")
	}

	for len(src) > 0 {
		if e.decrypt {
			e.b.Decrypt(dst[:bs], src[:bs])
		} else {
			e.b.Encrypt(dst[:bs], src[:bs])
		}
		src = src[bs:]
		dst = dst[bs:]
	}
}

// Pad extends data with zero bytes to a multiple of blockSize. Data already
// block-aligned, including empty data, is returned unchanged. Zero padding is
// not self-describing: callers that need to recover the exact plaintext length
// must carry it out of band.
func Pad(data []byte, blockSize int) []byte {
	if blockSize <= 0 {
		panic("ecb: block size must be positive")
	}

	rem := len(data) % blockSize
	if rem == 0 {
		return data
	}

	padded := make([]byte, len(data)+blockSize-rem)
	copy(padded, data)
	return padded
}
