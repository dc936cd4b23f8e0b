package ecb_test

import (
	"bytes"
	"encoding/hex"
	"testing"

	"github.com/george-galvin/rijndael"
	"github.com/george-galvin/rijndael/ecb"
)

func newCipher(t *testing.T) *rijndael.Cipher {
	t.Helper()

	key, _ := hex.DecodeString("000102030405060708090a0b0c0d0e0f")
	c, err := rijndael.NewCipher(key)
	if err != nil {
		t.Fatal(err)
	}
	return c
}

func TestRoundTrip(t *testing.T) {
	c := newCipher(t)
	plaintext := ecb.Pad([]byte("attack at dawn, then again at noon if the first one fizzles"), rijndael.BlockSize)

	ciphertext := make([]byte, len(plaintext))
	ecb.NewEncrypter(c).CryptBlocks(ciphertext, plaintext)
	if bytes.Equal(ciphertext, plaintext) {
		t.Fatal("ciphertext equals plaintext")
	}

	decrypted := make([]byte, len(ciphertext))
	ecb.NewDecrypter(c).CryptBlocks(decrypted, ciphertext)
	if !bytes.Equal(decrypted, plaintext) {
		t.Errorf("round trip = %x, want = %x", decrypted, plaintext)
	}
}

func TestIdenticalBlocksLeak(t *testing.T) {
	// ECB's defining weakness, asserted as expected behavior: equal plaintext
	// blocks yield equal ciphertext blocks.
	c := newCipher(t)
	plaintext := bytes.Repeat([]byte("yellow submarine"), 2)

	ciphertext := make([]byte, len(plaintext))
	ecb.NewEncrypter(c).CryptBlocks(ciphertext, plaintext)

	if !bytes.Equal(ciphertext[:16], ciphertext[16:]) {
		t.Errorf("identical blocks encrypted differently: %x != %x", ciphertext[:16], ciphertext[16:])
	}
}

func TestPad(t *testing.T) {
	tests := []struct {
		in   int
		want int
	}{
		{0, 0},
		{1, 16},
		{15, 16},
		{16, 16},
		{17, 32},
		{32, 32},
	}

	for _, tt := range tests {
		in := bytes.Repeat([]byte{0xaa}, tt.in)
		got := ecb.Pad(in, 16)
		if len(got) != tt.want {
			t.Errorf("len(Pad(%d bytes)) = %d, want = %d", tt.in, len(got), tt.want)
		}
		if !bytes.Equal(got[:tt.in], in) {
			t.Errorf("Pad(%d bytes) altered the data prefix", tt.in)
		}
		for _, b := range got[tt.in:] {
			if b != 0 {
				t.Errorf("Pad(%d bytes) padded with %#02x, want zeros", tt.in, b)
			}
		}
	}
}

func TestCryptBlocksPanicsOnPartialBlock(t *testing.T) {
	c := newCipher(t)

	defer func() {
		if recover() == nil {
			t.Error("CryptBlocks of a partial block did not panic")
		}
	}()
	ecb.NewEncrypter(c).CryptBlocks(make([]byte, 15), make([]byte, 15))
}

func FuzzRoundTrip(f *testing.F) {
	f.Add([]byte("0123456789abcdef"), []byte("some message of arbitrary length"))

	f.Fuzz(func(t *testing.T, key, message []byte) {
		if len(key) != rijndael.KeySize {
			t.Skip()
		}

		c, err := rijndael.NewCipher(key)
		if err != nil {
			t.Fatal(err)
		}

		plaintext := ecb.Pad(message, rijndael.BlockSize)
		ciphertext := make([]byte, len(plaintext))
		ecb.NewEncrypter(c).CryptBlocks(ciphertext, plaintext)

		decrypted := make([]byte, len(ciphertext))
		ecb.NewDecrypter(c).CryptBlocks(decrypted, ciphertext)

		if !bytes.Equal(decrypted[:len(message)], message) {
			t.Errorf("round trip = %x, want prefix = %x", decrypted, message)
		}
	})
}
