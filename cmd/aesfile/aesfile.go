// Command aesfile encrypts or decrypts a file with AES-128 in ECB mode. The
// key is given as 32 hex characters; plaintext is processed in 16-byte blocks
// with the final short block zero-padded, and ciphertext is written as
// lowercase hex.
package main

import (
	"encoding/hex"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/george-galvin/rijndael"
	"github.com/george-galvin/rijndael/ecb"
)

func main() {
	log := slog.New(slog.Default().Handler())

	keyHex := flag.String("key", "", "the key as 32 hex characters")
	in := flag.String("in", "", "the input file")
	out := flag.String("out", "", "the output file (default: input name with _aes or _plain)")
	decrypt := flag.Bool("decrypt", false, "decrypt a hex ciphertext file instead of encrypting")
	trace := flag.Bool("trace", false, "log every processed block")
	flag.Parse()

	if err := run(log, *keyHex, *in, *out, *decrypt, *trace); err != nil {
		log.Error("aesfile failed", "err", err)
		os.Exit(1)
	}
}

func run(log *slog.Logger, keyHex, in, out string, decrypt, trace bool) error {
	key, err := hex.DecodeString(keyHex)
	if err != nil || len(key) != rijndael.KeySize {
		return fmt.Errorf("key must be %d hex characters", 2*rijndael.KeySize)
	}
	if in == "" {
		return errors.New("no input file")
	}
	if out == "" {
		out = deriveOutputName(in, decrypt)
	}

	c, err := rijndael.NewCipher(key)
	if err != nil {
		return err
	}
	if rijndael.SupportsHardwareAES() {
		log.Info("CPU has AES instructions; this tool uses the software implementation regardless")
	}

	data, err := os.ReadFile(in)
	if err != nil {
		return err
	}

	var result []byte
	if decrypt {
		ciphertext, err := hex.DecodeString(strings.Join(strings.Fields(string(data)), ""))
		if err != nil {
			return fmt.Errorf("decoding ciphertext: %w", err)
		}
		if len(ciphertext)%rijndael.BlockSize != 0 {
			return fmt.Errorf("ciphertext is %d bytes, not a multiple of %d", len(ciphertext), rijndael.BlockSize)
		}

		result = make([]byte, len(ciphertext))
		ecb.NewDecrypter(c).CryptBlocks(result, ciphertext)
		traceBlocks(log, trace, result)

		if err := os.WriteFile(out, result, 0o644); err != nil {
			return err
		}
	} else {
		plaintext := ecb.Pad(data, rijndael.BlockSize)
		result = make([]byte, len(plaintext))
		ecb.NewEncrypter(c).CryptBlocks(result, plaintext)
		traceBlocks(log, trace, result)

		if err := os.WriteFile(out, []byte(hex.EncodeToString(result)), 0o644); err != nil {
			return err
		}
	}

	log.Info("completed", "in", in, "out", out, "blocks", len(result)/rijndael.BlockSize)
	return nil
}

func traceBlocks(log *slog.Logger, trace bool, blocks []byte) {
	if !trace {
		return
	}
	for i := 0; i < len(blocks); i += rijndael.BlockSize {
		log.Info("block", "index", i/rijndael.BlockSize, "bytes", hex.EncodeToString(blocks[i:i+rijndael.BlockSize]))
	}
}

// deriveOutputName appends _aes (or _plain, when decrypting) to the file name
// ahead of its extension: secrets.txt becomes secrets_aes.txt.
func deriveOutputName(in string, decrypt bool) string {
	suffix := "_aes"
	if decrypt {
		suffix = "_plain"
	}
	ext := filepath.Ext(in)
	return strings.TrimSuffix(in, ext) + suffix + ext
}
