package rijndael

// scheduleSize is the size, in bytes, of an expanded AES-128 key: eleven
// 16-byte round keys.
const scheduleSize = 176

// nextRoundConstant advances the Rcon sequence: doubling in GF(2^8), with the
// reduction XOR applied only when the previous value overflows a byte.
func nextRoundConstant(rc byte) byte {
	if rc < 0x80 {
		return rc << 1
	}
	return rc<<1 ^ 0x1b
}

// expandKey expands a 16-byte key into the full round-key schedule per
// FIPS-197 §5.2. The first four words are the key itself; every fourth word
// thereafter is rotated, substituted, and folded with the round constant
// before being XORed against the word four back.
func expandKey(tab *tables, key []byte) (sched [scheduleSize]byte) {
	copy(sched[:16], key)

	rc := byte(1)
	for i := 4; i < 44; i++ {
		var w [4]byte
		copy(w[:], sched[4*(i-1):4*i])

		if i%4 == 0 {
			// RotWord
			w[0], w[1], w[2], w[3] = w[1], w[2], w[3], w[0]
			// SubWord
			for j := range w {
				w[j] = tab.sbox[w[j]]
			}
			// Rcon
			w[0] ^= rc
			rc = nextRoundConstant(rc)
		}

		for j := range w {
			sched[4*i+j] = sched[4*(i-4)+j] ^ w[j]
		}
	}
	return sched
}
