// sample.go - Rejection sampling and noise-polynomial generation.
//
// To the extent possible under law, Yawning Angel has waived all copyright
// and related or neighboring rights to the software, using the Creative
// Commons "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

package kyber

import "golang.org/x/crypto/sha3"

// generateUniform performs rejection sampling over buf, interpreting it as
// a stream of 12-bit little-endian lanes (two lanes per three bytes), and
// writes every accepted lane (< kyberQ) into r until need coefficients have
// been produced or buf is exhausted. It returns the number of coefficients
// written.
//
// Acceptance probability is kyberQ/4096 ≈ 0.813; callers squeeze more XOF
// output when the returned count is short of need.
func generateUniform(r []int16, need int, buf []byte) int {
	ctr, pos := 0, 0
	buflen := len(buf)

	for ctr < need && pos+3 <= buflen {
		d1 := uint16(buf[pos]) | (uint16(buf[pos+1]&0x0f) << 8)
		d2 := uint16(buf[pos+1]>>4) | (uint16(buf[pos+2]) << 4)
		pos += 3

		if d1 < kyberQ {
			r[ctr] = int16(d1)
			ctr++
		}
		if ctr < need && d2 < kyberQ {
			r[ctr] = int16(d2)
			ctr++
		}
	}

	return ctr
}

// getNoise deterministically samples a polynomial from a centered
// binomial distribution with parameter eta, using SHAKE-256(seed‖nonce) as
// the source of uniform bytes (the "PRF" in the Kyber specification).
func (p *poly) getNoise(seed []byte, nonce byte, eta int) {
	var extSeed [SymSize + 1]byte
	copy(extSeed[:SymSize], seed)
	extSeed[SymSize] = nonce

	buf := make([]byte, eta*kyberN/4)
	sha3.ShakeSum256(buf, extSeed[:])

	p.cbd(buf, eta)
	zeroizeBytes(buf)
}
