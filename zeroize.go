// zeroize.go - Secret-wiping helpers.
//
// To the extent possible under law, Yawning Angel has waived all copyright
// and related or neighboring rights to the software, using the Creative
// Commons "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

package kyber

// zeroizeBytes overwrites every byte of b with 0. KeyGen wipes its random
// seed d and the SHA3-512 output derived from it via defer zeroizeBytes(buf),
// so they are wiped on every exit path once filled; getNoise wipes its
// SHAKE-256 output directly. The coins buffer passed to Encrypt belongs to
// the caller and is not wiped.
func zeroizeBytes(b []byte) {
	for i := range b {
		b[i] = 0
	}
}

// zeroizePolyVec overwrites every coefficient of every polynomial in v.
// Used to scrub secret vectors (s, sp, noise) on scope exit.
func zeroizePolyVec(v *polyVec) {
	if v != nil {
		v.zero()
	}
}

// zeroizePoly overwrites every coefficient of p.
func zeroizePoly(p *poly) {
	if p != nil {
		p.zero()
	}
}
