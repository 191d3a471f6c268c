// field.go - Modular arithmetic mod q = 3329.
//
// To the extent possible under law, Yawning Angel has waived all copyright
// and related or neighboring rights to the software, using the Creative
// Commons "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

package kyber

const (
	kyberN = 256
	kyberQ = 3329

	// qinv = q^-1 mod 2^16, used by montgomeryReduce.
	qinv = 62209

	// montR2 = R^2 mod q, where R = 2^16; brings a canonical coefficient
	// into Montgomery form via modQMulMont.
	montR2 = 1353

	// invNTTScale = R^2 / 128 mod q; undoes the NTT's implicit factor of
	// 128 and exits Montgomery form in one pass.
	invNTTScale = 1441
)

// montgomeryReduce computes a 16-bit integer congruent to a * R^-1 mod q,
// where R = 2^16, for a in [-q*R/2, q*R/2). The result satisfies
// |montgomeryReduce(a)| < q.
func montgomeryReduce(a int32) int16 {
	u := int16(int32(int16(a)) * qinv)
	t := int32(u) * kyberQ
	t = a - t
	t >>= 16
	return int16(t)
}

// barrettReduce computes a 16-bit integer congruent to a mod q, for any
// int16 a, with the result in (-q/2, q/2].
func barrettReduce(a int16) int16 {
	const v = 20159 // floor((1<<26 + q/2) / q)

	t := int16((int32(v)*int32(a) + (1 << 25)) >> 26)
	t *= kyberQ
	return a - t
}

// toCanonical adds q to a negative barrett-reduced coefficient so that the
// result lies in [0, q).
func toCanonical(a int16) int16 {
	a += (a >> 15) & kyberQ
	return a
}

// modQMulMont computes montgomeryReduce(a * b).
func modQMulMont(a, b int16) int16 {
	return montgomeryReduce(int32(a) * int32(b))
}
