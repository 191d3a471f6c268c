// ntt.go - Number-Theoretic Transform.
//
// To the extent possible under law, Yawning Angel has waived all copyright
// and related or neighboring rights to the software, using the Creative
// Commons "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

package kyber

// ntt computes the negacyclic number-theoretic transform of a polynomial
// (256 coefficients) in place. Input is assumed in normal order, output in
// bit-reversed order. Seven Cooley-Tukey butterfly layers collapse
// Z_q[X]/(X^256+1) down to 128 degree-2 factors X^2 - zeta; the caller must reduce
// coefficients before serialization, since this does not apply a final
// reduction.
func (p *poly) ntt() {
	k := 1
	for length := 128; length >= 2; length >>= 1 {
		for start := 0; start < kyberN; start += 2 * length {
			zeta := zetas[k]
			k++
			for j := start; j < start+length; j++ {
				t := modQMulMont(zeta, p.coeffs[j+length])
				p.coeffs[j+length] = p.coeffs[j] - t
				p.coeffs[j] = p.coeffs[j] + t
			}
		}
	}
}

// invNTT computes the inverse of ntt in place. Input is assumed in
// bit-reversed order, output in normal order. The final pass multiplies
// every coefficient by invNTTScale to undo the transform's implicit factor
// of 128 and to exit Montgomery form.
func (p *poly) invNTT() {
	k := 127
	for length := 2; length <= 128; length <<= 1 {
		for start := 0; start < kyberN; start += 2 * length {
			zeta := zetas[k]
			k--
			for j := start; j < start+length; j++ {
				t := p.coeffs[j]
				p.coeffs[j] = barrettReduce(t + p.coeffs[j+length])
				p.coeffs[j+length] = p.coeffs[j+length] - t
				p.coeffs[j+length] = modQMulMont(zeta, p.coeffs[j+length])
			}
		}
	}

	for i := range p.coeffs {
		p.coeffs[i] = modQMulMont(p.coeffs[i], invNTTScale)
	}
}

// basemul computes the product of two degree-1 polynomials
// (a0 + a1*X) * (b0 + b1*X) mod (X^2 - zeta), all arithmetic in Montgomery
// form. Returns (r0, r1) such that the product is r0 + r1*X.
func basemul(a0, a1, b0, b1, zeta int16) (r0, r1 int16) {
	r0 = modQMulMont(a1, b1)
	r0 = modQMulMont(r0, zeta)
	r0 += modQMulMont(a0, b0)
	r1 = modQMulMont(a0, b1)
	r1 += modQMulMont(a1, b0)
	return
}
