// polyvec.go - Vector of Kyber polynomials.
//
// To the extent possible under law, Yawning Angel has waived all copyright
// and related or neighboring rights to the software, using the Creative
// Commons "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

package kyber

// polyVec is a vector of k polynomials, k in {2,3,4}.
type polyVec struct {
	vec []*poly
}

func newPolyVec(k int) polyVec {
	vec := make([]*poly, k)
	for i := range vec {
		vec[i] = new(poly)
	}
	return polyVec{vec}
}

func newMatrix(k int) []polyVec {
	m := make([]polyVec, k)
	for i := range m {
		m[i] = newPolyVec(k)
	}
	return m
}

// ntt applies the forward NTT to every element of v, in place.
func (v *polyVec) ntt() {
	for _, p := range v.vec {
		p.ntt()
	}
}

// invNTT applies the inverse NTT to every element of v, in place.
func (v *polyVec) invNTT() {
	for _, p := range v.vec {
		p.invNTT()
	}
}

// add computes v = a + b, element-wise, without reduction.
func (v *polyVec) add(a, b *polyVec) {
	for i, p := range v.vec {
		p.add(a.vec[i], b.vec[i])
	}
}

// reduce Barrett-reduces every coefficient of every element of v.
func (v *polyVec) reduce() {
	for _, p := range v.vec {
		p.reduce()
	}
}

// toBytes serializes v.
func (v *polyVec) toBytes(r []byte) {
	for i, p := range v.vec {
		p.toBytes(r[i*polyBytes:])
	}
}

// fromBytes deserializes v; the inverse of toBytes.
func (v *polyVec) fromBytes(a []byte) {
	for i, p := range v.vec {
		p.fromBytes(a[i*polyBytes:])
	}
}

// compress compresses and serializes v at du bits per coefficient.
func (v *polyVec) compress(r []byte, du int) {
	stride := compressedPolySize(du)
	for i, p := range v.vec {
		p.compress(r[i*stride:], du)
	}
}

// decompress deserializes and decompresses v; the approximate inverse of
// compress.
func (v *polyVec) decompress(a []byte, du int) {
	stride := compressedPolySize(du)
	for i, p := range v.vec {
		p.decompress(a[i*stride:], du)
	}
}

// pointWiseAccMont computes p = sum_i a[i] ∘ b[i], where ∘ is the
// NTT-domain pointwise product, with Montgomery-form accumulation. The
// result is left in Montgomery form.
//
// The 256-coefficient NTT domain is treated as 128 independent quotient
// rings Z_q[X]/(X^2 - zeta), each carrying two consecutive coefficients
// (a degree-1 polynomial); zetas[64+i] and its negation parameterize the two
// conjugate quotients per group of four coefficients, a pairwise basemul
// over (X^2 - zeta^(2*br(i)+1)).
func (p *poly) pointWiseAccMont(a, b *polyVec) {
	p.basemulAll(a.vec[0], b.vec[0])

	var t poly
	for i := 1; i < len(a.vec); i++ {
		t.basemulAll(a.vec[i], b.vec[i])
		p.add(p, &t)
	}
	p.reduce()
}

// basemulAll computes p = a ∘ b in the NTT domain for a single polynomial
// pair, via 128 basemuls of degree-1 polynomials (two per group of four
// coefficients).
func (p *poly) basemulAll(a, b *poly) {
	for i := 0; i < kyberN/4; i++ {
		zeta := zetas[64+i]

		r0, r1 := basemul(a.coeffs[4*i], a.coeffs[4*i+1], b.coeffs[4*i], b.coeffs[4*i+1], zeta)
		p.coeffs[4*i+0] = r0
		p.coeffs[4*i+1] = r1

		r2, r3 := basemul(a.coeffs[4*i+2], a.coeffs[4*i+3], b.coeffs[4*i+2], b.coeffs[4*i+3], -zeta)
		p.coeffs[4*i+2] = r2
		p.coeffs[4*i+3] = r3
	}
}

// zero overwrites every coefficient of every element of v with 0.
func (v *polyVec) zero() {
	for _, p := range v.vec {
		p.zero()
	}
}
