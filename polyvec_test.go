// polyvec_test.go - Polynomial-vector layer tests.
//
// To the extent possible under law, Yawning Angel has waived all copyright
// and related or neighboring rights to the software, using the Creative
// Commons "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

package kyber

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func randomPolyVec(rng *rand.Rand, k int) polyVec {
	v := newPolyVec(k)
	for _, p := range v.vec {
		for i := range p.coeffs {
			p.coeffs[i] = int16(rng.Intn(kyberQ))
		}
	}
	return v
}

func TestPolyVecToBytesFromBytesRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(11))

	for _, k := range []int{2, 3, 4} {
		v := randomPolyVec(rng, k)

		buf := make([]byte, k*polyBytes)
		v.toBytes(buf)

		w := newPolyVec(k)
		w.fromBytes(buf)

		for i := range v.vec {
			require.Equal(t, v.vec[i].coeffs, w.vec[i].coeffs, "k=%d poly %d", k, i)
		}
	}
}

func TestPolyVecCompressDecompressErrorBound(t *testing.T) {
	rng := rand.New(rand.NewSource(12))

	cases := []struct{ k, d int }{
		{2, 10}, {3, 10}, {4, 11},
	}
	for _, c := range cases {
		v := randomPolyVec(rng, c.k)

		size := c.k * compressedPolySize(c.d)
		buf := make([]byte, size)
		v.compress(buf, c.d)

		w := newPolyVec(c.k)
		w.decompress(buf, c.d)

		bound := int32((kyberQ+(1<<uint(c.d+1))-1)>>uint(c.d+1)) + 1
		for i := range v.vec {
			for j := range v.vec[i].coeffs {
				a := int32(toCanonical(v.vec[i].coeffs[j]))
				b := int32(toCanonical(w.vec[i].coeffs[j]))
				diff := a - b
				if diff < 0 {
					diff = -diff
				}
				if diff > kyberQ/2 {
					diff = kyberQ - diff
				}
				require.LessOrEqual(t, diff, bound, "k=%d d=%d poly=%d coeff=%d", c.k, c.d, i, j)
			}
		}
	}
}

func TestPointWiseAccMontDistributesOverAdd(t *testing.T) {
	rng := rand.New(rand.NewSource(13))
	const k = 3

	a := randomPolyVec(rng, k)
	b := randomPolyVec(rng, k)
	c := randomPolyVec(rng, k)

	a.ntt()
	b.ntt()
	c.ntt()

	bc := newPolyVec(k)
	bc.add(&b, &c)

	var lhs poly
	lhs.pointWiseAccMont(&a, &bc)

	var ab, ac poly
	ab.pointWiseAccMont(&a, &b)
	ac.pointWiseAccMont(&a, &c)

	var rhs poly
	rhs.add(&ab, &ac)
	rhs.reduce()

	for i := range lhs.coeffs {
		l := toCanonical(barrettReduce(lhs.coeffs[i]))
		r := toCanonical(barrettReduce(rhs.coeffs[i]))
		require.Equal(t, r, l, "coefficient %d", i)
	}
}
