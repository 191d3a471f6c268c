// zeroize_test.go - Secret-wiping helper tests.
//
// To the extent possible under law, Yawning Angel has waived all copyright
// and related or neighboring rights to the software, using the Creative
// Commons "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

package kyber

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestZeroizeBytes(t *testing.T) {
	b := []byte{1, 2, 3, 4, 5}
	zeroizeBytes(b)
	for _, v := range b {
		require.EqualValues(t, 0, v)
	}
}

func TestZeroizePolyAndPolyVec(t *testing.T) {
	var p poly
	for i := range p.coeffs {
		p.coeffs[i] = int16(i + 1)
	}
	zeroizePoly(&p)
	for _, c := range p.coeffs {
		require.EqualValues(t, 0, c)
	}

	v := newPolyVec(3)
	for _, pv := range v.vec {
		for i := range pv.coeffs {
			pv.coeffs[i] = 7
		}
	}
	zeroizePolyVec(&v)
	for _, pv := range v.vec {
		for _, c := range pv.coeffs {
			require.EqualValues(t, 0, c)
		}
	}
}
