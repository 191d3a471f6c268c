// cbd_test.go - Centered binomial distribution tests.
//
// To the extent possible under law, Yawning Angel has waived all copyright
// and related or neighboring rights to the software, using the Creative
// Commons "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

package kyber

import (
	"crypto/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCBDRange(t *testing.T) {
	for _, eta := range []int{2, 3} {
		buf := make([]byte, eta*kyberN/4)
		_, err := rand.Read(buf)
		require.NoError(t, err)

		var p poly
		p.cbd(buf, eta)

		for _, c := range p.coeffs {
			// cbd stores each coefficient directly as a signed value in
			// [-eta, eta], with no reduction mod q; the conversion below
			// would also map a representative above q/2 back to its
			// signed value before range-checking.
			v := int(c)
			if v > kyberQ/2 {
				v -= kyberQ
			}
			require.GreaterOrEqual(t, v, -eta, "eta=%d", eta)
			require.LessOrEqual(t, v, eta, "eta=%d", eta)
		}
	}
}

func TestCBDAllZeroInput(t *testing.T) {
	for _, eta := range []int{2, 3} {
		buf := make([]byte, eta*kyberN/4)

		var p poly
		p.cbd(buf, eta)

		for _, c := range p.coeffs {
			require.EqualValues(t, 0, c)
		}
	}
}

func TestCBDAllOnesInput(t *testing.T) {
	for _, eta := range []int{2, 3} {
		buf := make([]byte, eta*kyberN/4)
		for i := range buf {
			buf[i] = 0xff
		}

		var p poly
		p.cbd(buf, eta)

		// All-ones input maximizes every popcount lane, so a == b for
		// every coefficient and the centered difference is exactly 0.
		for _, c := range p.coeffs {
			require.EqualValues(t, 0, c)
		}
	}
}
