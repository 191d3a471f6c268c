// poly_test.go - Polynomial serialization and message-encoding tests.
//
// To the extent possible under law, Yawning Angel has waived all copyright
// and related or neighboring rights to the software, using the Creative
// Commons "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

package kyber

import (
	crand "crypto/rand"
	mrand "math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPolyToBytesFromBytesRoundTrip(t *testing.T) {
	rng := mrand.New(mrand.NewSource(7))

	var p poly
	for i := range p.coeffs {
		p.coeffs[i] = int16(rng.Intn(kyberQ))
	}
	// Exercise the documented boundary coefficients explicitly.
	p.coeffs[0] = 0
	p.coeffs[1] = kyberQ - 1

	buf := make([]byte, polyBytes)
	p.toBytes(buf)

	var q poly
	q.fromBytes(buf)

	require.Equal(t, p.coeffs, q.coeffs)
}

func TestPolyCompressDecompressIdempotent(t *testing.T) {
	rng := mrand.New(mrand.NewSource(8))

	for _, d := range []int{4, 5} {
		var p poly
		for i := range p.coeffs {
			p.coeffs[i] = int16(rng.Intn(kyberQ))
		}

		size := compressedPolySize(d)
		buf := make([]byte, size)
		p.compress(buf, d)

		var q poly
		q.decompress(buf, d)

		// Compressing the decompressed polynomial again must reproduce
		// the same compressed bytes (compress/decompress is idempotent
		// on its own image).
		buf2 := make([]byte, size)
		q.compress(buf2, d)

		require.Equal(t, buf, buf2, "d=%d", d)
	}
}

func TestPolyDecompressCompressErrorBound(t *testing.T) {
	rng := mrand.New(mrand.NewSource(9))

	for _, d := range []int{4, 5} {
		maxErr := int32(0)
		// ceil(q/2^(d+1)); +1 covers the extra half-step introduced by
		// compress's own rounding before decompress rounds again.
		bound := int32((kyberQ+(1<<uint(d+1))-1)>>uint(d+1)) + 1

		var p poly
		for i := range p.coeffs {
			p.coeffs[i] = int16(rng.Intn(kyberQ))
		}

		size := compressedPolySize(d)
		buf := make([]byte, size)
		p.compress(buf, d)

		var q poly
		q.decompress(buf, d)

		for i := range p.coeffs {
			a := int32(toCanonical(p.coeffs[i]))
			b := int32(toCanonical(q.coeffs[i]))
			diff := a - b
			if diff < 0 {
				diff = -diff
			}
			if diff > kyberQ/2 {
				diff = kyberQ - diff
			}
			if diff > maxErr {
				maxErr = diff
			}
		}

		require.LessOrEqual(t, maxErr, bound, "d=%d", d)
	}
}

func TestPolyFromMsgToMsgRoundTrip(t *testing.T) {
	var msg [SymSize]byte
	if _, err := crand.Read(msg[:]); err != nil {
		t.Fatal(err)
	}

	var p poly
	p.fromMsg(msg[:])

	var out [SymSize]byte
	p.toMsg(out[:])

	require.Equal(t, msg, out)
}

func TestPolyFromMsgZeroAndAllOnes(t *testing.T) {
	var zero, ones [SymSize]byte
	for i := range ones {
		ones[i] = 0xff
	}

	var pz, po poly
	pz.fromMsg(zero[:])
	po.fromMsg(ones[:])

	for _, c := range pz.coeffs {
		require.EqualValues(t, 0, c)
	}
	for _, c := range po.coeffs {
		require.EqualValues(t, (kyberQ+1)/2, c)
	}
}
