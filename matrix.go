// matrix.go - Deterministic expansion of the public matrix A.
//
// To the extent possible under law, Yawning Angel has waived all copyright
// and related or neighboring rights to the software, using the Creative
// Commons "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

package kyber

import "golang.org/x/crypto/sha3"

// generateMatrix deterministically derives the k*k public matrix A (or its
// transpose) from a 32-byte seed. Each entry is a polynomial that is
// already in NTT-domain representation by construction: its coefficients
// are produced directly by rejection sampling uniform SHAKE-128 output, so
// it is never run through ntt() itself.
func generateMatrix(a []polyVec, seed []byte, transposed bool) {
	const (
		shake128Rate = 168 // sha3.NewShake128's block size.
		initBlocks   = 3
	)

	var extSeed [SymSize + 2]byte
	copy(extSeed[:SymSize], seed)

	xof := sha3.NewShake128()
	buf := make([]byte, shake128Rate*initBlocks)

	for i := range a {
		for j := range a[i].vec {
			if transposed {
				extSeed[SymSize] = byte(i)
				extSeed[SymSize+1] = byte(j)
			} else {
				extSeed[SymSize] = byte(j)
				extSeed[SymSize+1] = byte(i)
			}

			xof.Reset()
			xof.Write(extSeed[:])
			xof.Read(buf)

			p := a[i].vec[j]
			ctr := generateUniform(p.coeffs[:], kyberN, buf)
			for ctr < kyberN {
				var more [shake128Rate]byte
				xof.Read(more[:])
				ctr += generateUniform(p.coeffs[ctr:], kyberN-ctr, more[:])
			}
		}
	}
}
