// indcpa.go - Kyber IND-CPA public-key encryption.
//
// To the extent possible under law, Yawning Angel has waived all copyright
// and related or neighboring rights to the software, using the Creative
// Commons "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

package kyber

import (
	"errors"
	"io"

	"golang.org/x/crypto/sha3"
)

// ErrInvalidLength is the value Encrypt and Decrypt panic with when a
// public key, secret key, ciphertext, message, or coins buffer is the
// wrong size for the ParameterSet in use. No function in this package
// returns it as an error, per this package's fail-fast contract: a caller
// that hands a malformed buffer to a hot-path operation has a bug, and
// silently continuing risks operating on invalid memory or leaking
// structure via timing.
var ErrInvalidLength = errors.New("kyber: invalid length")

// packPublicKey serializes pk (NTT-domain, Montgomery-form) followed by
// the 32-byte publicSeed used to derive the matrix A.
func packPublicKey(r []byte, pk *polyVec, seed []byte) {
	pk.toBytes(r)
	copy(r[pk.byteLen():], seed[:SymSize])
}

// unpackPublicKey is the approximate inverse of packPublicKey.
func unpackPublicKey(pk *polyVec, seed, packedPk []byte) {
	pk.fromBytes(packedPk)
	off := pk.byteLen()
	copy(seed, packedPk[off:off+SymSize])
}

// packCiphertext serializes the compressed ciphertext vector bp followed
// by the compressed ciphertext polynomial v.
func packCiphertext(r []byte, bp *polyVec, v *poly, du, dv int) {
	bp.compress(r, du)
	v.compress(r[bp.compressedLen(du):], dv)
}

// unpackCiphertext is the approximate inverse of packCiphertext.
func unpackCiphertext(bp *polyVec, v *poly, c []byte, du, dv int) {
	bp.decompress(c, du)
	v.decompress(c[bp.compressedLen(du):], dv)
}

func (v *polyVec) byteLen() int {
	return len(v.vec) * polyBytes
}

func (v *polyVec) compressedLen(d int) int {
	return len(v.vec) * compressedPolySize(d)
}

// KeyGen generates an IND-CPA key pair using rng as the source of
// randomness. pk and sk are returned in their canonical wire encodings:
// pk is polyToBytes(pk[0])‖…‖polyToBytes(pk[k-1])‖publicSeed, sk is
// polyToBytes(s[0])‖…‖polyToBytes(s[k-1]).
func (p *ParameterSet) KeyGen(rng io.Reader) (pk, sk []byte, err error) {
	var d [SymSize]byte
	if _, err = io.ReadFull(rng, d[:]); err != nil {
		return nil, nil, err
	}
	defer zeroizeBytes(d[:])

	g := sha3.Sum512(d[:])
	defer zeroizeBytes(g[:])
	publicSeed, noiseSeed := g[:SymSize], g[SymSize:]

	a := p.allocMatrix()
	generateMatrix(a, publicSeed, false)

	s := p.allocPolyVec()
	defer zeroizePolyVec(&s)
	var nonce byte
	for _, pv := range s.vec {
		pv.getNoise(noiseSeed, nonce, p.eta1)
		nonce++
	}

	e := p.allocPolyVec()
	defer zeroizePolyVec(&e)
	for _, pv := range e.vec {
		pv.getNoise(noiseSeed, nonce, p.eta1)
		nonce++
	}

	s.ntt()
	s.reduce()
	e.ntt()

	pkpv := p.allocPolyVec()
	for i, pv := range pkpv.vec {
		pv.pointWiseAccMont(&a[i], &s)
		pv.toMont()
	}
	pkpv.add(&pkpv, &e)
	pkpv.reduce()

	sk = make([]byte, p.secretKeyBytes)
	s.toBytes(sk)

	pk = make([]byte, p.publicKeyBytes)
	packPublicKey(pk, &pkpv, publicSeed)

	return pk, sk, nil
}

// Encrypt encrypts a 32-byte message msg under public key pk, using coins
// as the 32 bytes of encryption randomness. It panics if pk is not exactly
// p.PublicKeySize() bytes, or msg/coins are not exactly SymSize bytes:
// those are caller contract violations, not recoverable runtime errors
// (see ErrInvalidLength).
func (p *ParameterSet) Encrypt(pk, msg, coins []byte) []byte {
	if len(pk) != p.publicKeyBytes {
		panic(ErrInvalidLength)
	}
	if len(msg) != SymSize || len(coins) != SymSize {
		panic(ErrInvalidLength)
	}

	var seed [SymSize]byte
	pkpv := p.allocPolyVec()
	unpackPublicKey(&pkpv, seed[:], pk)

	var k poly
	k.fromMsg(msg)
	defer zeroizePoly(&k)

	at := p.allocMatrix()
	generateMatrix(at, seed[:], true)

	sp := p.allocPolyVec()
	defer zeroizePolyVec(&sp)
	var nonce byte
	for _, pv := range sp.vec {
		pv.getNoise(coins, nonce, p.eta1)
		nonce++
	}

	ep := p.allocPolyVec()
	defer zeroizePolyVec(&ep)
	for _, pv := range ep.vec {
		pv.getNoise(coins, nonce, p.eta2)
		nonce++
	}

	sp.ntt()

	bp := p.allocPolyVec()
	for i, pv := range bp.vec {
		pv.pointWiseAccMont(&at[i], &sp)
	}
	bp.invNTT()
	bp.add(&bp, &ep)
	bp.reduce()

	var v poly
	v.pointWiseAccMont(&pkpv, &sp)
	v.invNTT()

	var epp poly
	defer zeroizePoly(&epp)
	epp.getNoise(coins, nonce, p.eta2)

	v.add(&v, &epp)
	v.add(&v, &k)
	v.reduce()

	ct := make([]byte, p.cipherTextBytes)
	packCiphertext(ct, &bp, &v, p.du, p.dv)

	return ct
}

// Decrypt decrypts ciphertext ct under secret key sk. It always returns 32
// bytes and never fails: if ct has been tampered with, the output is simply
// a different (wrong) 32-byte value. Detecting that is the responsibility
// of the CCA wrapper built on top of this core, not this function.
//
// Decrypt panics if ct or sk are not exactly p.CipherTextSize() /
// p.SecretKeySize() bytes, a caller contract violation.
func (p *ParameterSet) Decrypt(ct, sk []byte) []byte {
	if len(ct) != p.cipherTextBytes {
		panic(ErrInvalidLength)
	}
	if len(sk) != p.secretKeyBytes {
		panic(ErrInvalidLength)
	}

	bp, v := p.allocPolyVec(), poly{}
	unpackCiphertext(&bp, &v, ct, p.du, p.dv)

	s := p.allocPolyVec()
	defer zeroizePolyVec(&s)
	s.fromBytes(sk)

	bp.ntt()

	var mp poly
	mp.pointWiseAccMont(&s, &bp)
	mp.invNTT()

	mp.sub(&v, &mp)
	mp.reduce()

	msg := make([]byte, SymSize)
	mp.toMsg(msg)

	return msg
}
