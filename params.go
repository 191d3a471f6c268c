// params.go - Kyber parameterization.
//
// To the extent possible under law, Yawning Angel has waived all copyright
// and related or neighboring rights to the software, using the Creative
// Commons "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

package kyber

const (
	// SymSize is the size, in bytes, of symmetric keying material: seeds,
	// the shared message, and the encryption coins.
	SymSize = 32

	// polyBytes is the size of a serialized uncompressed polynomial: 256
	// coefficients packed 12 bits each, two coefficients per three bytes.
	polyBytes = 384
)

// compressedPolySize returns ceil(256*d/8), the size in bytes of a single
// polynomial compressed to d bits per coefficient.
func compressedPolySize(d int) int {
	return (kyberN*d + 7) / 8
}

// ParameterSet is a Kyber parameter set, selecting the module rank k and
// the noise/compression parameters that go with it.
type ParameterSet struct {
	name string

	k    int
	eta1 int
	eta2 int
	du   int
	dv   int

	polyVecBytes           int
	polyCompressedBytes    int
	polyVecCompressedBytes int

	publicKeyBytes  int
	secretKeyBytes  int
	cipherTextBytes int
}

var (
	// K512 is the Kyber-512 parameter set (k=2), targeting security
	// roughly equivalent to AES-128.
	K512 = newParameterSet("Kyber-512", 2, 3, 2, 10, 4)

	// K768 is the Kyber-768 parameter set (k=3), targeting security
	// roughly equivalent to AES-192.
	K768 = newParameterSet("Kyber-768", 3, 2, 2, 10, 4)

	// K1024 is the Kyber-1024 parameter set (k=4), targeting security
	// roughly equivalent to AES-256.
	K1024 = newParameterSet("Kyber-1024", 4, 2, 2, 11, 5)
)

// Name returns the name of a given ParameterSet.
func (p *ParameterSet) Name() string {
	return p.name
}

// K returns the module rank of a given ParameterSet.
func (p *ParameterSet) K() int {
	return p.k
}

// PublicKeySize returns the size of a public key in bytes.
func (p *ParameterSet) PublicKeySize() int {
	return p.publicKeyBytes
}

// SecretKeySize returns the size of a secret key in bytes.
func (p *ParameterSet) SecretKeySize() int {
	return p.secretKeyBytes
}

// CipherTextSize returns the size of a ciphertext in bytes.
func (p *ParameterSet) CipherTextSize() int {
	return p.cipherTextBytes
}

func newParameterSet(name string, k, eta1, eta2, du, dv int) *ParameterSet {
	var p ParameterSet

	p.name = name
	p.k = k
	p.eta1 = eta1
	p.eta2 = eta2
	p.du = du
	p.dv = dv

	p.polyVecBytes = k * polyBytes
	p.polyCompressedBytes = compressedPolySize(dv)
	p.polyVecCompressedBytes = k * compressedPolySize(du)

	p.publicKeyBytes = p.polyVecBytes + SymSize
	p.secretKeyBytes = p.polyVecBytes
	p.cipherTextBytes = p.polyVecCompressedBytes + p.polyCompressedBytes

	return &p
}

func (p *ParameterSet) allocMatrix() []polyVec {
	return newMatrix(p.k)
}

func (p *ParameterSet) allocPolyVec() polyVec {
	return newPolyVec(p.k)
}
