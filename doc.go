// doc.go - Kyber godoc extras.
//
// To the extent possible under law, Yawning Angel has waived all copyright
// and related or neighboring rights to the software, using the Creative
// Commons "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

// Package kyber implements the IND-CPA-secure public-key encryption scheme
// underlying the Kyber key encapsulation mechanism (KEM), based on the
// hardness of solving the learning-with-errors (LWE) problem over module
// lattices, as standardized by NIST in FIPS 203.
//
// This package implements only the CPA-secure core: key generation,
// encryption of a fixed-length 32-byte message under a public key, and
// decryption of a ciphertext under the corresponding secret key. It does
// not implement the Fujisaki-Okamoto transform that upgrades the scheme to
// an IND-CCA2-secure KEM, nor any transport encoding, CLI, or configuration
// surface around it; those are the responsibility of a calling package.
//
// For more information, see https://pq-crystals.org/kyber/index.shtml and
// NIST FIPS 203.
package kyber
