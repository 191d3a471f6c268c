// poly.go - Kyber polynomial.
//
// To the extent possible under law, Yawning Angel has waived all copyright
// and related or neighboring rights to the software, using the Creative
// Commons "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

package kyber

// Elements of R_q = Z_q[X]/(X^256 + 1). Represents the polynomial
// coeffs[0] + X*coeffs[1] + X^2*coeffs[2] + ... + X^255*coeffs[255].
//
// Coefficients are signed 16-bit integers. Intermediate values may exceed
// the canonical [0, q) range; every operation that hands coefficients to a
// caller (toBytes, compress, toMsg) maps each coefficient into [0, q) with
// toCanonical first. None of them Barrett-reduces; they expect coefficients
// that reduce() has already brought into (-q, q).
type poly struct {
	coeffs [kyberN]int16
}

// add computes p = a + b, coefficient-wise, without reduction.
func (p *poly) add(a, b *poly) {
	for i := range p.coeffs {
		p.coeffs[i] = a.coeffs[i] + b.coeffs[i]
	}
}

// sub computes p = a - b, coefficient-wise, without reduction.
func (p *poly) sub(a, b *poly) {
	for i := range p.coeffs {
		p.coeffs[i] = a.coeffs[i] - b.coeffs[i]
	}
}

// reduce Barrett-reduces every coefficient of p in place.
func (p *poly) reduce() {
	for i := range p.coeffs {
		p.coeffs[i] = barrettReduce(p.coeffs[i])
	}
}

// toMont multiplies every coefficient of p by R^2 mod q, bringing it into
// Montgomery form, in place.
func (p *poly) toMont() {
	for i := range p.coeffs {
		p.coeffs[i] = modQMulMont(p.coeffs[i], montR2)
	}
}

// toBytes packs p, whose coefficients must be canonical (in [0, q)), into
// 384 bytes: two 12-bit lanes per three bytes, little-endian.
func (p *poly) toBytes(r []byte) {
	for i := 0; i < kyberN/2; i++ {
		t0 := uint16(toCanonical(p.coeffs[2*i]))
		t1 := uint16(toCanonical(p.coeffs[2*i+1]))

		r[3*i+0] = byte(t0 & 0xff)
		r[3*i+1] = byte((t0 >> 8) | ((t1 & 0x0f) << 4))
		r[3*i+2] = byte(t1 >> 4)
	}
}

// fromBytes unpacks a 384-byte buffer into p; the approximate inverse of
// toBytes. Coefficients are recovered as 12-bit values in [0, 4095]; they
// lie in [0, q) for any buffer toBytes produced, and no reduction is
// applied to larger values.
func (p *poly) fromBytes(a []byte) {
	for i := 0; i < kyberN/2; i++ {
		t0 := uint16(a[3*i+0]) | (uint16(a[3*i+1]&0x0f) << 8)
		t1 := uint16(a[3*i+1]>>4) | (uint16(a[3*i+2]) << 4)

		p.coeffs[2*i+0] = int16(t0)
		p.coeffs[2*i+1] = int16(t1)
	}
}

// fromMsg converts a 32-byte message into a polynomial: each bit becomes a
// coefficient of either 0 or ceil(q/2) = 1665.
func (p *poly) fromMsg(msg []byte) {
	const half = (kyberQ + 1) / 2

	for i := 0; i < SymSize; i++ {
		for j := 0; j < 8; j++ {
			mask := -int16((msg[i] >> uint(j)) & 1)
			p.coeffs[8*i+j] = mask & half
		}
	}
}

// toMsg converts a polynomial into a 32-byte message; the approximate
// inverse of fromMsg.
func (p *poly) toMsg(msg []byte) {
	for i := 0; i < SymSize; i++ {
		msg[i] = 0
		for j := 0; j < 8; j++ {
			c := toCanonical(p.coeffs[8*i+j])
			t := (uint32(c)<<1 + kyberQ/2) / kyberQ & 1
			msg[i] |= byte(t << uint(j))
		}
	}
}

// compress lossily compresses p to d bits per coefficient (d is dv, 4 or 5,
// or du, 10 or 11) and serializes the result into r.
func (p *poly) compress(r []byte, d int) {
	switch d {
	case 4:
		var t [8]byte
		for i := 0; i < kyberN/8; i++ {
			for j := 0; j < 8; j++ {
				c := uint32(toCanonical(p.coeffs[8*i+j]))
				t[j] = byte((((c << 4) + kyberQ/2) / kyberQ) & 0x0f)
			}
			r[4*i+0] = t[0] | (t[1] << 4)
			r[4*i+1] = t[2] | (t[3] << 4)
			r[4*i+2] = t[4] | (t[5] << 4)
			r[4*i+3] = t[6] | (t[7] << 4)
		}
	case 5:
		var t [8]byte
		for i := 0; i < kyberN/8; i++ {
			for j := 0; j < 8; j++ {
				c := uint32(toCanonical(p.coeffs[8*i+j]))
				t[j] = byte((((c << 5) + kyberQ/2) / kyberQ) & 0x1f)
			}
			r[5*i+0] = (t[0] >> 0) | (t[1] << 5)
			r[5*i+1] = (t[1] >> 3) | (t[2] << 2) | (t[3] << 7)
			r[5*i+2] = (t[3] >> 1) | (t[4] << 4)
			r[5*i+3] = (t[4] >> 4) | (t[5] << 1) | (t[6] << 6)
			r[5*i+4] = (t[6] >> 2) | (t[7] << 3)
		}
	case 10, 11:
		var acc uint32
		var bits uint
		pos := 0
		for i := 0; i < kyberN; i++ {
			c := uint32(toCanonical(p.coeffs[i]))
			acc |= ((((c << uint(d)) + kyberQ/2) / kyberQ) & (1<<uint(d) - 1)) << bits
			for bits += uint(d); bits >= 8; bits -= 8 {
				r[pos] = byte(acc)
				acc >>= 8
				pos++
			}
		}
	default:
		panic("kyber: invalid dv")
	}
}

// decompress deserializes a d-bit-per-coefficient compressed polynomial
// from a; the approximate inverse of compress.
func (p *poly) decompress(a []byte, d int) {
	switch d {
	case 4:
		for i := 0; i < kyberN/2; i++ {
			p.coeffs[2*i+0] = int16(((uint32(a[i]&0x0f) * kyberQ) + 8) >> 4)
			p.coeffs[2*i+1] = int16(((uint32(a[i]>>4) * kyberQ) + 8) >> 4)
		}
	case 5:
		var t [8]byte
		for i := 0; i < kyberN/8; i++ {
			off := 5 * i
			t[0] = a[off+0] >> 0
			t[1] = (a[off+0] >> 5) | (a[off+1] << 3)
			t[2] = a[off+1] >> 2
			t[3] = (a[off+1] >> 7) | (a[off+2] << 1)
			t[4] = (a[off+2] >> 4) | (a[off+3] << 4)
			t[5] = a[off+3] >> 1
			t[6] = (a[off+3] >> 6) | (a[off+4] << 2)
			t[7] = a[off+4] >> 3

			for j := 0; j < 8; j++ {
				p.coeffs[8*i+j] = int16(((uint32(t[j]&0x1f) * kyberQ) + 16) >> 5)
			}
		}
	case 10, 11:
		var acc uint32
		var bits uint
		pos := 0
		for i := 0; i < kyberN; i++ {
			for ; bits < uint(d); bits += 8 {
				acc |= uint32(a[pos]) << bits
				pos++
			}
			t := acc & (1<<uint(d) - 1)
			acc >>= uint(d)
			bits -= uint(d)
			p.coeffs[i] = int16((t*kyberQ + 1<<uint(d-1)) >> uint(d))
		}
	default:
		panic("kyber: invalid dv")
	}
}

// zero overwrites every coefficient of p with 0.
func (p *poly) zero() {
	for i := range p.coeffs {
		p.coeffs[i] = 0
	}
}
