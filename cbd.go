// cbd.go - Centered binomial distribution.
//
// To the extent possible under law, Yawning Angel has waived all copyright
// and related or neighboring rights to the software, using the Creative
// Commons "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

package kyber

// loadLittleEndian reads the low `bytes` bytes of x into a uint32, in
// little-endian order.
func loadLittleEndian(x []byte, bytes int) uint32 {
	var r uint32
	for i := 0; i < bytes; i++ {
		r |= uint32(x[i]) << uint(8*i)
	}
	return r
}

// cbd fills p with coefficients drawn from the centered binomial
// distribution with parameter eta (2 or 3), consuming eta*kyberN/4 bytes
// of uniform input from buf.
func (p *poly) cbd(buf []byte, eta int) {
	switch eta {
	case 2:
		for i := 0; i < kyberN/8; i++ {
			t := loadLittleEndian(buf[4*i:], 4)
			d := t & 0x55555555
			d += (t >> 1) & 0x55555555

			for j := 0; j < 8; j++ {
				a := int16((d >> uint(4*j+0)) & 0x3)
				b := int16((d >> uint(4*j+2)) & 0x3)
				p.coeffs[8*i+j] = a - b
			}
		}
	case 3:
		for i := 0; i < kyberN/4; i++ {
			t := loadLittleEndian(buf[3*i:], 3)
			d := t & 0x00249249
			d += (t >> 1) & 0x00249249
			d += (t >> 2) & 0x00249249

			for j := 0; j < 4; j++ {
				a := int16((d >> uint(6*j+0)) & 0x7)
				b := int16((d >> uint(6*j+3)) & 0x7)
				p.coeffs[4*i+j] = a - b
			}
		}
	default:
		panic("kyber: eta must be 2 or 3")
	}
}
