package matrix

import "github.com/halfpixel/qrgen/internal/geometry"

const (
	formatGenerator  = 0x537  // x^10+x^8+x^5+x^4+x^2+x+1
	formatMask       = 0x5412 // XOR mask applied to the 15-bit format word
	versionGenerator = 0x1F25 // x^12+x^11+x^10+x^9+x^8+x^5+x^2+1
)

// calculateBCHFormat appends a 10-bit BCH(15,5) remainder to a 5-bit
// format data value and XORs the result with the fixed mask, so the
// all-zero format value never maps to an all-zero codeword.
func calculateBCHFormat(data int) int {
	d := data << 10
	for i := 4; i >= 0; i-- {
		if d&(1<<(uint(i)+10)) != 0 {
			d ^= formatGenerator << uint(i)
		}
	}
	return ((data << 10) | d) ^ formatMask
}

// calculateBCHVersion appends a 12-bit BCH(18,6) remainder to a 6-bit
// version number, giving the 18-bit version codeword, unmasked.
func calculateBCHVersion(version int) int {
	d := version << 12
	for i := 5; i >= 0; i-- {
		if d&(1<<(uint(i)+12)) != 0 {
			d ^= versionGenerator << uint(i)
		}
	}
	return (version << 12) | d
}

// PlaceFormatInfo writes the 15-bit format codeword (error-correction
// level + chosen mask pattern) into both reserved copies, per
// ISO/IEC 18004 Figure 25.
func (m *Matrix) PlaceFormatInfo(level geometry.Level, maskPattern int) {
	data := int(level.FormatBits())<<m.Symbol.MaskBitLength() | maskPattern
	code := calculateBCHFormat(data)
	bit := func(i int) bool { return (code>>uint(i))&1 == 1 }

	// primary copy, wrapping the top-left finder
	for i := 0; i <= 5; i++ {
		m.set(8, i, bit(i), true)
	}
	m.set(8, 7, bit(6), true) // skip the timing module at (8,6)
	m.set(8, 8, bit(7), true)
	m.set(7, 8, bit(8), true)
	for i := 9; i <= 14; i++ {
		m.set(14-i, 8, bit(i), true)
	}

	// secondary copy: top-right strip and bottom-left strip. The
	// bottom-left rows run Size-7..Size-1, matching the space reserved
	// in reserveFormatAndVersionSpace and leaving row Size-8 (the dark
	// module) untouched.
	for i := 0; i <= 7; i++ {
		m.set(m.Size-1-i, 8, bit(i), true)
	}
	for i := 8; i <= 14; i++ {
		m.set(8, m.Size-15+i, bit(i), true)
	}
}

// PlaceVersionInfo writes the 18-bit version codeword into its two
// 6x3/3x6 blocks. Only meaningful for Standard QR version >= 7.
func (m *Matrix) PlaceVersionInfo() {
	if !m.Symbol.IncludesVersionInfo() {
		return
	}
	code := calculateBCHVersion(m.Symbol.Version)
	bit := func(i int) bool { return code&(1<<uint(i)) != 0 }

	for c := 0; c < 6; c++ {
		for r := 0; r < 3; r++ {
			b := bit(c*3 + r)
			m.set(c, m.Size-11+r, b, true)
			m.set(m.Size-11+r, c, b, true)
		}
	}
}
