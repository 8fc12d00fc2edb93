package matrix

// PlaceData writes bits, MSB-first overall, into every non-function
// module using the zig-zag column-pair walk from ISO/IEC 18004 §8.7:
// columns are visited right to left in two-wide pairs, skipping the
// column occupied by the vertical timing pattern, and the scan
// direction alternates between pairs (up, then down, then up, ...).
// Bits beyond len(bits) are treated as zero (the padding the caller
// already appended as part of codeword assembly).
func (m *Matrix) PlaceData(bits []bool) {
	bitAt := func(i int) bool {
		if i >= len(bits) {
			return false
		}
		return bits[i]
	}

	next := 0
	scanningUp := true // the rightmost column pair scans bottom to top
	timingCol := m.Symbol.TimingCoord()

	for col := m.Size - 1; col > 0; col -= 2 {
		if col == timingCol {
			col--
		}
		for row := 0; row < m.Size; row++ {
			y := m.Size - 1 - row
			if !scanningUp {
				y = row
			}
			for dx := 0; dx < 2; dx++ {
				x := col - dx
				if m.IsFunction[y][x] {
					continue
				}
				m.set(x, y, bitAt(next), false)
				next++
			}
		}
		scanningUp = !scanningUp
	}
}
