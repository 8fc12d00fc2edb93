// Package matrix paints a QR symbol's module grid: function patterns
// (finder, separator, timing, alignment, dark module), the zig-zag data
// placement walk, mask selection, and format/version information.
package matrix

import "github.com/halfpixel/qrgen/internal/geometry"

// Matrix is a QR symbol's module grid under construction. Modules[y][x]
// is true for a dark module; IsFunction[y][x] marks cells that function
// patterns or reserved format/version space own, so the data-placement
// walk and masking step skip them.
type Matrix struct {
	Symbol     geometry.Symbol
	Size       int
	Modules    [][]bool
	IsFunction [][]bool
}

// New builds an empty grid for sym and paints every function pattern
// (finder, separator, timing, alignment, dark module) plus reserves the
// format/version information space.
func New(sym geometry.Symbol) *Matrix {
	size := sym.ModuleWidth()
	m := &Matrix{
		Symbol:     sym,
		Size:       size,
		Modules:    make([][]bool, size),
		IsFunction: make([][]bool, size),
	}
	for i := range m.Modules {
		m.Modules[i] = make([]bool, size)
		m.IsFunction[i] = make([]bool, size)
	}
	m.addFinderPatterns()
	m.addTimingPatterns()
	m.addAlignmentPatterns()
	m.addDarkModule()
	m.reserveFormatAndVersionSpace()
	return m
}

func (m *Matrix) set(x, y int, dark, function bool) {
	if x < 0 || x >= m.Size || y < 0 || y >= m.Size {
		return
	}
	m.Modules[y][x] = dark
	m.IsFunction[y][x] = m.IsFunction[y][x] || function
}

func (m *Matrix) addFinderPatterns() {
	for _, loc := range m.Symbol.FinderLocations() {
		m.addFinderPattern(loc.X, loc.Y)
	}
}

// addFinderPattern paints a 7x7 finder core plus its 1-module separator
// ring, anchored so loc is the finder core's top-left corner.
func (m *Matrix) addFinderPattern(left, top int) {
	for dy := -1; dy <= 7; dy++ {
		for dx := -1; dx <= 7; dx++ {
			x, y := left+dx, top+dy
			if x < 0 || x >= m.Size || y < 0 || y >= m.Size {
				continue
			}
			dark := false
			switch {
			case dx == -1 || dx == 7 || dy == -1 || dy == 7:
				dark = false // separator ring
			case dx == 0 || dx == 6 || dy == 0 || dy == 6:
				dark = true // outer ring of the 7x7 core
			case dx >= 2 && dx <= 4 && dy >= 2 && dy <= 4:
				dark = true // 3x3 centre block
			default:
				dark = false // the light ring between core and centre
			}
			m.set(x, y, dark, true)
		}
	}
}

func (m *Matrix) addTimingPatterns() {
	coord := m.Symbol.TimingCoord()
	for i := 0; i < m.Size; i++ {
		if m.IsFunction[coord][i] {
			continue
		}
		dark := i%2 == 0
		m.set(i, coord, dark, true)
		m.set(coord, i, dark, true)
	}
}

func (m *Matrix) addAlignmentPatterns() {
	for _, c := range m.Symbol.AlignmentLocations() {
		m.addAlignmentPattern(c.X, c.Y)
	}
}

func (m *Matrix) addAlignmentPattern(cx, cy int) {
	for dy := -2; dy <= 2; dy++ {
		for dx := -2; dx <= 2; dx++ {
			dark := dx == -2 || dx == 2 || dy == -2 || dy == 2 || (dx == 0 && dy == 0)
			m.set(cx+dx, cy+dy, dark, true)
		}
	}
}

// addDarkModule paints the single module that is always dark,
// independent of mask or content: column 8, row (4*version+9) for
// Standard QR.
func (m *Matrix) addDarkModule() {
	if m.Symbol.Kind == geometry.KindMicro {
		return
	}
	m.set(8, m.Size-8, true, true)
}

// reserveFormatAndVersionSpace marks every cell the format-information
// strips (and, for version >= 7, the version-information blocks) will
// occupy, without yet writing their bit values.
func (m *Matrix) reserveFormatAndVersionSpace() {
	for i := 0; i <= 8; i++ {
		if i == m.Symbol.TimingCoord() {
			continue // the timing modules at (8,6) and (6,8) stay as painted
		}
		m.set(8, i, false, true)
		m.set(i, 8, false, true)
	}
	for i := 0; i < 8; i++ {
		m.set(m.Size-1-i, 8, false, true)
	}
	for i := 0; i < 7; i++ {
		m.set(8, m.Size-1-i, false, true)
	}
	if m.Symbol.IncludesVersionInfo() {
		for c := 0; c < 6; c++ {
			for r := 0; r < 3; r++ {
				m.set(c, m.Size-11+r, false, true)
				m.set(m.Size-11+r, c, false, true)
			}
		}
	}
}
