package matrix

import (
	"testing"

	"github.com/halfpixel/qrgen/internal/geometry"
	"github.com/stretchr/testify/require"
)

func v1() geometry.Symbol {
	return geometry.Symbol{Kind: geometry.KindStandard, Version: 1, Level: geometry.LevelM}
}

func TestNewReservesFinderAndTimingCells(t *testing.T) {
	m := New(v1())
	require.True(t, m.IsFunction[0][0])
	require.True(t, m.Modules[0][0])
	require.True(t, m.IsFunction[6][10])
	require.True(t, m.IsFunction[10][6])
}

func TestNewHasNoAlignmentPatternAtVersion1(t *testing.T) {
	m := New(v1())
	for y := 16; y < 21; y++ {
		for x := 16; x < 21; x++ {
			if m.IsFunction[y][x] && !(x == 6 || y == 6) {
				t.Fatalf("unexpected function cell at alignment-free version: (%d,%d)", x, y)
			}
		}
	}
}

func TestDarkModulePlacement(t *testing.T) {
	m := New(v1())
	require.True(t, m.Modules[m.Size-8][8])
	require.True(t, m.IsFunction[m.Size-8][8])
}

func TestPlaceDataFillsOnlyNonFunctionCells(t *testing.T) {
	m := New(v1())
	capacity := 0
	for y := 0; y < m.Size; y++ {
		for x := 0; x < m.Size; x++ {
			if !m.IsFunction[y][x] {
				capacity++
			}
		}
	}
	bits := make([]bool, capacity)
	for i := range bits {
		bits[i] = i%2 == 0
	}
	m.PlaceData(bits)
	// PlaceData must leave function cells marked as function cells.
	require.True(t, m.IsFunction[0][0])
}

func TestChooseMaskAppliesExactlyOneMask(t *testing.T) {
	m := New(v1())
	before := make([][]bool, m.Size)
	for y := range before {
		before[y] = append([]bool(nil), m.Modules[y]...)
	}
	pattern := m.ChooseMask()
	require.GreaterOrEqual(t, pattern, 0)
	require.Less(t, pattern, 8)
	// undoing the chosen mask must restore the grid exactly
	m.ApplyMask(pattern)
	require.Equal(t, before, m.Modules)
}

func TestPlaceFormatInfoWritesBothCopies(t *testing.T) {
	m := New(v1())
	m.PlaceFormatInfo(geometry.LevelM, 0)
	require.True(t, m.IsFunction[0][8])
	require.True(t, m.IsFunction[8][m.Size-1])
	require.True(t, m.IsFunction[m.Size-1][8])
}

func TestPlaceVersionInfoNoopBelowVersion7(t *testing.T) {
	m := New(v1())
	m.PlaceVersionInfo() // must not panic or touch any cell
}

func TestPlaceVersionInfoWritesBlocksAtVersion7(t *testing.T) {
	sym := geometry.Symbol{Kind: geometry.KindStandard, Version: 7, Level: geometry.LevelM}
	m := New(sym)
	m.PlaceVersionInfo()
	require.True(t, m.IsFunction[0][0+m.Size-11])
	require.True(t, m.IsFunction[m.Size-11][0])
}

func TestCalculateBCHFormatMatchesKnownVector(t *testing.T) {
	// Level M, mask pattern 0: ecBits=0 (LevelM.FormatBits()), data = 0<<3|0 = 0.
	got := calculateBCHFormat(0)
	require.Equal(t, 0x5412, got)
}
