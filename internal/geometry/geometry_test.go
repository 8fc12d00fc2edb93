package geometry

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStandardModuleWidths(t *testing.T) {
	require.Equal(t, 21, StandardModuleWidth(1))
	require.Equal(t, 45, StandardModuleWidth(7))
	require.Equal(t, 177, StandardModuleWidth(40))
}

func TestMicroModuleWidths(t *testing.T) {
	require.Equal(t, 11, MicroModuleWidth(1))
	require.Equal(t, 13, MicroModuleWidth(2))
	require.Equal(t, 17, MicroModuleWidth(4))
}

func TestEveryStandardShapeIsPopulated(t *testing.T) {
	// every entry must exist, carry data codewords, and have more total
	// codewords than data codewords.
	for v := 1; v <= 40; v++ {
		for _, level := range []Level{LevelL, LevelM, LevelQ, LevelH} {
			shape, ok := StandardShape(v, level)
			require.True(t, ok, "version %d level %v", v, level)
			require.Greater(t, shape.TotalDataCodewords(), 0)
			require.Greater(t, shape.TotalCodewords(), shape.TotalDataCodewords())
		}
	}
}

func TestAlignmentCentersSkipFinderCorners(t *testing.T) {
	centers := AlignmentCenters(7)
	for _, c := range centers {
		require.False(t, c.X == 6 && c.Y == 6)
		require.False(t, c.X == 6 && c.Y == 38)
		require.False(t, c.X == 38 && c.Y == 6)
	}
}

func TestVersion1HasNoAlignmentPatterns(t *testing.T) {
	require.Empty(t, AlignmentCenters(1))
}

func TestSelectStandardVersionPicksSmallestFit(t *testing.T) {
	v, err := SelectStandardVersion(19*8, LevelL)
	require.NoError(t, err)
	require.Equal(t, 1, v)
}

func TestVersionInfoOnlyFromV7(t *testing.T) {
	require.False(t, Symbol{Kind: KindStandard, Version: 6}.IncludesVersionInfo())
	require.True(t, Symbol{Kind: KindStandard, Version: 7}.IncludesVersionInfo())
}
