package ecc

import (
	"testing"

	"github.com/halfpixel/qrgen/internal/geometry"
	"github.com/stretchr/testify/require"
)

func TestAssembleRejectsWrongDataLength(t *testing.T) {
	shape, _ := geometry.StandardShape(1, geometry.LevelM)
	_, err := Assemble(make([]byte, 5), shape)
	require.Error(t, err)
}

func TestAssembleSingleBlockPassesThroughDataThenEcc(t *testing.T) {
	shape, ok := geometry.StandardShape(1, geometry.LevelM)
	require.True(t, ok)
	data := make([]byte, shape.TotalDataCodewords())
	for i := range data {
		data[i] = byte(i)
	}
	out, err := Assemble(data, shape)
	require.NoError(t, err)
	require.Equal(t, shape.TotalCodewords(), len(out))
	require.Equal(t, data, out[:len(data)])
}

func TestAssembleTwoGroupsInterleavesColumnMajor(t *testing.T) {
	// Version 5 level Q has two groups of differently-sized blocks
	// (Table 9), exercising the short-block-skip interleave path.
	shape, ok := geometry.StandardShape(5, geometry.LevelQ)
	require.True(t, ok)
	require.Greater(t, shape.Group2Blocks, 0)

	data := make([]byte, shape.TotalDataCodewords())
	for i := range data {
		data[i] = byte(i)
	}
	out, err := Assemble(data, shape)
	require.NoError(t, err)
	require.Equal(t, shape.TotalCodewords(), len(out))

	// first codeword of the interleave is block 0's first data codeword
	require.Equal(t, data[0], out[0])
}
