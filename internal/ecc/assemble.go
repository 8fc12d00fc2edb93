// Package ecc splits a codeword stream into the blocks an ISO/IEC
// 18004 symbol's error-correction level demands, Reed-Solomon encodes
// each block, and interleaves the results column-major for placement.
package ecc

import (
	"fmt"

	"github.com/halfpixel/qrgen/internal/field"
	"github.com/halfpixel/qrgen/internal/geometry"
	"github.com/halfpixel/qrgen/internal/rs"
)

// block is one error-correction block: a run of data codewords plus
// the parity codewords generated for it.
type block struct {
	data []byte
	ecc  []byte
}

// Assemble splits data into the blocks shape describes, Reed-Solomon
// encodes each over GF(256) (QR's fixed field, primitive polynomial
// 0x11D, generator element 2), and returns the final interleaved
// codeword stream ready for matrix placement.
func Assemble(data []byte, shape geometry.BlockShape) ([]byte, error) {
	if len(data) != shape.TotalDataCodewords() {
		return nil, fmt.Errorf("ecc: data has %d codewords, shape wants %d", len(data), shape.TotalDataCodewords())
	}

	gf256 := field.NewGaloisField(2, 8, 285, 2)
	codec := rs.New(gf256)

	blocks := make([]block, 0, shape.BlockCount())
	offset := 0
	appendGroup := func(count, dataLen int) {
		for i := 0; i < count; i++ {
			chunk := data[offset : offset+dataLen]
			offset += dataLen
			encoded := codec.Encode(chunk, shape.EccPerBlock)
			blocks = append(blocks, block{
				data: chunk,
				ecc:  encoded[dataLen:],
			})
		}
	}
	appendGroup(shape.Group1Blocks, shape.Group1Data)
	appendGroup(shape.Group2Blocks, shape.Group2Data)

	return interleave(blocks), nil
}

// interleave walks the blocks column-major: first every block's data
// codeword 0, then every block's data codeword 1, and so on, skipping
// blocks that have run out of that column (shorter blocks in group 1),
// then repeats the same walk over the parity codewords. This matches
// ISO/IEC 18004 §8.6's final codeword sequence.
func interleave(blocks []block) []byte {
	out := make([]byte, 0, totalLen(blocks))
	maxData := 0
	maxEcc := 0
	for _, b := range blocks {
		maxData = max(maxData, len(b.data))
		maxEcc = max(maxEcc, len(b.ecc))
	}
	for col := 0; col < maxData; col++ {
		for _, b := range blocks {
			if col < len(b.data) {
				out = append(out, b.data[col])
			}
		}
	}
	for col := 0; col < maxEcc; col++ {
		for _, b := range blocks {
			if col < len(b.ecc) {
				out = append(out, b.ecc[col])
			}
		}
	}
	return out
}

func totalLen(blocks []block) int {
	n := 0
	for _, b := range blocks {
		n += len(b.data) + len(b.ecc)
	}
	return n
}
