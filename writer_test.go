package qrgen

import (
	"bytes"
	"image/png"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWritePNGProducesDecodableImageAtDefaultSettings(t *testing.T) {
	qr, err := Encode([]byte("HELLO WORLD"), Options{Mode: ModeAlphanumeric, Level: LevelQ})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, qr.WritePNG(&buf, -1, -1))

	img, err := png.Decode(&buf)
	require.NoError(t, err)

	size := qr.ModuleWidth()
	wantDim := (size + 2*DefaultQuietZone) * DefaultScale
	require.Equal(t, wantDim, img.Bounds().Dx())
	require.Equal(t, wantDim, img.Bounds().Dy())
}

func TestWritePNGHonoursCustomScaleAndBorder(t *testing.T) {
	qr, err := Encode([]byte("12345"), Options{Mode: ModeNumeric, Level: LevelL})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, qr.WritePNG(&buf, 2, 1))

	img, err := png.Decode(&buf)
	require.NoError(t, err)

	wantDim := (qr.ModuleWidth() + 2) * 2
	require.Equal(t, wantDim, img.Bounds().Dx())
}
