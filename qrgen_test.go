package qrgen

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEncodeRejectsEmptyInput(t *testing.T) {
	_, err := Encode(nil, DefaultOptions())
	require.Error(t, err)
	var qerr *Error
	require.ErrorAs(t, err, &qerr)
	require.Equal(t, InputEmpty, qerr.Kind)
}

func TestEncodeNumericAutoVersionPicksVersion1(t *testing.T) {
	qr, err := Encode([]byte("01234567"), Options{Mode: ModeNumeric, Level: LevelM})
	require.NoError(t, err)
	require.Equal(t, 1, qr.Symbol.Version)
	require.Equal(t, 21, qr.ModuleWidth())
}

func TestEncodeRejectsModeMismatch(t *testing.T) {
	_, err := Encode([]byte("ABC"), Options{Mode: ModeNumeric, Level: LevelM})
	require.Error(t, err)
	var qerr *Error
	require.ErrorAs(t, err, &qerr)
	require.Equal(t, ModeIncompatible, qerr.Kind)
}

func TestEncodeDynamicModeProducesSquareMatrix(t *testing.T) {
	qr, err := Encode([]byte("Hello, world! 12345"), DefaultOptions())
	require.NoError(t, err)
	require.Len(t, qr.Modules, qr.ModuleWidth())
	for _, row := range qr.Modules {
		require.Len(t, row, qr.ModuleWidth())
	}
}

func TestEncodePinnedVersionTooSmallReturnsOverCapacity(t *testing.T) {
	_, err := Encode([]byte("this message is far too long to fit in version 1 level H"), Options{Mode: ModeByte, Level: LevelH, Version: 1})
	require.Error(t, err)
	var qerr *Error
	require.ErrorAs(t, err, &qerr)
	require.Equal(t, OverCapacity, qerr.Kind)
}

func TestEncodeRejectsMicroKind(t *testing.T) {
	_, err := Encode([]byte("12345"), Options{Mode: ModeNumeric, Level: LevelM, Kind: KindMicro})
	require.Error(t, err)
	var qerr *Error
	require.ErrorAs(t, err, &qerr)
	require.Equal(t, UnsupportedConfiguration, qerr.Kind)
}

func TestEncodeLargerInputPicksLargerVersion(t *testing.T) {
	data := make([]byte, 200)
	for i := range data {
		data[i] = 'A' + byte(i%26)
	}
	qr, err := Encode(data, Options{Mode: ModeByte, Level: LevelM})
	require.NoError(t, err)
	require.Greater(t, qr.Symbol.Version, 1)
}
