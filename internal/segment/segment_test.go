package segment

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSelectInitialModeAlphanumeric(t *testing.T) {
	mode := SelectInitialMode([]byte("ABC123#PLO."), BucketSmall)
	require.Equal(t, ModeAlphanumeric, mode)
}

func TestSelectInitialModeByte(t *testing.T) {
	mode := SelectInitialMode([]byte("ABC1#23PLO."), BucketSmall)
	require.Equal(t, ModeByte, mode)
}

func TestSelectInitialModeNumeric(t *testing.T) {
	mode := SelectInitialMode([]byte("1234567PLO."), BucketSmall)
	require.Equal(t, ModeNumeric, mode)
}

func TestBuildSingleModeRejectsIncompatibleBytes(t *testing.T) {
	_, err := Build([]byte("12a34"), ModeNumeric, BucketSmall)
	require.Error(t, err)
}

func TestBuildSingleModeAccepts(t *testing.T) {
	segs, err := Build([]byte("12345"), ModeNumeric, BucketSmall)
	require.NoError(t, err)
	require.Len(t, segs, 1)
	require.Equal(t, ModeNumeric, segs[0].Mode)
}

func TestBuildDynamicKeepsEveryByteInOrder(t *testing.T) {
	segs, err := Build([]byte("HELLO#WORLD"), ModeDynamic, BucketSmall)
	require.NoError(t, err)
	require.GreaterOrEqual(t, len(segs), 1)
	// every byte of the input must appear across the segments, in order.
	var rebuilt []byte
	for _, s := range segs {
		rebuilt = append(rebuilt, s.Data...)
	}
	require.Equal(t, []byte("HELLO#WORLD"), rebuilt)
}

func TestNumericPayloadBitLength(t *testing.T) {
	// "123456" -> two triples of 10 bits each.
	seg := Segment{Mode: ModeNumeric, Data: []byte("123456")}
	require.Equal(t, 20, payloadBits(seg.Mode, len(seg.Data)))
}

func TestAlphanumericPayloadBitLength(t *testing.T) {
	// "AB1" -> one pair (11 bits) + one leftover (6 bits).
	seg := Segment{Mode: ModeAlphanumeric, Data: []byte("AB1")}
	require.Equal(t, 17, payloadBits(seg.Mode, len(seg.Data)))
}

func TestWriteNumericMatchesKnownEncoding(t *testing.T) {
	// "01234567" splits into triples "012","345" and a leftover pair "67":
	// 10 bits (012=12), 10 bits (345), 7 bits (67=67) = 27 bits total,
	// per ISO/IEC 18004's worked numeric-mode example.
	w := &BitWriter{}
	writeNumeric(w, []byte("01234567"))
	require.Equal(t, 27, w.Len())
	require.Equal(t, bitsFromString("0000001100 0101011001 1000011"), w.Bits)
}

// bitsFromString parses a string of '0'/'1' characters (spaces ignored)
// into a bool slice, for asserting literal bit patterns in tests.
func bitsFromString(s string) []bool {
	var bits []bool
	for _, c := range s {
		switch c {
		case '0':
			bits = append(bits, false)
		case '1':
			bits = append(bits, true)
		}
	}
	return bits
}
