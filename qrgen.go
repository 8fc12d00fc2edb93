// Package qrgen builds ISO/IEC 18004 QR Code symbols: it chooses a
// segment encoding for the input, picks the smallest version and
// error-correction level that fit, applies Reed-Solomon error
// correction, and paints the masked module matrix.
package qrgen

import (
	"errors"
	"fmt"

	"github.com/halfpixel/qrgen/internal/ecc"
	"github.com/halfpixel/qrgen/internal/geometry"
	"github.com/halfpixel/qrgen/internal/matrix"
	"github.com/halfpixel/qrgen/internal/segment"
)

// Kind classifies why Encode failed, so callers can branch on failure
// mode instead of matching error strings.
type Kind int

const (
	// Internal marks a bug in this package rather than bad input.
	Internal Kind = iota
	// InputEmpty means the caller passed no data to encode.
	InputEmpty
	// ModeIncompatible means a requested single encoding mode cannot
	// represent a byte in the input.
	ModeIncompatible
	// OverCapacity means the input, even dynamically segmented, does
	// not fit in any Standard QR version at the requested level.
	OverCapacity
	// UnsupportedConfiguration means the caller asked for a
	// combination this package does not implement (Micro QR encoding,
	// Kanji mode).
	UnsupportedConfiguration
)

// Error is returned by Encode. Kind lets callers distinguish a bad
// request from an input that is simply too large.
type Error struct {
	Kind Kind
	Msg  string
}

func (e *Error) Error() string { return e.Msg }

func newError(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...)}
}

// Mode selects which segment encoding Encode uses for the input.
// ModeDynamic (the default) lets the encoder switch modes mid-message
// to minimise the bit count.
type Mode = segment.Mode

const (
	ModeDynamic      = segment.ModeDynamic
	ModeNumeric      = segment.ModeNumeric
	ModeAlphanumeric = segment.ModeAlphanumeric
	ModeByte         = segment.ModeByte
)

// Level is the error-correction level: L (7%), M (15%), Q (25%), H (30%).
type Level = geometry.Level

const (
	LevelL = geometry.LevelL
	LevelM = geometry.LevelM
	LevelQ = geometry.LevelQ
	LevelH = geometry.LevelH
)

// ParseLevelFlag maps a single letter (case-insensitive) to a Level,
// for CLI flag parsing.
func ParseLevelFlag(s string) (Level, bool) {
	return geometry.ParseLevel(s)
}

// SymbolKind selects which symbol family Encode builds. KindStandard (the
// zero value) is the only family this package implements; requesting
// geometry.KindMicro returns an UnsupportedConfiguration error.
type SymbolKind = geometry.Kind

const (
	KindStandard = geometry.KindStandard
	KindMicro    = geometry.KindMicro
)

// Options configures Encode. The zero value selects dynamic mode,
// level L and automatic version selection; DefaultOptions returns the
// CLI's defaults (level Q).
type Options struct {
	// Mode selects the segment encoding. Defaults to ModeDynamic.
	Mode Mode
	// Level selects the error-correction level. The zero value is
	// LevelL; DefaultOptions sets LevelQ.
	Level Level
	// Version pins the Standard QR version (1-40). Zero means "pick
	// the smallest version that fits".
	Version int
	// Kind selects the symbol family. Defaults to KindStandard; Micro
	// QR (KindMicro) is not implemented.
	Kind SymbolKind
}

// DefaultOptions matches the CLI's own defaults: dynamic mode, level Q,
// automatic version selection.
func DefaultOptions() Options {
	return Options{Mode: ModeDynamic, Level: LevelQ}
}

// QRCode is a built symbol: its geometry plus the final masked module
// grid, ready for a sink such as writer.go's PNG encoder.
type QRCode struct {
	Symbol      geometry.Symbol
	MaskPattern int
	Modules     [][]bool
}

// ModuleWidth returns the symbol's side length in modules, not
// counting any quiet zone.
func (q *QRCode) ModuleWidth() int { return q.Symbol.ModuleWidth() }

// Encode builds a Standard QR symbol for data under opts. Micro QR and
// Kanji mode are not implemented; requesting them returns an
// UnsupportedConfiguration error.
func Encode(data []byte, opts Options) (*QRCode, error) {
	if len(data) == 0 {
		return nil, newError(InputEmpty, "qrgen: no data to encode")
	}
	if opts.Kind == KindMicro {
		return nil, newError(UnsupportedConfiguration, "qrgen: micro QR encoding is not implemented")
	}

	version := opts.Version
	if version == 0 {
		v, err := pickVersion(data, opts.Mode, opts.Level)
		if err != nil {
			return nil, err
		}
		version = v
	}

	sym := geometry.Symbol{Kind: geometry.KindStandard, Version: version, Level: opts.Level}
	shape, ok := sym.Shape()
	if !ok {
		return nil, newError(UnsupportedConfiguration, "qrgen: no block shape for version %d level %v", version, opts.Level)
	}

	bucket := segment.BucketForVersion(version)
	segs, err := segment.Build(data, opts.Mode, bucket)
	if err != nil {
		var modeErr *segment.ModeError
		if errors.As(err, &modeErr) {
			return nil, newError(ModeIncompatible, "qrgen: %s", err)
		}
		return nil, newError(Internal, "qrgen: %s", err)
	}

	capacityBits, _ := sym.DataCapacityBits()
	bits := totalBits(segs, bucket)
	if bits > capacityBits {
		return nil, newError(OverCapacity, "qrgen: %d data bits exceed version %d level %v capacity of %d bits", bits, version, opts.Level, capacityBits)
	}

	codewords := packCodewords(segs, bucket, capacityBits)

	interleaved, err := ecc.Assemble(codewords, shape)
	if err != nil {
		return nil, newError(Internal, "qrgen: %s", err)
	}

	m := matrix.New(sym)
	dataBits := bytesToBits(interleaved)
	m.PlaceData(dataBits)
	maskPattern := m.ChooseMask()
	m.PlaceFormatInfo(opts.Level, maskPattern)
	m.PlaceVersionInfo()

	return &QRCode{Symbol: sym, MaskPattern: maskPattern, Modules: m.Modules}, nil
}

// pickVersion finds the smallest Standard QR version at level that can
// hold data once segmented, re-deriving the segment bit count per
// version since the Numeric/Alphanumeric/Byte count-indicator widths
// grow with the version bucket.
func pickVersion(data []byte, mode Mode, level Level) (int, error) {
	for v := 1; v <= 40; v++ {
		sym := geometry.Symbol{Kind: geometry.KindStandard, Version: v, Level: level}
		capacityBits, ok := sym.DataCapacityBits()
		if !ok {
			continue
		}
		bucket := segment.BucketForVersion(v)
		segs, err := segment.Build(data, mode, bucket)
		if err != nil {
			return 0, newError(ModeIncompatible, "qrgen: %s", err)
		}
		if totalBits(segs, bucket) <= capacityBits {
			return v, nil
		}
	}
	return 0, newError(OverCapacity, "qrgen: no standard version at level %v holds %d bytes of input", level, len(data))
}

func totalBits(segs []segment.Segment, bucket segment.Bucket) int {
	total := 0
	for _, s := range segs {
		total += s.BitLength(bucket)
	}
	return total
}

// packCodewords writes every segment, appends the terminator and byte
// padding, then fills remaining codewords with the alternating pad
// bytes 0xEC/0x11 per ISO/IEC 18004 §8.4.9.
func packCodewords(segs []segment.Segment, bucket segment.Bucket, capacityBits int) []byte {
	w := &segment.BitWriter{}
	for _, s := range segs {
		s.Write(w, bucket)
	}

	terminatorLen := 4
	if remaining := capacityBits - w.Len(); remaining < terminatorLen {
		terminatorLen = remaining
	}
	w.Put(0, terminatorLen)

	for w.Len()%8 != 0 {
		w.Put(0, 1)
	}

	codewords := w.Bytes()
	capacityBytes := capacityBits / 8
	padBytes := [2]byte{0xEC, 0x11}
	for i := 0; len(codewords) < capacityBytes; i++ {
		codewords = append(codewords, padBytes[i%2])
	}
	return codewords
}

func bytesToBits(data []byte) []bool {
	bits := make([]bool, 0, len(data)*8)
	for _, b := range data {
		for i := 7; i >= 0; i-- {
			bits = append(bits, (b>>uint(i))&1 == 1)
		}
	}
	return bits
}
