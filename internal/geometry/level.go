// Package geometry embeds the ISO/IEC 18004 symbol-shape tables (module
// width, data capacity, ECC block layout, alignment pattern placement)
// and the version-selection logic built on top of them.
package geometry

// Level is an error correction level.
type Level int

const (
	LevelL Level = iota
	LevelM
	LevelQ
	LevelH
)

// FormatBits returns the 2-bit error-correction-level code used in the
// format information codeword (ISO/IEC 18004 Table 25). Note this is
// NOT L=0,M=1,Q=2,H=3 — the standard's bit assignment is L=01, M=00,
// Q=11, H=10.
func (l Level) FormatBits() uint32 {
	switch l {
	case LevelL:
		return 0b01
	case LevelM:
		return 0b00
	case LevelQ:
		return 0b11
	case LevelH:
		return 0b10
	default:
		panic("geometry: unknown level")
	}
}

func (l Level) String() string {
	switch l {
	case LevelL:
		return "L"
	case LevelM:
		return "M"
	case LevelQ:
		return "Q"
	case LevelH:
		return "H"
	default:
		return "?"
	}
}

// ParseLevel maps a single letter (case-insensitive) to a Level.
func ParseLevel(s string) (Level, bool) {
	switch s {
	case "l", "L":
		return LevelL, true
	case "m", "M":
		return LevelM, true
	case "q", "Q":
		return LevelQ, true
	case "h", "H":
		return LevelH, true
	default:
		return 0, false
	}
}

// Kind distinguishes Standard QR from Micro QR symbols.
type Kind int

const (
	KindStandard Kind = iota
	KindMicro
)
