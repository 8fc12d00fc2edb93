package geometry

// StandardModuleWidth returns a Standard QR symbol's side length in
// modules: 21 + 4*(version-1), confirmed against
// original_source/qr_types.rs's own tests (v1=21, v7=45, v40=177).
func StandardModuleWidth(version int) int {
	return 21 + 4*(version-1)
}

// MicroModuleWidth returns a Micro QR symbol's side length in modules:
// 11 + 2*(version-1) (v1=11, v2=13, v4=17).
func MicroModuleWidth(version int) int {
	return 11 + 2*(version-1)
}

// Symbol describes one concrete QR symbol shape: its kind, version and
// error-correction level, together with the derived geometry needed to
// paint it.
type Symbol struct {
	Kind    Kind
	Version int
	Level   Level
}

// ModuleWidth returns the symbol's side length in modules.
func (s Symbol) ModuleWidth() int {
	if s.Kind == KindMicro {
		return MicroModuleWidth(s.Version)
	}
	return StandardModuleWidth(s.Version)
}

// Shape returns the symbol's ECC block layout.
func (s Symbol) Shape() (BlockShape, bool) {
	if s.Kind == KindMicro {
		return MicroShape(s.Version, int(s.Level))
	}
	return StandardShape(s.Version, s.Level)
}

// DataCapacityBits returns the number of bits available for segment
// data (mode indicators, counts and payload) after ECC codewords are
// set aside. Standard QR symbols store whole codewords; this is simply
// TotalDataCodewords*8.
func (s Symbol) DataCapacityBits() (int, bool) {
	shape, ok := s.Shape()
	if !ok {
		return 0, false
	}
	return shape.TotalDataCodewords() * 8, true
}

// FinderLocations returns the top-left corner of each finder pattern's
// 7x7 core. Standard QR has three finders; Micro QR has one.
func (s Symbol) FinderLocations() []Coord {
	if s.Kind == KindMicro {
		return []Coord{{X: 0, Y: 0}}
	}
	width := s.ModuleWidth()
	return []Coord{
		{X: 0, Y: 0},
		{X: width - 7, Y: 0},
		{X: 0, Y: width - 7},
	}
}

// AlignmentLocations returns the alignment pattern centres for the
// symbol (empty for Micro QR and Standard version 1).
func (s Symbol) AlignmentLocations() []Coord {
	if s.Kind == KindMicro {
		return nil
	}
	return AlignmentCenters(s.Version)
}

// TimingCoord returns the module row/column index used for both timing
// patterns. Standard QR's timing patterns run along row/column 6;
// Micro QR's run along row/column 0 (adjacent to its single finder).
func (s Symbol) TimingCoord() int {
	if s.Kind == KindMicro {
		return 0
	}
	return 6
}

// IncludesVersionInfo reports whether the symbol carries separate
// version-information blocks (Standard QR version 7 and up).
func (s Symbol) IncludesVersionInfo() bool {
	return s.Kind == KindStandard && s.Version >= 7
}

// MaskBitLength returns how many bits the format information uses to
// record the chosen mask pattern: 3 for Standard QR's 8 masks, 2 for
// Micro QR's 4.
func (s Symbol) MaskBitLength() int {
	if s.Kind == KindMicro {
		return 2
	}
	return 3
}
