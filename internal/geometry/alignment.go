package geometry

// alignmentCenters is ISO/IEC 18004 Annex E, Table E.1: the alignment
// pattern centre-coordinate list for each Standard QR version. Version 1
// has no alignment patterns.
var alignmentCenters = map[int][]int{
	2:  {6, 18},
	3:  {6, 22},
	4:  {6, 26},
	5:  {6, 30},
	6:  {6, 34},
	7:  {6, 22, 38},
	8:  {6, 24, 42},
	9:  {6, 26, 46},
	10: {6, 28, 50},
	11: {6, 30, 54},
	12: {6, 32, 58},
	13: {6, 34, 62},
	14: {6, 26, 46, 66},
	15: {6, 26, 48, 70},
	16: {6, 26, 50, 74},
	17: {6, 30, 54, 78},
	18: {6, 30, 56, 82},
	19: {6, 30, 58, 86},
	20: {6, 34, 62, 90},
	21: {6, 28, 50, 72, 94},
	22: {6, 26, 50, 74, 98},
	23: {6, 30, 54, 78, 102},
	24: {6, 28, 54, 80, 106},
	25: {6, 32, 58, 84, 110},
	26: {6, 30, 58, 86, 114},
	27: {6, 34, 62, 90, 118},
	28: {6, 26, 50, 74, 98, 122},
	29: {6, 30, 54, 78, 102, 126},
	30: {6, 26, 52, 78, 104, 130},
	31: {6, 30, 56, 82, 108, 134},
	32: {6, 34, 60, 86, 112, 138},
	33: {6, 30, 58, 86, 114, 142},
	34: {6, 34, 62, 90, 118, 146},
	35: {6, 30, 54, 78, 102, 126, 150},
	36: {6, 24, 50, 76, 102, 128, 154},
	37: {6, 28, 54, 80, 106, 132, 158},
	38: {6, 32, 58, 84, 110, 136, 162},
	39: {6, 26, 54, 82, 110, 138, 166},
	40: {6, 30, 58, 86, 114, 142, 170},
}

// Coord is a zero-indexed (x, y) module position.
type Coord struct{ X, Y int }

// AlignmentCenters returns the (x, y) centres of every alignment pattern
// for a Standard QR version, skipping the three combinations that would
// overlap a finder pattern (both coordinates near a symbol corner).
func AlignmentCenters(version int) []Coord {
	coords := alignmentCenters[version]
	if len(coords) == 0 {
		return nil
	}
	width := StandardModuleWidth(version)
	var out []Coord
	for _, x := range coords {
		for _, y := range coords {
			if overlapsFinder(x, y, width) {
				continue
			}
			out = append(out, Coord{X: x, Y: y})
		}
	}
	return out
}

func overlapsFinder(x, y, width int) bool {
	corner := func(cx, cy int) bool { return x == cx && y == cy }
	return corner(6, 6) || corner(6, width-7) || corner(width-7, 6)
}
