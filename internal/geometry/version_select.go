package geometry

import "fmt"

// SelectStandardVersion returns the smallest Standard QR version at
// level that has at least requiredBits of data capacity, or an error if
// even version 40 cannot hold it. This reproduces ISO/IEC 18004 Table 7
// directly from the capacity table rather than duplicating a second,
// derived threshold table.
func SelectStandardVersion(requiredBits int, level Level) (int, error) {
	for v := 1; v <= 40; v++ {
		shape, ok := StandardShape(v, level)
		if !ok {
			continue
		}
		if shape.TotalDataCodewords()*8 >= requiredBits {
			return v, nil
		}
	}
	return 0, fmt.Errorf("geometry: no standard version at level %v holds %d bits", level, requiredBits)
}
