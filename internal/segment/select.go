package segment

// selectModeAt implements the look-ahead heuristic (ISO/IEC 18004 Annex
// J, as reproduced by the original encoder's select_initial_encoding):
// given the character at position i and the distances to the next
// character of each class, decide which mode should start a segment at
// i. Applied at position 0 this picks the initial mode; reapplied at
// every subsequent position where the current segment's mode can no
// longer hold the next character, it drives mid-stream switching (see
// SPEC_FULL.md §5).
func selectModeAt(c byte, d distances, bucket Bucket) Mode {
	switch charType(c) {
	case ModeByte:
		return ModeByte
	case ModeAlphanumeric:
		threshold := [3]int{6, 7, 8}[bucket]
		if d.byteOnly != nil && *d.byteOnly < threshold {
			return ModeByte
		}
		return ModeAlphanumeric
	default: // Numeric
		byteThreshold := [3]int{4, 4, 5}[bucket]
		anThreshold := [3]int{7, 8, 9}[bucket]
		if d.byteOnly != nil && *d.byteOnly < byteThreshold {
			return ModeByte
		}
		if d.alphanumeric != nil && *d.alphanumeric < anThreshold &&
			(d.byteOnly == nil || *d.alphanumeric < *d.byteOnly) {
			return ModeAlphanumeric
		}
		return ModeNumeric
	}
}

// SelectInitialMode returns the mode selectModeAt would choose to start
// encoding data, for the given version bucket. data must be non-empty.
func SelectInitialMode(data []byte, bucket Bucket) Mode {
	d := computeDistances(data)
	return selectModeAt(data[0], d[0], bucket)
}
