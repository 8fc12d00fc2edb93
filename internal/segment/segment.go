package segment

import "fmt"

// ModeError reports that a byte in the input cannot be represented in
// a single requested segment mode (e.g. a letter under ModeNumeric).
type ModeError struct {
	Byte byte
	Mode Mode
}

func (e *ModeError) Error() string {
	return fmt.Sprintf("byte %q is not representable in %v mode", e.Byte, e.Mode)
}

// Segment is one mode-homogeneous run of the input, ready to be written
// as mode indicator + character count + packed data bits.
type Segment struct {
	Mode Mode
	Data []byte
}

// Build partitions data into segments according to requested. If
// requested is Numeric, Alphanumeric or Byte, the whole input is a
// single segment in that mode, and an error is returned if any byte
// cannot be represented in it. If requested is Dynamic, data is
// partitioned by repeatedly applying the §4.5 look-ahead rule wherever
// the current segment's mode can no longer hold the next character.
func Build(data []byte, requested Mode, bucket Bucket) ([]Segment, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("segment: empty input")
	}
	if requested != ModeDynamic {
		for _, c := range data {
			if !modeAccepts(requested, c) {
				return nil, &ModeError{Byte: c, Mode: requested}
			}
		}
		return []Segment{{Mode: requested, Data: data}}, nil
	}

	dist := computeDistances(data)
	mode := selectModeAt(data[0], dist[0], bucket)
	segStart := 0
	var segs []Segment
	for i := 1; i < len(data); i++ {
		if modeAccepts(mode, data[i]) {
			continue
		}
		segs = append(segs, Segment{Mode: mode, Data: data[segStart:i]})
		mode = selectModeAt(data[i], dist[i], bucket)
		segStart = i
	}
	segs = append(segs, Segment{Mode: mode, Data: data[segStart:]})
	return segs, nil
}

// BitLength returns the number of bits s will occupy once written
// (preamble plus payload), for the given bucket.
func (s Segment) BitLength(bucket Bucket) int {
	return 4 + s.Mode.CountBits(bucket) + payloadBits(s.Mode, len(s.Data))
}

func payloadBits(mode Mode, n int) int {
	switch mode {
	case ModeNumeric:
		full, rem := n/3, n%3
		bits := full * 10
		switch rem {
		case 1:
			bits += 4
		case 2:
			bits += 7
		}
		return bits
	case ModeAlphanumeric:
		full, rem := n/2, n%2
		bits := full * 11
		if rem == 1 {
			bits += 6
		}
		return bits
	default: // Byte
		return n * 8
	}
}

// Write appends s's mode indicator, character count and packed payload
// to w.
func (s Segment) Write(w *BitWriter, bucket Bucket) {
	w.Put(s.Mode.Indicator(), 4)
	w.Put(uint32(len(s.Data)), s.Mode.CountBits(bucket))

	switch s.Mode {
	case ModeNumeric:
		writeNumeric(w, s.Data)
	case ModeAlphanumeric:
		writeAlphanumeric(w, s.Data)
	default:
		for _, b := range s.Data {
			w.Put(uint32(b), 8)
		}
	}
}

func writeNumeric(w *BitWriter, data []byte) {
	for i := 0; i < len(data); i += 3 {
		chunk := data[i:min(i+3, len(data))]
		var value uint32
		for _, c := range chunk {
			value = value*10 + uint32(c-'0')
		}
		bits := map[int]int{1: 4, 2: 7, 3: 10}[len(chunk)]
		w.Put(value, bits)
	}
}

func writeAlphanumeric(w *BitWriter, data []byte) {
	for i := 0; i < len(data); i += 2 {
		if i+1 < len(data) {
			value := alphanumericValue(data[i])*45 + alphanumericValue(data[i+1])
			w.Put(value, 11)
		} else {
			w.Put(alphanumericValue(data[i]), 6)
		}
	}
}
