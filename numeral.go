package hashid

import "bytes"

// hashValue renders value as a positional numeral over alphabet,
// appending digits to buf and returning it. The base is the current
// alphabet length, which varies between calls because the alphabet is
// reshuffled per value.
func hashValue(value uint64, alphabet, buf []byte) []byte {
	buf = buf[:0]
	base := uint64(len(alphabet))
	for {
		buf = append(buf, alphabet[value%base])
		value /= base
		if value == 0 {
			break
		}
	}
	// Digits come out least significant first.
	for i, j := 0, len(buf)-1; i < j; i, j = i+1, j-1 {
		buf[i], buf[j] = buf[j], buf[i]
	}
	return buf
}

// unhashSegment parses segment as a positional numeral over alphabet,
// inverting hashValue for the identical alphabet snapshot. Empty
// segments and bytes outside the alphabet fail with ErrDecode.
func unhashSegment(segment, alphabet []byte) (uint64, error) {
	if len(segment) == 0 {
		return 0, ErrDecode
	}

	base := uint64(len(alphabet))
	var value uint64
	for _, b := range segment {
		pos := bytes.IndexByte(alphabet, b)
		if pos < 0 {
			return 0, ErrDecode
		}
		value = value*base + uint64(pos)
	}
	return value, nil
}
