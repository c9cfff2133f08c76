package hashid

import (
	"strconv"
	"strings"
)

// Hex values ride through the integer pipeline in chunks of 12 digits.
// Each chunk is prefixed with a leading 1 before parsing so that
// leading zeroes and chunk boundaries survive the round trip; the
// prefixed chunk is at most 13 hex digits and always fits in a uint64.
const hexChunkSize = 12

// EncodeHex encodes a hexadecimal string (without 0x prefix) into a
// hashid. Returns ErrInvalidHex for non-hex input and ErrEmptyInput
// for an empty string.
func (c *Codec) EncodeHex(hex string) (string, error) {
	values := make([]uint64, 0, (len(hex)+hexChunkSize-1)/hexChunkSize)

	for start := 0; start < len(hex); start += hexChunkSize {
		end := start + hexChunkSize
		if end > len(hex) {
			end = len(hex)
		}
		n, err := strconv.ParseUint("1"+hex[start:end], 16, 64)
		if err != nil {
			return "", ErrInvalidHex
		}
		values = append(values, n)
	}

	return c.Encode(values)
}

// DecodeHex decodes a hashid produced by EncodeHex back into a
// lowercase hexadecimal string.
func (c *Codec) DecodeHex(input string) (string, error) {
	values, err := c.Decode(input)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	for _, n := range values {
		chunk := strconv.FormatUint(n, 16)
		b.WriteString(chunk[1:])
	}
	return b.String(), nil
}
