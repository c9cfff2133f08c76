// Package hashid reversibly encodes sequences of non-negative integers
// into short, shuffled, alphanumeric strings and decodes them back.
// The mapping is salt-keyed and deterministic. It is obfuscation, not
// cryptography: it makes sequential identifiers look non-sequential
// and mildly resistant to casual guessing, nothing more.
package hashid

import "bytes"

// Codec encodes and decodes hashids for one resolved configuration.
// It is immutable after construction; concurrent use from multiple
// goroutines needs no locking because every call works on its own
// scratch copy of the alphabet.
type Codec struct {
	salt       []byte
	alphabet   []byte
	separators []byte
	guards     []byte
	minLength  int
}

// New resolves the supplied options into a Codec. It returns
// ErrIllegalCharacter or ErrAlphabetTooShort when the alphabet cannot
// support encoding.
func New(opts ...Option) (*Codec, error) {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}

	alphabet, err := uniqueAlphabet(cfg.alphabet)
	if err != nil {
		return nil, err
	}

	alphabet, separators := alphabetAndSeparators(cfg.separators, alphabet, cfg.salt)
	alphabet, separators, guards := extractGuards(alphabet, separators)

	return &Codec{
		salt:       cfg.salt,
		alphabet:   alphabet,
		separators: separators,
		guards:     guards,
		minLength:  cfg.minLength,
	}, nil
}

// Must panics if err is not nil.
func Must(c *Codec, err error) *Codec {
	if err != nil {
		panic(err)
	}
	return c
}

// MinLength reports the configured minimum output length.
func (c *Codec) MinLength() int {
	return c.minLength
}

// Encode encodes values into a single hashid of at least MinLength
// characters. Returns ErrEmptyInput for an empty slice.
func (c *Codec) Encode(values []uint64) (string, error) {
	if len(values) == 0 {
		return "", ErrEmptyInput
	}

	nhash := valuesHash(values)

	alphabet := make([]byte, len(c.alphabet))
	copy(alphabet, c.alphabet)

	result := make([]byte, 0, c.minLength+len(values)*12)
	lottery := alphabet[nhash%uint64(len(alphabet))]
	result = append(result, lottery)

	key := make([]byte, 0, 1+len(c.salt)+len(alphabet))
	digits := make([]byte, 0, 24)

	for idx, value := range values {
		key = append(key[:0], lottery)
		key = append(key, c.salt...)
		key = append(key, alphabet...)
		shuffle(alphabet, key[:len(alphabet)])

		digits = hashValue(value, alphabet, digits)
		result = append(result, digits...)

		if idx+1 < len(values) {
			value %= uint64(digits[0]) + uint64(idx)
			result = append(result, c.separators[value%uint64(len(c.separators))])
		}
	}

	if len(result) < c.minLength {
		guardIndex := (nhash + uint64(result[0])) % uint64(len(c.guards))
		result = append([]byte{c.guards[guardIndex]}, result...)

		if len(result) < c.minLength {
			// The second guard index reads the post-prepend buffer.
			guardIndex = (nhash + uint64(result[2])) % uint64(len(c.guards))
			result = append(result, c.guards[guardIndex])
		}
	}

	half := len(alphabet) / 2
	for len(result) < c.minLength {
		shuffle(alphabet, append([]byte(nil), alphabet...))

		wrapped := make([]byte, 0, len(alphabet)+len(result))
		wrapped = append(wrapped, alphabet[half:]...)
		wrapped = append(wrapped, result...)
		wrapped = append(wrapped, alphabet[:half]...)
		result = wrapped

		if excess := len(result) - c.minLength; excess > 0 {
			result = result[excess/2 : excess/2+c.minLength]
		}
	}

	return string(result), nil
}

// Decode decodes a hashid back into the values it was encoded from.
// It returns ErrDecode for malformed input, input shorter than two
// characters after guard stripping, or characters outside the
// configured alphabet.
//
// Guard stripping is deliberately naive: the first and last guard
// characters found are trusted as padding boundaries, with no deeper
// validation. A padded hashid whose interior reproduces a guard
// character would be cut short; this matches the encoding's reference
// behavior and is a known sharp edge.
func (c *Codec) Decode(input string) ([]uint64, error) {
	value := []byte(input)

	if i := indexIn(value, c.guards); i >= 0 {
		value = value[i+1:]
	}
	if i := lastIndexIn(value, c.guards); i >= 0 {
		value = value[:i]
	}

	if len(value) < 2 {
		return nil, ErrDecode
	}

	alphabet := make([]byte, len(c.alphabet))
	copy(alphabet, c.alphabet)

	lottery := value[0]
	segments := splitIn(value[1:], c.separators)

	result := make([]uint64, 0, len(segments))
	key := make([]byte, 0, 1+len(c.salt)+len(alphabet))

	for _, segment := range segments {
		key = append(key[:0], lottery)
		key = append(key, c.salt...)
		key = append(key, alphabet...)
		shuffle(alphabet, key[:len(alphabet)])

		n, err := unhashSegment(segment, alphabet)
		if err != nil {
			return nil, err
		}
		result = append(result, n)
	}

	return result, nil
}

// valuesHash is the checksum that selects the lottery character.
func valuesHash(values []uint64) uint64 {
	var h uint64
	for i, v := range values {
		h += v % uint64(i+100)
	}
	return h
}

// indexIn returns the index of the first byte of data present in set.
func indexIn(data, set []byte) int {
	for i, b := range data {
		if bytes.IndexByte(set, b) >= 0 {
			return i
		}
	}
	return -1
}

// lastIndexIn returns the index of the last byte of data present in set.
func lastIndexIn(data, set []byte) int {
	for i := len(data) - 1; i >= 0; i-- {
		if bytes.IndexByte(set, data[i]) >= 0 {
			return i
		}
	}
	return -1
}

// splitIn splits data on any byte present in set. n separators yield
// n+1 segments; adjacent separators yield empty segments.
func splitIn(data, set []byte) [][]byte {
	segments := make([][]byte, 0, 4)
	start := 0
	for i, b := range data {
		if bytes.IndexByte(set, b) >= 0 {
			segments = append(segments, data[start:i])
			start = i + 1
		}
	}
	return append(segments, data[start:])
}
