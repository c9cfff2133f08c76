package hashid

import "errors"

// Construction-time errors reported by New. These mean the supplied
// configuration cannot produce a working codec; fix it and retry.
var (
	// ErrIllegalCharacter is returned when a supplied alphabet contains a space.
	ErrIllegalCharacter = errors.New("hashid: alphabet may not contain spaces")

	// ErrAlphabetTooShort is returned when fewer than 16 unique usable
	// characters remain after deduplication.
	ErrAlphabetTooShort = errors.New("hashid: alphabet must contain at least 16 unique characters")
)

// Call-time errors. Encode and decode never panic; every failure for a
// single call surfaces as one of these.
var (
	// ErrEmptyInput is returned when encoding an empty slice of values.
	ErrEmptyInput = errors.New("hashid: nothing to encode")

	// ErrDecode is returned for malformed, truncated, or
	// foreign-alphabet input. There is no partial result.
	ErrDecode = errors.New("hashid: malformed input")

	// ErrInvalidHex is returned by EncodeHex for input that is not
	// valid hexadecimal.
	ErrInvalidHex = errors.New("hashid: invalid hex input")
)
