package hashid

import (
	"bytes"
	"math"
)

const (
	// DefaultAlphabet is the alphabet used when none is supplied.
	DefaultAlphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ1234567890"

	// DefaultSeparators is the separator candidate set used when none
	// is supplied.
	DefaultSeparators = "cfhistuCFHISTU"

	minAlphabetLength = 16
	separatorRatio    = 3.5
	guardRatio        = 12.0
)

type config struct {
	salt       []byte
	alphabet   []byte
	separators []byte
	minLength  int
}

// Option configures a Codec. A nil alphabet or separator option means
// the defaults apply.
type Option func(*config)

// WithSalt sets the salt that seeds all shuffling. Different salts
// produce entirely different encodings for the same values.
func WithSalt(salt string) Option {
	return func(c *config) { c.salt = []byte(salt) }
}

// WithAlphabet sets the working alphabet. It must yield at least 16
// unique characters after deduplication and may not contain spaces.
// Characters are treated as single bytes.
func WithAlphabet(alphabet string) Option {
	return func(c *config) { c.alphabet = []byte(alphabet) }
}

// WithSeparators sets the separator candidate set. Only candidates
// present in the alphabet are used.
func WithSeparators(separators string) Option {
	return func(c *config) { c.separators = []byte(separators) }
}

// WithMinLength sets the minimum length of encoded output. Actual
// output may be longer, never shorter.
func WithMinLength(n int) Option {
	return func(c *config) { c.minLength = n }
}

// uniqueAlphabet dedups the supplied alphabet preserving first-seen
// order, or returns a copy of the default when none was supplied.
func uniqueAlphabet(raw []byte) ([]byte, error) {
	if raw == nil {
		return []byte(DefaultAlphabet), nil
	}

	var seen [256]bool
	out := make([]byte, 0, len(raw))
	for _, b := range raw {
		if b == ' ' {
			return nil, ErrIllegalCharacter
		}
		if !seen[b] {
			seen[b] = true
			out = append(out, b)
		}
	}
	if len(out) < minAlphabetLength {
		return nil, ErrAlphabetTooShort
	}
	return out, nil
}

// alphabetAndSeparators partitions the deduped alphabet into the
// working alphabet and separator set, rebalances the separator count
// so separator density stays bounded, and applies the salt shuffles.
func alphabetAndSeparators(rawSeparators, alphabet, salt []byte) (alpha, seps []byte) {
	candidates := rawSeparators
	if candidates == nil {
		candidates = []byte(DefaultSeparators)
	}

	seps = make([]byte, 0, len(candidates))
	for _, b := range candidates {
		if bytes.IndexByte(alphabet, b) >= 0 {
			seps = append(seps, b)
		}
	}
	alpha = make([]byte, 0, len(alphabet))
	for _, b := range alphabet {
		if bytes.IndexByte(seps, b) < 0 {
			alpha = append(alpha, b)
		}
	}

	shuffle(seps, salt)

	if len(seps) == 0 || float64(len(alpha))/float64(len(seps)) > separatorRatio {
		length := int(math.Ceil(float64(len(alpha)) / separatorRatio))
		if length == 1 {
			length = 2
		}
		if length > len(seps) {
			diff := length - len(seps)
			seps = append(seps, alpha[:diff]...)
			alpha = alpha[diff:]
		} else {
			seps = seps[:length]
		}
	}

	shuffle(alpha, salt)
	return alpha, seps
}

// extractGuards moves guard characters out of the alphabet, or out of
// the separators when the alphabet is too small to give any up.
func extractGuards(alphabet, separators []byte) (alpha, seps, guards []byte) {
	count := int(math.Ceil(float64(len(alphabet)) / guardRatio))
	if len(alphabet) < 3 {
		return alphabet, separators[count:], separators[:count]
	}
	return alphabet[count:], separators, alphabet[:count]
}
