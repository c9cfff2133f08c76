package hashid

import (
	"errors"
	"testing"
)

// testSalt matches the reference vectors used throughout this file.
const testSalt = "this is my salt"

func saltedCodec(t *testing.T, opts ...Option) *Codec {
	t.Helper()
	c, err := New(append([]Option{WithSalt(testSalt)}, opts...)...)
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	return c
}

func TestNew(t *testing.T) {
	t.Run("Default", func(t *testing.T) {
		if _, err := New(); err != nil {
			t.Fatalf("New() failed: %v", err)
		}
	})
	t.Run("SpaceInAlphabet", func(t *testing.T) {
		_, err := New(WithAlphabet("abcdefgh ijklmnopq"))
		if !errors.Is(err, ErrIllegalCharacter) {
			t.Errorf("New() error = %v, want ErrIllegalCharacter", err)
		}
	})
	t.Run("ShortAlphabet", func(t *testing.T) {
		_, err := New(WithAlphabet("abcdefghijklmno"))
		if !errors.Is(err, ErrAlphabetTooShort) {
			t.Errorf("New() error = %v, want ErrAlphabetTooShort", err)
		}
	})
	t.Run("ShortAfterDedup", func(t *testing.T) {
		// 20 characters but only 10 unique.
		_, err := New(WithAlphabet("aabbccddeeffgghhiijj"))
		if !errors.Is(err, ErrAlphabetTooShort) {
			t.Errorf("New() error = %v, want ErrAlphabetTooShort", err)
		}
	})
}

func TestEncode(t *testing.T) {
	c := saltedCodec(t)

	cases := []struct {
		values []uint64
		want   string
	}{
		{[]uint64{1226198605112}, "4o6Z7KqxE"},
		{[]uint64{1, 2, 3}, "laHquq"},
	}
	for _, tc := range cases {
		got, err := c.Encode(tc.values)
		if err != nil {
			t.Fatalf("Encode(%v) failed: %v", tc.values, err)
		}
		if got != tc.want {
			t.Errorf("Encode(%v) = %q, want %q", tc.values, got, tc.want)
		}
	}
}

func TestEncodeEmpty(t *testing.T) {
	c := saltedCodec(t)
	if _, err := c.Encode(nil); !errors.Is(err, ErrEmptyInput) {
		t.Errorf("Encode(nil) error = %v, want ErrEmptyInput", err)
	}
	if _, err := c.Encode([]uint64{}); !errors.Is(err, ErrEmptyInput) {
		t.Errorf("Encode([]) error = %v, want ErrEmptyInput", err)
	}
}

func TestEncodeWithGuards(t *testing.T) {
	c := saltedCodec(t, WithMinLength(8))
	got, err := c.Encode([]uint64{1, 2, 3})
	if err != nil {
		t.Fatal(err)
	}
	if got != "GlaHquq0" {
		t.Errorf("Encode([1 2 3]) = %q, want %q", got, "GlaHquq0")
	}
}

func TestEncodeWithPadding(t *testing.T) {
	c := saltedCodec(t, WithMinLength(12))
	got, err := c.Encode([]uint64{1, 2, 3})
	if err != nil {
		t.Fatal(err)
	}
	if got != "9LGlaHquq06D" {
		t.Errorf("Encode([1 2 3]) = %q, want %q", got, "9LGlaHquq06D")
	}
}

func TestEncodeWithCustomAlphabet(t *testing.T) {
	c, err := New(WithAlphabet("abcdefghijklmnopqrstuvwxyz"))
	if err != nil {
		t.Fatal(err)
	}
	got, err := c.Encode([]uint64{1, 2, 3})
	if err != nil {
		t.Fatal(err)
	}
	if got != "mdfphx" {
		t.Errorf("Encode([1 2 3]) = %q, want %q", got, "mdfphx")
	}
}

func TestDecode(t *testing.T) {
	c := saltedCodec(t)

	cases := []struct {
		input string
		want  []uint64
	}{
		{"4o6Z7KqxE", []uint64{1226198605112}},
		{"laHquq", []uint64{1, 2, 3}},
	}
	for _, tc := range cases {
		got, err := c.Decode(tc.input)
		if err != nil {
			t.Fatalf("Decode(%q) failed: %v", tc.input, err)
		}
		if !equalValues(got, tc.want) {
			t.Errorf("Decode(%q) = %v, want %v", tc.input, got, tc.want)
		}
	}
}

func TestDecodeWithGuards(t *testing.T) {
	c := saltedCodec(t, WithMinLength(8))
	got, err := c.Decode("GlaHquq0")
	if err != nil {
		t.Fatal(err)
	}
	if !equalValues(got, []uint64{1, 2, 3}) {
		t.Errorf("Decode(%q) = %v, want [1 2 3]", "GlaHquq0", got)
	}
}

func TestDecodeWithPadding(t *testing.T) {
	c := saltedCodec(t, WithMinLength(12))
	got, err := c.Decode("9LGlaHquq06D")
	if err != nil {
		t.Fatal(err)
	}
	if !equalValues(got, []uint64{1, 2, 3}) {
		t.Errorf("Decode(%q) = %v, want [1 2 3]", "9LGlaHquq06D", got)
	}
}

func TestDecodeWithCustomAlphabet(t *testing.T) {
	c, err := New(WithAlphabet("abcdefghijklmnopqrstuvwxyz"))
	if err != nil {
		t.Fatal(err)
	}
	got, err := c.Decode("mdfphx")
	if err != nil {
		t.Fatal(err)
	}
	if !equalValues(got, []uint64{1, 2, 3}) {
		t.Errorf("Decode(%q) = %v, want [1 2 3]", "mdfphx", got)
	}
}

func TestDecodeInvalid(t *testing.T) {
	c, err := New()
	if err != nil {
		t.Fatal(err)
	}

	invalid := []string{
		"",
		"a",
		"this$ain't|a\number",
	}
	for _, input := range invalid {
		if got, err := c.Decode(input); !errors.Is(err, ErrDecode) {
			t.Errorf("Decode(%q) = %v, %v; want ErrDecode", input, got, err)
		}
	}
}

// Short inputs guard to the left first; decode must see through the
// left guard even when the right side is bare.
func TestGuardAddedToLeftFirst(t *testing.T) {
	c, err := New(WithMinLength(3))
	if err != nil {
		t.Fatal(err)
	}

	got, err := c.Encode([]uint64{1})
	if err != nil {
		t.Fatal(err)
	}
	if got != "ejR" {
		t.Errorf("Encode([1]) = %q, want %q", got, "ejR")
	}

	decoded, err := c.Decode("ejR")
	if err != nil {
		t.Fatalf("Decode(%q) failed: %v", "ejR", err)
	}
	if !equalValues(decoded, []uint64{1}) {
		t.Errorf("Decode(%q) = %v, want [1]", "ejR", decoded)
	}
}

func TestRoundTrip(t *testing.T) {
	codecs := map[string]*Codec{
		"default":        Must(New()),
		"salted":         saltedCodec(t),
		"minLength5":     saltedCodec(t, WithMinLength(5)),
		"minLength30":    saltedCodec(t, WithMinLength(30)),
		"customAlphabet": Must(New(WithSalt(testSalt), WithAlphabet("abcdefghijklmnopqrstuvwxyz"))),
		"customSeps":     Must(New(WithSalt(testSalt), WithSeparators("fu"))),
	}

	valueSets := [][]uint64{
		{0},
		{1},
		{926},
		{1226198605112},
		{0, 0, 0},
		{1, 2, 3, 4, 5},
		{21979508, 35563591, 57543099, 93106690, 150649789},
		{18446744073709551615},
		{0, 18446744073709551615},
	}

	for name, c := range codecs {
		t.Run(name, func(t *testing.T) {
			for _, values := range valueSets {
				encoded, err := c.Encode(values)
				if err != nil {
					t.Fatalf("Encode(%v) failed: %v", values, err)
				}
				decoded, err := c.Decode(encoded)
				if err != nil {
					t.Fatalf("Decode(%q) failed: %v", encoded, err)
				}
				if !equalValues(decoded, values) {
					t.Errorf("round trip of %v via %q = %v", values, encoded, decoded)
				}
			}
		})
	}
}

func TestDeterminism(t *testing.T) {
	c := saltedCodec(t, WithMinLength(16))
	values := []uint64{45, 434, 1313, 99}

	first, err := c.Encode(values)
	if err != nil {
		t.Fatal(err)
	}
	second, err := c.Encode(values)
	if err != nil {
		t.Fatal(err)
	}
	if first != second {
		t.Errorf("Encode(%v) not deterministic: %q != %q", values, first, second)
	}
}

func TestMinLength(t *testing.T) {
	for _, minLength := range []int{0, 1, 5, 8, 12, 30, 100} {
		c := saltedCodec(t, WithMinLength(minLength))
		for _, values := range [][]uint64{{0}, {1}, {1, 2, 3}, {4140, 21147, 115975, 678570}} {
			encoded, err := c.Encode(values)
			if err != nil {
				t.Fatal(err)
			}
			if len(encoded) < minLength {
				t.Errorf("len(Encode(%v)) = %d with minimum %d", values, len(encoded), minLength)
			}
			decoded, err := c.Decode(encoded)
			if err != nil {
				t.Fatalf("Decode(%q) failed: %v", encoded, err)
			}
			if !equalValues(decoded, values) {
				t.Errorf("round trip of %v via %q = %v", values, encoded, decoded)
			}
		}
	}
}

func TestResolvedSetsDisjoint(t *testing.T) {
	codecs := map[string]*Codec{
		"default":        Must(New()),
		"salted":         saltedCodec(t),
		"customAlphabet": Must(New(WithAlphabet("abcdefghijklmnopqrstuvwxyz"))),
		"customSeps":     Must(New(WithSalt(testSalt), WithSeparators("fu"))),
	}

	for name, c := range codecs {
		t.Run(name, func(t *testing.T) {
			sets := map[string][]byte{
				"alphabet":   c.alphabet,
				"separators": c.separators,
				"guards":     c.guards,
			}
			var seen [256]string
			for setName, set := range sets {
				for _, b := range set {
					if seen[b] != "" && seen[b] != setName {
						t.Errorf("byte %q in both %s and %s", b, seen[b], setName)
					} else if seen[b] == setName {
						t.Errorf("byte %q duplicated in %s", b, setName)
					}
					seen[b] = setName
				}
			}
			if len(c.alphabet) < minAlphabetLength {
				t.Errorf("resolved alphabet has %d characters", len(c.alphabet))
			}
		})
	}
}

func equalValues(a, b []uint64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func BenchmarkEncode(b *testing.B) {
	c := Must(New(WithSalt(testSalt)))
	values := []uint64{21979508, 35563591, 57543099, 93106690, 150649789}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = c.Encode(values)
	}
}

func BenchmarkDecode(b *testing.B) {
	c := Must(New(WithSalt(testSalt)))
	encoded, err := c.Encode([]uint64{21979508, 35563591, 57543099, 93106690, 150649789})
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = c.Decode(encoded)
	}
}
