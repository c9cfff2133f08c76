package hashid

// shuffle permutes values in place using a salt-seeded variant of
// Fisher-Yates. It is not a uniform shuffle: the same length and salt
// always produce the same permutation, which is what lets Decode
// rebuild the exact permutations Encode used without any stored state.
// A nil or empty salt leaves values untouched.
func shuffle(values, salt []byte) {
	if len(salt) == 0 {
		return
	}

	for i, v, p := len(values)-1, 0, 0; i > 0; i-- {
		v %= len(salt)
		n := int(salt[v])
		p += n
		j := (n + v + p) % i
		values[i], values[j] = values[j], values[i]
		v++
	}
}
