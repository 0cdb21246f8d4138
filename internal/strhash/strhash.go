package strhash

// Hash returns the one-at-a-time digest of label.
// Hash is case-sensitive: "label" and "LABEL" are different keys.
func Hash(label string) uint32 {
	var h uint32
	for i := 0; i < len(label); i++ {
		h += uint32(label[i])
		h += h << 10
		h ^= h >> 6
	}
	return finalize(h)
}

// HashBytes is Hash over a byte slice.
func HashBytes(label []byte) uint32 {
	var h uint32
	for _, c := range label {
		h += uint32(c)
		h += h << 10
		h ^= h >> 6
	}
	return finalize(h)
}

func finalize(h uint32) uint32 {
	h += h << 3
	h ^= h >> 11
	h += h << 15
	return h
}
