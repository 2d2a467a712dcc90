package history

import "strconv"

// Hash computes a deterministic, order-sensitive fingerprint of a
// question's text, encoded in base 36. It is a fast non-cryptographic
// 32-bit string hash; collisions are tolerated because dedup is
// advisory, not enforced.
func Hash(text string) string {
	var h int32
	for _, r := range text {
		h = (h << 5) - h + int32(r)
	}
	return strconv.FormatInt(int64(h), 36)
}
