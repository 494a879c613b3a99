// Package text provides small text helpers shared by the fetch pipeline.
package text

// CountRunes counts Unicode characters rather than bytes, so accented
// French titles and emoji measure correctly.
func CountRunes(s string) int {
	return len([]rune(s))
}

// Truncate cuts s to at most max runes without splitting a multi-byte
// character. A non-positive max yields an empty string.
func Truncate(s string, max int) string {
	if max <= 0 {
		return ""
	}
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max])
}
