package stringsx

import "unicode/utf8"

// TruncateByteLen returns the longest valid-UTF-8 prefix of s whose byte
// length does not exceed length. If length is zero or s already fits, s is
// returned unchanged. If cutting at exactly length bytes would split a
// multi-byte character, the cut point backs off to the previous rune
// boundary, so the result is always valid UTF-8.
//
// Example:
//
//	stringsx.TruncateByteLen("Hello, World", 5) // "Hello"
func TruncateByteLen(s string, length int) string {
	if length <= 0 || len(s) <= length {
		return s
	}

	validLen := length
	for validLen > 0 && !utf8.RuneStart(s[validLen]) {
		validLen--
	}
	return s[:validLen]
}
