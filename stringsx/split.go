package stringsx

import "strings"

// SplitX splits s on every non-overlapping occurrence of sep, like
// strings.Split, except that an empty input returns a nil slice rather than
// a one-element slice of the empty string. A separator not found in s yields
// a single-element slice equal to the whole input.
//
// Example:
//
//	stringsx.SplitX("hello world", " ") // []string{"hello", "world"}
//	stringsx.SplitX("", ",")            // nil
func SplitX(s, sep string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(s, sep)
}
