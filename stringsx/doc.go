// Package stringsx provides small, pure string helpers used across the
// toolkit: first-character case mapping, separator splitting, and byte-length
// truncation that respects UTF-8 boundaries.
//
// All functions are stateless and never fail; edge cases (empty input, absent
// separator, limits falling inside a multi-byte character) are handled
// explicitly rather than assumed away.
package stringsx
