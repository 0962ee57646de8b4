package stringsx

import (
	"unicode"
	"unicode/utf8"

	"github.com/iancoleman/strcase"
)

// ToLowerInitials returns s with only its first character lower-cased per
// Unicode casing rules. The remaining characters are untouched. An empty
// input returns an empty string; the guard must run before touching the
// first character.
//
// Example:
//
//	stringsx.ToLowerInitials("Hello") // "hello"
func ToLowerInitials(s string) string {
	if s == "" {
		return ""
	}
	r, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToLower(r)) + s[size:]
}

// ToUpperInitials returns s with only its first character upper-cased per
// Unicode casing rules. The remaining characters are untouched. An empty
// input returns an empty string.
//
// Example:
//
//	stringsx.ToUpperInitials("world") // "World"
func ToUpperInitials(s string) string {
	if s == "" {
		return ""
	}
	r, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToUpper(r)) + s[size:]
}

// CamelCase converts s to CamelCase.
func CamelCase(s string) string {
	return strcase.ToCamel(s)
}

// LowerCamel converts s to lowerCamelCase.
func LowerCamel(s string) string {
	return strcase.ToLowerCamel(s)
}
