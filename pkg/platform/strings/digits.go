// Package strings provides string manipulation utilities.
package strings

import "strconv"

// Digits strips every non-digit character from s. Order of the remaining
// digits is preserved.
//
// Example:
//
//	Digits("(250) 555-0100")
//	// Returns: "2505550100"
func Digits(s string) string {
	out := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		if s[i] >= '0' && s[i] <= '9' {
			out = append(out, s[i])
		}
	}
	return string(out)
}

// DigitsUint64 strips non-digit characters from s and parses the remainder
// as an unsigned integer. The boolean is false when s contains no digits or
// the digit run overflows uint64.
//
// Example:
//
//	DigitsUint64("9999 999 998")
//	// Returns: 9999999998, true
func DigitsUint64(s string) (uint64, bool) {
	d := Digits(s)
	if d == "" {
		return 0, false
	}
	n, err := strconv.ParseUint(d, 10, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}
