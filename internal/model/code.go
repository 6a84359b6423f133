package model

import "strings"

// Code is an ordered sequence of decimal digits, used for both secrets and guesses
type Code []int

// String renders the code as a plain digit string
func (c Code) String() string {
	var b strings.Builder
	b.Grow(len(c))
	for _, d := range c {
		b.WriteByte(byte('0' + d))
	}
	return b.String()
}

// Equal reports whether two codes hold the same digits in the same order
func (c Code) Equal(other Code) bool {
	if len(c) != len(other) {
		return false
	}
	for i := range c {
		if c[i] != other[i] {
			return false
		}
	}
	return true
}

// Valid reports whether every element is a decimal digit
func (c Code) Valid() bool {
	for _, d := range c {
		if d < 0 || d > 9 {
			return false
		}
	}
	return true
}

// HasDistinctDigits reports whether c is valid and no digit appears twice
func (c Code) HasDistinctDigits() bool {
	var seen [10]bool
	for _, d := range c {
		if d < 0 || d > 9 || seen[d] {
			return false
		}
		seen[d] = true
	}
	return true
}

// Contains reports whether the digit d appears anywhere in the code
func (c Code) Contains(d int) bool {
	for _, x := range c {
		if x == d {
			return true
		}
	}
	return false
}

// MustCode builds a Code from a digit string, panicking on anything else.
// Intended for tests and constants.
func MustCode(s string) Code {
	code := make(Code, len(s))
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			panic("model: non-digit in code literal " + s)
		}
		code[i] = int(s[i] - '0')
	}
	return code
}
