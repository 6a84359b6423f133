package model

// Mode selects how secret codes are built and which guesses are legal
type Mode string

const (
	ModeUnique Mode = "unique" // All digits pairwise distinct
	ModeFree   Mode = "free"   // Digits may repeat
)

const (
	// DefaultCodeLength is the number of digits in every shipped variant
	DefaultCodeLength = 4
	// MaxUniqueCodeLength is the longest code that can hold distinct decimal digits
	MaxUniqueCodeLength = 10
)

// Valid reports whether m is a known mode
func (m Mode) Valid() bool {
	return m == ModeUnique || m == ModeFree
}

// SupportsLength reports whether codes of the given length can be built in this mode
func (m Mode) SupportsLength(length int) bool {
	if length <= 0 {
		return false
	}
	if m == ModeUnique {
		return length <= MaxUniqueCodeLength
	}
	return true
}
