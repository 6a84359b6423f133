package model

import (
	"sort"
	"strings"
)

// Markers are the characters used to render feedback for display
type Markers struct {
	Bull      string
	Separator string
	Cow       string
}

// Format renders bulls bull markers, the separator, then cows cow markers.
// With no matches the result is the separator alone; callers special-case
// that with Feedback.NoMatches.
func (m Markers) Format(f Feedback) string {
	return strings.Repeat(m.Bull, f.Bulls) + m.Separator + strings.Repeat(m.Cow, f.Cows)
}

// Variant bundles the mode and the texts that differ between the games
type Variant struct {
	Name    string
	Title   string
	Mode    Mode
	Welcome string
	Markers Markers
}

var variants = map[string]Variant{
	"bulls": {
		Name:  "bulls",
		Title: "Bulls and Cows",
		Mode:  ModeUnique,
		Welcome: "I am thinking of a number with distinct digits.\n" +
			"A bull is a right digit in the right place, a cow is a right digit in the wrong place.",
		Markers: Markers{Bull: "B", Separator: "|", Cow: "C"},
	},
	"mastermind": {
		Name:  "mastermind",
		Title: "MasterMind",
		Mode:  ModeFree,
		Welcome: "I am thinking of a number whose digits may repeat.\n" +
			"X marks a right digit in the right place, O a right digit in the wrong place.",
		Markers: Markers{Bull: "X", Separator: "|", Cow: "O"},
	},
}

// DefaultVariantName is used when no variant is requested
const DefaultVariantName = "bulls"

// VariantByName looks up a variant case-insensitively
func VariantByName(name string) (Variant, error) {
	v, ok := variants[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return Variant{}, ErrUnknownVariant
	}
	return v, nil
}

// Variants returns every known variant sorted by name
func Variants() []Variant {
	out := make([]Variant, 0, len(variants))
	for _, v := range variants {
		out = append(out, v)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Name < out[j].Name
	})
	return out
}
