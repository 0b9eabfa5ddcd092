package cssvars

import (
	"regexp"
	"strings"
)

var (
	// border, border-top, border-right, border-bottom, border-left
	borderPropertyPattern = regexp.MustCompile(`^border(-(top|right|bottom|left))?$`)

	// Width with a unit and the border-style keywords. Either half may be
	// empty, so every match is removed independently.
	borderValuePattern = regexp.MustCompile(
		`(\d+.?\w+)?(none|hidden|dotted|dashed|solid|double|groove|ridge|inset|outset|initial|inherit)?`,
	)

	// Positions, sizes, repeat keywords and a url(...) call.
	backgroundValuePattern = regexp.MustCompile(
		`(top|left|center|bottom|right|\d+(\w+|%))*(repeat|no-repeat)?(url\(.+\))?`,
	)
)

// NormalizeValue strips the tokens of a shorthand value that are allowed to
// stay literal, leaving only the tokens that must be variable-backed.
//
// Only the border family (with more than one token) and background are
// touched; every other property gets its value back unchanged.
func NormalizeValue(property, value string) string {
	switch {
	case borderPropertyPattern.MatchString(property) && len(strings.Fields(value)) > 1:
		return strings.TrimSpace(borderValuePattern.ReplaceAllString(value, ""))
	case property == "background":
		return strings.TrimSpace(backgroundValuePattern.ReplaceAllString(value, ""))
	default:
		return value
	}
}

// IsShorthandFamily reports whether NormalizeValue may rewrite values of the
// given property.
func IsShorthandFamily(property string) bool {
	return property == "background" || borderPropertyPattern.MatchString(property)
}
