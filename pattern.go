package cssvars

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

var (
	// ErrNotDelimited is returned when a pattern is not written as /pattern/.
	ErrNotDelimited = errors.New("pattern must be delimited like /pattern/")
	// ErrNoProperties is returned when a rule is built without a target pattern.
	ErrNoProperties = errors.New("a properties pattern is required")
)

// ParsePattern compiles a delimited pattern literal such as `/^color|border/`
// or `/^(transparent)|(none)/i`.
//
// Trailing flags i, m and s map onto the inline (?ims) flags. g, u and y are
// accepted and ignored since they change nothing for a single match test.
func ParsePattern(literal string) (*regexp.Regexp, error) {
	body, flags, err := unwrapPattern(literal)
	if err != nil {
		return nil, err
	}

	if flags != "" {
		body = "(?" + flags + ")" + body
	}

	re, err := regexp.Compile(body)
	if err != nil {
		return nil, fmt.Errorf("compile pattern %s: %w", literal, err)
	}
	return re, nil
}

// unwrapPattern splits "/body/flags" into body and the Go inline flags.
func unwrapPattern(literal string) (string, string, error) {
	if len(literal) < 2 || literal[0] != '/' {
		return "", "", fmt.Errorf("%q: %w", literal, ErrNotDelimited)
	}

	end := strings.LastIndexByte(literal, '/')
	if end == 0 {
		return "", "", fmt.Errorf("%q: %w", literal, ErrNotDelimited)
	}

	var flags strings.Builder
	for _, f := range literal[end+1:] {
		switch f {
		case 'i', 'm', 's':
			if !strings.ContainsRune(flags.String(), f) {
				flags.WriteRune(f)
			}
		case 'g', 'u', 'y':
		default:
			return "", "", fmt.Errorf("%q: unknown flag %q: %w", literal, f, ErrNotDelimited)
		}
	}

	return literal[1:end], flags.String(), nil
}

// IsDelimitedPattern reports whether s looks like a /pattern/ literal.
func IsDelimitedPattern(s string) bool {
	_, _, err := unwrapPattern(s)
	return err == nil
}
