package cssvars

import (
	"regexp"
	"strings"
	"unicode"
)

// variablePattern is deliberately loose: "map-get", "@" and "var" match
// anywhere in a token, only "$" is anchored.
var variablePattern = regexp.MustCompile(`^(\$)|(map-get)|(@)|(var)`)

// Verdict is the outcome of classifying one declaration value.
type Verdict struct {
	Value      string   // Raw value as authored: "1px solid #fff"
	Normalized string   // After shorthand stripping: "#fff"
	Literals   []string // Tokens that are not variable references: ["#fff"]
	Variable   bool     // Every token is a variable reference
	Excepted   bool     // Every token matches the exception pattern
}

// Accepted reports whether the value passes the rule.
func (v Verdict) Accepted() bool {
	return v.Variable || v.Excepted
}

// IsVariableReference reports whether a single token uses one of the
// variable syntaxes: $scss, @less, var(--custom) or map-get(...).
func IsVariableReference(token string) bool {
	return variablePattern.MatchString(token)
}

// Classify normalizes value for property and decides whether it is
// variable-backed. exceptions may be nil.
func Classify(property, value string, exceptions *regexp.Regexp) Verdict {
	normalized := NormalizeValue(property, value)

	verdict := Verdict{
		Value:      value,
		Normalized: normalized,
	}

	for _, token := range splitVariableTokens(normalized) {
		if !IsVariableReference(token) {
			verdict.Literals = append(verdict.Literals, token)
		}
	}
	verdict.Variable = len(verdict.Literals) == 0

	if exceptions != nil {
		verdict.Excepted = allMatch(strings.Fields(normalized), exceptions)
	}

	return verdict
}

// IsValueAccepted reports whether value is acceptable for property.
func IsValueAccepted(value, property string, exceptions *regexp.Regexp) bool {
	return Classify(property, value, exceptions).Accepted()
}

// IsPropertyChecked reports whether declarations of property are subject to
// the rule. A nil target selects nothing.
func IsPropertyChecked(property string, target *regexp.Regexp) bool {
	if target == nil {
		return false
	}
	return target.MatchString(property)
}

// allMatch is true for an empty token list.
func allMatch(tokens []string, re *regexp.Regexp) bool {
	for _, token := range tokens {
		if !re.MatchString(token) {
			return false
		}
	}
	return true
}

// splitVariableTokens splits on whitespace except inside a quoted run and
// before an opening quote, so `map-get($map, "a b")` stays a single token.
func splitVariableTokens(value string) []string {
	var tokens []string
	var current strings.Builder
	var quote rune

	runes := []rune(value)
	for i := 0; i < len(runes); i++ {
		r := runes[i]

		if quote != 0 {
			current.WriteRune(r)
			if r == quote {
				quote = 0
			}
			continue
		}

		if r == '\'' || r == '"' {
			quote = r
			current.WriteRune(r)
			continue
		}

		if !unicode.IsSpace(r) {
			current.WriteRune(r)
			continue
		}

		// Consume the whole whitespace run.
		j := i
		for j < len(runes) && unicode.IsSpace(runes[j]) {
			j++
		}
		if j < len(runes) && (runes[j] == '\'' || runes[j] == '"') && current.Len() > 0 {
			current.WriteString(string(runes[i:j]))
		} else if current.Len() > 0 {
			tokens = append(tokens, current.String())
			current.Reset()
		}
		i = j - 1
	}

	if current.Len() > 0 {
		tokens = append(tokens, current.String())
	}

	return tokens
}
