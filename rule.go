package cssvars

import (
	"fmt"
	"regexp"
)

// RuleName identifies the rule in reports.
const RuleName = "enforce-variable"

// Message returns the diagnostic text for a rejected declaration.
func Message(property string) string {
	return fmt.Sprintf("Expected variable for %s.", property)
}

// Options holds the optional rule settings in their configuration form.
type Options struct {
	// ExceptionValues is a delimited pattern literal, e.g. "/^(transparent)|(none)/".
	// Empty means no exceptions.
	ExceptionValues string
}

// Rule enforces variable usage for the selected properties.
type Rule struct {
	properties *regexp.Regexp
	exceptions *regexp.Regexp
}

// New builds a rule from compiled patterns. exceptions may be nil.
func New(properties, exceptions *regexp.Regexp) *Rule {
	return &Rule{
		properties: properties,
		exceptions: exceptions,
	}
}

// NewRule builds a rule from delimited pattern literals, the form used in
// configuration files.
func NewRule(properties string, opts Options) (*Rule, error) {
	if properties == "" {
		return nil, ErrNoProperties
	}

	target, err := ParsePattern(properties)
	if err != nil {
		return nil, fmt.Errorf("properties: %w", err)
	}

	var exceptions *regexp.Regexp
	if opts.ExceptionValues != "" {
		exceptions, err = ParsePattern(opts.ExceptionValues)
		if err != nil {
			return nil, fmt.Errorf("exceptionValues: %w", err)
		}
	}

	return New(target, exceptions), nil
}

// Properties returns the target pattern.
func (r *Rule) Properties() *regexp.Regexp {
	return r.properties
}

// Exceptions returns the exception pattern, or nil.
func (r *Rule) Exceptions() *regexp.Regexp {
	return r.exceptions
}

// Checks reports whether the rule applies to property.
func (r *Rule) Checks(property string) bool {
	return IsPropertyChecked(property, r.properties)
}

// Check classifies one declaration. The boolean is false when the property
// is not selected by the rule, in which case the verdict is zero.
func (r *Rule) Check(property, value string) (Verdict, bool) {
	if !r.Checks(property) {
		return Verdict{}, false
	}
	return Classify(property, value, r.exceptions), true
}
