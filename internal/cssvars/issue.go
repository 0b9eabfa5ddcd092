package cssvars

// Issue represents a single linting violation in golangci-lint format
type Issue struct {
	FromLinter  string   `json:"FromLinter"`  // "enforce-variable"
	Text        string   `json:"Text"`        // "Expected variable for color."
	Severity    string   `json:"Severity"`    // "error" or "warning"
	SourceLines []string `json:"SourceLines"` // Lines of code with issue
	Pos         IssuePos `json:"Pos"`         // File location
	Property    string   `json:"Property"`    // "color"
	Value       string   `json:"Value"`       // "blue"
	Literals    []string `json:"Literals"`    // Tokens that are not variables
}

// IssuePos specifies the exact location of an issue
type IssuePos struct {
	Filename string `json:"Filename"` // "web/styles/components/button.scss"
	Line     int    `json:"Line"`     // 35
	Column   int    `json:"Column"`   // 3 (1-based, start of the property name)
}

// IssueSeverity constants
const (
	SeverityError   = "error"
	SeverityWarning = "warning"
)

// ValidSeverity reports whether s can be configured as the rule severity.
func ValidSeverity(s string) bool {
	return s == SeverityError || s == SeverityWarning
}
