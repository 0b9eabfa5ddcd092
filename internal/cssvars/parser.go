package cssvars

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
)

// importantPattern matches a trailing !important flag
var importantPattern = regexp.MustCompile(`(?i)\s*!\s*important\s*$`)

// parserState maintains context while walking the token stream
type parserState struct {
	filename string
	lines    []string
	decls    []Declaration

	// Position of the next token
	line, col int

	// atStart is true when the next significant token begins a statement
	atStart    bool
	awaitColon bool
	inValue    bool

	// Current declaration
	property    string
	propLine    int
	propCol     int
	value       strings.Builder
	parenDepth  int
	interpDepth int // SCSS #{...} nesting
	prevHash    bool
}

// ParseDeclarations extracts every declaration from stylesheet content.
//
// A declaration is an identifier followed by ':' at the start of a statement.
// Statements that end in '{' were selectors (a:hover { ... }) and are dropped,
// so nested rules, at-rules and preprocessor variable definitions never
// produce declarations.
func ParseDeclarations(content string, filename string) []Declaration {
	src := content
	if hasLineComments(filename) {
		src = maskLineComments(content)
	}

	state := &parserState{
		filename: filename,
		lines:    strings.Split(content, "\n"),
		line:     1,
		col:      1,
		atStart:  true,
	}

	lexer := css.NewLexer(parse.NewInputString(src))

	for {
		tt, text := lexer.Next()
		if tt == css.ErrorToken {
			// ErrorToken at EOF is normal - flush an unterminated declaration
			if state.inValue {
				state.emit()
			}
			break
		}

		line, col := state.line, state.col
		state.advance(text)
		state.handleToken(tt, text, line, col)
	}

	return state.decls
}

// parseFile reads and parses a single stylesheet
func parseFile(path string) ([]Declaration, error) {
	// #nosec G304 - path comes from trusted configuration
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}

	return ParseDeclarations(string(content), path), nil
}

// advance moves the position past text
func (s *parserState) advance(text []byte) {
	for _, b := range text {
		if b == '\n' {
			s.line++
			s.col = 1
		} else {
			s.col++
		}
	}
}

// handleToken drives the statement state machine
func (s *parserState) handleToken(tt css.TokenType, text []byte, line, col int) {
	if s.inValue {
		s.handleValueToken(tt, text)
		return
	}

	if tt == css.WhitespaceToken || tt == css.CommentToken {
		return
	}

	if s.awaitColon {
		s.awaitColon = false
		if tt == css.ColonToken {
			s.inValue = true
			return
		}
		s.atStart = isStatementBoundary(tt)
		return
	}

	if s.atStart && (tt == css.IdentToken || tt == css.CustomPropertyNameToken) {
		s.property = string(text)
		s.propLine = line
		s.propCol = col
		s.awaitColon = true
		s.atStart = false
		return
	}

	s.atStart = isStatementBoundary(tt)
}

// handleValueToken collects value tokens until the declaration ends
func (s *parserState) handleValueToken(tt css.TokenType, text []byte) {
	switch tt {
	case css.CommentToken:
		return
	case css.FunctionToken, css.LeftParenthesisToken:
		s.parenDepth++
	case css.RightParenthesisToken:
		if s.parenDepth > 0 {
			s.parenDepth--
		}
	case css.LeftBraceToken:
		if s.prevHash {
			s.interpDepth++
			break
		}
		if s.parenDepth == 0 {
			// Selector with a pseudo-class, not a declaration
			s.reset()
			s.atStart = true
			return
		}
	case css.RightBraceToken:
		if s.interpDepth > 0 {
			s.interpDepth--
			break
		}
		s.emit()
		s.atStart = true
		return
	case css.SemicolonToken:
		if s.parenDepth == 0 && s.interpDepth == 0 {
			s.emit()
			s.atStart = true
			return
		}
	}

	s.prevHash = tt == css.DelimToken && len(text) == 1 && text[0] == '#'
	s.value.Write(text)
}

// emit records the current declaration and resets the value state
func (s *parserState) emit() {
	value := strings.TrimSpace(s.value.String())
	important := false
	if loc := importantPattern.FindStringIndex(value); loc != nil {
		important = true
		value = strings.TrimSpace(value[:loc[0]])
	}

	lineText := ""
	if s.propLine-1 < len(s.lines) {
		lineText = strings.TrimSuffix(s.lines[s.propLine-1], "\r")
	}

	s.decls = append(s.decls, Declaration{
		Property:  s.property,
		Value:     value,
		Important: important,
		Pos: DeclarationPos{
			File:     s.filename,
			Line:     s.propLine,
			Column:   s.propCol,
			LineText: lineText,
		},
	})

	s.reset()
}

// reset clears the current declaration
func (s *parserState) reset() {
	s.inValue = false
	s.awaitColon = false
	s.property = ""
	s.value.Reset()
	s.parenDepth = 0
	s.interpDepth = 0
	s.prevHash = false
}

// isStatementBoundary reports whether a statement may start after tt
func isStatementBoundary(tt css.TokenType) bool {
	return tt == css.LeftBraceToken || tt == css.RightBraceToken || tt == css.SemicolonToken
}

// hasLineComments reports whether the file syntax allows // comments
func hasLineComments(filename string) bool {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".scss", ".less":
		return true
	}
	return false
}

// maskLineComments blanks out // comments, keeping byte offsets intact so
// positions still point into the original content. Strings, block comments
// and parenthesized text (url(http://...)) are left alone.
func maskLineComments(content string) string {
	out := []byte(content)
	var quote byte
	depth := 0

	for i := 0; i < len(out); i++ {
		c := out[i]

		if quote != 0 {
			if c == '\\' {
				i++
			} else if c == quote || c == '\n' {
				quote = 0
			}
			continue
		}

		switch {
		case c == '"' || c == '\'':
			quote = c
		case c == '(':
			depth++
		case c == ')':
			if depth > 0 {
				depth--
			}
		case c == '/' && i+1 < len(out) && out[i+1] == '*':
			end := strings.Index(content[i+2:], "*/")
			if end < 0 {
				return string(out)
			}
			i += end + 3
		case c == '/' && i+1 < len(out) && out[i+1] == '/' && depth == 0:
			for i < len(out) && out[i] != '\n' {
				if out[i] != '\r' {
					out[i] = ' '
				}
				i++
			}
		}
	}

	return string(out)
}
