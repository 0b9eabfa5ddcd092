package cssvars

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDeclarations(t *testing.T) {
	tests := []struct {
		name     string
		filename string
		content  string
		expected []Declaration
	}{
		{
			name:     "single rule",
			filename: "a.css",
			content:  `.rule { color: $blue; }`,
			expected: []Declaration{
				{Property: "color", Value: "$blue", Pos: DeclarationPos{Line: 1, Column: 9}},
			},
		},
		{
			name:     "last declaration without semicolon",
			filename: "a.css",
			content:  `.rule { color: blue; border: 1px solid var(--line) }`,
			expected: []Declaration{
				{Property: "color", Value: "blue", Pos: DeclarationPos{Line: 1, Column: 9}},
				{Property: "border", Value: "1px solid var(--line)", Pos: DeclarationPos{Line: 1, Column: 22}},
			},
		},
		{
			name:     "nesting, pseudo-classes and at-rules",
			filename: "a.scss",
			content: `.btn {
  color: blue !important;
  &:hover {
    border: 1px solid $line;
  }
}
@media (min-width: 10px) {
  a:hover { background: red }
}`,
			expected: []Declaration{
				{Property: "color", Value: "blue", Important: true, Pos: DeclarationPos{Line: 2, Column: 3}},
				{Property: "border", Value: "1px solid $line", Pos: DeclarationPos{Line: 4, Column: 5}},
				{Property: "background", Value: "red", Pos: DeclarationPos{Line: 8, Column: 13}},
			},
		},
		{
			name:     "scss variables, line comments and interpolation",
			filename: "a.scss",
			content: `$primary: #fff;
// color: red;
.a {
  color: $primary; // trailing
  width: calc(100% - #{$gap});
}`,
			expected: []Declaration{
				{Property: "color", Value: "$primary", Pos: DeclarationPos{Line: 4, Column: 3}},
				{Property: "width", Value: "calc(100% - #{$gap})", Pos: DeclarationPos{Line: 5, Column: 3}},
			},
		},
		{
			name:     "less variables",
			filename: "a.less",
			content:  "@brand: #fff;\n.a { color: @brand; }",
			expected: []Declaration{
				{Property: "color", Value: "@brand", Pos: DeclarationPos{Line: 2, Column: 6}},
			},
		},
		{
			name:     "custom property definition",
			filename: "a.css",
			content:  `:root { --brand: #123; }`,
			expected: []Declaration{
				{Property: "--brand", Value: "#123", Pos: DeclarationPos{Line: 1, Column: 9}},
			},
		},
		{
			name:     "block comment inside value",
			filename: "a.css",
			content:  `a { color: /* brand */ $blue; }`,
			expected: []Declaration{
				{Property: "color", Value: "$blue", Pos: DeclarationPos{Line: 1, Column: 5}},
			},
		},
		{
			name:     "url containing double slash",
			filename: "a.scss",
			content:  `.a { background: url(http://x.com/a.png) }`,
			expected: []Declaration{
				{Property: "background", Value: "url(http://x.com/a.png)", Pos: DeclarationPos{Line: 1, Column: 6}},
			},
		},
		{
			name:     "inline style without braces",
			filename: "inline.css",
			content:  `color: red`,
			expected: []Declaration{
				{Property: "color", Value: "red", Pos: DeclarationPos{Line: 1, Column: 1}},
			},
		},
		{
			name:     "no declarations",
			filename: "a.css",
			content:  `@import "base.css";`,
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseDeclarations(tt.content, tt.filename)
			require.Len(t, got, len(tt.expected), "wrong number of declarations: %+v", got)

			for i, decl := range got {
				assert.Equal(t, tt.expected[i].Property, decl.Property, "property mismatch at index %d", i)
				assert.Equal(t, tt.expected[i].Value, decl.Value, "value mismatch at index %d", i)
				assert.Equal(t, tt.expected[i].Important, decl.Important, "important mismatch at index %d", i)
				assert.Equal(t, tt.expected[i].Pos.Line, decl.Pos.Line, "line mismatch at index %d", i)
				assert.Equal(t, tt.expected[i].Pos.Column, decl.Pos.Column, "column mismatch at index %d", i)
				assert.Equal(t, tt.filename, decl.Pos.File)
			}
		})
	}
}

func TestParseDeclarationsLineText(t *testing.T) {
	content := ".btn {\r\n  color: blue !important;\r\n}"
	decls := ParseDeclarations(content, "a.css")
	require.Len(t, decls, 1)
	assert.Equal(t, "  color: blue !important;", decls[0].Pos.LineText)
}

func TestMaskLineComments(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{name: "trailing comment", content: "a // b\nc", want: "a" + "     " + "\nc"},
		{name: "string with slashes", content: `a: "//x"`, want: `a: "//x"`},
		{name: "url with slashes", content: "url(http://x)", want: "url(http://x)"},
		{name: "block comment", content: "/* // */ a", want: "/* // */ a"},
		{name: "crlf kept", content: "// x\r\ny", want: "    \r\ny"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := maskLineComments(tt.content)
			require.Equal(t, tt.want, got)
			require.Len(t, got, len(tt.content))
		})
	}
}

func TestParseFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "button.scss")
	require.NoError(t, os.WriteFile(path, []byte(".btn { color: $blue; }\n"), 0644))

	decls, err := parseFile(path)
	require.NoError(t, err)
	require.Len(t, decls, 1)
	assert.Equal(t, path, decls[0].Pos.File)

	_, err = parseFile(filepath.Join(dir, "missing.css"))
	require.Error(t, err)
}
