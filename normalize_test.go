package cssvars

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNormalizeValue(t *testing.T) {
	tests := []struct {
		name     string
		property string
		value    string
		want     string
	}{
		{name: "border strips width and style", property: "border", value: "1px solid $blue", want: "$blue"},
		{name: "border keeps literal color", property: "border", value: "1px solid #fff", want: "#fff"},
		{name: "border style first", property: "border-top", value: "solid 3px white", want: "white"},
		{name: "border fractional width", property: "border-right", value: "0.5px dashed var(--line)", want: "var(--line)"},
		{name: "border-left map lookup", property: "border-left", value: `1px solid map-get($map, "blue")`, want: `map-get($map, "blue")`},
		{name: "single token border untouched", property: "border", value: "none", want: "none"},
		{name: "single token border width untouched", property: "border", value: "1px", want: "1px"},
		{name: "border-color is not shorthand", property: "border-color", value: "solid $blue", want: "solid $blue"},
		{name: "border-bottom-width is not shorthand", property: "border-bottom-width", value: "1px 2px", want: "1px 2px"},
		{name: "background strips positions and url", property: "background", value: `$blue url("../images/bg.png") top left no-repeat`, want: "$blue"},
		{name: "background center repeat", property: "background", value: "var(--blue) url(bg.png) center repeat", want: "var(--blue)"},
		{name: "background percentage", property: "background", value: "$bg 50% 10px", want: "$bg"},
		{name: "background keeps color", property: "background", value: "red url(../images/bg.jpg) left top no-repeat", want: "red"},
		{name: "background-color untouched", property: "background-color", value: "top red", want: "top red"},
		{name: "margin untouched", property: "margin", value: "5px $ws-s 10px", want: "5px $ws-s 10px"},
		{name: "unknown property untouched", property: "color", value: "  blue ", want: "  blue "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, NormalizeValue(tt.property, tt.value))
		})
	}
}

func TestNormalizeValueIdempotent(t *testing.T) {
	tests := []struct {
		property string
		value    string
	}{
		{"border", "1px solid $blue"},
		{"border", "1px dotted rgb(10, 20, 10)"},
		{"border-top", "solid 3px white"},
		{"border-bottom", "2px double $line var(--accent)"},
		{"background", `$blue url("../images/bg.png") top left no-repeat`},
		{"background", "red url(../images/bg.jpg) left top no-repeat"},
		{"margin", "5px $ws-s 10px"},
	}

	for _, tt := range tests {
		t.Run(tt.property+" "+tt.value, func(t *testing.T) {
			once := NormalizeValue(tt.property, tt.value)
			twice := NormalizeValue(tt.property, once)
			require.Equal(t, once, twice)
		})
	}
}

func TestIsShorthandFamily(t *testing.T) {
	for _, p := range []string{"border", "border-top", "border-right", "border-bottom", "border-left", "background"} {
		require.True(t, IsShorthandFamily(p), p)
	}
	for _, p := range []string{"border-color", "background-color", "margin", "color", "borders"} {
		require.False(t, IsShorthandFamily(p), p)
	}
}
