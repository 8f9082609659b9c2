package dom

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseInlineStyle(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		prop     string
		expected string
	}{
		{"Simple", "position: relative; left: 5px", "left", "5px"},
		{"Case and whitespace", "  POSITION :  Absolute ;", "position", "Absolute"},
		{"Important dropped", "top: 3px !important", "top", "3px"},
		{"Malformed skipped", "nonsense; top: 1px", "top", "1px"},
		{"Initial value", "", "position", "static"},
		{"Initial border", "", "border-left-width", "0px"},
		{"Unknown property", "", "color", ""},
		{"Later wins", "left: 1px; left: 2px", "left", "2px"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, parseInlineStyle(tt.input).computed(tt.prop))
		})
	}
}

func TestParseInlineStyle_BorderShorthands(t *testing.T) {
	s := parseInlineStyle("border-width: 1px 2px 3px")
	assert.Equal(t, "1px", s.computed("border-top-width"))
	assert.Equal(t, "2px", s.computed("border-right-width"))
	assert.Equal(t, "3px", s.computed("border-bottom-width"))
	assert.Equal(t, "2px", s.computed("border-left-width"))

	s = parseInlineStyle("border: solid 4px red")
	assert.Equal(t, 4.0, s.length("border-top-width"))
	assert.Equal(t, 4.0, s.length("border-left-width"))

	s = parseInlineStyle("border-width: 1px 2px 3px 4px 5px")
	assert.Equal(t, "0px", s.computed("border-top-width"), "more than four values is invalid")
}

func TestInlineStyle_String(t *testing.T) {
	s := parseInlineStyle("top: 1px; left: 2px")
	s.set("top", "9px")
	s.set("position", "relative")
	assert.Equal(t, "top: 9px; left: 2px; position: relative", s.String())
}

func TestLeadingNumber(t *testing.T) {
	tests := []struct {
		in   string
		want float64
		ok   bool
	}{
		{"12.5px", 12.5, true},
		{"-3px", -3, true},
		{"0", 0, true},
		{"auto", 0, false},
		{"", 0, false},
		{"px", 0, false},
	}
	for _, tt := range tests {
		got, ok := leadingNumber(tt.in)
		assert.Equal(t, tt.ok, ok, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}
}
