// pkg/svg/escape_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: None
// PURPOSE: Test single-pass escaping rules and value stringification

package svg_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/arthur-debert/svglet/pkg/svg"
)

func TestEscapeAttr(t *testing.T) {
	tests := []struct {
		name  string
		input any
		want  string
	}{
		{name: "all_special_chars", input: `a < b & c > d "q"`, want: `a &lt; b &amp; c &gt; d &quot;q&quot;`},
		{name: "plain", input: "hello", want: "hello"},
		{name: "number", input: 12.5, want: "12.5"},
		{name: "ampersand_not_double_escaped", input: "&lt;", want: "&amp;lt;"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, svg.EscapeAttr(tt.input))
		})
	}
}

func TestEscapeText(t *testing.T) {
	// Text content is not quote-delimited, so quotes survive.
	assert.Equal(t, `a &lt; b &amp; c &gt; d "q"`, svg.EscapeText(`a < b & c > d "q"`))
}

func TestEscapeIsSinglePass(t *testing.T) {
	once := svg.EscapeText("a & b")
	twice := svg.EscapeText(once)
	assert.Equal(t, "a &amp; b", once)
	assert.Equal(t, "a &amp;amp; b", twice, "escaping escaped text double-escapes by design")
}

func TestStringify(t *testing.T) {
	tests := []struct {
		name  string
		input any
		want  string
	}{
		{name: "string", input: "x", want: "x"},
		{name: "int", input: 30, want: "30"},
		{name: "whole_float", input: 30.0, want: "30"},
		{name: "fractional_float", input: 0.25, want: "0.25"},
		{name: "bool", input: true, want: "true"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, svg.Stringify(tt.input))
		})
	}
}
