// pkg/svg/node_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: None
// PURPOSE: Test key classification and slot value resolution

package svg_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/arthur-debert/svglet/pkg/svg"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		key  string
		want svg.Class
	}{
		{name: "shape_element", key: "rect", want: svg.ClassStructural},
		{name: "container_element", key: "g", want: svg.ClassStructural},
		{name: "gradient_element", key: "linearGradient", want: svg.ClassStructural},
		{name: "filter_element", key: "feGaussianBlur", want: svg.ClassStructural},
		{name: "animation_element", key: "animateTransform", want: svg.ClassStructural},
		{name: "repeat_directive", key: "$for", want: svg.ClassDirective},
		{name: "condition_directive", key: "$if", want: svg.ClassDirective},
		{name: "text_directive", key: "$text", want: svg.ClassDirective},
		{name: "raw_directive", key: "$html", want: svg.ClassDirective},
		{name: "key_directive", key: "$key", want: svg.ClassDirective},
		{name: "plain_attribute", key: "width", want: svg.ClassAttribute},
		{name: "hyphenated_attribute", key: "stroke-width", want: svg.ClassAttribute},
		{name: "namespaced_attribute", key: "xlink:href", want: svg.ClassAttribute},
		{name: "unknown_dollar_key", key: "$unknown", want: svg.ClassAttribute},
		{name: "element_like_data_field", key: "radius", want: svg.ClassAttribute},
		{name: "case_sensitive_element", key: "RECT", want: svg.ClassAttribute},
		{name: "empty_key", key: "", want: svg.ClassAttribute},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, svg.Classify(tt.key))
		})
	}
}

func TestIsElement(t *testing.T) {
	assert.True(t, svg.IsElement("svg"))
	assert.True(t, svg.IsElement("feDropShadow"))
	assert.False(t, svg.IsElement("div"), "non-SVG markup names are not structural")
	assert.False(t, svg.IsElement("tspan2"))
}

func TestResolve(t *testing.T) {
	t.Run("literal passes through", func(t *testing.T) {
		assert.Equal(t, 42, svg.Resolve(42, nil))
		assert.Equal(t, "s", svg.Resolve("s", nil))
		assert.Nil(t, svg.Resolve(nil, nil))
	})

	t.Run("computed is invoked with the context", func(t *testing.T) {
		ctx := &svg.Context{Item: "x", Index: 3}
		got := svg.Resolve(svg.Computed(func(c *svg.Context) any { return c.Index * 2 }), ctx)
		assert.Equal(t, 6, got)
	})

	t.Run("bare function values are accepted", func(t *testing.T) {
		got := svg.Resolve(func(c *svg.Context) any { return "ok" }, nil)
		assert.Equal(t, "ok", got)
	})
}
