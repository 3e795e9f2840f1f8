// pkg/chart/chart_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: None
// PURPOSE: Test chart assembly: validation, kinds, axes, well-formed output

package chart_test

import (
	"strings"
	"testing"

	"github.com/beevik/etree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/svglet/pkg/chart"
	"github.com/arthur-debert/svglet/pkg/errors"
	"github.com/arthur-debert/svglet/pkg/svg"
)

func TestBuildValidation(t *testing.T) {
	tests := []struct {
		name string
		cfg  chart.Config
		code errors.ErrorCode
	}{
		{
			name: "nil_dataset",
			cfg:  chart.Config{},
			code: errors.ErrDatasetEmpty,
		},
		{
			name: "empty_dataset",
			cfg:  chart.Config{Data: []float64{}},
			code: errors.ErrDatasetEmpty,
		},
		{
			name: "non_slice_dataset",
			cfg:  chart.Config{Data: 42},
			code: errors.ErrDatasetEmpty,
		},
		{
			name: "unknown_kind",
			cfg:  chart.Config{Data: []float64{1}, Kind: "pie"},
			code: errors.ErrChartKind,
		},
		{
			name: "non_numeric_without_accessor",
			cfg:  chart.Config{Data: []string{"a", "b"}},
			code: errors.ErrDatasetValue,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := chart.Build(tt.cfg)
			require.Error(t, err)
			assert.True(t, errors.IsErrorCode(err, tt.code),
				"got code %s, want %s", errors.GetErrorCode(err), tt.code)
		})
	}
}

func TestPointChart(t *testing.T) {
	out, err := chart.New(chart.Config{
		Data:  []float64{1, 2, 3},
		Kind:  chart.Point,
		XAxis: &chart.Axis{},
		YAxis: &chart.Axis{},
	})
	require.NoError(t, err)

	assert.Equal(t, 3, strings.Count(out, "<circle"))
	assertWellFormed(t, out)
}

func TestLineChart(t *testing.T) {
	out, err := chart.New(chart.Config{
		Data: []float64{3, 1, 4, 1, 5},
		Kind: chart.Line,
	})
	require.NoError(t, err)

	assert.Equal(t, 1, strings.Count(out, "<path"))
	assert.Contains(t, out, `fill="none"`)
	assertWellFormed(t, out)
}

func TestAreaChart(t *testing.T) {
	out, err := chart.New(chart.Config{
		Data: []float64{3, 1, 4},
		Kind: chart.Area,
	})
	require.NoError(t, err)

	assert.Contains(t, out, " Z")
	assert.Contains(t, out, "fill-opacity")
	assertWellFormed(t, out)
}

func TestBarChart(t *testing.T) {
	out, err := chart.New(chart.Config{
		Data:  []float64{1, 2, 3, 4},
		Kind:  chart.Bar,
		XAxis: &chart.Axis{},
	})
	require.NoError(t, err)

	assert.Equal(t, 4, strings.Count(out, "<rect"))
	assertWellFormed(t, out)
}

func TestAxesOmittedWhenNil(t *testing.T) {
	out, err := chart.New(chart.Config{
		Data: []float64{1, 2, 3},
		Kind: chart.Point,
	})
	require.NoError(t, err)

	assert.NotContains(t, out, "<line", "no axes means no axis or tick lines")
	assert.NotContains(t, out, "<text")
}

func TestAxisLabelsAndGrid(t *testing.T) {
	out, err := chart.New(chart.Config{
		Data:  []float64{1, 5, 2},
		Kind:  chart.Line,
		XAxis: &chart.Axis{Label: "sample"},
		YAxis: &chart.Axis{Label: "value", Grid: true},
	})
	require.NoError(t, err)

	assert.Contains(t, out, ">sample</text>")
	assert.Contains(t, out, ">value</text>")
	assert.Contains(t, out, `stroke="#e0e0e0"`)
	assertWellFormed(t, out)
}

func TestCustomTickFormat(t *testing.T) {
	out, err := chart.New(chart.Config{
		Data: []float64{10, 20},
		Kind: chart.Point,
		YAxis: &chart.Axis{
			Format: func(v float64) string { return svg.Stringify(v) + "%" },
		},
	})
	require.NoError(t, err)
	assert.Contains(t, out, "%</text>")
}

func TestAccessors(t *testing.T) {
	type sample struct{ T, V float64 }
	data := []sample{{T: 0, V: 1}, {T: 2, V: 4}, {T: 5, V: 2}}

	out, err := chart.New(chart.Config{
		Data: data,
		Kind: chart.Point,
		X:    func(item any, _ int) float64 { return item.(sample).T },
		Y:    func(item any, _ int) float64 { return item.(sample).V },
	})
	require.NoError(t, err)
	assert.Equal(t, 3, strings.Count(out, "<circle"))
}

func TestSinglePointDataset(t *testing.T) {
	// A one-element dataset has a zero-width extent; the chart must still
	// come out valid.
	out, err := chart.New(chart.Config{
		Data:  []float64{5},
		Kind:  chart.Point,
		YAxis: &chart.Axis{},
	})
	require.NoError(t, err)
	assert.Contains(t, out, "<circle")
	assertWellFormed(t, out)
}

func TestComputedColor(t *testing.T) {
	out, err := chart.New(chart.Config{
		Data: []float64{1, 2},
		Kind: chart.Point,
		Color: svg.Computed(func(c *svg.Context) any {
			if c.Index == 0 {
				return "#ff0000"
			}
			return "#00ff00"
		}),
	})
	require.NoError(t, err)
	assert.Contains(t, out, `fill="#ff0000"`)
	assert.Contains(t, out, `fill="#00ff00"`)
}

func TestBuildReturnsRenderableDescription(t *testing.T) {
	desc, err := chart.Build(chart.Config{
		Data:  []float64{2, 7, 4},
		Kind:  chart.Bar,
		XAxis: &chart.Axis{Label: "n"},
		YAxis: &chart.Axis{Grid: true},
	})
	require.NoError(t, err)

	assertWellFormed(t, svg.RenderPretty(desc))
}

func assertWellFormed(t *testing.T, out string) {
	t.Helper()
	doc := etree.NewDocument()
	require.NoError(t, doc.ReadFromString(out))
	require.NotNil(t, doc.Root())
	assert.Equal(t, "svg", doc.Root().Tag)
}
