// pkg/config/config_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: Filesystem (temp dirs)
// PURPOSE: Test chart definition loading and conversion

package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/svglet/pkg/chart"
	"github.com/arthur-debert/svglet/pkg/config"
	"github.com/arthur-debert/svglet/pkg/errors"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadTOML(t *testing.T) {
	path := writeFile(t, "line.toml", `
kind = "line"
width = 320
height = 200
data = [3.0, 1.0, 4.0]
color = "#112233"

[yaxis]
label = "value"
ticks = 4
grid = true
`)

	cf, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "line", cf.Kind)
	assert.Equal(t, 320.0, cf.Width)
	assert.Equal(t, []float64{3, 1, 4}, cf.Data)
	require.NotNil(t, cf.YAxis)
	assert.Equal(t, "value", cf.YAxis.Label)
	assert.Equal(t, 4, cf.YAxis.Ticks)
	assert.True(t, cf.YAxis.Grid)
	assert.Nil(t, cf.XAxis)
}

func TestLoadYAML(t *testing.T) {
	path := writeFile(t, "bars.yaml", `
kind: bar
data: [1, 2, 3]
xaxis:
  label: n
`)

	cf, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "bar", cf.Kind)
	assert.Equal(t, []float64{1, 2, 3}, cf.Data)
	require.NotNil(t, cf.XAxis)
	assert.Equal(t, "n", cf.XAxis.Label)
}

func TestLoadErrors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := config.Load(filepath.Join(t.TempDir(), "nope.toml"))
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrConfigLoad))
	})

	t.Run("unsupported extension", func(t *testing.T) {
		path := writeFile(t, "chart.json", `{}`)
		_, err := config.Load(path)
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrConfigParse))
	})

	t.Run("malformed toml", func(t *testing.T) {
		path := writeFile(t, "bad.toml", `kind = [unclosed`)
		_, err := config.Load(path)
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrConfigParse))
	})
}

func TestToChart(t *testing.T) {
	t.Run("data values with defaults", func(t *testing.T) {
		cf := &config.ChartFile{Kind: "point", Data: []float64{1, 2}}
		cfg, err := cf.ToChart()
		require.NoError(t, err)
		assert.Equal(t, chart.Point, cfg.Kind)
		assert.Nil(t, cfg.X)
		assert.Nil(t, cfg.Y)

		_, err = chart.Build(cfg)
		assert.NoError(t, err)
	})

	t.Run("explicit points set accessors", func(t *testing.T) {
		cf := &config.ChartFile{
			Kind:   "line",
			Points: [][]float64{{0, 1.5}, {2, 3.5}},
		}
		cfg, err := cf.ToChart()
		require.NoError(t, err)
		require.NotNil(t, cfg.X)
		require.NotNil(t, cfg.Y)
		assert.Equal(t, 2.0, cfg.X([]float64{2, 3.5}, 1))
		assert.Equal(t, 3.5, cfg.Y([]float64{2, 3.5}, 1))
	})

	t.Run("malformed point pair", func(t *testing.T) {
		cf := &config.ChartFile{Points: [][]float64{{1, 2, 3}}}
		_, err := cf.ToChart()
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrConfigValid))
	})

	t.Run("no data at all", func(t *testing.T) {
		cf := &config.ChartFile{Kind: "line"}
		_, err := cf.ToChart()
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrConfigValid))
	})

	t.Run("axes and margin are carried over", func(t *testing.T) {
		cf := &config.ChartFile{
			Data:   []float64{1},
			Margin: &config.MarginFile{Top: 1, Right: 2, Bottom: 3, Left: 4},
			YAxis:  &config.AxisFile{Label: "y", Ticks: 3, Grid: true},
		}
		cfg, err := cf.ToChart()
		require.NoError(t, err)
		require.NotNil(t, cfg.Margin)
		assert.Equal(t, 4.0, cfg.Margin.Left)
		require.NotNil(t, cfg.YAxis)
		assert.Equal(t, "y", cfg.YAxis.Label)
		assert.Nil(t, cfg.XAxis)
	})
}
