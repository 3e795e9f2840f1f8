// Package config loads chart definition files. Definitions are TOML or
// YAML, selected by file extension, and map onto a chart.Config.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/arthur-debert/svglet/pkg/chart"
	"github.com/arthur-debert/svglet/pkg/errors"
	"github.com/arthur-debert/svglet/pkg/logging"
)

var log = logging.GetLogger("config")

// ChartFile is the on-disk shape of a chart definition.
type ChartFile struct {
	Kind   string  `toml:"kind" yaml:"kind"`
	Width  float64 `toml:"width" yaml:"width"`
	Height float64 `toml:"height" yaml:"height"`

	// Data holds y values, with the index as x. Points holds explicit
	// [x, y] pairs and takes precedence when both are set.
	Data   []float64   `toml:"data" yaml:"data"`
	Points [][]float64 `toml:"points" yaml:"points"`

	Color  string  `toml:"color" yaml:"color"`
	Radius float64 `toml:"radius" yaml:"radius"`

	Margin *MarginFile `toml:"margin" yaml:"margin"`
	XAxis  *AxisFile   `toml:"xaxis" yaml:"xaxis"`
	YAxis  *AxisFile   `toml:"yaxis" yaml:"yaxis"`
}

// MarginFile mirrors chart.Margin.
type MarginFile struct {
	Top    float64 `toml:"top" yaml:"top"`
	Right  float64 `toml:"right" yaml:"right"`
	Bottom float64 `toml:"bottom" yaml:"bottom"`
	Left   float64 `toml:"left" yaml:"left"`
}

// AxisFile mirrors chart.Axis.
type AxisFile struct {
	Label string `toml:"label" yaml:"label"`
	Ticks int    `toml:"ticks" yaml:"ticks"`
	Grid  bool   `toml:"grid" yaml:"grid"`
}

// Load reads and parses a chart definition. The extension picks the codec:
// .toml, or .yaml/.yml.
func Load(path string) (*ChartFile, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrConfigLoad, "cannot read chart definition %s", path)
	}

	var cf ChartFile
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		err = toml.Unmarshal(raw, &cf)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(raw, &cf)
	default:
		return nil, errors.Newf(errors.ErrConfigParse, "unsupported chart definition extension %q (want .toml, .yaml or .yml)", ext)
	}
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrConfigParse, "cannot parse chart definition %s", path)
	}

	log.Debug().Str("path", path).Str("kind", cf.Kind).Int("values", len(cf.Data)).Int("points", len(cf.Points)).Msg("chart definition loaded")
	return &cf, nil
}

// ToChart validates the file and converts it to a chart.Config.
func (cf *ChartFile) ToChart() (chart.Config, error) {
	cfg := chart.Config{
		Kind:   chart.Kind(cf.Kind),
		Width:  cf.Width,
		Height: cf.Height,
	}

	switch {
	case len(cf.Points) > 0:
		for i, p := range cf.Points {
			if len(p) != 2 {
				return chart.Config{}, errors.Newf(errors.ErrConfigValid, "points[%d] has %d values, want [x, y]", i, len(p))
			}
		}
		cfg.Data = cf.Points
		cfg.X = func(item any, _ int) float64 { return item.([]float64)[0] }
		cfg.Y = func(item any, _ int) float64 { return item.([]float64)[1] }
	case len(cf.Data) > 0:
		cfg.Data = cf.Data
	default:
		return chart.Config{}, errors.New(errors.ErrConfigValid, "chart definition has neither data nor points")
	}

	if cf.Color != "" {
		cfg.Color = cf.Color
	}
	if cf.Radius > 0 {
		cfg.Radius = cf.Radius
	}
	if cf.Margin != nil {
		cfg.Margin = &chart.Margin{
			Top:    cf.Margin.Top,
			Right:  cf.Margin.Right,
			Bottom: cf.Margin.Bottom,
			Left:   cf.Margin.Left,
		}
	}
	if cf.XAxis != nil {
		cfg.XAxis = &chart.Axis{Label: cf.XAxis.Label, Ticks: cf.XAxis.Ticks, Grid: cf.XAxis.Grid}
	}
	if cf.YAxis != nil {
		cfg.YAxis = &chart.Axis{Label: cf.YAxis.Label, Ticks: cf.YAxis.Ticks, Grid: cf.YAxis.Grid}
	}
	return cfg, nil
}

// String summarizes the definition for diagnostics.
func (cf *ChartFile) String() string {
	n := len(cf.Data)
	if len(cf.Points) > 0 {
		n = len(cf.Points)
	}
	return fmt.Sprintf("%s chart, %d values", cf.Kind, n)
}
