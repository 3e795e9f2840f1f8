// Package chart assembles SVG descriptions for small data charts. It
// computes geometry with pkg/scale and expresses the result as a pkg/svg
// description, so everything here ends up going through the same renderer
// callers use directly.
package chart

import (
	"fmt"
	"math"
	"reflect"
	"strconv"

	"github.com/arthur-debert/svglet/pkg/errors"
	"github.com/arthur-debert/svglet/pkg/logging"
	"github.com/arthur-debert/svglet/pkg/scale"
	"github.com/arthur-debert/svglet/pkg/svg"
)

var log = logging.GetLogger("chart")

// Kind selects how the series is drawn.
type Kind string

const (
	Point Kind = "point"
	Line  Kind = "line"
	Area  Kind = "area"
	Bar   Kind = "bar"
)

// Margin is the space between the SVG edge and the plot area, in pixels.
type Margin struct {
	Top, Right, Bottom, Left float64
}

// Axis configures one axis. A nil *Axis on the Config omits the axis
// entirely.
type Axis struct {
	// Label is drawn alongside the axis when non-empty.
	Label string
	// Ticks is the approximate tick count; values below 2 use the
	// package default.
	Ticks int
	// Format renders a tick value as its label. Nil uses the shortest
	// decimal form.
	Format func(float64) string
	// Grid extends each tick as a line across the plot area.
	Grid bool
}

// Config describes one chart.
type Config struct {
	// Data is the dataset, any slice or array. With nil accessors the
	// items themselves must be numeric and become the y values, with the
	// index as x.
	Data any
	// X and Y extract coordinates from a dataset item.
	X func(item any, i int) float64
	Y func(item any, i int) float64

	Kind Kind

	// Width and Height of the document in pixels; defaults 600x400.
	Width  float64
	Height float64
	// Margin around the plot area; nil uses {20, 20, 40, 50}.
	Margin *Margin

	// Color is the series color: a string, or an svg.Computed evaluated
	// per point. Defaults to a fixed series blue.
	Color any
	// Radius is the point radius for Point charts, static or computed.
	Radius any

	// XAxis and YAxis configure the axes; nil omits one.
	XAxis *Axis
	YAxis *Axis
}

const (
	defaultWidth  = 600.0
	defaultHeight = 400.0
	defaultColor  = "#4e79a7"
	defaultRadius = 3

	axisColor = "#333333"
	gridColor = "#e0e0e0"
)

// point carries one dataset item projected into pixel space. Series nodes
// repeat over these, so computed attributes read them from the iteration
// context.
type point struct {
	X, Y       float64 // pixel coordinates
	XVal, YVal float64 // data coordinates
}

// New builds the chart and renders it compactly.
func New(cfg Config) (string, error) {
	desc, err := Build(cfg)
	if err != nil {
		return "", err
	}
	return svg.Render(desc), nil
}

// Build computes the chart geometry and returns the root description. For
// any finite, non-empty numeric dataset the result is always a description
// the renderer accepts.
func Build(cfg Config) (svg.Node, error) {
	items, ok := toItems(cfg.Data)
	if !ok || len(items) == 0 {
		return nil, errors.New(errors.ErrDatasetEmpty, "chart requires a non-empty dataset slice")
	}

	kind := cfg.Kind
	if kind == "" {
		kind = Point
	}
	switch kind {
	case Point, Line, Area, Bar:
	default:
		return nil, errors.Newf(errors.ErrChartKind, "unknown chart kind %q", kind)
	}

	xs, ys, err := project(items, cfg.X, cfg.Y)
	if err != nil {
		return nil, err
	}

	width, height := cfg.Width, cfg.Height
	if width <= 0 {
		width = defaultWidth
	}
	if height <= 0 {
		height = defaultHeight
	}
	margin := cfg.Margin
	if margin == nil {
		margin = &Margin{Top: 20, Right: 20, Bottom: 40, Left: 50}
	}
	left, right := margin.Left, width-margin.Right
	top, bottom := margin.Top, height-margin.Bottom

	ymin, ymax := scale.Extent(ys)
	if kind == Bar && ymin > 0 {
		ymin = 0 // bars grow from the zero baseline
	}
	if ymin == ymax {
		ymax = ymin + 1
	}
	ynice := scale.NiceScale(ymin, ymax, axisTicks(cfg.YAxis))
	yScale := scale.Linear([2]float64{ynice.Min, ynice.Max}, [2]float64{bottom, top})

	xmin, xmax := scale.Extent(xs)
	if xmin == xmax {
		xmax = xmin + 1
	}
	xnice := scale.NiceScale(xmin, xmax, axisTicks(cfg.XAxis))
	xScale := scale.Linear([2]float64{xnice.Min, xnice.Max}, [2]float64{left, right})

	band := (right - left) / float64(len(items))
	pts := make([]point, len(items))
	for i := range items {
		px := xScale(xs[i])
		if kind == Bar {
			px = left + (float64(i)+0.5)*band
		}
		pts[i] = point{X: px, Y: yScale(ys[i]), XVal: xs[i], YVal: ys[i]}
	}

	log.Debug().
		Str("kind", string(kind)).
		Int("points", len(pts)).
		Float64("ymin", ynice.Min).
		Float64("ymax", ynice.Max).
		Msg("chart geometry computed")

	desc := svg.Node{
		{Key: "width", Value: width},
		{Key: "height", Value: height},
		{Key: "font-family", Value: "sans-serif"},
	}
	if cfg.YAxis != nil {
		desc = append(desc, svg.Field{Key: "g", Value: yAxisNode(cfg.YAxis, ynice, yScale, left, right, top, bottom)})
	}
	if cfg.XAxis != nil {
		if kind == Bar {
			desc = append(desc, svg.Field{Key: "g", Value: barAxisNode(cfg.XAxis, pts, left, right, bottom, height)})
		} else {
			desc = append(desc, svg.Field{Key: "g", Value: xAxisNode(cfg.XAxis, xnice, xScale, left, right, top, bottom, height)})
		}
	}
	desc = append(desc, seriesField(kind, cfg, pts, band, ynice, yScale, bottom))
	return desc, nil
}

// seriesField renders the dataset itself. Point and bar series repeat a
// shape over the projected points; line and area series collapse into a
// single precomputed path.
func seriesField(kind Kind, cfg Config, pts []point, band float64, ynice scale.Nice, yScale func(float64) float64, bottom float64) svg.Field {
	color := cfg.Color
	if color == nil {
		color = defaultColor
	}

	switch kind {
	case Point:
		radius := cfg.Radius
		if radius == nil {
			radius = defaultRadius
		}
		return svg.Field{Key: "circle", Value: svg.Node{
			{Key: svg.DirFor, Value: pts},
			{Key: "cx", Value: svg.Computed(func(c *svg.Context) any { return c.Item.(point).X })},
			{Key: "cy", Value: svg.Computed(func(c *svg.Context) any { return c.Item.(point).Y })},
			{Key: "r", Value: radius},
			{Key: "fill", Value: color},
		}}

	case Bar:
		baseline := yScale(math.Max(ynice.Min, 0))
		barWidth := band * 0.7
		return svg.Field{Key: "rect", Value: svg.Node{
			{Key: svg.DirFor, Value: pts},
			{Key: "x", Value: svg.Computed(func(c *svg.Context) any { return c.Item.(point).X - barWidth/2 })},
			{Key: "y", Value: svg.Computed(func(c *svg.Context) any { return math.Min(c.Item.(point).Y, baseline) })},
			{Key: "width", Value: barWidth},
			{Key: "height", Value: svg.Computed(func(c *svg.Context) any { return math.Abs(baseline - c.Item.(point).Y) })},
			{Key: "fill", Value: color},
		}}

	case Area:
		return svg.Field{Key: "path", Value: svg.Node{
			{Key: "d", Value: areaPath(pts, bottom)},
			{Key: "fill", Value: color},
			{Key: "fill-opacity", Value: 0.35},
			{Key: "stroke", Value: color},
			{Key: "stroke-width", Value: 1.5},
		}}

	default: // Line
		return svg.Field{Key: "path", Value: svg.Node{
			{Key: "d", Value: linePath(pts)},
			{Key: "fill", Value: "none"},
			{Key: "stroke", Value: color},
			{Key: "stroke-width", Value: 1.5},
		}}
	}
}

func yAxisNode(axis *Axis, nice scale.Nice, yScale func(float64) float64, left, right, top, bottom float64) svg.Node {
	format := tickFormat(axis)
	ticks := scale.Ticks(nice.Min, nice.Max, nice.Step)
	yAt := svg.Computed(func(c *svg.Context) any { return yScale(c.Item.(float64)) })

	tick := svg.Node{
		{Key: svg.DirFor, Value: ticks},
		{Key: "line", Value: svg.Node{
			{Key: "x1", Value: left - 6},
			{Key: "y1", Value: yAt},
			{Key: "x2", Value: left},
			{Key: "y2", Value: yAt},
			{Key: "stroke", Value: axisColor},
		}},
		{Key: "text", Value: svg.Node{
			{Key: "x", Value: left - 9},
			{Key: "y", Value: svg.Computed(func(c *svg.Context) any { return yScale(c.Item.(float64)) + 3 })},
			{Key: "text-anchor", Value: "end"},
			{Key: "font-size", Value: 10},
			{Key: svg.DirText, Value: svg.Computed(func(c *svg.Context) any { return format(c.Item.(float64)) })},
		}},
	}
	if axis.Grid {
		tick = append(tick, svg.Field{Key: "line", Value: svg.Node{
			{Key: "x1", Value: left},
			{Key: "y1", Value: yAt},
			{Key: "x2", Value: right},
			{Key: "y2", Value: yAt},
			{Key: "stroke", Value: gridColor},
		}})
	}

	node := svg.Node{
		{Key: "line", Value: svg.Node{
			{Key: "x1", Value: left},
			{Key: "y1", Value: top},
			{Key: "x2", Value: left},
			{Key: "y2", Value: bottom},
			{Key: "stroke", Value: axisColor},
		}},
		{Key: "g", Value: tick},
	}
	if axis.Label != "" {
		node = append(node, svg.Field{Key: "text", Value: svg.Node{
			{Key: "x", Value: 12},
			{Key: "y", Value: (top + bottom) / 2},
			{Key: "text-anchor", Value: "middle"},
			{Key: "font-size", Value: 11},
			{Key: "transform", Value: fmt.Sprintf("rotate(-90 12 %s)", svg.Stringify((top+bottom)/2))},
			{Key: svg.DirText, Value: axis.Label},
		}})
	}
	return node
}

func xAxisNode(axis *Axis, nice scale.Nice, xScale func(float64) float64, left, right, top, bottom, height float64) svg.Node {
	format := tickFormat(axis)
	ticks := scale.Ticks(nice.Min, nice.Max, nice.Step)
	xAt := svg.Computed(func(c *svg.Context) any { return xScale(c.Item.(float64)) })

	tick := svg.Node{
		{Key: svg.DirFor, Value: ticks},
		{Key: "line", Value: svg.Node{
			{Key: "x1", Value: xAt},
			{Key: "y1", Value: bottom},
			{Key: "x2", Value: xAt},
			{Key: "y2", Value: bottom + 6},
			{Key: "stroke", Value: axisColor},
		}},
		{Key: "text", Value: svg.Node{
			{Key: "x", Value: xAt},
			{Key: "y", Value: bottom + 18},
			{Key: "text-anchor", Value: "middle"},
			{Key: "font-size", Value: 10},
			{Key: svg.DirText, Value: svg.Computed(func(c *svg.Context) any { return format(c.Item.(float64)) })},
		}},
	}
	if axis.Grid {
		tick = append(tick, svg.Field{Key: "line", Value: svg.Node{
			{Key: "x1", Value: xAt},
			{Key: "y1", Value: top},
			{Key: "x2", Value: xAt},
			{Key: "y2", Value: bottom},
			{Key: "stroke", Value: gridColor},
		}})
	}

	node := svg.Node{
		{Key: "line", Value: svg.Node{
			{Key: "x1", Value: left},
			{Key: "y1", Value: bottom},
			{Key: "x2", Value: right},
			{Key: "y2", Value: bottom},
			{Key: "stroke", Value: axisColor},
		}},
		{Key: "g", Value: tick},
	}
	if axis.Label != "" {
		node = append(node, svg.Field{Key: "text", Value: svg.Node{
			{Key: "x", Value: (left + right) / 2},
			{Key: "y", Value: height - 6},
			{Key: "text-anchor", Value: "middle"},
			{Key: "font-size", Value: 11},
			{Key: svg.DirText, Value: axis.Label},
		}})
	}
	return node
}

// barAxisNode labels each bar at its band center instead of deriving nice
// tick positions, which would not line up with the bands.
func barAxisNode(axis *Axis, pts []point, left, right, bottom, height float64) svg.Node {
	format := tickFormat(axis)
	node := svg.Node{
		{Key: "line", Value: svg.Node{
			{Key: "x1", Value: left},
			{Key: "y1", Value: bottom},
			{Key: "x2", Value: right},
			{Key: "y2", Value: bottom},
			{Key: "stroke", Value: axisColor},
		}},
		{Key: "text", Value: svg.Node{
			{Key: svg.DirFor, Value: pts},
			{Key: "x", Value: svg.Computed(func(c *svg.Context) any { return c.Item.(point).X })},
			{Key: "y", Value: bottom + 18},
			{Key: "text-anchor", Value: "middle"},
			{Key: "font-size", Value: 10},
			{Key: svg.DirText, Value: svg.Computed(func(c *svg.Context) any { return format(c.Item.(point).XVal) })},
		}},
	}
	if axis.Label != "" {
		node = append(node, svg.Field{Key: "text", Value: svg.Node{
			{Key: "x", Value: (left + right) / 2},
			{Key: "y", Value: height - 6},
			{Key: "text-anchor", Value: "middle"},
			{Key: "font-size", Value: 11},
			{Key: svg.DirText, Value: axis.Label},
		}})
	}
	return node
}

func linePath(pts []point) string {
	d := make([]byte, 0, len(pts)*16)
	for i, p := range pts {
		if i == 0 {
			d = append(d, 'M')
		} else {
			d = append(d, " L"...)
		}
		d = appendCoord(d, p.X, p.Y)
	}
	return string(d)
}

func areaPath(pts []point, baseline float64) string {
	d := []byte(linePath(pts))
	d = append(d, " L"...)
	d = appendCoord(d, pts[len(pts)-1].X, baseline)
	d = append(d, " L"...)
	d = appendCoord(d, pts[0].X, baseline)
	d = append(d, " Z"...)
	return string(d)
}

func appendCoord(d []byte, x, y float64) []byte {
	d = strconv.AppendFloat(d, x, 'g', -1, 64)
	d = append(d, ',')
	d = strconv.AppendFloat(d, y, 'g', -1, 64)
	return d
}

func axisTicks(axis *Axis) int {
	if axis != nil && axis.Ticks >= 2 {
		return axis.Ticks
	}
	return scale.DefaultTicks
}

func tickFormat(axis *Axis) func(float64) string {
	if axis != nil && axis.Format != nil {
		return axis.Format
	}
	return func(v float64) string {
		return strconv.FormatFloat(v, 'g', -1, 64)
	}
}

// project applies the accessors to every dataset item. Default accessors
// take the index for x and the item itself, which must be numeric, for y.
func project(items []any, xfn, yfn func(any, int) float64) (xs, ys []float64, err error) {
	xs = make([]float64, len(items))
	ys = make([]float64, len(items))
	for i, item := range items {
		if xfn != nil {
			xs[i] = xfn(item, i)
		} else {
			xs[i] = float64(i)
		}
		if yfn != nil {
			ys[i] = yfn(item, i)
		} else {
			v, ok := toFloat(item)
			if !ok {
				return nil, nil, errors.Newf(errors.ErrDatasetValue, "dataset item %d is not numeric and no Y accessor was given", i)
			}
			ys[i] = v
		}
	}
	return xs, ys, nil
}

func toItems(data any) ([]any, bool) {
	if data == nil {
		return nil, false
	}
	if items, ok := data.([]any); ok {
		return items, true
	}
	rv := reflect.ValueOf(data)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return nil, false
	}
	items := make([]any, rv.Len())
	for i := range items {
		items[i] = rv.Index(i).Interface()
	}
	return items, true
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return float64(rv.Uint()), true
	case reflect.Float32, reflect.Float64:
		return rv.Float(), true
	}
	return 0, false
}
