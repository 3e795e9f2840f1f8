// Package scale provides the numeric primitives behind chart axes: data
// extents, "nice" round-number bounds and steps, tick generation, and linear
// data-to-pixel mapping. Everything here is pure float64 arithmetic with no
// dependency on rendering.
package scale

import "math"

// DefaultTicks is the tick count NiceScale targets when the caller does not
// ask for one.
const DefaultTicks = 5

// Nice is a rounded axis interval. Min <= the raw minimum, Max >= the raw
// maximum, and Max-Min is a whole multiple of Step up to floating-point
// tolerance.
type Nice struct {
	Min  float64
	Max  float64
	Step float64
}

// Extent returns the minimum and maximum of values in a single pass. An
// empty input returns the (+Inf, -Inf) sentinels; callers must guard that
// case before feeding the result anywhere.
func Extent(values []float64) (min, max float64) {
	min, max = math.Inf(1), math.Inf(-1)
	for _, v := range values {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}
	return min, max
}

// NiceNumber snaps rng to a human-friendly value of the form
// {1,2,5,10} x 10^k. With round set the thresholds are 1.5/3/7 and the
// result may be below rng (step sizing); without it the thresholds are 1/2/5
// and the result is always >= rng (span sizing).
func NiceNumber(rng float64, round bool) float64 {
	exp := math.Floor(math.Log10(rng))
	frac := rng / math.Pow(10, exp)

	var nice float64
	if round {
		switch {
		case frac < 1.5:
			nice = 1
		case frac < 3:
			nice = 2
		case frac < 7:
			nice = 5
		default:
			nice = 10
		}
	} else {
		switch {
		case frac <= 1:
			nice = 1
		case frac <= 2:
			nice = 2
		case frac <= 5:
			nice = 5
		default:
			nice = 10
		}
	}
	return nice * math.Pow(10, exp)
}

// NiceScale derives rounded axis bounds for the raw interval [min, max],
// targeting about maxTicks tick values. maxTicks below 2 falls back to
// DefaultTicks. The result contains the raw interval: Min <= min and
// Max >= max.
func NiceScale(min, max float64, maxTicks int) Nice {
	if maxTicks < 2 {
		maxTicks = DefaultTicks
	}
	span := NiceNumber(max-min, false)
	step := NiceNumber(span/float64(maxTicks-1), true)
	return Nice{
		Min:  math.Floor(min/step) * step,
		Max:  math.Ceil(max/step) * step,
		Step: step,
	}
}

// Ticks returns evenly spaced values from min to max inclusive. The loop
// bound carries a half-step tolerance so accumulated rounding error cannot
// drop the final tick at max, and every value is rounded to ten fractional
// digits to suppress binary float artifacts.
func Ticks(min, max, step float64) []float64 {
	if step <= 0 {
		return nil
	}
	var ticks []float64
	for v := min; v <= max+step*0.5; v += step {
		ticks = append(ticks, math.Round(v*1e10)/1e10)
	}
	return ticks
}

// Linear returns the affine map from domain to rng. A zero-width domain
// divides by one instead of zero, yielding a constant map rather than NaN.
func Linear(domain, rng [2]float64) func(float64) float64 {
	width := domain[1] - domain[0]
	if width == 0 {
		width = 1
	}
	ratio := (rng[1] - rng[0]) / width
	return func(v float64) float64 {
		return rng[0] + (v-domain[0])*ratio
	}
}
