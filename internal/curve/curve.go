// SPDX-License-Identifier: GPL-3.0-only

// Package curve provides interpolation tables used to map small integer
// brightness steps onto physical values (gamma multipliers, brightness
// fractions, raw backlight units).
package curve

import (
	"errors"
	"math"
)

// ErrInvalidAlpha is returned when an exponential curve is requested with
// alpha <= 1, which would collapse the exponent range to a single value.
var ErrInvalidAlpha = errors.New("alpha must be greater than 1")

// Linear returns n+1 evenly spaced points covering [xmin, xmax].
// The endpoints are exact. n must be at least 1.
func Linear(xmin, xmax float64, n int) []float64 {
	points := make([]float64, n+1)
	step := (xmax - xmin) / float64(n)
	for i := range points {
		points[i] = xmin + float64(i)*step
	}
	points[n] = xmax
	return points
}

// Exp returns n+1 points covering [xmin, xmax] with exponentially increasing
// spacing: larger alpha concentrates values near xmin. The raw curve
// exp(i*ln(alpha)) - 1 is rescaled affinely so the endpoints are exact.
// Strictly increasing for alpha > 1; alpha <= 1 returns ErrInvalidAlpha.
func Exp(xmin, xmax float64, n int, alpha float64) ([]float64, error) {
	if alpha <= 1 {
		return nil, ErrInvalidAlpha
	}

	points := make([]float64, n+1)
	for i := range points {
		points[i] = math.Exp(float64(i)*math.Log(alpha)) - 1
	}

	lo, hi := points[0], points[n]
	for i := range points {
		points[i] = (points[i]-lo)/(hi-lo)*(xmax-xmin) + xmin
	}
	points[0], points[n] = xmin, xmax
	return points, nil
}

// NearestIndex rounds the exponential curve Exp(xmin, xmax, n, alpha) to
// integers and returns the index of the entry closest to value.
// Ties resolve to the lowest index.
func NearestIndex(xmin, xmax float64, n int, alpha float64, value int) (int, error) {
	points, err := Exp(xmin, xmax, n, alpha)
	if err != nil {
		return 0, err
	}

	best := 0
	bestDist := math.MaxInt
	for i, p := range points {
		dist := int(math.Round(p)) - value
		if dist < 0 {
			dist = -dist
		}
		if dist < bestDist {
			best = i
			bestDist = dist
		}
	}
	return best, nil
}
