package stats

import (
	"math"

	"github.com/zoyakhan/covidfactors/internal/errors"
)

// Percentage returns numerator/denominator as a percentage rounded to 2
// decimal places. A non-zero denominator is a precondition; callers guard
// against zero before dividing.
func Percentage(numerator, denominator float64) float64 {
	return Round2(numerator / denominator * 100)
}

// Round2 rounds v to 2 decimal places
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// Round1 rounds v to 1 decimal place
func Round1(v float64) float64 {
	return math.Round(v*10) / 10
}

// Mean returns the arithmetic mean of values. Returns 0 for an empty slice;
// callers treat zero matches as a not-found condition before averaging.
func Mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}

	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

// LeastSquares fits y = slope*x + intercept over the given points using
// ordinary least squares. Fails when the series differ in length, hold
// fewer than two points, or all x values coincide.
func LeastSquares(xs, ys []float64) (slope, intercept float64, err error) {
	if len(xs) != len(ys) {
		return 0, 0, errors.ErrMalformedRow
	}
	if len(xs) < 2 {
		return 0, 0, errors.ErrZeroDenominator
	}

	n := float64(len(xs))

	var sumX, sumY, sumXY, sumXX float64
	for i := range xs {
		sumX += xs[i]
		sumY += ys[i]
		sumXY += xs[i] * ys[i]
		sumXX += xs[i] * xs[i]
	}

	denom := n*sumXX - sumX*sumX
	if denom == 0 {
		return 0, 0, errors.ErrZeroDenominator
	}

	slope = (n*sumXY - sumX*sumY) / denom
	intercept = (sumY - slope*sumX) / n
	return slope, intercept, nil
}
