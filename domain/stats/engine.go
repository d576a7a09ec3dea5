// Package stats is the significance engine: pure functions that compare two
// binomial samples (control vs test). Every function is total — degenerate
// inputs map to neutral sentinel outputs instead of errors.
package stats

import (
	"math"

	"gonum.org/v1/gonum/stat/distuv"
)

// DefaultConfidence is the conventional confidence level for intervals.
const DefaultConfidence = 0.95

var chi2df1 = distuv.ChiSquared{K: 1}

// Rate returns successes/total, or 0 when total is 0.
//
// Precondition: 0 <= successes <= total. Out-of-contract counts are the
// caller's responsibility and produce unspecified results.
func Rate(successes, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(successes) / float64(total)
}

// ConfidenceInterval computes the Wald (normal approximation) confidence
// interval for a binomial proportion, clamped to [0, 1]. A zero total yields
// the degenerate interval (0, 0).
func ConfidenceInterval(successes, total int, confidence float64) Interval {
	if total == 0 {
		return Interval{}
	}

	p := Rate(successes, total)
	z := distuv.UnitNormal.Quantile((1 + confidence) / 2)
	se := math.Sqrt(p * (1 - p) / float64(total))

	return Interval{
		Lower: math.Max(0, p-z*se),
		Upper: math.Min(1, p+z*se),
	}
}

// Significance runs Pearson's chi-square test with Yates' continuity
// correction on the 2x2 contingency table
//
//	            successes   failures
//	 group A    successA    totalA - successA
//	 group B    successB    totalB - successB
//
// and returns the statistic with its two-sided p-value (1 degree of
// freedom). The correction term is max(0, |O-E| - 0.5), matching the
// conventional contingency-table routines.
//
// Degenerate tables carry no evidence of a difference and short-circuit to
// (chi2=0, p=1): either group total zero, or any zero marginal (both groups
// all successes, or both all failures), which would put a zero in the
// expected frequencies.
func Significance(successA, totalA, successB, totalB int) SignificanceResult {
	neutral := SignificanceResult{ChiSquare: 0, PValue: 1.0}
	if totalA == 0 || totalB == 0 {
		return neutral
	}

	observed := [2][2]float64{
		{float64(successA), float64(totalA - successA)},
		{float64(successB), float64(totalB - successB)},
	}

	rowTotals := [2]float64{float64(totalA), float64(totalB)}
	colTotals := [2]float64{observed[0][0] + observed[1][0], observed[0][1] + observed[1][1]}
	grand := rowTotals[0] + rowTotals[1]

	if colTotals[0] == 0 || colTotals[1] == 0 {
		return neutral
	}

	chi2 := 0.0
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			expected := rowTotals[i] * colTotals[j] / grand
			corrected := math.Max(0, math.Abs(observed[i][j]-expected)-0.5)
			chi2 += corrected * corrected / expected
		}
	}

	return SignificanceResult{
		ChiSquare: chi2,
		PValue:    chi2df1.Survival(chi2),
	}
}

// RelativeImprovement returns the percent change of testRate over
// controlRate. When the control rate is zero the improvement is unbounded:
// +Inf if the test rate is positive, 0 if both are zero.
func RelativeImprovement(controlRate, testRate float64) float64 {
	if controlRate == 0 {
		if testRate > 0 {
			return math.Inf(1)
		}
		return 0
	}
	return ((testRate - controlRate) / controlRate) * 100
}
