package stats

// Sample represents observed counts for one group: successes out of total
// trials. Callers are responsible for supplying 0 <= Successes <= Total;
// the engine does not re-validate.
type Sample struct {
	Successes int `json:"successes"`
	Total     int `json:"total"`
}

// Rate returns the success proportion for the sample.
func (s Sample) Rate() float64 {
	return Rate(s.Successes, s.Total)
}

// Interval represents a confidence interval over a proportion,
// with 0 <= Lower <= Upper <= 1.
type Interval struct {
	Lower float64 `json:"lower"`
	Upper float64 `json:"upper"`
}

// Width returns the span of the interval.
func (iv Interval) Width() float64 {
	return iv.Upper - iv.Lower
}

// SignificanceResult holds the chi-square statistic and two-sided p-value
// of a 2x2 contingency test.
type SignificanceResult struct {
	ChiSquare float64 `json:"chi_square"`
	PValue    float64 `json:"p_value"`
}
