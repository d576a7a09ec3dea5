package experiment

import (
	"golift/domain/core"
	"golift/domain/stats"
)

// GroupSample pairs a group label with its observed counts.
type GroupSample struct {
	Label  string       `json:"label"`
	Sample stats.Sample `json:"sample"`
}

// Verdict represents the significance decision for a comparison
type Verdict string

const (
	VerdictSignificant    Verdict = "SIGNIFICANT"
	VerdictNotSignificant Verdict = "NOT_SIGNIFICANT"
	VerdictInconclusive   Verdict = "INCONCLUSIVE"
)

// ComparisonReport is the full output of one comparison: rates, intervals,
// the chi-square result, lift, and the human-readable interpretation.
type ComparisonReport struct {
	ID             core.ReportID            `json:"id"`
	Metric         core.MetricKey           `json:"metric"`
	Control        GroupSample              `json:"control"`
	Test           GroupSample              `json:"test"`
	ControlRate    float64                  `json:"control_rate"`
	TestRate       float64                  `json:"test_rate"`
	ControlCI      stats.Interval           `json:"control_ci"`
	TestCI         stats.Interval           `json:"test_ci"`
	Confidence     float64                  `json:"confidence"`
	Significance   stats.SignificanceResult `json:"significance"`
	Lift           Lift                     `json:"lift"`
	Alpha          float64                  `json:"alpha"`
	Verdict        Verdict                  `json:"verdict"`
	Interpretation string                   `json:"interpretation"`
	CreatedAt      core.Timestamp           `json:"created_at"`
}

// DecideVerdict classifies a significance result against the alpha
// threshold. Degenerate inputs (either total zero) are inconclusive rather
// than "no difference".
func DecideVerdict(res stats.SignificanceResult, control, test stats.Sample, alpha float64) Verdict {
	if control.Total == 0 || test.Total == 0 {
		return VerdictInconclusive
	}
	if res.PValue < alpha {
		return VerdictSignificant
	}
	return VerdictNotSignificant
}
