package experiment

import (
	"fmt"

	"golift/domain/stats"
)

// FormatRate renders a proportion as a percentage, e.g. "10.00%".
func FormatRate(rate float64) string {
	return fmt.Sprintf("%.2f%%", rate*100)
}

// FormatInterval renders a confidence interval as a bounded percentage
// range, e.g. "[8.14%, 11.86%]".
func FormatInterval(iv stats.Interval) string {
	return fmt.Sprintf("[%s, %s]", FormatRate(iv.Lower), FormatRate(iv.Upper))
}

// Interpret produces the human-readable reading of a comparison for the
// dashboard and CLI output.
func Interpret(verdict Verdict, res stats.SignificanceResult, lift Lift, alpha float64) string {
	switch verdict {
	case VerdictInconclusive:
		return "Inconclusive: at least one group has no observations"
	case VerdictSignificant:
		return fmt.Sprintf("Statistically significant at alpha=%.2f (p=%.4f): test group shows %s lift over control", alpha, res.PValue, lift)
	default:
		return fmt.Sprintf("Not statistically significant at alpha=%.2f (p=%.4f): observed %s lift may be noise", alpha, res.PValue, lift)
	}
}
