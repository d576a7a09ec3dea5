package stats

import (
	"math"
	"testing"
)

const tol = 1e-3

func TestRate(t *testing.T) {
	if got := Rate(0, 0); got != 0 {
		t.Errorf("Rate(0,0) = %v, want 0", got)
	}
	if got := Rate(100, 1000); got != 0.1 {
		t.Errorf("Rate(100,1000) = %v, want 0.1", got)
	}
	if got := Rate(0, 50); got != 0 {
		t.Errorf("Rate(0,50) = %v, want 0", got)
	}
	if got := Rate(50, 50); got != 1 {
		t.Errorf("Rate(50,50) = %v, want 1", got)
	}
}

func TestRate_Bounded(t *testing.T) {
	for total := 1; total <= 50; total++ {
		for s := 0; s <= total; s++ {
			r := Rate(s, total)
			if r < 0 || r > 1 {
				t.Fatalf("Rate(%d,%d) = %v out of [0,1]", s, total, r)
			}
		}
	}
}

func TestConfidenceInterval_ZeroTotal(t *testing.T) {
	iv := ConfidenceInterval(0, 0, DefaultConfidence)
	if iv.Lower != 0 || iv.Upper != 0 {
		t.Errorf("expected (0,0) for zero total, got (%v,%v)", iv.Lower, iv.Upper)
	}
}

func TestConfidenceInterval_ReferenceValues(t *testing.T) {
	// control group from the end-to-end scenario: 100/1000 at 95%
	iv := ConfidenceInterval(100, 1000, 0.95)
	if math.Abs(iv.Lower-0.0814) > tol || math.Abs(iv.Upper-0.1186) > tol {
		t.Errorf("CI(100,1000) = (%v,%v), want ~(0.0814, 0.1186)", iv.Lower, iv.Upper)
	}

	// test group: 120/1000
	iv = ConfidenceInterval(120, 1000, 0.95)
	if math.Abs(iv.Lower-0.0999) > tol || math.Abs(iv.Upper-0.1401) > tol {
		t.Errorf("CI(120,1000) = (%v,%v), want ~(0.0999, 0.1401)", iv.Lower, iv.Upper)
	}
}

func TestConfidenceInterval_WellFormed(t *testing.T) {
	cases := []struct{ s, n int }{
		{0, 10}, {10, 10}, {1, 2}, {5, 1000}, {999, 1000}, {1, 1},
	}
	for _, c := range cases {
		iv := ConfidenceInterval(c.s, c.n, 0.95)
		if iv.Lower > iv.Upper {
			t.Errorf("CI(%d,%d): lower %v > upper %v", c.s, c.n, iv.Lower, iv.Upper)
		}
		if iv.Lower < 0 || iv.Upper > 1 {
			t.Errorf("CI(%d,%d) = (%v,%v) not clamped to [0,1]", c.s, c.n, iv.Lower, iv.Upper)
		}
	}
}

// Interval width should shrink as the sample grows with the rate held fixed.
func TestConfidenceInterval_WidthShrinksWithSampleSize(t *testing.T) {
	prev := math.Inf(1)
	for _, n := range []int{10, 100, 1000, 10000} {
		iv := ConfidenceInterval(n/5, n, 0.95) // p = 0.2 throughout
		if w := iv.Width(); w >= prev {
			t.Errorf("width %v at n=%d did not shrink (previous %v)", w, n, prev)
		} else {
			prev = w
		}
	}
}

func TestConfidenceInterval_ExtremeRatesClamped(t *testing.T) {
	// Unclamped Wald bounds escape [0,1] for p near 0 or 1 at small n.
	iv := ConfidenceInterval(1, 10, 0.95)
	if iv.Lower != 0 {
		t.Errorf("expected lower bound clamped to 0, got %v", iv.Lower)
	}
	iv = ConfidenceInterval(9, 10, 0.95)
	if iv.Upper != 1 {
		t.Errorf("expected upper bound clamped to 1, got %v", iv.Upper)
	}
}

func TestSignificance_ReferenceTable(t *testing.T) {
	// [[100,900],[120,880]] — verified against scipy.stats.chi2_contingency:
	// chi2 = 1.8437, p = 0.1745 (Yates' correction applied).
	res := Significance(100, 1000, 120, 1000)
	if math.Abs(res.ChiSquare-1.8437) > tol {
		t.Errorf("chi2 = %v, want ~1.8437", res.ChiSquare)
	}
	if math.Abs(res.PValue-0.1745) > tol {
		t.Errorf("p = %v, want ~0.1745", res.PValue)
	}
}

func TestSignificance_ZeroControlSuccesses(t *testing.T) {
	// [[0,1000],[5,995]] — chi2 = 3.2080, p = 0.0733 per the reference
	// contingency routine. A zero cell is fine; only zero marginals
	// degenerate.
	res := Significance(0, 1000, 5, 1000)
	if math.Abs(res.ChiSquare-3.2080) > tol {
		t.Errorf("chi2 = %v, want ~3.2080", res.ChiSquare)
	}
	if math.Abs(res.PValue-0.0733) > tol {
		t.Errorf("p = %v, want ~0.0733", res.PValue)
	}
}

func TestSignificance_Symmetric(t *testing.T) {
	a := Significance(100, 1000, 120, 1000)
	b := Significance(120, 1000, 100, 1000)
	if math.Abs(a.ChiSquare-b.ChiSquare) > 1e-12 {
		t.Errorf("chi2 not symmetric under group swap: %v vs %v", a.ChiSquare, b.ChiSquare)
	}
	if math.Abs(a.PValue-b.PValue) > 1e-12 {
		t.Errorf("p not symmetric under group swap: %v vs %v", a.PValue, b.PValue)
	}
}

func TestSignificance_DegenerateTotals(t *testing.T) {
	cases := []struct{ sa, ta, sb, tb int }{
		{0, 0, 120, 1000},
		{100, 1000, 0, 0},
		{0, 0, 0, 0},
	}
	for _, c := range cases {
		res := Significance(c.sa, c.ta, c.sb, c.tb)
		if res.ChiSquare != 0 || res.PValue != 1.0 {
			t.Errorf("Significance(%d,%d,%d,%d) = (%v,%v), want (0,1)",
				c.sa, c.ta, c.sb, c.tb, res.ChiSquare, res.PValue)
		}
	}
}

func TestSignificance_ZeroMarginals(t *testing.T) {
	// All-zero successes and all-total successes both produce a zero
	// expected column; pinned policy is the neutral (0, 1.0).
	res := Significance(0, 100, 0, 200)
	if res.ChiSquare != 0 || res.PValue != 1.0 {
		t.Errorf("all-zero successes: got (%v,%v), want (0,1)", res.ChiSquare, res.PValue)
	}
	res = Significance(100, 100, 200, 200)
	if res.ChiSquare != 0 || res.PValue != 1.0 {
		t.Errorf("all-total successes: got (%v,%v), want (0,1)", res.ChiSquare, res.PValue)
	}
}

func TestSignificance_ClearDifference(t *testing.T) {
	// 10% vs 5% conversion at n=1000 each should be decisively significant.
	res := Significance(100, 1000, 50, 1000)
	if res.PValue > 0.05 {
		t.Errorf("expected p < 0.05 for a clear difference, got %v", res.PValue)
	}
	if res.ChiSquare <= 0 {
		t.Errorf("expected positive chi2, got %v", res.ChiSquare)
	}
}

func TestSignificance_PValueBounded(t *testing.T) {
	cases := []struct{ sa, ta, sb, tb int }{
		{1, 2, 1, 2}, {0, 5, 5, 5}, {3, 10, 7, 10}, {500, 1000, 500, 1000},
	}
	for _, c := range cases {
		res := Significance(c.sa, c.ta, c.sb, c.tb)
		if res.PValue < 0 || res.PValue > 1 {
			t.Errorf("p-value %v out of [0,1] for (%d,%d,%d,%d)",
				res.PValue, c.sa, c.ta, c.sb, c.tb)
		}
		if res.ChiSquare < 0 {
			t.Errorf("negative chi2 %v for (%d,%d,%d,%d)",
				res.ChiSquare, c.sa, c.ta, c.sb, c.tb)
		}
	}
}

func TestRelativeImprovement(t *testing.T) {
	if got := RelativeImprovement(0.1, 0.1); got != 0 {
		t.Errorf("equal rates: got %v, want 0", got)
	}
	if got := RelativeImprovement(0.10, 0.12); math.Abs(got-20.0) > tol {
		t.Errorf("0.10 -> 0.12: got %v, want ~20", got)
	}
	if got := RelativeImprovement(0.2, 0.1); math.Abs(got+50.0) > tol {
		t.Errorf("0.2 -> 0.1: got %v, want ~-50", got)
	}
	if got := RelativeImprovement(0, 0.1); !math.IsInf(got, 1) {
		t.Errorf("zero control, positive test: got %v, want +Inf", got)
	}
	if got := RelativeImprovement(0, 0); got != 0 {
		t.Errorf("both zero: got %v, want 0", got)
	}
}

// End-to-end scenario from the warehouse conversion comparison: control
// 100/1000 vs test 120/1000.
func TestEndToEndScenario(t *testing.T) {
	control := Sample{Successes: 100, Total: 1000}
	test := Sample{Successes: 120, Total: 1000}

	if control.Rate() != 0.10 {
		t.Errorf("control rate = %v, want 0.10", control.Rate())
	}
	if test.Rate() != 0.12 {
		t.Errorf("test rate = %v, want 0.12", test.Rate())
	}

	lift := RelativeImprovement(control.Rate(), test.Rate())
	if math.Abs(lift-20.0) > tol {
		t.Errorf("lift = %v, want ~+20%%", lift)
	}

	res := Significance(control.Successes, control.Total, test.Successes, test.Total)
	if math.Abs(res.PValue-0.1745) > tol {
		t.Errorf("p = %v, want ~0.1745", res.PValue)
	}
}
