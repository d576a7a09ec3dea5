package app

import (
	"context"

	"golift/domain/core"
	"golift/domain/experiment"
	"golift/domain/stats"
)

// CompareService assembles full comparison reports from validated count
// pairs. It owns the boundary validation that keeps the engine's documented
// preconditions true; the engine itself never checks.
type CompareService struct {
	confidence float64
	alpha      float64
}

// CompareRequest defines the inputs for a single comparison
type CompareRequest struct {
	Metric  core.MetricKey
	Control stats.Sample
	Test    stats.Sample
	// Optional overrides; zero values fall back to the service defaults.
	Confidence float64
	Alpha      float64
}

// NewCompareService creates a compare service with the given conventions
func NewCompareService(confidence, alpha float64) *CompareService {
	return &CompareService{confidence: confidence, alpha: alpha}
}

// ValidateSample rejects out-of-contract counts at the boundary.
func ValidateSample(group string, s stats.Sample) error {
	if s.Successes < 0 || s.Total < 0 {
		return core.NewCountError(group, s.Successes, s.Total)
	}
	if s.Successes > s.Total {
		return core.NewCountError(group, s.Successes, s.Total)
	}
	return nil
}

// Compare validates the request, runs the engine and assembles the report.
func (s *CompareService) Compare(ctx context.Context, req CompareRequest) (*experiment.ComparisonReport, error) {
	if err := ValidateSample("control", req.Control); err != nil {
		return nil, err
	}
	if err := ValidateSample("test", req.Test); err != nil {
		return nil, err
	}

	confidence := req.Confidence
	if confidence == 0 {
		confidence = s.confidence
	}
	alpha := req.Alpha
	if alpha == 0 {
		alpha = s.alpha
	}
	if confidence <= 0 || confidence >= 1 || alpha <= 0 || alpha >= 1 {
		return nil, core.ErrInvalidLevel
	}

	controlRate := req.Control.Rate()
	testRate := req.Test.Rate()

	sig := stats.Significance(
		req.Control.Successes, req.Control.Total,
		req.Test.Successes, req.Test.Total,
	)
	lift := experiment.NewLift(stats.RelativeImprovement(controlRate, testRate))
	verdict := experiment.DecideVerdict(sig, req.Control, req.Test, alpha)

	report := &experiment.ComparisonReport{
		ID:             core.ReportID(core.NewID()),
		Metric:         req.Metric,
		Control:        experiment.GroupSample{Label: "control", Sample: req.Control},
		Test:           experiment.GroupSample{Label: "test", Sample: req.Test},
		ControlRate:    controlRate,
		TestRate:       testRate,
		ControlCI:      stats.ConfidenceInterval(req.Control.Successes, req.Control.Total, confidence),
		TestCI:         stats.ConfidenceInterval(req.Test.Successes, req.Test.Total, confidence),
		Confidence:     confidence,
		Significance:   sig,
		Lift:           lift,
		Alpha:          alpha,
		Verdict:        verdict,
		Interpretation: experiment.Interpret(verdict, sig, lift, alpha),
		CreatedAt:      core.Now(),
	}
	return report, nil
}
