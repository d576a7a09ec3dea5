package app

import (
	"context"
	"sort"
	"sync"

	"github.com/montanaflynn/stats"
	"golang.org/x/sync/semaphore"

	"golift/domain/experiment"
	"golift/internal/errors"
	"golift/ports"
)

// defaultBatchConcurrency bounds how many comparisons run at once. The
// engine is pure CPU work, so a small bound is plenty.
const defaultBatchConcurrency = 8

// BatchService runs one comparison per metric and summarizes the batch.
type BatchService struct {
	compare     *CompareService
	concurrency int64
}

// BatchSummary holds descriptive statistics over a batch of comparisons.
// Unbounded lifts are excluded from the lift aggregates and counted
// separately.
type BatchSummary struct {
	Metrics          int     `json:"metrics"`
	SignificantCount int     `json:"significant_count"`
	UnboundedLifts   int     `json:"unbounded_lifts"`
	MeanLift         float64 `json:"mean_lift"`
	MedianLift       float64 `json:"median_lift"`
	MinLift          float64 `json:"min_lift"`
	MaxLift          float64 `json:"max_lift"`
	MeanPValue       float64 `json:"mean_p_value"`
	MedianPValue     float64 `json:"median_p_value"`
}

// BatchResult contains the per-metric reports plus the batch summary.
type BatchResult struct {
	Reports []experiment.ComparisonReport `json:"reports"`
	Summary BatchSummary                  `json:"summary"`
}

// NewBatchService creates a batch service on top of a compare service
func NewBatchService(compare *CompareService) *BatchService {
	return &BatchService{compare: compare, concurrency: defaultBatchConcurrency}
}

// Run compares every metric concurrently and aggregates the results.
// Report order follows metric key order, not completion order.
func (s *BatchService) Run(ctx context.Context, counts []ports.MetricCounts) (*BatchResult, error) {
	if len(counts) == 0 {
		return nil, errors.InvalidInput("batch contains no metrics")
	}

	sem := semaphore.NewWeighted(s.concurrency)
	reports := make([]*experiment.ComparisonReport, len(counts))
	errs := make([]error, len(counts))
	var wg sync.WaitGroup

	for i, mc := range counts {
		if err := sem.Acquire(ctx, 1); err != nil {
			return nil, err
		}
		wg.Add(1)
		go func(i int, mc ports.MetricCounts) {
			defer wg.Done()
			defer sem.Release(1)
			reports[i], errs[i] = s.compare.Compare(ctx, CompareRequest{
				Metric:  mc.Metric,
				Control: mc.Control,
				Test:    mc.Test,
			})
		}(i, mc)
	}
	wg.Wait()

	result := &BatchResult{Reports: make([]experiment.ComparisonReport, 0, len(counts))}
	for i, err := range errs {
		if err != nil {
			return nil, errors.Wrapf(err, "metric %s", counts[i].Metric)
		}
		result.Reports = append(result.Reports, *reports[i])
	}

	sort.Slice(result.Reports, func(i, j int) bool {
		return result.Reports[i].Metric < result.Reports[j].Metric
	})

	result.Summary = summarize(result.Reports)
	return result, nil
}

func summarize(reports []experiment.ComparisonReport) BatchSummary {
	summary := BatchSummary{Metrics: len(reports)}

	lifts := make([]float64, 0, len(reports))
	pvalues := make([]float64, 0, len(reports))
	for _, r := range reports {
		if r.Verdict == experiment.VerdictSignificant {
			summary.SignificantCount++
		}
		if r.Lift.Unbounded {
			summary.UnboundedLifts++
		} else {
			lifts = append(lifts, r.Lift.Percent)
		}
		pvalues = append(pvalues, r.Significance.PValue)
	}

	if len(lifts) > 0 {
		summary.MeanLift, _ = stats.Mean(lifts)
		summary.MedianLift, _ = stats.Median(lifts)
		summary.MinLift, _ = stats.Min(lifts)
		summary.MaxLift, _ = stats.Max(lifts)
	}
	summary.MeanPValue, _ = stats.Mean(pvalues)
	summary.MedianPValue, _ = stats.Median(pvalues)

	return summary
}
