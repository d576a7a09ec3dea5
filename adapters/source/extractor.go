// Package source extracts control/test count pairs from caller-supplied
// JSON documents. The document shape belongs to the caller; the extractor
// is pointed at it with gjson path expressions, so upstream collection
// layers can hand over their native export format unchanged.
package source

import (
	"fmt"

	"github.com/tidwall/gjson"

	"golift/domain/core"
	"golift/domain/stats"
	"golift/internal/errors"
	"golift/ports"
)

// ExtractorConfig holds the gjson paths used to locate count pairs.
// MetricsPath addresses an array of metric objects; the remaining paths are
// relative to each element.
type ExtractorConfig struct {
	MetricsPath          string `json:"metrics_path"`
	MetricKeyPath        string `json:"metric_key_path"`
	ControlSuccessesPath string `json:"control_successes_path"`
	ControlTotalPath     string `json:"control_total_path"`
	TestSuccessesPath    string `json:"test_successes_path"`
	TestTotalPath        string `json:"test_total_path"`
}

// DefaultExtractorConfig returns paths for the conventional layout:
//
//	{"metrics": [{"key": ..., "control": {"successes": ..., "total": ...},
//	              "test": {"successes": ..., "total": ...}}, ...]}
func DefaultExtractorConfig() ExtractorConfig {
	return ExtractorConfig{
		MetricsPath:          "metrics",
		MetricKeyPath:        "key",
		ControlSuccessesPath: "control.successes",
		ControlTotalPath:     "control.total",
		TestSuccessesPath:    "test.successes",
		TestTotalPath:        "test.total",
	}
}

// Extractor implements ports.SampleExtractorPort over JSON documents.
type Extractor struct {
	config ExtractorConfig
}

// NewExtractor creates an extractor with the given path configuration
func NewExtractor(config ExtractorConfig) *Extractor {
	return &Extractor{config: config}
}

// Extract locates every metric's count pairs in the document.
func (e *Extractor) Extract(doc []byte) ([]ports.MetricCounts, error) {
	if !gjson.ValidBytes(doc) {
		return nil, errors.SourceError("document is not valid JSON")
	}

	metrics := gjson.GetBytes(doc, e.config.MetricsPath)
	if !metrics.Exists() || !metrics.IsArray() {
		return nil, errors.SourceError(fmt.Sprintf("path %q did not resolve to an array", e.config.MetricsPath))
	}

	var out []ports.MetricCounts
	var extractErr error
	metrics.ForEach(func(_, elem gjson.Result) bool {
		key, err := core.ParseMetricKey(elem.Get(e.config.MetricKeyPath).String())
		if err != nil {
			extractErr = errors.Wrapf(err, "metric %d", len(out))
			return false
		}

		control, err := e.sampleAt(elem, e.config.ControlSuccessesPath, e.config.ControlTotalPath)
		if err != nil {
			extractErr = errors.Wrapf(err, "metric %s: control group", key)
			return false
		}
		test, err := e.sampleAt(elem, e.config.TestSuccessesPath, e.config.TestTotalPath)
		if err != nil {
			extractErr = errors.Wrapf(err, "metric %s: test group", key)
			return false
		}

		out = append(out, ports.MetricCounts{Metric: key, Control: control, Test: test})
		return true
	})
	if extractErr != nil {
		return nil, extractErr
	}
	if len(out) == 0 {
		return nil, errors.SourceError("document contains no metrics")
	}
	return out, nil
}

func (e *Extractor) sampleAt(elem gjson.Result, successesPath, totalPath string) (stats.Sample, error) {
	successes := elem.Get(successesPath)
	total := elem.Get(totalPath)
	if !successes.Exists() || !total.Exists() {
		return stats.Sample{}, errors.SourceError(
			fmt.Sprintf("missing counts at %q/%q", successesPath, totalPath))
	}
	if successes.Type != gjson.Number || total.Type != gjson.Number {
		return stats.Sample{}, errors.SourceError(
			fmt.Sprintf("counts at %q/%q are not numbers", successesPath, totalPath))
	}
	return stats.Sample{
		Successes: int(successes.Int()),
		Total:     int(total.Int()),
	}, nil
}
