package ports

import (
	"golift/domain/core"
	"golift/domain/stats"
)

// MetricCounts holds the raw count pairs extracted for one metric. Counts
// are validated (non-negative, successes <= total) before they reach the
// engine; extraction only locates them.
type MetricCounts struct {
	Metric  core.MetricKey
	Control stats.Sample
	Test    stats.Sample
}

// SampleExtractorPort pulls control/test count pairs out of a
// caller-supplied document. The document layout belongs to the caller; the
// extractor is configured with paths, not a schema.
type SampleExtractorPort interface {
	Extract(doc []byte) ([]MetricCounts, error)
}
