package ports

import (
	"context"

	"golift/domain/experiment"
)

// ReportExporterPort writes finished comparison reports somewhere a human
// can consume them. Exporters must not mutate the reports.
type ReportExporterPort interface {
	Export(ctx context.Context, path string, reports []experiment.ComparisonReport) error
}
