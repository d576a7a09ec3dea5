// Package excel exports comparison reports as an xlsx workbook for offline
// review. It is a pure consumer of finished reports.
package excel

import (
	"context"

	"github.com/xuri/excelize/v2"

	"golift/domain/experiment"
	"golift/internal/errors"
)

const reportSheet = "Comparisons"

var reportHeaders = []string{
	"Metric",
	"Control Successes", "Control Total", "Control Rate",
	"Test Successes", "Test Total", "Test Rate",
	"Control CI Lower", "Control CI Upper",
	"Test CI Lower", "Test CI Upper",
	"Chi-Square", "P-Value", "Lift", "Verdict", "Interpretation",
}

// ReportWriter implements ports.ReportExporterPort with excelize.
type ReportWriter struct{}

// NewReportWriter creates an xlsx report writer
func NewReportWriter() *ReportWriter {
	return &ReportWriter{}
}

// Export writes one row per report under a header row and saves the
// workbook to path.
func (w *ReportWriter) Export(ctx context.Context, path string, reports []experiment.ComparisonReport) error {
	if len(reports) == 0 {
		return errors.ExportError("no reports to export")
	}

	f := excelize.NewFile()
	defer f.Close()

	idx, err := f.NewSheet(reportSheet)
	if err != nil {
		return errors.Wrap(err, "failed to create report sheet")
	}
	f.SetActiveSheet(idx)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return errors.Wrap(err, "failed to drop default sheet")
	}

	for i, h := range reportHeaders {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(reportSheet, cell, h); err != nil {
			return errors.Wrap(err, "failed to write header row")
		}
	}

	for r, report := range reports {
		if err := ctx.Err(); err != nil {
			return err
		}
		// Lift is written as its display string so unbounded lifts stay
		// readable instead of overflowing a numeric cell.
		values := []interface{}{
			report.Metric.String(),
			report.Control.Sample.Successes, report.Control.Sample.Total, report.ControlRate,
			report.Test.Sample.Successes, report.Test.Sample.Total, report.TestRate,
			report.ControlCI.Lower, report.ControlCI.Upper,
			report.TestCI.Lower, report.TestCI.Upper,
			report.Significance.ChiSquare, report.Significance.PValue,
			report.Lift.String(), string(report.Verdict), report.Interpretation,
		}
		for c, v := range values {
			cell, _ := excelize.CoordinatesToCellName(c+1, r+2)
			if err := f.SetCellValue(reportSheet, cell, v); err != nil {
				return errors.Wrapf(err, "failed to write report row %d", r+1)
			}
		}
	}

	if err := f.SaveAs(path); err != nil {
		return errors.Wrapf(err, "failed to save workbook to %s", path)
	}
	return nil
}
