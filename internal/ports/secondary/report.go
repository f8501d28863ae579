package secondary

import "context"

// ReportSender defines the secondary port for report dispatch.
// Transport, credentials, and template format belong to the adapter.
type ReportSender interface {
	// Send dispatches one shift report. rows holds one entry per
	// touched location, in catalog order. A non-nil error means the
	// report was not delivered.
	Send(ctx context.Context, shift string, rows []ReportRow) error
}

// ReportRow is one finalized line of a shift report.
// Start/End are HHmm strings, "" = unset.
type ReportRow struct {
	Location string
	Start    string
	End      string
}
