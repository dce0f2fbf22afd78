package export

import (
	"bytes"
	"context"
)

// ExportService renders person directories and attendance/leave history
// into downloadable files. Buffers are returned together with a suggested
// filename ({entity}_{scope}_{YYYY-MM-DD}.{ext}); handlers set the HTTP
// headers.
type ExportService interface {
	ExportPersons(ctx context.Context, req PersonsExportRequest) (*bytes.Buffer, string, error)
	ExportAttendance(ctx context.Context, req AttendanceExportRequest) (*bytes.Buffer, string, error)

	// PrintableRecord renders a self-contained bilingual HTML document with
	// the person's bio block and attendance/leave history, ready for the
	// browser print dialog.
	PrintableRecord(ctx context.Context, req PrintRequest) (string, error)
}
