package http

import (
	"log/slog"
	"net/http"

	"github.com/ptcportal/personnel-backend-go/internal/domain/export"
	"github.com/ptcportal/personnel-backend-go/internal/handler/http/response"
)

const (
	contentTypeCSV  = "text/csv; charset=utf-8"
	contentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

type ExportHandler interface {
	ExportPersons(w http.ResponseWriter, r *http.Request)
	ExportAttendance(w http.ResponseWriter, r *http.Request)
	PrintRecord(w http.ResponseWriter, r *http.Request)
}

type ExportHandlerImpl struct {
	exportService export.ExportService
}

func NewExportHandler(exportService export.ExportService) ExportHandler {
	return &ExportHandlerImpl{exportService: exportService}
}

func exportContentType(format string) string {
	if format == string(export.FormatXLSX) {
		return contentTypeXLSX
	}
	return contentTypeCSV
}

// ExportPersons implements ExportHandler.
func (h *ExportHandlerImpl) ExportPersons(w http.ResponseWriter, r *http.Request) {
	req := export.PersonsExportRequest{
		PersonType: r.URL.Query().Get("person_type"),
		Format:     r.URL.Query().Get("format"),
	}

	buf, filename, err := h.exportService.ExportPersons(r.Context(), req)
	if err != nil {
		slog.Error("Failed to export persons", "person_type", req.PersonType, "error", err)
		response.HandleError(w, err)
		return
	}
	response.File(w, buf, filename, exportContentType(req.Format))
}

// ExportAttendance implements ExportHandler.
func (h *ExportHandlerImpl) ExportAttendance(w http.ResponseWriter, r *http.Request) {
	req := export.AttendanceExportRequest{
		PersonType: r.URL.Query().Get("person_type"),
		PersonID:   r.URL.Query().Get("person_id"),
		From:       r.URL.Query().Get("from"),
		To:         r.URL.Query().Get("to"),
		Format:     r.URL.Query().Get("format"),
	}

	buf, filename, err := h.exportService.ExportAttendance(r.Context(), req)
	if err != nil {
		slog.Error("Failed to export attendance", "person_id", req.PersonID, "error", err)
		response.HandleError(w, err)
		return
	}
	response.File(w, buf, filename, exportContentType(req.Format))
}

// PrintRecord implements ExportHandler.
func (h *ExportHandlerImpl) PrintRecord(w http.ResponseWriter, r *http.Request) {
	req := export.PrintRequest{
		PersonType: r.URL.Query().Get("person_type"),
		PersonID:   r.URL.Query().Get("person_id"),
		From:       r.URL.Query().Get("from"),
		To:         r.URL.Query().Get("to"),
	}

	page, err := h.exportService.PrintableRecord(r.Context(), req)
	if err != nil {
		slog.Error("Failed to render printable record", "person_id", req.PersonID, "error", err)
		response.HandleError(w, err)
		return
	}
	response.HTML(w, page)
}
