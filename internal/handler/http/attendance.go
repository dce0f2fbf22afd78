package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/ptcportal/personnel-backend-go/internal/domain/attendance"
	"github.com/ptcportal/personnel-backend-go/internal/handler/http/response"
)

type AttendanceHandler interface {
	SubmitAbsence(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type AttendanceHandlerImpl struct {
	attendanceService attendance.AttendanceService
}

func NewAttendanceHandler(attendanceService attendance.AttendanceService) AttendanceHandler {
	return &AttendanceHandlerImpl{attendanceService: attendanceService}
}

func queryDate(r *http.Request, key string) *time.Time {
	v := r.URL.Query().Get(key)
	if v == "" {
		return nil
	}
	d, err := time.Parse("2006-01-02", v)
	if err != nil {
		return nil
	}
	return &d
}

// SubmitAbsence implements AttendanceHandler.
func (h *AttendanceHandlerImpl) SubmitAbsence(w http.ResponseWriter, r *http.Request) {
	t, err := personTypeFromURL(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var req attendance.SubmitAbsenceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Submit absence decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.attendanceService.SubmitAbsence(r.Context(), t, req)
	if err != nil {
		slog.Error("Failed to submit absence", "person_id", req.PersonID, "error", err)
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Attendance entry recorded", result)
}

// List implements AttendanceHandler.
func (h *AttendanceHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	t, err := personTypeFromURL(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	filter := attendance.RecordFilter{
		PersonID: queryString(r, "person_id"),
		Status:   queryString(r, "status"),
		Approval: queryString(r, "approval"),
		From:     queryDate(r, "from"),
		To:       queryDate(r, "to"),
		Page:     queryInt(r, "page"),
		Limit:    queryInt(r, "limit"),
	}

	result, err := h.attendanceService.List(r.Context(), t, filter)
	if err != nil {
		slog.Error("Failed to list attendance", "person_type", t, "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMeta(w, result.Records, &response.Meta{
		Page:       result.Page,
		Limit:      result.Limit,
		TotalItems: result.TotalCount,
		TotalPages: totalPages(result.TotalCount, result.Limit),
	})
}

// Get implements AttendanceHandler.
func (h *AttendanceHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	t, err := personTypeFromURL(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.attendanceService.Get(r.Context(), t, chi.URLParam(r, "recordID"))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}

// Update implements AttendanceHandler.
func (h *AttendanceHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	t, err := personTypeFromURL(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var req attendance.UpdateRecordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Update attendance decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = chi.URLParam(r, "recordID")

	if err := h.attendanceService.Update(r.Context(), t, req); err != nil {
		slog.Error("Failed to update attendance", "record_id", req.ID, "error", err)
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Attendance entry updated", nil)
}

// Delete implements AttendanceHandler.
func (h *AttendanceHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	t, err := personTypeFromURL(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	id := chi.URLParam(r, "recordID")
	if err := h.attendanceService.Delete(r.Context(), t, id); err != nil {
		slog.Error("Failed to delete attendance", "record_id", id, "error", err)
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Attendance entry deleted", nil)
}
