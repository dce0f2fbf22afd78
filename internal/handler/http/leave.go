package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ptcportal/personnel-backend-go/internal/domain/leave"
	"github.com/ptcportal/personnel-backend-go/internal/handler/http/response"
)

type LeaveHandler interface {
	Submit(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type LeaveHandlerImpl struct {
	leaveService leave.LeaveService
}

func NewLeaveHandler(leaveService leave.LeaveService) LeaveHandler {
	return &LeaveHandlerImpl{leaveService: leaveService}
}

// Submit implements LeaveHandler.
func (h *LeaveHandlerImpl) Submit(w http.ResponseWriter, r *http.Request) {
	t, err := personTypeFromURL(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var req leave.SubmitLeaveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Submit leave decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.leaveService.Submit(r.Context(), t, req)
	if err != nil {
		slog.Error("Failed to submit leave", "person_id", req.PersonID, "error", err)
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Leave request submitted for approval", result)
}

// List implements LeaveHandler.
func (h *LeaveHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	t, err := personTypeFromURL(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	filter := leave.RecordFilter{
		PersonID:  queryString(r, "person_id"),
		Approval:  queryString(r, "approval"),
		LeaveType: queryString(r, "leave_type"),
		From:      queryDate(r, "from"),
		To:        queryDate(r, "to"),
		Page:      queryInt(r, "page"),
		Limit:     queryInt(r, "limit"),
	}

	result, err := h.leaveService.List(r.Context(), t, filter)
	if err != nil {
		slog.Error("Failed to list leaves", "person_type", t, "error", err)
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

// Get implements LeaveHandler.
func (h *LeaveHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	t, err := personTypeFromURL(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.leaveService.Get(r.Context(), t, chi.URLParam(r, "recordID"))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}

// Update implements LeaveHandler.
func (h *LeaveHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	t, err := personTypeFromURL(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var req leave.UpdateLeaveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Update leave decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = chi.URLParam(r, "recordID")

	if err := h.leaveService.Update(r.Context(), t, req); err != nil {
		slog.Error("Failed to update leave", "record_id", req.ID, "error", err)
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Leave request updated and reset to pending", nil)
}

// Delete implements LeaveHandler.
func (h *LeaveHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	t, err := personTypeFromURL(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	id := chi.URLParam(r, "recordID")
	if err := h.leaveService.Delete(r.Context(), t, id); err != nil {
		slog.Error("Failed to delete leave", "record_id", id, "error", err)
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Leave request deleted", nil)
}
