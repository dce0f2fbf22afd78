package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/ptcportal/personnel-backend-go/internal/domain/approval"
	"github.com/ptcportal/personnel-backend-go/internal/handler/http/response"
	"github.com/ptcportal/personnel-backend-go/internal/pkg/jwt"
)

type ApprovalHandler interface {
	Decide(w http.ResponseWriter, r *http.Request)
}

type ApprovalHandlerImpl struct {
	jwtService      jwt.Service
	approvalService approval.ApprovalService
}

func NewApprovalHandler(jwtService jwt.Service, approvalService approval.ApprovalService) ApprovalHandler {
	return &ApprovalHandlerImpl{
		jwtService:      jwtService,
		approvalService: approvalService,
	}
}

// Decide implements ApprovalHandler.
func (h *ApprovalHandlerImpl) Decide(w http.ResponseWriter, r *http.Request) {
	var req approval.DecideRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Decide approval decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	actor, err := h.jwtService.ActorFromContext(r.Context())
	if err != nil {
		response.Unauthorized(w, err.Error())
		return
	}

	result, err := h.approvalService.Decide(r.Context(), req, actor.UserID)
	if err != nil {
		slog.Error("Failed to decide approval",
			"record_id", req.RecordID, "record_type", req.RecordType, "error", err)
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Decision recorded", result)
}
