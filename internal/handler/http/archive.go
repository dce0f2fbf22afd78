package http

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ptcportal/personnel-backend-go/internal/domain/archive"
	"github.com/ptcportal/personnel-backend-go/internal/domain/person"
	"github.com/ptcportal/personnel-backend-go/internal/handler/http/response"
	"github.com/ptcportal/personnel-backend-go/internal/pkg/jwt"
)

type ArchiveHandler interface {
	CreateFolder(w http.ResponseWriter, r *http.Request)
	ListFolders(w http.ResponseWriter, r *http.Request)
	DeleteFolder(w http.ResponseWriter, r *http.Request)
	ListFolderContents(w http.ResponseWriter, r *http.Request)
	ArchivePerson(w http.ResponseWriter, r *http.Request)
	UnarchivePerson(w http.ResponseWriter, r *http.Request)
}

type ArchiveHandlerImpl struct {
	jwtService     jwt.Service
	archiveService archive.ArchiveService
}

func NewArchiveHandler(jwtService jwt.Service, archiveService archive.ArchiveService) ArchiveHandler {
	return &ArchiveHandlerImpl{
		jwtService:     jwtService,
		archiveService: archiveService,
	}
}

// CreateFolder implements ArchiveHandler.
func (h *ArchiveHandlerImpl) CreateFolder(w http.ResponseWriter, r *http.Request) {
	var req archive.CreateFolderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Create folder decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.archiveService.CreateFolder(r.Context(), req)
	if err != nil {
		slog.Error("Failed to create archive folder", "folder_name", req.Name, "error", err)
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Archive folder created", result)
}

// ListFolders implements ArchiveHandler.
func (h *ArchiveHandlerImpl) ListFolders(w http.ResponseWriter, r *http.Request) {
	var t *person.Type
	if v := r.URL.Query().Get("record_type"); v != "" {
		parsed, err := person.ParseType(v)
		if err != nil {
			response.HandleError(w, err)
			return
		}
		t = &parsed
	}

	result, err := h.archiveService.ListFolders(r.Context(), t)
	if err != nil {
		slog.Error("Failed to list archive folders", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}

// DeleteFolder implements ArchiveHandler. A non-empty folder needs a
// target_folder_id in the body; its records move there before the delete.
func (h *ArchiveHandlerImpl) DeleteFolder(w http.ResponseWriter, r *http.Request) {
	var req archive.DeleteFolderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		slog.Error("Delete folder decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.FolderID = chi.URLParam(r, "folderID")

	if err := h.archiveService.DeleteFolder(r.Context(), req); err != nil {
		slog.Error("Failed to delete archive folder", "folder_id", req.FolderID, "error", err)
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Archive folder deleted", nil)
}

// ListFolderContents implements ArchiveHandler.
func (h *ArchiveHandlerImpl) ListFolderContents(w http.ResponseWriter, r *http.Request) {
	t, err := person.ParseType(r.URL.Query().Get("record_type"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	folderID := chi.URLParam(r, "folderID")
	result, err := h.archiveService.ListFolderContents(r.Context(), t, folderID)
	if err != nil {
		slog.Error("Failed to list folder contents", "folder_id", folderID, "error", err)
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}

// ArchivePerson implements ArchiveHandler.
func (h *ArchiveHandlerImpl) ArchivePerson(w http.ResponseWriter, r *http.Request) {
	t, err := personTypeFromURL(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var req archive.ArchivePersonRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Archive person decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	actor, err := h.jwtService.ActorFromContext(r.Context())
	if err != nil {
		response.Unauthorized(w, err.Error())
		return
	}

	result, err := h.archiveService.ArchivePerson(r.Context(), t, req, actor.UserID)
	if err != nil {
		slog.Error("Failed to archive person", "person_id", req.PersonID, "error", err)
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Record moved to archive", result)
}

// UnarchivePerson implements ArchiveHandler.
func (h *ArchiveHandlerImpl) UnarchivePerson(w http.ResponseWriter, r *http.Request) {
	t, err := personTypeFromURL(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	archivedID := chi.URLParam(r, "archivedID")
	result, err := h.archiveService.UnarchivePerson(r.Context(), t, archivedID)
	if err != nil {
		slog.Error("Failed to restore archived person", "archived_id", archivedID, "error", err)
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Record restored from archive", result)
}
