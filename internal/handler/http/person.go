package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/ptcportal/personnel-backend-go/internal/domain/person"
	"github.com/ptcportal/personnel-backend-go/internal/handler/http/response"
)

type PersonHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	GetByPNO(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type PersonHandlerImpl struct {
	personService person.PersonService
}

func NewPersonHandler(personService person.PersonService) PersonHandler {
	return &PersonHandlerImpl{personService: personService}
}

// personTypeFromURL resolves the {personType} route segment.
func personTypeFromURL(r *http.Request) (person.Type, error) {
	return person.ParseType(chi.URLParam(r, "personType"))
}

func queryInt(r *http.Request, key string) int {
	v, _ := strconv.Atoi(r.URL.Query().Get(key))
	return v
}

func queryString(r *http.Request, key string) *string {
	v := r.URL.Query().Get(key)
	if v == "" {
		return nil
	}
	return &v
}

// List implements PersonHandler.
func (h *PersonHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	t, err := personTypeFromURL(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	filter := person.PersonFilter{
		Search:    queryString(r, "search"),
		Rank:      queryString(r, "rank"),
		District:  queryString(r, "district"),
		SortBy:    r.URL.Query().Get("sort_by"),
		SortOrder: r.URL.Query().Get("sort_order"),
		Page:      queryInt(r, "page"),
		Limit:     queryInt(r, "limit"),
	}

	result, err := h.personService.List(r.Context(), t, filter)
	if err != nil {
		slog.Error("Failed to list persons", "person_type", t, "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMeta(w, result.Persons, &response.Meta{
		Page:       result.Page,
		Limit:      result.Limit,
		TotalItems: result.TotalCount,
		TotalPages: totalPages(result.TotalCount, result.Limit),
	})
}

// Get implements PersonHandler.
func (h *PersonHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	t, err := personTypeFromURL(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.personService.Get(r.Context(), t, chi.URLParam(r, "personID"))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}

// GetByPNO implements PersonHandler.
func (h *PersonHandlerImpl) GetByPNO(w http.ResponseWriter, r *http.Request) {
	t, err := personTypeFromURL(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.personService.GetByPNO(r.Context(), t, chi.URLParam(r, "pno"))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}

// Create implements PersonHandler.
func (h *PersonHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	t, err := personTypeFromURL(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var req person.CreatePersonRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Create person decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.personService.Create(r.Context(), t, req)
	if err != nil {
		slog.Error("Failed to create person", "person_type", t, "error", err)
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Person registered successfully", result)
}

// Update implements PersonHandler.
func (h *PersonHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	t, err := personTypeFromURL(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var req person.UpdatePersonRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Update person decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = chi.URLParam(r, "personID")

	if err := h.personService.Update(r.Context(), t, req); err != nil {
		slog.Error("Failed to update person", "person_id", req.ID, "error", err)
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Person updated successfully", nil)
}

// Delete implements PersonHandler.
func (h *PersonHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	t, err := personTypeFromURL(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	id := chi.URLParam(r, "personID")
	if err := h.personService.Delete(r.Context(), t, id); err != nil {
		slog.Error("Failed to delete person", "person_id", id, "error", err)
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Person and dependent records deleted", nil)
}

func totalPages(total int64, limit int) int {
	if limit <= 0 {
		return 0
	}
	pages := int(total) / limit
	if int(total)%limit != 0 {
		pages++
	}
	return pages
}
