package archive

import (
	"time"

	"github.com/ptcportal/personnel-backend-go/internal/domain/person"
	"github.com/ptcportal/personnel-backend-go/internal/pkg/validator"
)

type CreateFolderRequest struct {
	Name        string `json:"folder_name"`
	Description string `json:"description"`
	RecordType  string `json:"record_type"`
}

func (r *CreateFolderRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "folder_name",
			Message: "folder_name is required",
		})
	}
	if len(r.Name) > 255 {
		errs = append(errs, validator.ValidationError{
			Field:   "folder_name",
			Message: "folder_name must not exceed 255 characters",
		})
	}
	if !validator.IsInSlice(r.RecordType, []string{"staff", "trainee"}) {
		errs = append(errs, validator.ValidationError{
			Field:   "record_type",
			Message: "record_type must be staff or trainee",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ArchivePersonRequest struct {
	PersonID string `json:"person_id"`
	FolderID string `json:"folder_id"`
}

func (r *ArchivePersonRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.PersonID) {
		errs = append(errs, validator.ValidationError{
			Field:   "person_id",
			Message: "person_id is required",
		})
	}
	if validator.IsEmpty(r.FolderID) {
		errs = append(errs, validator.ValidationError{
			Field:   "folder_id",
			Message: "folder_id is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type DeleteFolderRequest struct {
	FolderID       string  `json:"folder_id"`
	TargetFolderID *string `json:"target_folder_id,omitempty"`
}

func (r *DeleteFolderRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.FolderID) {
		errs = append(errs, validator.ValidationError{
			Field:   "folder_id",
			Message: "folder_id is required",
		})
	}
	if r.TargetFolderID != nil && *r.TargetFolderID == r.FolderID {
		errs = append(errs, validator.ValidationError{
			Field:   "target_folder_id",
			Message: "target_folder_id must differ from folder_id",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type FolderResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"folder_name"`
	Description string    `json:"description"`
	RecordType  string    `json:"record_type"`
	ItemCount   int       `json:"item_count"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type ArchivedPersonResponse struct {
	person.PersonResponse

	FolderID   string    `json:"folder_id"`
	ArchivedAt time.Time `json:"archived_at"`
	ArchivedBy string    `json:"archived_by"`
}

func ToFolderResponse(f Folder) FolderResponse {
	return FolderResponse{
		ID:          f.ID,
		Name:        f.Name,
		Description: f.Description,
		RecordType:  string(f.RecordType),
		ItemCount:   f.ItemCount,
		CreatedAt:   f.CreatedAt,
		UpdatedAt:   f.UpdatedAt,
	}
}

func ToArchivedPersonResponse(p ArchivedPerson) ArchivedPersonResponse {
	return ArchivedPersonResponse{
		PersonResponse: person.ToResponse(p.Person),
		FolderID:       p.FolderID,
		ArchivedAt:     p.ArchivedAt,
		ArchivedBy:     p.ArchivedBy,
	}
}
