package attendance

import (
	"time"

	"github.com/ptcportal/personnel-backend-go/internal/pkg/validator"
)

type SubmitAbsenceRequest struct {
	PersonID string `json:"person_id"`
	Date     string `json:"date"`
	Status   string `json:"status"`
	Reason   string `json:"reason"`
}

func (r *SubmitAbsenceRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.PersonID) {
		errs = append(errs, validator.ValidationError{
			Field:   "person_id",
			Message: "person_id is required",
		})
	}
	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be in YYYY-MM-DD format",
		})
	}
	if _, err := ParseStatus(r.Status); err != nil {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be one of absent, on_leave, suspension, resignation, termination",
		})
	}
	if validator.IsEmpty(r.Reason) {
		errs = append(errs, validator.ValidationError{
			Field:   "reason",
			Message: "reason is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateRecordRequest struct {
	ID     string  `json:"-"`
	Date   *string `json:"date,omitempty"`
	Status *string `json:"status,omitempty"`
	Reason *string `json:"reason,omitempty"`
}

func (r *UpdateRecordRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "id is required",
		})
	}
	if r.Date != nil {
		if _, ok := validator.IsValidDate(*r.Date); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "date",
				Message: "date must be in YYYY-MM-DD format",
			})
		}
	}
	if r.Status != nil {
		if _, err := ParseStatus(*r.Status); err != nil {
			errs = append(errs, validator.ValidationError{
				Field:   "status",
				Message: "status must be one of absent, on_leave, suspension, resignation, termination",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// RecordFilter drives attendance list views and export date ranges.
type RecordFilter struct {
	PersonID *string
	Status   *string
	Approval *string
	From     *time.Time
	To       *time.Time
	Page     int
	Limit    int
}

type RecordResponse struct {
	ID         string  `json:"id"`
	PersonID   string  `json:"person_id"`
	PersonName *string `json:"person_name,omitempty"`
	PersonPNO  *string `json:"person_pno,omitempty"`
	Date       string  `json:"date"`
	Status     string  `json:"status"`
	Reason     string  `json:"reason"`

	Approval  string     `json:"approval_state"`
	DecidedBy *string    `json:"decided_by,omitempty"`
	DecidedAt *time.Time `json:"decided_at,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type ListRecordsResponse struct {
	TotalCount int64            `json:"total_count"`
	Page       int              `json:"page"`
	Limit      int              `json:"limit"`
	Records    []RecordResponse `json:"records"`
}

func ToResponse(rec Record) RecordResponse {
	return RecordResponse{
		ID:         rec.ID,
		PersonID:   rec.PersonID,
		PersonName: rec.PersonName,
		PersonPNO:  rec.PersonPNO,
		Date:       rec.Date.Format("2006-01-02"),
		Status:     string(rec.Status),
		Reason:     rec.Reason,
		Approval:   string(rec.Approval),
		DecidedBy:  rec.DecidedBy,
		DecidedAt:  rec.DecidedAt,
		CreatedAt:  rec.CreatedAt,
		UpdatedAt:  rec.UpdatedAt,
	}
}
