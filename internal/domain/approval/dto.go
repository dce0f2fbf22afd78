package approval

import (
	"github.com/ptcportal/personnel-backend-go/internal/pkg/validator"
)

type DecideRequest struct {
	RecordID   string `json:"record_id"`
	RecordType string `json:"record_type"`
	PersonType string `json:"person_type"`
	NewState   string `json:"new_state"`
}

func (r *DecideRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.RecordID) {
		errs = append(errs, validator.ValidationError{
			Field:   "record_id",
			Message: "record_id is required",
		})
	}
	if _, err := ParseRecordType(r.RecordType); err != nil {
		errs = append(errs, validator.ValidationError{
			Field:   "record_type",
			Message: "record_type must be absence or leave",
		})
	}
	if !validator.IsInSlice(r.PersonType, []string{"staff", "trainee"}) {
		errs = append(errs, validator.ValidationError{
			Field:   "person_type",
			Message: "person_type must be staff or trainee",
		})
	}
	if !validator.IsInSlice(r.NewState, []string{string(StateApproved), string(StateRejected)}) {
		errs = append(errs, validator.ValidationError{
			Field:   "new_state",
			Message: "new_state must be approved or rejected",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type DecideResponse struct {
	RecordID         string `json:"record_id"`
	RecordType       string `json:"record_type"`
	NewState         string `json:"new_state"`
	MaterializedDays int    `json:"materialized_days"`
}
