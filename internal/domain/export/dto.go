package export

import (
	"github.com/ptcportal/personnel-backend-go/internal/pkg/validator"
)

type Format string

const (
	FormatCSV  Format = "csv"
	FormatXLSX Format = "xlsx"
)

func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case FormatCSV, FormatXLSX:
		return Format(s), nil
	}
	return "", ErrInvalidFormat
}

type PersonsExportRequest struct {
	PersonType string `json:"person_type"`
	Format     string `json:"format"`
}

func (r *PersonsExportRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsInSlice(r.PersonType, []string{"staff", "trainee"}) {
		errs = append(errs, validator.ValidationError{
			Field:   "person_type",
			Message: "person_type must be staff or trainee",
		})
	}
	if _, err := ParseFormat(r.Format); err != nil {
		errs = append(errs, validator.ValidationError{
			Field:   "format",
			Message: "format must be csv or xlsx",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type AttendanceExportRequest struct {
	PersonType string `json:"person_type"`
	PersonID   string `json:"person_id"`
	From       string `json:"from"`
	To         string `json:"to"`
	Format     string `json:"format"`
}

func (r *AttendanceExportRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsInSlice(r.PersonType, []string{"staff", "trainee"}) {
		errs = append(errs, validator.ValidationError{
			Field:   "person_type",
			Message: "person_type must be staff or trainee",
		})
	}
	if validator.IsEmpty(r.PersonID) {
		errs = append(errs, validator.ValidationError{
			Field:   "person_id",
			Message: "person_id is required",
		})
	}
	if r.From != "" {
		if _, ok := validator.IsValidDate(r.From); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "from",
				Message: "from must be in YYYY-MM-DD format",
			})
		}
	}
	if r.To != "" {
		if _, ok := validator.IsValidDate(r.To); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "to",
				Message: "to must be in YYYY-MM-DD format",
			})
		}
	}
	if _, err := ParseFormat(r.Format); err != nil {
		errs = append(errs, validator.ValidationError{
			Field:   "format",
			Message: "format must be csv or xlsx",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type PrintRequest struct {
	PersonType string `json:"person_type"`
	PersonID   string `json:"person_id"`
	From       string `json:"from"`
	To         string `json:"to"`
}

func (r *PrintRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsInSlice(r.PersonType, []string{"staff", "trainee"}) {
		errs = append(errs, validator.ValidationError{
			Field:   "person_type",
			Message: "person_type must be staff or trainee",
		})
	}
	if validator.IsEmpty(r.PersonID) {
		errs = append(errs, validator.ValidationError{
			Field:   "person_id",
			Message: "person_id is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}
