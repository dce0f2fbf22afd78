package person

import (
	"time"

	"github.com/ptcportal/personnel-backend-go/internal/pkg/validator"
)

type CreatePersonRequest struct {
	PNO          string `json:"pno"`
	Name         string `json:"name"`
	FatherName   string `json:"father_name"`
	Rank         string `json:"rank"`
	District     string `json:"district"`
	BloodGroup   string `json:"blood_group"`
	MobileNumber string `json:"mobile_number"`

	DateOfBirth   string `json:"date_of_birth"`
	DateOfJoining string `json:"date_of_joining"`

	ArrivalDate   *string `json:"arrival_date,omitempty"`
	DepartureDate *string `json:"departure_date,omitempty"`

	HomeAddress string  `json:"home_address"`
	Nominee     string  `json:"nominee"`
	PhotoURL    *string `json:"photo_url,omitempty"`
}

func (r *CreatePersonRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}
	if validator.IsEmpty(r.PNO) {
		errs = append(errs, validator.ValidationError{
			Field:   "pno",
			Message: "pno is required",
		})
	} else if !validator.IsValidPNO(r.PNO) {
		errs = append(errs, validator.ValidationError{
			Field:   "pno",
			Message: "pno must be 4-12 uppercase letters or digits",
		})
	}
	if validator.IsEmpty(r.Rank) {
		errs = append(errs, validator.ValidationError{
			Field:   "rank",
			Message: "rank is required",
		})
	}
	if validator.IsEmpty(r.District) {
		errs = append(errs, validator.ValidationError{
			Field:   "district",
			Message: "district is required",
		})
	}
	if validator.IsEmpty(r.MobileNumber) {
		errs = append(errs, validator.ValidationError{
			Field:   "mobile_number",
			Message: "mobile_number is required",
		})
	} else if !validator.IsValidMobileNumber(r.MobileNumber) {
		errs = append(errs, validator.ValidationError{
			Field:   "mobile_number",
			Message: "mobile_number must be a valid 10-digit mobile number",
		})
	}
	if !validator.IsValidBloodGroup(r.BloodGroup) {
		errs = append(errs, validator.ValidationError{
			Field:   "blood_group",
			Message: "blood_group must be one of A+, A-, B+, B-, AB+, AB-, O+, O-",
		})
	}
	if _, ok := validator.IsValidDate(r.DateOfBirth); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "date_of_birth",
			Message: "date_of_birth must be in YYYY-MM-DD format",
		})
	}
	if _, ok := validator.IsValidDate(r.DateOfJoining); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "date_of_joining",
			Message: "date_of_joining must be in YYYY-MM-DD format",
		})
	}
	if r.ArrivalDate != nil {
		if _, ok := validator.IsValidDate(*r.ArrivalDate); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "arrival_date",
				Message: "arrival_date must be in YYYY-MM-DD format",
			})
		}
	}
	if r.DepartureDate != nil {
		if _, ok := validator.IsValidDate(*r.DepartureDate); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "departure_date",
				Message: "departure_date must be in YYYY-MM-DD format",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdatePersonRequest struct {
	ID           string  `json:"-"`
	PNO          *string `json:"pno,omitempty"`
	Name         *string `json:"name,omitempty"`
	FatherName   *string `json:"father_name,omitempty"`
	Rank         *string `json:"rank,omitempty"`
	District     *string `json:"district,omitempty"`
	BloodGroup   *string `json:"blood_group,omitempty"`
	MobileNumber *string `json:"mobile_number,omitempty"`

	DateOfBirth   *string `json:"date_of_birth,omitempty"`
	DateOfJoining *string `json:"date_of_joining,omitempty"`
	ArrivalDate   *string `json:"arrival_date,omitempty"`
	DepartureDate *string `json:"departure_date,omitempty"`

	HomeAddress *string `json:"home_address,omitempty"`
	Nominee     *string `json:"nominee,omitempty"`
	PhotoURL    *string `json:"photo_url,omitempty"`
}

func (r *UpdatePersonRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "id is required",
		})
	}
	if r.PNO != nil && !validator.IsValidPNO(*r.PNO) {
		errs = append(errs, validator.ValidationError{
			Field:   "pno",
			Message: "pno must be 4-12 uppercase letters or digits",
		})
	}
	if r.Name != nil && validator.IsEmpty(*r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name must not be empty",
		})
	}
	if r.MobileNumber != nil && !validator.IsValidMobileNumber(*r.MobileNumber) {
		errs = append(errs, validator.ValidationError{
			Field:   "mobile_number",
			Message: "mobile_number must be a valid 10-digit mobile number",
		})
	}
	if r.BloodGroup != nil && !validator.IsValidBloodGroup(*r.BloodGroup) {
		errs = append(errs, validator.ValidationError{
			Field:   "blood_group",
			Message: "blood_group must be one of A+, A-, B+, B-, AB+, AB-, O+, O-",
		})
	}
	for field, value := range map[string]*string{
		"date_of_birth":   r.DateOfBirth,
		"date_of_joining": r.DateOfJoining,
		"arrival_date":    r.ArrivalDate,
		"departure_date":  r.DepartureDate,
	} {
		if value == nil {
			continue
		}
		if _, ok := validator.IsValidDate(*value); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   field,
				Message: field + " must be in YYYY-MM-DD format",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// PersonFilter drives the list endpoint: search matches name or PNO.
type PersonFilter struct {
	Search    *string
	Rank      *string
	District  *string
	SortBy    string
	SortOrder string
	Page      int
	Limit     int
}

func (f *PersonFilter) Validate() error {
	var errs validator.ValidationErrors

	if f.SortBy != "" && !validator.IsInSlice(f.SortBy, []string{"name", "pno", "rank", "date_of_joining"}) {
		errs = append(errs, validator.ValidationError{
			Field:   "sort_by",
			Message: "sort_by must be one of name, pno, rank, date_of_joining",
		})
	}
	if f.SortOrder != "" && !validator.IsInSlice(f.SortOrder, []string{"asc", "desc"}) {
		errs = append(errs, validator.ValidationError{
			Field:   "sort_order",
			Message: "sort_order must be asc or desc",
		})
	}
	if f.Page < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "page",
			Message: "page must not be negative",
		})
	}
	if f.Limit < 0 || f.Limit > 200 {
		errs = append(errs, validator.ValidationError{
			Field:   "limit",
			Message: "limit must be between 0 and 200",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type PersonResponse struct {
	ID           string `json:"id"`
	Type         string `json:"type"`
	PNO          string `json:"pno"`
	Name         string `json:"name"`
	FatherName   string `json:"father_name"`
	Rank         string `json:"rank"`
	District     string `json:"district"`
	BloodGroup   string `json:"blood_group"`
	MobileNumber string `json:"mobile_number"`

	DateOfBirth   string  `json:"date_of_birth"`
	DateOfJoining string  `json:"date_of_joining"`
	ArrivalDate   *string `json:"arrival_date,omitempty"`
	DepartureDate *string `json:"departure_date,omitempty"`

	HomeAddress string    `json:"home_address"`
	Nominee     string    `json:"nominee"`
	PhotoURL    *string   `json:"photo_url,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type ListPersonsResponse struct {
	TotalCount int64            `json:"total_count"`
	Page       int              `json:"page"`
	Limit      int              `json:"limit"`
	Persons    []PersonResponse `json:"persons"`
}

// ToResponse maps the entity to its API shape, formatting dates.
func ToResponse(p Person) PersonResponse {
	resp := PersonResponse{
		ID:            p.ID,
		Type:          string(p.Type),
		PNO:           p.PNO,
		Name:          p.Name,
		FatherName:    p.FatherName,
		Rank:          p.Rank,
		District:      p.District,
		BloodGroup:    p.BloodGroup,
		MobileNumber:  p.MobileNumber,
		DateOfBirth:   p.DateOfBirth.Format("2006-01-02"),
		DateOfJoining: p.DateOfJoining.Format("2006-01-02"),
		HomeAddress:   p.HomeAddress,
		Nominee:       p.Nominee,
		PhotoURL:      p.PhotoURL,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
	if p.ArrivalDate != nil {
		formatted := p.ArrivalDate.Format("2006-01-02")
		resp.ArrivalDate = &formatted
	}
	if p.DepartureDate != nil {
		formatted := p.DepartureDate.Format("2006-01-02")
		resp.DepartureDate = &formatted
	}
	return resp
}
