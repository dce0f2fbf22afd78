package person

import (
	"time"
)

// Type selects which personnel directory a record belongs to. Physical
// table names are resolved from it at the persistence boundary only.
type Type string

const (
	TypeStaff   Type = "staff"
	TypeTrainee Type = "trainee"
)

func ParseType(s string) (Type, error) {
	switch Type(s) {
	case TypeStaff, TypeTrainee:
		return Type(s), nil
	}
	return "", ErrInvalidPersonType
}

type Person struct {
	ID           string
	Type         Type
	PNO          string
	Name         string
	FatherName   string
	Rank         string
	District     string
	BloodGroup   string
	MobileNumber string

	DateOfBirth   time.Time
	DateOfJoining time.Time

	// Trainee batches only
	ArrivalDate   *time.Time
	DepartureDate *time.Time

	HomeAddress string
	Nominee     string
	PhotoURL    *string

	CreatedAt time.Time
	UpdatedAt time.Time
}
