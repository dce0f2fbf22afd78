package leave

import (
	"time"

	"github.com/ptcportal/personnel-backend-go/internal/domain/approval"
)

type LeaveType string

const (
	TypeCasual    LeaveType = "CL"
	TypeEarned    LeaveType = "EL"
	TypeMedical   LeaveType = "ML"
	TypeMaternity LeaveType = "Maternity"
	TypeSpecial   LeaveType = "Special"
)

func ParseLeaveType(s string) (LeaveType, error) {
	switch LeaveType(s) {
	case TypeCasual, TypeEarned, TypeMedical, TypeMaternity, TypeSpecial:
		return LeaveType(s), nil
	}
	return "", ErrInvalidLeaveType
}

// Record is one leave request spanning StartDate..EndDate inclusive.
type Record struct {
	ID        string
	PersonID  string
	StartDate time.Time
	EndDate   time.Time
	LeaveType LeaveType
	Reason    string

	Approval  approval.State
	DecidedBy *string
	DecidedAt *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time

	// Joined for responses
	PersonName *string
	PersonPNO  *string
}

// Days returns the number of calendar days the leave covers, both
// endpoints inclusive.
func (r Record) Days() int {
	return DaysInRange(r.StartDate, r.EndDate)
}

// Dates enumerates every calendar day of the leave range.
func (r Record) Dates() []time.Time {
	return DatesInRange(r.StartDate, r.EndDate)
}

func DaysInRange(start, end time.Time) int {
	start = truncateToDay(start)
	end = truncateToDay(end)
	if end.Before(start) {
		return 0
	}
	return int(end.Sub(start).Hours()/24) + 1
}

func DatesInRange(start, end time.Time) []time.Time {
	start = truncateToDay(start)
	end = truncateToDay(end)
	if end.Before(start) {
		return nil
	}
	var dates []time.Time
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		dates = append(dates, d)
	}
	return dates
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
