package attendance

import (
	"time"

	"github.com/ptcportal/personnel-backend-go/internal/domain/approval"
)

type Status string

const (
	StatusAbsent      Status = "absent"
	StatusOnLeave     Status = "on_leave"
	StatusSuspension  Status = "suspension"
	StatusResignation Status = "resignation"
	StatusTermination Status = "termination"
)

func ParseStatus(s string) (Status, error) {
	switch Status(s) {
	case StatusAbsent, StatusOnLeave, StatusSuspension, StatusResignation, StatusTermination:
		return Status(s), nil
	}
	return "", ErrInvalidStatus
}

// InitialApprovalState returns the approval state a freshly recorded entry
// starts in. Absence, suspension and termination are factual records and
// need no review; everything else waits for a reviewer.
func InitialApprovalState(s Status) approval.State {
	switch s {
	case StatusAbsent, StatusSuspension, StatusTermination:
		return approval.StateApproved
	default:
		return approval.StatePending
	}
}

// Record is one attendance entry, unique per (person, date).
type Record struct {
	ID       string
	PersonID string
	Date     time.Time
	Status   Status
	Reason   string

	Approval  approval.State
	DecidedBy *string
	DecidedAt *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time

	// Joined for responses
	PersonName *string
	PersonPNO  *string
}
