package leave

import (
	"context"
	"time"

	"github.com/ptcportal/personnel-backend-go/internal/domain/approval"
	"github.com/ptcportal/personnel-backend-go/internal/domain/person"
)

// LeaveRepository - interface for the staff_leave / trainee_leave tables.
// The approval state is persisted in the status column.
type LeaveRepository interface {
	Create(ctx context.Context, t person.Type, rec Record) (Record, error)
	GetByID(ctx context.Context, t person.Type, id string) (Record, error)
	List(ctx context.Context, t person.Type, filter RecordFilter) ([]Record, int64, error)
	Update(ctx context.Context, t person.Type, req UpdateLeaveRequest, newApproval *approval.State) error
	UpdateApproval(ctx context.Context, t person.Type, id string, state approval.State, decidedBy string) error
	Delete(ctx context.Context, t person.Type, id string) error
	DeleteByPerson(ctx context.Context, t person.Type, personID string) error

	// HasOverlap reports whether the person already has a pending or
	// approved leave intersecting [start, end].
	HasOverlap(ctx context.Context, t person.Type, personID string, start, end time.Time, excludeID string) (bool, error)
}
