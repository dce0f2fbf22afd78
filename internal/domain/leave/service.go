package leave

import (
	"context"

	"github.com/ptcportal/personnel-backend-go/internal/domain/person"
)

type LeaveService interface {
	// Submit always records the leave as pending; attendance rows are
	// materialized only when a reviewer approves it.
	Submit(ctx context.Context, t person.Type, req SubmitLeaveRequest) (RecordResponse, error)
	List(ctx context.Context, t person.Type, filter RecordFilter) (ListRecordsResponse, error)
	Get(ctx context.Context, t person.Type, id string) (RecordResponse, error)

	// Update edits a request and resets its approval state to pending.
	Update(ctx context.Context, t person.Type, req UpdateLeaveRequest) error
	Delete(ctx context.Context, t person.Type, id string) error
}
