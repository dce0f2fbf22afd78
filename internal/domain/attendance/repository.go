package attendance

import (
	"context"
	"time"

	"github.com/ptcportal/personnel-backend-go/internal/domain/approval"
	"github.com/ptcportal/personnel-backend-go/internal/domain/person"
)

// AttendanceRepository - interface for the staff_attendance /
// trainee_attendance tables. The approval state is persisted in the
// approval_status column.
type AttendanceRepository interface {
	// Upsert writes the record keyed by (person_id, date): an existing row
	// for that day is overwritten, otherwise a new row is inserted.
	Upsert(ctx context.Context, t person.Type, rec Record) (Record, error)
	GetByID(ctx context.Context, t person.Type, id string) (Record, error)
	GetByPersonAndDate(ctx context.Context, t person.Type, personID string, date time.Time) (Record, error)
	List(ctx context.Context, t person.Type, filter RecordFilter) ([]Record, int64, error)
	Update(ctx context.Context, t person.Type, req UpdateRecordRequest, newApproval *approval.State) error
	UpdateApproval(ctx context.Context, t person.Type, id string, state approval.State, decidedBy string) error
	Delete(ctx context.Context, t person.Type, id string) error
	DeleteByPerson(ctx context.Context, t person.Type, personID string) error
}
