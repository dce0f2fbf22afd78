package attendance

import (
	"context"

	"github.com/ptcportal/personnel-backend-go/internal/domain/person"
)

type AttendanceService interface {
	// SubmitAbsence records one entry for (person, date). Absence,
	// suspension and termination are approved immediately; other statuses
	// start pending.
	SubmitAbsence(ctx context.Context, t person.Type, req SubmitAbsenceRequest) (RecordResponse, error)
	List(ctx context.Context, t person.Type, filter RecordFilter) (ListRecordsResponse, error)
	Get(ctx context.Context, t person.Type, id string) (RecordResponse, error)

	// Update edits an entry; changing the status or reason of an entry
	// whose status requires review resets the approval state to pending.
	Update(ctx context.Context, t person.Type, req UpdateRecordRequest) error
	Delete(ctx context.Context, t person.Type, id string) error
}
