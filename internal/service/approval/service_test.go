package approval

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ptcportal/personnel-backend-go/internal/domain/approval"
	"github.com/ptcportal/personnel-backend-go/internal/domain/attendance"
	"github.com/ptcportal/personnel-backend-go/internal/domain/leave"
	"github.com/ptcportal/personnel-backend-go/internal/domain/person"
)

// passthroughTx runs the function directly; rollback is simulated by the
// fakes restoring nothing, so tests assert on returned errors instead.
type passthroughTx struct{}

func (passthroughTx) WithinTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fakeAttendanceRepo struct {
	attendance.AttendanceRepository

	// keyed by personID + date
	rows        map[string]attendance.Record
	approvals   map[string]approval.State
	failUpsertN int
	upsertCalls int
}

func newFakeAttendanceRepo() *fakeAttendanceRepo {
	return &fakeAttendanceRepo{
		rows:      make(map[string]attendance.Record),
		approvals: make(map[string]approval.State),
	}
}

func dayKey(personID string, date time.Time) string {
	return personID + "|" + date.Format("2006-01-02")
}

func (f *fakeAttendanceRepo) Upsert(ctx context.Context, t person.Type, rec attendance.Record) (attendance.Record, error) {
	f.upsertCalls++
	if f.failUpsertN > 0 && f.upsertCalls >= f.failUpsertN {
		return attendance.Record{}, errors.New("disk full")
	}
	f.rows[dayKey(rec.PersonID, rec.Date)] = rec
	return rec, nil
}

func (f *fakeAttendanceRepo) UpdateApproval(ctx context.Context, t person.Type, id string, state approval.State, decidedBy string) error {
	f.approvals[id] = state
	return nil
}

type fakeLeaveRepo struct {
	leave.LeaveRepository

	records map[string]leave.Record
}

func newFakeLeaveRepo() *fakeLeaveRepo {
	return &fakeLeaveRepo{records: make(map[string]leave.Record)}
}

func (f *fakeLeaveRepo) GetByID(ctx context.Context, t person.Type, id string) (leave.Record, error) {
	rec, ok := f.records[id]
	if !ok {
		return leave.Record{}, leave.ErrLeaveNotFound
	}
	return rec, nil
}

func (f *fakeLeaveRepo) UpdateApproval(ctx context.Context, t person.Type, id string, state approval.State, decidedBy string) error {
	rec, ok := f.records[id]
	if !ok {
		return leave.ErrLeaveNotFound
	}
	rec.Approval = state
	f.records[id] = rec
	return nil
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func seedLeave(repo *fakeLeaveRepo, id string, start, end time.Time) {
	repo.records[id] = leave.Record{
		ID:        id,
		PersonID:  "person-1",
		StartDate: start,
		EndDate:   end,
		LeaveType: leave.TypeCasual,
		Reason:    "family function",
		Approval:  approval.StatePending,
	}
}

func TestDecide_ApproveLeaveMaterializesEveryDay(t *testing.T) {
	attRepo := newFakeAttendanceRepo()
	leaveRepo := newFakeLeaveRepo()
	seedLeave(leaveRepo, "leave-1", day(2025, 3, 10), day(2025, 3, 14))

	svc := NewApprovalService(passthroughTx{}, attRepo, leaveRepo)

	resp, err := svc.Decide(context.Background(), approval.DecideRequest{
		RecordID:   "leave-1",
		RecordType: "leave",
		PersonType: "staff",
		NewState:   "approved",
	}, "reviewer-1")
	require.NoError(t, err)

	assert.Equal(t, 5, resp.MaterializedDays)
	assert.Len(t, attRepo.rows, 5)
	assert.Equal(t, approval.StateApproved, leaveRepo.records["leave-1"].Approval)

	for _, rec := range attRepo.rows {
		assert.Equal(t, attendance.StatusOnLeave, rec.Status)
		assert.Equal(t, approval.StateApproved, rec.Approval)
		require.NotNil(t, rec.DecidedBy)
		assert.Equal(t, "reviewer-1", *rec.DecidedBy)
	}

	_, first := attRepo.rows[dayKey("person-1", day(2025, 3, 10))]
	_, last := attRepo.rows[dayKey("person-1", day(2025, 3, 14))]
	assert.True(t, first, "start date should be materialized")
	assert.True(t, last, "end date should be materialized")
}

func TestDecide_SingleDayLeave(t *testing.T) {
	attRepo := newFakeAttendanceRepo()
	leaveRepo := newFakeLeaveRepo()
	seedLeave(leaveRepo, "leave-1", day(2025, 3, 10), day(2025, 3, 10))

	svc := NewApprovalService(passthroughTx{}, attRepo, leaveRepo)

	resp, err := svc.Decide(context.Background(), approval.DecideRequest{
		RecordID:   "leave-1",
		RecordType: "leave",
		PersonType: "trainee",
		NewState:   "approved",
	}, "reviewer-1")
	require.NoError(t, err)
	assert.Equal(t, 1, resp.MaterializedDays)
	assert.Len(t, attRepo.rows, 1)
}

func TestDecide_RejectLeaveMaterializesNothing(t *testing.T) {
	attRepo := newFakeAttendanceRepo()
	leaveRepo := newFakeLeaveRepo()
	seedLeave(leaveRepo, "leave-1", day(2025, 3, 10), day(2025, 3, 14))

	svc := NewApprovalService(passthroughTx{}, attRepo, leaveRepo)

	resp, err := svc.Decide(context.Background(), approval.DecideRequest{
		RecordID:   "leave-1",
		RecordType: "leave",
		PersonType: "staff",
		NewState:   "rejected",
	}, "reviewer-1")
	require.NoError(t, err)

	assert.Zero(t, resp.MaterializedDays)
	assert.Empty(t, attRepo.rows)
	assert.Equal(t, approval.StateRejected, leaveRepo.records["leave-1"].Approval)
}

func TestDecide_ReapprovalDoesNotDuplicateRows(t *testing.T) {
	attRepo := newFakeAttendanceRepo()
	leaveRepo := newFakeLeaveRepo()
	seedLeave(leaveRepo, "leave-1", day(2025, 3, 10), day(2025, 3, 12))

	svc := NewApprovalService(passthroughTx{}, attRepo, leaveRepo)

	req := approval.DecideRequest{
		RecordID:   "leave-1",
		RecordType: "leave",
		PersonType: "staff",
		NewState:   "approved",
	}
	_, err := svc.Decide(context.Background(), req, "reviewer-1")
	require.NoError(t, err)
	_, err = svc.Decide(context.Background(), req, "reviewer-2")
	require.NoError(t, err)

	// Upsert keyed on (person, date) overwrites, so the row count stays 3.
	assert.Len(t, attRepo.rows, 3)
}

func TestDecide_MaterializationFailureFailsDecision(t *testing.T) {
	attRepo := newFakeAttendanceRepo()
	attRepo.failUpsertN = 3
	leaveRepo := newFakeLeaveRepo()
	seedLeave(leaveRepo, "leave-1", day(2025, 3, 10), day(2025, 3, 14))

	svc := NewApprovalService(passthroughTx{}, attRepo, leaveRepo)

	_, err := svc.Decide(context.Background(), approval.DecideRequest{
		RecordID:   "leave-1",
		RecordType: "leave",
		PersonType: "staff",
		NewState:   "approved",
	}, "reviewer-1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to materialize")
}

func TestDecide_AbsenceUpdatesApprovalOnly(t *testing.T) {
	attRepo := newFakeAttendanceRepo()
	leaveRepo := newFakeLeaveRepo()

	svc := NewApprovalService(passthroughTx{}, attRepo, leaveRepo)

	resp, err := svc.Decide(context.Background(), approval.DecideRequest{
		RecordID:   "att-1",
		RecordType: "absence",
		PersonType: "staff",
		NewState:   "rejected",
	}, "reviewer-1")
	require.NoError(t, err)

	assert.Zero(t, resp.MaterializedDays)
	assert.Equal(t, approval.StateRejected, attRepo.approvals["att-1"])
	assert.Empty(t, attRepo.rows)
}

func TestDecide_RejectsInvalidRequests(t *testing.T) {
	svc := NewApprovalService(passthroughTx{}, newFakeAttendanceRepo(), newFakeLeaveRepo())

	cases := []approval.DecideRequest{
		{RecordID: "", RecordType: "leave", PersonType: "staff", NewState: "approved"},
		{RecordID: "x", RecordType: "payroll", PersonType: "staff", NewState: "approved"},
		{RecordID: "x", RecordType: "leave", PersonType: "visitor", NewState: "approved"},
		{RecordID: "x", RecordType: "leave", PersonType: "staff", NewState: "pending"},
	}
	for _, req := range cases {
		_, err := svc.Decide(context.Background(), req, "reviewer-1")
		assert.Error(t, err, "request %+v should be rejected", req)
	}
}
