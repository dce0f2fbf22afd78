package attendance

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ptcportal/personnel-backend-go/internal/domain/approval"
	"github.com/ptcportal/personnel-backend-go/internal/domain/attendance"
	"github.com/ptcportal/personnel-backend-go/internal/domain/person"
)

type passthroughTx struct{}

func (passthroughTx) WithinTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fakePersonRepo struct {
	person.PersonRepository

	persons map[string]person.Person
}

func (f *fakePersonRepo) GetByID(ctx context.Context, t person.Type, id string) (person.Person, error) {
	p, ok := f.persons[id]
	if !ok {
		return person.Person{}, person.ErrPersonNotFound
	}
	return p, nil
}

type fakeAttendanceRepo struct {
	attendance.AttendanceRepository

	rows         map[string]attendance.Record
	lastApproval *approval.State
	updateCalled bool
}

func (f *fakeAttendanceRepo) Upsert(ctx context.Context, t person.Type, rec attendance.Record) (attendance.Record, error) {
	f.rows[rec.PersonID+"|"+rec.Date.Format("2006-01-02")] = rec
	return rec, nil
}

func (f *fakeAttendanceRepo) GetByID(ctx context.Context, t person.Type, id string) (attendance.Record, error) {
	for _, rec := range f.rows {
		if rec.ID == id {
			return rec, nil
		}
	}
	return attendance.Record{}, attendance.ErrAttendanceNotFound
}

func (f *fakeAttendanceRepo) Update(ctx context.Context, t person.Type, req attendance.UpdateRecordRequest, newApproval *approval.State) error {
	f.updateCalled = true
	f.lastApproval = newApproval
	return nil
}

func newFixture() (attendance.AttendanceService, *fakeAttendanceRepo) {
	attRepo := &fakeAttendanceRepo{rows: make(map[string]attendance.Record)}
	personRepo := &fakePersonRepo{persons: map[string]person.Person{
		"person-1": {ID: "person-1", Name: "Ram Kumar", PNO: "PNO1234"},
	}}
	return NewAttendanceService(passthroughTx{}, attRepo, personRepo), attRepo
}

func TestSubmitAbsence_ApprovalStateByStatus(t *testing.T) {
	cases := []struct {
		status string
		want   approval.State
	}{
		{"absent", approval.StateApproved},
		{"suspension", approval.StateApproved},
		{"termination", approval.StateApproved},
		{"on_leave", approval.StatePending},
		{"resignation", approval.StatePending},
	}

	for _, c := range cases {
		t.Run(c.status, func(t *testing.T) {
			svc, _ := newFixture()

			resp, err := svc.SubmitAbsence(context.Background(), person.TypeStaff, attendance.SubmitAbsenceRequest{
				PersonID: "person-1",
				Date:     "2025-02-10",
				Status:   c.status,
				Reason:   "recorded by office",
			})
			require.NoError(t, err)
			assert.Equal(t, string(c.want), resp.Approval)
		})
	}
}

func TestSubmitAbsence_SameDayOverwrites(t *testing.T) {
	svc, repo := newFixture()

	req := attendance.SubmitAbsenceRequest{
		PersonID: "person-1",
		Date:     "2025-02-10",
		Status:   "absent",
		Reason:   "first entry",
	}
	_, err := svc.SubmitAbsence(context.Background(), person.TypeStaff, req)
	require.NoError(t, err)

	req.Reason = "corrected entry"
	_, err = svc.SubmitAbsence(context.Background(), person.TypeStaff, req)
	require.NoError(t, err)

	require.Len(t, repo.rows, 1)
	for _, rec := range repo.rows {
		assert.Equal(t, "corrected entry", rec.Reason)
	}
}

func TestSubmitAbsence_UnknownPerson(t *testing.T) {
	svc, _ := newFixture()

	_, err := svc.SubmitAbsence(context.Background(), person.TypeStaff, attendance.SubmitAbsenceRequest{
		PersonID: "ghost",
		Date:     "2025-02-10",
		Status:   "absent",
		Reason:   "x",
	})
	assert.ErrorIs(t, err, person.ErrPersonNotFound)
}

func TestUpdate_StatusChangeResetsApproval(t *testing.T) {
	svc, repo := newFixture()
	repo.rows["seed"] = attendance.Record{
		ID:       "rec-1",
		PersonID: "person-1",
		Date:     time.Date(2025, 2, 10, 0, 0, 0, 0, time.UTC),
		Status:   attendance.StatusAbsent,
		Approval: approval.StateApproved,
	}

	status := "resignation"
	err := svc.Update(context.Background(), person.TypeStaff, attendance.UpdateRecordRequest{
		ID:     "rec-1",
		Status: &status,
	})
	require.NoError(t, err)

	require.NotNil(t, repo.lastApproval)
	assert.Equal(t, approval.StatePending, *repo.lastApproval)
}

func TestUpdate_DateOnlyChangeKeepsApproval(t *testing.T) {
	svc, repo := newFixture()
	repo.rows["seed"] = attendance.Record{
		ID:       "rec-1",
		PersonID: "person-1",
		Date:     time.Date(2025, 2, 10, 0, 0, 0, 0, time.UTC),
		Status:   attendance.StatusAbsent,
		Approval: approval.StateApproved,
	}

	date := "2025-02-11"
	err := svc.Update(context.Background(), person.TypeStaff, attendance.UpdateRecordRequest{
		ID:   "rec-1",
		Date: &date,
	})
	require.NoError(t, err)

	assert.True(t, repo.updateCalled)
	assert.Nil(t, repo.lastApproval, "moving the date alone keeps the decision")
}
