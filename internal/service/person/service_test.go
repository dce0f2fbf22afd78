package person

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ptcportal/personnel-backend-go/internal/domain/attendance"
	"github.com/ptcportal/personnel-backend-go/internal/domain/leave"
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

func (f *fakePersonRepo) Create(ctx context.Context, p person.Person) (person.Person, error) {
	f.persons[p.ID] = p
	return p, nil
}

func (f *fakePersonRepo) GetByID(ctx context.Context, t person.Type, id string) (person.Person, error) {
	p, ok := f.persons[id]
	if !ok {
		return person.Person{}, person.ErrPersonNotFound
	}
	return p, nil
}

func (f *fakePersonRepo) PNOExists(ctx context.Context, t person.Type, pno string, excludeID string) (bool, error) {
	for _, p := range f.persons {
		if p.PNO == pno && p.ID != excludeID {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakePersonRepo) Delete(ctx context.Context, t person.Type, id string) error {
	delete(f.persons, id)
	return nil
}

type fakeAttendanceRepo struct {
	attendance.AttendanceRepository

	deletedFor []string
}

func (f *fakeAttendanceRepo) DeleteByPerson(ctx context.Context, t person.Type, personID string) error {
	f.deletedFor = append(f.deletedFor, personID)
	return nil
}

type fakeLeaveRepo struct {
	leave.LeaveRepository

	deletedFor []string
}

func (f *fakeLeaveRepo) DeleteByPerson(ctx context.Context, t person.Type, personID string) error {
	f.deletedFor = append(f.deletedFor, personID)
	return nil
}

func validCreateRequest() person.CreatePersonRequest {
	return person.CreatePersonRequest{
		PNO:           "PNO1234",
		Name:          "Ram Kumar",
		FatherName:    "Mohan Kumar",
		Rank:          "Head Constable",
		District:      "Udaipur",
		BloodGroup:    "B+",
		MobileNumber:  "9876543210",
		DateOfBirth:   "1988-07-21",
		DateOfJoining: "2010-02-01",
		HomeAddress:   "12 Station Road",
		Nominee:       "Sita Kumar",
	}
}

func TestCreate_ParsesDates(t *testing.T) {
	repo := &fakePersonRepo{persons: make(map[string]person.Person)}
	svc := NewPersonService(passthroughTx{}, repo, &fakeAttendanceRepo{}, &fakeLeaveRepo{})

	resp, err := svc.Create(context.Background(), person.TypeStaff, validCreateRequest())
	require.NoError(t, err)

	assert.NotEmpty(t, resp.ID)
	assert.Equal(t, "1988-07-21", resp.DateOfBirth)
	assert.Equal(t, "2010-02-01", resp.DateOfJoining)

	stored := repo.persons[resp.ID]
	assert.Equal(t, time.Date(1988, 7, 21, 0, 0, 0, 0, time.UTC), stored.DateOfBirth)
}

func TestCreate_DuplicatePNORejected(t *testing.T) {
	repo := &fakePersonRepo{persons: map[string]person.Person{
		"existing": {ID: "existing", PNO: "PNO1234"},
	}}
	svc := NewPersonService(passthroughTx{}, repo, &fakeAttendanceRepo{}, &fakeLeaveRepo{})

	_, err := svc.Create(context.Background(), person.TypeStaff, validCreateRequest())
	assert.ErrorIs(t, err, person.ErrPNOExists)
}

func TestCreate_InvalidRequestRejected(t *testing.T) {
	repo := &fakePersonRepo{persons: make(map[string]person.Person)}
	svc := NewPersonService(passthroughTx{}, repo, &fakeAttendanceRepo{}, &fakeLeaveRepo{})

	req := validCreateRequest()
	req.MobileNumber = "12345"

	_, err := svc.Create(context.Background(), person.TypeStaff, req)
	assert.Error(t, err)
	assert.Empty(t, repo.persons)
}

func TestDelete_CascadesDependentRecords(t *testing.T) {
	repo := &fakePersonRepo{persons: map[string]person.Person{
		"p1": {ID: "p1", PNO: "PNO1234"},
	}}
	attRepo := &fakeAttendanceRepo{}
	leaveRepo := &fakeLeaveRepo{}
	svc := NewPersonService(passthroughTx{}, repo, attRepo, leaveRepo)

	err := svc.Delete(context.Background(), person.TypeStaff, "p1")
	require.NoError(t, err)

	assert.NotContains(t, repo.persons, "p1")
	assert.Equal(t, []string{"p1"}, attRepo.deletedFor)
	assert.Equal(t, []string{"p1"}, leaveRepo.deletedFor)
}

func TestDelete_UnknownPerson(t *testing.T) {
	repo := &fakePersonRepo{persons: make(map[string]person.Person)}
	attRepo := &fakeAttendanceRepo{}
	svc := NewPersonService(passthroughTx{}, repo, attRepo, &fakeLeaveRepo{})

	err := svc.Delete(context.Background(), person.TypeStaff, "ghost")
	assert.ErrorIs(t, err, person.ErrPersonNotFound)
	assert.Empty(t, attRepo.deletedFor)
}
