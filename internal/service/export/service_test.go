package export

import (
	"context"
	"encoding/csv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/ptcportal/personnel-backend-go/internal/domain/approval"
	"github.com/ptcportal/personnel-backend-go/internal/domain/attendance"
	"github.com/ptcportal/personnel-backend-go/internal/domain/export"
	"github.com/ptcportal/personnel-backend-go/internal/domain/leave"
	"github.com/ptcportal/personnel-backend-go/internal/domain/person"
)

type fakePersonRepo struct {
	person.PersonRepository

	persons []person.Person
}

func (f *fakePersonRepo) List(ctx context.Context, t person.Type, filter person.PersonFilter) ([]person.Person, int64, error) {
	return f.persons, int64(len(f.persons)), nil
}

func (f *fakePersonRepo) GetByID(ctx context.Context, t person.Type, id string) (person.Person, error) {
	for _, p := range f.persons {
		if p.ID == id {
			return p, nil
		}
	}
	return person.Person{}, person.ErrPersonNotFound
}

type fakeAttendanceRepo struct {
	attendance.AttendanceRepository

	records []attendance.Record
}

func (f *fakeAttendanceRepo) List(ctx context.Context, t person.Type, filter attendance.RecordFilter) ([]attendance.Record, int64, error) {
	return f.records, int64(len(f.records)), nil
}

type fakeLeaveRepo struct {
	leave.LeaveRepository

	records []leave.Record
}

func (f *fakeLeaveRepo) List(ctx context.Context, t person.Type, filter leave.RecordFilter) ([]leave.Record, int64, error) {
	return f.records, int64(len(f.records)), nil
}

func testPerson() person.Person {
	return person.Person{
		ID:            "p1",
		Type:          person.TypeStaff,
		PNO:           "PNO1234",
		Name:          "Ram Kumar",
		FatherName:    "Mohan Kumar",
		Rank:          "Constable",
		District:      "Jodhpur",
		BloodGroup:    "O+",
		MobileNumber:  "9876543210",
		DateOfBirth:   time.Date(1990, 5, 2, 0, 0, 0, 0, time.UTC),
		DateOfJoining: time.Date(2012, 8, 16, 0, 0, 0, 0, time.UTC),
		HomeAddress:   "12 Station Road",
		Nominee:       "Sita Kumar",
	}
}

func newService(persons []person.Person, att []attendance.Record, leaves []leave.Record) export.ExportService {
	return NewExportService(
		&fakePersonRepo{persons: persons},
		&fakeAttendanceRepo{records: att},
		&fakeLeaveRepo{records: leaves},
	)
}

func TestExportPersons_CSV(t *testing.T) {
	svc := newService([]person.Person{testPerson()}, nil, nil)

	buf, filename, err := svc.ExportPersons(context.Background(), export.PersonsExportRequest{
		PersonType: "staff",
		Format:     "csv",
	})
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(filename, "staff_directory_"))
	assert.True(t, strings.HasSuffix(filename, ".csv"))

	rows, err := csv.NewReader(buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, "PNO", rows[0][0])
	assert.Equal(t, "PNO1234", rows[1][0])
	assert.Equal(t, "Ram Kumar", rows[1][1])
	assert.Equal(t, "1990-05-02", rows[1][7])
}

func TestExportPersons_XLSX(t *testing.T) {
	svc := newService([]person.Person{testPerson()}, nil, nil)

	buf, filename, err := svc.ExportPersons(context.Background(), export.PersonsExportRequest{
		PersonType: "staff",
		Format:     "xlsx",
	})
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(filename, ".xlsx"))

	f, err := excelize.OpenReader(buf)
	require.NoError(t, err)
	defer f.Close()

	sheet := f.GetSheetName(0)
	header, err := f.GetCellValue(sheet, "A1")
	require.NoError(t, err)
	assert.Equal(t, "PNO", header)

	name, err := f.GetCellValue(sheet, "B2")
	require.NoError(t, err)
	assert.Equal(t, "Ram Kumar", name)
}

func TestExportPersons_EmptyDirectory(t *testing.T) {
	svc := newService(nil, nil, nil)

	_, _, err := svc.ExportPersons(context.Background(), export.PersonsExportRequest{
		PersonType: "staff",
		Format:     "csv",
	})
	assert.ErrorIs(t, err, export.ErrNothingToExport)
}

func TestExportPersons_BadFormat(t *testing.T) {
	svc := newService([]person.Person{testPerson()}, nil, nil)

	_, _, err := svc.ExportPersons(context.Background(), export.PersonsExportRequest{
		PersonType: "staff",
		Format:     "pdf",
	})
	assert.Error(t, err)
}

func TestExportAttendance_CSV(t *testing.T) {
	decidedBy := "admin-1"
	svc := newService([]person.Person{testPerson()}, []attendance.Record{{
		ID:        "a1",
		PersonID:  "p1",
		Date:      time.Date(2025, 2, 10, 0, 0, 0, 0, time.UTC),
		Status:    attendance.StatusAbsent,
		Reason:    "unreported",
		Approval:  approval.StateApproved,
		DecidedBy: &decidedBy,
	}}, nil)

	buf, filename, err := svc.ExportAttendance(context.Background(), export.AttendanceExportRequest{
		PersonType: "staff",
		PersonID:   "p1",
		Format:     "csv",
	})
	require.NoError(t, err)
	assert.Contains(t, filename, "staff_attendance_PNO1234_")

	rows, err := csv.NewReader(buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "2025-02-10", rows[1][2])
	assert.Equal(t, "absent", rows[1][3])
	assert.Equal(t, "approved", rows[1][5])
}

func TestPrintableRecord_BilingualDocument(t *testing.T) {
	svc := newService([]person.Person{testPerson()},
		[]attendance.Record{{
			ID:       "a1",
			PersonID: "p1",
			Date:     time.Date(2025, 2, 10, 0, 0, 0, 0, time.UTC),
			Status:   attendance.StatusOnLeave,
			Reason:   "approved leave",
			Approval: approval.StateApproved,
		}},
		[]leave.Record{{
			ID:        "l1",
			PersonID:  "p1",
			StartDate: time.Date(2025, 2, 10, 0, 0, 0, 0, time.UTC),
			EndDate:   time.Date(2025, 2, 12, 0, 0, 0, 0, time.UTC),
			LeaveType: leave.TypeCasual,
			Reason:    "family function",
			Approval:  approval.StateApproved,
		}})

	page, err := svc.PrintableRecord(context.Background(), export.PrintRequest{
		PersonType: "staff",
		PersonID:   "p1",
	})
	require.NoError(t, err)

	// Bilingual labels
	assert.Contains(t, page, "नाम / Name")
	assert.Contains(t, page, "पिता का नाम / Father's Name")
	assert.Contains(t, page, "उपस्थिति विवरण / Attendance History")
	assert.Contains(t, page, "अवकाश विवरण / Leave History")

	// Data
	assert.Contains(t, page, "Ram Kumar")
	assert.Contains(t, page, "PNO1234")
	assert.Contains(t, page, "10-02-2025")
	assert.Contains(t, page, "family function")

	// Self-contained document
	assert.Contains(t, page, "<!DOCTYPE html>")
	assert.Contains(t, page, "<style>")
}

func TestPrintableRecord_UnknownPerson(t *testing.T) {
	svc := newService(nil, nil, nil)

	_, err := svc.PrintableRecord(context.Background(), export.PrintRequest{
		PersonType: "staff",
		PersonID:   "ghost",
	})
	assert.ErrorIs(t, err, person.ErrPersonNotFound)
}
