package export

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/ptcportal/personnel-backend-go/internal/domain/attendance"
	"github.com/ptcportal/personnel-backend-go/internal/domain/export"
	"github.com/ptcportal/personnel-backend-go/internal/domain/leave"
	"github.com/ptcportal/personnel-backend-go/internal/domain/person"
)

// listPageSize - page size used when draining paginated repositories for a
// full export.
const listPageSize = 500

type ExportServiceImpl struct {
	personRepo     person.PersonRepository
	attendanceRepo attendance.AttendanceRepository
	leaveRepo      leave.LeaveRepository
}

func NewExportService(
	personRepo person.PersonRepository,
	attendanceRepo attendance.AttendanceRepository,
	leaveRepo leave.LeaveRepository,
) *ExportServiceImpl {
	return &ExportServiceImpl{
		personRepo:     personRepo,
		attendanceRepo: attendanceRepo,
		leaveRepo:      leaveRepo,
	}
}

var personHeader = []string{
	"PNO", "Name", "Father's Name", "Rank", "District", "Blood Group",
	"Mobile Number", "Date of Birth", "Date of Joining", "Arrival Date",
	"Departure Date", "Home Address", "Nominee",
}

var attendanceHeader = []string{
	"PNO", "Name", "Date", "Status", "Reason", "Approval", "Decided By", "Decided At",
}

// ExportPersons renders the full directory of one person type as CSV or XLSX.
func (s *ExportServiceImpl) ExportPersons(ctx context.Context, req export.PersonsExportRequest) (*bytes.Buffer, string, error) {
	if err := req.Validate(); err != nil {
		return nil, "", err
	}
	t, err := person.ParseType(req.PersonType)
	if err != nil {
		return nil, "", err
	}
	format, err := export.ParseFormat(req.Format)
	if err != nil {
		return nil, "", err
	}

	persons, err := s.listAllPersons(ctx, t)
	if err != nil {
		return nil, "", fmt.Errorf("failed to fetch %s directory: %w", t, err)
	}
	if len(persons) == 0 {
		return nil, "", export.ErrNothingToExport
	}

	rows := make([][]string, 0, len(persons))
	for _, p := range persons {
		rows = append(rows, personRow(p))
	}

	filename := fmt.Sprintf("%s_directory_%s.%s", t, time.Now().Format("2006-01-02"), format)
	buf, err := renderTable(format, string(t)+" directory", personHeader, rows, personColWidths)
	if err != nil {
		return nil, "", err
	}
	return buf, filename, nil
}

// ExportAttendance renders one person's attendance history, optionally
// restricted to a date range, as CSV or XLSX.
func (s *ExportServiceImpl) ExportAttendance(ctx context.Context, req export.AttendanceExportRequest) (*bytes.Buffer, string, error) {
	if err := req.Validate(); err != nil {
		return nil, "", err
	}
	t, err := person.ParseType(req.PersonType)
	if err != nil {
		return nil, "", err
	}
	format, err := export.ParseFormat(req.Format)
	if err != nil {
		return nil, "", err
	}

	p, err := s.personRepo.GetByID(ctx, t, req.PersonID)
	if err != nil {
		return nil, "", err
	}

	records, err := s.listAllAttendance(ctx, t, req.PersonID, req.From, req.To)
	if err != nil {
		return nil, "", fmt.Errorf("failed to fetch attendance history: %w", err)
	}
	if len(records) == 0 {
		return nil, "", export.ErrNothingToExport
	}

	rows := make([][]string, 0, len(records))
	for _, rec := range records {
		rows = append(rows, attendanceRow(p, rec))
	}

	filename := fmt.Sprintf("%s_attendance_%s_%s.%s", t, p.PNO, time.Now().Format("2006-01-02"), format)
	buf, err := renderTable(format, "attendance", attendanceHeader, rows, attendanceColWidths)
	if err != nil {
		return nil, "", err
	}
	return buf, filename, nil
}

func (s *ExportServiceImpl) listAllPersons(ctx context.Context, t person.Type) ([]person.Person, error) {
	var all []person.Person
	filter := person.PersonFilter{
		SortBy:    "pno",
		SortOrder: "asc",
		Page:      1,
		Limit:     listPageSize,
	}
	for {
		page, total, err := s.personRepo.List(ctx, t, filter)
		if err != nil {
			return nil, err
		}
		all = append(all, page...)
		if len(page) < listPageSize || int64(len(all)) >= total {
			return all, nil
		}
		filter.Page++
	}
}

func (s *ExportServiceImpl) listAllAttendance(ctx context.Context, t person.Type, personID, from, to string) ([]attendance.Record, error) {
	filter := attendance.RecordFilter{
		PersonID: &personID,
		Page:     1,
		Limit:    listPageSize,
	}
	if from != "" {
		d, _ := time.Parse("2006-01-02", from)
		filter.From = &d
	}
	if to != "" {
		d, _ := time.Parse("2006-01-02", to)
		filter.To = &d
	}

	var all []attendance.Record
	for {
		page, total, err := s.attendanceRepo.List(ctx, t, filter)
		if err != nil {
			return nil, err
		}
		all = append(all, page...)
		if len(page) < listPageSize || int64(len(all)) >= total {
			return all, nil
		}
		filter.Page++
	}
}

func personRow(p person.Person) []string {
	return []string{
		p.PNO,
		p.Name,
		p.FatherName,
		p.Rank,
		p.District,
		p.BloodGroup,
		p.MobileNumber,
		p.DateOfBirth.Format("2006-01-02"),
		p.DateOfJoining.Format("2006-01-02"),
		fmtDatePtr(p.ArrivalDate),
		fmtDatePtr(p.DepartureDate),
		p.HomeAddress,
		p.Nominee,
	}
}

func attendanceRow(p person.Person, rec attendance.Record) []string {
	decidedBy := ""
	if rec.DecidedBy != nil {
		decidedBy = *rec.DecidedBy
	}
	decidedAt := ""
	if rec.DecidedAt != nil {
		decidedAt = rec.DecidedAt.Format("2006-01-02 15:04")
	}
	return []string{
		p.PNO,
		p.Name,
		rec.Date.Format("2006-01-02"),
		string(rec.Status),
		rec.Reason,
		string(rec.Approval),
		decidedBy,
		decidedAt,
	}
}

func fmtDatePtr(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format("2006-01-02")
}

var personColWidths = []float64{14, 24, 24, 16, 16, 12, 16, 14, 14, 14, 14, 36, 20}

var attendanceColWidths = []float64{14, 24, 14, 14, 30, 12, 18, 18}

func renderTable(format export.Format, sheetTitle string, header []string, rows [][]string, widths []float64) (*bytes.Buffer, error) {
	switch format {
	case export.FormatCSV:
		return renderCSV(header, rows)
	case export.FormatXLSX:
		return renderXLSX(sheetTitle, header, rows, widths)
	}
	return nil, export.ErrInvalidFormat
}

func renderCSV(header []string, rows [][]string) (*bytes.Buffer, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	if err := w.Write(header); err != nil {
		return nil, fmt.Errorf("failed to write csv header: %w", err)
	}
	if err := w.WriteAll(rows); err != nil {
		return nil, fmt.Errorf("failed to write csv rows: %w", err)
	}
	return buf, nil
}

func renderXLSX(sheetTitle string, header []string, rows [][]string, widths []float64) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer f.Close()

	sheet := sheetTitle
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return nil, fmt.Errorf("failed to name worksheet: %w", err)
	}
	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create header style: %w", err)
	}

	for i, title := range header {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(sheet, cell, title); err != nil {
			return nil, fmt.Errorf("failed to write header cell: %w", err)
		}
	}
	endHeader, _ := excelize.CoordinatesToCellName(len(header), 1)
	if err := f.SetCellStyle(sheet, "A1", endHeader, headerStyle); err != nil {
		return nil, fmt.Errorf("failed to style header row: %w", err)
	}

	for i, w := range widths {
		col, _ := excelize.ColumnNumberToName(i + 1)
		if err := f.SetColWidth(sheet, col, col, w); err != nil {
			return nil, fmt.Errorf("failed to set column width: %w", err)
		}
	}

	for r, row := range rows {
		for c, value := range row {
			cell, _ := excelize.CoordinatesToCellName(c+1, r+2)
			if err := f.SetCellValue(sheet, cell, value); err != nil {
				return nil, fmt.Errorf("failed to write data cell: %w", err)
			}
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to serialize workbook: %w", err)
	}
	return buf, nil
}
