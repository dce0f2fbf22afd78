package export

import (
	"context"
	"fmt"
	"html/template"
	"strings"
	"time"

	"github.com/ptcportal/personnel-backend-go/internal/domain/export"
	"github.com/ptcportal/personnel-backend-go/internal/domain/leave"
	"github.com/ptcportal/personnel-backend-go/internal/domain/person"
)

// printData feeds the printable record template. Labels are rendered
// bilingually (Hindi / English) in the template itself.
type printData struct {
	Title       string
	GeneratedAt string

	PNO           string
	Name          string
	FatherName    string
	Rank          string
	District      string
	BloodGroup    string
	MobileNumber  string
	DateOfBirth   string
	DateOfJoining string
	ArrivalDate   string
	DepartureDate string
	HomeAddress   string
	Nominee       string
	PhotoURL      string

	Attendance []printAttendanceRow
	Leaves     []printLeaveRow
}

type printAttendanceRow struct {
	Date     string
	Status   string
	Reason   string
	Approval string
}

type printLeaveRow struct {
	StartDate string
	EndDate   string
	Days      int
	LeaveType string
	Reason    string
	Approval  string
}

var printTmpl = template.Must(template.New("printable-record").Parse(printTemplateHTML))

// PrintableRecord assembles the person's bio block plus their attendance
// and leave history into one self-contained HTML page.
func (s *ExportServiceImpl) PrintableRecord(ctx context.Context, req export.PrintRequest) (string, error) {
	if err := req.Validate(); err != nil {
		return "", err
	}
	t, err := person.ParseType(req.PersonType)
	if err != nil {
		return "", err
	}

	p, err := s.personRepo.GetByID(ctx, t, req.PersonID)
	if err != nil {
		return "", err
	}

	attRecords, err := s.listAllAttendance(ctx, t, req.PersonID, req.From, req.To)
	if err != nil {
		return "", fmt.Errorf("failed to fetch attendance history: %w", err)
	}
	leaveRecords, err := s.listAllLeaves(ctx, t, req.PersonID, req.From, req.To)
	if err != nil {
		return "", fmt.Errorf("failed to fetch leave history: %w", err)
	}

	data := printData{
		Title:       fmt.Sprintf("Service Record - %s (%s)", p.Name, p.PNO),
		GeneratedAt: time.Now().Format("02 Jan 2006 15:04"),

		PNO:           p.PNO,
		Name:          p.Name,
		FatherName:    p.FatherName,
		Rank:          p.Rank,
		District:      p.District,
		BloodGroup:    p.BloodGroup,
		MobileNumber:  p.MobileNumber,
		DateOfBirth:   p.DateOfBirth.Format("02-01-2006"),
		DateOfJoining: p.DateOfJoining.Format("02-01-2006"),
		ArrivalDate:   fmtPrintDate(p.ArrivalDate),
		DepartureDate: fmtPrintDate(p.DepartureDate),
		HomeAddress:   p.HomeAddress,
		Nominee:       p.Nominee,
	}
	if p.PhotoURL != nil {
		data.PhotoURL = *p.PhotoURL
	}

	for _, rec := range attRecords {
		data.Attendance = append(data.Attendance, printAttendanceRow{
			Date:     rec.Date.Format("02-01-2006"),
			Status:   strings.ReplaceAll(string(rec.Status), "_", " "),
			Reason:   rec.Reason,
			Approval: string(rec.Approval),
		})
	}
	for _, rec := range leaveRecords {
		data.Leaves = append(data.Leaves, printLeaveRow{
			StartDate: rec.StartDate.Format("02-01-2006"),
			EndDate:   rec.EndDate.Format("02-01-2006"),
			Days:      rec.Days(),
			LeaveType: string(rec.LeaveType),
			Reason:    rec.Reason,
			Approval:  string(rec.Approval),
		})
	}

	var sb strings.Builder
	if err := printTmpl.Execute(&sb, data); err != nil {
		return "", fmt.Errorf("failed to render printable record: %w", err)
	}
	return sb.String(), nil
}

func (s *ExportServiceImpl) listAllLeaves(ctx context.Context, t person.Type, personID, from, to string) ([]leave.Record, error) {
	filter := leave.RecordFilter{
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

	var all []leave.Record
	for {
		page, total, err := s.leaveRepo.List(ctx, t, filter)
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

func fmtPrintDate(t *time.Time) string {
	if t == nil {
		return "-"
	}
	return t.Format("02-01-2006")
}

const printTemplateHTML = `<!DOCTYPE html>
<html lang="hi">
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<style>
  body { font-family: "Noto Sans Devanagari", "Mangal", Arial, sans-serif; margin: 24px; color: #111; }
  h1 { font-size: 20px; text-align: center; margin-bottom: 2px; }
  .subtitle { text-align: center; font-size: 12px; color: #555; margin-bottom: 18px; }
  .bio { display: flex; gap: 24px; border: 1px solid #999; padding: 12px; margin-bottom: 18px; }
  .bio table { border-collapse: collapse; font-size: 13px; }
  .bio td { padding: 3px 10px 3px 0; vertical-align: top; }
  .bio td.label { font-weight: bold; white-space: nowrap; }
  .photo { width: 110px; }
  .photo img { width: 110px; height: 130px; object-fit: cover; border: 1px solid #999; }
  h2 { font-size: 15px; border-bottom: 1px solid #999; padding-bottom: 3px; margin-top: 20px; }
  table.history { width: 100%; border-collapse: collapse; font-size: 12px; }
  table.history th, table.history td { border: 1px solid #999; padding: 4px 6px; text-align: left; }
  table.history th { background: #eee; }
  .empty { font-size: 12px; color: #555; font-style: italic; }
  @media print { body { margin: 8px; } }
</style>
</head>
<body>
<h1>कार्मिक सेवा अभिलेख / Personnel Service Record</h1>
<div class="subtitle">प्रशिक्षण केंद्र / Training Centre &mdash; {{.GeneratedAt}}</div>

<div class="bio">
  <table>
    <tr><td class="label">पी.एन.ओ. / PNO</td><td>{{.PNO}}</td></tr>
    <tr><td class="label">नाम / Name</td><td>{{.Name}}</td></tr>
    <tr><td class="label">पिता का नाम / Father's Name</td><td>{{.FatherName}}</td></tr>
    <tr><td class="label">पद / Rank</td><td>{{.Rank}}</td></tr>
    <tr><td class="label">जिला / District</td><td>{{.District}}</td></tr>
    <tr><td class="label">रक्त समूह / Blood Group</td><td>{{.BloodGroup}}</td></tr>
    <tr><td class="label">मोबाइल नंबर / Mobile Number</td><td>{{.MobileNumber}}</td></tr>
    <tr><td class="label">जन्म तिथि / Date of Birth</td><td>{{.DateOfBirth}}</td></tr>
    <tr><td class="label">नियुक्ति तिथि / Date of Joining</td><td>{{.DateOfJoining}}</td></tr>
    {{if ne .ArrivalDate "-"}}<tr><td class="label">आगमन तिथि / Arrival Date</td><td>{{.ArrivalDate}}</td></tr>{{end}}
    {{if ne .DepartureDate "-"}}<tr><td class="label">प्रस्थान तिथि / Departure Date</td><td>{{.DepartureDate}}</td></tr>{{end}}
    <tr><td class="label">गृह पता / Home Address</td><td>{{.HomeAddress}}</td></tr>
    <tr><td class="label">नामिती / Nominee</td><td>{{.Nominee}}</td></tr>
  </table>
  {{if .PhotoURL}}<div class="photo"><img src="{{.PhotoURL}}" alt="photo"></div>{{end}}
</div>

<h2>उपस्थिति विवरण / Attendance History</h2>
{{if .Attendance}}
<table class="history">
  <tr>
    <th>दिनांक / Date</th>
    <th>स्थिति / Status</th>
    <th>कारण / Reason</th>
    <th>अनुमोदन / Approval</th>
  </tr>
  {{range .Attendance}}
  <tr><td>{{.Date}}</td><td>{{.Status}}</td><td>{{.Reason}}</td><td>{{.Approval}}</td></tr>
  {{end}}
</table>
{{else}}<p class="empty">कोई अभिलेख नहीं / No records</p>{{end}}

<h2>अवकाश विवरण / Leave History</h2>
{{if .Leaves}}
<table class="history">
  <tr>
    <th>से / From</th>
    <th>तक / To</th>
    <th>दिन / Days</th>
    <th>अवकाश प्रकार / Leave Type</th>
    <th>कारण / Reason</th>
    <th>अनुमोदन / Approval</th>
  </tr>
  {{range .Leaves}}
  <tr><td>{{.StartDate}}</td><td>{{.EndDate}}</td><td>{{.Days}}</td><td>{{.LeaveType}}</td><td>{{.Reason}}</td><td>{{.Approval}}</td></tr>
  {{end}}
</table>
{{else}}<p class="empty">कोई अभिलेख नहीं / No records</p>{{end}}

</body>
</html>
`
