package attendance

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/ptcportal/personnel-backend-go/internal/domain/approval"
	"github.com/ptcportal/personnel-backend-go/internal/domain/attendance"
	"github.com/ptcportal/personnel-backend-go/internal/domain/person"
	"github.com/ptcportal/personnel-backend-go/internal/pkg/database"
)

type AttendanceServiceImpl struct {
	tx             database.TxManager
	attendanceRepo attendance.AttendanceRepository
	personRepo     person.PersonRepository
}

func NewAttendanceService(
	tx database.TxManager,
	attendanceRepo attendance.AttendanceRepository,
	personRepo person.PersonRepository,
) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		tx:             tx,
		attendanceRepo: attendanceRepo,
		personRepo:     personRepo,
	}
}

func (s *AttendanceServiceImpl) SubmitAbsence(ctx context.Context, t person.Type, req attendance.SubmitAbsenceRequest) (attendance.RecordResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.RecordResponse{}, err
	}

	if _, err := s.personRepo.GetByID(ctx, t, req.PersonID); err != nil {
		return attendance.RecordResponse{}, err
	}

	status, err := attendance.ParseStatus(req.Status)
	if err != nil {
		return attendance.RecordResponse{}, err
	}
	date, _ := time.Parse("2006-01-02", req.Date)

	rec := attendance.Record{
		ID:       uuid.NewString(),
		PersonID: req.PersonID,
		Date:     date,
		Status:   status,
		Reason:   req.Reason,
		Approval: attendance.InitialApprovalState(status),
	}

	// Upsert inside a transaction so the existence check and write cannot
	// interleave with a concurrent submission for the same day.
	var saved attendance.Record
	err = s.tx.WithinTx(ctx, func(txCtx context.Context) error {
		var txErr error
		saved, txErr = s.attendanceRepo.Upsert(txCtx, t, rec)
		return txErr
	})
	if err != nil {
		return attendance.RecordResponse{}, fmt.Errorf("failed to record absence: %w", err)
	}

	return attendance.ToResponse(saved), nil
}

func (s *AttendanceServiceImpl) List(ctx context.Context, t person.Type, filter attendance.RecordFilter) (attendance.ListRecordsResponse, error) {
	if filter.Page == 0 {
		filter.Page = 1
	}
	if filter.Limit == 0 {
		filter.Limit = 20
	}

	records, total, err := s.attendanceRepo.List(ctx, t, filter)
	if err != nil {
		return attendance.ListRecordsResponse{}, fmt.Errorf("failed to list attendance records: %w", err)
	}

	responses := make([]attendance.RecordResponse, 0, len(records))
	for _, rec := range records {
		responses = append(responses, attendance.ToResponse(rec))
	}

	return attendance.ListRecordsResponse{
		TotalCount: total,
		Page:       filter.Page,
		Limit:      filter.Limit,
		Records:    responses,
	}, nil
}

func (s *AttendanceServiceImpl) Get(ctx context.Context, t person.Type, id string) (attendance.RecordResponse, error) {
	rec, err := s.attendanceRepo.GetByID(ctx, t, id)
	if err != nil {
		return attendance.RecordResponse{}, err
	}
	return attendance.ToResponse(rec), nil
}

// Update edits an attendance entry. When the edit changes the status or
// reason and the resulting status needs review, the approval state drops
// back to pending and any earlier decision is cleared.
func (s *AttendanceServiceImpl) Update(ctx context.Context, t person.Type, req attendance.UpdateRecordRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	current, err := s.attendanceRepo.GetByID(ctx, t, req.ID)
	if err != nil {
		return err
	}

	var newApproval *approval.State
	if req.Status != nil || req.Reason != nil {
		status := current.Status
		if req.Status != nil {
			status, _ = attendance.ParseStatus(*req.Status)
		}
		state := attendance.InitialApprovalState(status)
		newApproval = &state
	}

	return s.attendanceRepo.Update(ctx, t, req, newApproval)
}

func (s *AttendanceServiceImpl) Delete(ctx context.Context, t person.Type, id string) error {
	return s.attendanceRepo.Delete(ctx, t, id)
}
