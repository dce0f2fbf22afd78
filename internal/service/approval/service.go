package approval

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/ptcportal/personnel-backend-go/internal/domain/approval"
	"github.com/ptcportal/personnel-backend-go/internal/domain/attendance"
	"github.com/ptcportal/personnel-backend-go/internal/domain/leave"
	"github.com/ptcportal/personnel-backend-go/internal/domain/person"
	"github.com/ptcportal/personnel-backend-go/internal/pkg/database"
)

type ApprovalServiceImpl struct {
	tx             database.TxManager
	attendanceRepo attendance.AttendanceRepository
	leaveRepo      leave.LeaveRepository
}

func NewApprovalService(
	tx database.TxManager,
	attendanceRepo attendance.AttendanceRepository,
	leaveRepo leave.LeaveRepository,
) approval.ApprovalService {
	return &ApprovalServiceImpl{
		tx:             tx,
		attendanceRepo: attendanceRepo,
		leaveRepo:      leaveRepo,
	}
}

// Decide writes the new approval state. Approving a leave additionally
// materializes one on_leave attendance row per calendar day of the range;
// the status write and the whole day loop share one transaction, so a
// failure anywhere rolls the decision back instead of leaving a prefix of
// the range materialized.
func (s *ApprovalServiceImpl) Decide(ctx context.Context, req approval.DecideRequest, decidedBy string) (approval.DecideResponse, error) {
	if err := req.Validate(); err != nil {
		return approval.DecideResponse{}, err
	}

	personType, err := person.ParseType(req.PersonType)
	if err != nil {
		return approval.DecideResponse{}, err
	}
	recordType, _ := approval.ParseRecordType(req.RecordType)
	newState, _ := approval.ParseState(req.NewState)

	resp := approval.DecideResponse{
		RecordID:   req.RecordID,
		RecordType: req.RecordType,
		NewState:   req.NewState,
	}

	switch recordType {
	case approval.RecordAbsence:
		if err := s.attendanceRepo.UpdateApproval(ctx, personType, req.RecordID, newState, decidedBy); err != nil {
			return approval.DecideResponse{}, err
		}
		return resp, nil

	case approval.RecordLeave:
		materialized := 0
		err := s.tx.WithinTx(ctx, func(txCtx context.Context) error {
			if err := s.leaveRepo.UpdateApproval(txCtx, personType, req.RecordID, newState, decidedBy); err != nil {
				return err
			}
			if newState != approval.StateApproved {
				return nil
			}

			rec, err := s.leaveRepo.GetByID(txCtx, personType, req.RecordID)
			if err != nil {
				return err
			}

			count, err := s.materialize(txCtx, personType, rec, decidedBy)
			if err != nil {
				return fmt.Errorf("failed to materialize leave %s: %w", rec.ID, err)
			}
			materialized = count
			return nil
		})
		if err != nil {
			slog.Warn("leave decision rolled back", "record_id", req.RecordID, "error", err)
			return approval.DecideResponse{}, err
		}
		resp.MaterializedDays = materialized
		return resp, nil
	}

	return approval.DecideResponse{}, approval.ErrInvalidRecordType
}

// materialize writes one approved on_leave attendance row per calendar day
// of the leave range. A day that already has a row is updated in place, so
// re-approving an approved leave never duplicates rows.
func (s *ApprovalServiceImpl) materialize(ctx context.Context, t person.Type, rec leave.Record, decidedBy string) (int, error) {
	now := time.Now()
	count := 0
	for _, date := range rec.Dates() {
		dayRec := attendance.Record{
			ID:        uuid.NewString(),
			PersonID:  rec.PersonID,
			Date:      date,
			Status:    attendance.StatusOnLeave,
			Reason:    rec.Reason,
			Approval:  approval.StateApproved,
			DecidedBy: &decidedBy,
			DecidedAt: &now,
		}
		if _, err := s.attendanceRepo.Upsert(ctx, t, dayRec); err != nil {
			return count, err
		}
		count++
	}
	return count, nil
}
