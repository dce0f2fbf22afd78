package leave

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/ptcportal/personnel-backend-go/internal/domain/approval"
	"github.com/ptcportal/personnel-backend-go/internal/domain/leave"
	"github.com/ptcportal/personnel-backend-go/internal/domain/person"
)

type LeaveServiceImpl struct {
	leaveRepo  leave.LeaveRepository
	personRepo person.PersonRepository
}

func NewLeaveService(
	leaveRepo leave.LeaveRepository,
	personRepo person.PersonRepository,
) leave.LeaveService {
	return &LeaveServiceImpl{
		leaveRepo:  leaveRepo,
		personRepo: personRepo,
	}
}

// Submit records a leave request. Every new request starts pending; the
// attendance rows for the range appear only when a reviewer approves it.
func (s *LeaveServiceImpl) Submit(ctx context.Context, t person.Type, req leave.SubmitLeaveRequest) (leave.RecordResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.RecordResponse{}, err
	}

	p, err := s.personRepo.GetByID(ctx, t, req.PersonID)
	if err != nil {
		return leave.RecordResponse{}, err
	}

	start, _ := time.Parse("2006-01-02", req.StartDate)
	end, _ := time.Parse("2006-01-02", req.EndDate)
	leaveType, _ := leave.ParseLeaveType(req.LeaveType)

	overlaps, err := s.leaveRepo.HasOverlap(ctx, t, req.PersonID, start, end, "")
	if err != nil {
		return leave.RecordResponse{}, fmt.Errorf("failed to check leave overlap: %w", err)
	}
	if overlaps {
		return leave.RecordResponse{}, leave.ErrLeaveOverlaps
	}

	rec := leave.Record{
		ID:        uuid.NewString(),
		PersonID:  req.PersonID,
		StartDate: start,
		EndDate:   end,
		LeaveType: leaveType,
		Reason:    req.Reason,
		Approval:  approval.StatePending,
	}

	created, err := s.leaveRepo.Create(ctx, t, rec)
	if err != nil {
		return leave.RecordResponse{}, err
	}
	created.PersonName = &p.Name
	created.PersonPNO = &p.PNO

	return leave.ToResponse(created), nil
}

func (s *LeaveServiceImpl) List(ctx context.Context, t person.Type, filter leave.RecordFilter) (leave.ListRecordsResponse, error) {
	if filter.Page == 0 {
		filter.Page = 1
	}
	if filter.Limit == 0 {
		filter.Limit = 20
	}

	records, total, err := s.leaveRepo.List(ctx, t, filter)
	if err != nil {
		return leave.ListRecordsResponse{}, fmt.Errorf("failed to list leave records: %w", err)
	}

	responses := make([]leave.RecordResponse, 0, len(records))
	for _, rec := range records {
		responses = append(responses, leave.ToResponse(rec))
	}

	return leave.ListRecordsResponse{
		TotalCount: total,
		Page:       filter.Page,
		Limit:      filter.Limit,
		Records:    responses,
	}, nil
}

func (s *LeaveServiceImpl) Get(ctx context.Context, t person.Type, id string) (leave.RecordResponse, error) {
	rec, err := s.leaveRepo.GetByID(ctx, t, id)
	if err != nil {
		return leave.RecordResponse{}, err
	}
	return leave.ToResponse(rec), nil
}

// Update edits a leave request and always drops it back to pending: an
// edited request must be re-reviewed even if it was already decided.
func (s *LeaveServiceImpl) Update(ctx context.Context, t person.Type, req leave.UpdateLeaveRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	current, err := s.leaveRepo.GetByID(ctx, t, req.ID)
	if err != nil {
		return err
	}

	start := current.StartDate
	end := current.EndDate
	if req.StartDate != nil {
		start, _ = time.Parse("2006-01-02", *req.StartDate)
	}
	if req.EndDate != nil {
		end, _ = time.Parse("2006-01-02", *req.EndDate)
	}
	if end.Before(start) {
		return leave.ErrInvalidDateRange
	}

	overlaps, err := s.leaveRepo.HasOverlap(ctx, t, current.PersonID, start, end, req.ID)
	if err != nil {
		return fmt.Errorf("failed to check leave overlap: %w", err)
	}
	if overlaps {
		return leave.ErrLeaveOverlaps
	}

	pending := approval.StatePending
	return s.leaveRepo.Update(ctx, t, req, &pending)
}

func (s *LeaveServiceImpl) Delete(ctx context.Context, t person.Type, id string) error {
	return s.leaveRepo.Delete(ctx, t, id)
}
