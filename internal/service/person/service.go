package person

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/ptcportal/personnel-backend-go/internal/domain/attendance"
	"github.com/ptcportal/personnel-backend-go/internal/domain/leave"
	"github.com/ptcportal/personnel-backend-go/internal/domain/person"
	"github.com/ptcportal/personnel-backend-go/internal/pkg/database"
)

type PersonServiceImpl struct {
	tx             database.TxManager
	personRepo     person.PersonRepository
	attendanceRepo attendance.AttendanceRepository
	leaveRepo      leave.LeaveRepository
}

func NewPersonService(
	tx database.TxManager,
	personRepo person.PersonRepository,
	attendanceRepo attendance.AttendanceRepository,
	leaveRepo leave.LeaveRepository,
) person.PersonService {
	return &PersonServiceImpl{
		tx:             tx,
		personRepo:     personRepo,
		attendanceRepo: attendanceRepo,
		leaveRepo:      leaveRepo,
	}
}

func (s *PersonServiceImpl) List(ctx context.Context, t person.Type, filter person.PersonFilter) (person.ListPersonsResponse, error) {
	if err := filter.Validate(); err != nil {
		return person.ListPersonsResponse{}, err
	}
	if filter.Page == 0 {
		filter.Page = 1
	}
	if filter.Limit == 0 {
		filter.Limit = 20
	}

	persons, total, err := s.personRepo.List(ctx, t, filter)
	if err != nil {
		return person.ListPersonsResponse{}, fmt.Errorf("failed to list %s records: %w", t, err)
	}

	responses := make([]person.PersonResponse, 0, len(persons))
	for _, p := range persons {
		responses = append(responses, person.ToResponse(p))
	}

	return person.ListPersonsResponse{
		TotalCount: total,
		Page:       filter.Page,
		Limit:      filter.Limit,
		Persons:    responses,
	}, nil
}

func (s *PersonServiceImpl) Get(ctx context.Context, t person.Type, id string) (person.PersonResponse, error) {
	p, err := s.personRepo.GetByID(ctx, t, id)
	if err != nil {
		return person.PersonResponse{}, err
	}
	return person.ToResponse(p), nil
}

func (s *PersonServiceImpl) GetByPNO(ctx context.Context, t person.Type, pno string) (person.PersonResponse, error) {
	p, err := s.personRepo.GetByPNO(ctx, t, pno)
	if err != nil {
		return person.PersonResponse{}, err
	}
	return person.ToResponse(p), nil
}

func (s *PersonServiceImpl) Create(ctx context.Context, t person.Type, req person.CreatePersonRequest) (person.PersonResponse, error) {
	if err := req.Validate(); err != nil {
		return person.PersonResponse{}, err
	}

	exists, err := s.personRepo.PNOExists(ctx, t, req.PNO, "")
	if err != nil {
		return person.PersonResponse{}, fmt.Errorf("failed to check PNO uniqueness: %w", err)
	}
	if exists {
		return person.PersonResponse{}, person.ErrPNOExists
	}

	p := person.Person{
		ID:           uuid.NewString(),
		Type:         t,
		PNO:          req.PNO,
		Name:         req.Name,
		FatherName:   req.FatherName,
		Rank:         req.Rank,
		District:     req.District,
		BloodGroup:   req.BloodGroup,
		MobileNumber: req.MobileNumber,
		HomeAddress:  req.HomeAddress,
		Nominee:      req.Nominee,
		PhotoURL:     req.PhotoURL,
	}
	p.DateOfBirth, _ = time.Parse("2006-01-02", req.DateOfBirth)
	p.DateOfJoining, _ = time.Parse("2006-01-02", req.DateOfJoining)
	if req.ArrivalDate != nil {
		arrival, _ := time.Parse("2006-01-02", *req.ArrivalDate)
		p.ArrivalDate = &arrival
	}
	if req.DepartureDate != nil {
		departure, _ := time.Parse("2006-01-02", *req.DepartureDate)
		p.DepartureDate = &departure
	}

	created, err := s.personRepo.Create(ctx, p)
	if err != nil {
		return person.PersonResponse{}, err
	}

	return person.ToResponse(created), nil
}

func (s *PersonServiceImpl) Update(ctx context.Context, t person.Type, req person.UpdatePersonRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	if req.PNO != nil {
		exists, err := s.personRepo.PNOExists(ctx, t, *req.PNO, req.ID)
		if err != nil {
			return fmt.Errorf("failed to check PNO uniqueness: %w", err)
		}
		if exists {
			return person.ErrPNOExists
		}
	}

	return s.personRepo.Update(ctx, t, req)
}

// Delete removes the person plus every dependent attendance and leave row
// in one transaction, so a hard delete cannot strand orphans.
func (s *PersonServiceImpl) Delete(ctx context.Context, t person.Type, id string) error {
	if _, err := s.personRepo.GetByID(ctx, t, id); err != nil {
		return err
	}

	return s.tx.WithinTx(ctx, func(txCtx context.Context) error {
		if err := s.attendanceRepo.DeleteByPerson(txCtx, t, id); err != nil {
			return fmt.Errorf("failed to delete attendance records: %w", err)
		}
		if err := s.leaveRepo.DeleteByPerson(txCtx, t, id); err != nil {
			return fmt.Errorf("failed to delete leave records: %w", err)
		}
		return s.personRepo.Delete(txCtx, t, id)
	})
}
