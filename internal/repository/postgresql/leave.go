package postgresql

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/ptcportal/personnel-backend-go/internal/domain/approval"
	"github.com/ptcportal/personnel-backend-go/internal/domain/leave"
	"github.com/ptcportal/personnel-backend-go/internal/domain/person"
	"github.com/ptcportal/personnel-backend-go/internal/pkg/database"
)

// Leave tables persist the approval state in the status column.
type leaveRepositoryImpl struct {
	db *database.DB
}

func NewLeaveRepository(db *database.DB) leave.LeaveRepository {
	return &leaveRepositoryImpl{db: db}
}

const leaveColumns = `l.id, l.person_id, l.start_date, l.end_date, l.leave_type, l.reason,
		l.status, l.decided_by, l.decided_at, l.created_at, l.updated_at`

func (r *leaveRepositoryImpl) Create(ctx context.Context, t person.Type, rec leave.Record) (leave.Record, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		INSERT INTO %s (
			id, person_id, start_date, end_date, leave_type, reason,
			status, created_at, updated_at
		) VALUES (
			$1, $2, $3, $4, $5, $6,
			$7, NOW(), NOW()
		) RETURNING created_at, updated_at
	`, leaveTable(t))

	err := q.QueryRow(ctx, query,
		rec.ID, rec.PersonID, rec.StartDate, rec.EndDate, rec.LeaveType, rec.Reason,
		rec.Approval,
	).Scan(&rec.CreatedAt, &rec.UpdatedAt)
	if err != nil {
		return leave.Record{}, fmt.Errorf("failed to insert leave record: %w", err)
	}

	return rec, nil
}

func (r *leaveRepositoryImpl) GetByID(ctx context.Context, t person.Type, id string) (leave.Record, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		SELECT %s, p.name as person_name, p.pno as person_pno
		FROM %s l
		INNER JOIN %s p ON l.person_id = p.id
		WHERE l.id = $1
	`, leaveColumns, leaveTable(t), personTable(t))

	var rec leave.Record
	var personName, personPNO string
	err := q.QueryRow(ctx, query, id).Scan(
		&rec.ID, &rec.PersonID, &rec.StartDate, &rec.EndDate, &rec.LeaveType, &rec.Reason,
		&rec.Approval, &rec.DecidedBy, &rec.DecidedAt, &rec.CreatedAt, &rec.UpdatedAt,
		&personName, &personPNO,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return leave.Record{}, leave.ErrLeaveNotFound
		}
		return leave.Record{}, err
	}
	rec.PersonName = &personName
	rec.PersonPNO = &personPNO

	return rec, nil
}

func (r *leaveRepositoryImpl) List(ctx context.Context, t person.Type, filter leave.RecordFilter) ([]leave.Record, int64, error) {
	q := GetQuerier(ctx, r.db)

	whereClauses := []string{}
	args := []interface{}{}
	argIdx := 1

	if filter.PersonID != nil && *filter.PersonID != "" {
		whereClauses = append(whereClauses, fmt.Sprintf("l.person_id = $%d", argIdx))
		args = append(args, *filter.PersonID)
		argIdx++
	}
	if filter.Approval != nil && *filter.Approval != "" {
		whereClauses = append(whereClauses, fmt.Sprintf("l.status = $%d", argIdx))
		args = append(args, *filter.Approval)
		argIdx++
	}
	if filter.LeaveType != nil && *filter.LeaveType != "" {
		whereClauses = append(whereClauses, fmt.Sprintf("l.leave_type = $%d", argIdx))
		args = append(args, *filter.LeaveType)
		argIdx++
	}
	if filter.From != nil {
		whereClauses = append(whereClauses, fmt.Sprintf("l.start_date >= $%d", argIdx))
		args = append(args, *filter.From)
		argIdx++
	}
	if filter.To != nil {
		whereClauses = append(whereClauses, fmt.Sprintf("l.end_date <= $%d", argIdx))
		args = append(args, *filter.To)
		argIdx++
	}

	whereClause := ""
	if len(whereClauses) > 0 {
		whereClause = " WHERE " + strings.Join(whereClauses, " AND ")
	}

	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM %s l%s", leaveTable(t), whereClause)
	var total int64
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count leave records: %w", err)
	}

	if filter.Page == 0 {
		filter.Page = 1
	}
	if filter.Limit == 0 {
		filter.Limit = 20
	}
	offset := (filter.Page - 1) * filter.Limit

	query := fmt.Sprintf(`
		SELECT %s, p.name as person_name, p.pno as person_pno
		FROM %s l
		INNER JOIN %s p ON l.person_id = p.id
		%s
		ORDER BY l.start_date DESC
		LIMIT $%d OFFSET $%d
	`, leaveColumns, leaveTable(t), personTable(t), whereClause, argIdx, argIdx+1)
	args = append(args, filter.Limit, offset)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query leave records: %w", err)
	}
	defer rows.Close()

	var records []leave.Record
	for rows.Next() {
		var rec leave.Record
		var personName, personPNO string
		err := rows.Scan(
			&rec.ID, &rec.PersonID, &rec.StartDate, &rec.EndDate, &rec.LeaveType, &rec.Reason,
			&rec.Approval, &rec.DecidedBy, &rec.DecidedAt, &rec.CreatedAt, &rec.UpdatedAt,
			&personName, &personPNO,
		)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan leave record: %w", err)
		}
		rec.PersonName = &personName
		rec.PersonPNO = &personPNO
		records = append(records, rec)
	}
	if err = rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("rows iteration error: %w", err)
	}

	return records, total, nil
}

func (r *leaveRepositoryImpl) Update(ctx context.Context, t person.Type, req leave.UpdateLeaveRequest, newApproval *approval.State) error {
	q := GetQuerier(ctx, r.db)

	updates := make([]string, 0)
	args := make([]interface{}, 0)
	argIdx := 1

	if req.StartDate != nil {
		updates = append(updates, fmt.Sprintf("start_date = $%d", argIdx))
		args = append(args, *req.StartDate)
		argIdx++
	}
	if req.EndDate != nil {
		updates = append(updates, fmt.Sprintf("end_date = $%d", argIdx))
		args = append(args, *req.EndDate)
		argIdx++
	}
	if req.LeaveType != nil {
		updates = append(updates, fmt.Sprintf("leave_type = $%d", argIdx))
		args = append(args, *req.LeaveType)
		argIdx++
	}
	if req.Reason != nil {
		updates = append(updates, fmt.Sprintf("reason = $%d", argIdx))
		args = append(args, *req.Reason)
		argIdx++
	}
	if newApproval != nil {
		updates = append(updates, fmt.Sprintf("status = $%d, decided_by = NULL, decided_at = NULL", argIdx))
		args = append(args, *newApproval)
		argIdx++
	}

	if len(updates) == 0 {
		return fmt.Errorf("no updatable fields provided for leave update")
	}

	updates = append(updates, fmt.Sprintf("updated_at = $%d", argIdx))
	args = append(args, time.Now())
	argIdx++
	args = append(args, req.ID)

	sql := fmt.Sprintf("UPDATE %s SET %s WHERE id = $%d RETURNING id",
		leaveTable(t), strings.Join(updates, ", "), argIdx)

	var updatedID string
	if err := q.QueryRow(ctx, sql, args...).Scan(&updatedID); err != nil {
		if err == pgx.ErrNoRows {
			return leave.ErrLeaveNotFound
		}
		return fmt.Errorf("failed to update leave record with id %s: %w", req.ID, err)
	}
	return nil
}

func (r *leaveRepositoryImpl) UpdateApproval(ctx context.Context, t person.Type, id string, state approval.State, decidedBy string) error {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		UPDATE %s
		SET status = $1, decided_by = $2, decided_at = $3, updated_at = NOW()
		WHERE id = $4
		RETURNING id
	`, leaveTable(t))

	var updatedID string
	err := q.QueryRow(ctx, query, state, decidedBy, time.Now(), id).Scan(&updatedID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return leave.ErrLeaveNotFound
		}
		return fmt.Errorf("failed to update approval for leave record %s: %w", id, err)
	}
	return nil
}

func (r *leaveRepositoryImpl) Delete(ctx context.Context, t person.Type, id string) error {
	q := GetQuerier(ctx, r.db)

	commandTag, err := q.Exec(ctx, fmt.Sprintf("DELETE FROM %s WHERE id = $1", leaveTable(t)), id)
	if err != nil {
		return err
	}
	if commandTag.RowsAffected() != 1 {
		return leave.ErrLeaveNotFound
	}
	return nil
}

func (r *leaveRepositoryImpl) DeleteByPerson(ctx context.Context, t person.Type, personID string) error {
	q := GetQuerier(ctx, r.db)

	_, err := q.Exec(ctx, fmt.Sprintf("DELETE FROM %s WHERE person_id = $1", leaveTable(t)), personID)
	return err
}

func (r *leaveRepositoryImpl) HasOverlap(ctx context.Context, t person.Type, personID string, start, end time.Time, excludeID string) (bool, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		SELECT EXISTS (
			SELECT 1
			FROM %s
			WHERE person_id = $1
			AND id <> $2
			AND status IN ('pending', 'approved')
			AND start_date <= $4
			AND end_date >= $3
		)
	`, leaveTable(t))

	var exists bool
	err := q.QueryRow(ctx, query, personID, excludeID, start, end).Scan(&exists)
	return exists, err
}
