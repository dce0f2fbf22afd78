package postgresql

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/ptcportal/personnel-backend-go/internal/domain/approval"
	"github.com/ptcportal/personnel-backend-go/internal/domain/attendance"
	"github.com/ptcportal/personnel-backend-go/internal/domain/person"
	"github.com/ptcportal/personnel-backend-go/internal/pkg/database"
)

// Attendance tables persist the approval state in the approval_status
// column; leave tables call the same concept status. The asymmetry is a
// legacy schema fact and stays confined to this package.
type attendanceRepositoryImpl struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepositoryImpl{db: db}
}

const attendanceColumns = `a.id, a.person_id, a.date, a.status, a.reason,
		a.approval_status, a.decided_by, a.decided_at, a.created_at, a.updated_at`

func scanAttendance(row pgx.Row) (attendance.Record, error) {
	var rec attendance.Record
	err := row.Scan(
		&rec.ID, &rec.PersonID, &rec.Date, &rec.Status, &rec.Reason,
		&rec.Approval, &rec.DecidedBy, &rec.DecidedAt, &rec.CreatedAt, &rec.UpdatedAt,
	)
	return rec, err
}

func (r *attendanceRepositoryImpl) Upsert(ctx context.Context, t person.Type, rec attendance.Record) (attendance.Record, error) {
	q := GetQuerier(ctx, r.db)
	table := attendanceTable(t)

	// The legacy schema has no unique constraint on (person_id, date);
	// update-then-insert keeps one row per person per day. Callers holding
	// a transaction make the pair atomic.
	updateQuery := fmt.Sprintf(`
		UPDATE %s
		SET status = $1, reason = $2, approval_status = $3, decided_by = $4, decided_at = $5, updated_at = NOW()
		WHERE person_id = $6 AND date = $7
		RETURNING id, created_at, updated_at
	`, table)

	err := q.QueryRow(ctx, updateQuery,
		rec.Status, rec.Reason, rec.Approval, rec.DecidedBy, rec.DecidedAt,
		rec.PersonID, rec.Date,
	).Scan(&rec.ID, &rec.CreatedAt, &rec.UpdatedAt)
	if err == nil {
		return rec, nil
	}
	if err != pgx.ErrNoRows {
		return attendance.Record{}, fmt.Errorf("failed to upsert attendance record: %w", err)
	}

	insertQuery := fmt.Sprintf(`
		INSERT INTO %s (
			id, person_id, date, status, reason,
			approval_status, decided_by, decided_at, created_at, updated_at
		) VALUES (
			$1, $2, $3, $4, $5,
			$6, $7, $8, NOW(), NOW()
		) RETURNING created_at, updated_at
	`, table)

	err = q.QueryRow(ctx, insertQuery,
		rec.ID, rec.PersonID, rec.Date, rec.Status, rec.Reason,
		rec.Approval, rec.DecidedBy, rec.DecidedAt,
	).Scan(&rec.CreatedAt, &rec.UpdatedAt)
	if err != nil {
		return attendance.Record{}, fmt.Errorf("failed to insert attendance record: %w", err)
	}

	return rec, nil
}

func (r *attendanceRepositoryImpl) GetByID(ctx context.Context, t person.Type, id string) (attendance.Record, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`SELECT %s FROM %s a WHERE a.id = $1`, attendanceColumns, attendanceTable(t))

	rec, err := scanAttendance(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return attendance.Record{}, attendance.ErrAttendanceNotFound
		}
		return attendance.Record{}, err
	}
	return rec, nil
}

func (r *attendanceRepositoryImpl) GetByPersonAndDate(ctx context.Context, t person.Type, personID string, date time.Time) (attendance.Record, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`SELECT %s FROM %s a WHERE a.person_id = $1 AND a.date = $2`,
		attendanceColumns, attendanceTable(t))

	rec, err := scanAttendance(q.QueryRow(ctx, query, personID, date))
	if err != nil {
		if err == pgx.ErrNoRows {
			return attendance.Record{}, attendance.ErrAttendanceNotFound
		}
		return attendance.Record{}, err
	}
	return rec, nil
}

func (r *attendanceRepositoryImpl) List(ctx context.Context, t person.Type, filter attendance.RecordFilter) ([]attendance.Record, int64, error) {
	q := GetQuerier(ctx, r.db)

	whereClauses := []string{}
	args := []interface{}{}
	argIdx := 1

	if filter.PersonID != nil && *filter.PersonID != "" {
		whereClauses = append(whereClauses, fmt.Sprintf("a.person_id = $%d", argIdx))
		args = append(args, *filter.PersonID)
		argIdx++
	}
	if filter.Status != nil && *filter.Status != "" {
		whereClauses = append(whereClauses, fmt.Sprintf("a.status = $%d", argIdx))
		args = append(args, *filter.Status)
		argIdx++
	}
	if filter.Approval != nil && *filter.Approval != "" {
		whereClauses = append(whereClauses, fmt.Sprintf("a.approval_status = $%d", argIdx))
		args = append(args, *filter.Approval)
		argIdx++
	}
	if filter.From != nil {
		whereClauses = append(whereClauses, fmt.Sprintf("a.date >= $%d", argIdx))
		args = append(args, *filter.From)
		argIdx++
	}
	if filter.To != nil {
		whereClauses = append(whereClauses, fmt.Sprintf("a.date <= $%d", argIdx))
		args = append(args, *filter.To)
		argIdx++
	}

	whereClause := ""
	if len(whereClauses) > 0 {
		whereClause = " WHERE " + strings.Join(whereClauses, " AND ")
	}

	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM %s a%s", attendanceTable(t), whereClause)
	var total int64
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count attendance records: %w", err)
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
		FROM %s a
		INNER JOIN %s p ON a.person_id = p.id
		%s
		ORDER BY a.date DESC
		LIMIT $%d OFFSET $%d
	`, attendanceColumns, attendanceTable(t), personTable(t), whereClause, argIdx, argIdx+1)
	args = append(args, filter.Limit, offset)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query attendance records: %w", err)
	}
	defer rows.Close()

	var records []attendance.Record
	for rows.Next() {
		var rec attendance.Record
		var personName, personPNO string
		err := rows.Scan(
			&rec.ID, &rec.PersonID, &rec.Date, &rec.Status, &rec.Reason,
			&rec.Approval, &rec.DecidedBy, &rec.DecidedAt, &rec.CreatedAt, &rec.UpdatedAt,
			&personName, &personPNO,
		)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan attendance record: %w", err)
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

func (r *attendanceRepositoryImpl) Update(ctx context.Context, t person.Type, req attendance.UpdateRecordRequest, newApproval *approval.State) error {
	q := GetQuerier(ctx, r.db)

	updates := make([]string, 0)
	args := make([]interface{}, 0)
	argIdx := 1

	if req.Date != nil {
		updates = append(updates, fmt.Sprintf("date = $%d", argIdx))
		args = append(args, *req.Date)
		argIdx++
	}
	if req.Status != nil {
		updates = append(updates, fmt.Sprintf("status = $%d", argIdx))
		args = append(args, *req.Status)
		argIdx++
	}
	if req.Reason != nil {
		updates = append(updates, fmt.Sprintf("reason = $%d", argIdx))
		args = append(args, *req.Reason)
		argIdx++
	}
	if newApproval != nil {
		updates = append(updates, fmt.Sprintf("approval_status = $%d, decided_by = NULL, decided_at = NULL", argIdx))
		args = append(args, *newApproval)
		argIdx++
	}

	if len(updates) == 0 {
		return fmt.Errorf("no updatable fields provided for attendance update")
	}

	updates = append(updates, fmt.Sprintf("updated_at = $%d", argIdx))
	args = append(args, time.Now())
	argIdx++
	args = append(args, req.ID)

	sql := fmt.Sprintf("UPDATE %s SET %s WHERE id = $%d RETURNING id",
		attendanceTable(t), strings.Join(updates, ", "), argIdx)

	var updatedID string
	if err := q.QueryRow(ctx, sql, args...).Scan(&updatedID); err != nil {
		if err == pgx.ErrNoRows {
			return attendance.ErrAttendanceNotFound
		}
		return fmt.Errorf("failed to update attendance record with id %s: %w", req.ID, err)
	}
	return nil
}

func (r *attendanceRepositoryImpl) UpdateApproval(ctx context.Context, t person.Type, id string, state approval.State, decidedBy string) error {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		UPDATE %s
		SET approval_status = $1, decided_by = $2, decided_at = $3, updated_at = NOW()
		WHERE id = $4
		RETURNING id
	`, attendanceTable(t))

	var updatedID string
	err := q.QueryRow(ctx, query, state, decidedBy, time.Now(), id).Scan(&updatedID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return attendance.ErrAttendanceNotFound
		}
		return fmt.Errorf("failed to update approval for attendance record %s: %w", id, err)
	}
	return nil
}

func (r *attendanceRepositoryImpl) Delete(ctx context.Context, t person.Type, id string) error {
	q := GetQuerier(ctx, r.db)

	commandTag, err := q.Exec(ctx, fmt.Sprintf("DELETE FROM %s WHERE id = $1", attendanceTable(t)), id)
	if err != nil {
		return err
	}
	if commandTag.RowsAffected() != 1 {
		return attendance.ErrAttendanceNotFound
	}
	return nil
}

func (r *attendanceRepositoryImpl) DeleteByPerson(ctx context.Context, t person.Type, personID string) error {
	q := GetQuerier(ctx, r.db)

	_, err := q.Exec(ctx, fmt.Sprintf("DELETE FROM %s WHERE person_id = $1", attendanceTable(t)), personID)
	return err
}
