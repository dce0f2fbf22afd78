package postgresql

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/ptcportal/personnel-backend-go/internal/domain/person"
	"github.com/ptcportal/personnel-backend-go/internal/pkg/database"
)

type personRepositoryImpl struct {
	db *database.DB
}

func NewPersonRepository(db *database.DB) person.PersonRepository {
	return &personRepositoryImpl{db: db}
}

const personColumns = `id, pno, name, father_name, rank, district, blood_group, mobile_number,
		date_of_birth, date_of_joining, arrival_date, departure_date,
		home_address, nominee, photo_url, created_at, updated_at`

func scanPerson(row pgx.Row, t person.Type) (person.Person, error) {
	var p person.Person
	err := row.Scan(
		&p.ID, &p.PNO, &p.Name, &p.FatherName, &p.Rank, &p.District, &p.BloodGroup, &p.MobileNumber,
		&p.DateOfBirth, &p.DateOfJoining, &p.ArrivalDate, &p.DepartureDate,
		&p.HomeAddress, &p.Nominee, &p.PhotoURL, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return person.Person{}, err
	}
	p.Type = t
	return p, nil
}

func (r *personRepositoryImpl) Create(ctx context.Context, p person.Person) (person.Person, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		INSERT INTO %s (
			id, pno, name, father_name, rank, district, blood_group, mobile_number,
			date_of_birth, date_of_joining, arrival_date, departure_date,
			home_address, nominee, photo_url, created_at, updated_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8,
			$9, $10, $11, $12,
			$13, $14, $15, NOW(), NOW()
		) RETURNING created_at, updated_at
	`, personTable(p.Type))

	err := q.QueryRow(ctx, query,
		p.ID, p.PNO, p.Name, p.FatherName, p.Rank, p.District, p.BloodGroup, p.MobileNumber,
		p.DateOfBirth, p.DateOfJoining, p.ArrivalDate, p.DepartureDate,
		p.HomeAddress, p.Nominee, p.PhotoURL,
	).Scan(&p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return person.Person{}, fmt.Errorf("failed to insert %s record: %w", p.Type, err)
	}

	return p, nil
}

func (r *personRepositoryImpl) GetByID(ctx context.Context, t person.Type, id string) (person.Person, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`SELECT %s FROM %s WHERE id = $1`, personColumns, personTable(t))

	p, err := scanPerson(q.QueryRow(ctx, query, id), t)
	if err != nil {
		if err == pgx.ErrNoRows {
			return person.Person{}, person.ErrPersonNotFound
		}
		return person.Person{}, err
	}
	return p, nil
}

func (r *personRepositoryImpl) GetByPNO(ctx context.Context, t person.Type, pno string) (person.Person, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`SELECT %s FROM %s WHERE pno = $1`, personColumns, personTable(t))

	p, err := scanPerson(q.QueryRow(ctx, query, pno), t)
	if err != nil {
		if err == pgx.ErrNoRows {
			return person.Person{}, person.ErrPersonNotFound
		}
		return person.Person{}, err
	}
	return p, nil
}

func (r *personRepositoryImpl) List(ctx context.Context, t person.Type, filter person.PersonFilter) ([]person.Person, int64, error) {
	q := GetQuerier(ctx, r.db)
	table := personTable(t)

	whereClauses := []string{}
	args := []interface{}{}
	argIdx := 1

	if filter.Search != nil && *filter.Search != "" {
		whereClauses = append(whereClauses, fmt.Sprintf("(name ILIKE $%d OR pno ILIKE $%d)", argIdx, argIdx))
		args = append(args, "%"+*filter.Search+"%")
		argIdx++
	}
	if filter.Rank != nil && *filter.Rank != "" {
		whereClauses = append(whereClauses, fmt.Sprintf("rank = $%d", argIdx))
		args = append(args, *filter.Rank)
		argIdx++
	}
	if filter.District != nil && *filter.District != "" {
		whereClauses = append(whereClauses, fmt.Sprintf("district = $%d", argIdx))
		args = append(args, *filter.District)
		argIdx++
	}

	whereClause := ""
	if len(whereClauses) > 0 {
		whereClause = " WHERE " + strings.Join(whereClauses, " AND ")
	}

	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM %s%s", table, whereClause)
	var total int64
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count %s records: %w", t, err)
	}

	orderBy := "name"
	switch filter.SortBy {
	case "pno":
		orderBy = "pno"
	case "rank":
		orderBy = "rank"
	case "date_of_joining":
		orderBy = "date_of_joining"
	}
	if strings.ToLower(filter.SortOrder) == "desc" {
		orderBy += " DESC"
	} else {
		orderBy += " ASC"
	}

	if filter.Page == 0 {
		filter.Page = 1
	}
	if filter.Limit == 0 {
		filter.Limit = 20
	}
	offset := (filter.Page - 1) * filter.Limit

	query := fmt.Sprintf(`SELECT %s FROM %s%s ORDER BY %s LIMIT $%d OFFSET $%d`,
		personColumns, table, whereClause, orderBy, argIdx, argIdx+1)
	args = append(args, filter.Limit, offset)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query %s records: %w", t, err)
	}
	defer rows.Close()

	var persons []person.Person
	for rows.Next() {
		p, err := scanPerson(rows, t)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan %s record: %w", t, err)
		}
		persons = append(persons, p)
	}
	if err = rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("rows iteration error: %w", err)
	}

	return persons, total, nil
}

func (r *personRepositoryImpl) Update(ctx context.Context, t person.Type, req person.UpdatePersonRequest) error {
	q := GetQuerier(ctx, r.db)

	updates := make([]string, 0)
	args := make([]interface{}, 0)
	argIdx := 1

	appendSet := func(column string, value interface{}) {
		updates = append(updates, fmt.Sprintf("%s = $%d", column, argIdx))
		args = append(args, value)
		argIdx++
	}

	if req.PNO != nil {
		appendSet("pno", *req.PNO)
	}
	if req.Name != nil {
		appendSet("name", *req.Name)
	}
	if req.FatherName != nil {
		appendSet("father_name", *req.FatherName)
	}
	if req.Rank != nil {
		appendSet("rank", *req.Rank)
	}
	if req.District != nil {
		appendSet("district", *req.District)
	}
	if req.BloodGroup != nil {
		appendSet("blood_group", *req.BloodGroup)
	}
	if req.MobileNumber != nil {
		appendSet("mobile_number", *req.MobileNumber)
	}
	if req.DateOfBirth != nil {
		appendSet("date_of_birth", *req.DateOfBirth)
	}
	if req.DateOfJoining != nil {
		appendSet("date_of_joining", *req.DateOfJoining)
	}
	if req.ArrivalDate != nil {
		appendSet("arrival_date", *req.ArrivalDate)
	}
	if req.DepartureDate != nil {
		appendSet("departure_date", *req.DepartureDate)
	}
	if req.HomeAddress != nil {
		appendSet("home_address", *req.HomeAddress)
	}
	if req.Nominee != nil {
		appendSet("nominee", *req.Nominee)
	}
	if req.PhotoURL != nil {
		appendSet("photo_url", *req.PhotoURL)
	}

	if len(updates) == 0 {
		return fmt.Errorf("no updatable fields provided for person update")
	}

	appendSet("updated_at", time.Now())
	args = append(args, req.ID)

	sql := fmt.Sprintf("UPDATE %s SET %s WHERE id = $%d RETURNING id",
		personTable(t), strings.Join(updates, ", "), argIdx)

	var updatedID string
	if err := q.QueryRow(ctx, sql, args...).Scan(&updatedID); err != nil {
		if err == pgx.ErrNoRows {
			return person.ErrPersonNotFound
		}
		return fmt.Errorf("failed to update %s record with id %s: %w", t, req.ID, err)
	}
	return nil
}

func (r *personRepositoryImpl) Delete(ctx context.Context, t person.Type, id string) error {
	q := GetQuerier(ctx, r.db)

	commandTag, err := q.Exec(ctx, fmt.Sprintf("DELETE FROM %s WHERE id = $1", personTable(t)), id)
	if err != nil {
		return err
	}
	if commandTag.RowsAffected() != 1 {
		return person.ErrPersonNotFound
	}
	return nil
}

func (r *personRepositoryImpl) PNOExists(ctx context.Context, t person.Type, pno string, excludeID string) (bool, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`SELECT EXISTS (SELECT 1 FROM %s WHERE pno = $1 AND id <> $2)`, personTable(t))

	var exists bool
	err := q.QueryRow(ctx, query, pno, excludeID).Scan(&exists)
	return exists, err
}
