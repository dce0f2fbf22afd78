package postgresql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/ptcportal/personnel-backend-go/internal/domain/archive"
	"github.com/ptcportal/personnel-backend-go/internal/domain/person"
	"github.com/ptcportal/personnel-backend-go/internal/pkg/database"
)

type archivedPersonRepositoryImpl struct {
	db *database.DB
}

func NewArchivedPersonRepository(db *database.DB) archive.ArchivedPersonRepository {
	return &archivedPersonRepositoryImpl{db: db}
}

const archivedColumns = `id, pno, name, father_name, rank, district, blood_group, mobile_number,
		date_of_birth, date_of_joining, arrival_date, departure_date,
		home_address, nominee, photo_url, created_at, updated_at,
		folder_id, archived_at, archived_by`

func scanArchivedPerson(row pgx.Row, t person.Type) (archive.ArchivedPerson, error) {
	var p archive.ArchivedPerson
	err := row.Scan(
		&p.ID, &p.PNO, &p.Name, &p.FatherName, &p.Rank, &p.District, &p.BloodGroup, &p.MobileNumber,
		&p.DateOfBirth, &p.DateOfJoining, &p.ArrivalDate, &p.DepartureDate,
		&p.HomeAddress, &p.Nominee, &p.PhotoURL, &p.CreatedAt, &p.UpdatedAt,
		&p.FolderID, &p.ArchivedAt, &p.ArchivedBy,
	)
	if err != nil {
		return archive.ArchivedPerson{}, err
	}
	p.Person.Type = t
	return p, nil
}

func (r *archivedPersonRepositoryImpl) Insert(ctx context.Context, t person.Type, p archive.ArchivedPerson) (archive.ArchivedPerson, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		INSERT INTO %s (
			id, pno, name, father_name, rank, district, blood_group, mobile_number,
			date_of_birth, date_of_joining, arrival_date, departure_date,
			home_address, nominee, photo_url, created_at, updated_at,
			folder_id, archived_at, archived_by
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8,
			$9, $10, $11, $12,
			$13, $14, $15, $16, NOW(),
			$17, $18, $19
		) RETURNING updated_at
	`, archiveTable(t))

	err := q.QueryRow(ctx, query,
		p.ID, p.PNO, p.Name, p.FatherName, p.Rank, p.District, p.BloodGroup, p.MobileNumber,
		p.DateOfBirth, p.DateOfJoining, p.ArrivalDate, p.DepartureDate,
		p.HomeAddress, p.Nominee, p.PhotoURL, p.CreatedAt,
		p.FolderID, p.ArchivedAt, p.ArchivedBy,
	).Scan(&p.UpdatedAt)
	if err != nil {
		return archive.ArchivedPerson{}, fmt.Errorf("failed to insert archived %s record: %w", t, err)
	}

	return p, nil
}

func (r *archivedPersonRepositoryImpl) GetByID(ctx context.Context, t person.Type, id string) (archive.ArchivedPerson, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`SELECT %s FROM %s WHERE id = $1`, archivedColumns, archiveTable(t))

	p, err := scanArchivedPerson(q.QueryRow(ctx, query, id), t)
	if err != nil {
		if err == pgx.ErrNoRows {
			return archive.ArchivedPerson{}, archive.ErrArchivedPersonNotFound
		}
		return archive.ArchivedPerson{}, err
	}
	return p, nil
}

func (r *archivedPersonRepositoryImpl) ListByFolder(ctx context.Context, t person.Type, folderID string) ([]archive.ArchivedPerson, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`SELECT %s FROM %s WHERE folder_id = $1 ORDER BY archived_at DESC`,
		archivedColumns, archiveTable(t))

	rows, err := q.Query(ctx, query, folderID)
	if err != nil {
		return nil, fmt.Errorf("failed to query archived %s records: %w", t, err)
	}
	defer rows.Close()

	var persons []archive.ArchivedPerson
	for rows.Next() {
		p, err := scanArchivedPerson(rows, t)
		if err != nil {
			return nil, fmt.Errorf("failed to scan archived %s record: %w", t, err)
		}
		persons = append(persons, p)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return persons, nil
}

func (r *archivedPersonRepositoryImpl) CountByFolder(ctx context.Context, t person.Type, folderID string) (int, error) {
	q := GetQuerier(ctx, r.db)

	var count int
	err := q.QueryRow(ctx,
		fmt.Sprintf("SELECT COUNT(*) FROM %s WHERE folder_id = $1", archiveTable(t)), folderID,
	).Scan(&count)
	return count, err
}

func (r *archivedPersonRepositoryImpl) Reassign(ctx context.Context, t person.Type, fromFolderID, toFolderID string) (int, error) {
	q := GetQuerier(ctx, r.db)

	commandTag, err := q.Exec(ctx,
		fmt.Sprintf("UPDATE %s SET folder_id = $1, updated_at = NOW() WHERE folder_id = $2", archiveTable(t)),
		toFolderID, fromFolderID,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to reassign archived %s records: %w", t, err)
	}
	return int(commandTag.RowsAffected()), nil
}

func (r *archivedPersonRepositoryImpl) Delete(ctx context.Context, t person.Type, id string) error {
	q := GetQuerier(ctx, r.db)

	commandTag, err := q.Exec(ctx, fmt.Sprintf("DELETE FROM %s WHERE id = $1", archiveTable(t)), id)
	if err != nil {
		return err
	}
	if commandTag.RowsAffected() != 1 {
		return archive.ErrArchivedPersonNotFound
	}
	return nil
}
