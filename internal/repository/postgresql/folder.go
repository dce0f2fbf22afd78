package postgresql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/ptcportal/personnel-backend-go/internal/domain/archive"
	"github.com/ptcportal/personnel-backend-go/internal/domain/person"
	"github.com/ptcportal/personnel-backend-go/internal/pkg/database"
)

type folderRepositoryImpl struct {
	db *database.DB
}

func NewFolderRepository(db *database.DB) archive.FolderRepository {
	return &folderRepositoryImpl{db: db}
}

const folderColumns = `id, folder_name, description, record_type, item_count, created_at, updated_at`

func scanFolder(row pgx.Row) (archive.Folder, error) {
	var f archive.Folder
	err := row.Scan(
		&f.ID, &f.Name, &f.Description, &f.RecordType, &f.ItemCount, &f.CreatedAt, &f.UpdatedAt,
	)
	return f, err
}

func (r *folderRepositoryImpl) Create(ctx context.Context, f archive.Folder) (archive.Folder, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO archive_folders (
			id, folder_name, description, record_type, item_count, created_at, updated_at
		) VALUES (
			$1, $2, $3, $4, 0, NOW(), NOW()
		) RETURNING item_count, created_at, updated_at
	`

	err := q.QueryRow(ctx, query, f.ID, f.Name, f.Description, f.RecordType).
		Scan(&f.ItemCount, &f.CreatedAt, &f.UpdatedAt)
	if err != nil {
		return archive.Folder{}, fmt.Errorf("failed to insert archive folder: %w", err)
	}

	return f, nil
}

func (r *folderRepositoryImpl) GetByID(ctx context.Context, id string) (archive.Folder, error) {
	q := GetQuerier(ctx, r.db)

	f, err := scanFolder(q.QueryRow(ctx,
		fmt.Sprintf("SELECT %s FROM archive_folders WHERE id = $1", folderColumns), id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return archive.Folder{}, archive.ErrFolderNotFound
		}
		return archive.Folder{}, err
	}
	return f, nil
}

func (r *folderRepositoryImpl) GetByName(ctx context.Context, t person.Type, name string) (archive.Folder, error) {
	q := GetQuerier(ctx, r.db)

	f, err := scanFolder(q.QueryRow(ctx,
		fmt.Sprintf("SELECT %s FROM archive_folders WHERE record_type = $1 AND folder_name = $2", folderColumns),
		t, name))
	if err != nil {
		if err == pgx.ErrNoRows {
			return archive.Folder{}, archive.ErrFolderNotFound
		}
		return archive.Folder{}, err
	}
	return f, nil
}

func (r *folderRepositoryImpl) List(ctx context.Context, t *person.Type) ([]archive.Folder, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf("SELECT %s FROM archive_folders", folderColumns)
	args := []interface{}{}
	if t != nil {
		query += " WHERE record_type = $1"
		args = append(args, *t)
	}
	query += " ORDER BY folder_name ASC"

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query archive folders: %w", err)
	}
	defer rows.Close()

	var folders []archive.Folder
	for rows.Next() {
		f, err := scanFolder(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan archive folder: %w", err)
		}
		folders = append(folders, f)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return folders, nil
}

func (r *folderRepositoryImpl) AdjustItemCount(ctx context.Context, id string, delta int) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE archive_folders
		SET item_count = item_count + $1, updated_at = NOW()
		WHERE id = $2
		RETURNING id
	`

	var updatedID string
	if err := q.QueryRow(ctx, query, delta, id).Scan(&updatedID); err != nil {
		if err == pgx.ErrNoRows {
			return archive.ErrFolderNotFound
		}
		return fmt.Errorf("failed to adjust item count for folder %s: %w", id, err)
	}
	return nil
}

func (r *folderRepositoryImpl) SetItemCount(ctx context.Context, id string, count int) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE archive_folders
		SET item_count = $1, updated_at = NOW()
		WHERE id = $2
		RETURNING id
	`

	var updatedID string
	if err := q.QueryRow(ctx, query, count, id).Scan(&updatedID); err != nil {
		if err == pgx.ErrNoRows {
			return archive.ErrFolderNotFound
		}
		return fmt.Errorf("failed to set item count for folder %s: %w", id, err)
	}
	return nil
}

func (r *folderRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	commandTag, err := q.Exec(ctx, "DELETE FROM archive_folders WHERE id = $1", id)
	if err != nil {
		return err
	}
	if commandTag.RowsAffected() != 1 {
		return archive.ErrFolderNotFound
	}
	return nil
}
