package archive

import (
	"context"

	"github.com/ptcportal/personnel-backend-go/internal/domain/person"
)

// FolderRepository - interface for the archive_folders table
type FolderRepository interface {
	Create(ctx context.Context, f Folder) (Folder, error)
	GetByID(ctx context.Context, id string) (Folder, error)
	GetByName(ctx context.Context, t person.Type, name string) (Folder, error)
	List(ctx context.Context, t *person.Type) ([]Folder, error)
	AdjustItemCount(ctx context.Context, id string, delta int) error
	SetItemCount(ctx context.Context, id string, count int) error
	Delete(ctx context.Context, id string) error
}

// ArchivedPersonRepository - interface for the archived_staff /
// archived_trainees tables
type ArchivedPersonRepository interface {
	Insert(ctx context.Context, t person.Type, p ArchivedPerson) (ArchivedPerson, error)
	GetByID(ctx context.Context, t person.Type, id string) (ArchivedPerson, error)
	ListByFolder(ctx context.Context, t person.Type, folderID string) ([]ArchivedPerson, error)
	CountByFolder(ctx context.Context, t person.Type, folderID string) (int, error)
	Reassign(ctx context.Context, t person.Type, fromFolderID, toFolderID string) (int, error)
	Delete(ctx context.Context, t person.Type, id string) error
}
