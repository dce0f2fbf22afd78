package archive

import (
	"context"

	"github.com/ptcportal/personnel-backend-go/internal/domain/person"
)

type ArchiveService interface {
	CreateFolder(ctx context.Context, req CreateFolderRequest) (FolderResponse, error)
	ListFolders(ctx context.Context, t *person.Type) ([]FolderResponse, error)

	// DeleteFolder deletes an empty folder directly. A non-empty folder is
	// rejected unless a target folder of the same record type is given, in
	// which case contents move there first, all in one transaction.
	DeleteFolder(ctx context.Context, req DeleteFolderRequest) error

	// ArchivePerson moves a live row into the archive table: copy, delete,
	// and folder count bump happen in one transaction.
	ArchivePerson(ctx context.Context, t person.Type, req ArchivePersonRequest, archivedBy string) (ArchivedPersonResponse, error)

	// UnarchivePerson is the exact inverse and is round-trip-safe for the
	// business fields.
	UnarchivePerson(ctx context.Context, t person.Type, archivedID string) (person.PersonResponse, error)

	ListFolderContents(ctx context.Context, t person.Type, folderID string) ([]ArchivedPersonResponse, error)

	// ReconcileFolderCounts repairs item_count drift against the actual
	// archived-row counts. Run periodically by the scheduler.
	ReconcileFolderCounts(ctx context.Context) error
}
