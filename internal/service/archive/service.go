package archive

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/ptcportal/personnel-backend-go/internal/domain/archive"
	"github.com/ptcportal/personnel-backend-go/internal/domain/person"
	"github.com/ptcportal/personnel-backend-go/internal/pkg/database"
)

type ArchiveServiceImpl struct {
	tx           database.TxManager
	folderRepo   archive.FolderRepository
	archivedRepo archive.ArchivedPersonRepository
	personRepo   person.PersonRepository
}

func NewArchiveService(
	tx database.TxManager,
	folderRepo archive.FolderRepository,
	archivedRepo archive.ArchivedPersonRepository,
	personRepo person.PersonRepository,
) archive.ArchiveService {
	return &ArchiveServiceImpl{
		tx:           tx,
		folderRepo:   folderRepo,
		archivedRepo: archivedRepo,
		personRepo:   personRepo,
	}
}

func (s *ArchiveServiceImpl) CreateFolder(ctx context.Context, req archive.CreateFolderRequest) (archive.FolderResponse, error) {
	if err := req.Validate(); err != nil {
		return archive.FolderResponse{}, err
	}

	recordType, _ := person.ParseType(req.RecordType)

	_, err := s.folderRepo.GetByName(ctx, recordType, req.Name)
	if err == nil {
		return archive.FolderResponse{}, archive.ErrFolderExists
	}
	if !errors.Is(err, archive.ErrFolderNotFound) {
		return archive.FolderResponse{}, fmt.Errorf("failed to check folder name: %w", err)
	}

	folder := archive.Folder{
		ID:          uuid.NewString(),
		Name:        req.Name,
		Description: req.Description,
		RecordType:  recordType,
	}

	created, err := s.folderRepo.Create(ctx, folder)
	if err != nil {
		return archive.FolderResponse{}, err
	}

	return archive.ToFolderResponse(created), nil
}

func (s *ArchiveServiceImpl) ListFolders(ctx context.Context, t *person.Type) ([]archive.FolderResponse, error) {
	folders, err := s.folderRepo.List(ctx, t)
	if err != nil {
		return nil, fmt.Errorf("failed to list archive folders: %w", err)
	}

	responses := make([]archive.FolderResponse, 0, len(folders))
	for _, f := range folders {
		responses = append(responses, archive.ToFolderResponse(f))
	}
	return responses, nil
}

// DeleteFolder refuses to touch a non-empty folder unless a target folder
// of the same record type is given. The reassignment, both count fixes and
// the delete run in one transaction.
func (s *ArchiveServiceImpl) DeleteFolder(ctx context.Context, req archive.DeleteFolderRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	folder, err := s.folderRepo.GetByID(ctx, req.FolderID)
	if err != nil {
		return err
	}

	if folder.ItemCount == 0 {
		return s.folderRepo.Delete(ctx, req.FolderID)
	}

	if req.TargetFolderID == nil {
		return archive.ErrFolderNotEmpty
	}

	target, err := s.folderRepo.GetByID(ctx, *req.TargetFolderID)
	if err != nil {
		return err
	}
	if target.RecordType != folder.RecordType {
		return archive.ErrFolderTypeMismatch
	}

	return s.tx.WithinTx(ctx, func(txCtx context.Context) error {
		moved, err := s.archivedRepo.Reassign(txCtx, folder.RecordType, folder.ID, target.ID)
		if err != nil {
			return err
		}
		if err := s.folderRepo.AdjustItemCount(txCtx, target.ID, moved); err != nil {
			return err
		}
		return s.folderRepo.Delete(txCtx, folder.ID)
	})
}

// ArchivePerson copies the live row into the archive table, deletes the
// live row and bumps the folder count, all in one transaction. A failure
// anywhere leaves the person live and unarchived.
func (s *ArchiveServiceImpl) ArchivePerson(ctx context.Context, t person.Type, req archive.ArchivePersonRequest, archivedBy string) (archive.ArchivedPersonResponse, error) {
	if err := req.Validate(); err != nil {
		return archive.ArchivedPersonResponse{}, err
	}

	folder, err := s.folderRepo.GetByID(ctx, req.FolderID)
	if err != nil {
		return archive.ArchivedPersonResponse{}, err
	}
	if folder.RecordType != t {
		return archive.ArchivedPersonResponse{}, archive.ErrFolderTypeMismatch
	}

	p, err := s.personRepo.GetByID(ctx, t, req.PersonID)
	if err != nil {
		return archive.ArchivedPersonResponse{}, err
	}

	archived := archive.ArchivedPerson{
		Person:     p,
		FolderID:   folder.ID,
		ArchivedAt: time.Now(),
		ArchivedBy: archivedBy,
	}

	err = s.tx.WithinTx(ctx, func(txCtx context.Context) error {
		var txErr error
		archived, txErr = s.archivedRepo.Insert(txCtx, t, archived)
		if txErr != nil {
			return txErr
		}
		if txErr = s.personRepo.Delete(txCtx, t, p.ID); txErr != nil {
			return txErr
		}
		return s.folderRepo.AdjustItemCount(txCtx, folder.ID, 1)
	})
	if err != nil {
		return archive.ArchivedPersonResponse{}, fmt.Errorf("failed to archive %s record: %w", t, err)
	}

	return archive.ToArchivedPersonResponse(archived), nil
}

// UnarchivePerson is the exact inverse of ArchivePerson: re-insert into the
// live table, delete the archive row, drop the folder count.
func (s *ArchiveServiceImpl) UnarchivePerson(ctx context.Context, t person.Type, archivedID string) (person.PersonResponse, error) {
	archived, err := s.archivedRepo.GetByID(ctx, t, archivedID)
	if err != nil {
		return person.PersonResponse{}, err
	}

	restored := archived.Person
	err = s.tx.WithinTx(ctx, func(txCtx context.Context) error {
		var txErr error
		restored, txErr = s.personRepo.Create(txCtx, restored)
		if txErr != nil {
			return txErr
		}
		if txErr = s.archivedRepo.Delete(txCtx, t, archivedID); txErr != nil {
			return txErr
		}
		return s.folderRepo.AdjustItemCount(txCtx, archived.FolderID, -1)
	})
	if err != nil {
		return person.PersonResponse{}, fmt.Errorf("failed to unarchive %s record: %w", t, err)
	}

	return person.ToResponse(restored), nil
}

func (s *ArchiveServiceImpl) ListFolderContents(ctx context.Context, t person.Type, folderID string) ([]archive.ArchivedPersonResponse, error) {
	if _, err := s.folderRepo.GetByID(ctx, folderID); err != nil {
		return nil, err
	}

	persons, err := s.archivedRepo.ListByFolder(ctx, t, folderID)
	if err != nil {
		return nil, fmt.Errorf("failed to list folder contents: %w", err)
	}

	responses := make([]archive.ArchivedPersonResponse, 0, len(persons))
	for _, p := range persons {
		responses = append(responses, archive.ToArchivedPersonResponse(p))
	}
	return responses, nil
}

// ReconcileFolderCounts repairs item_count drift against the actual row
// counts. Rows touched outside this service (manual SQL fixes, legacy
// imports) are the only way counts drift now that mutations are
// transactional.
func (s *ArchiveServiceImpl) ReconcileFolderCounts(ctx context.Context) error {
	folders, err := s.folderRepo.List(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to list folders for reconciliation: %w", err)
	}

	for _, folder := range folders {
		actual, err := s.archivedRepo.CountByFolder(ctx, folder.RecordType, folder.ID)
		if err != nil {
			return fmt.Errorf("failed to count folder %s: %w", folder.ID, err)
		}
		if actual == folder.ItemCount {
			continue
		}
		if err := s.folderRepo.SetItemCount(ctx, folder.ID, actual); err != nil {
			return err
		}
	}
	return nil
}
