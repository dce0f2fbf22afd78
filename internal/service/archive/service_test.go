package archive

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ptcportal/personnel-backend-go/internal/domain/archive"
	"github.com/ptcportal/personnel-backend-go/internal/domain/person"
)

type passthroughTx struct{}

func (passthroughTx) WithinTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fakeFolderRepo struct {
	folders map[string]archive.Folder
}

func (f *fakeFolderRepo) Create(ctx context.Context, folder archive.Folder) (archive.Folder, error) {
	f.folders[folder.ID] = folder
	return folder, nil
}

func (f *fakeFolderRepo) GetByID(ctx context.Context, id string) (archive.Folder, error) {
	folder, ok := f.folders[id]
	if !ok {
		return archive.Folder{}, archive.ErrFolderNotFound
	}
	return folder, nil
}

func (f *fakeFolderRepo) GetByName(ctx context.Context, t person.Type, name string) (archive.Folder, error) {
	for _, folder := range f.folders {
		if folder.RecordType == t && folder.Name == name {
			return folder, nil
		}
	}
	return archive.Folder{}, archive.ErrFolderNotFound
}

func (f *fakeFolderRepo) List(ctx context.Context, t *person.Type) ([]archive.Folder, error) {
	var out []archive.Folder
	for _, folder := range f.folders {
		if t == nil || folder.RecordType == *t {
			out = append(out, folder)
		}
	}
	return out, nil
}

func (f *fakeFolderRepo) AdjustItemCount(ctx context.Context, id string, delta int) error {
	folder := f.folders[id]
	folder.ItemCount += delta
	f.folders[id] = folder
	return nil
}

func (f *fakeFolderRepo) SetItemCount(ctx context.Context, id string, count int) error {
	folder := f.folders[id]
	folder.ItemCount = count
	f.folders[id] = folder
	return nil
}

func (f *fakeFolderRepo) Delete(ctx context.Context, id string) error {
	delete(f.folders, id)
	return nil
}

type fakeArchivedRepo struct {
	rows map[string]archive.ArchivedPerson
}

func (f *fakeArchivedRepo) Insert(ctx context.Context, t person.Type, p archive.ArchivedPerson) (archive.ArchivedPerson, error) {
	f.rows[p.ID] = p
	return p, nil
}

func (f *fakeArchivedRepo) GetByID(ctx context.Context, t person.Type, id string) (archive.ArchivedPerson, error) {
	p, ok := f.rows[id]
	if !ok {
		return archive.ArchivedPerson{}, archive.ErrArchivedPersonNotFound
	}
	return p, nil
}

func (f *fakeArchivedRepo) ListByFolder(ctx context.Context, t person.Type, folderID string) ([]archive.ArchivedPerson, error) {
	var out []archive.ArchivedPerson
	for _, p := range f.rows {
		if p.FolderID == folderID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakeArchivedRepo) CountByFolder(ctx context.Context, t person.Type, folderID string) (int, error) {
	n := 0
	for _, p := range f.rows {
		if p.FolderID == folderID {
			n++
		}
	}
	return n, nil
}

func (f *fakeArchivedRepo) Reassign(ctx context.Context, t person.Type, fromFolderID, toFolderID string) (int, error) {
	n := 0
	for id, p := range f.rows {
		if p.FolderID == fromFolderID {
			p.FolderID = toFolderID
			f.rows[id] = p
			n++
		}
	}
	return n, nil
}

func (f *fakeArchivedRepo) Delete(ctx context.Context, t person.Type, id string) error {
	delete(f.rows, id)
	return nil
}

type fakePersonRepo struct {
	person.PersonRepository

	persons map[string]person.Person
}

func (f *fakePersonRepo) GetByID(ctx context.Context, t person.Type, id string) (person.Person, error) {
	p, ok := f.persons[id]
	if !ok {
		return person.Person{}, person.ErrPersonNotFound
	}
	return p, nil
}

func (f *fakePersonRepo) Create(ctx context.Context, p person.Person) (person.Person, error) {
	f.persons[p.ID] = p
	return p, nil
}

func (f *fakePersonRepo) Delete(ctx context.Context, t person.Type, id string) error {
	delete(f.persons, id)
	return nil
}

type fixture struct {
	svc      archive.ArchiveService
	folders  *fakeFolderRepo
	archived *fakeArchivedRepo
	persons  *fakePersonRepo
}

func newFixture() fixture {
	folders := &fakeFolderRepo{folders: make(map[string]archive.Folder)}
	archived := &fakeArchivedRepo{rows: make(map[string]archive.ArchivedPerson)}
	persons := &fakePersonRepo{persons: make(map[string]person.Person)}
	return fixture{
		svc:      NewArchiveService(passthroughTx{}, folders, archived, persons),
		folders:  folders,
		archived: archived,
		persons:  persons,
	}
}

func (fx fixture) seedFolder(id string, t person.Type, count int) {
	fx.folders.folders[id] = archive.Folder{
		ID: id, Name: "Batch " + id, RecordType: t, ItemCount: count,
	}
}

func (fx fixture) seedPerson(id string) person.Person {
	p := person.Person{
		ID:           id,
		Type:         person.TypeStaff,
		PNO:          "PNO" + id,
		Name:         "Shyam Singh",
		Rank:         "Constable",
		District:     "Jaipur",
		MobileNumber: "9876543210",
		DateOfBirth:  time.Date(1990, 1, 15, 0, 0, 0, 0, time.UTC),
	}
	fx.persons.persons[id] = p
	return p
}

func TestArchivePerson_MovesRowAndBumpsCount(t *testing.T) {
	fx := newFixture()
	fx.seedFolder("folder-1", person.TypeStaff, 0)
	fx.seedPerson("p1")

	resp, err := fx.svc.ArchivePerson(context.Background(), person.TypeStaff,
		archive.ArchivePersonRequest{PersonID: "p1", FolderID: "folder-1"}, "admin-1")
	require.NoError(t, err)

	assert.NotContains(t, fx.persons.persons, "p1", "live row should be gone")
	assert.Contains(t, fx.archived.rows, "p1")
	assert.Equal(t, 1, fx.folders.folders["folder-1"].ItemCount)
	assert.Equal(t, "admin-1", resp.ArchivedBy)
}

func TestArchivePerson_FolderTypeMismatch(t *testing.T) {
	fx := newFixture()
	fx.seedFolder("folder-1", person.TypeTrainee, 0)
	fx.seedPerson("p1")

	_, err := fx.svc.ArchivePerson(context.Background(), person.TypeStaff,
		archive.ArchivePersonRequest{PersonID: "p1", FolderID: "folder-1"}, "admin-1")
	assert.ErrorIs(t, err, archive.ErrFolderTypeMismatch)
	assert.Contains(t, fx.persons.persons, "p1", "live row must be untouched")
}

func TestUnarchivePerson_RoundTripRestoresFields(t *testing.T) {
	fx := newFixture()
	fx.seedFolder("folder-1", person.TypeStaff, 0)
	original := fx.seedPerson("p1")

	_, err := fx.svc.ArchivePerson(context.Background(), person.TypeStaff,
		archive.ArchivePersonRequest{PersonID: "p1", FolderID: "folder-1"}, "admin-1")
	require.NoError(t, err)

	restored, err := fx.svc.UnarchivePerson(context.Background(), person.TypeStaff, "p1")
	require.NoError(t, err)

	assert.Equal(t, original.PNO, restored.PNO)
	assert.Equal(t, original.Name, restored.Name)
	assert.Equal(t, original.Rank, restored.Rank)
	assert.Equal(t, original.District, restored.District)
	assert.NotContains(t, fx.archived.rows, "p1")
	assert.Equal(t, 0, fx.folders.folders["folder-1"].ItemCount)
}

func TestCreateFolder_DuplicateNameRejected(t *testing.T) {
	fx := newFixture()

	req := archive.CreateFolderRequest{Name: "2023 Batch", RecordType: "trainee"}
	_, err := fx.svc.CreateFolder(context.Background(), req)
	require.NoError(t, err)

	_, err = fx.svc.CreateFolder(context.Background(), req)
	assert.ErrorIs(t, err, archive.ErrFolderExists)
}

func TestCreateFolder_SameNameDifferentTypeAllowed(t *testing.T) {
	fx := newFixture()

	_, err := fx.svc.CreateFolder(context.Background(),
		archive.CreateFolderRequest{Name: "2023 Batch", RecordType: "trainee"})
	require.NoError(t, err)

	_, err = fx.svc.CreateFolder(context.Background(),
		archive.CreateFolderRequest{Name: "2023 Batch", RecordType: "staff"})
	assert.NoError(t, err)
}

func TestDeleteFolder_EmptyDeletesDirectly(t *testing.T) {
	fx := newFixture()
	fx.seedFolder("folder-1", person.TypeStaff, 0)

	err := fx.svc.DeleteFolder(context.Background(), archive.DeleteFolderRequest{FolderID: "folder-1"})
	require.NoError(t, err)
	assert.NotContains(t, fx.folders.folders, "folder-1")
}

func TestDeleteFolder_NonEmptyWithoutTargetRejected(t *testing.T) {
	fx := newFixture()
	fx.seedFolder("folder-1", person.TypeStaff, 2)

	err := fx.svc.DeleteFolder(context.Background(), archive.DeleteFolderRequest{FolderID: "folder-1"})
	assert.ErrorIs(t, err, archive.ErrFolderNotEmpty)
	assert.Contains(t, fx.folders.folders, "folder-1", "folder must survive the refused delete")
}

func TestDeleteFolder_ReassignsContentsToTarget(t *testing.T) {
	fx := newFixture()
	fx.seedFolder("folder-1", person.TypeStaff, 2)
	fx.seedFolder("folder-2", person.TypeStaff, 1)
	fx.archived.rows["a1"] = archive.ArchivedPerson{Person: person.Person{ID: "a1"}, FolderID: "folder-1"}
	fx.archived.rows["a2"] = archive.ArchivedPerson{Person: person.Person{ID: "a2"}, FolderID: "folder-1"}
	fx.archived.rows["a3"] = archive.ArchivedPerson{Person: person.Person{ID: "a3"}, FolderID: "folder-2"}

	target := "folder-2"
	err := fx.svc.DeleteFolder(context.Background(), archive.DeleteFolderRequest{
		FolderID:       "folder-1",
		TargetFolderID: &target,
	})
	require.NoError(t, err)

	assert.NotContains(t, fx.folders.folders, "folder-1")
	assert.Equal(t, 3, fx.folders.folders["folder-2"].ItemCount)
	for _, p := range fx.archived.rows {
		assert.Equal(t, "folder-2", p.FolderID)
	}
}

func TestDeleteFolder_TargetTypeMismatch(t *testing.T) {
	fx := newFixture()
	fx.seedFolder("folder-1", person.TypeStaff, 2)
	fx.seedFolder("folder-2", person.TypeTrainee, 0)

	target := "folder-2"
	err := fx.svc.DeleteFolder(context.Background(), archive.DeleteFolderRequest{
		FolderID:       "folder-1",
		TargetFolderID: &target,
	})
	assert.ErrorIs(t, err, archive.ErrFolderTypeMismatch)
}

func TestReconcileFolderCounts_FixesDrift(t *testing.T) {
	fx := newFixture()
	fx.seedFolder("folder-1", person.TypeStaff, 7)
	fx.archived.rows["a1"] = archive.ArchivedPerson{Person: person.Person{ID: "a1"}, FolderID: "folder-1"}
	fx.archived.rows["a2"] = archive.ArchivedPerson{Person: person.Person{ID: "a2"}, FolderID: "folder-1"}

	err := fx.svc.ReconcileFolderCounts(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, fx.folders.folders["folder-1"].ItemCount)
}
