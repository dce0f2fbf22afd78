package archive

import (
	"time"

	"github.com/ptcportal/personnel-backend-go/internal/domain/person"
)

// Folder is a user-named container for archived records of one type.
type Folder struct {
	ID          string
	Name        string
	Description string
	RecordType  person.Type
	ItemCount   int
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// ArchivedPerson is a copy of a live person row plus archive metadata.
type ArchivedPerson struct {
	person.Person

	FolderID   string
	ArchivedAt time.Time
	ArchivedBy string
}
