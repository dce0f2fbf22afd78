package archive

import "errors"

var (
	ErrFolderNotFound         = errors.New("archive folder not found")
	ErrFolderExists           = errors.New("archive folder with this name already exists")
	ErrFolderNotEmpty         = errors.New("archive folder is not empty and no target folder was given")
	ErrFolderTypeMismatch     = errors.New("target folder holds a different record type")
	ErrArchivedPersonNotFound = errors.New("archived record not found")
)
