package export

import "errors"

var (
	ErrInvalidFormat   = errors.New("export format must be csv or xlsx")
	ErrNothingToExport = errors.New("no records match the export criteria")
)
