package approval

import "errors"

var (
	ErrInvalidState      = errors.New("approval state must be pending, approved or rejected")
	ErrInvalidDecision   = errors.New("decision must be approved or rejected")
	ErrInvalidRecordType = errors.New("record type must be absence or leave")
)
