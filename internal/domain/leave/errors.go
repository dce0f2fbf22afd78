package leave

import "errors"

var (
	ErrLeaveNotFound    = errors.New("leave record not found")
	ErrLeaveOverlaps    = errors.New("leave overlaps an existing pending or approved leave")
	ErrInvalidLeaveType = errors.New("invalid leave type")
	ErrInvalidDateRange = errors.New("end_date must not be before start_date")
)
