package person

import "errors"

var (
	ErrPersonNotFound    = errors.New("person not found")
	ErrPNOExists         = errors.New("PNO already registered")
	ErrInvalidPersonType = errors.New("person type must be staff or trainee")
)
