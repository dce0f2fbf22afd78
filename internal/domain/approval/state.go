package approval

// State is the single approval lifecycle shared by attendance entries and
// leave requests. The legacy tables persist it under two different column
// names (approval_status on attendance, status on leave); that mapping
// lives in the postgresql repositories, nowhere else.
type State string

const (
	StatePending  State = "pending"
	StateApproved State = "approved"
	StateRejected State = "rejected"
)

func ParseState(s string) (State, error) {
	switch State(s) {
	case StatePending, StateApproved, StateRejected:
		return State(s), nil
	}
	return "", ErrInvalidState
}

// RecordType distinguishes which kind of record a decision applies to.
type RecordType string

const (
	RecordAbsence RecordType = "absence"
	RecordLeave   RecordType = "leave"
)

func ParseRecordType(s string) (RecordType, error) {
	switch RecordType(s) {
	case RecordAbsence, RecordLeave:
		return RecordType(s), nil
	}
	return "", ErrInvalidRecordType
}
