package postgresql

import (
	"github.com/ptcportal/personnel-backend-go/internal/domain/person"
)

// Physical table names per person type. The legacy schema pluralizes
// trainees but not staff; keep the names exactly as deployed.
func personTable(t person.Type) string {
	if t == person.TypeTrainee {
		return "trainees"
	}
	return "staff"
}

func attendanceTable(t person.Type) string {
	if t == person.TypeTrainee {
		return "trainee_attendance"
	}
	return "staff_attendance"
}

func leaveTable(t person.Type) string {
	if t == person.TypeTrainee {
		return "trainee_leave"
	}
	return "staff_leave"
}

func archiveTable(t person.Type) string {
	if t == person.TypeTrainee {
		return "archived_trainees"
	}
	return "archived_staff"
}
