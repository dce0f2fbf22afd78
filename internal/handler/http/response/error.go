package response

import (
	"errors"
	"net/http"

	"github.com/ptcportal/personnel-backend-go/internal/domain/approval"
	"github.com/ptcportal/personnel-backend-go/internal/domain/archive"
	"github.com/ptcportal/personnel-backend-go/internal/domain/attendance"
	"github.com/ptcportal/personnel-backend-go/internal/domain/export"
	"github.com/ptcportal/personnel-backend-go/internal/domain/leave"
	"github.com/ptcportal/personnel-backend-go/internal/domain/person"
	"github.com/ptcportal/personnel-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Person domain errors
	case errors.Is(err, person.ErrPersonNotFound):
		NotFound(w, "Person not found")
	case errors.Is(err, person.ErrPNOExists):
		Conflict(w, "PNO already registered")
	case errors.Is(err, person.ErrInvalidPersonType):
		BadRequest(w, "Person type must be staff or trainee", nil)

	// Attendance domain errors
	case errors.Is(err, attendance.ErrAttendanceNotFound):
		NotFound(w, "Attendance record not found")
	case errors.Is(err, attendance.ErrInvalidStatus):
		BadRequest(w, "Invalid attendance status", nil)

	// Leave domain errors
	case errors.Is(err, leave.ErrLeaveNotFound):
		NotFound(w, "Leave record not found")
	case errors.Is(err, leave.ErrLeaveOverlaps):
		Conflict(w, "Leave overlaps an existing pending or approved leave")
	case errors.Is(err, leave.ErrInvalidLeaveType):
		BadRequest(w, "Invalid leave type", nil)
	case errors.Is(err, leave.ErrInvalidDateRange):
		BadRequest(w, "End date must not be before start date", nil)

	// Approval domain errors
	case errors.Is(err, approval.ErrInvalidDecision),
		errors.Is(err, approval.ErrInvalidState),
		errors.Is(err, approval.ErrInvalidRecordType):
		BadRequest(w, err.Error(), nil)

	// Archive domain errors
	case errors.Is(err, archive.ErrFolderNotFound):
		NotFound(w, "Archive folder not found")
	case errors.Is(err, archive.ErrFolderExists):
		Conflict(w, "Archive folder with this name already exists")
	case errors.Is(err, archive.ErrFolderNotEmpty):
		Conflict(w, "Archive folder is not empty; provide a target folder for its records")
	case errors.Is(err, archive.ErrFolderTypeMismatch):
		Conflict(w, "Target folder holds a different record type")
	case errors.Is(err, archive.ErrArchivedPersonNotFound):
		NotFound(w, "Archived record not found")

	// Export domain errors
	case errors.Is(err, export.ErrInvalidFormat):
		BadRequest(w, "Export format must be csv or xlsx", nil)
	case errors.Is(err, export.ErrNothingToExport):
		NotFound(w, "No records match the export criteria")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
