package validator

import (
	"regexp"
	"strings"
	"time"
)

type ValidationError struct {
	Field   string
	Message string
}

type ValidationErrors []ValidationError

func (v ValidationErrors) Error() string {
	var msgs []string
	for _, err := range v {
		msgs = append(msgs, err.Field+": "+err.Message)
	}
	return strings.Join(msgs, "; ")
}

func (v ValidationErrors) ToMap() map[string]string {
	result := make(map[string]string)
	for _, err := range v {
		result[err.Field] = err.Message
	}
	return result
}

// IsEmpty checks if a string is empty after trimming whitespace.
func IsEmpty(s string) bool {
	return strings.TrimSpace(s) == ""
}

// Numeric validation
var numericRegex = regexp.MustCompile(`^[0-9]+$`)

func IsNumeric(s string) bool {
	return numericRegex.MatchString(s)
}

// Date validation
func IsValidDate(dateStr string) (time.Time, bool) {
	date, err := time.Parse("2006-01-02", dateStr)
	return date, err == nil
}

// PNO validation: 4-12 characters, uppercase letters and digits.
var pnoRegex = regexp.MustCompile(`^[A-Z0-9]{4,12}$`)

func IsValidPNO(pno string) bool {
	return pnoRegex.MatchString(pno)
}

// Mobile number validation (Indian). Accepts an optional +91, 91 or 0
// prefix followed by a 10-digit number starting with 6-9.
func IsValidMobileNumber(mobile string) bool {
	mobile = strings.ReplaceAll(mobile, " ", "")
	mobile = strings.ReplaceAll(mobile, "-", "")

	mobile = strings.TrimPrefix(mobile, "+91")
	if len(mobile) == 12 && strings.HasPrefix(mobile, "91") {
		mobile = strings.TrimPrefix(mobile, "91")
	}
	if len(mobile) == 11 && strings.HasPrefix(mobile, "0") {
		mobile = strings.TrimPrefix(mobile, "0")
	}

	if len(mobile) != 10 || !IsNumeric(mobile) {
		return false
	}
	return mobile[0] >= '6' && mobile[0] <= '9'
}

var bloodGroups = []string{"A+", "A-", "B+", "B-", "AB+", "AB-", "O+", "O-"}

func IsValidBloodGroup(group string) bool {
	return IsInSlice(strings.ToUpper(group), bloodGroups)
}

// UUID validation, any RFC 4122 version.
var uuidRegex = regexp.MustCompile(`^[0-9a-f]{8}-[0-9a-f]{4}-[1-8][0-9a-f]{3}-[89ab][0-9a-f]{3}-[0-9a-f]{12}$`)

func IsValidUUID(id string) bool {
	return uuidRegex.MatchString(strings.ToLower(id))
}

// Slice contains check
func IsInSlice(value string, slice []string) bool {
	for _, item := range slice {
		if item == value {
			return true
		}
	}
	return false
}
