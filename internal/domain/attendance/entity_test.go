package attendance

import (
	"testing"

	"github.com/ptcportal/personnel-backend-go/internal/domain/approval"
)

func TestInitialApprovalState(t *testing.T) {
	cases := []struct {
		status Status
		want   approval.State
	}{
		{StatusAbsent, approval.StateApproved},
		{StatusSuspension, approval.StateApproved},
		{StatusTermination, approval.StateApproved},
		{StatusOnLeave, approval.StatePending},
		{StatusResignation, approval.StatePending},
	}
	for _, c := range cases {
		got := InitialApprovalState(c.status)
		if got != c.want {
			t.Errorf("InitialApprovalState(%q) = %q, want %q", c.status, got, c.want)
		}
	}
}

func TestParseStatus(t *testing.T) {
	valid := []string{"absent", "on_leave", "suspension", "resignation", "termination"}
	for _, s := range valid {
		if _, err := ParseStatus(s); err != nil {
			t.Errorf("ParseStatus(%q) returned error: %v", s, err)
		}
	}
	invalid := []string{"present", "ABSENT", "", "leave"}
	for _, s := range invalid {
		if _, err := ParseStatus(s); err == nil {
			t.Errorf("ParseStatus(%q) = nil error, want ErrInvalidStatus", s)
		}
	}
}
