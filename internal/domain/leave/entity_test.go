package leave

import (
	"testing"
	"time"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestDaysInRange(t *testing.T) {
	cases := []struct {
		start, end time.Time
		want       int
	}{
		{date(2024, 6, 1), date(2024, 6, 1), 1},
		{date(2024, 6, 1), date(2024, 6, 3), 3},
		{date(2024, 2, 27), date(2024, 3, 1), 4}, // leap year boundary
		{date(2024, 12, 30), date(2025, 1, 2), 4},
		{date(2024, 6, 3), date(2024, 6, 1), 0},
	}
	for _, c := range cases {
		got := DaysInRange(c.start, c.end)
		if got != c.want {
			t.Errorf("DaysInRange(%s, %s) = %d, want %d",
				c.start.Format("2006-01-02"), c.end.Format("2006-01-02"), got, c.want)
		}
	}
}

func TestDatesInRange(t *testing.T) {
	dates := DatesInRange(date(2024, 6, 1), date(2024, 6, 3))
	if len(dates) != 3 {
		t.Fatalf("DatesInRange returned %d dates, want 3", len(dates))
	}
	want := []string{"2024-06-01", "2024-06-02", "2024-06-03"}
	for i, d := range dates {
		if d.Format("2006-01-02") != want[i] {
			t.Errorf("dates[%d] = %s, want %s", i, d.Format("2006-01-02"), want[i])
		}
	}

	if got := DatesInRange(date(2024, 6, 3), date(2024, 6, 1)); got != nil {
		t.Errorf("inverted range should return nil, got %d dates", len(got))
	}
}

func TestDatesInRangeIgnoresTimeOfDay(t *testing.T) {
	start := time.Date(2024, 6, 1, 23, 30, 0, 0, time.UTC)
	end := time.Date(2024, 6, 2, 0, 15, 0, 0, time.UTC)
	dates := DatesInRange(start, end)
	if len(dates) != 2 {
		t.Fatalf("DatesInRange with time-of-day = %d dates, want 2", len(dates))
	}
}

func TestParseLeaveType(t *testing.T) {
	for _, s := range []string{"CL", "EL", "ML", "Maternity", "Special"} {
		if _, err := ParseLeaveType(s); err != nil {
			t.Errorf("ParseLeaveType(%q) returned error: %v", s, err)
		}
	}
	for _, s := range []string{"cl", "SL", "", "Casual"} {
		if _, err := ParseLeaveType(s); err == nil {
			t.Errorf("ParseLeaveType(%q) = nil error, want ErrInvalidLeaveType", s)
		}
	}
}
