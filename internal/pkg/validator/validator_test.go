package validator

import (
	"testing"
)

func TestIsEmpty(t *testing.T) {
	cases := []struct {
		input string
		want  bool
	}{
		{"", true},
		{"   ", true},
		{"abc", false},
		{" abc ", false},
	}
	for _, c := range cases {
		got := IsEmpty(c.input)
		if got != c.want {
			t.Errorf("IsEmpty(%q) = %v, want %v", c.input, got, c.want)
		}
	}
}

func TestIsNumeric(t *testing.T) {
	valid := []string{"123", "0", "9876543210"}
	invalid := []string{"abc", "123a", "", "-123"}
	for _, s := range valid {
		if !IsNumeric(s) {
			t.Errorf("IsNumeric(%q) = false, want true", s)
		}
	}
	for _, s := range invalid {
		if IsNumeric(s) {
			t.Errorf("IsNumeric(%q) = true, want false", s)
		}
	}
}

func TestIsValidDate(t *testing.T) {
	valid := []string{"2023-01-01", "2000-12-31"}
	invalid := []string{"2023-13-01", "2023-01-32", "2023/01/01", "01-01-2023", ""}
	for _, s := range valid {
		_, ok := IsValidDate(s)
		if !ok {
			t.Errorf("IsValidDate(%q) = false, want true", s)
		}
	}
	for _, s := range invalid {
		_, ok := IsValidDate(s)
		if ok {
			t.Errorf("IsValidDate(%q) = true, want false", s)
		}
	}
}

func TestIsValidPNO(t *testing.T) {
	valid := []string{"PNO1234", "123456", "A1B2C3D4E5F6"}
	invalid := []string{"abc123", "AB1", "A1B2C3D4E5F6G", "PNO 123", ""}
	for _, pno := range valid {
		if !IsValidPNO(pno) {
			t.Errorf("IsValidPNO(%q) = false, want true", pno)
		}
	}
	for _, pno := range invalid {
		if IsValidPNO(pno) {
			t.Errorf("IsValidPNO(%q) = true, want false", pno)
		}
	}
}

func TestIsValidMobileNumber(t *testing.T) {
	valid := []string{"9876543210", "+919876543210", "919876543210", "09876543210", "98765 43210", "98765-43210"}
	invalid := []string{"1234567890", "987654321", "98765432101", "abcdefghij", "", "5876543210"}
	for _, mobile := range valid {
		if !IsValidMobileNumber(mobile) {
			t.Errorf("IsValidMobileNumber(%q) = false, want true", mobile)
		}
	}
	for _, mobile := range invalid {
		if IsValidMobileNumber(mobile) {
			t.Errorf("IsValidMobileNumber(%q) = true, want false", mobile)
		}
	}
}

func TestIsValidBloodGroup(t *testing.T) {
	valid := []string{"A+", "O-", "ab+", "AB-"}
	invalid := []string{"C+", "A", "+", "", "OO"}
	for _, group := range valid {
		if !IsValidBloodGroup(group) {
			t.Errorf("IsValidBloodGroup(%q) = false, want true", group)
		}
	}
	for _, group := range invalid {
		if IsValidBloodGroup(group) {
			t.Errorf("IsValidBloodGroup(%q) = true, want false", group)
		}
	}
}

func TestIsValidUUID(t *testing.T) {
	valid := []string{
		"123e4567-e89b-42d3-a456-426614174000",
		"0188D0F2-7B8C-7B4A-8A2B-6B8B8B8B8B8B",
	}
	invalid := []string{
		"123e4567e89b42d3a456426614174000",
		"g23e4567-e89b-42d3-a456-426614174000",
		"",
	}
	for _, id := range valid {
		if !IsValidUUID(id) {
			t.Errorf("IsValidUUID(%q) = false, want true", id)
		}
	}
	for _, id := range invalid {
		if IsValidUUID(id) {
			t.Errorf("IsValidUUID(%q) = true, want false", id)
		}
	}
}

func TestIsInSlice(t *testing.T) {
	slice := []string{"a", "b", "c"}
	if !IsInSlice("a", slice) {
		t.Errorf("IsInSlice('a') = false, want true")
	}
	if IsInSlice("d", slice) {
		t.Errorf("IsInSlice('d') = true, want false")
	}
}
