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

func TestIsValidEmail(t *testing.T) {
	valid := []string{"test@example.com", "user.name+1@domain.co", "a@b.cd"}
	invalid := []string{"test@", "@example.com", "test@.com", "test@com", "test@domain", " ", ""}
	for _, email := range valid {
		if !IsValidEmail(email) {
			t.Errorf("IsValidEmail(%q) = false, want true", email)
		}
	}
	for _, email := range invalid {
		if IsValidEmail(email) {
			t.Errorf("IsValidEmail(%q) = true, want false", email)
		}
	}
}

func TestIsValidDate(t *testing.T) {
	if _, ok := IsValidDate("2025-06-10"); !ok {
		t.Errorf("IsValidDate(2025-06-10) = false, want true")
	}
	for _, s := range []string{"2025-13-01", "2025-06-32", "10-06-2025", "2025/06/10", ""} {
		if _, ok := IsValidDate(s); ok {
			t.Errorf("IsValidDate(%q) = true, want false", s)
		}
	}
}

func TestIsValidClockTime(t *testing.T) {
	valid := []string{"00:00", "09:30", "23:59"}
	invalid := []string{"24:00", "9:30", "09:60", "0930", "", "09:30:00"}
	for _, s := range valid {
		if !IsValidClockTime(s) {
			t.Errorf("IsValidClockTime(%q) = false, want true", s)
		}
	}
	for _, s := range invalid {
		if IsValidClockTime(s) {
			t.Errorf("IsValidClockTime(%q) = true, want false", s)
		}
	}
}

func TestIsValidISOWeek(t *testing.T) {
	valid := []string{"2025-W01", "2025-W27", "2024-W53"}
	invalid := []string{"2025-W00", "2025-W54", "2025-27", "W27-2025", ""}
	for _, s := range valid {
		if !IsValidISOWeek(s) {
			t.Errorf("IsValidISOWeek(%q) = false, want true", s)
		}
	}
	for _, s := range invalid {
		if IsValidISOWeek(s) {
			t.Errorf("IsValidISOWeek(%q) = true, want false", s)
		}
	}
}

func TestIsValidEmployeeDisplayID(t *testing.T) {
	if !IsValidEmployeeDisplayID("EMP_00001") {
		t.Errorf("IsValidEmployeeDisplayID(EMP_00001) = false, want true")
	}
	for _, s := range []string{"EMP_1", "EMP00001", "emp_00001", "EMP_000001", ""} {
		if IsValidEmployeeDisplayID(s) {
			t.Errorf("IsValidEmployeeDisplayID(%q) = true, want false", s)
		}
	}
}
