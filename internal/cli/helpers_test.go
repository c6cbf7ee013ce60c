package cli

import (
	"testing"

	"github.com/masarhq/masar/internal/models"
)

func TestValidateColorHex(t *testing.T) {
	valid := []string{"#FF5733", "#000000", "#abcdef"}
	for _, c := range valid {
		if err := ValidateColorHex(c); err != nil {
			t.Errorf("Expected %q to be valid, got %v", c, err)
		}
	}

	invalid := []string{"FF5733", "#FF573", "#GG5733", "", "#FF57333"}
	for _, c := range invalid {
		if err := ValidateColorHex(c); err == nil {
			t.Errorf("Expected %q to be rejected", c)
		}
	}
}

func TestParseGender(t *testing.T) {
	g, err := ParseGender("Female")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if g != models.GenderFemale {
		t.Errorf("Expected female, got %s", g)
	}

	if _, err := ParseGender("other"); err == nil {
		t.Error("Expected error for unknown gender")
	}
}

func TestParseCategory(t *testing.T) {
	c, err := ParseCategory("TEAMWORK")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if c != models.CategoryTeamwork {
		t.Errorf("Expected teamwork, got %s", c)
	}

	if _, err := ParseCategory("kindness"); err == nil {
		t.Error("Expected error for unknown category")
	}
}

func TestParseTimeUnit(t *testing.T) {
	u, err := ParseTimeUnit("week")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if u != models.TimeUnitWeek {
		t.Errorf("Expected week, got %s", u)
	}

	if _, err := ParseTimeUnit("fortnight"); err == nil {
		t.Error("Expected error for unknown time unit")
	}
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2025-09-07")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if d.Year() != 2025 || int(d.Month()) != 9 || d.Day() != 7 {
		t.Errorf("Expected 2025-09-07, got %v", d)
	}

	if _, err := ParseDate("07/09/2025"); err == nil {
		t.Error("Expected error for wrong date format")
	}

	// Empty date defaults to now
	if _, err := ParseDate(""); err != nil {
		t.Errorf("Expected empty date to default, got %v", err)
	}
}
