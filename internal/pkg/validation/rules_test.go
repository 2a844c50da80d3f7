package validation

import (
	"testing"
	"time"
)

func TestParseDateOfBirth(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name  string
		value string
		ok    bool
	}{
		{"valid past date", "2022-06-15", true},
		{"today", "2026-03-10", true},
		{"future date", "2026-03-11", false},
		{"wrong format", "15/06/2022", false},
		{"not a date", "soon", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, ok := ParseDateOfBirth(tt.value, now)
			if ok != tt.ok {
				t.Errorf("ParseDateOfBirth(%q) ok = %v, want %v", tt.value, ok, tt.ok)
			}
		})
	}
}

func TestValidCapacity(t *testing.T) {
	for _, c := range []int{1, 30, 60} {
		if !ValidCapacity(c) {
			t.Errorf("ValidCapacity(%d) = false, want true", c)
		}
	}
	for _, c := range []int{0, -1, 61} {
		if ValidCapacity(c) {
			t.Errorf("ValidCapacity(%d) = true, want false", c)
		}
	}
}
