package helpers

import (
	"testing"
	"time"
)

func TestHoursBetween(t *testing.T) {
	base := time.Date(2026, time.September, 1, 8, 0, 0, 0, time.UTC)
	tests := []struct {
		name string
		end  time.Time
		want float64
	}{
		{name: "quarter hour", end: base.Add(15 * time.Minute), want: 0.25},
		{name: "full day shift", end: base.Add(8*time.Hour + 30*time.Minute), want: 8.5},
		{name: "rounds to two decimals", end: base.Add(10 * time.Minute), want: 0.17},
		{name: "zero duration", end: base, want: 0},
		{name: "clock skew clamps to zero", end: base.Add(-time.Minute), want: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := HoursBetween(base, tt.end); got != tt.want {
				t.Errorf("HoursBetween() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestStartOfDay(t *testing.T) {
	in := time.Date(2026, time.September, 1, 17, 45, 12, 999, time.UTC)
	want := time.Date(2026, time.September, 1, 0, 0, 0, 0, time.UTC)
	if got := StartOfDay(in); !got.Equal(want) {
		t.Errorf("StartOfDay() = %v, want %v", got, want)
	}
}
