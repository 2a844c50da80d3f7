package ratio

import (
	"reflect"
	"testing"
)

func TestEvaluate(t *testing.T) {
	tests := []struct {
		name       string
		staffCount int
		bands      []Band
		wantRatio  int
		wantMax    int
		wantOver   bool
		wantStatus Status
	}{
		{
			name:       "at exact capacity is warning",
			staffCount: 2,
			bands:      repeat(BandToddler, 12),
			wantRatio:  6, wantMax: 12, wantOver: false, wantStatus: StatusWarning,
		},
		{
			name:       "one over capacity is critical",
			staffCount: 2,
			bands:      repeat(BandToddler, 13),
			wantRatio:  6, wantMax: 12, wantOver: true, wantStatus: StatusCritical,
		},
		{
			name:       "under capacity is good",
			staffCount: 2,
			bands:      repeat(BandToddler, 7),
			wantRatio:  6, wantMax: 12, wantOver: false, wantStatus: StatusGood,
		},
		{
			name:       "zero staff with children is critical",
			staffCount: 0,
			bands:      []Band{BandInfant},
			wantRatio:  4, wantMax: 0, wantOver: true, wantStatus: StatusCritical,
		},
		{
			name:       "zero staff with empty room is good",
			staffCount: 0,
			bands:      nil,
			wantRatio:  15, wantMax: 0, wantOver: false, wantStatus: StatusGood,
		},
		{
			name:       "empty room with staff is good",
			staffCount: 3,
			bands:      nil,
			wantRatio:  15, wantMax: 45, wantOver: false, wantStatus: StatusGood,
		},
		{
			name:       "infant majority tightens mixed room",
			staffCount: 1,
			bands:      []Band{BandInfant, BandInfant, BandPreschool, BandInfant, BandPreschool},
			wantRatio:  4, wantMax: 4, wantOver: true, wantStatus: StatusCritical,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Evaluate(tt.staffCount, tt.bands)
			if got.EffectiveRatio != tt.wantRatio {
				t.Errorf("EffectiveRatio = %d, want %d", got.EffectiveRatio, tt.wantRatio)
			}
			if got.MaxAllowedChildren != tt.wantMax {
				t.Errorf("MaxAllowedChildren = %d, want %d", got.MaxAllowedChildren, tt.wantMax)
			}
			if got.IsOverRatio != tt.wantOver {
				t.Errorf("IsOverRatio = %v, want %v", got.IsOverRatio, tt.wantOver)
			}
			if got.Status != tt.wantStatus {
				t.Errorf("Status = %s, want %s", got.Status, tt.wantStatus)
			}
			if got.ChildrenCount != len(tt.bands) {
				t.Errorf("ChildrenCount = %d, want %d", got.ChildrenCount, len(tt.bands))
			}
			if got.StaffCount != tt.staffCount {
				t.Errorf("StaffCount = %d, want %d", got.StaffCount, tt.staffCount)
			}
		})
	}
}

// Evaluating the same inputs twice must yield identical results.
func TestEvaluateDeterministic(t *testing.T) {
	bands := []Band{BandInfant, BandToddler, BandToddler, BandPreK}
	first := Evaluate(2, bands)
	second := Evaluate(2, bands)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("Evaluate() not deterministic: %+v vs %+v", first, second)
	}
}
