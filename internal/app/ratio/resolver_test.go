package ratio

import (
	"reflect"
	"testing"
)

func repeat(b Band, n int) []Band {
	out := make([]Band, n)
	for i := range out {
		out[i] = b
	}
	return out
}

func TestEffectiveRatio(t *testing.T) {
	tests := []struct {
		name  string
		bands []Band
		want  int
	}{
		{name: "empty roster is most lenient", bands: nil, want: 15},
		{name: "single infant", bands: []Band{BandInfant}, want: 4},
		{name: "infant majority", bands: []Band{BandInfant, BandInfant, BandToddler}, want: 4},
		{name: "toddler majority", bands: []Band{BandInfant, BandToddler, BandToddler}, want: 6},
		{name: "tie goes to stricter band", bands: []Band{BandInfant, BandInfant, BandToddler, BandToddler}, want: 4},
		{name: "three way tie goes to strictest", bands: []Band{BandInfant, BandToddler, BandPreschool}, want: 4},
		{name: "tie between lenient bands", bands: []Band{BandPreK, BandKindergartenPlus}, want: 12},
		{name: "all kindergarten", bands: repeat(BandKindergartenPlus, 8), want: 15},
		{name: "unknown label counts as strictest", bands: []Band{Band("bogus"), BandPreschool, BandPreschool}, want: 10},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := EffectiveRatio(tt.bands); got != tt.want {
				t.Errorf("EffectiveRatio(%v) = %d, want %d", tt.bands, got, tt.want)
			}
		})
	}
}

func TestGroupCounts(t *testing.T) {
	got := GroupCounts([]Band{BandToddler, BandInfant, BandToddler, BandKindergartenPlus})
	want := []Group{
		{Band: BandInfant, Count: 1, Ratio: 4},
		{Band: BandToddler, Count: 2, Ratio: 6},
		{Band: BandKindergartenPlus, Count: 1, Ratio: 15},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("GroupCounts() = %+v, want %+v", got, want)
	}
}

func TestGroupCountsEmptyRoster(t *testing.T) {
	if got := GroupCounts(nil); len(got) != 0 {
		t.Errorf("GroupCounts(nil) = %+v, want empty", got)
	}
}
