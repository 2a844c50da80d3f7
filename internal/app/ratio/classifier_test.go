package ratio

import (
	"testing"
	"time"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestAgeInMonths(t *testing.T) {
	tests := []struct {
		name string
		dob  time.Time
		now  time.Time
		want int
	}{
		{name: "one day short of two years", dob: date(2022, time.June, 15), now: date(2024, time.June, 14), want: 23},
		{name: "exactly two years", dob: date(2022, time.June, 15), now: date(2024, time.June, 15), want: 24},
		{name: "day after birthday", dob: date(2022, time.June, 15), now: date(2024, time.June, 16), want: 24},
		{name: "same day", dob: date(2024, time.March, 1), now: date(2024, time.March, 1), want: 0},
		{name: "mid first month", dob: date(2024, time.March, 1), now: date(2024, time.March, 20), want: 0},
		{name: "cross year boundary", dob: date(2023, time.November, 30), now: date(2024, time.January, 29), want: 1},
		{name: "future birth date", dob: date(2025, time.January, 1), now: date(2024, time.January, 1), want: -12},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := AgeInMonths(tt.dob, tt.now); got != tt.want {
				t.Errorf("AgeInMonths() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestClassify(t *testing.T) {
	now := date(2024, time.September, 1)
	tests := []struct {
		name         string
		ageMonths    int
		kindergarten bool
		want         Band
	}{
		{name: "newborn", ageMonths: 0, want: BandInfant},
		{name: "infant upper bound", ageMonths: 17, want: BandInfant},
		{name: "toddler lower bound", ageMonths: 18, want: BandToddler},
		{name: "toddler upper bound", ageMonths: 35, want: BandToddler},
		{name: "preschool lower bound", ageMonths: 36, want: BandPreschool},
		{name: "preschool upper bound", ageMonths: 47, want: BandPreschool},
		{name: "pre-k lower bound", ageMonths: 48, want: BandPreK},
		{name: "pre-k upper bound", ageMonths: 59, want: BandPreK},
		{name: "five years old", ageMonths: 60, want: BandKindergartenPlus},
		{name: "ten years old", ageMonths: 120, want: BandKindergartenPlus},
		{name: "kindergarten flag overrides infant age", ageMonths: 10, kindergarten: true, want: BandKindergartenPlus},
		{name: "kindergarten flag overrides toddler age", ageMonths: 24, kindergarten: true, want: BandKindergartenPlus},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dob := now.AddDate(0, -tt.ageMonths, 0)
			got := Classify(dob, tt.kindergarten, now)
			if got.Band != tt.want {
				t.Errorf("Classify(age=%dmo, kg=%v) = %s, want %s", tt.ageMonths, tt.kindergarten, got.Band, tt.want)
			}
		})
	}
}

func TestClassifyFutureBirthDateFallsBackToStrictest(t *testing.T) {
	now := date(2024, time.September, 1)
	got := Classify(now.AddDate(1, 0, 0), false, now)
	if got.Band != BandInfant || got.Ratio != 4 {
		t.Errorf("Classify(future dob) = %+v, want strictest band infant/4", got)
	}
}

// Every age from 0 to 200 months, with and without the kindergarten flag,
// must land in exactly one band.
func TestClassifyExhaustiveAndExclusive(t *testing.T) {
	now := date(2024, time.September, 1)
	for months := 0; months <= 200; months++ {
		dob := now.AddDate(0, -months, 0)
		for _, kg := range []bool{false, true} {
			got := Classify(dob, kg, now)

			matches := 0
			for _, spec := range bandTable {
				if months >= spec.MinMonths && months <= spec.MaxMonths {
					matches++
				}
			}
			if matches != 1 {
				t.Fatalf("age %dmo matches %d band windows, want exactly 1", months, matches)
			}
			if kg && got.Band != BandKindergartenPlus {
				t.Fatalf("age %dmo with kindergarten flag = %s, want kindergarten-plus", months, got.Band)
			}
			if got.Ratio <= 0 {
				t.Fatalf("age %dmo yields non-positive ratio %d", months, got.Ratio)
			}
		}
	}
}
