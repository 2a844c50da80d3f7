package ratio

import "time"

// AgeInMonths returns the number of whole calendar months elapsed between
// dob and now. The day-of-month correction matters: a child born on the 15th
// is not a month older on the 14th. Approximating this with day-count
// division mis-bands children around month boundaries.
func AgeInMonths(dob, now time.Time) int {
	months := (now.Year()-dob.Year())*12 + int(now.Month()) - int(dob.Month())
	if now.Day() < dob.Day() {
		months--
	}
	return months
}

// Classify maps a child's date of birth and kindergarten enrollment to a
// regulatory band as of now. It is total: every input yields exactly one
// band and no error.
//
// A kindergarten-enrolled child is kindergarten-plus regardless of age.
// Otherwise the first band whose window contains the age wins; ages outside
// every window (including negative ages from bad data) fall back to the
// strictest band as a conservative default.
func Classify(dob time.Time, kindergartenEnrolled bool, now time.Time) BandSpec {
	if kindergartenEnrolled {
		return Spec(BandKindergartenPlus)
	}

	age := AgeInMonths(dob, now)
	for _, spec := range bandTable {
		if age >= spec.MinMonths && age <= spec.MaxMonths {
			return spec
		}
	}
	return strictestBand
}
