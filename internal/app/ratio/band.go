package ratio

// Band identifies a regulatory age band. Each band carries a fixed
// children-per-staff ratio defined by the licensing authority; the table is
// not user-configurable.
type Band string

// Regulatory age bands
const (
	BandInfant           Band = "infant"
	BandToddler          Band = "toddler"
	BandPreschool        Band = "preschool"
	BandPreK             Band = "pre-k"
	BandKindergartenPlus Band = "kindergarten-plus"
)

// BandSpec describes one regulatory age band: an inclusive age window in
// whole months and the maximum number of children one staff member may
// supervise for that band.
type BandSpec struct {
	Band      Band `json:"band"`
	MinMonths int  `json:"minMonths"`
	MaxMonths int  `json:"maxMonths"`
	// Ratio is children per staff member.
	Ratio int `json:"ratio"`
}

// bandTable lists the bands in ascending MinMonths order, which is also
// ascending leniency: earlier entries are stricter (lower ratio).
var bandTable = []BandSpec{
	{Band: BandInfant, MinMonths: 0, MaxMonths: 17, Ratio: 4},
	{Band: BandToddler, MinMonths: 18, MaxMonths: 35, Ratio: 6},
	{Band: BandPreschool, MinMonths: 36, MaxMonths: 47, Ratio: 10},
	{Band: BandPreK, MinMonths: 48, MaxMonths: 59, Ratio: 12},
	{Band: BandKindergartenPlus, MinMonths: 60, MaxMonths: 1200, Ratio: 15},
}

// strictestBand is the conservative fallback for ages the table does not
// cover. Unknown ages are staffed as infants, never as the most lenient band.
var strictestBand = bandTable[0]

// mostLenientRatio applies to an empty room, which imposes no staffing
// constraint. This is deliberately the opposite default from the unknown-age
// fallback above: an empty roster is absence of children, not absence of
// information about a child.
const mostLenientRatio = 15

// Bands returns the full band table in ascending age order.
func Bands() []BandSpec {
	out := make([]BandSpec, len(bandTable))
	copy(out, bandTable)
	return out
}

// Spec returns the BandSpec for a band name. Unknown names resolve to the
// strictest band so a corrupt label can never relax staffing.
func Spec(b Band) BandSpec {
	for _, spec := range bandTable {
		if spec.Band == b {
			return spec
		}
	}
	return strictestBand
}
