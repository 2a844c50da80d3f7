package ratio

// Group reports how many children of one band are present in a roster.
// Groups are diagnostic output on ratio snapshots; only the effective ratio
// is enforced.
type Group struct {
	Band  Band `json:"band"`
	Count int  `json:"count"`
	Ratio int  `json:"ratio"`
}

// EffectiveRatio derives the single ratio that applies to a mixed-age room.
//
// The band with the majority headcount governs. A tie on the maximum count
// is broken toward the stricter (lower-ratio) band. An empty roster returns
// the most lenient ratio, since no children means no staffing constraint.
func EffectiveRatio(bands []Band) int {
	if len(bands) == 0 {
		return mostLenientRatio
	}

	counts := countByBand(bands)

	// bandTable is ordered strictest first, so requiring a strictly greater
	// count to displace the current winner makes ties resolve to the
	// stricter band.
	best := -1
	ratio := strictestBand.Ratio
	for _, spec := range bandTable {
		if c := counts[spec.Band]; c > best {
			best = c
			ratio = spec.Ratio
		}
	}
	return ratio
}

// GroupCounts returns the per-band headcount for a roster, in band-table
// order, omitting empty bands.
func GroupCounts(bands []Band) []Group {
	counts := countByBand(bands)

	groups := make([]Group, 0, len(counts))
	for _, spec := range bandTable {
		if c := counts[spec.Band]; c > 0 {
			groups = append(groups, Group{Band: spec.Band, Count: c, Ratio: spec.Ratio})
		}
	}
	return groups
}

func countByBand(bands []Band) map[Band]int {
	counts := make(map[Band]int, len(bandTable))
	for _, b := range bands {
		// Normalize unknown labels to the strictest band rather than
		// dropping them from the count.
		counts[Spec(b).Band]++
	}
	return counts
}
