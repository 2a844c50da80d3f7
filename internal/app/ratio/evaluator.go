package ratio

// Status is the compliance verdict for one classroom at one instant.
type Status string

// Compliance statuses
const (
	// StatusGood means the room has slack under its effective ratio.
	StatusGood Status = "good"
	// StatusWarning means the room is exactly at its allowed headcount.
	StatusWarning Status = "warning"
	// StatusCritical means the room holds more children than staffing allows.
	StatusCritical Status = "critical"
)

// Evaluation is the point-in-time result of evaluating one classroom's
// roster against available staff. It is never persisted; callers recompute
// it from current state on every read.
type Evaluation struct {
	StaffCount         int     `json:"staffCount"`
	ChildrenCount      int     `json:"childrenCount"`
	EffectiveRatio     int     `json:"effectiveRatio"`
	RatioGroups        []Group `json:"ratioGroups"`
	MaxAllowedChildren int     `json:"maxAllowedChildren"`
	IsOverRatio        bool    `json:"isOverRatio"`
	Status             Status  `json:"status"`
}

// Evaluate combines the staff headcount with a classified roster into a
// compliance verdict. Zero staff with children present is simply over ratio
// (0 × anything allows 0 children); there is no division anywhere, so no
// divide-by-zero case exists.
func Evaluate(staffCount int, bands []Band) Evaluation {
	effective := EffectiveRatio(bands)
	childrenCount := len(bands)
	maxAllowed := staffCount * effective

	status := StatusGood
	switch {
	case childrenCount > maxAllowed:
		status = StatusCritical
	case childrenCount == maxAllowed && childrenCount > 0:
		status = StatusWarning
	}

	return Evaluation{
		StaffCount:         staffCount,
		ChildrenCount:      childrenCount,
		EffectiveRatio:     effective,
		RatioGroups:        GroupCounts(bands),
		MaxAllowedChildren: maxAllowed,
		IsOverRatio:        childrenCount > maxAllowed,
		Status:             status,
	}
}
