package domain

type Band string

const (
	BandLow      Band = "low"
	BandMid      Band = "mid"
	BandHigh     Band = "high"
	BandComplete Band = "complete"
)

const (
	LowThreshold  = 0.25
	MidThreshold  = 0.75
	HighThreshold = 1.0
)

// Classify buckets count/goal. A goal of zero or less has no ratio and
// reports BandLow.
func Classify(count, goal int) Band {
	if goal <= 0 {
		return BandLow
	}
	ratio := float64(count) / float64(goal)
	switch {
	case ratio < LowThreshold:
		return BandLow
	case ratio < MidThreshold:
		return BandMid
	case ratio < HighThreshold:
		return BandHigh
	default:
		return BandComplete
	}
}

// DisplayPrefs are the settings the counter screen reads on resume.
type DisplayPrefs struct {
	ProgressBarEnabled bool
	DarkThemeEnabled   bool
	Goal               int
}

type Progress struct {
	Visible bool
	Count   int
	Goal    int
	Ratio   float64
	Band    Band
}

// NewProgress hides the indicator when it is disabled or the goal is unset.
func NewProgress(count, goal int, enabled bool) Progress {
	if !enabled || goal <= 0 {
		return Progress{Count: count, Goal: goal, Band: BandLow}
	}
	return Progress{
		Visible: true,
		Count:   count,
		Goal:    goal,
		Ratio:   float64(count) / float64(goal),
		Band:    Classify(count, goal),
	}
}

// Fraction is the bar fill, capped at a full bar.
func (p Progress) Fraction() float64 {
	if p.Ratio > 1 {
		return 1
	}
	return p.Ratio
}
