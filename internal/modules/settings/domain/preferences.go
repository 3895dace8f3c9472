package domain

const (
	KeyProgressBarEnabled = "progress_bar_enabled"
	KeyDarkThemeEnabled   = "dark_theme_enabled"
	KeyGoal               = "goalPushUpValue"

	GoalMin = 0
	GoalMax = 100
)

// Preferences are the settings screen's persisted values.
type Preferences struct {
	ProgressBarEnabled bool
	DarkThemeEnabled   bool
	Goal               int
}

func Defaults() Preferences {
	return Preferences{}
}

// Normalize clamps the goal into [GoalMin, GoalMax].
func (p Preferences) Normalize() Preferences {
	p.Goal = ClampGoal(p.Goal)
	return p
}

func ClampGoal(goal int) int {
	if goal < GoalMin {
		return GoalMin
	}
	if goal > GoalMax {
		return GoalMax
	}
	return goal
}

// StepGoal moves the goal picker by delta, wrapping past either end.
func StepGoal(goal, delta int) int {
	span := GoalMax - GoalMin + 1
	pos := (ClampGoal(goal) - GoalMin + delta) % span
	if pos < 0 {
		pos += span
	}
	return GoalMin + pos
}
