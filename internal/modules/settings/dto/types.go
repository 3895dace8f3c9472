package dto

type PreferencesOutput struct {
	ProgressBarEnabled bool
	DarkThemeEnabled   bool
	Goal               int
}

type SaveInput struct {
	ProgressBarEnabled bool
	DarkThemeEnabled   bool
	Goal               int
}

// UpdateInput changes only the fields that are set.
type UpdateInput struct {
	ProgressBarEnabled *bool
	DarkThemeEnabled   *bool
	Goal               *int
}
