package out

import (
	"context"

	"pushpal/internal/modules/counter/domain"
	counterout "pushpal/internal/modules/counter/port/out"
	settingsin "pushpal/internal/modules/settings/port/in"
)

type SettingsPreferenceAdapter struct {
	settings settingsin.Usecase
}

func NewSettingsPreferenceAdapter(settings settingsin.Usecase) counterout.PreferenceReader {
	return &SettingsPreferenceAdapter{settings: settings}
}

func (a *SettingsPreferenceAdapter) Load(ctx context.Context) (domain.DisplayPrefs, error) {
	prefs, err := a.settings.Get(ctx)
	if err != nil {
		return domain.DisplayPrefs{}, err
	}
	return domain.DisplayPrefs{
		ProgressBarEnabled: prefs.ProgressBarEnabled,
		DarkThemeEnabled:   prefs.DarkThemeEnabled,
		Goal:               prefs.Goal,
	}, nil
}
