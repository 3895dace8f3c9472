package usecase_test

import (
	"context"
	"errors"
	"testing"

	"pushpal/internal/modules/settings/domain"
	"pushpal/internal/modules/settings/dto"
	"pushpal/internal/modules/settings/service"
	"pushpal/internal/modules/settings/usecase"
	"pushpal/internal/platform/logging"
)

type fakeStore struct {
	prefs   domain.Preferences
	loadErr error
	saveErr error
	saves   int
}

func (f *fakeStore) Load(context.Context) (domain.Preferences, error) {
	return f.prefs, f.loadErr
}

func (f *fakeStore) Save(_ context.Context, prefs domain.Preferences) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	f.saves++
	f.prefs = prefs
	return nil
}

type fakeTheme struct {
	applied []bool
}

func (f *fakeTheme) Apply(_ context.Context, dark bool) error {
	f.applied = append(f.applied, dark)
	return nil
}

func newInteractor(store *fakeStore, theme *fakeTheme) *usecase.Interactor {
	uc := usecase.NewInteractor(service.NewSettingsService(store, theme, logging.Discard()))
	return uc.(*usecase.Interactor)
}

func TestResumeAppliesStoredTheme(t *testing.T) {
	t.Parallel()
	store := &fakeStore{prefs: domain.Preferences{DarkThemeEnabled: true, ProgressBarEnabled: true, Goal: 30}}
	theme := &fakeTheme{}
	out, err := newInteractor(store, theme).Resume(context.Background())
	if err != nil {
		t.Fatalf("resume: %v", err)
	}
	if !out.DarkThemeEnabled || !out.ProgressBarEnabled || out.Goal != 30 {
		t.Fatalf("unexpected resume output %+v", out)
	}
	if len(theme.applied) != 1 || !theme.applied[0] {
		t.Fatalf("expected dark theme applied once, got %v", theme.applied)
	}
}

func TestResumeFallsBackToDefaultsOnStoreError(t *testing.T) {
	t.Parallel()
	store := &fakeStore{prefs: domain.Preferences{Goal: 50}, loadErr: errors.New("disk gone")}
	theme := &fakeTheme{}
	out, err := newInteractor(store, theme).Resume(context.Background())
	if err != nil {
		t.Fatalf("resume must not fail on read errors: %v", err)
	}
	if out != (dto.PreferencesOutput{}) {
		t.Fatalf("expected default preferences, got %+v", out)
	}
	if len(theme.applied) != 1 || theme.applied[0] {
		t.Fatalf("expected light theme applied, got %v", theme.applied)
	}
}

func TestPauseClampsAndPersists(t *testing.T) {
	t.Parallel()
	store := &fakeStore{}
	out, err := newInteractor(store, &fakeTheme{}).Pause(context.Background(), dto.SaveInput{ProgressBarEnabled: true, Goal: 140})
	if err != nil {
		t.Fatalf("pause: %v", err)
	}
	if out.Goal != 100 || store.prefs.Goal != 100 {
		t.Fatalf("goal should clamp to 100, got out=%d stored=%d", out.Goal, store.prefs.Goal)
	}
	if _, err := newInteractor(store, &fakeTheme{}).Pause(context.Background(), dto.SaveInput{Goal: -3}); err != nil {
		t.Fatalf("pause negative goal: %v", err)
	}
	if store.prefs.Goal != 0 {
		t.Fatalf("goal should clamp to 0, got %d", store.prefs.Goal)
	}
}

func TestPauseSurfacesWriteErrors(t *testing.T) {
	t.Parallel()
	store := &fakeStore{saveErr: errors.New("read-only")}
	if _, err := newInteractor(store, &fakeTheme{}).Pause(context.Background(), dto.SaveInput{Goal: 10}); err == nil {
		t.Fatalf("expected save error")
	}
}

func TestUpdateChangesOnlyGivenFieldsAndAppliesThemeOnChange(t *testing.T) {
	t.Parallel()
	store := &fakeStore{prefs: domain.Preferences{ProgressBarEnabled: true, Goal: 20}}
	theme := &fakeTheme{}
	uc := newInteractor(store, theme)

	goal := 45
	out, err := uc.Update(context.Background(), dto.UpdateInput{Goal: &goal})
	if err != nil {
		t.Fatalf("update goal: %v", err)
	}
	if out.Goal != 45 || !out.ProgressBarEnabled || out.DarkThemeEnabled {
		t.Fatalf("unexpected output %+v", out)
	}
	if len(theme.applied) != 0 {
		t.Fatalf("theme should not be applied when unchanged, got %v", theme.applied)
	}

	dark := true
	if _, err := uc.Update(context.Background(), dto.UpdateInput{DarkThemeEnabled: &dark}); err != nil {
		t.Fatalf("update theme: %v", err)
	}
	if len(theme.applied) != 1 || !theme.applied[0] {
		t.Fatalf("expected dark applied, got %v", theme.applied)
	}
	if store.saves != 2 {
		t.Fatalf("expected two saves, got %d", store.saves)
	}
}

func TestPreviewThemeDoesNotPersist(t *testing.T) {
	t.Parallel()
	store := &fakeStore{}
	theme := &fakeTheme{}
	if err := newInteractor(store, theme).PreviewTheme(context.Background(), true); err != nil {
		t.Fatalf("preview: %v", err)
	}
	if store.saves != 0 || store.prefs.DarkThemeEnabled {
		t.Fatalf("preview must not write the store")
	}
	if len(theme.applied) != 1 || !theme.applied[0] {
		t.Fatalf("preview should apply dark immediately")
	}
}
