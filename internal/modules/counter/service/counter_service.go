package service

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"pushpal/internal/modules/counter/domain"
	counterout "pushpal/internal/modules/counter/port/out"
	apperrors "pushpal/internal/platform/errors"
)

// Screen is the counter screen's in-memory state.
type Screen struct {
	Tally    domain.Tally
	Prefs    domain.DisplayPrefs
	Prompt   string
	Progress domain.Progress
}

type CounterService struct {
	mu     sync.Mutex
	store  counterout.CountStore
	prefs  counterout.PreferenceReader
	theme  counterout.ThemeApplier
	logger *slog.Logger
	prompt string

	tally   domain.Tally
	display domain.DisplayPrefs
	// resumed is set once Resume has loaded the stored count.
	resumed bool
}

func NewCounterService(store counterout.CountStore, prefs counterout.PreferenceReader, theme counterout.ThemeApplier, logger *slog.Logger, prompt string) *CounterService {
	return &CounterService{store: store, prefs: prefs, theme: theme, logger: logger, prompt: prompt}
}

// Resume applies the stored theme, restores the count and reloads the
// progress preferences. Read failures fall back to defaults.
func (s *CounterService) Resume(ctx context.Context) (Screen, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.logger.Info("counter resumed")

	display := domain.DisplayPrefs{}
	if s.prefs != nil {
		loaded, err := s.prefs.Load(ctx)
		if err != nil {
			s.logger.Warn("preferences unavailable, using defaults", "error", err)
		} else {
			display = loaded
		}
	}
	s.display = display

	if s.theme != nil {
		if err := s.theme.Apply(ctx, display.DarkThemeEnabled); err != nil {
			return Screen{}, fmt.Errorf("apply theme: %w", err)
		}
	}

	tally, err := s.store.LoadCount(ctx)
	if err != nil {
		s.logger.Warn("count unavailable, starting at zero", "error", err)
		tally = 0
	}
	s.tally = domain.NewTally(tally.Int())
	s.resumed = true
	return s.screen(), nil
}

// Pause persists the in-memory count.
func (s *CounterService) Pause(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.resumed {
		s.logger.Debug("pause before resume, count not saved")
		return nil
	}
	s.logger.Info("counter paused")
	if err := s.store.SaveCount(ctx, s.tally); err != nil {
		return fmt.Errorf("save count: %w", err)
	}
	s.logger.Info("count saved", "count", s.tally.Int())
	return nil
}

func (s *CounterService) Increment(by int) (Screen, error) {
	if by < 1 {
		return Screen{}, fmt.Errorf("%w: increment must be at least 1, got %d", apperrors.ErrInvalidInput, by)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if by == 1 {
		s.tally = s.tally.Increment()
	} else {
		s.tally = s.tally.Add(by)
	}
	s.logger.Info("push-up counted", "count", s.tally.Int(), "by", by)
	return s.screen(), nil
}

func (s *CounterService) Reset() Screen {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tally = s.tally.Reset()
	s.logger.Info("counter reset")
	return s.screen()
}

func (s *CounterService) screen() Screen {
	return Screen{
		Tally:    s.tally,
		Prefs:    s.display,
		Prompt:   s.prompt,
		Progress: domain.NewProgress(s.tally.Int(), s.display.Goal, s.display.ProgressBarEnabled),
	}
}
