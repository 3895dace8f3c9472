package theme

import (
	"context"
	"log/slog"
	"sync"
)

// Service owns the current display mode. It is created once by the
// composition root and handed to whoever needs to switch or read it.
type Service struct {
	mu     sync.RWMutex
	dark   bool
	logger *slog.Logger
}

func NewService(logger *slog.Logger) *Service {
	return &Service{logger: logger}
}

func (s *Service) Apply(_ context.Context, dark bool) error {
	s.mu.Lock()
	changed := s.dark != dark
	s.dark = dark
	s.mu.Unlock()
	if changed && s.logger != nil {
		s.logger.Info("display mode changed", "dark", dark)
	}
	return nil
}

func (s *Service) Dark() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.dark
}

func (s *Service) Palette() Palette {
	if s.Dark() {
		return Mocha()
	}
	return Latte()
}
