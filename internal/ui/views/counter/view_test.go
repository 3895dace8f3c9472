package counter

import (
	"context"
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	counterdto "pushpal/internal/modules/counter/dto"
	"pushpal/internal/ui/theme"
)

type stubPort struct {
	out      counterdto.CounterOutput
	pauses   int
	resetErr error
}

func (s *stubPort) Resume(context.Context) (counterdto.CounterOutput, error) { return s.out, nil }
func (s *stubPort) Pause(context.Context) error {
	s.pauses++
	return nil
}
func (s *stubPort) Tap(context.Context) (counterdto.CounterOutput, error) {
	s.out.Count++
	s.out.Display = "tapped"
	return s.out, nil
}
func (s *stubPort) Add(_ context.Context, n int) (counterdto.CounterOutput, error) {
	s.out.Count += n
	return s.out, nil
}
func (s *stubPort) Reset(context.Context) (counterdto.CounterOutput, error) {
	if s.resetErr != nil {
		return counterdto.CounterOutput{}, s.resetErr
	}
	s.out.Count = 0
	return s.out, nil
}

type dark struct{}

func (dark) Palette() theme.Palette { return theme.Mocha() }

func TestViewShowsPromptAndHidesBarWithoutGoal(t *testing.T) {
	t.Parallel()
	port := &stubPort{out: counterdto.CounterOutput{Display: "Press space", ProgressVisible: false}}
	m := New(port, dark{})
	if !strings.Contains(m.View(), "Loading") {
		t.Fatalf("unloaded view should say loading")
	}
	m, _ = m.Update(tea.WindowSizeMsg{Width: 80, Height: 20})
	m, _ = m.Update(m.Resume()())
	view := m.View()
	if !strings.Contains(view, "Press space") {
		t.Fatalf("zero count should show the prompt")
	}
	if strings.Contains(view, "0/0") {
		t.Fatalf("hidden progress should not render a bar label")
	}
}

func TestViewRendersBarLabelWhenVisible(t *testing.T) {
	t.Parallel()
	port := &stubPort{out: counterdto.CounterOutput{
		Count: 30, Display: "30", ProgressVisible: true, Goal: 40, Ratio: 0.75, Fraction: 0.75, Band: "high",
	}}
	m := New(port, dark{})
	m, _ = m.Update(m.Resume()())
	if !strings.Contains(m.View(), "30/40") {
		t.Fatalf("visible progress should show count/goal")
	}
}

func TestKeysIgnoredUntilResumed(t *testing.T) {
	t.Parallel()
	port := &stubPort{}
	m := New(port, dark{})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	if port.out.Count != 0 {
		t.Fatalf("taps before resume must not reach the counter")
	}
	m, _ = m.Update(m.Resume()())
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	if m.Count() != 1 {
		t.Fatalf("expected 1 after tap, got %d", m.Count())
	}
}

func TestPauseBeforeResumeDoesNotSave(t *testing.T) {
	t.Parallel()
	port := &stubPort{out: counterdto.CounterOutput{Count: 42, Display: "42"}}
	m := New(port, dark{})
	msg := m.Pause()()
	if paused, ok := msg.(PausedMsg); !ok || paused.Err != nil {
		t.Fatalf("unexpected pause result %#v", msg)
	}
	if port.pauses != 0 {
		t.Fatalf("pause before resume must not reach the counter, got %d calls", port.pauses)
	}
	m, _ = m.Update(m.Resume()())
	m.Pause()()
	if port.pauses != 1 {
		t.Fatalf("pause after resume should save once, got %d", port.pauses)
	}
}

func TestResetErrorIsShown(t *testing.T) {
	t.Parallel()
	port := &stubPort{out: counterdto.CounterOutput{Count: 5, Display: "5"}, resetErr: errors.New("store offline")}
	m := New(port, dark{})
	m, _ = m.Update(tea.WindowSizeMsg{Width: 80, Height: 20})
	m, _ = m.Update(m.Resume()())
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'r'}})
	if m.Count() != 5 {
		t.Fatalf("failed reset must keep the count, got %d", m.Count())
	}
	if !strings.Contains(m.View(), "store offline") {
		t.Fatalf("reset error should be rendered")
	}
}
