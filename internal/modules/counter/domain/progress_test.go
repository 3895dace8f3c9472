package domain_test

import (
	"testing"

	"pushpal/internal/modules/counter/domain"
)

func TestClassifyBandsForGoal100(t *testing.T) {
	t.Parallel()
	cases := []struct {
		count int
		want  domain.Band
	}{
		{0, domain.BandLow},
		{10, domain.BandLow},
		{24, domain.BandLow},
		{25, domain.BandMid},
		{50, domain.BandMid},
		{74, domain.BandMid},
		{75, domain.BandHigh},
		{90, domain.BandHigh},
		{99, domain.BandHigh},
		{100, domain.BandComplete},
		{150, domain.BandComplete},
	}
	for _, tc := range cases {
		if got := domain.Classify(tc.count, 100); got != tc.want {
			t.Fatalf("Classify(%d, 100) = %s, want %s", tc.count, got, tc.want)
		}
	}
}

func TestClassifyZeroGoalDoesNotDivide(t *testing.T) {
	t.Parallel()
	for _, count := range []int{0, 1, 500} {
		if got := domain.Classify(count, 0); got != domain.BandLow {
			t.Fatalf("Classify(%d, 0) = %s, want low", count, got)
		}
	}
}

func TestNewProgressVisibility(t *testing.T) {
	t.Parallel()
	hiddenNoGoal := domain.NewProgress(5, 0, true)
	if hiddenNoGoal.Visible || hiddenNoGoal.Ratio != 0 {
		t.Fatalf("zero goal must hide the indicator, got %+v", hiddenNoGoal)
	}
	hiddenDisabled := domain.NewProgress(5, 10, false)
	if hiddenDisabled.Visible {
		t.Fatalf("disabled indicator must be hidden")
	}
	shown := domain.NewProgress(3, 4, true)
	if !shown.Visible || shown.Band != domain.BandHigh || shown.Ratio != 0.75 {
		t.Fatalf("unexpected progress %+v", shown)
	}
	over := domain.NewProgress(30, 20, true)
	if over.Fraction() != 1 || over.Band != domain.BandComplete {
		t.Fatalf("overshoot should fill the bar, got %+v", over)
	}
}
