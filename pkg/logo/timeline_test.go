package logo

import (
	"testing"
)

func testTiming() Timing {
	return Timing{Typing: 10, Settle: 8, Subtitle: 15, Accent: 350, Sweep: 6, FlagShine: 5, FinalHold: 250}
}

func stepsOf(steps []Step, phase string) []Step {
	var out []Step
	for _, s := range steps {
		if s.Phase == phase {
			out = append(out, s)
		}
	}
	return out
}

func TestExpandTyping(t *testing.T) {
	steps := Expand(DefaultTimeline(testTiming(), Features{}), 7, 0)
	typing := stepsOf(steps, PhaseTyping)

	if len(typing) != 7 {
		t.Fatalf("typing frames = %d, want 7", len(typing))
	}
	for i, s := range typing {
		if s.Delay != 10 {
			t.Errorf("typing[%d].Delay = %d, want 10", i, s.Delay)
		}
		if s.State.Visible != i+1 {
			t.Errorf("typing[%d].Visible = %d, want %d", i, s.State.Visible, i+1)
		}
		if s.State.Highlight != s.State.Visible-1 {
			t.Errorf("typing[%d].Highlight = %d, want %d", i, s.State.Highlight, s.State.Visible-1)
		}
	}
	if steps[0].Phase != PhaseTyping {
		t.Errorf("first phase = %q, want %q", steps[0].Phase, PhaseTyping)
	}
}

func TestExpandSweep(t *testing.T) {
	steps := Expand(DefaultTimeline(testTiming(), Features{Subtitle: true, Accent: true}), 7, 0)
	sweep := stepsOf(steps, PhaseSweep)

	if len(sweep) != 7 {
		t.Fatalf("sweep frames = %d, want 7", len(sweep))
	}
	for j, s := range sweep {
		if s.State.Highlight != j {
			t.Errorf("sweep[%d].Highlight = %d, want %d", j, s.State.Highlight, j)
		}
		if s.State.Visible != 7 {
			t.Errorf("sweep[%d].Visible = %d, want 7", j, s.State.Visible)
		}
		if !s.State.Subtitle || !s.State.Accent {
			t.Errorf("sweep[%d] should retain secondary lines: %v", j, s.State)
		}
	}
}

func TestExpandOrder(t *testing.T) {
	steps := Expand(DefaultTimeline(testTiming(), Features{Subtitle: true, Accent: true}), 3, 0)

	want := []string{
		PhaseTyping, PhaseTyping, PhaseTyping,
		PhaseSettled, PhaseSubtitle, PhaseAccent,
		PhaseSweep, PhaseSweep, PhaseSweep,
		PhaseFinalHold,
	}
	if len(steps) != len(want) {
		t.Fatalf("len(steps) = %d, want %d", len(steps), len(want))
	}
	for i, s := range steps {
		if s.Phase != want[i] {
			t.Errorf("steps[%d].Phase = %q, want %q", i, s.Phase, want[i])
		}
	}

	settled := steps[3].State
	if settled.Visible != 3 || settled.Highlight != None || settled.Subtitle {
		t.Errorf("settled state = %v", settled)
	}
	if st := steps[4].State; !st.Subtitle || st.Accent {
		t.Errorf("subtitle state = %v", st)
	}
	if st := steps[5].State; !st.Subtitle || !st.Accent {
		t.Errorf("accent state = %v", st)
	}

	final := steps[len(steps)-1].State
	want3 := VisualState{Visible: 3, Highlight: None, Subtitle: true, Accent: true, Shine: None}
	if final != want3 {
		t.Errorf("final hold = %v, want %v", final, want3)
	}
}

func TestExpandEmptyLabel(t *testing.T) {
	steps := Expand(DefaultTimeline(testTiming(), Features{}), 0, 0)

	if len(steps) == 0 {
		t.Fatal("expected settled and final hold frames")
	}
	if steps[0].Phase != PhaseSettled {
		t.Errorf("first phase = %q, want %q", steps[0].Phase, PhaseSettled)
	}
	if n := len(stepsOf(steps, PhaseTyping)); n != 0 {
		t.Errorf("typing frames = %d, want 0", n)
	}
	if n := len(stepsOf(steps, PhaseSweep)); n != 0 {
		t.Errorf("sweep frames = %d, want 0", n)
	}
}

func TestExpandSingleCharacter(t *testing.T) {
	steps := Expand(DefaultTimeline(testTiming(), Features{}), 1, 0)
	typing := stepsOf(steps, PhaseTyping)

	if len(typing) != 1 {
		t.Fatalf("typing frames = %d, want 1", len(typing))
	}
	if typing[0].State.Visible != 1 || typing[0].State.Highlight != 0 {
		t.Errorf("typing state = %v", typing[0].State)
	}
	if steps[1].Phase != PhaseSettled {
		t.Errorf("second phase = %q, want %q", steps[1].Phase, PhaseSettled)
	}
}

func TestExpandFlagShine(t *testing.T) {
	cols := DefaultFlag.Cols()
	steps := Expand(DefaultTimeline(testTiming(), Features{Flag: true}), 7, cols)

	intro := stepsOf(steps, PhaseFlagIntro)
	outro := stepsOf(steps, PhaseFlagOutro)
	if len(intro) != 6 || len(outro) != 6 {
		t.Fatalf("shine frames = %d/%d, want 6/6", len(intro), len(outro))
	}
	for i, s := range intro {
		if s.State.Shine != i*2 {
			t.Errorf("intro[%d].Shine = %d, want %d", i, s.State.Shine, i*2)
		}
		if s.State.Visible != 0 || !s.State.Flag {
			t.Errorf("intro[%d] should show only the flag: %v", i, s.State)
		}
	}
	for i, s := range outro {
		if s.State.Visible != 7 || s.State.Highlight != None {
			t.Errorf("outro[%d] should show the settled label: %v", i, s.State)
		}
	}
	if steps[0].Phase != PhaseFlagIntro {
		t.Errorf("first phase = %q, want %q", steps[0].Phase, PhaseFlagIntro)
	}
	for _, s := range steps {
		if !s.State.Flag {
			t.Fatalf("flag should be visible in every frame, missing in %q", s.Phase)
		}
		if s.Phase != PhaseFlagIntro && s.Phase != PhaseFlagOutro && s.State.Shine != None {
			t.Errorf("shine leaked into %q: %v", s.Phase, s.State)
		}
	}
}

func TestTotalDuration(t *testing.T) {
	tests := []struct {
		name  string
		f     Features
		n     int
		cols  int
		total int
	}{
		{"plain", Features{}, 7, 0, 7*10 + 8 + 7*6 + 250},
		{"secondary", Features{Subtitle: true, Accent: true}, 7, 0, 7*10 + 8 + 15 + 350 + 7*6 + 250},
		{"flag", Features{Flag: true}, 7, 12, 6*5 + 7*10 + 8 + 7*6 + 6*5 + 250},
		{"empty", Features{}, 0, 0, 8 + 250},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			phases := DefaultTimeline(testTiming(), tt.f)
			if got := TotalDuration(phases, tt.n, tt.cols); got != tt.total {
				t.Errorf("TotalDuration = %d, want %d", got, tt.total)
			}

			sum := 0
			for _, s := range Expand(phases, tt.n, tt.cols) {
				sum += s.Delay
			}
			if sum != tt.total {
				t.Errorf("sum of step delays = %d, want %d", sum, tt.total)
			}
			if got, want := len(Expand(phases, tt.n, tt.cols)), StepCount(phases, tt.n, tt.cols); got != want {
				t.Errorf("len(Expand) = %d, StepCount = %d", got, want)
			}
		})
	}
}

func TestPhaseStepsOddColumns(t *testing.T) {
	p := Phase{Rule: Shine}
	if got := p.Steps(0, 5); got != 3 {
		t.Errorf("Steps(cols=5) = %d, want 3", got)
	}
	if got := p.Steps(0, 0); got != 0 {
		t.Errorf("Steps(cols=0) = %d, want 0", got)
	}
}
