package logo

// Rule is the generation rule of a Phase.
type Rule int

const (
	// Reveal steps i = 1..N: i characters visible, character i-1 highlighted.
	Reveal Rule = iota
	// Hold emits a single step with no highlight.
	Hold
	// Sweep steps j = 0..N-1 over the full label, highlighting character j.
	Sweep
	// Shine steps the flag shine across the glyph grid, two columns at a time.
	Shine
)

func (r Rule) String() string {
	switch r {
	case Reveal:
		return "reveal"
	case Hold:
		return "hold"
	case Sweep:
		return "sweep"
	case Shine:
		return "shine"
	default:
		return "unknown"
	}
}

// Element is a bit set of optional elements a phase switches on.
type Element uint8

const (
	ShowSubtitle Element = 1 << iota
	ShowAccent
	ShowFlag
)

// Phase is one named segment of the timeline. Elements named in Show are
// switched on when the phase starts and stay on for the rest of the
// animation.
type Phase struct {
	Name  string
	Rule  Rule
	Delay int // per step, in hundredths of a second
	Show  Element
}

// shineStride is the number of flag columns the shine advances per step.
const shineStride = 2

// Steps returns how many frames p contributes for a label of n characters
// and a flag grid flagCols wide.
func (p Phase) Steps(n, flagCols int) int {
	switch p.Rule {
	case Reveal, Sweep:
		return n
	case Hold:
		return 1
	case Shine:
		return (max(0, flagCols) + shineStride - 1) / shineStride
	default:
		return 0
	}
}

// Timing holds the per-step delays of the default timeline, in hundredths of
// a second.
type Timing struct {
	Typing    int
	Settle    int
	Subtitle  int
	Accent    int
	Sweep     int
	FlagShine int
	FinalHold int
}

// Phase names used by DefaultTimeline.
const (
	PhaseFlagIntro = "flag-intro"
	PhaseTyping    = "typing"
	PhaseSettled   = "settled"
	PhaseSubtitle  = "subtitle"
	PhaseAccent    = "accent"
	PhaseSweep     = "sweep"
	PhaseFlagOutro = "flag-outro"
	PhaseFinalHold = "final-hold"
)

// DefaultTimeline returns the logo progression:
//
//	[flag-intro] typing settled [subtitle] [accent] sweep [flag-outro] final-hold
//
// Bracketed phases are present only when the matching feature is enabled.
// The animation loops from final-hold back to the first phase.
func DefaultTimeline(t Timing, f Features) []Phase {
	var phases []Phase
	var flag Element
	if f.Flag {
		flag = ShowFlag
		phases = append(phases, Phase{Name: PhaseFlagIntro, Rule: Shine, Delay: t.FlagShine, Show: flag})
	}
	phases = append(phases,
		Phase{Name: PhaseTyping, Rule: Reveal, Delay: t.Typing, Show: flag},
		Phase{Name: PhaseSettled, Rule: Hold, Delay: t.Settle},
	)
	if f.Subtitle {
		phases = append(phases, Phase{Name: PhaseSubtitle, Rule: Hold, Delay: t.Subtitle, Show: ShowSubtitle})
	}
	if f.Accent {
		phases = append(phases, Phase{Name: PhaseAccent, Rule: Hold, Delay: t.Accent, Show: ShowAccent})
	}
	phases = append(phases, Phase{Name: PhaseSweep, Rule: Sweep, Delay: t.Sweep})
	if f.Flag {
		phases = append(phases, Phase{Name: PhaseFlagOutro, Rule: Shine, Delay: t.FlagShine})
	}
	return append(phases, Phase{Name: PhaseFinalHold, Rule: Hold, Delay: t.FinalHold})
}

// Step is one expanded timeline entry.
type Step struct {
	Phase string
	State VisualState
	Delay int
}

// Expand walks phases in order and emits one Step per frame for a label of n
// characters and a flag grid flagCols wide.
//
// State carries over between phases: shine steps draw the text layer as it
// currently is (nothing before typing, the full label after the sweep), and
// a highlight or shine never outlives the phase that set it.
func Expand(phases []Phase, n, flagCols int) []Step {
	steps := make([]Step, 0, StepCount(phases, n, flagCols))
	st := Blank()
	emit := func(p Phase) {
		steps = append(steps, Step{Phase: p.Name, State: st, Delay: p.Delay})
	}

	for _, p := range phases {
		st = st.show(p.Show)
		switch p.Rule {
		case Reveal:
			for i := 1; i <= n; i++ {
				st.Visible = i
				st.Highlight = i - 1
				emit(p)
			}
			st.Highlight = None
		case Hold:
			st.Highlight = None
			st.Shine = None
			emit(p)
		case Sweep:
			st.Visible = n
			for j := 0; j < n; j++ {
				st.Highlight = j
				emit(p)
			}
			st.Highlight = None
		case Shine:
			for col := 0; col < flagCols; col += shineStride {
				st.Shine = col
				emit(p)
			}
			st.Shine = None
		}
	}
	return steps
}

// StepCount returns the number of frames phases expand to.
func StepCount(phases []Phase, n, flagCols int) int {
	total := 0
	for _, p := range phases {
		total += p.Steps(n, flagCols)
	}
	return total
}

// TotalDuration returns the sum over phases of step count times per-step
// delay, in hundredths of a second.
func TotalDuration(phases []Phase, n, flagCols int) int {
	total := 0
	for _, p := range phases {
		total += p.Steps(n, flagCols) * p.Delay
	}
	return total
}
