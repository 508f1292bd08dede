package cli

import (
	"fmt"
	"image"
	"image/color"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/matzehuels/logogif/pkg/logo"
	"github.com/matzehuels/logogif/pkg/pipeline"
)

const (
	defaultPreviewWidth = 80
	halfBlock           = "▀"
)

// previewCommand creates the preview command.
func (c *CLI) previewCommand() *cobra.Command {
	var (
		opts  overrides
		width int
		once  bool
	)

	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Play the logo animation in the terminal",
		Long: `Play the logo animation in the terminal at its real frame timing.

Each terminal cell shows two pixels using a half block, so the preview is a
downscaled approximation of the GIF. Press space to pause and q to quit.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			popts, err := opts.options(cmd.Flags())
			if err != nil {
				return err
			}
			if err := popts.Validate(); err != nil {
				return err
			}

			spinner := newSpinnerWithContext(cmd.Context(), "Rendering frames...")
			spinner.Start()
			anim, err := pipeline.Prepare(popts)
			if err != nil {
				spinner.StopWithError("Could not prepare the animation")
				return err
			}
			frames, err := anim.Frames(cmd.Context())
			if err != nil {
				spinner.Stop()
				return err
			}
			spinner.Stop()

			model := newPreviewModel(frames, width, uint8(popts.Quantize.AlphaThreshold), once)
			_, err = tea.NewProgram(model, tea.WithContext(cmd.Context())).Run()
			return err
		},
	}

	opts.bind(cmd.Flags())
	cmd.Flags().IntVarP(&width, "width", "w", defaultPreviewWidth, "preview width in terminal columns")
	cmd.Flags().BoolVar(&once, "once", false, "play the animation once and exit")

	return cmd
}

// =============================================================================
// previewModel - terminal playback
// =============================================================================

// previewFrame is a frame converted to terminal text.
type previewFrame struct {
	text  string
	delay int
	phase string
}

// previewModel is the bubbletea model that plays frames at their delays.
type previewModel struct {
	frames []previewFrame
	index  int
	paused bool
	once   bool
	done   bool
}

// tickMsg advances playback. seq guards against ticks scheduled before a
// pause.
type tickMsg struct{ seq int }

// newPreviewModel converts frames to terminal text. Samples at or below
// threshold alpha are left blank, matching the GIF's transparent pixels.
func newPreviewModel(frames []logo.Frame, width int, threshold uint8, once bool) previewModel {
	m := previewModel{
		frames: make([]previewFrame, len(frames)),
		once:   once,
	}
	for i, f := range frames {
		m.frames[i] = previewFrame{
			text:  renderCells(f.Image, width, threshold),
			delay: f.Delay,
			phase: f.Phase,
		}
	}
	return m
}

func (m previewModel) tick() tea.Cmd {
	if len(m.frames) == 0 {
		return nil
	}
	seq := m.index
	delay := time.Duration(m.frames[m.index].delay) * 10 * time.Millisecond
	return tea.Tick(delay, func(time.Time) tea.Msg { return tickMsg{seq: seq} })
}

func (m previewModel) Init() tea.Cmd {
	if len(m.frames) == 0 {
		return tea.Quit
	}
	return m.tick()
}

func (m previewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case " ":
			m.paused = !m.paused
			if !m.paused {
				return m, m.tick()
			}
		case "right", "l":
			if m.paused {
				m.index = (m.index + 1) % len(m.frames)
			}
		case "left", "h":
			if m.paused {
				m.index = (m.index + len(m.frames) - 1) % len(m.frames)
			}
		}
	case tickMsg:
		if m.paused || msg.seq != m.index {
			return m, nil
		}
		if m.index == len(m.frames)-1 && m.once {
			m.done = true
			return m, tea.Quit
		}
		m.index = (m.index + 1) % len(m.frames)
		return m, m.tick()
	}
	return m, nil
}

func (m previewModel) View() string {
	if len(m.frames) == 0 {
		return StyleDim.Render("no frames") + "\n"
	}
	f := m.frames[m.index]

	var b strings.Builder
	b.WriteString(f.text)
	b.WriteString("\n")

	status := fmt.Sprintf("frame %d/%d · %s · %s", m.index+1, len(m.frames), f.phase, formatCentis(f.delay))
	if m.paused {
		status += " · paused"
	}
	b.WriteString(StyleDim.Render(status))
	b.WriteString("\n")
	b.WriteString(StyleDim.Render("space pause  ←/→ step  q quit"))
	b.WriteString("\n")
	return b.String()
}

// renderCells downsamples img to at most width columns. Each cell covers two
// vertically stacked samples: the upper as foreground of a half block, the
// lower as background. Samples with alpha at or below threshold are left
// uncolored.
func renderCells(img image.Image, width int, threshold uint8) string {
	b := img.Bounds()
	if width < 1 {
		width = defaultPreviewWidth
	}
	step := max(1, (b.Dx()+width-1)/width)
	cols := (b.Dx() + step - 1) / step
	rows := (b.Dy() + step - 1) / step

	sample := func(col, row int) (lipgloss.Color, bool) {
		if row >= rows {
			return "", false
		}
		c := color.NRGBAModel.Convert(img.At(b.Min.X+col*step, b.Min.Y+row*step)).(color.NRGBA)
		if c.A <= threshold {
			return "", false
		}
		return lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)), true
	}

	var out strings.Builder
	for row := 0; row < rows; row += 2 {
		if row > 0 {
			out.WriteString("\n")
		}
		for col := 0; col < cols; col++ {
			top, hasTop := sample(col, row)
			bottom, hasBottom := sample(col, row+1)
			switch {
			case hasTop && hasBottom:
				out.WriteString(lipgloss.NewStyle().Foreground(top).Background(bottom).Render(halfBlock))
			case hasTop:
				out.WriteString(lipgloss.NewStyle().Foreground(top).Render(halfBlock))
			case hasBottom:
				out.WriteString(lipgloss.NewStyle().Foreground(bottom).Render("▄"))
			default:
				out.WriteString(" ")
			}
		}
	}
	return out.String()
}
