package cli

import (
	"fmt"
	"image/gif"
	"os"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	apperrors "github.com/matzehuels/logogif/pkg/errors"
	"github.com/matzehuels/logogif/pkg/sink"
)

// inspectCommand creates the inspect command for summarizing a GIF file.
func (c *CLI) inspectCommand() *cobra.Command {
	var frames bool

	cmd := &cobra.Command{
		Use:   "inspect <file.gif>",
		Short: "Summarize a GIF's frames, delays and loop count",
		Long: `Inspect decodes a GIF and prints its canvas size, frame count, total
duration and loop behaviour. With --frames it also lists each frame's delay,
bounds and disposal method.`,
		Example: `  logogif inspect logo.gif
  logogif inspect logo.gif --frames`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			summary, err := inspectFile(args[0])
			if err != nil {
				return err
			}

			printKeyValue("File", args[0])
			printKeyValue("Size", fmt.Sprintf("%dx%d", summary.Width, summary.Height))
			printKeyValue("Frames", strconv.Itoa(summary.Frames))
			printKeyValue("Duration", formatCentis(summary.Duration()))
			printKeyValue("Loop", formatLoop(summary.LoopCount))

			if frames {
				fmt.Println()
				fmt.Println(frameTable(summary))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&frames, "frames", false, "list every frame")

	return cmd
}

func inspectFile(path string) (sink.Summary, error) {
	f, err := os.Open(path)
	if err != nil {
		return sink.Summary{}, apperrors.Wrap(apperrors.ErrCodeInvalidPath, err, "open %s", path)
	}
	defer f.Close()
	return sink.InspectGIF(f)
}

// formatLoop describes a GIF loop count. The decoder reports -1 when the
// file carries no loop extension.
func formatLoop(n int) string {
	switch {
	case n == 0:
		return "forever"
	case n < 0:
		return "once"
	default:
		return fmt.Sprintf("%d repeats", n)
	}
}

func formatDisposal(d byte) string {
	switch d {
	case gif.DisposalNone:
		return "none"
	case gif.DisposalBackground:
		return "background"
	case gif.DisposalPrevious:
		return "previous"
	default:
		return "unspecified"
	}
}

// frameTable renders one row per frame.
func frameTable(s sink.Summary) string {
	rows := make([][]string, s.Frames)
	for i := range rows {
		disposal := "unspecified"
		if i < len(s.Disposal) {
			disposal = formatDisposal(s.Disposal[i])
		}
		b := s.Bounds[i]
		rows[i] = []string{
			strconv.Itoa(i + 1),
			formatCentis(s.Delays[i]),
			fmt.Sprintf("%d,%d %dx%d", b.Min.X, b.Min.Y, b.Dx(), b.Dy()),
			disposal,
		}
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("#", "Delay", "Bounds", "Disposal").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}
			if col == 0 {
				return lipgloss.NewStyle().Foreground(colorDim)
			}
			return lipgloss.NewStyle()
		})

	return t.Render()
}
