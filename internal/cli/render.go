package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/matzehuels/logogif/pkg/pipeline"
)

// overrides holds the flags shared by render and preview that replace
// values from the configuration file.
type overrides struct {
	config     string
	label      string
	subtitle   string
	accent     string
	background string
	flag       bool
}

// bind registers the override flags on fs.
func (o *overrides) bind(fs *pflag.FlagSet) {
	fs.StringVarP(&o.config, "config", "c", "", "TOML configuration file (default: built-in defaults)")
	fs.StringVar(&o.label, "label", "", "animated label text")
	fs.StringVar(&o.subtitle, "subtitle", "", "subtitle line (empty disables it)")
	fs.StringVar(&o.accent, "accent", "", "accent line (empty disables it)")
	fs.StringVar(&o.background, "background", "", "background color, e.g. #0A0E17 (empty is transparent)")
	fs.BoolVar(&o.flag, "flag", false, "draw the pixel flag left of the label")
}

// options loads the configuration and applies every flag the user set.
// Flags left at their defaults never override the file.
func (o *overrides) options(fs *pflag.FlagSet) (pipeline.Options, error) {
	opts, err := loadOptions(o.config)
	if err != nil {
		return pipeline.Options{}, err
	}
	if fs.Changed("label") {
		opts.Label = o.label
	}
	if fs.Changed("subtitle") {
		opts.Subtitle = o.subtitle
	}
	if fs.Changed("accent") {
		opts.Accent = o.accent
	}
	if fs.Changed("background") {
		opts.Colors.Background = o.background
	}
	if fs.Changed("flag") {
		opts.Flag.Enabled = o.flag
	}
	opts.SetDefaults()
	return opts, nil
}

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	overrides
	output     string
	noOptimize bool
	noCache    bool
}

// renderCommand creates the render command.
func (c *CLI) renderCommand() *cobra.Command {
	var opts renderOpts

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render the logo animation to a GIF",
		Long: `Render the logo animation to a looping GIF.

Every frame is drawn with a transparent background unless a background color
is configured, converted to a palette with one transparent index, and written
with restore-to-background disposal. Identical configurations are served from
the cache.`,
		Example: `  logogif render
  logogif render -c logo.toml -o assets/logo.gif
  logogif render --label acme --flag --no-optimize`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			popts, err := opts.options(cmd.Flags())
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("output") {
				popts.Output = opts.output
			}
			if opts.noOptimize {
				popts.Optimize = false
			}
			return c.runRender(cmd.Context(), popts, opts.noCache)
		},
	}

	opts.bind(cmd.Flags())
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output GIF path (default from config)")
	cmd.Flags().BoolVar(&opts.noOptimize, "no-optimize", false, "write full-canvas frames instead of cropping")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable the artifact cache")

	return cmd
}

func (c *CLI) runRender(ctx context.Context, opts pipeline.Options, noCache bool) error {
	runner, err := c.newRunner(noCache)
	if err != nil {
		return err
	}
	defer runner.Close()

	prog := newProgress(loggerFromContext(ctx))
	result, err := runner.Execute(ctx, opts)
	if err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Rendered %d frames", result.Stats.FrameCount))

	if err := writeArtifact(opts.Output, result.GIF); err != nil {
		return err
	}

	printSuccess("Rendered %s", StyleTitle.Render(opts.Label))
	printStats(result.Stats, result.CacheInfo.ArtifactHit)
	printFile(opts.Output)
	if result.Stats.Degraded > 0 {
		printWarning("%d frames exceeded %d colors and were approximated", result.Stats.Degraded, opts.Quantize.MaxColors)
	}
	printNextStep("Inspect it", fmt.Sprintf("%s inspect %s", appName, opts.Output))
	return nil
}

// writeArtifact writes data to path, creating parent directories.
func writeArtifact(path string, data []byte) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create output directory: %w", err)
		}
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
