package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/logogif/pkg/pipeline"
)

// configCommand creates the config command, which prints the default
// configuration or the resolved form of an existing file.
func (c *CLI) configCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "config [file.toml]",
		Short: "Print or check a TOML configuration",
		Long: `Without arguments, config prints the default configuration as TOML,
ready to be saved and edited. Given a file, it loads and validates it and
prints the fully resolved options.`,
		Example: `  logogif config > logo.toml
  logogif config logo.toml`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := pipeline.Defaults()
			if len(args) == 1 {
				var err error
				if opts, err = pipeline.LoadOptions(args[0]); err != nil {
					return err
				}
				if err := opts.Validate(); err != nil {
					return err
				}
				loggerFromContext(cmd.Context()).Debug("config valid", "path", args[0])
			}
			return pipeline.EncodeOptions(cmd.OutOrStdout(), opts)
		},
	}
}
