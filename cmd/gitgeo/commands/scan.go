package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.trai.ch/gitgeo/internal/core/domain"
)

func (c *CLI) newScanCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scan",
		Short: "Scan the repositories listed in the input file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts, err := c.loadOptions(cmd)
			if err != nil {
				return err
			}

			// Flags set on the command line win over the configuration file.
			flags := cmd.Flags()
			overrideString(flags, "input", &opts.Input)
			overrideInt(flags, "num", &opts.MaxContributors)
			overrideInt(flags, "workers", &opts.Workers)
			overrideString(flags, "repo-cache", &opts.RepoCachePath)
			overrideString(flags, "contributor-cache", &opts.ContributorCachePath)
			overrideString(flags, "output-dir", &opts.OutputDir)
			opts.Output, _ = flags.GetString("output")
			opts.Reset, _ = flags.GetBool("force")

			summary, err := c.app.Scan(cmd.Context(), opts)
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintln(cmd.OutOrStdout(), summary.ReportPath)
			return nil
		},
	}

	cmd.Flags().StringP("input", "i", domain.DefaultInputFile, "File listing one repository per line")
	cmd.Flags().IntP("num", "n", domain.DefaultMaxContributors, "Maximum contributors per repository")
	cmd.Flags().BoolP("force", "f", false, "Delete both caches before scanning")
	cmd.Flags().String("repo-cache", domain.DefaultRepoCacheFile, "Contributor-listing cache file")
	cmd.Flags().String("contributor-cache", domain.DefaultContributorCacheFile, "Contributor-location cache file")
	cmd.Flags().String("output-dir", ".", "Directory for the report")
	cmd.Flags().StringP("output", "o", "", "Explicit report path (overrides --output-dir)")
	cmd.Flags().IntP("workers", "w", domain.DefaultWorkers, "Repositories scanned concurrently")

	return cmd
}

func overrideString(flags *pflag.FlagSet, name string, dst *string) {
	if flags.Changed(name) {
		*dst, _ = flags.GetString(name)
	}
}

func overrideInt(flags *pflag.FlagSet, name string, dst *int) {
	if flags.Changed(name) {
		*dst, _ = flags.GetInt(name)
	}
}
