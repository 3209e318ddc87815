// Package commands implements the CLI commands for gitgeo.
package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/gitgeo/internal/app"
	"go.trai.ch/gitgeo/internal/build"
	"go.trai.ch/gitgeo/internal/core/domain"
)

// CLI represents the command line interface for gitgeo.
type CLI struct {
	app     Application
	rootCmd *cobra.Command
}

// Application represents the application logic interface.
type Application interface {
	LoadOptions(path string) (domain.ScanOptions, error)
	Scan(ctx context.Context, opts domain.ScanOptions) (domain.ScanSummary, error)
	Clean(ctx context.Context, opts app.CleanOptions) error
	SetLogJSON(enable bool)
}

// New creates a new CLI instance with the given app.
func New(a Application) *CLI {
	c := &CLI{app: a}

	rootCmd := &cobra.Command{
		Use:           "gitgeo",
		Short:         "Locate the contributors of GitHub repositories",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			if logJSON, _ := cmd.Flags().GetBool("log-json"); logJSON {
				c.app.SetLogJSON(true)
			}
		},
	}

	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"{{.Name}} version {{.Version}} (commit: %s, date: %s)\n",
		build.Commit,
		build.Date,
	))
	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	rootCmd.PersistentFlags().StringP("config", "c", domain.DefaultConfigFile, "Configuration file with scan defaults")
	rootCmd.PersistentFlags().Bool("log-json", false, "Write logs as JSON")

	c.rootCmd = rootCmd

	rootCmd.AddCommand(c.newScanCmd())
	rootCmd.AddCommand(c.newCleanCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetOutput sets the output and error streams for the root command. Used for testing.
func (c *CLI) SetOutput(out, err io.Writer) {
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(err)
}

// loadOptions reads the configuration file named by --config.
func (c *CLI) loadOptions(cmd *cobra.Command) (domain.ScanOptions, error) {
	configPath, _ := cmd.Flags().GetString("config")
	return c.app.LoadOptions(configPath)
}
