package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mkwd/cli/internal/config"
	"github.com/mkwd/cli/internal/output"
)

var (
	// Global flags
	configFlag  string
	verboseFlag bool

	// Resolved configuration (loaded during PersistentPreRunE)
	cliConfig *config.Config
)

// NewRootCmd creates the root command for the mkwd CLI.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "mkwd",
		Short: "Scaffold FastAPI project trees",
		Long: `mkwd generates ready-to-run FastAPI project skeletons.

Pick a flavor (portfolio, api, fullstack), give the project a name, and mkwd
writes the full directory tree: application code, configuration, Docker
files, and a fresh secret key in .env.example.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initializeGlobals(cmd)
		},
	}

	rootCmd.PersistentFlags().StringVar(&configFlag, "config", "", "Path to config file (env: MKWD_CONFIG)")
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "Enable verbose output")

	rootCmd.AddCommand(NewNewCmd())
	rootCmd.AddCommand(NewFlavorsCmd())
	rootCmd.AddCommand(NewVersionCmd())

	return rootCmd
}

// initializeGlobals sets up logging and loads configuration.
func initializeGlobals(cmd *cobra.Command) error {
	loaded, err := config.NewLoader().Load(configFlag)
	if err != nil {
		// A config file was named but could not be used. Commands should not
		// silently run with defaults the user did not ask for.
		return NewExitError(err, ExitGeneralError)
	}
	cliConfig = loaded

	output.SetupLogging(verboseFlag || cliConfig.Verbose)
	output.Debug("configuration loaded",
		"flavor", cliConfig.DefaultFlavor,
		"port", cliConfig.APIPort)

	return nil
}
