package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mkwd/cli/internal/output"
	"github.com/mkwd/cli/internal/scaffold"
)

// NewNewCmd creates the new command.
func NewNewCmd() *cobra.Command {
	var (
		flavorFlag string
		dirFlag    string
		portFlag   int
		dryRunFlag bool
	)

	newCmd := &cobra.Command{
		Use:   "new <name>",
		Short: "Generate a new project",
		Long: `Generate a new project tree for the given name.

The project name may contain letters, digits, spaces, hyphens, underscores,
and dots; derived forms (snake_case directory name, package identifier,
database name) are computed from it. The target directory defaults to the
snake_case name under the current directory and must not already contain
files.`,
		Example: `  mkwd new "My Portfolio"
  mkwd new blog-api --flavor api --port 9000
  mkwd new shop --flavor fullstack --dir /tmp/shop --dry-run`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runNew(cmd, args[0], flavorFlag, dirFlag, portFlag, dryRunFlag)
		},
	}

	newCmd.Flags().StringVarP(&flavorFlag, "flavor", "f", "", "Project flavor: portfolio, api, fullstack (env: MKWD_FLAVOR)")
	newCmd.Flags().StringVarP(&dirFlag, "dir", "d", "", "Target directory (default: snake_case project name)")
	newCmd.Flags().IntVarP(&portFlag, "port", "p", 0, "Application port baked into the project (env: MKWD_PORT)")
	newCmd.Flags().BoolVar(&dryRunFlag, "dry-run", false, "Show the files that would be created without writing them")

	return newCmd
}

func runNew(cmd *cobra.Command, name, flavorName, dir string, port int, dryRun bool) error {
	if flavorName == "" {
		flavorName = cliConfig.DefaultFlavor
	}
	flavor, err := scaffold.ParseFlavor(flavorName)
	if err != nil {
		return NewExitError(err, ExitValidationError)
	}

	if port == 0 {
		port = cliConfig.APIPort
	}

	if dir == "" {
		dir, err = scaffold.DefaultTargetDir(name)
		if err != nil {
			return NewExitError(err, ExitValidationError)
		}
	}

	opts := scaffold.GenerateOptions{
		Flavor:      flavor,
		ProjectName: name,
		TargetDir:   dir,
		APIPort:     port,
	}

	if dryRun {
		return runNewDryRun(cmd, opts)
	}

	gen := scaffold.NewGenerator(opts)
	var result *scaffold.Result
	err = output.RunWithSpinner(cmd.Context(), fmt.Sprintf("Generating %s project...", flavor), func() error {
		var genErr error
		result, genErr = gen.Generate()
		return genErr
	})
	if err != nil {
		return NewExitError(err, ExitCodeFromError(err))
	}

	printSummary(result)
	return nil
}

// runNewDryRun builds the plan and prints the would-be tree without touching
// the filesystem.
func runNewDryRun(cmd *cobra.Command, opts scaffold.GenerateOptions) error {
	gen := scaffold.NewGenerator(opts)
	plan, err := gen.Plan()
	if err != nil {
		return NewExitError(err, ExitCodeFromError(err))
	}

	styles := output.GetStyles()
	output.Println(styles.Bold.Render(fmt.Sprintf("Would create %d files (%s flavor):", len(plan.Files), plan.Flavor)))
	output.Print(output.RenderFileTree(opts.TargetDir, fileEntries(plan)))
	return nil
}

func printSummary(result *scaffold.Result) {
	styles := output.GetStyles()

	output.Println(output.FormatCheckmark(fmt.Sprintf("Created %s project in %s (%d files)",
		styles.Noun.Render(string(result.Flavor)),
		styles.Noun.Render(result.TargetDir),
		result.FileCount)))
	output.Println("")
	output.Println(styles.Bold.Render("Next steps:"))
	output.Println("  cd " + result.TargetDir)
	output.Println("  python -m venv venv && source venv/bin/activate")
	output.Println("  pip install -r requirements.txt")
	output.Println("  python app/main.py")
}

// fileEntries pairs the plan's paths with their catalog descriptions for the
// tree renderer.
func fileEntries(plan *scaffold.Plan) []output.FileEntry {
	descriptions := make(map[string]string)
	if specs, err := scaffold.SpecsFor(plan.Flavor); err == nil {
		for _, spec := range specs {
			descriptions[spec.Path] = spec.Description
		}
	}

	entries := make([]output.FileEntry, 0, len(plan.Files))
	for _, f := range plan.Files {
		entries = append(entries, output.FileEntry{
			Path:        f.Path,
			Description: descriptions[f.Path],
		})
	}
	return entries
}
