package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mkwd/cli/internal/output"
	"github.com/mkwd/cli/internal/scaffold"
)

// NewFlavorsCmd creates the flavors command.
func NewFlavorsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "flavors",
		Short: "List available project flavors",
		RunE:  runFlavors,
	}
}

func runFlavors(cmd *cobra.Command, args []string) error {
	styles := output.GetStyles()

	output.Println(styles.Bold.Render("Available flavors:"))
	for _, flavor := range scaffold.Flavors() {
		marker := " "
		if string(flavor) == cliConfig.DefaultFlavor {
			marker = "*"
		}
		paths, err := scaffold.FlavorPaths(flavor)
		if err != nil {
			return err
		}
		output.Println(fmt.Sprintf("%s %s %s %s",
			marker,
			styles.Noun.Render(fmt.Sprintf("%-10s", flavor)),
			flavor.Description(),
			styles.Muted.Render(fmt.Sprintf("(%d files)", len(paths)))))
	}
	output.Println("")
	output.Println(styles.Muted.Render("* default (set via MKWD_FLAVOR or the config file)"))
	return nil
}
