package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/scanclip/internal/cli/styles"
)

var aboutShort bool

var aboutCmd = &cobra.Command{
	Use:     "about",
	Aliases: []string{"version"},
	Short:   "Show version and build information",
	Long:    `Display version, build info, repository URL, and contributors.`,
	RunE:    runAbout,
}

func init() {
	rootCmd.AddCommand(aboutCmd)
	aboutCmd.Flags().BoolVarP(&aboutShort, "short", "s", false, "print a single line")
}

func runAbout(cmd *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	renderer := styles.NewAboutRenderer(app.Theme)
	info := app.BuildInfo.Resolve()

	if aboutShort {
		fmt.Fprintln(cmd.OutOrStdout(), renderer.RenderShort(info))
		return nil
	}
	fmt.Fprintln(cmd.OutOrStdout(), renderer.Render(info))
	return nil
}
