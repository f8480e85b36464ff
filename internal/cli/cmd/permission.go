package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/scanclip/internal/cli/styles"
)

var permissionCmd = &cobra.Command{
	Use:   "permission",
	Short: "Inspect the stored camera permission outcome",
	Long: `Show or clear the last camera permission outcome.

The stored outcome is informational: every scan asks for access again,
as decided by permission.mode in the config file.`,
}

var permissionStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the last camera permission outcome",
	RunE:  runPermissionStatus,
}

var permissionResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Forget the stored camera permission outcome",
	RunE:  runPermissionReset,
}

func init() {
	rootCmd.AddCommand(permissionCmd)
	permissionCmd.AddCommand(permissionStatusCmd)
	permissionCmd.AddCommand(permissionResetCmd)
}

func runPermissionStatus(cmd *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	renderer := styles.NewPermissionRenderer(app.Theme)
	state := app.Gate.Status(app.Ctx())
	fmt.Fprintln(cmd.OutOrStdout(), renderer.RenderStatus(state, string(app.Config.Permission.Mode)))
	return nil
}

func runPermissionReset(cmd *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	if err := app.Gate.Forget(app.Ctx()); err != nil {
		return fmt.Errorf("reset permission: %w", err)
	}

	fmt.Fprintln(cmd.OutOrStdout(), styles.NewPermissionRenderer(app.Theme).RenderReset())
	return nil
}
