package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/scanclip/internal/cli/styles"
)

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check the environment and diagnose issues",
	Long: `Doctor checks what scanclip needs at runtime:

- the config file
- the camera source (spool directory or stdin)
- the clipboard backend
- the permission database

It exits non-zero when a check needs attention.`,
	RunE: runDoctor,
}

func init() {
	rootCmd.AddCommand(doctorCmd)
}

func runDoctor(cmd *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	out, err := app.NewDiagnostics().Execute(app.Ctx())
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), styles.NewDoctorRenderer(app.Theme).Render(out))
	if !out.OK {
		return fmt.Errorf("doctor found issues")
	}
	return nil
}
