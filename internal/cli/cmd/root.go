// Package cmd provides Cobra CLI commands for scanclip.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bnema/scanclip/internal/cli"
	"github.com/bnema/scanclip/internal/domain/build"
)

var (
	app        *cli.App
	buildInfo  build.Info
	configFile string
	rootCmd    = &cobra.Command{
		Use:   "scanclip",
		Short: "Scan QR codes and barcodes into your clipboard",
		Long: `scanclip - scan a code, keep the text, copy it when you want.

A scan session asks for camera access, opens the scan surface and keeps
exactly one decoded payload, however many frames the decoder reports.
The payload stays available until the next scan and can be copied to
the clipboard on demand.

Decode events come from a spool directory watched for result files
(camera.source = "spool") or from standard input, one payload per line
(camera.source = "stdin").

Use 'scanclip scan' for the interactive scanner, or 'scanclip scan --once'
in scripts.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// Skip initialization for commands that don't need app context
			switch cmd.Name() {
			case "help", "completion", "gen-docs":
				return nil
			}

			var err error
			app, err = cli.NewApp(cli.AppOptions{
				ConfigFile: configFile,
				LogToFile:  cmd == scanCmd && !scanOnce,
			})
			if err != nil {
				return fmt.Errorf("initialize app: %w", err)
			}
			app.BuildInfo = buildInfo
			return nil
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			if app != nil {
				_ = app.Close()
			}
		},
	}
)

func init() {
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file (default $XDG_CONFIG_HOME/scanclip/config.toml)")
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// GetApp returns the initialized app (for use by subcommands).
func GetApp() *cli.App {
	return app
}

// SetBuildInfo sets the build information (called from main.go before Execute).
func SetBuildInfo(info build.Info) {
	buildInfo = info
}
