package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/scanclip/internal/application/usecase"
	"github.com/bnema/scanclip/internal/cli/styles"
	"github.com/bnema/scanclip/internal/infrastructure/config"
)

var configKeysJSON bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect configuration",
	Long:  `Show where the config file lives, the effective values and the available keys.`,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the config file path",
	RunE: func(cmd *cobra.Command, _ []string) error {
		app := GetApp()
		if app == nil {
			return fmt.Errorf("app not initialized")
		}
		fmt.Fprintln(cmd.OutOrStdout(), app.ConfigManager.GetConfigFile())
		return nil
	},
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration as TOML",
	Long: `Print the configuration after applying defaults, the config file and
SCANCLIP_* environment overrides.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		app := GetApp()
		if app == nil {
			return fmt.Errorf("app not initialized")
		}
		content, err := config.MarshalOrdered(app.Config)
		if err != nil {
			return err
		}
		fmt.Fprint(cmd.OutOrStdout(), string(content))
		return nil
	},
}

var configSchemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the JSON schema of the config file",
	RunE: func(cmd *cobra.Command, _ []string) error {
		schema, err := config.GenerateSchema()
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(schema))
		return nil
	},
}

var configKeysCmd = &cobra.Command{
	Use:   "keys [section]",
	Short: "List configuration keys with defaults and allowed values",
	Long: `List every configuration key with its type, default value, allowed values
and description. Pass a section name (scan, camera, permission, clipboard,
database, logging) to list only that section.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runConfigKeys,
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configPathCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSchemaCmd)
	configCmd.AddCommand(configKeysCmd)
	configKeysCmd.Flags().BoolVar(&configKeysJSON, "json", false, "output as JSON")
}

func runConfigKeys(cmd *cobra.Command, args []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	input := usecase.GetConfigSchemaInput{}
	if len(args) == 1 {
		input.Section = args[0]
	}

	result, err := app.SchemaUC.Execute(app.Ctx(), input)
	if err != nil {
		return fmt.Errorf("get config schema: %w", err)
	}

	renderer := styles.NewConfigSchemaRenderer(app.Theme)
	if configKeysJSON {
		out, err := renderer.RenderJSON(result.Keys)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), out)
		return nil
	}

	fmt.Fprintln(cmd.OutOrStdout(), renderer.Render(result.Keys))
	return nil
}
