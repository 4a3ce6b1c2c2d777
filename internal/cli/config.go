package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	cfg "mogger/internal/config"
	"mogger/internal/settings"
	"mogger/internal/system"
	"mogger/internal/ui"
)

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configPathCmd, configShowCmd, configInitCmd, configSchemaCmd)
	configShowCmd.Flags().BoolVar(&configShowYAML, "yaml", false, "print raw config.yaml content")
}

var configShowYAML bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect and edit config.yaml",
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the config file path",
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := resolvePath()
		if err != nil {
			return err
		}
		fmt.Println(p)
		return nil
	},
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective settings",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, p, err := loadSettings()
		if err != nil {
			return err
		}
		if configShowYAML {
			b, err := cfg.Marshal(s)
			if err != nil {
				return err
			}
			fmt.Print(string(b))
			return nil
		}
		f := cfg.FileOf(s)
		fmt.Print(ui.RenderBox("mogger settings", []ui.Field{
			{Key: "time", Value: f.Time},
			{Key: "level", Value: f.Level},
			{Key: "output", Value: f.Output},
			{Key: "format", Value: f.Format},
		}, p))
		return nil
	},
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Edit config.yaml interactively",
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := resolvePath()
		if err != nil {
			return err
		}
		s, err := settings.Run(p)
		if err != nil {
			return err
		}
		system.Logger.Info("config written", "path", p, "time", s.Config.Time, "level", s.Config.Level)
		return nil
	},
}

var configSchemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the JSON Schema of config.yaml",
	RunE: func(cmd *cobra.Command, args []string) error {
		b, err := cfg.MarshalSchema(cfg.Schema())
		if err != nil {
			return err
		}
		fmt.Println(string(b))
		return nil
	},
}
