package cli

import (
	"errors"
	"strings"

	"github.com/spf13/cobra"

	"mogger/internal/system"
	"mogger/pkg/mogger"
)

var (
	logLevel       string
	logTime        string
	logLevelFormat string
)

func init() {
	rootCmd.AddCommand(logCmd)
	logCmd.Flags().StringVarP(&logLevel, "level", "l", "info", "debug, info, warning or error")
	logCmd.Flags().StringVar(&logTime, "time", "", "override time format: none, default, clock-date-month-year")
	logCmd.Flags().StringVar(&logLevelFormat, "level-format", "", "override level format: none, default")
}

var logCmd = &cobra.Command{
	Use:   "log <message...>",
	Short: "Print one log line",
	Long:  "Join the arguments with spaces and print them as one log line at --level.",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		level, err := mogger.ParseLevel(logLevel)
		if err != nil {
			return err
		}
		s, _, err := loadSettings()
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("time") {
			if s.Config.Time, err = mogger.ParseTimeFormat(logTime); err != nil {
				return err
			}
			system.Logger.Debug("time format overridden", "time", s.Config.Time)
		}
		if cmd.Flags().Changed("level-format") {
			if s.Config.Level, err = mogger.ParseLevelFormat(logLevelFormat); err != nil {
				return err
			}
			system.Logger.Debug("level format overridden", "level", s.Config.Level)
		}
		if err := installLogger(s); err != nil {
			if errors.Is(err, mogger.ErrAlreadyInitialized) {
				system.Logger.Warn("logger already installed, reusing it")
			} else {
				return err
			}
		}
		registry.Log(level, strings.Join(args, " "))
		return nil
	},
}
