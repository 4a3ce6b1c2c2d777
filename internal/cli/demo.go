package cli

import (
	"github.com/spf13/cobra"

	"mogger/pkg/mogger"
)

func init() {
	rootCmd.AddCommand(demoCmd)
}

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Print one line per level",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runDemo()
	},
}

var demoMessages = map[mogger.Level]string{
	mogger.LevelDebug:   "cache warmed in 12ms",
	mogger.LevelInfo:    "listening on :8080",
	mogger.LevelWarning: "disk nearly full",
	mogger.LevelError:   "upstream unreachable",
}

func runDemo() error {
	s, _, err := loadSettings()
	if err != nil {
		return err
	}
	m := newLogger(s)
	for _, l := range mogger.Levels {
		m.Log(l, demoMessages[l])
	}
	return nil
}
