package system

import (
	"os"

	clog "github.com/charmbracelet/log"
)

// Logger is the command's own diagnostics logger. It prints to stderr so
// stdout carries only rendered log lines.
var Logger = clog.NewWithOptions(os.Stderr, clog.Options{
	ReportTimestamp: true,
	Prefix:          "mogger",
})

// SetVerbose switches diagnostics between info and debug level.
func SetVerbose(v bool) {
	if v {
		Logger.SetLevel(clog.DebugLevel)
		return
	}
	Logger.SetLevel(clog.InfoLevel)
}
