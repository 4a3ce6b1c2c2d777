package mogger

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownValue is returned by the Parse functions for text that names
// no variant.
var ErrUnknownValue = errors.New("unknown value")

// Level is the severity of a log message.
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarning
	LevelError
)

// Levels lists every level in ascending severity.
var Levels = []Level{LevelDebug, LevelInfo, LevelWarning, LevelError}

func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "Debug"
	case LevelInfo:
		return "Info"
	case LevelWarning:
		return "Warning"
	case LevelError:
		return "Error"
	default:
		return fmt.Sprintf("Level(%d)", int(l))
	}
}

// ParseLevel maps a level name to a Level. Matching ignores case and
// accepts "warn" and "err" as short forms.
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return LevelDebug, nil
	case "info":
		return LevelInfo, nil
	case "warning", "warn":
		return LevelWarning, nil
	case "error", "err":
		return LevelError, nil
	}
	return 0, fmt.Errorf("level %q: %w", s, ErrUnknownValue)
}

// Format is the encoding of a rendered line. Only plain text exists.
type Format int

const (
	FormatPlainText Format = iota
)

func (f Format) String() string {
	switch f {
	case FormatPlainText:
		return "plain-text"
	default:
		return fmt.Sprintf("Format(%d)", int(f))
	}
}

// ParseFormat maps "plain-text" (or "plaintext") to FormatPlainText.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "plain-text", "plaintext":
		return FormatPlainText, nil
	}
	return 0, fmt.Errorf("format %q: %w", s, ErrUnknownValue)
}
