package mogger

import (
	"fmt"
	"strings"
)

// TimeFormat selects how the timestamp prefix is written.
// TimeNone, the zero value, omits the timestamp.
type TimeFormat int

const (
	TimeNone TimeFormat = iota
	// TimeDefault renders "15:04".
	TimeDefault
	// TimeClockDateMonthYear renders "15:04 02/01/2006".
	TimeClockDateMonthYear
)

// Layout returns the time.Format layout for t, or "" for TimeNone.
func (t TimeFormat) Layout() string {
	switch t {
	case TimeDefault:
		return "15:04"
	case TimeClockDateMonthYear:
		return "15:04 02/01/2006"
	default:
		return ""
	}
}

// Enabled reports whether a timestamp is rendered.
func (t TimeFormat) Enabled() bool { return t.Layout() != "" }

func (t TimeFormat) String() string {
	switch t {
	case TimeNone:
		return "none"
	case TimeDefault:
		return "default"
	case TimeClockDateMonthYear:
		return "clock-date-month-year"
	default:
		return fmt.Sprintf("TimeFormat(%d)", int(t))
	}
}

// ParseTimeFormat is the inverse of TimeFormat.String. An empty string
// parses as TimeNone.
func ParseTimeFormat(s string) (TimeFormat, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "none", "off":
		return TimeNone, nil
	case "default":
		return TimeDefault, nil
	case "clock-date-month-year":
		return TimeClockDateMonthYear, nil
	}
	return 0, fmt.Errorf("time format %q: %w", s, ErrUnknownValue)
}

// LevelFormat selects how the level prefix is written.
// LevelFormatNone, the zero value, omits the prefix.
type LevelFormat int

const (
	LevelFormatNone LevelFormat = iota
	LevelFormatDefault
)

// Enabled reports whether a level prefix is rendered.
func (l LevelFormat) Enabled() bool { return l == LevelFormatDefault }

func (l LevelFormat) String() string {
	switch l {
	case LevelFormatNone:
		return "none"
	case LevelFormatDefault:
		return "default"
	default:
		return fmt.Sprintf("LevelFormat(%d)", int(l))
	}
}

// ParseLevelFormat is the inverse of LevelFormat.String. An empty string
// parses as LevelFormatNone.
func ParseLevelFormat(s string) (LevelFormat, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "none", "off":
		return LevelFormatNone, nil
	case "default":
		return LevelFormatDefault, nil
	}
	return 0, fmt.Errorf("level format %q: %w", s, ErrUnknownValue)
}

// OutputType selects the sink lines are written to.
type OutputType int

const (
	OutputConsole OutputType = iota
)

func (o OutputType) String() string {
	switch o {
	case OutputConsole:
		return "console"
	default:
		return fmt.Sprintf("OutputType(%d)", int(o))
	}
}

// ParseOutputType is the inverse of OutputType.String. An empty string
// parses as OutputConsole.
func ParseOutputType(s string) (OutputType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "console":
		return OutputConsole, nil
	}
	return 0, fmt.Errorf("output %q: %w", s, ErrUnknownValue)
}

// Config holds the formatting options of a Mogger. It is copied into the
// Mogger on construction and never changed afterwards.
type Config struct {
	Time   TimeFormat
	Level  LevelFormat
	Output OutputType
}

// DefaultConfig is the configuration used by Default.
func DefaultConfig() Config {
	return NewBuilder().
		TimeFormat(TimeClockDateMonthYear).
		LevelFormat(LevelFormatDefault).
		Build()
}

// Builder accumulates Config options.
type Builder struct {
	time  TimeFormat
	level LevelFormat
}

// NewBuilder returns a Builder with both prefixes disabled.
func NewBuilder() *Builder { return &Builder{} }

// TimeFormat sets the timestamp format. TimeNone disables the timestamp.
func (b *Builder) TimeFormat(t TimeFormat) *Builder {
	b.time = t
	return b
}

// LevelFormat sets the level prefix format. LevelFormatNone disables it.
func (b *Builder) LevelFormat(l LevelFormat) *Builder {
	b.level = l
	return b
}

// Build returns the Config. The output is always the console.
func (b *Builder) Build() Config {
	return Config{
		Time:   b.time,
		Level:  b.level,
		Output: OutputConsole,
	}
}
