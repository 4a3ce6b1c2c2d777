package mogger

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Mogger renders log calls to the console. Construct it with New or
// Default; it is read-only afterwards and safe to share between
// goroutines.
type Mogger struct {
	config Config
	format Format

	out      io.Writer
	now      func() time.Time
	renderer *lipgloss.Renderer
	styles   map[Level]lipgloss.Style
}

// Option customizes a Mogger at construction.
type Option func(*options)

type options struct {
	out     io.Writer
	now     func() time.Time
	profile *termenv.Profile
}

// WithOutput replaces the writer behind the console sink (os.Stdout).
func WithOutput(w io.Writer) Option {
	return func(o *options) { o.out = w }
}

// WithClock replaces time.Now as the source of timestamps.
func WithClock(now func() time.Time) Option {
	return func(o *options) { o.now = now }
}

// WithColorProfile replaces the default termenv.ANSI profile.
// termenv.Ascii disables escape sequences entirely.
func WithColorProfile(p termenv.Profile) Option {
	return func(o *options) { o.profile = &p }
}

// New returns a Mogger for cfg and format. It does not touch the
// process-wide registry; see Init for that.
func New(cfg Config, format Format, opts ...Option) *Mogger {
	o := options{out: os.Stdout, now: time.Now}
	for _, opt := range opts {
		opt(&o)
	}
	// Escapes are written whether or not out is a terminal.
	profile := termenv.ANSI
	if o.profile != nil {
		profile = *o.profile
	}
	r := lipgloss.NewRenderer(o.out)
	r.SetColorProfile(profile)
	return &Mogger{
		config:   cfg,
		format:   format,
		out:      o.out,
		now:      o.now,
		renderer: r,
		styles:   levelStyles(r),
	}
}

// Default returns a Mogger with DefaultConfig and plain text output.
func Default(opts ...Option) *Mogger {
	return New(DefaultConfig(), FormatPlainText, opts...)
}

// Config returns a copy of the logger's configuration.
func (m *Mogger) Config() Config { return m.config }

// Format returns the logger's output format.
func (m *Mogger) Format() Format { return m.format }

// Log writes message at level to the configured sink. A failed write
// panics: there is nowhere left to report it.
func (m *Mogger) Log(level Level, message string) {
	switch m.config.Output {
	case OutputConsole:
		m.consoleWrite(level, message)
	default:
		panic(fmt.Sprintf("mogger: unsupported output %v", m.config.Output))
	}
}

func (m *Mogger) Debug(message string)   { m.Log(LevelDebug, message) }
func (m *Mogger) Info(message string)    { m.Log(LevelInfo, message) }
func (m *Mogger) Warning(message string) { m.Log(LevelWarning, message) }
func (m *Mogger) Error(message string)   { m.Log(LevelError, message) }

func (m *Mogger) consoleWrite(level Level, message string) {
	var b strings.Builder
	m.writeLevel(&b, level)
	m.writeTime(&b)
	b.WriteString(message)
	b.WriteByte('\n')

	if _, err := io.WriteString(m.out, b.String()); err != nil {
		panic(fmt.Errorf("mogger: write console: %w", err))
	}
}

// writeLevel emits the colored level prefix followed by a color reset.
// Nothing, reset included, is written when the level option is off.
func (m *Mogger) writeLevel(b *strings.Builder, level Level) {
	if !m.config.Level.Enabled() {
		return
	}
	prefix := "[" + level.String() + "] "
	if m.renderer.ColorProfile() == termenv.Ascii {
		b.WriteString(prefix)
		return
	}
	style, ok := m.styles[level]
	if !ok {
		style = m.renderer.NewStyle()
	}
	b.WriteString(style.Render(prefix))
	b.WriteString(resetSeq)
}

func (m *Mogger) writeTime(b *strings.Builder) {
	if !m.config.Time.Enabled() {
		return
	}
	b.WriteString("[")
	b.WriteString(m.timestamp())
	b.WriteString("] ")
}

// timestamp formats the current UTC time per the time option.
func (m *Mogger) timestamp() string {
	return m.now().UTC().Format(m.config.Time.Layout())
}
