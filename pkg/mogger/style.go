package mogger

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Level colors as ANSI indexes; the renderer degrades them to the
// writer's profile.
var levelColors = map[Level]lipgloss.Color{
	LevelInfo:    lipgloss.Color("15"), // white
	LevelWarning: lipgloss.Color("11"), // yellow
	LevelError:   lipgloss.Color("9"),  // red
}

// resetSeq clears the foreground color set by a level prefix.
const resetSeq = termenv.CSI + termenv.ResetSeq + "m"

// levelStyles builds one style per level bound to r. Debug gets a bare
// style, which renders without escapes.
func levelStyles(r *lipgloss.Renderer) map[Level]lipgloss.Style {
	styles := make(map[Level]lipgloss.Style, len(Levels))
	for _, l := range Levels {
		s := r.NewStyle()
		if c, ok := levelColors[l]; ok {
			s = s.Foreground(c)
		}
		styles[l] = s
	}
	return styles
}
