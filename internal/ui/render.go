package ui

import (
	"strings"

	xansi "github.com/charmbracelet/x/ansi"
)

// Field is one labeled line in a settings box.
type Field struct {
	Key   string
	Value string
}

// RenderBox draws title and fields inside a rounded box. Keys are padded
// to a common width; widths ignore ANSI codes so styled text lines up.
func RenderBox(title string, fields []Field, footer string) string {
	keyW := 0
	for _, f := range fields {
		if w := xansi.StringWidth(f.Key); w > keyW {
			keyW = w
		}
	}

	lines := []string{title, ""}
	for _, f := range fields {
		key := KeyStyle().Render(f.Key)
		pad := strings.Repeat(" ", keyW-xansi.StringWidth(f.Key))
		lines = append(lines, key+pad+"  "+ValueStyle().Render(f.Value))
	}
	if footer != "" {
		lines = append(lines, "", MutedStyle().Render(footer))
	}

	// compute max display width (ignore ANSI codes)
	max := 0
	for _, ln := range lines {
		if w := xansi.StringWidth(ln); w > max {
			max = w
		}
	}
	top := "╭" + strings.Repeat("─", max+2) + "╮\n"
	bot := "╰" + strings.Repeat("─", max+2) + "╯\n"
	var sb strings.Builder
	sb.WriteString(top)
	for _, ln := range lines {
		pad := max - xansi.StringWidth(ln)
		sb.WriteString("│ ")
		sb.WriteString(ln)
		if pad > 0 {
			sb.WriteString(strings.Repeat(" ", pad))
		}
		sb.WriteString(" │\n")
	}
	sb.WriteString(bot)
	return sb.String()
}
