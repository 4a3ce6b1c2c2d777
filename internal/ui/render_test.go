package ui

import (
	"strings"
	"testing"

	xansi "github.com/charmbracelet/x/ansi"
)

func TestRenderBox_AlignsKeys(t *testing.T) {
	out := RenderBox("settings", []Field{
		{Key: "time", Value: "default"},
		{Key: "output", Value: "console"},
	}, "/tmp/config.yaml")

	lines := strings.Split(strings.TrimSuffix(xansi.Strip(out), "\n"), "\n")
	if len(lines) != 8 {
		t.Fatalf("expected 8 lines, got %d:\n%s", len(lines), out)
	}
	width := xansi.StringWidth(lines[0])
	for i, ln := range lines {
		if w := xansi.StringWidth(ln); w != width {
			t.Fatalf("line %d width %d, want %d: %q", i, w, width, ln)
		}
	}
	if !strings.Contains(lines[3], "time    default") {
		t.Fatalf("time key should be padded to output's width: %q", lines[3])
	}
}
