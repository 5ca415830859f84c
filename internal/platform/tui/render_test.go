package tui

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-linkup/internal/core"
)

func TestRenderScreenPlain(t *testing.T) {
	s := core.NewScreen(4, 2)
	s.DrawText(0, 0, "ab")

	if got, want := RenderScreen(s), "ab  \n    "; got != want {
		t.Errorf("RenderScreen() = %q, want %q", got, want)
	}
}

func TestRenderScreenStyledRuns(t *testing.T) {
	s := core.NewScreen(6, 1)
	s.DrawTextWithColor(0, 0, "XY", core.ColorRed)
	s.DrawTextStyled(3, 0, "Z", core.ColorGreen, core.AttrBold|core.AttrReverse)

	got := RenderScreen(s)
	// Same-colored neighbours render as one run
	if !strings.Contains(got, "XY") {
		t.Errorf("RenderScreen() = %q, want the red run kept together", got)
	}
	if !strings.Contains(got, "Z") {
		t.Errorf("RenderScreen() = %q, want the styled cell", got)
	}
	if strings.Contains(got, "\n") {
		t.Errorf("single-row screen rendered %d lines", strings.Count(got, "\n")+1)
	}
}

func TestCellStyleUnknownColor(t *testing.T) {
	// Falls back to the default style instead of panicking
	_ = cellStyle(core.Color(250), core.AttrNone).Render("x")
}
