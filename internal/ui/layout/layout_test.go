package layout

import (
	"strings"
	"testing"

	"charm.land/lipgloss/v2"
)

func TestIsTooSmall(t *testing.T) {
	tests := []struct {
		w, h int
		want bool
	}{
		{80, 24, false},
		{60, 20, false},
		{59, 24, true},
		{80, 19, true},
	}
	for _, tc := range tests {
		if got := IsTooSmall(tc.w, tc.h); got != tc.want {
			t.Errorf("IsTooSmall(%d, %d) = %v, want %v", tc.w, tc.h, got, tc.want)
		}
	}
}

func TestRenderHeader_ContainsParts(t *testing.T) {
	h := RenderHeader("Session", "Vocabulary · Day 2", 80)
	for _, want := range []string{"QuizDay", "Session", "Vocabulary · Day 2"} {
		if !strings.Contains(h, want) {
			t.Errorf("header missing %q", want)
		}
	}
}

func TestRenderFrame_FillsHeight(t *testing.T) {
	header := RenderHeader("T", "", 80)
	footer := RenderFooter([]KeyHint{{Key: "Esc", Description: "Back"}}, 80)
	frame := RenderFrame(header, "body", footer, 80, 24)
	if got := lipgloss.Height(frame); got != 24 {
		t.Errorf("frame height = %d, want 24", got)
	}
}

func TestDivider_Width(t *testing.T) {
	tests := []struct {
		width, max int
		want       int
	}{
		{80, 60, 60},
		{40, 60, 32},
		{4, 60, 0},
	}
	for _, tc := range tests {
		if got := lipgloss.Width(Divider(tc.width, tc.max)); got != tc.want {
			t.Errorf("Divider(%d, %d) width = %d, want %d", tc.width, tc.max, got, tc.want)
		}
	}
}
