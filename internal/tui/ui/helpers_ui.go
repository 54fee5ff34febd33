package ui

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/hy4ri/campus-tui/internal/tui/styles"
)

// truncateString truncates a string to the given width, appending "…" if truncated.
// It handles wide characters correctly using runewidth.
func truncateString(s string, maxLen int) string {
	if maxLen <= 0 {
		return ""
	}
	return runewidth.Truncate(s, maxLen, "…")
}

// progressBar renders percent (0-100) as a bar of the given width.
func progressBar(percent, width int) string {
	percent = max(0, min(percent, 100))
	filled := percent * width / 100
	return styles.ProgressFilled.Render(strings.Repeat("█", filled)) +
		styles.ProgressEmpty.Render(strings.Repeat("░", width-filled)) +
		fmt.Sprintf(" %3d%%", percent)
}

// categoryLine describes the active category filter.
func categoryLine(category string) string {
	if category == "" {
		return styles.Subtitle.Render("Category: all")
	}
	return styles.Subtitle.Render("Category: ") + styles.CategoryBadge.Render(category)
}

// scrollWindow returns the [start, end) range of n rows of equal height
// that keeps cursor visible within height rows.
func scrollWindow(cursor, n, height int) (int, int) {
	if n <= height {
		return 0, n
	}
	start := max(0, cursor-height+1)
	end := min(n, start+height)
	return start, end
}
