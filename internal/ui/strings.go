package ui

import (
	"fmt"
	"strconv"
	"strings"
)

// truncate shortens a string to the given limit, adding ellipsis if needed.
func truncate(value string, limit int) string {
	value = strings.TrimSpace(value)
	if limit <= 0 {
		return value
	}
	runes := []rune(value)
	if len(runes) <= limit {
		return value
	}
	if limit <= 3 {
		return string(runes[:limit])
	}
	return string(runes[:limit-3]) + "..."
}

// formatTemp renders a Celsius value without a trailing ".0".
func formatTemp(c float64) string {
	return strconv.FormatFloat(c, 'f', -1, 64) + "°C"
}

// formatUV renders the UV index with one decimal at most.
func formatUV(uv float64) string {
	return strconv.FormatFloat(uv, 'f', -1, 64)
}

func formatPercent(v int) string {
	return fmt.Sprintf("%d%%", v)
}

// orDash substitutes a dash for blank values.
func orDash(value string) string {
	if strings.TrimSpace(value) == "" {
		return "-"
	}
	return value
}

// padRight pads a string with spaces to the given width.
func padRight(s string, width int) string {
	if width <= 0 {
		return s
	}
	r := []rune(s)
	if len(r) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(r))
}
