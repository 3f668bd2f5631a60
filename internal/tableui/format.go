package tableui

import (
	"strconv"
	"unicode/utf8"
)

// FormatMass renders an atomic mass with exactly three digits after the
// decimal point. Display-only; the stored value is never touched.
func FormatMass(mass float64) string {
	return strconv.FormatFloat(mass, 'f', 3, 64)
}

// nameTier classifies an element name into one of three display tiers.
// Long names give up horizontal breathing room in two steps; the
// boundaries are strictly greater-than.
func nameTier(name string) int {
	switch n := utf8.RuneCountInString(name); {
	case n > 11:
		return 2
	case n > 9:
		return 1
	default:
		return 0
	}
}

// fitName clips a string to the given width without decoration.
func fitName(name string, width int) string {
	runes := []rune(name)
	if len(runes) <= width {
		return name
	}
	return string(runes[:width])
}

// displayName renders an element name for a cell of the given width.
// Tier 0 names fit untouched (the caller centers them), tier 1 names
// fill the cell edge to edge, tier 2 names are truncated with a
// trailing ellipsis.
func displayName(name string, width int) string {
	runes := []rune(name)
	if len(runes) <= width {
		return name
	}
	if nameTier(name) == 2 && width > 0 {
		return string(runes[:width-1]) + "…"
	}
	return string(runes[:width])
}
