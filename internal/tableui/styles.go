package tableui

import (
	"image/color"

	"charm.land/lipgloss/v2"
	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/wesen/ptable/internal/elements"
)

// c is shorthand for lipgloss.Color.
func c(hex string) color.Color { return lipgloss.Color(hex) }

// Base palette.
var (
	colorBG     = c("#101418")
	colorGutter = c("#0d1115")
	colorText   = c("#e8e8e8")
	colorFaint  = c("#5a6570")
	colorAccent = c("#7fd4ff")
	colorError  = c("#ff5f5f")

	headerColor = c("#7fd4ff")
	statusColor = c("#666666")
)

// categoryColors is the fixed category → cell background lookup.
// Initialized once; a miss falls back to categoryFallback.
var categoryColors = map[string]color.Color{
	"diatomic nonmetal":     c("#2e7d32"),
	"polyatomic nonmetal":   c("#558b2f"),
	"noble gas":             c("#6a1b9a"),
	"alkali metal":          c("#c62828"),
	"alkaline earth metal":  c("#ef6c00"),
	"metalloid":             c("#00695c"),
	"post-transition metal": c("#37474f"),
	"transition metal":      c("#1565c0"),
	"lanthanide":            c("#ad1457"),
	"actinide":              c("#4e342e"),
}

var categoryFallback = c("#555555")

// phaseColors is the fixed phase → symbol color lookup, with a neutral
// fallback for anything outside the known three.
var phaseColors = map[string]color.Color{
	elements.PhaseGas:    c("#80deea"),
	elements.PhaseLiquid: c("#64b5f6"),
	elements.PhaseSolid:  c("#f5f5f5"),
}

var phaseFallback = c("#9e9e9e")

// categoryColor resolves a category background.
func categoryColor(category string) color.Color {
	if col, ok := categoryColors[category]; ok {
		return col
	}
	return categoryFallback
}

// phaseColor resolves a symbol foreground.
func phaseColor(phase string) color.Color {
	if col, ok := phaseColors[phase]; ok {
		return col
	}
	return phaseFallback
}

// dimColor pushes a color most of the way to black. Dimmed cells stay
// recognizable but clearly recede.
func dimColor(col color.Color) color.Color {
	cf, ok := colorful.MakeColor(col)
	if !ok {
		return col
	}
	return cf.BlendLab(colorful.Color{R: 0.04, G: 0.05, B: 0.06}, 0.72).Clamped()
}

// hoverColor lifts a color toward white for the hovered element cell.
func hoverColor(col color.Color) color.Color {
	cf, ok := colorful.MakeColor(col)
	if !ok {
		return col
	}
	return cf.BlendLab(colorful.Color{R: 1, G: 1, B: 1}, 0.18).Clamped()
}

// Chrome styles.
var (
	headerStyle = lipgloss.NewStyle().
			Background(c("#0a1016")).
			Foreground(headerColor).
			Bold(true)

	statusStyle = lipgloss.NewStyle().
			Foreground(statusColor)

	bgStyle = lipgloss.NewStyle().
		Background(colorBG)

	overlayBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorAccent).
			Background(colorBG).
			Foreground(colorText).
			Padding(1, 3)

	failureBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(colorError).
			Background(colorBG).
			Foreground(colorText).
			Padding(1, 3)
)
