package tableui

import (
	"fmt"
	"strconv"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/wesen/ptable/internal/elements"
)

// panelBG is slightly lighter than the canvas for visible distinction.
var panelBG = c("#19212a")

// Panel styles, all sharing the panel background.
var (
	panelTitleStyle = lipgloss.NewStyle().
			Foreground(colorAccent).
			Background(panelBG).
			Bold(true)

	panelDimStyle = lipgloss.NewStyle().
			Foreground(c("#46525e")).
			Background(panelBG)

	panelTextStyle = lipgloss.NewStyle().
			Foreground(c("#aeb9c4")).
			Background(panelBG)

	panelLabelStyle = lipgloss.NewStyle().
			Foreground(c("#6e7b87")).
			Background(panelBG)

	panelValueStyle = lipgloss.NewStyle().
			Foreground(colorText).
			Background(panelBG)

	panelSepStyle = lipgloss.NewStyle().
			Foreground(c("#2a3640")).
			Background(colorBG)

	panelLineStyle = lipgloss.NewStyle().
			Background(panelBG)
)

// padLine right-pads a styled line with background-colored spaces to
// the given width.
func padLine(s string, width int) string {
	vis := lipgloss.Width(s)
	if pad := width - vis; pad > 0 {
		s += panelLineStyle.Render(strings.Repeat(" ", pad))
	}
	return s
}

// buildDetailPanelLayer renders the element detail panel. Under an
// Element highlight it shows the bound element; an unoccupied target
// leaves the panel empty; any other target shows the hover hint.
func buildDetailPanelLayer(table *elements.Table, highlight Highlight,
	x, y, width, height int) *lipgloss.Layer {

	lines := []string{
		panelTitleStyle.Render(" ELEMENT"),
		panelDimStyle.Render(strings.Repeat("─", max(width-2, 0))),
	}

	switch {
	case highlight.Kind != HighlightElement:
		lines = append(lines, panelDimStyle.Render("  (hover an element)"))

	default:
		el, ok := table.At(highlight.Pos)
		if !ok {
			break // empty panel for an unoccupied target
		}
		lines = append(lines, detailLines(el, width)...)
	}

	for len(lines) < height {
		lines = append(lines, "")
	}
	lines = lines[:height]
	for i, l := range lines {
		lines[i] = padLine(l, width)
	}

	return lipgloss.NewLayer(strings.Join(lines, "\n")).
		X(x).Y(y).Z(1).ID("panel-detail")
}

// detailLines renders one element's panel body. Absent optional
// properties produce no line at all.
func detailLines(el elements.ChemicalElement, width int) []string {
	symStyle := lipgloss.NewStyle().
		Foreground(phaseColor(el.Phase)).
		Background(panelBG).
		Bold(true)

	var lines []string
	lines = append(lines,
		panelLabelStyle.Render(fmt.Sprintf("  %d ", el.Number))+symStyle.Render(el.Symbol),
		panelValueStyle.Render("  "+el.Name),
		panelTextStyle.Render("  "+FormatMass(el.AtomicMass)+" u"),
		panelTextStyle.Render("  "+el.Category+" · "+el.Phase),
		"",
	)

	prop := func(label, value string) {
		line := panelLabelStyle.Render(fmt.Sprintf("  %-10s", label)) +
			panelValueStyle.Render(value)
		lines = append(lines, line)
	}
	num := func(label string, v *float64) {
		if v != nil {
			prop(label, strconv.FormatFloat(*v, 'f', -1, 64))
		}
	}
	str := func(label string, v *string) {
		if v != nil {
			prop(label, fitName(*v, max(width-14, 0)))
		}
	}

	str("appearance", el.Appearance)
	num("density", el.Density)
	num("melt K", el.MeltingPoint)
	num("boil K", el.BoilingPoint)
	num("molar heat", el.MolarHeat)
	num("affinity", el.ElectronAffinity)
	num("pauling", el.ElectronegativityPauling)
	str("found by", el.DiscoveredBy)
	str("named by", el.NamedBy)

	if len(el.Shells) > 0 {
		parts := make([]string, len(el.Shells))
		for i, s := range el.Shells {
			parts[i] = strconv.Itoa(s)
		}
		prop("shells", strings.Join(parts, "·"))
	}
	if el.ElectronConfiguration != "" {
		prop("config", fitName(el.ElectronConfiguration, max(width-14, 0)))
	}

	if el.Summary != nil && *el.Summary != "" {
		lines = append(lines, "")
		wrapped := panelTextStyle.Width(max(width-2, 0)).
			Render(fitName(*el.Summary, 320))
		lines = append(lines, strings.Split(wrapped, "\n")...)
	}

	return lines
}

// buildSeparatorLayer draws the vertical divider between canvas and
// panel.
func buildSeparatorLayer(x, y, height int) *lipgloss.Layer {
	lines := make([]string, height)
	for i := range lines {
		lines[i] = panelSepStyle.Render("│")
	}
	return lipgloss.NewLayer(strings.Join(lines, "\n")).
		X(x).Y(y).Z(1).ID("separator")
}
