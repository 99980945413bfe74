package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// ---------------------------------------------------------------------------
// Styles — Catppuccin Mocha themed
// ---------------------------------------------------------------------------

var (
	titleStyle = lipgloss.NewStyle().Foreground(colorBrand).Bold(true)

	// Header bar (spans full width)
	headerBarStyle = lipgloss.NewStyle().
			Foreground(colorText).
			Background(colorMantle).
			Padding(0, 2)

	headerAppStyle = lipgloss.NewStyle().
			Foreground(colorBrand).
			Background(colorMantle).
			Bold(true)

	activeTabStyle = lipgloss.NewStyle().
			Foreground(colorAccent).
			Background(colorSurface0).
			Bold(true).
			Padding(0, 1)

	inactiveTabStyle = lipgloss.NewStyle().
				Foreground(colorOverlay1).
				Background(colorMantle).
				Padding(0, 1)

	tabSepStyle = lipgloss.NewStyle().
			Foreground(colorOverlay0).
			Background(colorMantle)

	footerStyle = lipgloss.NewStyle().
			Foreground(colorSubtext0).
			Background(colorMantle).
			Padding(0, 2)

	statusBarStyle = lipgloss.NewStyle().
			Foreground(colorSubtext1).
			Background(colorSurface0).
			Padding(0, 2)

	errorBarStyle = statusBarStyle.Foreground(colorError)

	listBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorSurface1).
			Padding(0, 1)

	focusBoxStyle = listBoxStyle.BorderForeground(colorFocus)

	helpKeyStyle = lipgloss.NewStyle().
			Foreground(colorAccent).
			Bold(true)

	helpDescStyle = lipgloss.NewStyle().
			Foreground(colorSubtext0)

	dimStyle    = lipgloss.NewStyle().Foreground(colorOverlay1)
	cursorStyle = lipgloss.NewStyle().Foreground(colorAccent).Bold(true)
	errorStyle  = lipgloss.NewStyle().Foreground(colorError).Bold(true)
	warnStyle   = lipgloss.NewStyle().Foreground(colorWarning)
	infoStyle   = lipgloss.NewStyle().Foreground(colorInfo)
	okStyle     = lipgloss.NewStyle().Foreground(colorSuccess)

	displayStyle = lipgloss.NewStyle().
			Foreground(colorText).
			Background(colorSurface0).
			Bold(true).
			Padding(0, 1).
			Align(lipgloss.Right)

	bigTimeStyle = lipgloss.NewStyle().Foreground(colorAccent).Bold(true).Padding(1, 4)
)

// ---------------------------------------------------------------------------
// Section & chrome rendering
// ---------------------------------------------------------------------------

func renderHeader(appName string, activeTab, width int) string {
	name := headerAppStyle.Render(appName)

	var tabs []string
	for i, tab := range tabNames {
		label := fkeyLabel(i) + " " + tab
		if i == activeTab {
			tabs = append(tabs, activeTabStyle.Render(label))
		} else {
			tabs = append(tabs, inactiveTabStyle.Render(label))
		}
	}
	tabBar := tabSepStyle.Render(" ") + strings.Join(tabs, tabSepStyle.Render("│"))

	line := name + "  " + tabBar
	if width <= 0 {
		return headerBarStyle.Render(line)
	}
	return headerBarStyle.Width(width).Render(truncate(line, width))
}

func renderSection(title, content string, width int, focused bool) string {
	style := listBoxStyle
	if focused {
		style = focusBoxStyle
	}
	if width <= 0 {
		return style.Render(titleStyle.Render(title) + "\n" + content)
	}
	contentWidth := max(width-4, 1)
	header := padRight(titleStyle.Render(title), contentWidth)
	sep := lipgloss.NewStyle().Foreground(colorSurface2).Render(strings.Repeat("─", contentWidth))
	return style.Width(width - 2).Render(header + "\n" + sep + "\n" + content)
}

func renderFooter(bindings []key.Binding, width int) string {
	// Every character carries the footer background.
	bg := colorMantle
	keyStyle := helpKeyStyle.Background(bg)
	descStyle := helpDescStyle.Background(bg)
	space := lipgloss.NewStyle().Background(bg).Render(" ")
	sep := lipgloss.NewStyle().Background(bg).Render("  ")

	content := strings.Join(helpParts(bindings, keyStyle, descStyle, space), sep)
	if width <= 0 {
		return footerStyle.Render(content)
	}
	return footerStyle.Width(width).Render(truncate(content, width-4))
}

// renderHelp is the unstyled-background variant used inside sections.
func renderHelp(bindings []key.Binding) string {
	return strings.Join(helpParts(bindings, helpKeyStyle, helpDescStyle, " "), "  ")
}

func helpParts(bindings []key.Binding, keyStyle, descStyle lipgloss.Style, space string) []string {
	parts := make([]string, 0, len(bindings))
	for _, binding := range bindings {
		if !binding.Enabled() {
			continue
		}
		help := binding.Help()
		if help.Key == "" && help.Desc == "" {
			continue
		}
		parts = append(parts, keyStyle.Render(help.Key)+space+descStyle.Render(help.Desc))
	}
	return parts
}

func renderStatus(text string, isErr bool, width int) string {
	flat := strings.ReplaceAll(text, "\n", " ")
	style := statusBarStyle
	if isErr {
		style = errorBarStyle
	}
	if width <= 0 {
		return style.Render(flat)
	}
	return style.Width(width).Render(truncate(flat, width-4))
}

func placeWithFooter(body, statusLine, footer string, width, height int) string {
	if height == 0 {
		return body + "\n\n" + statusLine + "\n" + footer
	}
	contentHeight := max(height-2, 1)
	if lipgloss.Height(body) >= contentHeight {
		return body + "\n" + statusLine + "\n" + footer
	}
	main := lipgloss.Place(width, contentHeight, lipgloss.Left, lipgloss.Top, body)
	// Full-width lines prevent ghosting from previous frames.
	lines := strings.Split(main, "\n")
	for i, line := range lines {
		lines[i] = padRight(line, width)
	}
	return strings.Join(lines, "\n") + "\n" + statusLine + "\n" + footer
}

func padRight(s string, width int) string {
	if width <= 0 {
		return s
	}
	w := ansi.StringWidth(s)
	if w >= width {
		return s
	}
	return s + strings.Repeat(" ", width-w)
}

// truncate cuts styled text to width cells, keeping escape sequences intact.
func truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	return ansi.Truncate(s, width, "…")
}

func cursorMarker(selected bool) string {
	if selected {
		return cursorStyle.Render("▶")
	}
	return " "
}
