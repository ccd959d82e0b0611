// Package tui is Zenith's full-screen dashboard: one tab per domain, each
// with an on-demand AI insight underneath.
package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Palette.
var (
	ColorPrimary   = lipgloss.Color("#0EA5E9") // sky
	ColorSecondary = lipgloss.Color("#14B8A6") // teal
	ColorMuted     = lipgloss.Color("#6B7280")
	ColorWarning   = lipgloss.Color("#F59E0B")
	ColorError     = lipgloss.Color("#EF4444")
	ColorSuccess   = lipgloss.Color("#22C55E")
	ColorActive    = lipgloss.Color("#A78BFA") // violet
	ColorBorder    = lipgloss.Color("#374151")
)

var (
	StyleTitle     = lipgloss.NewStyle().Bold(true).Foreground(ColorPrimary)
	StyleSubtitle  = lipgloss.NewStyle().Foreground(ColorMuted)
	StyleTab       = lipgloss.NewStyle().Foreground(ColorMuted).Padding(0, 2)
	StyleActiveTab = StyleTab.Bold(true).Underline(true).Foreground(ColorPrimary)

	StyleCursor = lipgloss.NewStyle().Bold(true).Foreground(ColorActive)
	StyleDone   = lipgloss.NewStyle().Strikethrough(true).Foreground(ColorMuted)
	StyleTime   = lipgloss.NewStyle().Bold(true).Foreground(ColorSecondary)
	StyleNote   = lipgloss.NewStyle().Italic(true).Foreground(ColorMuted)

	StyleIncome  = lipgloss.NewStyle().Foreground(ColorSuccess)
	StyleExpense = lipgloss.NewStyle().Foreground(ColorError)

	StyleSpinner = lipgloss.NewStyle().Foreground(ColorPrimary)
	StyleWarning = lipgloss.NewStyle().Foreground(ColorWarning)
	StyleError   = lipgloss.NewStyle().Foreground(ColorError)
	StyleSuccess = lipgloss.NewStyle().Foreground(ColorSuccess)

	StyleHelp     = lipgloss.NewStyle().Foreground(ColorMuted).MarginTop(1)
	StyleHelpKey  = lipgloss.NewStyle().Bold(true).Foreground(ColorSecondary)
	StyleHelpDesc = lipgloss.NewStyle().Foreground(ColorMuted)

	// StylePanelBox frames the current tab's content.
	StylePanelBox = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder).
			Padding(1, 2).
			MarginBottom(1)

	// StyleInsightBox frames the current tab's insight.
	StyleInsightBox = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorPrimary).
			Padding(0, 2)
)

// ProgressBar draws width cells filled in proportion to pct (0 to 100).
func ProgressBar(pct float64, width int) string {
	pct = max(0, min(100, pct))
	filled := int(float64(width) * pct / 100)
	return StyleSuccess.Render(strings.Repeat("█", filled)) +
		StyleSubtitle.Render(strings.Repeat("░", width-filled))
}

// HelpBar lists the key bindings. Cursor and toggle keys only apply on the
// agenda tab.
func HelpBar(agendaTab bool) string {
	keys := [][2]string{{"tab", "next"}, {"1-4", "jump"}, {"i", "insight"}}
	if agendaTab {
		keys = append(keys, [2]string{"j/k", "move"}, [2]string{"space", "toggle"})
	}
	keys = append(keys, [2]string{"r", "reload"}, [2]string{"q", "quit"})

	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = StyleHelpKey.Render(k[0]) + " " + StyleHelpDesc.Render(k[1])
	}
	return StyleHelp.Render(strings.Join(parts, "  •  "))
}
