package tui

import (
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"github.com/verte-zerg/textlens/internal/report"
)

var (
	activeNavStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F0F0F0")).
			Bold(true).
			Padding(0, 1).
			Border(lipgloss.RoundedBorder(), true).
			BorderForeground(lipgloss.Color("#C89A3A"))
	inactiveNavStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#B0B0B0")).
				Padding(0, 1).
				Border(lipgloss.RoundedBorder(), true).
				BorderForeground(lipgloss.Color("#4A4A4A"))
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4D4F"))
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#C89A3A"))
	footerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#8C8C8C"))
	mutedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#8C8C8C")).Italic(true)
	cardStyle   = lipgloss.NewStyle().
			Padding(0, 1).
			Width(24).
			Border(lipgloss.RoundedBorder(), true).
			BorderForeground(lipgloss.Color("#4A4A4A"))
	cardTitleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#8C8C8C"))
	cardValueStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0")).Bold(true)
	separatorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#4A4A4A"))
	spinnerStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#C89A3A"))

	cloudStrongStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0")).Bold(true)
	cloudMediumStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#B0B0B0"))
	cloudLightStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E"))
)

// Score bar colors follow the readability thresholds 80/60/40.
var (
	scoreHighStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#52C41A"))
	scoreGoodStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FADB14"))
	scoreFairStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FA8C16"))
	scoreLowStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4D4F"))
)

func scoreStyle(score int) lipgloss.Style {
	switch {
	case score > 80:
		return scoreHighStyle
	case score > 60:
		return scoreGoodStyle
	case score > 40:
		return scoreFairStyle
	default:
		return scoreLowStyle
	}
}

// levelStyle colors text by the complexity band of pct.
func levelStyle(pct int) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(report.LevelFor(pct).Color))
}

func cloudStyle(weight float64) lipgloss.Style {
	switch {
	case weight >= 0.66:
		return cloudStrongStyle
	case weight >= 0.33:
		return cloudMediumStyle
	default:
		return cloudLightStyle
	}
}

func charTableStyles() table.Styles {
	styles := table.DefaultStyles()
	styles.Header = styles.Header.
		Border(lipgloss.NormalBorder(), false, false, true, false).
		BorderForeground(lipgloss.Color("#4A4A4A")).
		Foreground(lipgloss.Color("#C0C0C0")).
		Bold(true).
		Padding(0, 1).
		PaddingLeft(0)
	styles.Cell = styles.Cell.
		Padding(0, 1).
		PaddingLeft(0)
	// Nothing is selectable; keep the cursor row unstyled.
	styles.Selected = lipgloss.NewStyle()
	return styles
}
