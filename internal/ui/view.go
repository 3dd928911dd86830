package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/five82/nimbus/internal/dashboard"
)

// renderMain renders header, body and footer.
func (m Model) renderMain() string {
	body := m.renderBody()
	return lipgloss.JoinVertical(lipgloss.Left,
		m.renderHeader(),
		body,
		m.renderFooter(),
	)
}

// renderHeader renders the app name, the active query and the fetch state.
func (m Model) renderHeader() string {
	styles := m.theme.Styles().WithBackground(m.theme.Surface)
	bg := NewBgStyle(m.theme.Surface)

	parts := []string{bg.Render("nimbus", styles.Logo)}
	if q := m.view.Query; q != "" {
		parts = append(parts, bg.Render(truncate(q, 40), styles.Text))
	}
	switch {
	case m.loading:
		parts = append(parts, bg.Render("loading...", styles.WarningText))
	case m.locating:
		parts = append(parts, bg.Render("locating...", styles.WarningText))
	case m.view.Found:
		parts = append(parts, bg.Render("updated", styles.SuccessText))
	}
	parts = append(parts, bg.Render(m.theme.Name, styles.FaintText))

	return styles.Header.Width(m.width).Render(bg.Join(parts, "  "))
}

// renderBody lays out the favorites sidebar beside the card, or above it on
// narrow terminals.
func (m Model) renderBody() string {
	sidebar := m.renderSidebar()
	card := m.renderCard(cardWidth(m.width))
	if m.width < LayoutCompactWidth {
		return lipgloss.JoinVertical(lipgloss.Left, sidebar, card)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, sidebar, " ", card)
}

// renderSidebar renders the favorites list plus the active input field.
func (m Model) renderSidebar() string {
	styles := m.theme.Styles()
	target := m.session.Target()
	favorites := m.session.Favorites()
	inner := SidebarWidth - 4

	var b strings.Builder
	b.WriteString(styles.AccentText.Bold(true).Render("Favorites"))
	b.WriteString("\n")
	if len(favorites) == 0 {
		b.WriteString(styles.FaintText.Render("(none)"))
		b.WriteString("\n")
	}
	for i, name := range favorites {
		marker := "  "
		if name == target {
			marker = "• "
		}
		line := padRight(marker+truncate(name, inner-2), inner)
		if i == m.cursor && m.focus == FocusFavorites {
			b.WriteString(styles.Selected.Render(line))
		} else {
			b.WriteString(styles.Text.Render(line))
		}
		b.WriteString("\n")
	}

	switch m.focus {
	case FocusSearch:
		b.WriteString("\n")
		b.WriteString(styles.MutedText.Render("Search"))
		b.WriteString("\n")
		b.WriteString(m.search.View())
	case FocusAdd:
		b.WriteString("\n")
		b.WriteString(styles.MutedText.Render("Add favorite"))
		b.WriteString("\n")
		b.WriteString(m.addInput.View())
	}

	panel := styles.Panel
	if m.focus != FocusFavorites {
		panel = styles.FocusPanel
	}
	return panel.Width(SidebarWidth - 2).Render(strings.TrimRight(b.String(), "\n"))
}

// renderCard renders the weather card, or the single failure state.
func (m Model) renderCard(width int) string {
	styles := m.theme.Styles()
	vm := m.view

	if !vm.Found {
		msg := vm.Message
		if msg == "" {
			// Nothing has been fetched yet.
			msg = "waiting for weather..."
			return styles.Panel.Width(width - 2).Render(styles.MutedText.Render(msg))
		}
		return styles.Panel.Width(width - 2).Render(styles.DangerText.Render(msg))
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		styles.CardStyle(vm.Card.Tint).Width(width).Render(cardLines(vm)),
		styles.Panel.Width(width-2).Render(detailLines(vm)),
	)
}

// cardLines is the headline: place, emoji, temperature and condition.
func cardLines(vm dashboard.ViewModel) string {
	place := vm.Card.Location
	if vm.Card.Country != "" {
		place += ", " + vm.Card.Country
	}
	return strings.Join([]string{
		lipgloss.NewStyle().Bold(true).Render(place),
		fmt.Sprintf("%s  %s", vm.Card.Emoji, formatTemp(vm.Card.TempC)),
		vm.Card.Condition,
	}, "\n")
}

// detailLines renders metrics, guidance and today's summary.
func detailLines(vm dashboard.ViewModel) string {
	rows := [][2]string{
		{"Humidity", formatPercent(vm.Metrics.Humidity)},
		{"Feels like", formatTemp(vm.Metrics.FeelsLikeC)},
		{"UV", formatUV(vm.Metrics.UV)},
		{"Moon", vm.Metrics.Moon},
		{"", ""},
		{"Wear", vm.Guidance.Clothing},
		{"Note", vm.Guidance.Caution},
		{"", ""},
		{"High / Low", formatTemp(vm.Today.HighC) + " / " + formatTemp(vm.Today.LowC)},
		{"Rain", formatPercent(vm.Today.ChanceOfRain)},
		{"Sun", orDash(vm.Today.Sunrise) + " - " + orDash(vm.Today.Sunset)},
	}

	var b strings.Builder
	for _, row := range rows {
		if row[0] == "" {
			b.WriteString("\n")
			continue
		}
		b.WriteString(padRight(row[0], 12))
		b.WriteString(row[1])
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

// renderFooter shows the status line and the short key help.
func (m Model) renderFooter() string {
	styles := m.theme.Styles()
	line := m.help.View(m.keys)
	if m.status != "" {
		line = styles.InfoText.Render(m.status) + "  " + line
	}
	return styles.Footer.Width(m.width).Render(line)
}
