package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"

	"github.com/ayaanshkk/switchboard/internal/models"
	"github.com/ayaanshkk/switchboard/internal/tui/state"
)

const minColumnWidth = 22

// View renders the current state of the board.
func (m Model) View() string {
	if m.uiState.Width() == 0 {
		return "Loading..."
	}

	switch m.uiState.Mode() {
	case state.ErrorMode:
		return m.viewError()
	case state.DetailMode:
		return m.viewDetail()
	default:
		return m.viewBoard()
	}
}

// viewBoard renders the header tabs, the column grid, and the footer.
func (m Model) viewBoard() string {
	if m.loading {
		return lipgloss.Place(
			m.uiState.Width(), m.uiState.Height(),
			lipgloss.Center, lipgloss.Center,
			m.spinner.View()+" Loading pipelines...",
		)
	}

	var b strings.Builder
	b.WriteString(m.viewTabs())
	b.WriteString("\n")

	columns := m.visibleColumns()
	columnWidth := max(minColumnWidth, m.uiState.Width()/max(len(columns), 1)-2)

	rendered := make([]string, 0, len(columns))
	for i, col := range columns {
		rendered = append(rendered, m.viewColumn(col, i == m.uiState.SelectedColumn(), columnWidth))
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, rendered...))
	b.WriteString("\n")
	b.WriteString(m.viewFooter())

	return b.String()
}

func (m Model) viewTabs() string {
	var tabs []string
	for _, p := range models.Pipelines() {
		label := strings.ToUpper(string(p)[:1]) + string(p)[1:]
		if p == m.appState.ActivePipeline() {
			tabs = append(tabs, m.styles.TabActive.Render(label))
		} else {
			tabs = append(tabs, m.styles.TabInactive.Render(label))
		}
	}
	header := lipgloss.JoinHorizontal(lipgloss.Center, tabs...)

	if m.syncing() {
		header += m.styles.Subtle.Render("  " + m.spinner.View() + " syncing")
	}
	if query := m.uiState.SearchQuery(); query != "" {
		header += m.styles.Subtle.Render(fmt.Sprintf("  filter: %q", query))
	}
	return header
}

func (m Model) viewColumn(col columnView, selected bool, width int) string {
	title := m.styles.ColumnTitle.Render(fmt.Sprintf("%s (%d)", col.stage, len(col.cards)))

	var body strings.Builder
	body.WriteString(title)
	body.WriteString("\n")

	if len(col.cards) == 0 {
		body.WriteString(m.styles.Subtle.Render("No cards"))
	} else {
		for i, card := range col.cards {
			cardSelected := selected && i == m.uiState.SelectedCard()
			body.WriteString(m.viewCard(card, cardSelected, width-4))
			body.WriteString("\n")
		}
	}

	return m.styles.Column.Width(width).Render(body.String())
}

func (m Model) viewCard(card models.Card, selected bool, width int) string {
	style := m.styles.Card
	if selected {
		style = m.styles.SelectedCard
	}

	name := card.Customer.Name
	if name == "" {
		name = card.ID.String()
	}
	var parts []string
	if card.Customer.Company != "" {
		parts = append(parts, card.Customer.Company)
	}
	if card.Customer.Value > 0 {
		parts = append(parts, fmt.Sprintf("£%.0f", card.Customer.Value))
	}

	content := name
	if len(parts) > 0 {
		content += "\n" + m.styles.Subtle.Render(strings.Join(parts, " · "))
	}
	return style.Width(width).Render(content)
}

func (m Model) viewFooter() string {
	help := m.styles.Help.Render(
		"h/l: navigate  j/k: cards  H/L: move card  tab: pipeline  enter: detail  /: filter  q: quit")

	if !m.notificationState.HasAny() {
		return help
	}

	var notices []string
	for _, n := range m.notificationState.All() {
		switch n.Level {
		case state.LevelError:
			notices = append(notices, m.styles.ErrorNotice.Render(n.Message))
		default:
			notices = append(notices, m.styles.InfoNotice.Render(n.Message))
		}
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.JoinVertical(lipgloss.Left, notices...),
		help,
	)
}

// viewError renders the full-board load failure with retry.
func (m Model) viewError() string {
	content := lipgloss.JoinVertical(lipgloss.Left,
		m.styles.ColumnTitle.Render("Could not load the pipeline board"),
		"",
		m.styles.Subtle.Render(m.errorState.Get()),
		"",
		"Press r to retry, q to quit.",
	)
	return lipgloss.Place(
		m.uiState.Width(), m.uiState.Height(),
		lipgloss.Center, lipgloss.Center,
		m.styles.ErrorScreen.Render(content),
	)
}

// viewDetail renders the selected card's full customer record with
// the notes rendered as markdown.
func (m Model) viewDetail() string {
	card := m.selectedCard()
	if card == nil {
		return m.viewBoard()
	}

	var b strings.Builder
	b.WriteString(m.styles.ColumnTitle.Render(card.Customer.Name))
	b.WriteString("\n\n")
	b.WriteString(fmt.Sprintf("Company:  %s\n", card.Customer.Company))
	b.WriteString(fmt.Sprintf("Email:    %s\n", card.Customer.Email))
	b.WriteString(fmt.Sprintf("Phone:    %s\n", card.Customer.Phone))
	if card.Customer.Value > 0 {
		b.WriteString(fmt.Sprintf("Value:    £%.2f\n", card.Customer.Value))
	}
	b.WriteString(m.styles.Subtle.Render(fmt.Sprintf("Column:   %s\n", card.Column)))

	if notes := strings.TrimSpace(card.Customer.Notes); notes != "" {
		b.WriteString("\n")
		b.WriteString(m.renderNotes(notes))
	}

	b.WriteString("\n")
	b.WriteString(m.styles.Help.Render("esc: back"))

	box := m.styles.Column.Width(min(m.uiState.Width()-4, 80)).Render(b.String())
	return lipgloss.Place(
		m.uiState.Width(), m.uiState.Height(),
		lipgloss.Center, lipgloss.Center,
		box,
	)
}

// renderNotes renders the customer notes markdown, falling back to
// the raw text when the renderer is unavailable.
func (m Model) renderNotes(notes string) string {
	wrap := min(m.uiState.Width()-10, 76)
	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(wrap),
	)
	if err != nil {
		return notes
	}
	out, err := renderer.Render(notes)
	if err != nil {
		return notes
	}
	return out
}
