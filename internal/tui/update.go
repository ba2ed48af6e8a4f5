package tui

import (
	"errors"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/ayaanshkk/switchboard/internal/board"
	"github.com/ayaanshkk/switchboard/internal/models"
	"github.com/ayaanshkk/switchboard/internal/tui/state"
)

// Update handles all messages and updates the model accordingly.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.uiState.SetWindowSize(msg.Width, msg.Height)
		return m, nil

	case spinner.TickMsg:
		if !m.loading && !m.syncing() {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case boardLoadedMsg:
		m.loading = false
		m.errorState.Clear()
		m.appState.SetLoaded(true)
		for _, p := range models.Pipelines() {
			m.engine.Load(p, msg.board.Items(p))
		}
		m.uiState.SetMode(state.NormalMode)
		return m, nil

	case boardLoadFailedMsg:
		m.loading = false
		m.appState.SetLoaded(false)
		m.errorState.Set(msg.err.Error())
		m.uiState.SetMode(state.ErrorMode)
		return m, nil

	case batchSettledMsg:
		if msg.err != nil {
			// The engine already restored the pre-batch snapshot; all
			// that is left is telling the user.
			m.notificationState.Add(state.LevelError, "Failed to update stage. Changes reverted.")
			m.clampCursor()
			return m, clearNoticesAfter(noticeLifetime)
		}
		return m, nil

	case clearNoticesMsg:
		m.notificationState.Clear()
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

// handleKey dispatches a key press to the handler for the current mode.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key := msg.String(); key == "ctrl+c" {
		return m, tea.Quit
	}

	switch m.uiState.Mode() {
	case state.SearchMode:
		return m.handleSearchKey(msg)
	case state.DetailMode:
		return m.handleDetailKey(msg)
	case state.ErrorMode:
		return m.handleErrorKey(msg)
	default:
		return m.handleNormalKey(msg)
	}
}

func (m Model) handleNormalKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.loading {
		return m, nil
	}

	columns := m.visibleColumns()

	switch msg.String() {
	case "q":
		return m, tea.Quit

	case "left", "h":
		m.uiState.SetSelectedColumn(m.uiState.SelectedColumn()-1, len(columns))
		m.clampCursor()

	case "right", "l":
		m.uiState.SetSelectedColumn(m.uiState.SelectedColumn()+1, len(columns))
		m.clampCursor()

	case "up", "k":
		m.uiState.SetSelectedCard(m.uiState.SelectedCard()-1, m.currentColumnSize())

	case "down", "j":
		m.uiState.SetSelectedCard(m.uiState.SelectedCard()+1, m.currentColumnSize())

	case "H", "shift+left":
		return m.moveSelectedCard(-1)

	case "L", "shift+right":
		return m.moveSelectedCard(+1)

	case "tab":
		m.appState.ToggleActivePipeline()
		m.uiState.SetSelectedColumn(0, len(m.visibleColumns()))
		m.uiState.SetSelectedCard(0, 0)

	case "enter":
		if m.selectedCard() != nil {
			m.uiState.SetMode(state.DetailMode)
		}

	case "/":
		m.uiState.SetMode(state.SearchMode)

	case "esc":
		m.uiState.SetSearchQuery("")
		m.clampCursor()
	}

	return m, nil
}

func (m Model) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		m.uiState.SetMode(state.NormalMode)
		m.clampCursor()
	case "esc":
		m.uiState.SetSearchQuery("")
		m.uiState.SetMode(state.NormalMode)
		m.clampCursor()
	case "backspace":
		m.uiState.BackspaceSearch()
		m.clampCursor()
	default:
		if msg.Type == tea.KeyRunes {
			for _, r := range msg.Runes {
				m.uiState.AppendSearchRune(r)
			}
			m.clampCursor()
		}
	}
	return m, nil
}

func (m Model) handleDetailKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "enter", "q":
		m.uiState.SetMode(state.NormalMode)
	}
	return m, nil
}

func (m Model) handleErrorKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "r":
		m.loading = true
		m.errorState.Clear()
		return m, tea.Batch(m.spinner.Tick, m.loadBoard)
	case "q":
		return m, tea.Quit
	}
	return m, nil
}

// moveSelectedCard reassigns the selected card to the neighboring
// column and runs the full transition cycle: build the reordered card
// list, detect + optimistically apply via Begin, then settle with a
// background commit. The board redraws with the card in its new
// column before any network traffic happens.
func (m Model) moveSelectedCard(direction int) (tea.Model, tea.Cmd) {
	card := m.selectedCard()
	if card == nil {
		return m, nil
	}

	columns := m.visibleColumns()
	targetIdx := m.uiState.SelectedColumn() + direction
	if targetIdx < 0 || targetIdx >= len(columns) {
		m.notificationState.Add(state.LevelInfo, "There are no more columns to move to.")
		return m, clearNoticesAfter(noticeLifetime)
	}
	target := columns[targetIdx]

	active := m.appState.ActivePipeline()
	next := m.engine.Cards(active)
	for i := range next {
		if next[i].ID == card.ID {
			next[i].Column = target.column
		}
	}

	batch, err := m.engine.Begin(active, next)
	if err != nil {
		if errors.Is(err, board.ErrBatchInFlight) {
			m.notificationState.Add(state.LevelInfo, "Previous move is still syncing, try again in a moment.")
			return m, clearNoticesAfter(noticeLifetime)
		}
		m.notificationState.Add(state.LevelError, err.Error())
		return m, clearNoticesAfter(noticeLifetime)
	}
	if batch == nil {
		return m, nil
	}

	// Follow the card to its new column.
	m.uiState.SetSelectedColumn(targetIdx, len(columns))
	m.uiState.SetSelectedCard(len(target.cards), len(target.cards)+1)

	return m, tea.Batch(m.spinner.Tick, m.commitBatch(batch))
}

// currentColumnSize returns the card count of the selected column.
func (m Model) currentColumnSize() int {
	columns := m.visibleColumns()
	if m.uiState.SelectedColumn() >= len(columns) {
		return 0
	}
	return len(columns[m.uiState.SelectedColumn()].cards)
}

// clampCursor keeps the cursor valid after the board contents change.
func (m Model) clampCursor() {
	columns := m.visibleColumns()
	m.uiState.SetSelectedColumn(m.uiState.SelectedColumn(), len(columns))
	m.uiState.ClampCard(m.currentColumnSize())
}
