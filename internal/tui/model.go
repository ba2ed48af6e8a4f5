package tui

import (
	"context"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/ayaanshkk/switchboard/internal/board"
	"github.com/ayaanshkk/switchboard/internal/catalog"
	"github.com/ayaanshkk/switchboard/internal/config"
	"github.com/ayaanshkk/switchboard/internal/models"
	"github.com/ayaanshkk/switchboard/internal/services/pipeline"
	"github.com/ayaanshkk/switchboard/internal/tui/state"
)

// noticeLifetime is how long transient notifications stay on screen.
const noticeLifetime = 4 * time.Second

// Model is the bubbletea model for the pipeline board.
type Model struct {
	ctx    context.Context
	svc    pipeline.Service
	engine *board.Engine

	appState          *state.AppState
	uiState           *state.UIState
	notificationState *state.NotificationState
	errorState        *state.ErrorState

	styles  Styles
	spinner spinner.Model
	loading bool
}

// InitialModel creates the board model. The engine must already be
// wired to its persister; loading starts when the program runs Init.
func InitialModel(ctx context.Context, svc pipeline.Service, engine *board.Engine, theme config.ColorScheme) Model {
	styles := NewStyles(theme)

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = styles.ColumnTitle

	return Model{
		ctx:               ctx,
		svc:               svc,
		engine:            engine,
		appState:          state.NewAppState(),
		uiState:           state.NewUIState(),
		notificationState: state.NewNotificationState(),
		errorState:        state.NewErrorState(),
		styles:            styles,
		spinner:           sp,
		loading:           true,
	}
}

// Init kicks off the initial board load.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.loadBoard)
}

// Messages

type boardLoadedMsg struct {
	board *pipeline.BoardData
}

type boardLoadFailedMsg struct {
	err error
}

// batchSettledMsg reports the outcome of one batch's persistence
// fan-out. On err != nil the engine has already rolled back.
type batchSettledMsg struct {
	pipeline models.PipelineType
	moved    int
	err      error
}

type clearNoticesMsg struct{}

// Commands

// loadBoard fetches both pipelines; either failure puts the board in
// the full error state.
func (m Model) loadBoard() tea.Msg {
	data, err := m.svc.LoadBoard(m.ctx)
	if err != nil {
		return boardLoadFailedMsg{err: err}
	}
	return boardLoadedMsg{board: data}
}

// commitBatch settles an optimistically applied batch against the
// backend. Runs on the command goroutine; the optimistic state is
// already on screen by the time this starts.
func (m Model) commitBatch(batch *board.Batch) tea.Cmd {
	return func() tea.Msg {
		err := m.engine.Commit(m.ctx, batch)
		return batchSettledMsg{pipeline: batch.Pipeline(), moved: batch.Len(), err: err}
	}
}

func clearNoticesAfter(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return clearNoticesMsg{}
	})
}

// columnView is one rendered column: its stage, column id, and the
// cards currently in it (after the search filter).
type columnView struct {
	stage  models.Stage
	column models.ColumnID
	cards  []models.Card
}

// visibleColumns projects the active pipeline's cards into catalog
// column order, applying the title filter. The filter affects only
// what is drawn; moves always operate on these same filtered cards,
// which are real cards from the engine's projection.
func (m Model) visibleColumns() []columnView {
	active := m.appState.ActivePipeline()
	grouped := state.GroupCards(m.filteredCards())

	stages := catalog.Stages(active)
	columns := make([]columnView, 0, len(stages))
	for _, stage := range stages {
		column := catalog.ColumnFromStage(stage)
		columns = append(columns, columnView{
			stage:  stage,
			column: column,
			cards:  grouped[column],
		})
	}
	return columns
}

// filteredCards returns the active pipeline's cards matching the
// search query, or all of them when the query is empty.
func (m Model) filteredCards() []models.Card {
	cards := m.engine.Cards(m.appState.ActivePipeline())
	query := strings.ToLower(m.uiState.SearchQuery())
	if query == "" {
		return cards
	}

	filtered := make([]models.Card, 0, len(cards))
	for _, card := range cards {
		name := strings.ToLower(card.Customer.Name)
		company := strings.ToLower(card.Customer.Company)
		if strings.Contains(name, query) || strings.Contains(company, query) {
			filtered = append(filtered, card)
		}
	}
	return filtered
}

// selectedCard returns the card under the cursor, or nil.
func (m Model) selectedCard() *models.Card {
	columns := m.visibleColumns()
	if m.uiState.SelectedColumn() >= len(columns) {
		return nil
	}
	cards := columns[m.uiState.SelectedColumn()].cards
	if len(cards) == 0 || m.uiState.SelectedCard() >= len(cards) {
		return nil
	}
	card := cards[m.uiState.SelectedCard()]
	return &card
}

// syncing reports whether any pipeline has a batch in flight.
func (m Model) syncing() bool {
	for _, p := range models.Pipelines() {
		if m.engine.Syncing(p) {
			return true
		}
	}
	return false
}
