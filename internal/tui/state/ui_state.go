package state

// Mode identifies which interaction mode the board is in.
type Mode int

const (
	// NormalMode is the board view with column/card navigation
	NormalMode Mode = iota
	// DetailMode shows the selected card's full customer record
	DetailMode
	// SearchMode captures keystrokes into the title filter
	SearchMode
	// ErrorMode is the full-board load failure state with retry
	ErrorMode
)

// UIState manages cursor position, window size, interaction mode and
// the search filter. It knows nothing about pipeline data.
type UIState struct {
	mode           Mode
	selectedColumn int
	selectedCard   int
	width          int
	height         int
	searchQuery    string
}

// NewUIState creates a UIState in normal mode with the cursor at the
// first column.
func NewUIState() *UIState {
	return &UIState{}
}

// Mode returns the current interaction mode.
func (s *UIState) Mode() Mode {
	return s.mode
}

// SetMode switches the interaction mode.
func (s *UIState) SetMode(mode Mode) {
	s.mode = mode
}

// SelectedColumn returns the index of the selected column.
func (s *UIState) SelectedColumn() int {
	return s.selectedColumn
}

// SetSelectedColumn moves the column cursor, clamped to [0, max).
func (s *UIState) SetSelectedColumn(idx, numColumns int) {
	if numColumns == 0 {
		s.selectedColumn = 0
		return
	}
	if idx < 0 {
		idx = 0
	}
	if idx >= numColumns {
		idx = numColumns - 1
	}
	s.selectedColumn = idx
}

// SelectedCard returns the index of the selected card within the
// selected column.
func (s *UIState) SelectedCard() int {
	return s.selectedCard
}

// SetSelectedCard moves the card cursor, clamped to [0, max).
func (s *UIState) SetSelectedCard(idx, numCards int) {
	if numCards == 0 {
		s.selectedCard = 0
		return
	}
	if idx < 0 {
		idx = 0
	}
	if idx >= numCards {
		idx = numCards - 1
	}
	s.selectedCard = idx
}

// ClampCard keeps the card cursor in range after the column contents
// changed under it.
func (s *UIState) ClampCard(numCards int) {
	s.SetSelectedCard(s.selectedCard, numCards)
}

// Width returns the window width.
func (s *UIState) Width() int {
	return s.width
}

// Height returns the window height.
func (s *UIState) Height() int {
	return s.height
}

// SetWindowSize records the terminal dimensions.
func (s *UIState) SetWindowSize(width, height int) {
	s.width = width
	s.height = height
}

// SearchQuery returns the current title filter.
func (s *UIState) SearchQuery() string {
	return s.searchQuery
}

// SetSearchQuery replaces the title filter.
func (s *UIState) SetSearchQuery(query string) {
	s.searchQuery = query
}

// AppendSearchRune adds a typed character to the filter.
func (s *UIState) AppendSearchRune(r rune) {
	s.searchQuery += string(r)
}

// BackspaceSearch removes the last character of the filter.
func (s *UIState) BackspaceSearch() {
	if len(s.searchQuery) > 0 {
		runes := []rune(s.searchQuery)
		s.searchQuery = string(runes[:len(runes)-1])
	}
}
