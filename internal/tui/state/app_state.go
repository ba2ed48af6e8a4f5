package state

import (
	"github.com/ayaanshkk/switchboard/internal/models"
)

// AppState tracks which pipeline the board is showing and whether the
// initial load has completed. The pipeline data itself lives in the
// board engine; this only holds view-side selection.
type AppState struct {
	// active is the pipeline currently rendered
	active models.PipelineType

	// loaded is true once both pipelines have been fetched
	loaded bool
}

// NewAppState creates an AppState showing the sales pipeline.
func NewAppState() *AppState {
	return &AppState{
		active: models.PipelineSales,
	}
}

// ActivePipeline returns the pipeline currently shown.
func (s *AppState) ActivePipeline() models.PipelineType {
	return s.active
}

// ToggleActivePipeline switches between the sales and training views.
func (s *AppState) ToggleActivePipeline() {
	if s.active == models.PipelineSales {
		s.active = models.PipelineTraining
	} else {
		s.active = models.PipelineSales
	}
}

// Loaded reports whether the initial board load has completed.
func (s *AppState) Loaded() bool {
	return s.loaded
}

// SetLoaded marks the initial board load complete (or not, after a
// failed retry).
func (s *AppState) SetLoaded(loaded bool) {
	s.loaded = loaded
}

// GroupCards buckets cards by column, preserving their relative order.
func GroupCards(cards []models.Card) map[models.ColumnID][]models.Card {
	grouped := make(map[models.ColumnID][]models.Card)
	for _, card := range cards {
		grouped[card.Column] = append(grouped[card.Column], card)
	}
	return grouped
}
