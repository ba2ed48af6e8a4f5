package board

import (
	"github.com/ayaanshkk/switchboard/internal/catalog"
	"github.com/ayaanshkk/switchboard/internal/models"
)

// Project maps a pipeline's item list to its card projection.
// Pure: one card per item, column derived from the item's stage,
// input order preserved. The card list must only ever be produced
// here — after a load, an optimistic apply, or a rollback — so it can
// never drift from the item list.
func Project(items []models.PipelineItem) []models.Card {
	cards := make([]models.Card, len(items))
	for i, item := range items {
		cards[i] = models.Card{
			ID:       item.ID,
			Column:   catalog.ColumnFromStage(item.Stage),
			Customer: item.Customer,
		}
	}
	return cards
}
