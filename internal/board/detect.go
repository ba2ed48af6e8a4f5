package board

import (
	"github.com/ayaanshkk/switchboard/internal/catalog"
	"github.com/ayaanshkk/switchboard/internal/models"
)

// DetectTransitions diffs the last committed card list against the
// reordered list produced by a board interaction and returns the stage
// changes implied by every card whose column moved.
//
// Cards in next with no match in prev are ignored: reorders never
// create cards, so an unmatched id means the input is stale and the
// safest thing is to not invent a transition for it. An empty result
// means the interaction crossed no column boundary and nothing further
// happens — no store mutation, no network.
func DetectTransitions(pipeline models.PipelineType, prev, next []models.Card) []models.StageChange {
	prevByID := make(map[string]models.Card, len(prev))
	for _, card := range prev {
		prevByID[card.ID.String()] = card
	}

	var changes []models.StageChange
	for _, card := range next {
		before, ok := prevByID[card.ID.String()]
		if !ok || before.Column == card.Column {
			continue
		}
		changes = append(changes, models.StageChange{
			ItemID: card.ID,
			From:   catalog.StageFromColumn(pipeline, before.Column),
			To:     catalog.StageFromColumn(pipeline, card.Column),
		})
	}
	return changes
}
