package board

import (
	"github.com/ayaanshkk/switchboard/internal/models"
	"github.com/ayaanshkk/switchboard/internal/types"
)

// Store holds the authoritative in-memory item lists, one per
// pipeline. Items are replaced wholesale by Load, mutated only through
// ApplyStageChange, and restored only from a snapshot taken by the
// engine. The store never talks to the network.
type Store struct {
	items map[models.PipelineType][]models.PipelineItem
}

// NewStore creates an empty store covering all pipelines.
func NewStore() *Store {
	return &Store{
		items: make(map[models.PipelineType][]models.PipelineItem),
	}
}

// Load replaces a pipeline's item list wholesale. Called once per
// pipeline after the initial fetch completes.
func (s *Store) Load(pipeline models.PipelineType, items []models.PipelineItem) {
	s.items[pipeline] = copyItems(items)
}

// Items returns a copy of a pipeline's item list.
func (s *Store) Items(pipeline models.PipelineType) []models.PipelineItem {
	return copyItems(s.items[pipeline])
}

// ApplyStageChange updates the stage of the one matching item.
// An absent id is a no-op; the card/item invariant means it should not
// occur, but the store stays defensive rather than panicking.
func (s *Store) ApplyStageChange(pipeline models.PipelineType, id types.ItemID, stage models.Stage) bool {
	items := s.items[pipeline]
	for i := range items {
		if items[i].ID == id {
			items[i].Stage = stage
			return true
		}
	}
	return false
}

// SnapshotItems returns a deep copy of a pipeline's items for use as a
// rollback target.
func (s *Store) SnapshotItems(pipeline models.PipelineType) []models.PipelineItem {
	return copyItems(s.items[pipeline])
}

// Restore replaces a pipeline's items with a previously taken snapshot.
func (s *Store) Restore(pipeline models.PipelineType, items []models.PipelineItem) {
	s.items[pipeline] = copyItems(items)
}

func copyItems(items []models.PipelineItem) []models.PipelineItem {
	out := make([]models.PipelineItem, len(items))
	copy(out, items)
	return out
}
