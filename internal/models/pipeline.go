package models

import "github.com/ayaanshkk/switchboard/internal/types"

// PipelineType selects one of the two independent workflows a customer
// can progress through. The two pipelines share the board surface but
// never share items, stages, or batches.
type PipelineType string

const (
	PipelineSales    PipelineType = "sales"
	PipelineTraining PipelineType = "training"
)

// Pipelines lists all pipeline types in display order.
func Pipelines() []PipelineType {
	return []PipelineType{PipelineSales, PipelineTraining}
}

// Stage is a named step within a pipeline's ordered stage set.
type Stage string

// ColumnID is the board column key derived from a stage name.
// Derivation is deterministic and invertible within a pipeline.
type ColumnID string

// PipelineItem is the authoritative in-memory record of one customer's
// position in one pipeline. The stage field is the only part that is
// ever mutated, and only through the board store.
type PipelineItem struct {
	ID       types.ItemID
	Customer CustomerRecord
	Stage    Stage
	Pipeline PipelineType
}

// StageChange is one detected stage transition within a batch.
// Batches are ephemeral: produced by one board reorder, consumed by
// the optimistic apply and the remote sync, then discarded.
type StageChange struct {
	ItemID types.ItemID
	From   Stage
	To     Stage
}

// Snapshot is a point-in-time deep copy of one pipeline's items and
// their card projection, kept as the rollback target while a batch's
// persistence calls are in flight.
type Snapshot struct {
	Items []PipelineItem
	Cards []Card
}
