package board

import "github.com/ayaanshkk/switchboard/internal/models"

// BatchState tracks the lifecycle of one optimistic batch:
// Optimistic -> Committed or Optimistic -> RolledBack. A batch never
// leaves a pipeline partially applied.
type BatchState int

const (
	// BatchOptimistic means the changes are applied locally and their
	// persistence calls have not all settled yet.
	BatchOptimistic BatchState = iota
	// BatchCommitted means every persistence call succeeded and the
	// optimistic state became the new baseline.
	BatchCommitted
	// BatchRolledBack means at least one persistence call failed and
	// the pre-batch snapshot was restored.
	BatchRolledBack
)

// Batch is one optimistic transaction over a single pipeline: the
// detected stage changes, the pre-apply snapshot they can be rolled
// back to, and where in the lifecycle they are. Produced by
// Engine.Begin, settled exactly once by Engine.Commit, then discarded.
type Batch struct {
	pipeline models.PipelineType
	changes  []models.StageChange
	snapshot models.Snapshot
	state    BatchState
}

// Pipeline returns the pipeline this batch belongs to.
func (b *Batch) Pipeline() models.PipelineType {
	return b.pipeline
}

// Changes returns the stage changes in this batch.
func (b *Batch) Changes() []models.StageChange {
	return b.changes
}

// State returns the batch's current lifecycle state.
func (b *Batch) State() BatchState {
	return b.state
}

// Len returns the number of moved items in the batch.
func (b *Batch) Len() int {
	return len(b.changes)
}
