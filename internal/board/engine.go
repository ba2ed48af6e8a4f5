// Package board implements the pipeline stage-transition engine: the
// authoritative item store, its card projection, reorder diffing, and
// the optimistic apply / remote persist / rollback cycle a board
// interaction goes through.
package board

import (
	"context"
	"log/slog"
	"sync"

	"github.com/ayaanshkk/switchboard/internal/models"
)

// Persister pushes a batch of stage changes to the system of record.
// The batch is atomic: any single failure fails the whole batch.
type Persister interface {
	PersistBatch(ctx context.Context, pipeline models.PipelineType, changes []models.StageChange) error
}

// Recorder receives batches after they commit, for audit purposes.
// Recording is best-effort and never affects the commit outcome.
type Recorder interface {
	RecordBatch(ctx context.Context, pipeline models.PipelineType, changes []models.StageChange) error
}

// Engine owns the per-pipeline state machine:
//
//	Idle -> Detecting -> OptimisticallyApplied -> Committed | RolledBack -> Idle
//
// Begin performs detection and the optimistic apply synchronously, so
// callers can re-render immediately with zero perceived latency.
// Commit settles the batch against the backend and either promotes the
// optimistic state to the new baseline or restores the pre-batch
// snapshot wholesale.
//
// Batches are serialized per pipeline: while one batch is in flight,
// Begin on the same pipeline refuses with ErrBatchInFlight instead of
// racing the pending rollback. The two pipelines are independent.
type Engine struct {
	mu        sync.Mutex
	store     *Store
	cards     map[models.PipelineType][]models.Card
	loaded    map[models.PipelineType]bool
	inFlight  map[models.PipelineType]bool
	persister Persister
	recorder  Recorder
}

// NewEngine creates an engine that persists batches through the given
// persister. The recorder may be nil to disable the audit journal.
func NewEngine(persister Persister, recorder Recorder) *Engine {
	return &Engine{
		store:     NewStore(),
		cards:     make(map[models.PipelineType][]models.Card),
		loaded:    make(map[models.PipelineType]bool),
		inFlight:  make(map[models.PipelineType]bool),
		persister: persister,
		recorder:  recorder,
	}
}

// Load replaces a pipeline's items and reprojects its cards.
func (e *Engine) Load(pipeline models.PipelineType, items []models.PipelineItem) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.store.Load(pipeline, items)
	e.cards[pipeline] = Project(e.store.Items(pipeline))
	e.loaded[pipeline] = true
}

// Cards returns a copy of a pipeline's current card projection.
func (e *Engine) Cards(pipeline models.PipelineType) []models.Card {
	e.mu.Lock()
	defer e.mu.Unlock()
	return copyCards(e.cards[pipeline])
}

// Items returns a copy of a pipeline's current item list.
func (e *Engine) Items(pipeline models.PipelineType) []models.PipelineItem {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.store.Items(pipeline)
}

// Syncing reports whether a batch on the pipeline is awaiting the backend.
func (e *Engine) Syncing(pipeline models.PipelineType) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.inFlight[pipeline]
}

// Begin diffs the reordered card list against the committed baseline
// and, if any card crossed a column boundary, applies the resulting
// stage changes optimistically and returns the batch to be settled
// with Commit. A reorder with no column changes returns (nil, nil)
// and has no effect at all.
func (e *Engine) Begin(pipeline models.PipelineType, next []models.Card) (*Batch, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.loaded[pipeline] {
		return nil, ErrUnknownPipeline
	}

	changes := DetectTransitions(pipeline, e.cards[pipeline], next)
	if len(changes) == 0 {
		return nil, nil
	}
	if e.inFlight[pipeline] {
		return nil, ErrBatchInFlight
	}

	batch := &Batch{
		pipeline: pipeline,
		changes:  changes,
		snapshot: models.Snapshot{
			Items: e.store.SnapshotItems(pipeline),
			Cards: copyCards(e.cards[pipeline]),
		},
		state: BatchOptimistic,
	}

	for _, change := range changes {
		if !e.store.ApplyStageChange(pipeline, change.ItemID, change.To) {
			slog.Warn("stage change for unknown item ignored",
				"pipeline", pipeline,
				"item_id", change.ItemID)
		}
	}
	e.cards[pipeline] = Project(e.store.Items(pipeline))
	e.inFlight[pipeline] = true

	return batch, nil
}

// Commit settles a batch: it fans the changes out to the backend and,
// depending on the aggregate result, either keeps the optimistic state
// as the new baseline or restores the pre-batch snapshot. The returned
// error is the persistence failure that triggered a rollback, already
// fully handled locally; callers only surface it to the user.
func (e *Engine) Commit(ctx context.Context, batch *Batch) error {
	e.mu.Lock()
	if batch.state != BatchOptimistic {
		e.mu.Unlock()
		return ErrBatchConsumed
	}
	e.mu.Unlock()

	// Network fan-out happens outside the lock so the other pipeline
	// stays fully usable while this batch settles.
	err := e.persister.PersistBatch(ctx, batch.pipeline, batch.changes)

	e.mu.Lock()
	defer e.mu.Unlock()
	e.inFlight[batch.pipeline] = false

	if err != nil {
		e.store.Restore(batch.pipeline, batch.snapshot.Items)
		e.cards[batch.pipeline] = copyCards(batch.snapshot.Cards)
		batch.state = BatchRolledBack
		slog.Error("batch persistence failed, optimistic changes reverted",
			"pipeline", batch.pipeline,
			"moved", len(batch.changes),
			"error", err)
		return err
	}

	batch.state = BatchCommitted
	if e.recorder != nil {
		if recErr := e.recorder.RecordBatch(ctx, batch.pipeline, batch.changes); recErr != nil {
			slog.Warn("committed batch could not be journaled",
				"pipeline", batch.pipeline,
				"error", recErr)
		}
	}
	return nil
}

func copyCards(cards []models.Card) []models.Card {
	out := make([]models.Card, len(cards))
	copy(out, cards)
	return out
}
