package board

import (
	"context"
	"errors"
	"reflect"
	"sync"
	"testing"

	"github.com/ayaanshkk/switchboard/internal/models"
	"github.com/ayaanshkk/switchboard/internal/types"
)

// fakePersister records batches and fails on demand.
type fakePersister struct {
	mu      sync.Mutex
	batches [][]models.StageChange
	err     error
	block   chan struct{} // when non-nil, PersistBatch waits until closed
}

func (f *fakePersister) PersistBatch(ctx context.Context, pipeline models.PipelineType, changes []models.StageChange) error {
	if f.block != nil {
		<-f.block
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.batches = append(f.batches, changes)
	return f.err
}

func (f *fakePersister) batchCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.batches)
}

type fakeRecorder struct {
	recorded [][]models.StageChange
	err      error
}

func (f *fakeRecorder) RecordBatch(ctx context.Context, pipeline models.PipelineType, changes []models.StageChange) error {
	f.recorded = append(f.recorded, changes)
	return f.err
}

func loadedEngine(t *testing.T, persister Persister, recorder Recorder) *Engine {
	t.Helper()
	engine := NewEngine(persister, recorder)
	engine.Load(models.PipelineSales, []models.PipelineItem{
		makeItem("7", "Enquiry", models.PipelineSales),
		makeItem("8", "Proposal", models.PipelineSales),
	})
	engine.Load(models.PipelineTraining, []models.PipelineItem{
		makeItem("7", "Enrolled", models.PipelineTraining),
	})
	return engine
}

// movedCards returns the engine's current cards with one card's column
// reassigned, mimicking what the board interaction hands back.
func movedCards(engine *Engine, pipeline models.PipelineType, id types.ItemID, column models.ColumnID) []models.Card {
	cards := engine.Cards(pipeline)
	for i := range cards {
		if cards[i].ID == id {
			cards[i].Column = column
		}
	}
	return cards
}

func TestBeginNoOpReorder(t *testing.T) {
	persister := &fakePersister{}
	engine := loadedEngine(t, persister, nil)

	before := engine.Items(models.PipelineSales)

	batch, err := engine.Begin(models.PipelineSales, engine.Cards(models.PipelineSales))
	if err != nil {
		t.Fatalf("Begin: %v", err)
	}
	if batch != nil {
		t.Fatal("no-op reorder produced a batch")
	}
	if persister.batchCount() != 0 {
		t.Error("no-op reorder reached the persister")
	}
	if !reflect.DeepEqual(engine.Items(models.PipelineSales), before) {
		t.Error("no-op reorder mutated the store")
	}
}

func TestBeginAppliesOptimistically(t *testing.T) {
	engine := loadedEngine(t, &fakePersister{}, nil)

	next := movedCards(engine, models.PipelineSales, types.NewItemID("7"), "col-converted")
	batch, err := engine.Begin(models.PipelineSales, next)
	if err != nil {
		t.Fatalf("Begin: %v", err)
	}
	if batch == nil || batch.Len() != 1 {
		t.Fatalf("batch = %+v, want one change", batch)
	}
	if batch.State() != BatchOptimistic {
		t.Errorf("batch state = %v, want BatchOptimistic", batch.State())
	}

	// Store and cards reflect the move before any network activity.
	if got := engine.Items(models.PipelineSales)[0].Stage; got != "Converted" {
		t.Errorf("item 7 stage = %q before commit, want Converted", got)
	}
	if got := engine.Cards(models.PipelineSales)[0].Column; got != "col-converted" {
		t.Errorf("card 7 column = %q before commit, want col-converted", got)
	}
}

func TestCommitSuccessKeepsOptimisticState(t *testing.T) {
	persister := &fakePersister{}
	recorder := &fakeRecorder{}
	engine := loadedEngine(t, persister, recorder)

	next := movedCards(engine, models.PipelineSales, types.NewItemID("7"), "col-converted")
	batch, _ := engine.Begin(models.PipelineSales, next)

	if err := engine.Commit(context.Background(), batch); err != nil {
		t.Fatalf("Commit: %v", err)
	}
	if batch.State() != BatchCommitted {
		t.Errorf("batch state = %v, want BatchCommitted", batch.State())
	}

	items := engine.Items(models.PipelineSales)
	if items[0].Stage != "Converted" {
		t.Errorf("item 7 stage = %q, want Converted", items[0].Stage)
	}
	if items[1].Stage != "Proposal" {
		t.Errorf("item 8 stage = %q, should be untouched", items[1].Stage)
	}
	if len(recorder.recorded) != 1 {
		t.Errorf("journal recorded %d batches, want 1", len(recorder.recorded))
	}
	if engine.Syncing(models.PipelineSales) {
		t.Error("pipeline still marked syncing after commit")
	}
}

func TestCommitFailureRollsBackEverything(t *testing.T) {
	persister := &fakePersister{err: errors.New("backend unavailable")}
	engine := loadedEngine(t, persister, nil)

	beforeItems := engine.Items(models.PipelineSales)
	beforeCards := engine.Cards(models.PipelineSales)

	// Move both items in one batch; the single failure reverts both.
	next := engine.Cards(models.PipelineSales)
	next[0].Column = "col-converted"
	next[1].Column = "col-converted"

	batch, _ := engine.Begin(models.PipelineSales, next)
	if batch.Len() != 2 {
		t.Fatalf("batch has %d changes, want 2", batch.Len())
	}

	err := engine.Commit(context.Background(), batch)
	if err == nil {
		t.Fatal("Commit succeeded despite persister failure")
	}
	if batch.State() != BatchRolledBack {
		t.Errorf("batch state = %v, want BatchRolledBack", batch.State())
	}

	if !reflect.DeepEqual(engine.Items(models.PipelineSales), beforeItems) {
		t.Error("items differ from pre-drag state after rollback")
	}
	if !reflect.DeepEqual(engine.Cards(models.PipelineSales), beforeCards) {
		t.Error("cards differ from pre-drag state after rollback")
	}
	if engine.Syncing(models.PipelineSales) {
		t.Error("pipeline still marked syncing after rollback")
	}
}

func TestCommitSettlesBatchOnlyOnce(t *testing.T) {
	engine := loadedEngine(t, &fakePersister{}, nil)

	next := movedCards(engine, models.PipelineSales, types.NewItemID("7"), "col-converted")
	batch, _ := engine.Begin(models.PipelineSales, next)

	if err := engine.Commit(context.Background(), batch); err != nil {
		t.Fatalf("first Commit: %v", err)
	}
	if err := engine.Commit(context.Background(), batch); !errors.Is(err, ErrBatchConsumed) {
		t.Errorf("second Commit error = %v, want ErrBatchConsumed", err)
	}
}

func TestBeginRefusesOverlappingBatchOnSamePipeline(t *testing.T) {
	persister := &fakePersister{block: make(chan struct{})}
	engine := loadedEngine(t, persister, nil)

	next := movedCards(engine, models.PipelineSales, types.NewItemID("7"), "col-converted")
	batch, _ := engine.Begin(models.PipelineSales, next)

	done := make(chan error, 1)
	go func() { done <- engine.Commit(context.Background(), batch) }()

	// While the first batch is in flight, a second move on the same
	// pipeline is refused rather than raced.
	overlapping := movedCards(engine, models.PipelineSales, types.NewItemID("8"), "col-converted")
	if _, err := engine.Begin(models.PipelineSales, overlapping); !errors.Is(err, ErrBatchInFlight) {
		t.Errorf("overlapping Begin error = %v, want ErrBatchInFlight", err)
	}

	// The other pipeline is unaffected.
	trainingNext := movedCards(engine, models.PipelineTraining, types.NewItemID("7"), "col-certified")
	trainingBatch, err := engine.Begin(models.PipelineTraining, trainingNext)
	if err != nil {
		t.Errorf("training Begin during sales flight: %v", err)
	}
	if trainingBatch == nil {
		t.Error("training batch not created during sales flight")
	}

	close(persister.block)
	if err := <-done; err != nil {
		t.Fatalf("Commit: %v", err)
	}

	// Once settled, the sales pipeline accepts batches again.
	retry := movedCards(engine, models.PipelineSales, types.NewItemID("8"), "col-converted")
	if _, err := engine.Begin(models.PipelineSales, retry); err != nil {
		t.Errorf("Begin after settle: %v", err)
	}
}

func TestBeginUnloadedPipeline(t *testing.T) {
	engine := NewEngine(&fakePersister{}, nil)
	if _, err := engine.Begin(models.PipelineSales, nil); !errors.Is(err, ErrUnknownPipeline) {
		t.Errorf("Begin on unloaded pipeline = %v, want ErrUnknownPipeline", err)
	}
}

func TestRecorderFailureDoesNotAffectCommit(t *testing.T) {
	recorder := &fakeRecorder{err: errors.New("journal disk full")}
	engine := loadedEngine(t, &fakePersister{}, recorder)

	next := movedCards(engine, models.PipelineSales, types.NewItemID("7"), "col-converted")
	batch, _ := engine.Begin(models.PipelineSales, next)

	if err := engine.Commit(context.Background(), batch); err != nil {
		t.Fatalf("Commit failed because of journal error: %v", err)
	}
	if batch.State() != BatchCommitted {
		t.Errorf("batch state = %v, want BatchCommitted", batch.State())
	}
}
