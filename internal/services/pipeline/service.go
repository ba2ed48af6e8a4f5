// Package pipeline is the service layer between the board and the
// backend: the all-or-nothing board load and the atomic batch persist.
package pipeline

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/ayaanshkk/switchboard/internal/api"
	"github.com/ayaanshkk/switchboard/internal/converters"
	"github.com/ayaanshkk/switchboard/internal/models"
)

// moveReason is the audit reason attached to every stage change the
// board persists.
const moveReason = "Moved via Kanban board"

// Service defines the pipeline operations the board depends on.
type Service interface {
	// LoadBoard fetches both pipelines concurrently. Either fetch
	// failing fails the whole load; a partial board is never returned.
	LoadBoard(ctx context.Context) (*BoardData, error)

	// PersistBatch pushes one stage update per change concurrently and
	// waits for all of them. Any single failure fails the batch.
	PersistBatch(ctx context.Context, pipeline models.PipelineType, changes []models.StageChange) error
}

// BoardData is the result of a full board load.
type BoardData struct {
	Sales    []models.PipelineItem
	Training []models.PipelineItem
}

// Items returns the loaded items for one pipeline.
func (b *BoardData) Items(pipeline models.PipelineType) []models.PipelineItem {
	if pipeline == models.PipelineTraining {
		return b.Training
	}
	return b.Sales
}

// service implements Service against the REST client.
type service struct {
	client   *api.Client
	identity string
}

// NewService creates a pipeline service. The identity is stamped into
// every stage update's updated_by field.
func NewService(client *api.Client, identity string) Service {
	return &service{
		client:   client,
		identity: identity,
	}
}

func (s *service) LoadBoard(ctx context.Context) (*BoardData, error) {
	board := &BoardData{}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		records, err := s.client.FetchPipeline(ctx, models.PipelineSales)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrLoadFailed, err)
		}
		board.Sales = converters.PipelineRecordsToItems(models.PipelineSales, records)
		return nil
	})
	g.Go(func() error {
		records, err := s.client.FetchPipeline(ctx, models.PipelineTraining)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrLoadFailed, err)
		}
		board.Training = converters.PipelineRecordsToItems(models.PipelineTraining, records)
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return board, nil
}

func (s *service) PersistBatch(ctx context.Context, pipeline models.PipelineType, changes []models.StageChange) error {
	if len(changes) == 0 {
		return nil
	}

	// Plain group, not WithContext: once issued, every request in the
	// batch runs to completion even if a sibling already failed, so
	// the backend sees the same set of attempts regardless of timing.
	var g errgroup.Group
	for _, change := range changes {
		g.Go(func() error {
			// The backend is keyed by customer id, not board item id.
			customerID, err := change.ItemID.CustomerID()
			if err != nil {
				return fmt.Errorf("%w: %w", ErrPersistFailed, err)
			}
			update := api.StageUpdate{
				Stage:        string(change.To),
				PipelineType: string(pipeline),
				Reason:       moveReason,
				UpdatedBy:    s.identity,
			}
			if err := s.client.UpdateCustomerStage(ctx, customerID, update); err != nil {
				return fmt.Errorf("%w: %w", ErrPersistFailed, err)
			}
			return nil
		})
	}
	return g.Wait()
}
