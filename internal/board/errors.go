package board

import "errors"

// Board engine errors
var (
	// ErrBatchInFlight indicates a previous batch on the same pipeline
	// is still waiting on the backend. Batches are serialized per
	// pipeline so a failed batch's rollback can never stomp on a later
	// batch's optimistic state.
	ErrBatchInFlight = errors.New("a previous move on this pipeline is still syncing")

	// ErrUnknownPipeline indicates a pipeline type the engine was not
	// loaded with.
	ErrUnknownPipeline = errors.New("unknown pipeline")

	// ErrBatchConsumed indicates a batch was committed or rolled back twice.
	ErrBatchConsumed = errors.New("batch already settled")
)
