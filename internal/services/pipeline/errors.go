package pipeline

import "errors"

// Pipeline service errors
var (
	// ErrLoadFailed indicates the initial board load could not fetch
	// one of the pipelines. The board shows no partial state.
	ErrLoadFailed = errors.New("failed to load pipeline")

	// ErrPersistFailed indicates at least one stage update in a batch
	// was not accepted, which fails the batch as a whole.
	ErrPersistFailed = errors.New("failed to persist stage change")
)
