// Package catalog holds the static stage catalogs for both pipelines
// and the stage/column mapping used by the board.
//
// Stage order matters only for column rendering; any stage is
// reachable from any other by a single move.
package catalog

import (
	"log/slog"
	"strings"

	"github.com/ayaanshkk/switchboard/internal/models"
)

var salesStages = []models.Stage{
	"Enquiry",
	"Proposal",
	"Converted",
}

var trainingStages = []models.Stage{
	"Enquiry",
	"Enrolled",
	"In Training",
	"Assessment",
	"Certified",
	"Completed",
}

// Stages returns the ordered stage list for a pipeline. The returned
// slice is a copy; callers may not mutate the catalog.
func Stages(pipeline models.PipelineType) []models.Stage {
	var src []models.Stage
	switch pipeline {
	case models.PipelineTraining:
		src = trainingStages
	default:
		src = salesStages
	}
	out := make([]models.Stage, len(src))
	copy(out, src)
	return out
}

// First returns the pipeline's first stage, which doubles as the
// fallback target for unmapped columns.
func First(pipeline models.PipelineType) models.Stage {
	return Stages(pipeline)[0]
}

// Contains reports whether the stage is a member of the pipeline's catalog.
func Contains(pipeline models.PipelineType, stage models.Stage) bool {
	for _, s := range Stages(pipeline) {
		if s == stage {
			return true
		}
	}
	return false
}

// ColumnFromStage derives the board column key for a stage name.
// The normalization is lossless for catalog members: lowercase,
// spaces to hyphens, "col-" prefix.
func ColumnFromStage(stage models.Stage) models.ColumnID {
	normalized := strings.ReplaceAll(strings.ToLower(string(stage)), " ", "-")
	return models.ColumnID("col-" + normalized)
}

// StageFromColumn resolves a column key back to its stage name within
// a pipeline. An unmapped column falls back to the pipeline's first
// stage rather than failing; that indicates catalog/data skew, so it
// is logged.
func StageFromColumn(pipeline models.PipelineType, column models.ColumnID) models.Stage {
	for _, stage := range Stages(pipeline) {
		if ColumnFromStage(stage) == column {
			return stage
		}
	}
	slog.Warn("unmapped column, falling back to first stage",
		"pipeline", pipeline,
		"column", column)
	return First(pipeline)
}
