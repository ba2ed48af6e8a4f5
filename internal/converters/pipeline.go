// Package converters provides conversion between backend wire records
// and domain models. Conversions are explicit; unknown stages are
// corrected to the pipeline's first stage rather than carried through.
package converters

import (
	"log/slog"

	"github.com/ayaanshkk/switchboard/internal/api"
	"github.com/ayaanshkk/switchboard/internal/catalog"
	"github.com/ayaanshkk/switchboard/internal/models"
	"github.com/ayaanshkk/switchboard/internal/types"
)

// PipelineRecordToItem converts one backend pipeline record into a
// domain pipeline item. A stage name outside the pipeline's catalog
// indicates data skew; it is logged and normalized to the first stage
// so the item still lands on the board.
func PipelineRecordToItem(pipeline models.PipelineType, rec api.PipelineRecord) models.PipelineItem {
	customerID := types.CustomerID(rec.ID)
	stage := models.Stage(rec.Stage)
	if !catalog.Contains(pipeline, stage) {
		slog.Warn("record carries stage outside pipeline catalog",
			"pipeline", pipeline,
			"customer_id", customerID,
			"stage", rec.Stage)
		stage = catalog.First(pipeline)
	}

	return models.PipelineItem{
		ID: types.NewItemID(customerID),
		Customer: models.CustomerRecord{
			ID:        customerID,
			Name:      rec.Name,
			Company:   rec.Company,
			Email:     rec.Email,
			Phone:     rec.Phone,
			Notes:     rec.Notes,
			Value:     rec.Value,
			CreatedAt: rec.CreatedAt,
		},
		Stage:    stage,
		Pipeline: pipeline,
	}
}

// PipelineRecordsToItems converts a fetched pipeline in record order.
func PipelineRecordsToItems(pipeline models.PipelineType, records []api.PipelineRecord) []models.PipelineItem {
	items := make([]models.PipelineItem, 0, len(records))
	for _, rec := range records {
		items = append(items, PipelineRecordToItem(pipeline, rec))
	}
	return items
}
