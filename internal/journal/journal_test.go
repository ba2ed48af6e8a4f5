package journal

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/ayaanshkk/switchboard/internal/models"
	"github.com/ayaanshkk/switchboard/internal/types"
)

func openTestJournal(t *testing.T) *Journal {
	t.Helper()
	path := filepath.Join(t.TempDir(), "journal.db")
	j, err := Open(path, "ada")
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() {
		if err := j.Close(); err != nil {
			t.Errorf("Close: %v", err)
		}
	})
	return j
}

func TestRecordBatchAndRecent(t *testing.T) {
	j := openTestJournal(t)
	ctx := context.Background()

	changes := []models.StageChange{
		{ItemID: types.NewItemID("7"), From: "Enquiry", To: "Proposal"},
		{ItemID: types.NewItemID("8"), From: "Proposal", To: "Converted"},
	}
	if err := j.RecordBatch(ctx, models.PipelineSales, changes); err != nil {
		t.Fatalf("RecordBatch: %v", err)
	}

	entries, err := j.Recent(ctx, 10)
	if err != nil {
		t.Fatalf("Recent: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("got %d entries, want 2", len(entries))
	}

	// Newest first.
	if entries[0].ItemID != "item-8" || entries[0].ToStage != "Converted" {
		t.Errorf("entries[0] = %+v", entries[0])
	}
	if entries[1].ItemID != "item-7" || entries[1].FromStage != "Enquiry" {
		t.Errorf("entries[1] = %+v", entries[1])
	}
	for _, e := range entries {
		if e.Pipeline != models.PipelineSales {
			t.Errorf("entry pipeline = %q", e.Pipeline)
		}
		if e.MovedBy != "ada" {
			t.Errorf("entry moved_by = %q", e.MovedBy)
		}
		if e.MovedAt.IsZero() {
			t.Error("entry moved_at not set")
		}
	}
}

func TestRecentHonorsLimit(t *testing.T) {
	j := openTestJournal(t)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		err := j.RecordBatch(ctx, models.PipelineTraining, []models.StageChange{
			{ItemID: types.NewItemID("7"), From: "Enrolled", To: "In Training"},
		})
		if err != nil {
			t.Fatalf("RecordBatch: %v", err)
		}
	}

	entries, err := j.Recent(ctx, 3)
	if err != nil {
		t.Fatalf("Recent: %v", err)
	}
	if len(entries) != 3 {
		t.Errorf("got %d entries, want 3", len(entries))
	}
}

func TestRecentEmptyJournal(t *testing.T) {
	j := openTestJournal(t)

	entries, err := j.Recent(context.Background(), 10)
	if err != nil {
		t.Fatalf("Recent: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("empty journal returned %d entries", len(entries))
	}
}
