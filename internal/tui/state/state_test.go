package state

import (
	"testing"

	"github.com/ayaanshkk/switchboard/internal/models"
)

func TestToggleActivePipeline(t *testing.T) {
	s := NewAppState()
	if s.ActivePipeline() != models.PipelineSales {
		t.Fatalf("initial pipeline = %q", s.ActivePipeline())
	}
	s.ToggleActivePipeline()
	if s.ActivePipeline() != models.PipelineTraining {
		t.Errorf("after toggle = %q", s.ActivePipeline())
	}
	s.ToggleActivePipeline()
	if s.ActivePipeline() != models.PipelineSales {
		t.Errorf("after second toggle = %q", s.ActivePipeline())
	}
}

func TestGroupCards(t *testing.T) {
	cards := []models.Card{
		{ID: "item-1", Column: "col-enquiry"},
		{ID: "item-2", Column: "col-proposal"},
		{ID: "item-3", Column: "col-enquiry"},
	}

	grouped := GroupCards(cards)

	if len(grouped["col-enquiry"]) != 2 {
		t.Errorf("col-enquiry has %d cards", len(grouped["col-enquiry"]))
	}
	if len(grouped["col-proposal"]) != 1 {
		t.Errorf("col-proposal has %d cards", len(grouped["col-proposal"]))
	}
	// Relative order within a column is preserved.
	if grouped["col-enquiry"][0].ID != "item-1" || grouped["col-enquiry"][1].ID != "item-3" {
		t.Errorf("col-enquiry order = %v", grouped["col-enquiry"])
	}
}

func TestUIStateCursorClamping(t *testing.T) {
	s := NewUIState()

	s.SetSelectedColumn(5, 3)
	if s.SelectedColumn() != 2 {
		t.Errorf("column clamped to %d, want 2", s.SelectedColumn())
	}
	s.SetSelectedColumn(-1, 3)
	if s.SelectedColumn() != 0 {
		t.Errorf("column clamped to %d, want 0", s.SelectedColumn())
	}

	s.SetSelectedCard(10, 4)
	if s.SelectedCard() != 3 {
		t.Errorf("card clamped to %d, want 3", s.SelectedCard())
	}
	s.ClampCard(2)
	if s.SelectedCard() != 1 {
		t.Errorf("card reclamped to %d, want 1", s.SelectedCard())
	}
	s.ClampCard(0)
	if s.SelectedCard() != 0 {
		t.Errorf("card in empty column = %d, want 0", s.SelectedCard())
	}
}

func TestSearchQueryEditing(t *testing.T) {
	s := NewUIState()
	s.AppendSearchRune('a')
	s.AppendSearchRune('d')
	s.AppendSearchRune('a')
	if s.SearchQuery() != "ada" {
		t.Errorf("query = %q", s.SearchQuery())
	}
	s.BackspaceSearch()
	if s.SearchQuery() != "ad" {
		t.Errorf("query after backspace = %q", s.SearchQuery())
	}
	s.SetSearchQuery("")
	s.BackspaceSearch() // no panic on empty
	if s.SearchQuery() != "" {
		t.Errorf("query = %q", s.SearchQuery())
	}
}

func TestNotificationState(t *testing.T) {
	s := NewNotificationState()
	if s.HasAny() {
		t.Error("new state has notifications")
	}
	s.Add(LevelError, "Failed to update stage. Changes reverted.")
	s.Add(LevelInfo, "hello")
	if !s.HasAny() || len(s.All()) != 2 {
		t.Errorf("notifications = %v", s.All())
	}
	if s.All()[0].Level != LevelError {
		t.Errorf("first notification level = %v", s.All()[0].Level)
	}
	s.Clear()
	if s.HasAny() {
		t.Error("notifications survive Clear")
	}
}

func TestErrorState(t *testing.T) {
	s := NewErrorState()
	if s.HasError() {
		t.Error("new state has error")
	}
	s.Set("load failed")
	if !s.HasError() || s.Get() != "load failed" {
		t.Errorf("error = %q", s.Get())
	}
	s.Clear()
	if s.HasError() {
		t.Error("error survives Clear")
	}
}
