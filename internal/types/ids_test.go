package types

import "testing"

func TestItemIDRoundTrip(t *testing.T) {
	customerIDs := []CustomerID{"7", "42", "cust-abc", "00123"}

	for _, id := range customerIDs {
		item := NewItemID(id)
		got, err := item.CustomerID()
		if err != nil {
			t.Fatalf("CustomerID(%q) returned error: %v", item, err)
		}
		if got != id {
			t.Errorf("round trip of %q: got %q", id, got)
		}
	}
}

func TestItemIDPrefix(t *testing.T) {
	if got := NewItemID("7"); got != "item-7" {
		t.Errorf("NewItemID(7) = %q, want %q", got, "item-7")
	}
}

func TestCustomerIDRejectsMalformedIDs(t *testing.T) {
	tests := []struct {
		name string
		id   ItemID
	}{
		{"missing prefix", "7"},
		{"wrong prefix", "task-7"},
		{"prefix only", "item-"},
		{"empty", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := tt.id.CustomerID(); err == nil {
				t.Errorf("CustomerID(%q) succeeded, want error", tt.id)
			}
		})
	}
}
