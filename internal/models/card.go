package models

import "github.com/ayaanshkk/switchboard/internal/types"

// Card is the view projection of one pipeline item: what the board
// renders and what the reorder interaction hands back. It is a cache
// over the item list, always re-derivable and never a source of truth.
type Card struct {
	ID       types.ItemID
	Column   ColumnID
	Customer CustomerRecord
}
