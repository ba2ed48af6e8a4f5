package models

import (
	"time"

	"github.com/ayaanshkk/switchboard/internal/types"
)

// CustomerRecord carries the denormalized customer fields the backend
// ships with each pipeline entry. It is read-only on the board; only
// the owning pipeline item's stage ever changes locally.
type CustomerRecord struct {
	ID        types.CustomerID
	Name      string
	Company   string
	Email     string
	Phone     string
	Notes     string // markdown, rendered in the detail view
	Value     float64
	CreatedAt time.Time
}
