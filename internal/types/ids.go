package types

import (
	"fmt"
	"strings"
)

// Identifier types distinguish the two id spaces the board deals with:
// the backend's customer ids and the board-local pipeline item ids the
// view layer hands around. The board id carries a fixed "item-" prefix
// so the two can never be confused or passed to the wrong endpoint.

// CustomerID identifies a customer record in the backend.
type CustomerID string

// ItemID identifies a pipeline item on the board. It is always the
// owning customer's id with the "item-" prefix applied.
type ItemID string

const itemIDPrefix = "item-"

// NewItemID derives the board-local item id for a customer.
func NewItemID(id CustomerID) ItemID {
	return ItemID(itemIDPrefix + string(id))
}

// CustomerID recovers the backend customer id from an item id.
// This is the only place the prefix convention lives; callers must
// never strip the prefix by hand.
func (id ItemID) CustomerID() (CustomerID, error) {
	raw, ok := strings.CutPrefix(string(id), itemIDPrefix)
	if !ok || raw == "" {
		return "", fmt.Errorf("malformed item id %q: expected %q prefix", id, itemIDPrefix)
	}
	return CustomerID(raw), nil
}

func (id ItemID) String() string {
	return string(id)
}

func (id CustomerID) String() string {
	return string(id)
}
