package models

import "time"

type Event struct {
	ID          int       `db:"id" json:"id"`
	Name        string    `db:"name" json:"name"`
	Date        time.Time `db:"event_date" json:"date"`
	Location    string    `db:"location" json:"location"`
	Description *string   `db:"description" json:"description,omitempty"`
	UserID      int       `db:"user_id" json:"user_id"`
	// Owner is the responsible user's fullname, joined on reads.
	Owner string      `db:"owner" json:"owner,omitempty"`
	Items []EventItem `db:"-" json:"items,omitempty"`
}

// EventItem links an event to one inventory item with a requested quantity.
// The item name, category and unit are resolved from the inventory on reads.
type EventItem struct {
	ID          int    `db:"id" json:"id"`
	EventID     int    `db:"event_id" json:"event_id"`
	InventoryID int    `db:"inventory_id" json:"inventory_id"`
	Quantity    int    `db:"quantity" json:"quantity"`
	Name        string `db:"name" json:"name,omitempty"`
	Category    string `db:"category" json:"category,omitempty"`
	Unit        string `db:"unit" json:"unit,omitempty"`
}
