package models

import "time"

type InventoryItem struct {
	ID          int       `db:"id" json:"id"`
	Name        string    `db:"name" json:"name"`
	Category    string    `db:"category" json:"category"`
	Quantity    int       `db:"quantity" json:"quantity"`
	MinStock    int       `db:"min_stock" json:"min_stock"`
	Unit        string    `db:"unit" json:"unit"`
	Description *string   `db:"description" json:"description,omitempty"`
	LastUpdated time.Time `db:"last_updated" json:"last_updated"`
}
