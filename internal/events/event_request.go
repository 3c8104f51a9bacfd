package events

import "time"

type EventItemRequest struct {
	InventoryID int `json:"inventory_id" binding:"required"`
	Quantity    int `json:"quantity" binding:"required,min=1"`
}

type CreateEventRequest struct {
	Name        string             `json:"name" binding:"required"`
	Date        time.Time          `json:"date" binding:"required"`
	Location    string             `json:"location" binding:"required"`
	Description *string            `json:"description"`
	Items       []EventItemRequest `json:"items" binding:"required,min=1,dive"`
}

// UpdateEventRequest deliberately does not re-enforce a minimum item count:
// an update may leave the event with an empty list.
type UpdateEventRequest struct {
	Name        string             `json:"name" binding:"required"`
	Date        time.Time          `json:"date" binding:"required"`
	Location    string             `json:"location" binding:"required"`
	Description *string            `json:"description"`
	Items       []EventItemRequest `json:"items" binding:"dive"`
}
