package events

import (
	"fmt"

	"github.com/XenomaCode/MVP-CATERING/internal/repository"
	custom_error "github.com/XenomaCode/MVP-CATERING/pkg/errors"
	"github.com/XenomaCode/MVP-CATERING/pkg/models"

	"github.com/doug-martin/goqu/v9"
)

type EventRepository interface {
	GetEvents() ([]models.Event, error)
	GetEventDetail(id int) (*models.Event, error)
	CreateEvent(userID int, req CreateEventRequest) (*models.Event, error)
	UpdateEvent(id int, req UpdateEventRequest) (*models.Event, error)
	RemoveEvent(id int) error
}

type eventRepositoryImpl struct {
	repository *repository.Repository
}

func NewRepository(r *repository.Repository) EventRepository {
	return &eventRepositoryImpl{repository: r}
}

func (r *eventRepositoryImpl) GetEvents() ([]models.Event, error) {
	var events []models.Event

	query := r.repository.GoquDBWrapper.
		From(goqu.T("events").As("e")).
		Join(goqu.T("users").As("u"), goqu.On(goqu.Ex{"u.id": goqu.I("e.user_id")})).
		Select(
			goqu.I("e.id").As("id"),
			goqu.I("e.name").As("name"),
			goqu.I("e.event_date").As("event_date"),
			goqu.I("e.location").As("location"),
			goqu.I("e.description").As("description"),
			goqu.I("e.user_id").As("user_id"),
			goqu.I("u.fullname").As("owner"),
		).
		Order(goqu.I("e.event_date").Desc())

	if err := query.Executor().ScanStructs(&events); err != nil {
		return nil, custom_error.WrapDBError(err, "no se pudieron obtener los eventos")
	}

	return events, nil
}

func (r *eventRepositoryImpl) GetEventDetail(id int) (*models.Event, error) {
	var event models.Event

	query := r.repository.GoquDBWrapper.
		From(goqu.T("events").As("e")).
		Join(goqu.T("users").As("u"), goqu.On(goqu.Ex{"u.id": goqu.I("e.user_id")})).
		Select(
			goqu.I("e.id").As("id"),
			goqu.I("e.name").As("name"),
			goqu.I("e.event_date").As("event_date"),
			goqu.I("e.location").As("location"),
			goqu.I("e.description").As("description"),
			goqu.I("e.user_id").As("user_id"),
			goqu.I("u.fullname").As("owner"),
		).
		Where(goqu.Ex{"e.id": id})

	found, err := query.Executor().ScanStruct(&event)
	if err != nil {
		return nil, custom_error.WrapDBError(err, "no se pudo obtener el evento")
	}
	if !found {
		return nil, custom_error.NewNotFoundError("evento", id)
	}

	items, err := r.getEventItems(id)
	if err != nil {
		return nil, err
	}
	event.Items = items

	return &event, nil
}

// getEventItems returns the event's items with inventory fields resolved,
// in insertion order.
func (r *eventRepositoryImpl) getEventItems(eventID int) ([]models.EventItem, error) {
	var items []models.EventItem

	query := r.repository.GoquDBWrapper.
		From(goqu.T("event_items").As("ei")).
		Join(goqu.T("inventory_items").As("i"), goqu.On(goqu.Ex{"i.id": goqu.I("ei.inventory_id")})).
		Select(
			goqu.I("ei.id").As("id"),
			goqu.I("ei.event_id").As("event_id"),
			goqu.I("ei.inventory_id").As("inventory_id"),
			goqu.I("ei.quantity").As("quantity"),
			goqu.I("i.name").As("name"),
			goqu.I("i.category").As("category"),
			goqu.I("i.unit").As("unit"),
		).
		Where(goqu.Ex{"ei.event_id": eventID}).
		Order(goqu.I("ei.id").Asc())

	if err := query.Executor().ScanStructs(&items); err != nil {
		return nil, custom_error.WrapDBError(err, "no se pudieron obtener los artículos del evento")
	}

	return items, nil
}

func (r *eventRepositoryImpl) CreateEvent(userID int, req CreateEventRequest) (*models.Event, error) {
	var eventID int

	err := repository.WithTransaction(r.repository.GoquDBWrapper, func(tx *goqu.TxDatabase) error {
		record := goqu.Record{
			"name":       req.Name,
			"event_date": req.Date,
			"location":   req.Location,
			"user_id":    userID,
		}
		if req.Description != nil {
			record["description"] = *req.Description
		}

		query := tx.Insert("events").
			Rows(record).
			Returning("id")

		if _, err := query.Executor().ScanVal(&eventID); err != nil {
			return custom_error.WrapDBError(err, "no se pudo crear el evento")
		}

		return insertEventItems(tx, eventID, req.Items)
	})
	if err != nil {
		return nil, err
	}

	return r.GetEventDetail(eventID)
}

// UpdateEvent replaces the event's item list wholesale: every existing
// event_items row is deleted and the submitted list is inserted fresh, in
// submitted order. Partial edits are expressed by resubmitting the full list.
func (r *eventRepositoryImpl) UpdateEvent(id int, req UpdateEventRequest) (*models.Event, error) {
	err := repository.WithTransaction(r.repository.GoquDBWrapper, func(tx *goqu.TxDatabase) error {
		if _, err := tx.Delete("event_items").
			Where(goqu.Ex{"event_id": id}).
			Executor().
			Exec(); err != nil {
			return custom_error.WrapDBError(err, "no se pudieron eliminar los artículos del evento")
		}

		record := goqu.Record{
			"name":        req.Name,
			"event_date":  req.Date,
			"location":    req.Location,
			"description": req.Description,
		}

		result, err := tx.Update("events").
			Set(record).
			Where(goqu.Ex{"id": id}).
			Executor().
			Exec()
		if err != nil {
			return custom_error.WrapDBError(err, "no se pudo actualizar el evento")
		}

		rowsAffected, err := result.RowsAffected()
		if err != nil {
			return fmt.Errorf("failed to check rows affected: %w", err)
		}
		if rowsAffected == 0 {
			return custom_error.NewNotFoundError("evento", id)
		}

		return insertEventItems(tx, id, req.Items)
	})
	if err != nil {
		return nil, err
	}

	return r.GetEventDetail(id)
}

func (r *eventRepositoryImpl) RemoveEvent(id int) error {
	return repository.WithTransaction(r.repository.GoquDBWrapper, func(tx *goqu.TxDatabase) error {
		if _, err := tx.Delete("event_items").
			Where(goqu.Ex{"event_id": id}).
			Executor().
			Exec(); err != nil {
			return custom_error.WrapDBError(err, "no se pudieron eliminar los artículos del evento")
		}

		result, err := tx.Delete("events").
			Where(goqu.Ex{"id": id}).
			Executor().
			Exec()
		if err != nil {
			return custom_error.WrapDBError(err, "no se pudo eliminar el evento")
		}

		rowsAffected, err := result.RowsAffected()
		if err != nil {
			return fmt.Errorf("failed to check rows affected: %w", err)
		}
		if rowsAffected == 0 {
			return custom_error.NewNotFoundError("evento", id)
		}

		return nil
	})
}

func insertEventItems(tx *goqu.TxDatabase, eventID int, items []EventItemRequest) error {
	for _, item := range items {
		query := tx.Insert("event_items").
			Rows(goqu.Record{
				"event_id":     eventID,
				"inventory_id": item.InventoryID,
				"quantity":     item.Quantity,
			})

		if _, err := query.Executor().Exec(); err != nil {
			return custom_error.WrapDBError(err,
				fmt.Sprintf("no se pudo registrar el artículo %d en el evento", item.InventoryID))
		}
	}

	return nil
}
