package inventory

import (
	"fmt"

	"github.com/XenomaCode/MVP-CATERING/internal/repository"
	custom_error "github.com/XenomaCode/MVP-CATERING/pkg/errors"
	"github.com/XenomaCode/MVP-CATERING/pkg/models"

	"github.com/doug-martin/goqu/v9"
)

type ItemRepository interface {
	GetItems() ([]models.InventoryItem, error)
	GetItem(id int) (*models.InventoryItem, error)
	PersistItem(req CreateItemRequest) (*models.InventoryItem, error)
	UpdateItem(id int, req UpdateItemRequest) (*models.InventoryItem, error)
	RemoveItem(id int) error
}

type itemRepositoryImpl struct {
	repository *repository.Repository
}

func NewRepository(r *repository.Repository) ItemRepository {
	return &itemRepositoryImpl{repository: r}
}

func (r *itemRepositoryImpl) GetItems() ([]models.InventoryItem, error) {
	var items []models.InventoryItem

	query := r.repository.GoquDBWrapper.
		Select("id", "name", "category", "quantity", "min_stock", "unit", "description", "last_updated").
		From("inventory_items").
		Order(goqu.I("name").Asc())

	if err := query.Executor().ScanStructs(&items); err != nil {
		return nil, custom_error.WrapDBError(err, "no se pudieron obtener los artículos")
	}

	return items, nil
}

func (r *itemRepositoryImpl) GetItem(id int) (*models.InventoryItem, error) {
	var item models.InventoryItem

	query := r.repository.GoquDBWrapper.
		Select("id", "name", "category", "quantity", "min_stock", "unit", "description", "last_updated").
		From("inventory_items").
		Where(goqu.Ex{"id": id})

	found, err := query.Executor().ScanStruct(&item)
	if err != nil {
		return nil, custom_error.WrapDBError(err, "no se pudo obtener el artículo")
	}
	if !found {
		return nil, custom_error.NewNotFoundError("artículo", id)
	}

	return &item, nil
}

func (r *itemRepositoryImpl) PersistItem(req CreateItemRequest) (*models.InventoryItem, error) {
	unit := req.Unit
	if unit == "" {
		unit = "unidad"
	}

	record := goqu.Record{
		"name":         req.Name,
		"category":     req.Category,
		"quantity":     req.Quantity,
		"min_stock":    req.MinStock,
		"unit":         unit,
		"last_updated": goqu.L("now()"),
	}
	if req.Description != nil {
		record["description"] = *req.Description
	}

	var itemID int
	query := r.repository.GoquDBWrapper.Insert("inventory_items").
		Rows(record).
		Returning("id")

	if _, err := query.Executor().ScanVal(&itemID); err != nil {
		return nil, custom_error.WrapDBError(err, "no se pudo crear el artículo")
	}

	return r.GetItem(itemID)
}

func (r *itemRepositoryImpl) UpdateItem(id int, req UpdateItemRequest) (*models.InventoryItem, error) {
	record := goqu.Record{
		"name":         req.Name,
		"category":     req.Category,
		"quantity":     req.Quantity,
		"min_stock":    req.MinStock,
		"description":  req.Description,
		"last_updated": goqu.L("now()"),
	}
	if req.Unit != "" {
		record["unit"] = req.Unit
	}

	result, err := r.repository.GoquDBWrapper.Update("inventory_items").
		Set(record).
		Where(goqu.Ex{"id": id}).
		Executor().
		Exec()
	if err != nil {
		return nil, custom_error.WrapDBError(err, "no se pudo actualizar el artículo")
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("failed to check rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return nil, custom_error.NewNotFoundError("artículo", id)
	}

	return r.GetItem(id)
}

// RemoveItem refuses to delete an item still referenced by event items. The
// check and the delete run in one transaction, and the RESTRICT foreign key
// on event_items backstops any insert racing past the check.
func (r *itemRepositoryImpl) RemoveItem(id int) error {
	return repository.WithTransaction(r.repository.GoquDBWrapper, func(tx *goqu.TxDatabase) error {
		var references int
		_, err := tx.Select(goqu.COUNT("id")).
			From("event_items").
			Where(goqu.Ex{"inventory_id": id}).
			Executor().
			ScanVal(&references)
		if err != nil {
			return custom_error.WrapDBError(err, "no se pudo comprobar el uso del artículo")
		}

		if references > 0 {
			return custom_error.NewReferentialIntegrityError(
				"No se puede eliminar el artículo porque está siendo usado en eventos")
		}

		result, err := tx.Delete("inventory_items").
			Where(goqu.Ex{"id": id}).
			Executor().
			Exec()
		if err != nil {
			return custom_error.WrapDBError(err, "no se pudo eliminar el artículo")
		}

		rowsAffected, err := result.RowsAffected()
		if err != nil {
			return fmt.Errorf("failed to check rows affected: %w", err)
		}
		if rowsAffected == 0 {
			return custom_error.NewNotFoundError("artículo", id)
		}

		return nil
	})
}
