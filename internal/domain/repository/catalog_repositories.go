package repository

import (
	"time"

	"github.com/revendix/revendix-api/internal/domain/entity"
)

// CategoryRepository CRUD simple de categorías.
type CategoryRepository interface {
	Create(category *entity.Category) error
	GetByID(id string) (*entity.Category, error)
	Update(category *entity.Category) error
	List(limit, offset int) ([]*entity.Category, error)
	Delete(id string) error
}

// SupplierRepository CRUD simple de proveedores (orígenes de compra).
type SupplierRepository interface {
	Create(supplier *entity.Supplier) error
	GetByID(id string) (*entity.Supplier, error)
	Update(supplier *entity.Supplier) error
	List(limit, offset int) ([]*entity.Supplier, error)
	Delete(id string) error
}

// ExpenseRepository CRUD simple de gastos.
type ExpenseRepository interface {
	Create(expense *entity.Expense) error
	GetByID(id string) (*entity.Expense, error)
	Update(expense *entity.Expense) error
	List(from, to *time.Time, shipmentID string, limit, offset int) ([]*entity.Expense, error)
	Delete(id string) error
}
