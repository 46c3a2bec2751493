package repository

import (
	"github.com/revendix/revendix-api/internal/domain/entity"
)

// ProductFilter filtros de listado de productos.
type ProductFilter struct {
	CategoryID  string
	SupplierID  string
	ShipmentID  string
	StockStatus string // OUT, LOW, OK; vacío = todos
	Search      string // por nombre
}

// ProductRepository define el puerto de persistencia para Product (DIP).
// GetForUpdate bloquea la fila del producto (SELECT FOR UPDATE): es la pieza
// que serializa a los escritores concurrentes del ledger.
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	GetForUpdate(id string) (*entity.Product, error)
	Update(product *entity.Product) error
	UpdateCounters(productID string, quantityReceived, quantitySold int64) error
	List(filter ProductFilter, limit, offset int) ([]*entity.Product, error)
	Delete(id string) error
}
