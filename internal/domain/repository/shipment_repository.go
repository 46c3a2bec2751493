package repository

import (
	"github.com/revendix/revendix-api/internal/domain/entity"
)

// ShipmentRepository define el puerto de persistencia para Shipment/arrivage (DIP).
type ShipmentRepository interface {
	Create(shipment *entity.Shipment) error
	GetByID(id string) (*entity.Shipment, error)
	Update(shipment *entity.Shipment) error
	List(limit, offset int) ([]*entity.Shipment, error)
	Delete(id string) error
}
