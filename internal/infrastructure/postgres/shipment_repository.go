package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/revendix/revendix-api/internal/domain"
	"github.com/revendix/revendix-api/internal/domain/entity"
	"github.com/revendix/revendix-api/internal/domain/repository"
)

var _ repository.ShipmentRepository = (*ShipmentRepo)(nil)

// ShipmentRepo implementación del puerto ShipmentRepository sobre PostgreSQL.
type ShipmentRepo struct {
	q Querier
}

// NewShipmentRepository construye el adaptador. Pasar pool o tx (Querier).
func NewShipmentRepository(q Querier) *ShipmentRepo {
	return &ShipmentRepo{q: q}
}

const shipmentColumns = `id, reference, supplier_id, exchange_rate, shipping_cost,
	customs_fees, arrival_date, notes, created_at, updated_at`

// Create persiste un arrivage.
func (r *ShipmentRepo) Create(shipment *entity.Shipment) error {
	query := `
		INSERT INTO shipments (` + shipmentColumns + `)
		VALUES ($1, $2, NULLIF($3, ''), $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(context.Background(), query,
		shipment.ID, shipment.Reference, shipment.SupplierID, shipment.ExchangeRate,
		shipment.ShippingCost, shipment.CustomsFees, shipment.ArrivalDate, shipment.Notes,
		shipment.CreatedAt, shipment.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert shipment: %w", err)
	}
	return nil
}

// GetByID obtiene un arrivage por ID.
func (r *ShipmentRepo) GetByID(id string) (*entity.Shipment, error) {
	query := `SELECT ` + shipmentColumns + ` FROM shipments WHERE id = $1`
	var s entity.Shipment
	var supplierID *string
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&s.ID, &s.Reference, &supplierID, &s.ExchangeRate, &s.ShippingCost,
		&s.CustomsFees, &s.ArrivalDate, &s.Notes, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get shipment: %w", err)
	}
	if supplierID != nil {
		s.SupplierID = *supplierID
	}
	return &s, nil
}

// Update actualiza un arrivage.
func (r *ShipmentRepo) Update(shipment *entity.Shipment) error {
	query := `
		UPDATE shipments SET reference = $2, supplier_id = NULLIF($3, ''), exchange_rate = $4,
			shipping_cost = $5, customs_fees = $6, arrival_date = $7, notes = $8, updated_at = $9
		WHERE id = $1`
	cmd, err := r.q.Exec(context.Background(), query,
		shipment.ID, shipment.Reference, shipment.SupplierID, shipment.ExchangeRate,
		shipment.ShippingCost, shipment.CustomsFees, shipment.ArrivalDate, shipment.Notes,
		shipment.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update shipment: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// List lista arrivages, el más reciente primero.
func (r *ShipmentRepo) List(limit, offset int) ([]*entity.Shipment, error) {
	query := `SELECT ` + shipmentColumns + ` FROM shipments ORDER BY arrival_date DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list shipments: %w", err)
	}
	defer rows.Close()
	var list []*entity.Shipment
	for rows.Next() {
		var s entity.Shipment
		var supplierID *string
		if err := rows.Scan(
			&s.ID, &s.Reference, &supplierID, &s.ExchangeRate, &s.ShippingCost,
			&s.CustomsFees, &s.ArrivalDate, &s.Notes, &s.CreatedAt, &s.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan shipment: %w", err)
		}
		if supplierID != nil {
			s.SupplierID = *supplierID
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}

// Delete elimina un arrivage sin productos asociados (FK → ErrConflict).
func (r *ShipmentRepo) Delete(id string) error {
	cmd, err := r.q.Exec(context.Background(), `DELETE FROM shipments WHERE id = $1`, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrConflict
		}
		return fmt.Errorf("delete shipment: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
