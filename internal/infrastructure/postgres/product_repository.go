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

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL (usable con pool o tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de persistencia para productos. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

const productColumns = `id, name, category_id, supplier_id, shipment_id, purchase_price,
	purchase_cost_local, selling_price, promo_price, quantity_received, quantity_sold,
	reorder_level, created_at, updated_at`

// Create persiste un nuevo producto.
func (r *ProductRepo) Create(product *entity.Product) error {
	query := `
		INSERT INTO products (` + productColumns + `)
		VALUES ($1, $2, NULLIF($3, ''), NULLIF($4, ''), NULLIF($5, ''), $6, $7, $8, $9, $10, $11, $12, $13, $14)`
	_, err := r.q.Exec(context.Background(), query,
		product.ID, product.Name, product.CategoryID, product.SupplierID, product.ShipmentID,
		product.PurchasePrice, product.PurchaseCostLocal, product.SellingPrice, product.PromoPrice,
		product.QuantityReceived, product.QuantitySold, product.ReorderLevel,
		product.CreatedAt, product.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		if isForeignKeyViolation(err) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// GetByID obtiene un producto por ID.
func (r *ProductRepo) GetByID(id string) (*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id), "get product")
}

// GetForUpdate obtiene el producto y bloquea la fila (SELECT FOR UPDATE).
// Es el punto de serialización de todos los escritores del ledger.
func (r *ProductRepo) GetForUpdate(id string) (*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1 FOR UPDATE`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id), "get product for update")
}

// Update actualiza los atributos de catálogo. Los contadores van por UpdateCounters.
func (r *ProductRepo) Update(product *entity.Product) error {
	query := `
		UPDATE products SET name = $2, category_id = NULLIF($3, ''), supplier_id = NULLIF($4, ''),
			purchase_price = $5, purchase_cost_local = $6, selling_price = $7, promo_price = $8,
			reorder_level = $9, updated_at = $10
		WHERE id = $1`
	cmd, err := r.q.Exec(context.Background(), query,
		product.ID, product.Name, product.CategoryID, product.SupplierID,
		product.PurchasePrice, product.PurchaseCostLocal, product.SellingPrice, product.PromoPrice,
		product.ReorderLevel, product.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update product: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// UpdateCounters actualiza solo los contadores de stock (usado por el motor de ledger
// dentro de la transacción que ya bloqueó la fila).
func (r *ProductRepo) UpdateCounters(productID string, quantityReceived, quantitySold int64) error {
	cmd, err := r.q.Exec(context.Background(),
		`UPDATE products SET quantity_received = $2, quantity_sold = $3, updated_at = now() WHERE id = $1`,
		productID, quantityReceived, quantitySold,
	)
	if err != nil {
		return fmt.Errorf("update product counters: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// List lista productos con filtros y paginación.
func (r *ProductRepo) List(filter repository.ProductFilter, limit, offset int) ([]*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE 1=1`
	args := []any{}
	idx := 1
	add := func(cond string, val any) {
		query += fmt.Sprintf(" AND "+cond, idx)
		args = append(args, val)
		idx++
	}
	if filter.CategoryID != "" {
		add("category_id = $%d", filter.CategoryID)
	}
	if filter.SupplierID != "" {
		add("supplier_id = $%d", filter.SupplierID)
	}
	if filter.ShipmentID != "" {
		add("shipment_id = $%d", filter.ShipmentID)
	}
	if filter.Search != "" {
		add("name ILIKE '%%' || $%d || '%%'", filter.Search)
	}
	switch filter.StockStatus {
	case entity.StockStatusOut:
		query += " AND quantity_received - quantity_sold <= 0"
	case entity.StockStatusLow:
		query += " AND quantity_received - quantity_sold > 0 AND quantity_received - quantity_sold <= reorder_level"
	case entity.StockStatusOK:
		query += " AND quantity_received - quantity_sold > reorder_level"
	}
	query += fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d OFFSET $%d", idx, idx+1)
	args = append(args, limit, offset)

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()
	var list []*entity.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

// Delete elimina un producto. Las FKs de ventas/movimientos lo protegen: en ese
// caso se devuelve ErrConflict (nunca borrado duro con historial).
func (r *ProductRepo) Delete(id string) error {
	cmd, err := r.q.Exec(context.Background(), `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrConflict
		}
		return fmt.Errorf("delete product: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// scanner cubre pgx.Row y pgx.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanProduct(s scanner) (*entity.Product, error) {
	var p entity.Product
	var categoryID, supplierID, shipmentID *string
	err := s.Scan(
		&p.ID, &p.Name, &categoryID, &supplierID, &shipmentID,
		&p.PurchasePrice, &p.PurchaseCostLocal, &p.SellingPrice, &p.PromoPrice,
		&p.QuantityReceived, &p.QuantitySold, &p.ReorderLevel,
		&p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if categoryID != nil {
		p.CategoryID = *categoryID
	}
	if supplierID != nil {
		p.SupplierID = *supplierID
	}
	if shipmentID != nil {
		p.ShipmentID = *shipmentID
	}
	return &p, nil
}

func (r *ProductRepo) scanOne(row pgx.Row, op string) (*entity.Product, error) {
	p, err := scanProduct(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return p, nil
}
