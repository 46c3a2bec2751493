package http

import (
	"github.com/revendix/revendix-api/internal/application/dto"
	"github.com/revendix/revendix-api/internal/domain/entity"
	"github.com/revendix/revendix-api/internal/domain/ledger"
)

// Mapeo entidad -> DTO de respuesta. Los derivados (stock actual, estado,
// margen) se calculan aquí para que el JSON siempre los lleve consistentes.

func toProductResponse(p *entity.Product) dto.ProductResponse {
	return dto.ProductResponse{
		ID:                p.ID,
		Name:              p.Name,
		CategoryID:        p.CategoryID,
		SupplierID:        p.SupplierID,
		ShipmentID:        p.ShipmentID,
		PurchasePrice:     p.PurchasePrice,
		PurchaseCostLocal: p.PurchaseCostLocal,
		SellingPrice:      p.SellingPrice,
		PromoPrice:        p.PromoPrice,
		QuantityReceived:  p.QuantityReceived,
		QuantitySold:      p.QuantitySold,
		CurrentStock:      p.CurrentStock(),
		StockStatus:       p.StockStatus(),
		ReorderLevel:      p.ReorderLevel,
		MarginPct:         ledger.MarginPct(p.SellingPrice, p.PurchaseCostLocal),
		CreatedAt:         p.CreatedAt,
		UpdatedAt:         p.UpdatedAt,
	}
}

func toProductListResponse(items []*entity.Product, limit, offset int) dto.ProductListResponse {
	out := dto.ProductListResponse{
		Items: make([]dto.ProductResponse, 0, len(items)),
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}
	for _, p := range items {
		out.Items = append(out.Items, toProductResponse(p))
	}
	return out
}

func toSaleResponse(s *entity.Sale) dto.SaleResponse {
	return dto.SaleResponse{
		ID:          s.ID,
		ProductID:   s.ProductID,
		Quantity:    s.Quantity,
		UnitPrice:   s.UnitPrice,
		TotalAmount: s.TotalAmount,
		IsPromo:     s.IsPromo,
		SaleDate:    s.SaleDate,
		Notes:       s.Notes,
		CreatedBy:   s.CreatedBy,
		CreatedAt:   s.CreatedAt,
		UpdatedAt:   s.UpdatedAt,
	}
}

func toSaleListResponse(items []*entity.Sale, limit, offset int) dto.SaleListResponse {
	out := dto.SaleListResponse{
		Items: make([]dto.SaleResponse, 0, len(items)),
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}
	for _, s := range items {
		out.Items = append(out.Items, toSaleResponse(s))
	}
	return out
}

func toMovementResponse(m *entity.StockMovement) dto.MovementResponse {
	return dto.MovementResponse{
		ID:          m.ID,
		ProductID:   m.ProductID,
		Type:        m.Type,
		Quantity:    m.Quantity,
		PreviousQty: m.PreviousQty,
		NewQty:      m.NewQty,
		Reference:   m.Reference,
		Notes:       m.Notes,
		CreatedBy:   m.CreatedBy,
		CreatedAt:   m.CreatedAt,
	}
}

func toMovementListResponse(items []*entity.StockMovement, limit, offset int) dto.MovementListResponse {
	out := dto.MovementListResponse{
		Items: make([]dto.MovementResponse, 0, len(items)),
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}
	for _, m := range items {
		out.Items = append(out.Items, toMovementResponse(m))
	}
	return out
}

func toShipmentResponse(s *entity.Shipment) dto.ShipmentResponse {
	return dto.ShipmentResponse{
		ID:           s.ID,
		Reference:    s.Reference,
		SupplierID:   s.SupplierID,
		ExchangeRate: s.ExchangeRate,
		ShippingCost: s.ShippingCost,
		CustomsFees:  s.CustomsFees,
		ArrivalDate:  s.ArrivalDate,
		Notes:        s.Notes,
		CreatedAt:    s.CreatedAt,
		UpdatedAt:    s.UpdatedAt,
	}
}

func toShipmentListResponse(items []*entity.Shipment, limit, offset int) dto.ShipmentListResponse {
	out := dto.ShipmentListResponse{
		Items: make([]dto.ShipmentResponse, 0, len(items)),
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}
	for _, s := range items {
		out.Items = append(out.Items, toShipmentResponse(s))
	}
	return out
}

func toCategoryResponse(cat *entity.Category) dto.CategoryResponse {
	return dto.CategoryResponse{
		ID:          cat.ID,
		Name:        cat.Name,
		Description: cat.Description,
		CreatedAt:   cat.CreatedAt,
		UpdatedAt:   cat.UpdatedAt,
	}
}

func toSupplierResponse(s *entity.Supplier) dto.SupplierResponse {
	return dto.SupplierResponse{
		ID:        s.ID,
		Name:      s.Name,
		Website:   s.Website,
		Country:   s.Country,
		Notes:     s.Notes,
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}
}

func toExpenseResponse(e *entity.Expense) dto.ExpenseResponse {
	return dto.ExpenseResponse{
		ID:         e.ID,
		Label:      e.Label,
		Category:   e.Category,
		Amount:     e.Amount,
		ShipmentID: e.ShipmentID,
		Date:       e.Date,
		Notes:      e.Notes,
		CreatedBy:  e.CreatedBy,
		CreatedAt:  e.CreatedAt,
		UpdatedAt:  e.UpdatedAt,
	}
}
