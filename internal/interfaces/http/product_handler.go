package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/revendix/revendix-api/internal/application/dto"
	"github.com/revendix/revendix-api/internal/application/importer"
	"github.com/revendix/revendix-api/internal/application/ledger"
	"github.com/revendix/revendix-api/internal/application/usecase"
	"github.com/revendix/revendix-api/internal/domain/entity"
	"github.com/revendix/revendix-api/internal/domain/repository"
	"github.com/revendix/revendix-api/pkg/i18n"
)

// ProductHandler maneja productos, su historial de movimientos y las mutaciones
// de stock (ajuste manual, reset, import masivo).
type ProductHandler struct {
	uc       *usecase.ProductUseCase
	ledgerUC *ledger.StockLedgerUseCase
	importUC *importer.ImportUseCase
}

// NewProductHandler construye el handler.
func NewProductHandler(uc *usecase.ProductUseCase, ledgerUC *ledger.StockLedgerUseCase, importUC *importer.ImportUseCase) *ProductHandler {
	return &ProductHandler{uc: uc, ledgerUC: ledgerUC, importUC: importUC}
}

// Create godoc
// @Summary      Crear producto
// @Tags         products
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateProductRequest  true  "Datos del producto"
// @Success      201   {object}  dto.ProductResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/products [post]
func (h *ProductHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateProductRequest
	if err := c.BodyParser(&in); err != nil {
		return respondInvalidBody(c)
	}
	product, err := h.uc.Create(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(toProductResponse(product))
}

// GetByID godoc
// @Summary      Obtener producto por ID
// @Tags         products
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del producto"
// @Success      200  {object}  dto.ProductResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/products/{id} [get]
func (h *ProductHandler) GetByID(c *fiber.Ctx) error {
	product, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(toProductResponse(product))
}

// List godoc
// @Summary      Listar productos
// @Tags         products
// @Security     Bearer
// @Produce      json
// @Param        category_id   query  string  false  "Filtro por categoría"
// @Param        supplier_id   query  string  false  "Filtro por proveedor"
// @Param        shipment_id   query  string  false  "Filtro por arrivage"
// @Param        stock_status  query  string  false  "OUT | LOW | OK"
// @Param        search        query  string  false  "Búsqueda por nombre"
// @Param        limit         query  int     false  "Límite"   default(20)
// @Param        offset        query  int     false  "Offset"   default(0)
// @Success      200  {object}  dto.ProductListResponse
// @Router       /api/products [get]
func (h *ProductHandler) List(c *fiber.Ctx) error {
	limit, offset := pageParams(c)
	filter := repository.ProductFilter{
		CategoryID:  c.Query("category_id"),
		SupplierID:  c.Query("supplier_id"),
		ShipmentID:  c.Query("shipment_id"),
		StockStatus: c.Query("stock_status"),
		Search:      c.Query("search"),
	}
	items, err := h.uc.List(filter, limit, offset)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(toProductListResponse(items, limit, offset))
}

// Update godoc
// @Summary      Actualizar producto (catálogo, sin contadores de stock)
// @Tags         products
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del producto"
// @Param        body  body  dto.UpdateProductRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.ProductResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/products/{id} [put]
func (h *ProductHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateProductRequest
	if err := c.BodyParser(&in); err != nil {
		return respondInvalidBody(c)
	}
	product, err := h.uc.Update(c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(toProductResponse(product))
}

// Delete godoc
// @Summary      Eliminar producto
// @Tags         products
// @Security     Bearer
// @Param        id  path  string  true  "ID del producto"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/products/{id} [delete]
func (h *ProductHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Movements godoc
// @Summary      Historial de movimientos de stock de un producto
// @Tags         stock
// @Security     Bearer
// @Produce      json
// @Param        id      path   string  true   "ID del producto"
// @Param        from    query  string  false  "Fecha desde (RFC3339 o YYYY-MM-DD)"
// @Param        to      query  string  false  "Fecha hasta"
// @Param        limit   query  int     false  "Límite"   default(20)
// @Param        offset  query  int     false  "Offset"   default(0)
// @Success      200  {object}  dto.MovementListResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/products/{id}/movements [get]
func (h *ProductHandler) Movements(c *fiber.Ctx) error {
	limit, offset := pageParams(c)
	from, to := dateRangeParams(c)
	items, err := h.uc.Movements(c.Params("id"), from, to, limit, offset)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(toMovementListResponse(items, limit, offset))
}

// AdjustStock godoc
// @Summary      Ajuste manual de stock (delta con motivo obligatorio)
// @Tags         stock
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del producto"
// @Param        body  body  dto.AdjustStockRequest  true  "Delta y motivo"
// @Success      200   {object}  dto.ApplyMovementResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/products/{id}/adjust-stock [post]
func (h *ProductHandler) AdjustStock(c *fiber.Ctx) error {
	var in dto.AdjustStockRequest
	if err := c.BodyParser(&in); err != nil {
		return respondInvalidBody(c)
	}
	result, err := h.ledgerUC.ApplyMovement(c.Context(), ledger.MovementInput{
		ProductID: c.Params("id"),
		Delta:     in.Delta,
		Type:      entity.MovementTypeADJUSTMENT,
		Reason:    in.Reason,
		Notes:     in.Notes,
		UserID:    GetUserID(c),
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.ApplyMovementResponse{
		Product:  toProductResponse(result.Product),
		Movement: toMovementResponse(result.Movement),
	})
}

// ResetStock godoc
// @Summary      Reset de contadores de stock (recuento físico)
// @Tags         stock
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del producto"
// @Param        body  body  dto.ResetStockRequest  true  "Valores absolutos y motivo"
// @Success      200   {object}  dto.ApplyMovementResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/products/{id}/reset-stock [post]
func (h *ProductHandler) ResetStock(c *fiber.Ctx) error {
	var in dto.ResetStockRequest
	if err := c.BodyParser(&in); err != nil {
		return respondInvalidBody(c)
	}
	result, err := h.ledgerUC.ResetStock(c.Context(), c.Params("id"), in.QuantitySold, in.QuantityReceived, in.Reason, GetUserID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.ApplyMovementResponse{
		Product:  toProductResponse(result.Product),
		Movement: toMovementResponse(result.Movement),
	})
}

// Import godoc
// @Summary      Importar productos desde Excel (éxito parcial por fila)
// @Tags         products
// @Security     Bearer
// @Accept       multipart/form-data
// @Produce      json
// @Param        file         formData  file    true  "Archivo .xlsx"
// @Param        shipment_id  formData  string  true  "Arrivage destino"
// @Success      200  {object}  dto.ImportReport
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/products/import [post]
func (h *ProductHandler) Import(c *fiber.Ctx) error {
	shipmentID := c.FormValue("shipment_id")
	if shipmentID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code:    "VALIDATION",
			Message: i18n.T(Lang(c), "error.validation"),
			Details: map[string]interface{}{"field": "shipment_id", "reason": "obligatoire"},
		})
	}
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return respondInvalidBody(c)
	}
	file, err := fileHeader.Open()
	if err != nil {
		return respondInvalidBody(c)
	}
	defer file.Close()

	report, err := h.importUC.Run(file, shipmentID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(report)
}
