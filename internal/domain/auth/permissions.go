// Package auth define la tabla de permisos por rol (servicio de dominio puro).
// Los handlers consultan HasPermission vía el middleware RequirePermission;
// aquí no hay estado ni acceso a base de datos.
package auth

import "github.com/revendix/revendix-api/internal/domain/entity"

// Acciones autorizables del sistema.
const (
	PermProductsView     = "PRODUCTS_VIEW"
	PermProductsManage   = "PRODUCTS_MANAGE"
	PermProductsImport   = "PRODUCTS_IMPORT"
	PermStockView        = "STOCK_VIEW"
	PermStockAdjust      = "STOCK_ADJUST"
	PermStockReset       = "STOCK_RESET"
	PermSalesView        = "SALES_VIEW"
	PermSalesCreate      = "SALES_CREATE"
	PermSalesManage      = "SALES_MANAGE" // editar y borrar ventas
	PermShipmentsView    = "SHIPMENTS_VIEW"
	PermShipmentsManage  = "SHIPMENTS_MANAGE"
	PermShipmentsReceive = "SHIPMENTS_RECEIVE"
	PermExpensesManage   = "EXPENSES_MANAGE"
	PermCatalogManage    = "CATALOG_MANAGE" // categorías y proveedores
	PermReportsExport    = "REPORTS_EXPORT"
	PermUsersManage      = "USERS_MANAGE"
)

// permisos por rol. admin se resuelve aparte (todo permitido).
var rolePermissions = map[string]map[string]bool{
	entity.RoleManager: setOf(
		PermProductsView, PermProductsManage, PermProductsImport,
		PermStockView, PermStockAdjust, PermStockReset,
		PermSalesView, PermSalesCreate, PermSalesManage,
		PermShipmentsView, PermShipmentsManage, PermShipmentsReceive,
		PermExpensesManage, PermCatalogManage, PermReportsExport,
	),
	entity.RoleSeller: setOf(
		PermProductsView, PermStockView,
		PermSalesView, PermSalesCreate,
		PermShipmentsView,
	),
}

func setOf(perms ...string) map[string]bool {
	m := make(map[string]bool, len(perms))
	for _, p := range perms {
		m[p] = true
	}
	return m
}

// HasPermission indica si el rol puede ejecutar la acción. Lookup puro.
func HasPermission(role, action string) bool {
	if role == entity.RoleAdmin {
		return true
	}
	perms, ok := rolePermissions[role]
	if !ok {
		return false
	}
	return perms[action]
}
