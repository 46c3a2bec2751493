package auth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/revendix/revendix-api/internal/domain/auth"
	"github.com/revendix/revendix-api/internal/domain/entity"
)

func TestHasPermission_AdminTodoPermitido(t *testing.T) {
	for _, action := range []string{
		auth.PermProductsManage, auth.PermStockReset, auth.PermUsersManage, auth.PermReportsExport,
	} {
		assert.True(t, auth.HasPermission(entity.RoleAdmin, action), "admin debe poder %s", action)
	}
}

func TestHasPermission_Manager(t *testing.T) {
	assert.True(t, auth.HasPermission(entity.RoleManager, auth.PermStockAdjust))
	assert.True(t, auth.HasPermission(entity.RoleManager, auth.PermSalesManage))
	assert.True(t, auth.HasPermission(entity.RoleManager, auth.PermProductsImport))
	assert.False(t, auth.HasPermission(entity.RoleManager, auth.PermUsersManage),
		"la gestión de usuarios es exclusiva del admin")
}

func TestHasPermission_Seller(t *testing.T) {
	assert.True(t, auth.HasPermission(entity.RoleSeller, auth.PermSalesCreate))
	assert.True(t, auth.HasPermission(entity.RoleSeller, auth.PermProductsView))
	assert.False(t, auth.HasPermission(entity.RoleSeller, auth.PermSalesManage),
		"un vendedor no edita ni borra ventas")
	assert.False(t, auth.HasPermission(entity.RoleSeller, auth.PermStockAdjust))
	assert.False(t, auth.HasPermission(entity.RoleSeller, auth.PermStockReset))
	assert.False(t, auth.HasPermission(entity.RoleSeller, auth.PermProductsImport))
}

func TestHasPermission_RolDesconocido(t *testing.T) {
	assert.False(t, auth.HasPermission("intruso", auth.PermProductsView))
	assert.False(t, auth.HasPermission("", auth.PermProductsView))
}
