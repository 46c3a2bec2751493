package entity

import "time"

// Roles válidos para User.
const (
	RoleAdmin   = "admin"
	RoleManager = "manager" // gestiona catálogo, arrivages y stock
	RoleSeller  = "seller"  // registra ventas
)

// User representa un usuario del sistema.
type User struct {
	ID           string
	Email        string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	Name         string
	Role         string // admin, manager, seller
	Status       string // active, inactive, suspended
	Language     string // fr | en, preferencia de la UI
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
