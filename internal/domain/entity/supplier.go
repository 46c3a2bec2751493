package entity

import "time"

// Supplier es el origen de compra (retailer o mayorista) de un producto o arrivage.
type Supplier struct {
	ID        string
	Name      string
	Website   string
	Country   string
	Notes     string
	CreatedAt time.Time
	UpdatedAt time.Time
}
