package entity

import "time"

// Category agrupa productos del catálogo. CRUD simple, sin invariantes cruzadas.
type Category struct {
	ID          string
	Name        string
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
