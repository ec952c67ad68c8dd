package entity

import "time"

// Supplier representa un proveedor. El nombre es único (comparación sin
// distinguir mayúsculas).
type Supplier struct {
	ID        int64
	Name      string
	Email     string
	Phone     string
	Address   string
	CreatedAt time.Time
	UpdatedAt time.Time
}
