package entity

import "time"

// Tipos de movimiento de stock.
const (
	MovementTypeIN         = "IN"         // entrada
	MovementTypeOUT        = "OUT"        // salida
	MovementTypeADJUSTMENT = "ADJUSTMENT" // ajuste (delta con signo)
)

// ValidMovementType indica si el tipo pertenece a la enumeración.
func ValidMovementType(t string) bool {
	switch t {
	case MovementTypeIN, MovementTypeOUT, MovementTypeADJUSTMENT:
		return true
	}
	return false
}

// StockMovement representa un evento de stock sobre un producto.
// Quantity es magnitud positiva para IN/OUT; para ADJUSTMENT es un delta con
// signo relativo al stock actual (único caso donde puede ser negativo), de
// modo que la reversión sea simétrica con IN/OUT.
// Los movimientos nunca se actualizan: se crean y, para deshacer, se borran.
type StockMovement struct {
	ID        int64
	ProductID int64
	Type      string
	Quantity  int64
	Date      time.Time // por defecto la fecha de creación; el caller puede retrodatarla
	Note      string
	CreatedAt time.Time
}
