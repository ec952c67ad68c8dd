// Package stock implementa la aritmética del libro de movimientos (servicio
// de dominio puro): validación, efecto incremental, reversión y replay.
//
// Semántica adoptada y aplicada de forma uniforme:
//   - IN:  suma la magnitud.
//   - OUT: resta la magnitud; se rechaza con ErrInsufficientStock si la
//     magnitud excede el stock actual (política estricta, nunca clamp).
//   - ADJUSTMENT: delta con signo (no un valor absoluto), para que la
//     reversión sea siempre reconstruible restando el delta registrado.
package stock

import (
	"github.com/artsiders/next-stock/internal/domain"
	"github.com/artsiders/next-stock/internal/domain/entity"
)

// Validate verifica tipo y cantidad de un movimiento antes de cualquier
// escritura. IN/OUT exigen magnitud positiva; ADJUSTMENT exige delta != 0.
func Validate(movType string, quantity int64) error {
	if !entity.ValidMovementType(movType) {
		return domain.ErrInvalidInput
	}
	if movType == entity.MovementTypeADJUSTMENT {
		if quantity == 0 {
			return domain.ErrInvalidInput
		}
		return nil
	}
	if quantity <= 0 {
		return domain.ErrInvalidInput
	}
	return nil
}

// Effect devuelve el delta con signo que el movimiento aporta al stock.
func Effect(movType string, quantity int64) int64 {
	switch movType {
	case entity.MovementTypeIN:
		return quantity
	case entity.MovementTypeOUT:
		return -quantity
	case entity.MovementTypeADJUSTMENT:
		return quantity
	}
	return 0
}

// Apply calcula el nuevo stock cacheado al aplicar un movimiento.
// Rechaza con ErrInsufficientStock cualquier resultado negativo (OUT mayor
// que el stock, o ADJUSTMENT negativo que lo dejaría bajo cero) sin mutar
// nada: el caller decide si escribe.
func Apply(current int64, movType string, quantity int64) (int64, error) {
	if err := Validate(movType, quantity); err != nil {
		return current, err
	}
	next := current + Effect(movType, quantity)
	if next < 0 {
		return current, domain.ErrInsufficientStock
	}
	return next, nil
}

// Reverse calcula el stock resultante de deshacer un movimiento ya aplicado.
// La reversión de un IN (o de un ADJUSTMENT positivo) se trunca en cero: una
// vez consumido el stock no hay forma de restarlo, y bloquear el borrado
// impediría limpiar entradas erróneas.
func Reverse(current int64, movType string, quantity int64) int64 {
	next := current - Effect(movType, quantity)
	if next < 0 {
		return 0
	}
	return next
}

// Replay recalcula el stock desde cero reproduciendo el historial completo.
// Cada movimiento aporta un delta independiente, así que el orden no afecta
// el resultado; el total final se trunca en cero para que historiales
// anteriores a la política estricta (o dañados) reconcilien a un valor legal.
// Es la operación autoritativa de reparación y es idempotente.
func Replay(movements []*entity.StockMovement) int64 {
	var total int64
	for _, m := range movements {
		total += Effect(m.Type, m.Quantity)
	}
	if total < 0 {
		return 0
	}
	return total
}
