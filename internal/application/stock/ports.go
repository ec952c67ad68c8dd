package stock

import (
	"context"

	"github.com/artsiders/next-stock/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza que la escritura (o borrado) del
// movimiento y la actualización del stock cacheado del producto se observen
// siempre juntas: ambas confirman o ambas se revierten.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		movRepo repository.StockMovementRepository,
		productRepo repository.ProductRepository,
	) error) error
}
