package stock_test

import (
	"context"
	"sort"
	"sync"

	"github.com/artsiders/next-stock/internal/domain/entity"
	"github.com/artsiders/next-stock/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Almacenamiento en memoria para los tests del caso de uso: los repositorios
// y el TxRunner operan sobre el mismo estado; el TxRunner serializa las
// transacciones con un mutex, igual que hace la fila bloqueada en PostgreSQL.
// ──────────────────────────────────────────────────────────────────────────────

type memStore struct {
	mu        sync.Mutex
	products  map[int64]*entity.Product
	movements map[int64]*entity.StockMovement
	nextMovID int64
}

func newMemStore() *memStore {
	return &memStore{
		products:  make(map[int64]*entity.Product),
		movements: make(map[int64]*entity.StockMovement),
		nextMovID: 1,
	}
}

func (s *memStore) addProduct(p *entity.Product) {
	s.products[p.ID] = p
}

func (s *memStore) productQuantity(id int64) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.products[id].Quantity
}

func (s *memStore) movementCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.movements)
}

// memProductRepo implementa repository.ProductRepository sobre el memStore.
// inTx distingue el repo atado a la transacción (el mutex ya lo tiene el
// TxRunner) del repo de lecturas sueltas, que debe tomarlo él mismo.
type memProductRepo struct {
	s    *memStore
	inTx bool
}

func (r *memProductRepo) lock() func() {
	if r.inTx {
		return func() {}
	}
	r.s.mu.Lock()
	return r.s.mu.Unlock
}

func (r *memProductRepo) Create(p *entity.Product) error { r.s.addProduct(p); return nil }
func (r *memProductRepo) Update(p *entity.Product) error { return nil }
func (r *memProductRepo) Delete(id int64) error          { delete(r.s.products, id); return nil }
func (r *memProductRepo) GetByID(id int64) (*entity.Product, error) {
	defer r.lock()()
	p, ok := r.s.products[id]
	if !ok {
		return nil, nil
	}
	clone := *p
	return &clone, nil
}
func (r *memProductRepo) GetForUpdate(id int64) (*entity.Product, error) {
	return r.GetByID(id)
}
func (r *memProductRepo) List(limit, offset int) ([]*repository.ProductWithRelations, error) {
	return nil, nil
}
func (r *memProductRepo) UpdateQuantity(id, quantity int64) error {
	p, ok := r.s.products[id]
	if !ok {
		return nil
	}
	p.Quantity = quantity
	return nil
}

// memMovementRepo implementa repository.StockMovementRepository sobre memStore.
type memMovementRepo struct {
	s    *memStore
	inTx bool
}

func (r *memMovementRepo) lock() func() {
	if r.inTx {
		return func() {}
	}
	r.s.mu.Lock()
	return r.s.mu.Unlock
}

func (r *memMovementRepo) Create(m *entity.StockMovement) error {
	m.ID = r.s.nextMovID
	r.s.nextMovID++
	clone := *m
	r.s.movements[m.ID] = &clone
	return nil
}

func (r *memMovementRepo) GetByID(id int64) (*entity.StockMovement, error) {
	defer r.lock()()
	m, ok := r.s.movements[id]
	if !ok {
		return nil, nil
	}
	clone := *m
	return &clone, nil
}

func (r *memMovementRepo) Delete(id int64) error {
	delete(r.s.movements, id)
	return nil
}

func (r *memMovementRepo) List(filter repository.MovementFilter) ([]*repository.MovementWithProduct, error) {
	defer r.lock()()
	var out []*repository.MovementWithProduct
	for _, m := range r.s.movements {
		if filter.ProductID != nil && m.ProductID != *filter.ProductID {
			continue
		}
		if filter.Type != "" && m.Type != filter.Type {
			continue
		}
		// Rango inclusivo en ambos extremos, igual que el adaptador SQL.
		if filter.From != nil && m.Date.Before(*filter.From) {
			continue
		}
		if filter.To != nil && m.Date.After(*filter.To) {
			continue
		}
		clone := *m
		out = append(out, &repository.MovementWithProduct{StockMovement: clone})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.After(out[j].Date) })
	return out, nil
}

func (r *memMovementRepo) ListAllByProduct(productID int64) ([]*entity.StockMovement, error) {
	defer r.lock()()
	var out []*entity.StockMovement
	for _, m := range r.s.movements {
		if m.ProductID == productID {
			clone := *m
			out = append(out, &clone)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Date.Equal(out[j].Date) {
			return out[i].ID < out[j].ID
		}
		return out[i].Date.Before(out[j].Date)
	})
	return out, nil
}

// memTxRunner serializa las "transacciones" con el mutex del store.
type memTxRunner struct {
	s *memStore
}

func (t *memTxRunner) Run(ctx context.Context, fn func(
	movRepo repository.StockMovementRepository,
	productRepo repository.ProductRepository,
) error) error {
	t.s.mu.Lock()
	defer t.s.mu.Unlock()
	return fn(&memMovementRepo{s: t.s, inTx: true}, &memProductRepo{s: t.s, inTx: true})
}
