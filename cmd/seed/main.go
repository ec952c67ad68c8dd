// seed puebla la base de datos con datos de demostración: categorías,
// proveedores, productos y un pequeño historial de movimientos por producto.
//
// Uso: go run ./cmd/seed
// Requiere las mismas variables de entorno que cmd/api (DATABASE_URL, etc.).
package main

import (
	"context"
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/shopspring/decimal"

	"github.com/artsiders/next-stock/internal/application/dto"
	"github.com/artsiders/next-stock/internal/application/stock"
	"github.com/artsiders/next-stock/internal/application/usecase"
	"github.com/artsiders/next-stock/internal/infrastructure/postgres"
	"github.com/artsiders/next-stock/pkg/config"
)

var categoryNames = []string{
	"Électronique", "Papeterie", "Mobilier", "Informatique", "Consommables",
}

var supplierNames = []string{
	"TechDistrib", "Bureau Plus", "Mobilier Pro", "InfoSource", "Fournitout",
}

var productNames = []string{
	"Clavier sans fil", "Souris optique", "Écran 24 pouces", "Câble HDMI",
	"Ramette papier A4", "Stylos bille x50", "Classeurs A4", "Agrafeuse",
	"Chaise de bureau", "Bureau réglable", "Lampe LED", "Caisson 3 tiroirs",
	"Disque SSD 1To", "Mémoire 16Go", "Hub USB-C", "Webcam HD",
	"Cartouche encre noire", "Toner laser", "Piles AA x24", "Nettoyant écran",
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		fail("cargar configuración", err)
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		fail("conexión a PostgreSQL", err)
	}
	defer pool.Close()

	productRepo := postgres.NewProductRepository(pool)
	categoryRepo := postgres.NewCategoryRepository(pool)
	supplierRepo := postgres.NewSupplierRepository(pool)
	movementRepo := postgres.NewStockMovementRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	productUC := usecase.NewProductUseCase(productRepo, categoryRepo, supplierRepo)
	categoryUC := usecase.NewCategoryUseCase(categoryRepo)
	supplierUC := usecase.NewSupplierUseCase(supplierRepo)
	movementUC := stock.NewMovementUseCase(txRunner, productRepo, movementRepo)

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))

	categoryIDs := make([]int64, 0, len(categoryNames))
	for _, name := range categoryNames {
		c, err := categoryUC.Create(dto.CreateCategoryRequest{Name: name})
		if err != nil {
			fail("crear categoría "+name, err)
		}
		categoryIDs = append(categoryIDs, c.ID)
	}

	supplierIDs := make([]int64, 0, len(supplierNames))
	for i, name := range supplierNames {
		s, err := supplierUC.Create(dto.CreateSupplierRequest{
			Name:  name,
			Email: fmt.Sprintf("contact%d@fournisseur.example", i+1),
			Phone: fmt.Sprintf("+33 1 00 00 00 %02d", i+1),
		})
		if err != nil {
			fail("crear proveedor "+name, err)
		}
		supplierIDs = append(supplierIDs, s.ID)
	}

	for i, name := range productNames {
		cost := decimal.NewFromInt(int64(5 + rng.Intn(195)))
		p, err := productUC.Create(dto.CreateProductRequest{
			Name:        name,
			Description: "Article de démonstration",
			Quantity:    0,
			MinQuantity: int64(5 + rng.Intn(10)),
			UnitPrice:   cost.Mul(decimal.NewFromFloat(1.4)).Round(2),
			CostPrice:   cost,
			CategoryID:  categoryIDs[i%len(categoryIDs)],
			SupplierID:  supplierIDs[i%len(supplierIDs)],
		})
		if err != nil {
			fail("crear producto "+name, err)
		}

		// Historial: una entrada, una salida y un ajuste, retrodatados dentro
		// del último mes. El orden garantiza que la salida nunca sobregire.
		in := int64(20 + rng.Intn(80))
		out := int64(1 + rng.Intn(int(in/2)))
		adjust := int64(rng.Intn(11) - 5)
		if adjust == 0 {
			adjust = -1
		}
		movements := []dto.CreateMovementRequest{
			{ProductID: p.ID, Type: "IN", Quantity: in, Note: "Réception fournisseur"},
			{ProductID: p.ID, Type: "OUT", Quantity: out, Note: "Vente comptoir"},
			{ProductID: p.ID, Type: "ADJUSTMENT", Quantity: adjust, Note: "Inventaire physique"},
		}
		for j := range movements {
			date := time.Now().AddDate(0, 0, -(25 - 10*j - rng.Intn(5)))
			movements[j].Date = &date
			if _, err := movementUC.CreateMovement(ctx, movements[j]); err != nil {
				fail("crear movimiento para "+name, err)
			}
		}
	}

	fmt.Printf("Seed completado: %d categorías, %d proveedores, %d productos con historial\n",
		len(categoryNames), len(supplierNames), len(productNames))
}

func fail(msg string, err error) {
	fmt.Fprintf(os.Stderr, "%s: %v\n", msg, err)
	os.Exit(1)
}
