package service

import (
	"context"
	"fmt"
	"time"

	"linderopos/internal/model"
	"linderopos/internal/store"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

// FloorID is the single floor the seed populates.
const FloorID = "piso1"

// TableCount is how many tables the seed creates under FloorID.
const TableCount = 15

// SeedService populates a fresh store with the baseline reference data the
// rest of the application needs. Every write is an upsert-with-merge keyed
// by a fixed id, so re-running converges to the same state (timestamps
// aside). Writes are sequential with no rollback: if one fails, the earlier
// ones stay.
type SeedService interface {
	Run(ctx context.Context) error
}

type seedService struct {
	store store.DocumentStore
	now   func() time.Time
}

func NewSeedService(st store.DocumentStore) SeedService {
	return &seedService{store: st, now: func() time.Time { return time.Now().UTC() }}
}

func (s *seedService) Run(ctx context.Context) error {
	now := s.now()

	if err := s.store.Set(ctx, "settings/"+model.SettingsDocID, defaultSettings.Doc(now)); err != nil {
		return fmt.Errorf("seed settings: %w", err)
	}

	for _, c := range defaultCategories {
		if err := s.store.Set(ctx, "categories/"+c.ID, c.Doc()); err != nil {
			return fmt.Errorf("seed category %s: %w", c.ID, err)
		}
	}

	for _, p := range defaultProducts {
		if err := s.store.Set(ctx, "products/"+p.ID, p.Doc(now)); err != nil {
			return fmt.Errorf("seed product %s: %w", p.ID, err)
		}
	}

	for n := 1; n <= TableCount; n++ {
		path := fmt.Sprintf("floors/%s/tables/m%d", FloorID, n)
		if err := s.store.Set(ctx, path, model.NewTable(n).Doc(now)); err != nil {
			return fmt.Errorf("seed table m%d: %w", n, err)
		}
	}

	log.Info().
		Int("categories", len(defaultCategories)).
		Int("products", len(defaultProducts)).
		Int("tables", TableCount).
		Msg("seed completed")
	return nil
}

// ── Seed data ────────────────────────────────────────────────────────────────

var defaultSettings = model.Settings{
	Name:     "Lindero Grill",
	Currency: "PEN",
	IGVRate:  decimal.RequireFromString("0.18"),
	Address:  "Av. Ejemplo 123, Lima",
}

var defaultCategories = []model.Category{
	{ID: "pollos", Name: "Pollos", Order: 1, Active: true},
	{ID: "parrillas", Name: "Parrillas", Order: 2, Active: true},
	{ID: "bebidas", Name: "Bebidas", Order: 3, Active: true},
	{ID: "guarniciones", Name: "Guarniciones", Order: 4, Active: true},
}

var igv = decimal.RequireFromString("0.18")

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

var defaultProducts = []model.Product{
	{ID: "p1", Name: "Pollo a la brasa Entero", CatID: "pollos", Price: dec("52"), Cost: dec("32"),
		Unit: "UND", TaxRate: igv, TrackStock: true, Stock: 15, MinStock: 3, Active: true},
	{ID: "p2", Name: "1/2 Pollo a la brasa", CatID: "pollos", Price: dec("27.5"), Cost: dec("17"),
		Unit: "UND", TaxRate: igv, TrackStock: true, Stock: 20, MinStock: 4, Active: true},
	{ID: "p3", Name: "Parrilla Personal", CatID: "parrillas", Price: dec("38"), Cost: dec("22"),
		Unit: "UND", TaxRate: igv, TrackStock: false, Active: true},
	{ID: "p4", Name: "Parrilla Familiar", CatID: "parrillas", Price: dec("75"), Cost: dec("40"),
		Unit: "UND", TaxRate: igv, TrackStock: false, Active: true},
	{ID: "p5", Name: "Papas fritas", CatID: "guarniciones", Price: dec("9"), Cost: dec("4"),
		Unit: "UND", TaxRate: igv, TrackStock: true, Stock: 50, MinStock: 8, Active: true},
	{ID: "p7", Name: "Gaseosa 500ml", CatID: "bebidas", Price: dec("5"), Cost: dec("2.8"),
		Unit: "UND", TaxRate: igv, TrackStock: true, Stock: 60, MinStock: 10, Active: true},
	{ID: "p8", Name: "Gaseosa 1.5L", CatID: "bebidas", Price: dec("12"), Cost: dec("7"),
		Unit: "UND", TaxRate: igv, TrackStock: true, Stock: 30, MinStock: 5, Active: true},
}
