package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product is a sellable item. When TrackStock is false, Stock and MinStock
// are conventionally zero and must not gate availability.
type Product struct {
	ID         string
	Name       string
	CatID      string
	Price      decimal.Decimal
	Cost       decimal.Decimal
	Unit       string
	TaxRate    decimal.Decimal
	TrackStock bool
	Stock      int
	MinStock   int
	Active     bool
}

// Doc builds the stored representation. Both createdAt and updatedAt are
// stamped with now on every write, so re-seeding restamps createdAt too.
func (p Product) Doc(now time.Time) map[string]interface{} {
	return map[string]interface{}{
		"id":         p.ID,
		"name":       p.Name,
		"catId":      p.CatID,
		"price":      p.Price.InexactFloat64(),
		"cost":       p.Cost.InexactFloat64(),
		"unit":       p.Unit,
		"taxRate":    p.TaxRate.InexactFloat64(),
		"trackStock": p.TrackStock,
		"stock":      p.Stock,
		"minStock":   p.MinStock,
		"active":     p.Active,
		"createdAt":  now,
		"updatedAt":  now,
	}
}
