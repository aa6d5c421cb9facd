package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// SettingsDocID is the fixed document id of the singleton settings document.
const SettingsDocID = "main"

// Settings is the per-store configuration document. Exactly one instance
// exists, at settings/main.
type Settings struct {
	Name     string
	Currency string
	IGVRate  decimal.Decimal
	Address  string
}

// Doc builds the stored representation, stamping createdAt/updatedAt.
func (s Settings) Doc(now time.Time) map[string]interface{} {
	return map[string]interface{}{
		"name":      s.Name,
		"currency":  s.Currency,
		"igvRate":   s.IGVRate.InexactFloat64(),
		"address":   s.Address,
		"createdAt": now,
		"updatedAt": now,
	}
}
