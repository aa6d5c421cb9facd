package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// TableStatus is the occupancy state of a dining table.
type TableStatus string

const (
	TableFree     TableStatus = "libre"
	TableOccupied TableStatus = "ocupada"
	TableReserved TableStatus = "reservada"
)

// Table is a dining table within a floor. Number is unique within its floor.
type Table struct {
	Number         int
	Status         TableStatus
	Total          decimal.Decimal
	CurrentOrderID *string
}

// NewTable returns a table at rest: free, zero total, no open order.
func NewTable(number int) Table {
	return Table{Number: number, Status: TableFree, Total: decimal.Zero}
}

func (t Table) Doc(now time.Time) map[string]interface{} {
	var orderID interface{}
	if t.CurrentOrderID != nil {
		orderID = *t.CurrentOrderID
	}
	return map[string]interface{}{
		"number":         t.Number,
		"status":         string(t.Status),
		"total":          t.Total.InexactFloat64(),
		"currentOrderId": orderID,
		"updatedAt":      now,
	}
}
