package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// StorageEntry records one item put into a drawer: what, where, how much and
// when. DateOut and Available flip together exactly once on check-out;
// Available is the authoritative signal for "still in the freezer".
type StorageEntry struct {
	ID          string
	ProductID   string
	DrawerID    string
	WeightGrams decimal.Decimal // > 0
	DateIn      time.Time       // date only, defaults to creation date
	DateOut     *time.Time      // set on check-out, never before DateIn
	Available   bool
}

// StorageDetail is the read model returned by list queries: a storage entry
// joined with the names of its product, drawer and freezer plus the product
// shelf life needed to derive freshness.
type StorageDetail struct {
	StorageEntry
	ProductName      string
	ExpirationMonths int
	DrawerName       string
	FreezerID        string
	FreezerName      string
}

// ProductAggregate is one row of the per-product totals over the currently
// available stock.
type ProductAggregate struct {
	ProductID        string
	ProductName      string
	EntryCount       int
	TotalWeightGrams decimal.Decimal
}
