package dto

import "github.com/shopspring/decimal"

// CreateStorageRequest input to stock an item into a drawer. DateIn is
// optional ("2006-01-02"); empty means today.
type CreateStorageRequest struct {
	ProductID   string          `json:"product_id" validate:"required"`
	DrawerID    string          `json:"drawer_id" validate:"required"`
	WeightGrams decimal.Decimal `json:"weight_grams" validate:"required"`
	DateIn      string          `json:"date_in" validate:"omitempty,datetime=2006-01-02"`
}

// CheckOutRequest input to check an entry out of storage. DateOut is optional;
// empty means today.
type CheckOutRequest struct {
	DateOut string `json:"date_out" validate:"omitempty,datetime=2006-01-02"`
}

// StorageFilterRequest query options for listing or aggregating storage
// entries. AvailableOnly defaults to true and is forced true for aggregation.
type StorageFilterRequest struct {
	FreezerID     string `query:"freezerId"`
	DrawerID      string `query:"drawerId"`
	ProductID     string `query:"productId"`
	AvailableOnly *bool  `query:"availableOnly"`
	Status        string `query:"status"`
	Sort          string `query:"sort"`
}

// StorageResponse output for a storage entry, including the derived expiry
// fields computed as of the request date.
type StorageResponse struct {
	ID              string          `json:"id"`
	ProductID       string          `json:"product_id"`
	ProductName     string          `json:"product_name,omitempty"`
	DrawerID        string          `json:"drawer_id"`
	DrawerName      string          `json:"drawer_name,omitempty"`
	FreezerID       string          `json:"freezer_id,omitempty"`
	FreezerName     string          `json:"freezer_name,omitempty"`
	WeightGrams     decimal.Decimal `json:"weight_grams"`
	DateIn          string          `json:"date_in"`
	DateOut         *string         `json:"date_out"`
	Available       bool            `json:"available"`
	DateExpires     string          `json:"date_expires,omitempty"`
	ExpiresInDays   int             `json:"expires_in_days,omitempty"`
	FreshnessStatus string          `json:"freshness_status,omitempty"`
}

// StorageListResponse list of storage entries, oldest stock first.
type StorageListResponse struct {
	Items []StorageResponse `json:"items"`
}

// ProductAggregateResponse per-product totals over the available stock.
type ProductAggregateResponse struct {
	ProductID        string          `json:"product_id"`
	ProductName      string          `json:"product_name"`
	EntryCount       int             `json:"entry_count"`
	TotalWeightGrams decimal.Decimal `json:"total_weight_grams"`
}

// AggregateListResponse list of per-product totals.
type AggregateListResponse struct {
	Items []ProductAggregateResponse `json:"items"`
}
