package repository

import (
	"time"

	"github.com/frostkeep/freezer-api/internal/domain/entity"
)

// StorageSort selects the ordering of list results.
type StorageSort string

const (
	// SortDateIn orders oldest stock first (FIFO review), ties broken by id.
	SortDateIn StorageSort = "date_in"
	// SortExpiry orders by derived expiry date, soonest first.
	SortExpiry StorageSort = "expiry"
)

// StorageFilter restricts a list or aggregate query. Empty string fields mean
// "no restriction". Freshness filtering happens above the repository, on the
// derived status.
type StorageFilter struct {
	FreezerID     string
	DrawerID      string
	ProductID     string
	AvailableOnly bool
	Sort          StorageSort
}

// StorageRepository is the persistence port for storage entries.
//
// CheckOut must be an atomic conditional update: it succeeds only if the entry
// is currently available, so two concurrent check-outs produce exactly one
// success. It reports whether a row was transitioned.
type StorageRepository interface {
	Create(entry *entity.StorageEntry) error
	GetByID(id string) (*entity.StorageEntry, error)
	GetDetailByID(id string) (*entity.StorageDetail, error)
	List(filter StorageFilter) ([]*entity.StorageDetail, error)
	CheckOut(id string, dateOut time.Time) (bool, error)
	AggregateByProduct(filter StorageFilter) ([]*entity.ProductAggregate, error)
	Delete(id string) error
}
