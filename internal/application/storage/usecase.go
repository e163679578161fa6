// Package storage implements the stock-in, check-out, query and aggregation
// use cases over storage entries. Mutations go through the repositories;
// freshness is derived on every read and never stored.
package storage

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/frostkeep/freezer-api/internal/application/dto"
	"github.com/frostkeep/freezer-api/internal/domain"
	"github.com/frostkeep/freezer-api/internal/domain/entity"
	"github.com/frostkeep/freezer-api/internal/domain/repository"
)

// UseCase storage entry use cases.
type UseCase struct {
	repo          repository.StorageRepository
	lookaheadDays int
	now           func() time.Time
}

// NewUseCase builds the use case. lookaheadDays configures the expiring-soon
// window; zero means the 14 day default.
func NewUseCase(repo repository.StorageRepository, lookaheadDays int) *UseCase {
	return &UseCase{
		repo:          repo,
		lookaheadDays: lookaheadDays,
		now:           time.Now,
	}
}

// WithClock replaces the reference clock, for tests.
func (uc *UseCase) WithClock(now func() time.Time) *UseCase {
	uc.now = now
	return uc
}

// StockIn creates a new storage entry, available and without a check-out date.
// Missing product or drawer references are rejected by the repository at write
// time.
func (uc *UseCase) StockIn(in dto.CreateStorageRequest) (*dto.StorageResponse, error) {
	if !in.WeightGrams.IsPositive() {
		return nil, fmt.Errorf("%w: weight_grams must be positive", domain.ErrInvalidInput)
	}
	dateIn := uc.now()
	if in.DateIn != "" {
		parsed, err := time.Parse(dto.DateLayout, in.DateIn)
		if err != nil {
			return nil, fmt.Errorf("%w: date_in must be formatted as %s", domain.ErrInvalidInput, dto.DateLayout)
		}
		dateIn = parsed
	}
	entry := &entity.StorageEntry{
		ID:          uuid.New().String(),
		ProductID:   in.ProductID,
		DrawerID:    in.DrawerID,
		WeightGrams: in.WeightGrams,
		DateIn:      dateIn,
		Available:   true,
	}
	if err := uc.repo.Create(entry); err != nil {
		return nil, err
	}
	return uc.Get(entry.ID)
}

// CheckOut marks an entry as removed from storage, setting date_out and
// flipping available to false in one atomic transition. The transition is
// one-way and exactly-once: a second check-out fails with a conflict.
func (uc *UseCase) CheckOut(id string, in dto.CheckOutRequest) (*dto.StorageResponse, error) {
	dateOut := uc.now()
	if in.DateOut != "" {
		parsed, err := time.Parse(dto.DateLayout, in.DateOut)
		if err != nil {
			return nil, fmt.Errorf("%w: date_out must be formatted as %s", domain.ErrInvalidInput, dto.DateLayout)
		}
		dateOut = parsed
	}

	entry, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if entry == nil {
		return nil, domain.ErrNotFound
	}
	if !entry.Available {
		return nil, fmt.Errorf("%w: entry already checked out", domain.ErrConflict)
	}
	if truncateToDay(dateOut).Before(truncateToDay(entry.DateIn)) {
		return nil, fmt.Errorf("%w: date_out cannot be before date_in", domain.ErrInvalidInput)
	}

	done, err := uc.repo.CheckOut(id, dateOut)
	if err != nil {
		return nil, err
	}
	if !done {
		// Lost the race against a concurrent check-out or delete.
		if current, err := uc.repo.GetByID(id); err == nil && current == nil {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("%w: entry already checked out", domain.ErrConflict)
	}
	return uc.Get(id)
}

// Get returns a single entry with its derived expiry fields.
func (uc *UseCase) Get(id string) (*dto.StorageResponse, error) {
	detail, err := uc.repo.GetDetailByID(id)
	if err != nil {
		return nil, err
	}
	if detail == nil {
		return nil, nil
	}
	resp := uc.toResponse(detail, uc.now())
	return &resp, nil
}

// Delete removes an entry from the database entirely. Meant for corrections;
// consumed items are checked out, not deleted.
func (uc *UseCase) Delete(id string) error {
	return uc.repo.Delete(id)
}

func truncateToDay(d time.Time) time.Time {
	year, month, day := d.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, d.Location())
}
