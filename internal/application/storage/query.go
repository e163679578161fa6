package storage

import (
	"fmt"
	"time"

	"github.com/frostkeep/freezer-api/internal/application/dto"
	"github.com/frostkeep/freezer-api/internal/domain"
	"github.com/frostkeep/freezer-api/internal/domain/entity"
	"github.com/frostkeep/freezer-api/internal/domain/freshness"
	"github.com/frostkeep/freezer-api/internal/domain/repository"
)

// List returns storage entries matching the filter, joined with product,
// drawer and freezer names. Default order is date_in ascending with id as
// tie-break; sort=expiry orders by derived expiry date instead. The freshness
// filter is applied here, on the status derived as of today.
func (uc *UseCase) List(in dto.StorageFilterRequest) (*dto.StorageListResponse, error) {
	filter, status, err := uc.buildFilter(in)
	if err != nil {
		return nil, err
	}
	details, err := uc.repo.List(filter)
	if err != nil {
		return nil, err
	}

	now := uc.now()
	items := make([]dto.StorageResponse, 0, len(details))
	for _, d := range details {
		resp := uc.toResponse(d, now)
		if status != "" && resp.FreshnessStatus != string(status) {
			continue
		}
		items = append(items, resp)
	}
	return &dto.StorageListResponse{Items: items}, nil
}

func (uc *UseCase) buildFilter(in dto.StorageFilterRequest) (repository.StorageFilter, freshness.Status, error) {
	filter := repository.StorageFilter{
		FreezerID:     in.FreezerID,
		DrawerID:      in.DrawerID,
		ProductID:     in.ProductID,
		AvailableOnly: true,
		Sort:          repository.SortDateIn,
	}
	if in.AvailableOnly != nil {
		filter.AvailableOnly = *in.AvailableOnly
	}
	switch in.Sort {
	case "", string(repository.SortDateIn):
	case string(repository.SortExpiry):
		filter.Sort = repository.SortExpiry
	default:
		return filter, "", fmt.Errorf("%w: unknown sort %q", domain.ErrInvalidInput, in.Sort)
	}

	var status freshness.Status
	if in.Status != "" {
		parsed, ok := freshness.ParseStatus(in.Status)
		if !ok {
			return filter, "", fmt.Errorf("%w: unknown freshness status %q", domain.ErrInvalidInput, in.Status)
		}
		status = parsed
	}
	return filter, status, nil
}

func (uc *UseCase) toResponse(d *entity.StorageDetail, now time.Time) dto.StorageResponse {
	ev := freshness.Evaluate(d.DateIn, d.ExpirationMonths, uc.lookaheadDays, now)
	resp := dto.StorageResponse{
		ID:              d.ID,
		ProductID:       d.ProductID,
		ProductName:     d.ProductName,
		DrawerID:        d.DrawerID,
		DrawerName:      d.DrawerName,
		FreezerID:       d.FreezerID,
		FreezerName:     d.FreezerName,
		WeightGrams:     d.WeightGrams,
		DateIn:          d.DateIn.Format(dto.DateLayout),
		Available:       d.Available,
		DateExpires:     ev.ExpiresOn.Format(dto.DateLayout),
		ExpiresInDays:   ev.ExpiresInDays,
		FreshnessStatus: string(ev.Status),
	}
	if d.DateOut != nil {
		out := d.DateOut.Format(dto.DateLayout)
		resp.DateOut = &out
	}
	return resp
}
