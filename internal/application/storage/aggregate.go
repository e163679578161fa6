package storage

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/frostkeep/freezer-api/internal/application/dto"
)

// AggregateByProduct returns per-product totals (entry count, total weight)
// over the entries matching the filter. Unavailable entries are never counted,
// regardless of the availableOnly flag: aggregates represent what is actually
// in storage now. Products with no matching entries yield no row.
func (uc *UseCase) AggregateByProduct(in dto.StorageFilterRequest) (*dto.AggregateListResponse, error) {
	in.AvailableOnly = nil // forced true below
	filter, status, err := uc.buildFilter(in)
	if err != nil {
		return nil, err
	}
	filter.AvailableOnly = true

	// A freshness filter makes the totals depend on the derived status, which
	// only exists after evaluation; go through the listing path in that case.
	if status != "" {
		return uc.aggregateFiltered(in)
	}

	rows, err := uc.repo.AggregateByProduct(filter)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductAggregateResponse, 0, len(rows))
	for _, row := range rows {
		items = append(items, dto.ProductAggregateResponse{
			ProductID:        row.ProductID,
			ProductName:      row.ProductName,
			EntryCount:       row.EntryCount,
			TotalWeightGrams: row.TotalWeightGrams,
		})
	}
	return &dto.AggregateListResponse{Items: items}, nil
}

// aggregateFiltered lists the matching entries (freshness filter included) and
// folds them into per-product totals in memory.
func (uc *UseCase) aggregateFiltered(in dto.StorageFilterRequest) (*dto.AggregateListResponse, error) {
	list, err := uc.List(in)
	if err != nil {
		return nil, err
	}
	totals := make(map[string]*dto.ProductAggregateResponse)
	for _, item := range list.Items {
		agg, ok := totals[item.ProductID]
		if !ok {
			agg = &dto.ProductAggregateResponse{
				ProductID:        item.ProductID,
				ProductName:      item.ProductName,
				TotalWeightGrams: decimal.Zero,
			}
			totals[item.ProductID] = agg
		}
		agg.EntryCount++
		agg.TotalWeightGrams = agg.TotalWeightGrams.Add(item.WeightGrams)
	}
	items := make([]dto.ProductAggregateResponse, 0, len(totals))
	for _, agg := range totals {
		items = append(items, *agg)
	}
	sort.Slice(items, func(i, j int) bool { return items[i].ProductName < items[j].ProductName })
	return &dto.AggregateListResponse{Items: items}, nil
}
