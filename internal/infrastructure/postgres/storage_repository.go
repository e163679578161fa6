package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/frostkeep/freezer-api/internal/domain"
	"github.com/frostkeep/freezer-api/internal/domain/entity"
	"github.com/frostkeep/freezer-api/internal/domain/repository"
)

var _ repository.StorageRepository = (*StorageRepo)(nil)

// StorageRepo implements the StorageRepository port on PostgreSQL.
type StorageRepo struct {
	q Querier
}

// NewStorageRepository builds the persistence adapter. Pass a pool or tx.
func NewStorageRepository(q Querier) *StorageRepo {
	return &StorageRepo{q: q}
}

const storageDetailColumns = `
	s.storage_id, s.product_id, s.drawer_id, s.weight_grams, s.date_in, s.date_out, s.available,
	p.name, p.expiration_months, d.name, f.freezer_id, f.name`

const storageDetailFrom = `
	FROM storage s
	JOIN products p ON p.product_id = s.product_id
	JOIN drawers d ON d.drawer_id = s.drawer_id
	JOIN freezers f ON f.freezer_id = d.freezer_id`

// Create persists a new storage entry. Dangling product or drawer references
// trip the foreign keys at write time.
func (r *StorageRepo) Create(entry *entity.StorageEntry) error {
	_, err := r.q.Exec(context.Background(), `
		INSERT INTO storage (storage_id, product_id, drawer_id, weight_grams, date_in, date_out, available)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		entry.ID, entry.ProductID, entry.DrawerID, entry.WeightGrams,
		entry.DateIn, entry.DateOut, entry.Available,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrNotFound
		}
		if isCheckViolation(err) {
			return domain.ErrInvalidInput
		}
		return wrapErr("insert storage entry", err)
	}
	return nil
}

// GetByID returns a bare storage entry, nil if absent.
func (r *StorageRepo) GetByID(id string) (*entity.StorageEntry, error) {
	var e entity.StorageEntry
	err := r.q.QueryRow(context.Background(), `
		SELECT storage_id, product_id, drawer_id, weight_grams, date_in, date_out, available
		FROM storage WHERE storage_id = $1`, id,
	).Scan(&e.ID, &e.ProductID, &e.DrawerID, &e.WeightGrams, &e.DateIn, &e.DateOut, &e.Available)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, wrapErr("get storage entry", err)
	}
	return &e, nil
}

// GetDetailByID returns a storage entry joined with product, drawer and
// freezer data, nil if absent.
func (r *StorageRepo) GetDetailByID(id string) (*entity.StorageDetail, error) {
	row := r.q.QueryRow(context.Background(),
		`SELECT`+storageDetailColumns+storageDetailFrom+` WHERE s.storage_id = $1`, id)
	detail, err := scanStorageDetail(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, wrapErr("get storage detail", err)
	}
	return detail, nil
}

// List returns storage entries matching the filter, fully materialized, in a
// deterministic order: date_in ascending with storage_id as tie-break, or
// derived expiry date when the filter asks for it. Postgres clamps
// date + month intervals to the end of the month, matching the freshness
// engine's arithmetic.
func (r *StorageRepo) List(filter repository.StorageFilter) ([]*entity.StorageDetail, error) {
	where, args := buildStorageWhere(filter)
	order := ` ORDER BY s.date_in, s.storage_id`
	if filter.Sort == repository.SortExpiry {
		order = ` ORDER BY s.date_in + make_interval(months => p.expiration_months), s.storage_id`
	}

	rows, err := r.q.Query(context.Background(),
		`SELECT`+storageDetailColumns+storageDetailFrom+where+order, args...)
	if err != nil {
		return nil, wrapErr("list storage entries", err)
	}
	defer rows.Close()

	var list []*entity.StorageDetail
	for rows.Next() {
		detail, err := scanStorageDetail(rows)
		if err != nil {
			return nil, wrapErr("scan storage entry", err)
		}
		list = append(list, detail)
	}
	return list, rows.Err()
}

// CheckOut flips available to false and sets date_out in one conditional
// update, succeeding only if the entry is still available. Two concurrent
// check-outs therefore produce exactly one success.
func (r *StorageRepo) CheckOut(id string, dateOut time.Time) (bool, error) {
	cmd, err := r.q.Exec(context.Background(), `
		UPDATE storage SET available = FALSE, date_out = $2
		WHERE storage_id = $1 AND available`, id, dateOut)
	if err != nil {
		if isCheckViolation(err) {
			return false, domain.ErrInvalidInput
		}
		return false, wrapErr("check out storage entry", err)
	}
	return cmd.RowsAffected() == 1, nil
}

// AggregateByProduct returns per-product entry counts and weight totals over
// the available entries matching the filter.
func (r *StorageRepo) AggregateByProduct(filter repository.StorageFilter) ([]*entity.ProductAggregate, error) {
	filter.AvailableOnly = true
	where, args := buildStorageWhere(filter)

	rows, err := r.q.Query(context.Background(), `
		SELECT s.product_id, p.name, COUNT(*), SUM(s.weight_grams)`+
		storageDetailFrom+where+`
		GROUP BY s.product_id, p.name
		ORDER BY p.name`, args...)
	if err != nil {
		return nil, wrapErr("aggregate storage entries", err)
	}
	defer rows.Close()

	var list []*entity.ProductAggregate
	for rows.Next() {
		var a entity.ProductAggregate
		if err := rows.Scan(&a.ProductID, &a.ProductName, &a.EntryCount, &a.TotalWeightGrams); err != nil {
			return nil, wrapErr("scan aggregate", err)
		}
		list = append(list, &a)
	}
	return list, rows.Err()
}

// Delete removes a storage entry.
func (r *StorageRepo) Delete(id string) error {
	cmd, err := r.q.Exec(context.Background(),
		`DELETE FROM storage WHERE storage_id = $1`, id)
	if err != nil {
		return wrapErr("delete storage entry", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func buildStorageWhere(filter repository.StorageFilter) (string, []any) {
	var conds []string
	var args []any
	add := func(cond string, arg any) {
		args = append(args, arg)
		conds = append(conds, fmt.Sprintf(cond, len(args)))
	}
	if filter.FreezerID != "" {
		add("f.freezer_id = $%d", filter.FreezerID)
	}
	if filter.DrawerID != "" {
		add("s.drawer_id = $%d", filter.DrawerID)
	}
	if filter.ProductID != "" {
		add("s.product_id = $%d", filter.ProductID)
	}
	if filter.AvailableOnly {
		conds = append(conds, "s.available")
	}
	if len(conds) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

func scanStorageDetail(row pgx.Row) (*entity.StorageDetail, error) {
	var d entity.StorageDetail
	err := row.Scan(
		&d.ID, &d.ProductID, &d.DrawerID, &d.WeightGrams, &d.DateIn, &d.DateOut, &d.Available,
		&d.ProductName, &d.ExpirationMonths, &d.DrawerName, &d.FreezerID, &d.FreezerName,
	)
	if err != nil {
		return nil, err
	}
	return &d, nil
}
