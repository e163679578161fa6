package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/frostkeep/freezer-api/internal/domain"
	"github.com/frostkeep/freezer-api/internal/domain/entity"
	"github.com/frostkeep/freezer-api/internal/domain/repository"
)

var _ repository.FreezerRepository = (*FreezerRepo)(nil)

// FreezerRepo implements the FreezerRepository port on PostgreSQL.
type FreezerRepo struct {
	q Querier
}

// NewFreezerRepository builds the persistence adapter. Pass a pool or tx.
func NewFreezerRepository(q Querier) *FreezerRepo {
	return &FreezerRepo{q: q}
}

// Create persists a new freezer. The unique index on name resolves concurrent
// duplicate creates atomically with the insert.
func (r *FreezerRepo) Create(freezer *entity.Freezer) error {
	_, err := r.q.Exec(context.Background(),
		`INSERT INTO freezers (freezer_id, name) VALUES ($1, $2)`,
		freezer.ID, freezer.Name,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicateName
		}
		return wrapErr("insert freezer", err)
	}
	return nil
}

// GetByID returns a freezer by ID, nil if absent.
func (r *FreezerRepo) GetByID(id string) (*entity.Freezer, error) {
	var f entity.Freezer
	err := r.q.QueryRow(context.Background(),
		`SELECT freezer_id, name FROM freezers WHERE freezer_id = $1`, id,
	).Scan(&f.ID, &f.Name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, wrapErr("get freezer", err)
	}
	return &f, nil
}

// List returns all freezers ordered by name.
func (r *FreezerRepo) List() ([]*entity.Freezer, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT freezer_id, name FROM freezers ORDER BY name`)
	if err != nil {
		return nil, wrapErr("list freezers", err)
	}
	defer rows.Close()
	var list []*entity.Freezer
	for rows.Next() {
		var f entity.Freezer
		if err := rows.Scan(&f.ID, &f.Name); err != nil {
			return nil, wrapErr("scan freezer", err)
		}
		list = append(list, &f)
	}
	return list, rows.Err()
}

// Rename updates the freezer name.
func (r *FreezerRepo) Rename(id, name string) error {
	cmd, err := r.q.Exec(context.Background(),
		`UPDATE freezers SET name = $2 WHERE freezer_id = $1`, id, name)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicateName
		}
		return wrapErr("rename freezer", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete removes a freezer; drawers and storage entries cascade via the
// foreign keys.
func (r *FreezerRepo) Delete(id string) error {
	cmd, err := r.q.Exec(context.Background(),
		`DELETE FROM freezers WHERE freezer_id = $1`, id)
	if err != nil {
		return wrapErr("delete freezer", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
