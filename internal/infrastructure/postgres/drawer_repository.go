package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/frostkeep/freezer-api/internal/domain"
	"github.com/frostkeep/freezer-api/internal/domain/entity"
	"github.com/frostkeep/freezer-api/internal/domain/repository"
)

var _ repository.DrawerRepository = (*DrawerRepo)(nil)

// DrawerRepo implements the DrawerRepository port on PostgreSQL.
type DrawerRepo struct {
	q Querier
}

// NewDrawerRepository builds the persistence adapter. Pass a pool or tx.
func NewDrawerRepository(q Querier) *DrawerRepo {
	return &DrawerRepo{q: q}
}

// Create persists a new drawer. A missing freezer trips the foreign key, a
// duplicate (freezer, name) pair the composite unique index; both checked
// atomically with the insert.
func (r *DrawerRepo) Create(drawer *entity.Drawer) error {
	_, err := r.q.Exec(context.Background(),
		`INSERT INTO drawers (drawer_id, name, freezer_id) VALUES ($1, $2, $3)`,
		drawer.ID, drawer.Name, drawer.FreezerID,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicateName
		}
		if isForeignKeyViolation(err) {
			return domain.ErrNotFound
		}
		return wrapErr("insert drawer", err)
	}
	return nil
}

// GetByID returns a drawer by ID, nil if absent.
func (r *DrawerRepo) GetByID(id string) (*entity.Drawer, error) {
	var d entity.Drawer
	err := r.q.QueryRow(context.Background(),
		`SELECT drawer_id, name, freezer_id FROM drawers WHERE drawer_id = $1`, id,
	).Scan(&d.ID, &d.Name, &d.FreezerID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, wrapErr("get drawer", err)
	}
	return &d, nil
}

// ListByFreezer returns the drawers of one freezer ordered by name.
func (r *DrawerRepo) ListByFreezer(freezerID string) ([]*entity.Drawer, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT drawer_id, name, freezer_id FROM drawers WHERE freezer_id = $1 ORDER BY name`,
		freezerID)
	if err != nil {
		return nil, wrapErr("list drawers", err)
	}
	return scanDrawers(rows)
}

// List returns all drawers ordered by freezer then name.
func (r *DrawerRepo) List() ([]*entity.Drawer, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT drawer_id, name, freezer_id FROM drawers ORDER BY freezer_id, name`)
	if err != nil {
		return nil, wrapErr("list drawers", err)
	}
	return scanDrawers(rows)
}

func scanDrawers(rows pgx.Rows) ([]*entity.Drawer, error) {
	defer rows.Close()
	var list []*entity.Drawer
	for rows.Next() {
		var d entity.Drawer
		if err := rows.Scan(&d.ID, &d.Name, &d.FreezerID); err != nil {
			return nil, wrapErr("scan drawer", err)
		}
		list = append(list, &d)
	}
	return list, rows.Err()
}

// Rename updates the drawer name; the composite unique index still applies.
func (r *DrawerRepo) Rename(id, name string) error {
	cmd, err := r.q.Exec(context.Background(),
		`UPDATE drawers SET name = $2 WHERE drawer_id = $1`, id, name)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicateName
		}
		return wrapErr("rename drawer", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete removes a drawer; its storage entries cascade via the foreign key.
func (r *DrawerRepo) Delete(id string) error {
	cmd, err := r.q.Exec(context.Background(),
		`DELETE FROM drawers WHERE drawer_id = $1`, id)
	if err != nil {
		return wrapErr("delete drawer", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
