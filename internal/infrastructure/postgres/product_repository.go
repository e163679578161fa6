package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/frostkeep/freezer-api/internal/domain"
	"github.com/frostkeep/freezer-api/internal/domain/entity"
	"github.com/frostkeep/freezer-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implements the ProductRepository port on PostgreSQL.
type ProductRepo struct {
	q Querier
}

// NewProductRepository builds the persistence adapter. Pass a pool or tx.
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

// Create persists a new product.
func (r *ProductRepo) Create(product *entity.Product) error {
	_, err := r.q.Exec(context.Background(),
		`INSERT INTO products (product_id, name, expiration_months) VALUES ($1, $2, $3)`,
		product.ID, product.Name, product.ExpirationMonths,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicateName
		}
		if isCheckViolation(err) {
			return domain.ErrInvalidInput
		}
		return wrapErr("insert product", err)
	}
	return nil
}

// GetByID returns a product by ID, nil if absent.
func (r *ProductRepo) GetByID(id string) (*entity.Product, error) {
	var p entity.Product
	err := r.q.QueryRow(context.Background(),
		`SELECT product_id, name, expiration_months FROM products WHERE product_id = $1`, id,
	).Scan(&p.ID, &p.Name, &p.ExpirationMonths)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, wrapErr("get product", err)
	}
	return &p, nil
}

// List returns all products ordered by name.
func (r *ProductRepo) List() ([]*entity.Product, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT product_id, name, expiration_months FROM products ORDER BY name`)
	if err != nil {
		return nil, wrapErr("list products", err)
	}
	defer rows.Close()
	var list []*entity.Product
	for rows.Next() {
		var p entity.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.ExpirationMonths); err != nil {
			return nil, wrapErr("scan product", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// Rename updates the product name.
func (r *ProductRepo) Rename(id, name string) error {
	cmd, err := r.q.Exec(context.Background(),
		`UPDATE products SET name = $2 WHERE product_id = $1`, id, name)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicateName
		}
		return wrapErr("rename product", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete removes a product; its storage entries cascade via the foreign key.
func (r *ProductRepo) Delete(id string) error {
	cmd, err := r.q.Exec(context.Background(),
		`DELETE FROM products WHERE product_id = $1`, id)
	if err != nil {
		return wrapErr("delete product", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
