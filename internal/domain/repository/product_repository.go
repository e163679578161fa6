package repository

import "github.com/frostkeep/freezer-api/internal/domain/entity"

// ProductRepository is the persistence port for products. Delete cascades to
// storage entries referencing the product.
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	List() ([]*entity.Product, error)
	Rename(id, name string) error
	Delete(id string) error
}
