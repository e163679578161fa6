package usecase

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/frostkeep/freezer-api/internal/application/dto"
	"github.com/frostkeep/freezer-api/internal/domain"
	"github.com/frostkeep/freezer-api/internal/domain/entity"
	"github.com/frostkeep/freezer-api/internal/domain/repository"
)

// defaultExpirationMonths is the shelf life used when a product is created
// without one.
const defaultExpirationMonths = 6

// ProductUseCase CRUD use cases for products.
type ProductUseCase struct {
	repo repository.ProductRepository
}

// NewProductUseCase builds the use case.
func NewProductUseCase(repo repository.ProductRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo}
}

// Create creates a new product. An omitted shelf life defaults to 6 months; an
// explicit non-positive one is rejected. The repository rejects duplicate
// names.
func (uc *ProductUseCase) Create(in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	months := defaultExpirationMonths
	if in.ExpirationMonths != nil {
		months = *in.ExpirationMonths
	}
	if months <= 0 {
		return nil, fmt.Errorf("%w: expiration_months must be positive", domain.ErrInvalidInput)
	}
	product := &entity.Product{
		ID:               uuid.New().String(),
		Name:             in.Name,
		ExpirationMonths: months,
	}
	if err := uc.repo.Create(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// GetByID returns a product by ID, nil if it does not exist.
func (uc *ProductUseCase) GetByID(id string) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	return toProductResponse(product), nil
}

// List returns all products.
func (uc *ProductUseCase) List() (*dto.ProductListResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toProductResponse(p))
	}
	return &dto.ProductListResponse{Items: items}, nil
}

// Rename changes a product's name.
func (uc *ProductUseCase) Rename(id string, in dto.RenameProductRequest) (*dto.ProductResponse, error) {
	if err := uc.repo.Rename(id, in.Name); err != nil {
		return nil, err
	}
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	return toProductResponse(product), nil
}

// Delete removes a product; its storage entries cascade.
func (uc *ProductUseCase) Delete(id string) error {
	return uc.repo.Delete(id)
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	return &dto.ProductResponse{ID: p.ID, Name: p.Name, ExpirationMonths: p.ExpirationMonths}
}
