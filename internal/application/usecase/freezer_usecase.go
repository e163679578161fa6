package usecase

import (
	"github.com/google/uuid"

	"github.com/frostkeep/freezer-api/internal/application/dto"
	"github.com/frostkeep/freezer-api/internal/domain/entity"
	"github.com/frostkeep/freezer-api/internal/domain/repository"
)

// FreezerUseCase CRUD use cases for freezers.
type FreezerUseCase struct {
	repo repository.FreezerRepository
}

// NewFreezerUseCase builds the use case.
func NewFreezerUseCase(repo repository.FreezerRepository) *FreezerUseCase {
	return &FreezerUseCase{repo: repo}
}

// Create creates a new freezer. The repository rejects duplicate names.
func (uc *FreezerUseCase) Create(in dto.CreateFreezerRequest) (*dto.FreezerResponse, error) {
	freezer := &entity.Freezer{
		ID:   uuid.New().String(),
		Name: in.Name,
	}
	if err := uc.repo.Create(freezer); err != nil {
		return nil, err
	}
	return toFreezerResponse(freezer), nil
}

// GetByID returns a freezer by ID, nil if it does not exist.
func (uc *FreezerUseCase) GetByID(id string) (*dto.FreezerResponse, error) {
	freezer, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if freezer == nil {
		return nil, nil
	}
	return toFreezerResponse(freezer), nil
}

// List returns all freezers.
func (uc *FreezerUseCase) List() (*dto.FreezerListResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.FreezerResponse, 0, len(list))
	for _, f := range list {
		items = append(items, *toFreezerResponse(f))
	}
	return &dto.FreezerListResponse{Items: items}, nil
}

// Rename changes a freezer's name.
func (uc *FreezerUseCase) Rename(id string, in dto.RenameFreezerRequest) (*dto.FreezerResponse, error) {
	if err := uc.repo.Rename(id, in.Name); err != nil {
		return nil, err
	}
	return &dto.FreezerResponse{ID: id, Name: in.Name}, nil
}

// Delete removes a freezer; its drawers and their storage entries cascade.
func (uc *FreezerUseCase) Delete(id string) error {
	return uc.repo.Delete(id)
}

func toFreezerResponse(f *entity.Freezer) *dto.FreezerResponse {
	return &dto.FreezerResponse{ID: f.ID, Name: f.Name}
}
