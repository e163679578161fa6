package usecase

import (
	"github.com/google/uuid"

	"github.com/frostkeep/freezer-api/internal/application/dto"
	"github.com/frostkeep/freezer-api/internal/domain"
	"github.com/frostkeep/freezer-api/internal/domain/entity"
	"github.com/frostkeep/freezer-api/internal/domain/repository"
)

// DrawerUseCase CRUD use cases for drawers.
type DrawerUseCase struct {
	repo repository.DrawerRepository
}

// NewDrawerUseCase builds the use case.
func NewDrawerUseCase(repo repository.DrawerRepository) *DrawerUseCase {
	return &DrawerUseCase{repo: repo}
}

// Create creates a new drawer in a freezer. The repository rejects a missing
// freezer and a duplicate (freezer, name) pair.
func (uc *DrawerUseCase) Create(in dto.CreateDrawerRequest) (*dto.DrawerResponse, error) {
	drawer := &entity.Drawer{
		ID:        uuid.New().String(),
		Name:      in.Name,
		FreezerID: in.FreezerID,
	}
	if err := uc.repo.Create(drawer); err != nil {
		return nil, err
	}
	return toDrawerResponse(drawer), nil
}

// GetByID returns a drawer by ID, nil if it does not exist.
func (uc *DrawerUseCase) GetByID(id string) (*dto.DrawerResponse, error) {
	drawer, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if drawer == nil {
		return nil, nil
	}
	return toDrawerResponse(drawer), nil
}

// List returns drawers, restricted to one freezer when freezerID is set.
func (uc *DrawerUseCase) List(freezerID string) (*dto.DrawerListResponse, error) {
	var (
		list []*entity.Drawer
		err  error
	)
	if freezerID != "" {
		list, err = uc.repo.ListByFreezer(freezerID)
	} else {
		list, err = uc.repo.List()
	}
	if err != nil {
		return nil, err
	}
	items := make([]dto.DrawerResponse, 0, len(list))
	for _, d := range list {
		items = append(items, *toDrawerResponse(d))
	}
	return &dto.DrawerListResponse{Items: items}, nil
}

// Rename changes a drawer's name within its freezer.
func (uc *DrawerUseCase) Rename(id string, in dto.RenameDrawerRequest) (*dto.DrawerResponse, error) {
	if err := uc.repo.Rename(id, in.Name); err != nil {
		return nil, err
	}
	drawer, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if drawer == nil {
		return nil, domain.ErrNotFound
	}
	return toDrawerResponse(drawer), nil
}

// Delete removes a drawer; its storage entries cascade.
func (uc *DrawerUseCase) Delete(id string) error {
	return uc.repo.Delete(id)
}

func toDrawerResponse(d *entity.Drawer) *dto.DrawerResponse {
	return &dto.DrawerResponse{ID: d.ID, Name: d.Name, FreezerID: d.FreezerID}
}
