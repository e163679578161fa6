package repository

import "github.com/frostkeep/freezer-api/internal/domain/entity"

// FreezerRepository is the persistence port for freezers. Delete cascades to
// the freezer's drawers and their storage entries.
type FreezerRepository interface {
	Create(freezer *entity.Freezer) error
	GetByID(id string) (*entity.Freezer, error)
	List() ([]*entity.Freezer, error)
	Rename(id, name string) error
	Delete(id string) error
}
