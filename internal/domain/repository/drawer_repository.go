package repository

import "github.com/frostkeep/freezer-api/internal/domain/entity"

// DrawerRepository is the persistence port for drawers. Create rejects a
// missing freezer at write time (foreign key), Delete cascades to storage
// entries.
type DrawerRepository interface {
	Create(drawer *entity.Drawer) error
	GetByID(id string) (*entity.Drawer, error)
	ListByFreezer(freezerID string) ([]*entity.Drawer, error)
	List() ([]*entity.Drawer, error)
	Rename(id, name string) error
	Delete(id string) error
}
