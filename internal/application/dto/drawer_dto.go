package dto

// CreateDrawerRequest input to create a drawer inside a freezer.
type CreateDrawerRequest struct {
	FreezerID string `json:"freezer_id" validate:"required"`
	Name      string `json:"name" validate:"required,min=1,max=50"`
}

// RenameDrawerRequest input to rename a drawer.
type RenameDrawerRequest struct {
	Name string `json:"name" validate:"required,min=1,max=50"`
}

// DrawerResponse output for a drawer.
type DrawerResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	FreezerID string `json:"freezer_id"`
}

// DrawerListResponse list of drawers.
type DrawerListResponse struct {
	Items []DrawerResponse `json:"items"`
}
