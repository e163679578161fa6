package dto

// CreateFreezerRequest input to create a freezer.
type CreateFreezerRequest struct {
	Name string `json:"name" validate:"required,min=1,max=50"`
}

// RenameFreezerRequest input to rename a freezer.
type RenameFreezerRequest struct {
	Name string `json:"name" validate:"required,min=1,max=50"`
}

// FreezerResponse output for a freezer.
type FreezerResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// FreezerListResponse list of freezers.
type FreezerListResponse struct {
	Items []FreezerResponse `json:"items"`
}
