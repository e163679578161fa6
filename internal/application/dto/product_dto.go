package dto

// CreateProductRequest input to create a product. ExpirationMonths defaults to
// 6 months when omitted; an explicit zero or negative value is rejected, so
// the field is a pointer to tell the two apart.
type CreateProductRequest struct {
	Name             string `json:"name" validate:"required,min=1,max=50"`
	ExpirationMonths *int   `json:"expiration_months" validate:"omitempty,min=1"`
}

// RenameProductRequest input to rename a product.
type RenameProductRequest struct {
	Name string `json:"name" validate:"required,min=1,max=50"`
}

// ProductResponse output for a product.
type ProductResponse struct {
	ID               string `json:"id"`
	Name             string `json:"name"`
	ExpirationMonths int    `json:"expiration_months"`
}

// ProductListResponse list of products.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
}
