package dto

import (
	"time"

	"github.com/lavaresto/menu_backend/internal/core/domain"
)

// CreateCategoryRequest defines the data needed to create a new category.
type CreateCategoryRequest struct {
	Name   string `json:"name" binding:"required"`
	NameAr string `json:"nameAr" binding:"required"`
	Order  int    `json:"order"`
}

// UpdateCategoryRequest defines a partial category update. Nil fields are left unchanged.
type UpdateCategoryRequest struct {
	Name   *string `json:"name" binding:"omitempty,min=1"`
	NameAr *string `json:"nameAr" binding:"omitempty,min=1"`
	Order  *int    `json:"order"`
}

// CategoryResponse defines the data returned for a category.
type CategoryResponse struct {
	CategoryID string    `json:"id"`
	Name       string    `json:"name"`
	NameAr     string    `json:"nameAr"`
	Order      int       `json:"order"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// ToCategoryResponse converts a domain.Category to CategoryResponse DTO
func ToCategoryResponse(c *domain.Category) CategoryResponse {
	return CategoryResponse{
		CategoryID: c.CategoryID,
		Name:       c.Name,
		NameAr:     c.NameAr,
		Order:      c.Order,
		CreatedAt:  c.CreatedAt,
		UpdatedAt:  c.UpdatedAt,
	}
}

// ToListCategoryResponse converts a slice of domain.Category to CategoryResponse DTOs
func ToListCategoryResponse(categories []domain.Category) []CategoryResponse {
	res := make([]CategoryResponse, len(categories))
	for i := range categories {
		res[i] = ToCategoryResponse(&categories[i])
	}
	return res
}
