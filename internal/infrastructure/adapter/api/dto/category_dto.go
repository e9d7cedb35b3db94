package dto

import "github.com/paywise/paywise-api/internal/domain/entity"

// CategoryResponse is one spending category with amounts as decimal strings
type CategoryResponse struct {
	Name     string `json:"name"`
	Type     string `json:"type"`
	Spent    string `json:"spent"`
	Received string `json:"received"`
	Limit    string `json:"limit"`
}

// AddCategoryRequest represents the API request for creating a custom category
type AddCategoryRequest struct {
	CategoryName string `json:"categoryName" binding:"required,max=100"`
}

// SetLimitRequest represents the API request for setting a category limit
type SetLimitRequest struct {
	Limit Amount `json:"limit" binding:"required"`
}

// NewCategoryResponse maps a category entity to its API form
func NewCategoryResponse(c entity.Category) CategoryResponse {
	return CategoryResponse{
		Name:     c.Name,
		Type:     string(c.Type),
		Spent:    entity.AmountInCentsToString(c.Spent),
		Received: entity.AmountInCentsToString(c.Received),
		Limit:    entity.AmountInCentsToString(c.Limit),
	}
}

// NewCategoryList maps categories preserving their order; never nil
func NewCategoryList(categories []entity.Category) []CategoryResponse {
	result := make([]CategoryResponse, 0, len(categories))
	for _, c := range categories {
		result = append(result, NewCategoryResponse(c))
	}
	return result
}
