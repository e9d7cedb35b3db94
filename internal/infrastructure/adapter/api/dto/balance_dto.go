package dto

import "github.com/paywise/paywise-api/internal/domain/entity"

// BalanceResponse represents the API response for a balance request
type BalanceResponse struct {
	UserID     string             `json:"userId"`
	Balance    string             `json:"balance"`
	Categories []CategoryResponse `json:"categories"`
}

// NewBalanceResponse maps a balance summary to its API form
func NewBalanceResponse(summary *entity.BalanceSummary) BalanceResponse {
	return BalanceResponse{
		UserID:     summary.UserID,
		Balance:    entity.AmountInCentsToString(summary.Balance),
		Categories: NewCategoryList(summary.Categories),
	}
}
