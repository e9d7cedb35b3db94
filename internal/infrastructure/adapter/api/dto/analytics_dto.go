package dto

import "github.com/paywise/paywise-api/internal/domain/entity"

// CategoryAmountResponse is one category line of a monthly breakdown
type CategoryAmountResponse struct {
	Category string `json:"category"`
	Amount   string `json:"amount"`
}

// MonthlySpendingResponse is the spending of one calendar month
type MonthlySpendingResponse struct {
	Year         int                      `json:"year"`
	Month        int                      `json:"month"`
	MonthName    string                   `json:"monthName"`
	MonthlyTotal string                   `json:"monthlyTotal"`
	Categories   []CategoryAmountResponse `json:"categories"`
}

// NewMonthlySpendingList maps monthly spending to its API form; never nil
func NewMonthlySpendingList(months []entity.MonthlySpending) []MonthlySpendingResponse {
	result := make([]MonthlySpendingResponse, 0, len(months))
	for _, m := range months {
		lines := make([]CategoryAmountResponse, 0, len(m.Categories))
		for _, c := range m.Categories {
			lines = append(lines, CategoryAmountResponse{
				Category: c.Category,
				Amount:   entity.AmountInCentsToString(c.Amount),
			})
		}
		result = append(result, MonthlySpendingResponse{
			Year:         m.Year,
			Month:        m.Month,
			MonthName:    m.MonthName,
			MonthlyTotal: entity.AmountInCentsToString(m.MonthlyTotal),
			Categories:   lines,
		})
	}
	return result
}
