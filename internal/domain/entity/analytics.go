package entity

import (
	"sort"
	"time"
)

// AnalyzeCategories returns the categories worth showing on the analysis screen:
// anything with activity, plus predefined categories that carry a limit
func AnalyzeCategories(categories []Category) []Category {
	result := make([]Category, 0, len(categories))
	for _, c := range categories {
		if c.Spent > 0 || c.Received > 0 || (c.Type == CategoryPredefined && c.HasLimit()) {
			result = append(result, c)
		}
	}
	return result
}

// CategoryMonthTotal is the amount sent in one category during one calendar month
type CategoryMonthTotal struct {
	Year     int
	Month    int
	Category string
	Amount   int64
}

// CategoryAmount is one category line of a monthly breakdown
type CategoryAmount struct {
	Category string `json:"category"`
	Amount   int64  `json:"amount"`
}

// MonthlySpending is the spending of one calendar month split by category
type MonthlySpending struct {
	Year         int              `json:"year"`
	Month        int              `json:"month"`
	MonthName    string           `json:"monthName"`
	MonthlyTotal int64            `json:"monthlyTotal"`
	Categories   []CategoryAmount `json:"categories"`
}

// BuildMonthlySpending folds per-category monthly totals into chronologically sorted months.
// Category lines keep the order in which they first appear for a month.
func BuildMonthlySpending(rows []CategoryMonthTotal) []MonthlySpending {
	type monthKey struct{ year, month int }

	byMonth := make(map[monthKey]*MonthlySpending)
	keys := make([]monthKey, 0)
	for _, row := range rows {
		k := monthKey{row.Year, row.Month}
		m, ok := byMonth[k]
		if !ok {
			m = &MonthlySpending{
				Year:       row.Year,
				Month:      row.Month,
				MonthName:  time.Month(row.Month).String(),
				Categories: []CategoryAmount{},
			}
			byMonth[k] = m
			keys = append(keys, k)
		}
		m.MonthlyTotal += row.Amount
		m.Categories = append(m.Categories, CategoryAmount{Category: row.Category, Amount: row.Amount})
	}

	sort.Slice(keys, func(i, j int) bool {
		if keys[i].year != keys[j].year {
			return keys[i].year < keys[j].year
		}
		return keys[i].month < keys[j].month
	})

	result := make([]MonthlySpending, 0, len(keys))
	for _, k := range keys {
		result = append(result, *byMonth[k])
	}
	return result
}

// CategoryTotal is a ledger aggregate used to rebuild category totals
type CategoryTotal struct {
	UserID   string
	Category string
	Spent    int64
	Received int64
}

// ApplyCategoryTotals resets the user's category totals and replays the given aggregates.
// Categories missing from the user are created.
func ApplyCategoryTotals(user *User, totals []CategoryTotal) error {
	user.ResetCategoryTotals()
	for _, t := range totals {
		if t.Spent > 0 {
			if err := user.RecordSpend(t.Category, t.Spent); err != nil {
				return err
			}
		}
		if t.Received > 0 {
			if err := user.RecordReceive(t.Category, t.Received); err != nil {
				return err
			}
		}
	}
	return nil
}
