package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnalyzeCategories(t *testing.T) {
	categories := []Category{
		{Name: "Shopping", Type: CategoryPredefined},
		{Name: "Food", Type: CategoryPredefined, Spent: 500},
		{Name: "Rent", Type: CategoryPredefined, Limit: 10000},
		{Name: "Other", Type: CategoryPredefined, Received: 100},
		{Name: "Gym", Type: CategoryCustom, Limit: 3000},
		{Name: "Travel", Type: CategoryCustom, Spent: 1},
	}

	result := AnalyzeCategories(categories)

	names := make([]string, 0, len(result))
	for _, c := range result {
		names = append(names, c.Name)
	}
	assert.Equal(t, []string{"Food", "Rent", "Other", "Travel"}, names)
}

func TestBuildMonthlySpending(t *testing.T) {
	rows := []CategoryMonthTotal{
		{Year: 2024, Month: 3, Category: "Food", Amount: 1500},
		{Year: 2023, Month: 12, Category: "Rent", Amount: 50000},
		{Year: 2024, Month: 3, Category: "Travel", Amount: 2500},
		{Year: 2024, Month: 1, Category: "Food", Amount: 700},
	}

	months := BuildMonthlySpending(rows)

	require.Len(t, months, 3)
	assert.Equal(t, 2023, months[0].Year)
	assert.Equal(t, "December", months[0].MonthName)
	assert.Equal(t, int64(50000), months[0].MonthlyTotal)

	assert.Equal(t, 1, months[1].Month)
	assert.Equal(t, "January", months[1].MonthName)

	assert.Equal(t, "March", months[2].MonthName)
	assert.Equal(t, int64(4000), months[2].MonthlyTotal)
	assert.Equal(t, []CategoryAmount{
		{Category: "Food", Amount: 1500},
		{Category: "Travel", Amount: 2500},
	}, months[2].Categories)
}

func TestBuildMonthlySpending_Empty(t *testing.T) {
	months := BuildMonthlySpending(nil)
	assert.NotNil(t, months)
	assert.Empty(t, months)
}

func TestApplyCategoryTotals(t *testing.T) {
	user := newTestUser(t, 0)
	require.NoError(t, user.RecordSpend("Food", 999))

	err := ApplyCategoryTotals(user, []CategoryTotal{
		{UserID: user.ID, Category: "food", Spent: 300},
		{UserID: user.ID, Category: "Travel", Spent: 200, Received: 50},
		{UserID: user.ID, Category: "Other", Received: 75},
	})

	require.NoError(t, err)
	assert.Equal(t, int64(300), user.FindCategory("Food").Spent)
	assert.Equal(t, int64(200), user.FindCategory("Travel").Spent)
	assert.Equal(t, int64(50), user.FindCategory("Travel").Received)
	assert.Equal(t, int64(75), user.FindCategory("Other").Received)
}
