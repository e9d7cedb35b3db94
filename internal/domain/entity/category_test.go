package entity

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	errs "github.com/paywise/paywise-api/internal/domain/error"
)

func TestIsPredefinedCategory(t *testing.T) {
	for _, name := range []string{"Shopping", "groceries", " FOOD ", "rent", "Other"} {
		assert.True(t, IsPredefinedCategory(name), name)
	}
	for _, name := range []string{"Travel", "", "Foods"} {
		assert.False(t, IsPredefinedCategory(name), name)
	}
}

func TestNormalizeCategoryName(t *testing.T) {
	assert.Equal(t, "Other", NormalizeCategoryName(""))
	assert.Equal(t, "Other", NormalizeCategoryName("   "))
	assert.Equal(t, "Travel", NormalizeCategoryName("  Travel "))
}

func TestValidateCategoryName(t *testing.T) {
	assert.NoError(t, ValidateCategoryName("Travel"))
	assert.NoError(t, ValidateCategoryName(strings.Repeat("é", MaxCategoryNameLength)))
	assert.ErrorIs(t, ValidateCategoryName("  "), errs.ErrEmptyCategoryName)
	assert.ErrorIs(t, ValidateCategoryName(strings.Repeat("x", MaxCategoryNameLength+1)), errs.ErrCategoryNameTooLong)
}

func TestNewCategory(t *testing.T) {
	assert.Equal(t, CategoryPredefined, NewCategory("food").Type)
	assert.Equal(t, CategoryCustom, NewCategory("Travel").Type)
}

func TestDefaultCategories(t *testing.T) {
	categories := DefaultCategories()

	assert.Len(t, categories, 5)
	for _, c := range categories {
		assert.Equal(t, CategoryPredefined, c.Type)
		assert.Zero(t, c.Spent)
		assert.Zero(t, c.Received)
		assert.Zero(t, c.Limit)
	}
	assert.Equal(t, PredefinedCategoryNames()[0], categories[0].Name)
}

func TestEvaluateLimit(t *testing.T) {
	testCases := []struct {
		name     string
		category *Category
		amount   int64
		exceeds  bool
	}{
		{"No category", nil, 10000, false},
		{"No limit", &Category{Name: "Food", Spent: 90000}, 10000, false},
		{"Below limit", &Category{Name: "Food", Spent: 1000, Limit: 5000}, 3000, false},
		{"Exactly at limit", &Category{Name: "Food", Spent: 2000, Limit: 5000}, 3000, false},
		{"Above limit", &Category{Name: "Food", Spent: 2000, Limit: 5000}, 3001, true},
		{"Already over", &Category{Name: "Food", Spent: 6000, Limit: 5000}, 1, true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			check := EvaluateLimit(tc.category, tc.amount)
			assert.Equal(t, tc.exceeds, check.ExceedsLimit)
			if tc.category != nil {
				assert.Equal(t, tc.category.Limit, check.LimitSet)
				assert.Equal(t, tc.category.Spent, check.SpentOnCategory)
			}
			if tc.exceeds {
				assert.Equal(t, tc.category.Name, check.ExceededCategory)
			} else {
				assert.Empty(t, check.ExceededCategory)
			}
		})
	}
}
