package entity

import (
	"strings"
	"unicode/utf8"

	errs "github.com/paywise/paywise-api/internal/domain/error"
)

// CategoryType tells predefined categories apart from user-created ones
type CategoryType string

// Category types
const (
	CategoryPredefined CategoryType = "predefined"
	CategoryCustom     CategoryType = "custom"
)

// DefaultCategoryName is used when a transfer carries no category
const DefaultCategoryName = "Other"

// MaxCategoryNameLength is the longest category name, in characters
const MaxCategoryNameLength = 100

// predefinedCategoryNames are present on every user and cannot be deleted
var predefinedCategoryNames = []string{"Shopping", "Groceries", "Food", "Rent", "Other"}

// PredefinedCategoryNames returns the names every user starts with
func PredefinedCategoryNames() []string {
	names := make([]string, len(predefinedCategoryNames))
	copy(names, predefinedCategoryNames)
	return names
}

// CategoryKey returns the case-insensitive identity of a category name
func CategoryKey(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// NormalizeCategoryName trims the name and falls back to the default category
func NormalizeCategoryName(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return DefaultCategoryName
	}
	return name
}

// ValidateCategoryName rejects blank names and names longer than MaxCategoryNameLength
func ValidateCategoryName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.ErrEmptyCategoryName
	}
	if utf8.RuneCountInString(name) > MaxCategoryNameLength {
		return errs.ErrCategoryNameTooLong
	}
	return nil
}

// IsPredefinedCategory reports whether name matches a predefined category, ignoring case
func IsPredefinedCategory(name string) bool {
	key := CategoryKey(name)
	for _, n := range predefinedCategoryNames {
		if strings.ToLower(n) == key {
			return true
		}
	}
	return false
}

// Category is a per-user spend/receive bucket with an optional soft limit.
// Amounts are in cents; a zero Limit means no limit.
type Category struct {
	Name     string
	Type     CategoryType
	Spent    int64
	Received int64
	Limit    int64
}

// NewCategory creates an empty category, typed by its name
func NewCategory(name string) Category {
	t := CategoryCustom
	if IsPredefinedCategory(name) {
		t = CategoryPredefined
	}
	return Category{Name: name, Type: t}
}

// DefaultCategories returns the predefined categories with zero totals
func DefaultCategories() []Category {
	categories := make([]Category, 0, len(predefinedCategoryNames))
	for _, name := range predefinedCategoryNames {
		categories = append(categories, Category{Name: name, Type: CategoryPredefined})
	}
	return categories
}

// HasLimit reports whether a spending cap is configured
func (c Category) HasLimit() bool {
	return c.Limit > 0
}

// LimitCheck is the advisory result of comparing a spend against a category limit
type LimitCheck struct {
	ExceedsLimit     bool
	ExceededCategory string
	LimitSet         int64
	SpentOnCategory  int64
}

// EvaluateLimit checks whether spending amount on top of the category's prior
// spend would cross its limit. A nil category (not yet created) never exceeds.
func EvaluateLimit(category *Category, amount int64) LimitCheck {
	if category == nil {
		return LimitCheck{}
	}
	check := LimitCheck{
		LimitSet:        category.Limit,
		SpentOnCategory: category.Spent,
	}
	if category.HasLimit() && category.Spent+amount > category.Limit {
		check.ExceedsLimit = true
		check.ExceededCategory = category.Name
	}
	return check
}
