package entity

import (
	"fmt"
	"strings"
	"time"

	errs "github.com/paywise/paywise-api/internal/domain/error"
	coreport "github.com/paywise/paywise-api/internal/domain/port/core"
)

// Stored length limits of the identity fields, in characters
const (
	MaxUserNameLength = 255
	MaxUpiIDLength    = 255
	MaxPhoneLength    = 32
)

// User is an account holder with a balance and spending categories
type User struct {
	ID           string     // UUID of the user
	Name         string     // Display name
	UpiID        string     // Unique payment identifier, contains '@'
	Phone        string     // Unique phone number
	PasswordHash string     // bcrypt hash of the password
	balance      int64      // Balance stored in cents (private)
	Categories   []Category // Spending categories, names unique case-insensitively
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// NewUser creates a user holding the predefined categories and the opening balance
func NewUser(id, name, upiID, phone, passwordHash string, openingBalance int64, timeProvider coreport.TimeProvider) (*User, error) {
	if strings.TrimSpace(id) == "" {
		return nil, errs.ErrInvalidUserID
	}
	if openingBalance < 0 {
		return nil, errs.ErrNegativeAmount
	}

	now := timeProvider.Now()
	return &User{
		ID:           id,
		Name:         strings.TrimSpace(name),
		UpiID:        strings.TrimSpace(upiID),
		Phone:        strings.TrimSpace(phone),
		PasswordHash: passwordHash,
		balance:      openingBalance,
		Categories:   DefaultCategories(),
		CreatedAt:    now,
		UpdatedAt:    now,
	}, nil
}

// RehydrateUser rebuilds a user from stored state (for repositories)
func RehydrateUser(id, name, upiID, phone, passwordHash string, balance int64, categories []Category, createdAt, updatedAt time.Time) *User {
	return &User{
		ID:           id,
		Name:         name,
		UpiID:        upiID,
		Phone:        phone,
		PasswordHash: passwordHash,
		balance:      balance,
		Categories:   categories,
		CreatedAt:    createdAt,
		UpdatedAt:    updatedAt,
	}
}

// Balance returns the current balance in cents (for internal use)
func (u *User) Balance() int64 {
	return u.balance
}

// GetBalance returns the balance as a string with 2 decimal places
func (u *User) GetBalance() string {
	return AmountInCentsToString(u.balance)
}

// CanDeduct checks if the user has enough balance for a deduction
func (u *User) CanDeduct(amountInCents int64) bool {
	return u.balance >= amountInCents
}

// Debit subtracts the amount from the balance.
// Returns InsufficientBalanceError if the balance cannot cover it.
func (u *User) Debit(amountInCents int64, timeProvider coreport.TimeProvider) error {
	if amountInCents <= 0 {
		return errs.ErrNonPositiveAmount
	}
	if !u.CanDeduct(amountInCents) {
		return errs.NewInsufficientBalanceError(u.ID, AmountInCentsToString(amountInCents), u.GetBalance())
	}
	u.balance -= amountInCents
	u.UpdatedAt = timeProvider.Now()
	return nil
}

// Credit adds the amount to the balance
func (u *User) Credit(amountInCents int64, timeProvider coreport.TimeProvider) error {
	if amountInCents <= 0 {
		return errs.ErrNonPositiveAmount
	}
	balance, err := AddCents(u.balance, amountInCents)
	if err != nil {
		return err
	}
	u.balance = balance
	u.UpdatedAt = timeProvider.Now()
	return nil
}

// FindCategory returns the category matching name case-insensitively, or nil
func (u *User) FindCategory(name string) *Category {
	if i := u.categoryIndex(name); i >= 0 {
		return &u.Categories[i]
	}
	return nil
}

// FindOrCreateCategory returns the matching category, appending a new one when absent
func (u *User) FindOrCreateCategory(name string) *Category {
	name = NormalizeCategoryName(name)
	if i := u.categoryIndex(name); i >= 0 {
		return &u.Categories[i]
	}
	u.Categories = append(u.Categories, NewCategory(name))
	return &u.Categories[len(u.Categories)-1]
}

// RecordSpend adds amount to the spent total of the named category, creating it if needed
func (u *User) RecordSpend(name string, amountInCents int64) error {
	c := u.FindOrCreateCategory(name)
	spent, err := AddCents(c.Spent, amountInCents)
	if err != nil {
		return err
	}
	c.Spent = spent
	return nil
}

// RecordReceive adds amount to the received total of the named category, creating it if needed
func (u *User) RecordReceive(name string, amountInCents int64) error {
	c := u.FindOrCreateCategory(name)
	received, err := AddCents(c.Received, amountInCents)
	if err != nil {
		return err
	}
	c.Received = received
	return nil
}

// AddCustomCategory creates a new custom category with zero totals
func (u *User) AddCustomCategory(name string, timeProvider coreport.TimeProvider) error {
	name = strings.TrimSpace(name)
	if err := ValidateCategoryName(name); err != nil {
		return err
	}
	if u.categoryIndex(name) >= 0 {
		return fmt.Errorf("%w: %s", errs.ErrCategoryExists, name)
	}
	u.Categories = append(u.Categories, Category{Name: name, Type: CategoryCustom})
	u.UpdatedAt = timeProvider.Now()
	return nil
}

// DeleteCategory removes a custom category. Predefined names are protected.
func (u *User) DeleteCategory(name string, timeProvider coreport.TimeProvider) error {
	if IsPredefinedCategory(name) {
		return errs.ErrPredefinedCategory
	}
	i := u.categoryIndex(name)
	if i < 0 {
		return errs.ErrCategoryNotFound
	}
	u.Categories = append(u.Categories[:i], u.Categories[i+1:]...)
	u.UpdatedAt = timeProvider.Now()
	return nil
}

// SetCategoryLimit sets the soft spending limit of an existing category; zero clears it
func (u *User) SetCategoryLimit(name string, limitInCents int64, timeProvider coreport.TimeProvider) error {
	if limitInCents < 0 {
		return errs.ErrInvalidLimit
	}
	c := u.FindCategory(name)
	if c == nil {
		return errs.ErrCategoryNotFound
	}
	c.Limit = limitInCents
	u.UpdatedAt = timeProvider.Now()
	return nil
}

// ResetCategoryTotals zeroes spent and received on every category, keeping limits
func (u *User) ResetCategoryTotals() {
	for i := range u.Categories {
		u.Categories[i].Spent = 0
		u.Categories[i].Received = 0
	}
}

func (u *User) categoryIndex(name string) int {
	key := CategoryKey(name)
	for i := range u.Categories {
		if CategoryKey(u.Categories[i].Name) == key {
			return i
		}
	}
	return -1
}

// IsUpiID reports whether an account identifier is a UPI ID rather than a phone number
func IsUpiID(identifier string) bool {
	return strings.Contains(identifier, "@")
}

// EnsureOwner rejects callers acting on another user's account
func EnsureOwner(callerID, ownerID string) error {
	if callerID == "" || callerID != ownerID {
		return errs.ErrForbidden
	}
	return nil
}
