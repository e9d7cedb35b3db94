package entity

// BalanceSummary is the balance view of a user: balance plus every category
type BalanceSummary struct {
	UserID     string
	Balance    int64
	Categories []Category
}

// UserToBalanceSummary converts a User entity to its balance view
// This is a separate function rather than a method on User to keep domain models clean
func UserToBalanceSummary(user *User) BalanceSummary {
	categories := make([]Category, len(user.Categories))
	copy(categories, user.Categories)
	return BalanceSummary{
		UserID:     user.ID,
		Balance:    user.Balance(),
		Categories: categories,
	}
}
