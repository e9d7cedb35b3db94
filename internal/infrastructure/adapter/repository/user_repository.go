package repository

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/paywise/paywise-api/internal/domain/entity"
	errs "github.com/paywise/paywise-api/internal/domain/error"
	coreport "github.com/paywise/paywise-api/internal/domain/port/core"
	"github.com/paywise/paywise-api/internal/domain/port/persistence"
	"github.com/paywise/paywise-api/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Unique index names generated for the users table
const (
	upiIDIndex = "idx_users_upi_id"
	phoneIndex = "idx_users_phone"
)

// UserRepository implements UserRepository interface using GORM
type UserRepository struct {
	db              *gorm.DB
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewUserRepository creates a new UserRepository instance
func NewUserRepository(db *gorm.DB, logger coreport.Logger) *UserRepository {
	return &UserRepository{
		db:              db,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

var _ persistence.UserRepository = (*UserRepository)(nil)

// modelToEntity converts a user model with its categories to an entity
func modelToEntity(userModel *model.User) *entity.User {
	categories := make([]entity.Category, 0, len(userModel.Categories))
	for _, c := range userModel.Categories {
		categories = append(categories, entity.Category{
			Name:     c.Name,
			Type:     entity.CategoryType(c.Type),
			Spent:    c.Spent,
			Received: c.Received,
			Limit:    c.Limit,
		})
	}
	return entity.RehydrateUser(
		userModel.ID,
		userModel.Name,
		userModel.UpiID,
		userModel.Phone,
		userModel.PasswordHash,
		userModel.Balance,
		categories,
		userModel.CreatedAt.UTC(),
		userModel.UpdatedAt.UTC(),
	)
}

// categoriesToModel converts entity categories to rows, keeping their order
func categoriesToModel(userID string, categories []entity.Category) []model.UserCategory {
	rows := make([]model.UserCategory, 0, len(categories))
	for i, c := range categories {
		rows = append(rows, model.UserCategory{
			UserID:   userID,
			Name:     c.Name,
			NameKey:  entity.CategoryKey(c.Name),
			Type:     string(c.Type),
			Spent:    c.Spent,
			Received: c.Received,
			Limit:    c.Limit,
			Position: i,
		})
	}
	return rows
}

func orderedCategories(db *gorm.DB) *gorm.DB {
	return db.Order("position ASC, id ASC")
}

// handleDatabaseError standardizes database error handling
func (r *UserRepository) handleDatabaseError(operation string, err error, fields map[string]any) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		r.logger.Debug("User not found", fields)
		return errs.ErrUserNotFound
	}

	fields["error"] = err.Error()

	switch r.errorClassifier.Classify(err) {
	case DuplicateKeyError:
		r.logger.Warn("Duplicate user", fields)
		switch r.errorClassifier.ConstraintName(err) {
		case upiIDIndex:
			return errs.ErrDuplicateUpiID
		case phoneIndex:
			return errs.ErrDuplicatePhone
		}
		return errs.ErrDuplicateUser
	case ConstraintError, ForeignKeyError:
		r.logger.Warn("User constraint violated", fields)
		return fmt.Errorf("%w: %s", errs.ErrConstraintViolation, err.Error())
	case InvalidDataError:
		r.logger.Warn("User value rejected by the database", fields)
		return fmt.Errorf("%w: value rejected by the database", errs.ErrInvalidRequest)
	}

	r.logger.Error(fmt.Sprintf("Database error when %s", operation), fields)
	return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, err.Error())
}

func (r *UserRepository) getBy(ctx context.Context, column, value string) (*entity.User, error) {
	var userModel model.User
	result := r.db.WithContext(ctx).
		Preload("Categories", orderedCategories).
		Where(column+" = ?", value).
		First(&userModel)
	if result.Error != nil {
		return nil, r.handleDatabaseError("getting user", result.Error, map[string]any{column: value})
	}
	return modelToEntity(&userModel), nil
}

// GetByID retrieves a user by ID
func (r *UserRepository) GetByID(ctx context.Context, id string) (*entity.User, error) {
	return r.getBy(ctx, "id", id)
}

// GetByUpiID retrieves a user by UPI ID
func (r *UserRepository) GetByUpiID(ctx context.Context, upiID string) (*entity.User, error) {
	return r.getBy(ctx, "upi_id", upiID)
}

// GetByPhone retrieves a user by phone number
func (r *UserRepository) GetByPhone(ctx context.Context, phone string) (*entity.User, error) {
	return r.getBy(ctx, "phone", phone)
}

// GetForUpdate loads and row-locks the given users in ascending id order.
// Must run inside a unit of work, otherwise the lock is released immediately.
func (r *UserRepository) GetForUpdate(ctx context.Context, ids []string) (map[string]*entity.User, error) {
	unique := make([]string, 0, len(ids))
	seen := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		unique = append(unique, id)
	}
	sort.Strings(unique)

	r.logger.Debug("Locking users", map[string]any{"user_ids": unique})

	var users []model.User
	result := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("id IN ?", unique).
		Order("id ASC").
		Find(&users)
	if result.Error != nil {
		return nil, r.handleDatabaseError("locking users", result.Error, map[string]any{"user_ids": unique})
	}
	if len(users) != len(unique) {
		return nil, errs.ErrUserNotFound
	}

	var categories []model.UserCategory
	result = r.db.WithContext(ctx).
		Where("user_id IN ?", unique).
		Order("user_id ASC, position ASC, id ASC").
		Find(&categories)
	if result.Error != nil {
		return nil, r.handleDatabaseError("loading categories", result.Error, map[string]any{"user_ids": unique})
	}

	byUser := make(map[string][]model.UserCategory, len(users))
	for _, c := range categories {
		byUser[c.UserID] = append(byUser[c.UserID], c)
	}

	locked := make(map[string]*entity.User, len(users))
	for i := range users {
		users[i].Categories = byUser[users[i].ID]
		locked[users[i].ID] = modelToEntity(&users[i])
	}
	return locked, nil
}

// ListIDs returns the ids of every user
func (r *UserRepository) ListIDs(ctx context.Context) ([]string, error) {
	var ids []string
	result := r.db.WithContext(ctx).Model(&model.User{}).Order("id ASC").Pluck("id", &ids)
	if result.Error != nil {
		return nil, r.handleDatabaseError("listing users", result.Error, map[string]any{})
	}
	return ids, nil
}

// Create creates a new user together with its categories
func (r *UserRepository) Create(ctx context.Context, user *entity.User) error {
	userModel := model.User{
		ID:           user.ID,
		Name:         user.Name,
		UpiID:        user.UpiID,
		Phone:        user.Phone,
		PasswordHash: user.PasswordHash,
		Balance:      user.Balance(),
		Categories:   categoriesToModel(user.ID, user.Categories),
		CreatedAt:    user.CreatedAt,
		UpdatedAt:    user.UpdatedAt,
	}

	if result := r.db.WithContext(ctx).Create(&userModel); result.Error != nil {
		return r.handleDatabaseError("creating user", result.Error, map[string]any{
			"user_id": user.ID,
			"upi_id":  user.UpiID,
		})
	}

	r.logger.Info("User created successfully", map[string]any{
		"user_id": user.ID,
		"balance": user.GetBalance(),
	})
	return nil
}

// Update stores the balance and replaces the user's categories
func (r *UserRepository) Update(ctx context.Context, user *entity.User) error {
	fields := map[string]any{"user_id": user.ID}
	db := r.db.WithContext(ctx)

	result := db.Model(&model.User{}).
		Where("id = ?", user.ID).
		Updates(map[string]any{
			"name":       user.Name,
			"balance":    user.Balance(),
			"updated_at": user.UpdatedAt,
		})
	if result.Error != nil {
		return r.handleDatabaseError("updating user", result.Error, fields)
	}
	if result.RowsAffected == 0 {
		r.logger.Warn("User not found during update", fields)
		return errs.ErrUserNotFound
	}

	if err := db.Where("user_id = ?", user.ID).Delete(&model.UserCategory{}).Error; err != nil {
		return r.handleDatabaseError("clearing categories", err, fields)
	}
	if rows := categoriesToModel(user.ID, user.Categories); len(rows) > 0 {
		if err := db.Create(&rows).Error; err != nil {
			return r.handleDatabaseError("storing categories", err, fields)
		}
	}

	r.logger.Debug("User updated successfully", map[string]any{
		"user_id":    user.ID,
		"balance":    user.GetBalance(),
		"categories": len(user.Categories),
	})
	return nil
}
