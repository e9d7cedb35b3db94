package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/paywise/paywise-api/internal/domain/entity"
	errs "github.com/paywise/paywise-api/internal/domain/error"
	coreport "github.com/paywise/paywise-api/internal/domain/port/core"
	"github.com/paywise/paywise-api/internal/domain/port/persistence"
	"github.com/paywise/paywise-api/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// TransactionRepository implements TransactionRepository interface using GORM
type TransactionRepository struct {
	db              *gorm.DB
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewTransactionRepository creates a new TransactionRepository instance
func NewTransactionRepository(db *gorm.DB, logger coreport.Logger) *TransactionRepository {
	return &TransactionRepository{
		db:              db,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

var _ persistence.TransactionRepository = (*TransactionRepository)(nil)

const monthlySpendingQuery = `
SELECT CAST(date_part('year', t."timestamp" AT TIME ZONE 'UTC') AS integer)  AS year,
       CAST(date_part('month', t."timestamp" AT TIME ZONE 'UTC') AS integer) AS month,
       t.category                                                          AS category,
       CAST(SUM(t.amount_in_cents) AS bigint)                              AS amount
FROM transactions t
WHERE t.sender_id = ?
GROUP BY 1, 2, 3
ORDER BY 1, 2, 4 DESC, 3`

const categoryTotalsQuery = `
SELECT category,
       CAST(SUM(CASE WHEN sender_id = @user THEN amount_in_cents ELSE 0 END) AS bigint)   AS spent,
       CAST(SUM(CASE WHEN receiver_id = @user THEN amount_in_cents ELSE 0 END) AS bigint) AS received
FROM transactions
WHERE sender_id = @user OR receiver_id = @user
GROUP BY category
ORDER BY category`

// entityToModel converts a transaction entity to a database model
func entityToModel(transaction *entity.Transaction) model.Transaction {
	return model.Transaction{
		ID:            transaction.ID,
		SenderID:      transaction.SenderID,
		ReceiverID:    transaction.ReceiverID,
		AmountInCents: transaction.AmountInCents,
		Category:      transaction.Category,
		Timestamp:     transaction.Timestamp,
	}
}

func partyFromModel(u *model.User) *entity.Party {
	if u == nil || u.ID == "" {
		return nil
	}
	return &entity.Party{ID: u.ID, Name: u.Name, UpiID: u.UpiID}
}

func transactionFromModel(m *model.Transaction) *entity.Transaction {
	messages := make([]entity.Message, 0, len(m.Messages))
	for _, msg := range m.Messages {
		messages = append(messages, entity.Message{
			ID:        msg.ID,
			SenderID:  msg.SenderID,
			Text:      msg.Text,
			Timestamp: msg.Timestamp.UTC(),
		})
	}
	return &entity.Transaction{
		ID:            m.ID,
		SenderID:      m.SenderID,
		ReceiverID:    m.ReceiverID,
		AmountInCents: m.AmountInCents,
		Category:      m.Category,
		Timestamp:     m.Timestamp.UTC(),
		Messages:      messages,
		Sender:        partyFromModel(&m.Sender),
		Receiver:      partyFromModel(&m.Receiver),
	}
}

// withDetails preloads party summaries and the message thread
func withDetails(db *gorm.DB) *gorm.DB {
	party := func(db *gorm.DB) *gorm.DB {
		return db.Select("id", "name", "upi_id")
	}
	return db.
		Preload("Sender", party).
		Preload("Receiver", party).
		Preload("Messages", func(db *gorm.DB) *gorm.DB {
			return db.Order(`"timestamp" ASC, id ASC`)
		})
}

func (r *TransactionRepository) wrapError(operation string, err error, fields map[string]any) error {
	fields["error"] = err.Error()
	switch r.errorClassifier.Classify(err) {
	case ForeignKeyError, ConstraintError:
		r.logger.Warn(fmt.Sprintf("Constraint violated when %s", operation), fields)
		return fmt.Errorf("%w: %s", errs.ErrConstraintViolation, err.Error())
	case InvalidDataError:
		r.logger.Warn(fmt.Sprintf("Value rejected when %s", operation), fields)
		return fmt.Errorf("%w: value rejected by the database", errs.ErrInvalidRequest)
	}
	r.logger.Error(fmt.Sprintf("Database error when %s", operation), fields)
	return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, err.Error())
}

// Create saves a new transaction record
func (r *TransactionRepository) Create(ctx context.Context, transaction *entity.Transaction) error {
	transactionModel := entityToModel(transaction)

	result := r.db.WithContext(ctx).Omit(clause.Associations).Create(&transactionModel)
	if result.Error != nil {
		return r.wrapError("creating transaction", result.Error, map[string]any{
			"transaction_id": transaction.ID,
			"sender_id":      transaction.SenderID,
			"receiver_id":    transaction.ReceiverID,
		})
	}

	r.logger.Debug("Transaction created successfully", map[string]any{
		"transaction_id": transaction.ID,
	})
	return nil
}

// GetByID retrieves a transaction with its parties and messages
func (r *TransactionRepository) GetByID(ctx context.Context, id string) (*entity.Transaction, error) {
	var transactionModel model.Transaction
	result := withDetails(r.db.WithContext(ctx)).Where("id = ?", id).First(&transactionModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, errs.ErrTransactionNotFound
		}
		return nil, r.wrapError("getting transaction", result.Error, map[string]any{"transaction_id": id})
	}
	return transactionFromModel(&transactionModel), nil
}

// ListByUser returns the user's sent and received transactions, newest first
func (r *TransactionRepository) ListByUser(ctx context.Context, userID string) ([]*entity.Transaction, error) {
	var models []model.Transaction
	result := withDetails(r.db.WithContext(ctx)).
		Where("sender_id = ? OR receiver_id = ?", userID, userID).
		Order(`"timestamp" DESC, id DESC`).
		Find(&models)
	if result.Error != nil {
		return nil, r.wrapError("listing transactions", result.Error, map[string]any{"user_id": userID})
	}

	transactions := make([]*entity.Transaction, 0, len(models))
	for i := range models {
		transactions = append(transactions, transactionFromModel(&models[i]))
	}
	return transactions, nil
}

// AddMessage appends a message to an existing transaction
func (r *TransactionRepository) AddMessage(ctx context.Context, transactionID string, message *entity.Message) error {
	messageModel := model.TransactionMessage{
		ID:            message.ID,
		TransactionID: transactionID,
		SenderID:      message.SenderID,
		Text:          message.Text,
		Timestamp:     message.Timestamp,
	}

	result := r.db.WithContext(ctx).Create(&messageModel)
	if result.Error != nil {
		if r.errorClassifier.Classify(result.Error) == ForeignKeyError {
			return errs.ErrTransactionNotFound
		}
		return r.wrapError("adding message", result.Error, map[string]any{"transaction_id": transactionID})
	}
	return nil
}

// MonthlySpending sums the amounts the user sent per UTC calendar month and category
func (r *TransactionRepository) MonthlySpending(ctx context.Context, userID string) ([]entity.CategoryMonthTotal, error) {
	var rows []entity.CategoryMonthTotal
	if err := r.db.WithContext(ctx).Raw(monthlySpendingQuery, userID).Scan(&rows).Error; err != nil {
		return nil, r.wrapError("aggregating monthly spending", err, map[string]any{"user_id": userID})
	}
	return rows, nil
}

// CategoryTotalsForUser sums what the user sent and received per category across the ledger
func (r *TransactionRepository) CategoryTotalsForUser(ctx context.Context, userID string) ([]entity.CategoryTotal, error) {
	var rows []entity.CategoryTotal
	err := r.db.WithContext(ctx).Raw(categoryTotalsQuery, sql.Named("user", userID)).Scan(&rows).Error
	if err != nil {
		return nil, r.wrapError("aggregating category totals", err, map[string]any{"user_id": userID})
	}
	for i := range rows {
		rows[i].UserID = userID
	}
	return rows, nil
}
