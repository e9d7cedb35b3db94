package transaction

import (
	"context"

	"github.com/google/uuid"

	"github.com/paywise/paywise-api/internal/domain/entity"
	errs "github.com/paywise/paywise-api/internal/domain/error"
	coreport "github.com/paywise/paywise-api/internal/domain/port/core"
	"github.com/paywise/paywise-api/internal/domain/port/persistence"
	"github.com/paywise/paywise-api/internal/domain/port/usecase"
)

// Service exposes the transfer ledger and the message threads attached to it
type Service struct {
	txRepo       persistence.TransactionRepository
	ids          coreport.IDGenerator
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

// NewTransactionService creates a new transaction service
func NewTransactionService(
	txRepo persistence.TransactionRepository,
	ids coreport.IDGenerator,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) *Service {
	return &Service{
		txRepo:       txRepo,
		ids:          ids,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

var _ usecase.TransactionUseCase = (*Service)(nil)

// History returns every transaction userID sent or received, newest first
func (s *Service) History(ctx context.Context, callerID, userID string) ([]*entity.Transaction, error) {
	if err := entity.EnsureOwner(callerID, userID); err != nil {
		return nil, err
	}
	return s.txRepo.ListByUser(ctx, userID)
}

// Get returns a single transaction the caller is a party to.
// Ids that are not UUIDs cannot name a transaction and are reported as not found.
func (s *Service) Get(ctx context.Context, callerID, transactionID string) (*entity.Transaction, error) {
	if _, err := uuid.Parse(transactionID); err != nil {
		return nil, errs.ErrTransactionNotFound
	}
	txn, err := s.txRepo.GetByID(ctx, transactionID)
	if err != nil {
		return nil, err
	}
	if !txn.Involves(callerID) {
		s.logger.Warn("Transaction requested by a non-party", map[string]any{
			"caller_id":      callerID,
			"transaction_id": transactionID,
		})
		return nil, errs.ErrForbidden
	}
	return txn, nil
}

// AddMessage appends a message from senderID to the transaction and returns the updated thread
func (s *Service) AddMessage(ctx context.Context, callerID, transactionID, senderID, text string) (*entity.Transaction, error) {
	if err := entity.EnsureOwner(callerID, senderID); err != nil {
		return nil, err
	}

	msg, err := entity.NewMessage(s.ids.NewID(), senderID, text, s.timeProvider)
	if err != nil {
		return nil, err
	}

	txn, err := s.Get(ctx, callerID, transactionID)
	if err != nil {
		return nil, err
	}

	if err := s.txRepo.AddMessage(ctx, txn.ID, msg); err != nil {
		s.logger.Error("Failed to add transaction message", map[string]any{
			"transaction_id": transactionID,
			"error":          err.Error(),
		})
		return nil, err
	}
	txn.Messages = append(txn.Messages, *msg)

	s.logger.Info("Transaction message added", map[string]any{
		"transaction_id": transactionID,
		"sender_id":      senderID,
	})

	return txn, nil
}
