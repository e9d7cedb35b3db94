package transfer

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/paywise/paywise-api/internal/domain/entity"
	errs "github.com/paywise/paywise-api/internal/domain/error"
	coreport "github.com/paywise/paywise-api/internal/domain/port/core"
	"github.com/paywise/paywise-api/internal/domain/port/persistence"
	"github.com/paywise/paywise-api/internal/domain/port/usecase"
)

// Service executes money transfers between users.
// Validation happens before any write; the writes run in a single unit of work.
type Service struct {
	uow          persistence.UnitOfWork
	hasher       coreport.PasswordHasher
	ids          coreport.IDGenerator
	publisher    coreport.EventPublisher
	analytics    usecase.AnalyticsUseCase
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
	validator    *Validator
}

// NewService creates a new transfer service
func NewService(
	uow persistence.UnitOfWork,
	hasher coreport.PasswordHasher,
	ids coreport.IDGenerator,
	publisher coreport.EventPublisher,
	analytics usecase.AnalyticsUseCase,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) *Service {
	return &Service{
		uow:          uow,
		hasher:       hasher,
		ids:          ids,
		publisher:    publisher,
		analytics:    analytics,
		timeProvider: timeProvider,
		logger:       logger,
		validator:    NewValidator(uow, hasher),
	}
}

var _ usecase.TransferUseCase = (*Service)(nil)

// Send validates and executes a transfer on behalf of callerID
func (s *Service) Send(ctx context.Context, callerID string, req usecase.TransferRequest) (*usecase.TransferResult, error) {
	category := entity.NormalizeCategoryName(req.Category)
	reject := func(reason string, err error) error {
		return errs.NewTransferError(req.SenderID, req.ReceiverIdentifier, req.Amount, category, reason, err)
	}

	checked, err := s.validator.Validate(ctx, callerID, req)
	if err != nil {
		s.logRejected(req, category, err)
		var ve *validationError
		if errors.As(err, &ve) {
			return nil, reject(ve.step, ve.err)
		}
		return nil, err
	}

	result, err := s.execute(ctx, checked, category)
	if err != nil {
		s.logRejected(req, category, err)
		if errs.HTTPStatus(err) != http.StatusInternalServerError {
			return nil, reject("execution", err)
		}
		return nil, err
	}

	s.afterCommit(ctx, result)

	s.logger.Info("Transfer completed", map[string]any{
		"transaction_id": result.Transaction.ID,
		"sender_id":      result.Transaction.SenderID,
		"receiver_id":    result.Transaction.ReceiverID,
		"amount":         result.Transaction.Amount(),
		"category":       result.Category,
		"exceeds_limit":  result.Limit.ExceedsLimit,
	})

	return result, nil
}

// execute applies the transfer inside one unit of work.
// Rows are re-read under lock so concurrent transfers see each other's writes.
func (s *Service) execute(ctx context.Context, checked *checkedTransfer, category string) (result *usecase.TransferResult, err error) {
	txCtx, err := s.uow.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err != nil {
			if rbErr := s.uow.Rollback(txCtx); rbErr != nil {
				s.logger.Error("Failed to roll back transfer", map[string]any{
					"error":     rbErr.Error(),
					"sender_id": checked.sender.ID,
				})
			}
		}
	}()

	userRepo := s.uow.GetUserRepository(txCtx)
	txRepo := s.uow.GetTransactionRepository(txCtx)

	locked, err := userRepo.GetForUpdate(txCtx, []string{checked.sender.ID, checked.receiver.ID})
	if err != nil {
		return nil, fmt.Errorf("failed to lock transfer parties: %w", err)
	}
	sender, receiver := locked[checked.sender.ID], locked[checked.receiver.ID]
	if sender == nil {
		return nil, errs.ErrSenderNotFound
	}
	if receiver == nil {
		return nil, errs.ErrReceiverNotFound
	}

	limit := entity.EvaluateLimit(sender.FindCategory(category), checked.amount)

	if err = sender.Debit(checked.amount, s.timeProvider); err != nil {
		return nil, err
	}
	if err = receiver.Credit(checked.amount, s.timeProvider); err != nil {
		return nil, err
	}
	if err = sender.RecordSpend(category, checked.amount); err != nil {
		return nil, err
	}
	if err = receiver.RecordReceive(category, checked.amount); err != nil {
		return nil, err
	}

	txn, err := entity.NewTransaction(s.ids.NewID(), sender.ID, receiver.ID, checked.amount, category, s.timeProvider)
	if err != nil {
		return nil, err
	}

	if err = userRepo.Update(txCtx, sender); err != nil {
		return nil, fmt.Errorf("failed to update sender: %w", err)
	}
	if err = userRepo.Update(txCtx, receiver); err != nil {
		return nil, fmt.Errorf("failed to update receiver: %w", err)
	}
	if err = txRepo.Create(txCtx, txn); err != nil {
		return nil, fmt.Errorf("failed to record transaction: %w", err)
	}

	if err = s.uow.Commit(txCtx); err != nil {
		return nil, err
	}

	txn.Sender = &entity.Party{ID: sender.ID, Name: sender.Name, UpiID: sender.UpiID}
	txn.Receiver = &entity.Party{ID: receiver.ID, Name: receiver.Name, UpiID: receiver.UpiID}

	return &usecase.TransferResult{
		Transaction: txn,
		Category:    category,
		Limit:       limit,
	}, nil
}

// afterCommit runs best-effort side effects; failures are logged and swallowed
func (s *Service) afterCommit(ctx context.Context, result *usecase.TransferResult) {
	txn := result.Transaction

	event := map[string]any{
		"transactionId": txn.ID,
		"senderId":      txn.SenderID,
		"receiverId":    txn.ReceiverID,
		"amount":        txn.Amount(),
		"category":      txn.Category,
		"exceedsLimit":  result.Limit.ExceedsLimit,
		"timestamp":     txn.Timestamp,
	}
	if err := s.publisher.Publish(ctx, coreport.TransactionEventsStream, coreport.EventTransactionCreated, event); err != nil {
		s.logger.Warn("Failed to publish transfer event", map[string]any{
			"transaction_id": txn.ID,
			"error":          err.Error(),
		})
	}

	s.analytics.InvalidateUser(ctx, txn.SenderID, txn.ReceiverID)
}

func (s *Service) logRejected(req usecase.TransferRequest, category string, err error) {
	fields := map[string]any{
		"sender_id":           req.SenderID,
		"receiver_identifier": req.ReceiverIdentifier,
		"amount":              req.Amount,
		"category":            category,
		"error":               err.Error(),
		"error_code":          errs.ErrorCode(err),
	}
	if errs.HTTPStatus(err) >= http.StatusInternalServerError {
		s.logger.Error("Transfer failed", fields)
		return
	}
	s.logger.Warn("Transfer rejected", fields)
}
