package transfer

import (
	"context"
	"errors"
	"strings"

	"github.com/paywise/paywise-api/internal/domain/entity"
	errs "github.com/paywise/paywise-api/internal/domain/error"
	coreport "github.com/paywise/paywise-api/internal/domain/port/core"
	"github.com/paywise/paywise-api/internal/domain/port/persistence"
	"github.com/paywise/paywise-api/internal/domain/port/usecase"
)

// validationError records which precondition rejected the transfer
type validationError struct {
	step string
	err  error
}

func (e *validationError) Error() string { return e.step + ": " + e.err.Error() }
func (e *validationError) Unwrap() error { return e.err }

func rejected(step string, err error) error {
	return &validationError{step: step, err: err}
}

// checkedTransfer is a transfer whose preconditions all hold
type checkedTransfer struct {
	sender   *entity.User
	receiver *entity.User
	amount   int64
}

// Validator checks transfer preconditions in a fixed order; the first failure wins
type Validator struct {
	uow    persistence.UnitOfWork
	hasher coreport.PasswordHasher
}

// NewValidator creates a new Validator
func NewValidator(uow persistence.UnitOfWork, hasher coreport.PasswordHasher) *Validator {
	return &Validator{uow: uow, hasher: hasher}
}

// Validate runs the checks: caller identity, amount and category input, sender,
// password, receiver, self-transfer and funds
func (v *Validator) Validate(ctx context.Context, callerID string, req usecase.TransferRequest) (*checkedTransfer, error) {
	if err := entity.EnsureOwner(callerID, req.SenderID); err != nil {
		return nil, rejected("authorization", err)
	}

	amount, err := v.validateAmount(req.Amount)
	if err != nil {
		return nil, rejected("amount", err)
	}

	if err := entity.ValidateCategoryName(entity.NormalizeCategoryName(req.Category)); err != nil {
		return nil, rejected("category", err)
	}

	users := v.uow.GetUserRepository(ctx)

	sender, err := users.GetByID(ctx, req.SenderID)
	if err != nil {
		if errs.IsUserNotFoundError(err) {
			return nil, rejected("sender lookup", errs.ErrSenderNotFound)
		}
		return nil, err
	}

	if !v.hasher.Compare(sender.PasswordHash, req.Password) {
		return nil, rejected("password", errs.ErrIncorrectPassword)
	}

	receiver, err := v.resolveReceiver(ctx, users, req.ReceiverIdentifier)
	if err != nil {
		if errors.Is(err, errs.ErrReceiverNotFound) {
			return nil, rejected("receiver lookup", err)
		}
		return nil, err
	}

	if sender.ID == receiver.ID {
		return nil, rejected("receiver", errs.ErrSelfTransfer)
	}

	if !sender.CanDeduct(amount) {
		return nil, rejected("balance", errs.NewInsufficientBalanceError(
			sender.ID, entity.AmountInCentsToString(amount), sender.GetBalance()))
	}

	return &checkedTransfer{sender: sender, receiver: receiver, amount: amount}, nil
}

func (v *Validator) validateAmount(amount string) (int64, error) {
	cents, err := entity.ParseAmount(amount)
	if err != nil {
		if errors.Is(err, errs.ErrNegativeAmount) {
			return 0, errs.ErrNonPositiveAmount
		}
		return 0, err
	}
	if cents <= 0 {
		return 0, errs.ErrNonPositiveAmount
	}
	return cents, nil
}

// resolveReceiver looks identifiers containing '@' up by UPI ID and everything else by phone
func (v *Validator) resolveReceiver(ctx context.Context, users persistence.UserRepository, identifier string) (*entity.User, error) {
	identifier = strings.TrimSpace(identifier)
	if identifier == "" {
		return nil, errs.ErrReceiverNotFound
	}

	var (
		receiver *entity.User
		err      error
	)
	if entity.IsUpiID(identifier) {
		receiver, err = users.GetByUpiID(ctx, identifier)
	} else {
		receiver, err = users.GetByPhone(ctx, identifier)
	}
	if err != nil {
		if errs.IsUserNotFoundError(err) {
			return nil, errs.ErrReceiverNotFound
		}
		return nil, err
	}
	return receiver, nil
}
