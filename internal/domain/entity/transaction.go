package entity

import (
	"strings"
	"time"

	errs "github.com/paywise/paywise-api/internal/domain/error"
	tport "github.com/paywise/paywise-api/internal/domain/port/core"
)

// Party is the public summary of a transaction participant
type Party struct {
	ID    string
	Name  string
	UpiID string
}

// Message is a note appended to a transaction by one of its parties
type Message struct {
	ID        string
	SenderID  string
	Text      string
	Timestamp time.Time
}

// Transaction is an immutable record of a transfer; only messages are appended later
type Transaction struct {
	ID            string
	SenderID      string
	ReceiverID    string
	AmountInCents int64
	Category      string
	Timestamp     time.Time
	Messages      []Message

	// Sender and Receiver are filled when the record is loaded for display
	Sender   *Party
	Receiver *Party
}

// NewTransaction creates a transfer record with basic validation
func NewTransaction(
	id string,
	senderID string,
	receiverID string,
	amountInCents int64,
	category string,
	timeProvider tport.TimeProvider,
) (*Transaction, error) {
	if senderID == "" || receiverID == "" {
		return nil, errs.ErrInvalidUserID
	}
	if senderID == receiverID {
		return nil, errs.ErrSelfTransfer
	}
	if amountInCents <= 0 {
		return nil, errs.ErrNonPositiveAmount
	}
	category = NormalizeCategoryName(category)
	if err := ValidateCategoryName(category); err != nil {
		return nil, err
	}

	return &Transaction{
		ID:            id,
		SenderID:      senderID,
		ReceiverID:    receiverID,
		AmountInCents: amountInCents,
		Category:      category,
		Timestamp:     timeProvider.Now(),
	}, nil
}

// Amount returns the amount as a string with 2 decimal places
func (t *Transaction) Amount() string {
	return AmountInCentsToString(t.AmountInCents)
}

// Involves reports whether userID is the sender or the receiver
func (t *Transaction) Involves(userID string) bool {
	return t.SenderID == userID || t.ReceiverID == userID
}

// NewMessage builds a message for the transaction, rejecting blank text
func NewMessage(id, senderID, text string, timeProvider tport.TimeProvider) (*Message, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, errs.ErrEmptyMessage
	}
	return &Message{
		ID:        id,
		SenderID:  senderID,
		Text:      text,
		Timestamp: timeProvider.Now(),
	}, nil
}
