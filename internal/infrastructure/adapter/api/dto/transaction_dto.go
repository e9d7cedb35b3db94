package dto

import (
	"time"

	"github.com/paywise/paywise-api/internal/domain/entity"
)

// PartyResponse is the public summary of a sender or receiver
type PartyResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	UpiID string `json:"upiId"`
}

// MessageResponse is one note on a transaction thread
type MessageResponse struct {
	ID        string    `json:"id"`
	SenderID  string    `json:"senderId"`
	Text      string    `json:"text"`
	Timestamp time.Time `json:"timestamp"`
}

// TransactionResponse represents a ledger entry in API responses
type TransactionResponse struct {
	ID         string            `json:"id"`
	SenderID   string            `json:"senderId"`
	ReceiverID string            `json:"receiverId"`
	Amount     string            `json:"amount"`
	Category   string            `json:"category"`
	Timestamp  time.Time         `json:"timestamp"`
	Sender     *PartyResponse    `json:"sender,omitempty"`
	Receiver   *PartyResponse    `json:"receiver,omitempty"`
	Messages   []MessageResponse `json:"messages"`
}

// AddMessageRequest represents the API request for appending a transaction message
type AddMessageRequest struct {
	SenderID string `json:"senderId" binding:"required"`
	Message  string `json:"message" binding:"required"`
}

// SendRequest represents the API request for a money transfer
type SendRequest struct {
	SenderID           string `json:"senderId" binding:"required"`
	ReceiverIdentifier string `json:"receiverIdentifier" binding:"required"`
	Amount             Amount `json:"amount" binding:"required"`
	Password           string `json:"password" binding:"required"`
	Category           string `json:"category" binding:"max=100"`
}

// SendResponse represents the API response of a completed transfer.
// The limit fields are advisory; the transfer has already happened.
type SendResponse struct {
	Message          string              `json:"message"`
	Transaction      TransactionResponse `json:"transaction"`
	Category         string              `json:"category"`
	ExceedsLimit     bool                `json:"exceedsLimit"`
	ExceededCategory string              `json:"exceededCategory"`
	LimitSet         string              `json:"limitSet"`
	SpentOnCategory  string              `json:"spentOnCategory"`
}

// NewTransactionResponse maps a transaction entity to its API form
func NewTransactionResponse(t *entity.Transaction) TransactionResponse {
	resp := TransactionResponse{
		ID:         t.ID,
		SenderID:   t.SenderID,
		ReceiverID: t.ReceiverID,
		Amount:     t.Amount(),
		Category:   t.Category,
		Timestamp:  t.Timestamp,
		Sender:     newPartyResponse(t.Sender),
		Receiver:   newPartyResponse(t.Receiver),
		Messages:   make([]MessageResponse, 0, len(t.Messages)),
	}
	for _, m := range t.Messages {
		resp.Messages = append(resp.Messages, MessageResponse{
			ID:        m.ID,
			SenderID:  m.SenderID,
			Text:      m.Text,
			Timestamp: m.Timestamp,
		})
	}
	return resp
}

// NewTransactionList maps a history page; never nil
func NewTransactionList(txns []*entity.Transaction) []TransactionResponse {
	result := make([]TransactionResponse, 0, len(txns))
	for _, t := range txns {
		result = append(result, NewTransactionResponse(t))
	}
	return result
}

func newPartyResponse(p *entity.Party) *PartyResponse {
	if p == nil {
		return nil
	}
	return &PartyResponse{ID: p.ID, Name: p.Name, UpiID: p.UpiID}
}
