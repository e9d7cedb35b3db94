package model

import (
	"time"
)

// Transaction represents the database model for transfers
type Transaction struct {
	ID            string    `gorm:"primaryKey;type:uuid"`
	SenderID      string    `gorm:"type:uuid;not null;index"`
	ReceiverID    string    `gorm:"type:uuid;not null;index"`
	AmountInCents int64     `gorm:"not null;check:amount_in_cents > 0"`
	Category      string    `gorm:"not null;size:100"`
	Timestamp     time.Time `gorm:"not null;index"`

	Sender   User                 `gorm:"foreignKey:SenderID;references:ID"`
	Receiver User                 `gorm:"foreignKey:ReceiverID;references:ID"`
	Messages []TransactionMessage `gorm:"foreignKey:TransactionID;references:ID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the table name for Transaction
func (Transaction) TableName() string {
	return "transactions"
}

// TransactionMessage is a note attached to a transaction by one of its parties
type TransactionMessage struct {
	ID            string    `gorm:"primaryKey;type:uuid"`
	TransactionID string    `gorm:"type:uuid;not null;index"`
	SenderID      string    `gorm:"type:uuid;not null"`
	Text          string    `gorm:"type:text;not null"`
	Timestamp     time.Time `gorm:"not null"`
}

// TableName specifies the table name for TransactionMessage
func (TransactionMessage) TableName() string {
	return "transaction_messages"
}
