package migration

import (
	"context"

	coreport "github.com/paywise/paywise-api/internal/domain/port/core"
	"gorm.io/gorm"
)

// IndexManager creates the PostgreSQL indexes the ledger queries rely on
type IndexManager struct {
	db     *gorm.DB
	logger coreport.Logger
}

// NewIndexManager creates a new index manager
func NewIndexManager(db *gorm.DB, logger coreport.Logger) *IndexManager {
	return &IndexManager{
		db:     db,
		logger: logger,
	}
}

var ledgerIndexes = []struct {
	name string
	sql  string
}{
	{
		// history lookups, newest first
		name: "idx_transactions_sender_timestamp",
		sql:  `CREATE INDEX IF NOT EXISTS idx_transactions_sender_timestamp ON transactions (sender_id, "timestamp" DESC)`,
	},
	{
		name: "idx_transactions_receiver_timestamp",
		sql:  `CREATE INDEX IF NOT EXISTS idx_transactions_receiver_timestamp ON transactions (receiver_id, "timestamp" DESC)`,
	},
	{
		// monthly spending groups the sender's rows by category
		name: "idx_transactions_sender_category",
		sql:  `CREATE INDEX IF NOT EXISTS idx_transactions_sender_category ON transactions (sender_id, category) INCLUDE (amount_in_cents, "timestamp")`,
	},
	{
		name: "idx_transaction_messages_thread",
		sql:  `CREATE INDEX IF NOT EXISTS idx_transaction_messages_thread ON transaction_messages (transaction_id, "timestamp")`,
	},
}

// CreateIndexes creates every ledger index that does not exist yet
func (m *IndexManager) CreateIndexes(ctx context.Context) error {
	m.logger.Info("Creating ledger indexes", nil)

	db := m.db.WithContext(ctx)
	for _, idx := range ledgerIndexes {
		if err := db.Exec(idx.sql).Error; err != nil {
			m.logger.Error("Failed to create index", map[string]any{
				"index": idx.name,
				"error": err.Error(),
			})
			return err
		}
	}

	// not critical, the planner copes without it
	if err := db.Exec(`ALTER TABLE transactions ALTER COLUMN sender_id SET STATISTICS 1000`).Error; err != nil {
		m.logger.Warn("Failed to set statistics target for sender_id", map[string]any{
			"error": err.Error(),
		})
	}

	return nil
}
