package repository

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestErrorClassifier_Classify(t *testing.T) {
	c := NewErrorClassifier()

	tests := []struct {
		name string
		err  error
		want ErrorType
	}{
		{name: "Nil", err: nil, want: ""},
		{name: "Unique violation", err: &pgconn.PgError{Code: "23505"}, want: DuplicateKeyError},
		{name: "Wrapped unique violation", err: fmt.Errorf("insert: %w", &pgconn.PgError{Code: "23505"}), want: DuplicateKeyError},
		{name: "Foreign key", err: &pgconn.PgError{Code: "23503"}, want: ForeignKeyError},
		{name: "Check", err: &pgconn.PgError{Code: "23514"}, want: ConstraintError},
		{name: "Deadlock", err: &pgconn.PgError{Code: "40P01"}, want: LockError},
		{name: "Serialization", err: &pgconn.PgError{Code: "40001"}, want: LockError},
		{name: "Connection class", err: &pgconn.PgError{Code: "08006"}, want: ConnectionError},
		{name: "Value too long", err: &pgconn.PgError{Code: "22001"}, want: InvalidDataError},
		{name: "Malformed uuid", err: &pgconn.PgError{Code: "22P02"}, want: InvalidDataError},
		{name: "Unknown SQLSTATE", err: &pgconn.PgError{Code: "42601"}, want: ""},
		{name: "Message duplicate", err: errors.New("ERROR: duplicate key value violates unique constraint"), want: DuplicateKeyError},
		{name: "Message deadlock", err: errors.New("deadlock detected"), want: LockError},
		{name: "Message connection", err: errors.New("dial tcp: connection refused"), want: ConnectionError},
		{name: "Message constraint", err: errors.New("violates check constraint"), want: ConstraintError},
		{name: "Unrelated", err: errors.New("boom"), want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, c.Classify(tt.err))
		})
	}
}

func TestErrorClassifier_ConstraintName(t *testing.T) {
	c := NewErrorClassifier()

	assert.Equal(t, "idx_users_phone", c.ConstraintName(&pgconn.PgError{Code: "23505", ConstraintName: "idx_users_phone"}))
	assert.Empty(t, c.ConstraintName(errors.New("plain")))
}
