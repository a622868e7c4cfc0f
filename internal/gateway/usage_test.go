// internal/gateway/usage_test.go
package gateway

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUsageStore_Record(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec("INSERT INTO usage_events").
		WithArgs(
			sqlmock.AnyArg(), // id
			"user-1",
			"/v1/apply",
			"stub",
			12, 34, 46,
			0.0,
			"success",
			"req-1",
			sqlmock.AnyArg(), // metadata
			sqlmock.AnyArg(), // created_at
		).
		WillReturnResult(sqlmock.NewResult(0, 1))

	store := NewUsageStore(db)
	err = store.Record(context.Background(), UsageEvent{
		UserID:           "user-1",
		Endpoint:         "/v1/apply",
		Model:            "stub",
		PromptTokens:     12,
		CompletionTokens: 34,
		Status:           "success",
		RequestID:        "req-1",
		Metadata:         map[string]interface{}{"company_domain": "acme.com"},
	})

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUsageStore_RecordPropagatesInsertError(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec("INSERT INTO usage_events").
		WillReturnError(errors.New("connection reset"))

	store := NewUsageStore(db)
	err = store.Record(context.Background(), UsageEvent{UserID: "user-1"})

	assert.Error(t, err)
}
