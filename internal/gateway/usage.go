// internal/gateway/usage.go
package gateway

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// UsageEvent is one billable pipeline invocation.
type UsageEvent struct {
	UserID           string
	Endpoint         string
	Model            string
	PromptTokens     int
	CompletionTokens int
	CostUSD          float64
	Status           string
	RequestID        string
	Metadata         map[string]interface{}
}

// UsageStore persists usage events to Postgres.
type UsageStore struct {
	db *sql.DB
}

func NewUsageStore(db *sql.DB) *UsageStore {
	return &UsageStore{db: db}
}

const insertUsageEvent = `
	INSERT INTO usage_events
		(id, user_id, endpoint, model, prompt_tokens, completion_tokens,
		 total_tokens, cost_usd, status, request_id, metadata, created_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`

// Record inserts one usage row.
func (s *UsageStore) Record(ctx context.Context, ev UsageEvent) error {
	metadata, err := json.Marshal(ev.Metadata)
	if err != nil {
		metadata = []byte("{}")
	}

	_, err = s.db.ExecContext(ctx, insertUsageEvent,
		uuid.NewString(),
		ev.UserID,
		ev.Endpoint,
		ev.Model,
		ev.PromptTokens,
		ev.CompletionTokens,
		ev.PromptTokens+ev.CompletionTokens,
		ev.CostUSD,
		ev.Status,
		ev.RequestID,
		metadata,
		time.Now().UTC(),
	)
	return err
}
