package syncx

import (
	"context"
	"database/sql"
	"log"
	"time"
)

// Event types appended by the stores.
const (
	TestCreated      = "TestCreated"
	AttemptSubmitted = "AttemptSubmitted"
)

type Event struct {
	Offset    int64
	Type      string
	Key       string // natural key: test or attempt ID
	DataJSON  string
	CreatedAt int64
}

// EventRepo is an append-only audit log. Appends are best-effort: a failure
// is logged and never propagated, so an audit hiccup cannot fail a request.
type EventRepo struct{ db *sql.DB }

func NewEventRepo(db *sql.DB) *EventRepo { return &EventRepo{db: db} }

func (r *EventRepo) Append(ctx context.Context, e Event) {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO event_log (typ, key, data, created_at) VALUES ($1,$2,$3,$4)`,
		e.Type, e.Key, e.DataJSON, time.Now().Unix())
	if err != nil {
		log.Printf("event log append failed (%s %s): %v", e.Type, e.Key, err)
	}
}
