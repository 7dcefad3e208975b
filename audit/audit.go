// Package audit is the write-only log sink for engine operations. Appends are
// fire-and-forget: a failed insert is logged and dropped, never surfaced to
// the operation that produced it.
package audit

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Entry is one audit record.
type Entry struct {
	Action  string
	Actor   string
	Details map[string]interface{}
}

// Sink appends entries to the audit_log table.
type Sink struct {
	DB *pgxpool.Pool
}

func NewSink(db *pgxpool.Pool) *Sink {
	return &Sink{DB: db}
}

// Append writes one entry. It never returns an error; persistence is best
// effort by contract.
func (s *Sink) Append(ctx context.Context, e Entry) {
	if s == nil || s.DB == nil {
		return
	}

	details, err := json.Marshal(e.Details)
	if err != nil {
		log.Printf("Audit: failed to encode details for %s: %v", e.Action, err)
		details = []byte("{}")
	}

	_, err = s.DB.Exec(ctx, `
		INSERT INTO audit_log (id, action, actor, details, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`, uuid.NewString(), e.Action, e.Actor, details, time.Now())
	if err != nil {
		log.Printf("Audit: failed to append %s entry: %v", e.Action, err)
	}
}
