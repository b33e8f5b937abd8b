package repository

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/google/uuid"

	"unihub/internal/infra/db"
)

// AuditEntry captures who did what. Entries are written best-effort: a
// failed insert is logged and swallowed so it never fails the request.
type AuditEntry struct {
	UserID         *uuid.UUID
	Action         string
	Resource       string
	RequestID      string
	IdempotencyKey string
	Metadata       map[string]any
	IPAddress      string
	UserAgent      string
}

type AuditRepository struct{}

func NewAuditRepository() *AuditRepository {
	return &AuditRepository{}
}

func (r *AuditRepository) Write(ctx context.Context, dbtx db.DBTX, entry AuditEntry) {
	metadataJSON, err := json.Marshal(orEmptyMap(entry.Metadata))
	if err != nil {
		slog.Warn("failed to encode audit metadata", "action", entry.Action, "error", err)
		metadataJSON = []byte(`{}`)
	}

	_, err = dbtx.Exec(ctx, `
		INSERT INTO audit_log_entries
			(id, user_id, action, resource, request_id, idempotency_key, metadata, ip_address, user_agent)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		uuid.New(), entry.UserID, entry.Action, entry.Resource,
		entry.RequestID, entry.IdempotencyKey, metadataJSON,
		entry.IPAddress, entry.UserAgent)
	if err != nil {
		slog.Warn("failed to write audit entry", "action", entry.Action, "error", err)
	}
}
