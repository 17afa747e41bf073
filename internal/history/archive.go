package history

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"go.uber.org/zap"

	"github.com/DehBarca/ordernotify/internal/domain/channel"
	"github.com/DehBarca/ordernotify/internal/domain/entity"
)

// Archive persists dispatch outcomes to SQLite so history survives
// restarts. It is wired as a dispatch listener in the server binary;
// the in-memory Log remains the source the API reads from.
type Archive struct {
	db     *sql.DB
	logger *zap.Logger
}

// NewArchive creates a new history archive
func NewArchive(db *sql.DB, logger *zap.Logger) *Archive {
	return &Archive{
		db:     db,
		logger: logger,
	}
}

// Update implements the dispatch listener capability
func (a *Archive) Update(result *entity.NotificationResult) {
	if err := a.Save(result); err != nil {
		a.logger.Error("Failed to archive dispatch result",
			zap.String("order_id", result.OrderID),
			zap.String("kind", result.Kind.String()),
			zap.Error(err))
	}
}

// Save inserts one dispatch outcome
func (a *Archive) Save(result *entity.NotificationResult) error {
	query := `
		INSERT INTO dispatch_history (
			order_id, kind, recipient, message, status, error_message, parts, created_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`

	var parts interface{}
	if len(result.Parts) > 0 {
		data, err := json.Marshal(result.Parts)
		if err != nil {
			return fmt.Errorf("marshal parts: %w", err)
		}
		parts = string(data)
	}

	_, err := a.db.Exec(query,
		result.OrderID,
		result.Kind.String(),
		result.Recipient,
		result.Message,
		string(result.Status),
		result.Error,
		parts,
		result.Timestamp,
	)
	if err != nil {
		return fmt.Errorf("insert dispatch history: %w", err)
	}

	return nil
}

// Recent returns up to limit outcomes, newest first
func (a *Archive) Recent(limit int) ([]*entity.NotificationResult, error) {
	query := `
		SELECT order_id, kind, recipient, message, status, error_message, parts, created_at
		FROM dispatch_history
		ORDER BY created_at DESC, id DESC
		LIMIT ?
	`

	rows, err := a.db.Query(query, limit)
	if err != nil {
		return nil, fmt.Errorf("query dispatch history: %w", err)
	}
	defer rows.Close()

	var results []*entity.NotificationResult
	for rows.Next() {
		var r entity.NotificationResult
		var kind string
		var errorMsg sql.NullString
		var parts sql.NullString

		if err := rows.Scan(
			&r.OrderID,
			&kind,
			&r.Recipient,
			&r.Message,
			&r.Status,
			&errorMsg,
			&parts,
			&r.Timestamp,
		); err != nil {
			return nil, fmt.Errorf("scan dispatch history: %w", err)
		}

		r.Kind = channel.Kind(kind)
		if errorMsg.Valid {
			r.Error = errorMsg.String
		}
		if parts.Valid && parts.String != "" {
			if err := json.Unmarshal([]byte(parts.String), &r.Parts); err != nil {
				return nil, fmt.Errorf("unmarshal parts: %w", err)
			}
		}

		results = append(results, &r)
	}

	return results, rows.Err()
}
