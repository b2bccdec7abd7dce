package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"

	"github.com/abdul977/lodgebooker/internal/domain"
)

type OutboxRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewOutboxRepo(db *dbpg.DB) *OutboxRepository {
	return &OutboxRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *OutboxRepository) Enqueue(ctx context.Context, m *domain.EmailMessage) error {
	query := `INSERT INTO email_messages (id, template, recipient, subject, body, status, error, created_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		m.ID, m.Template, m.Recipient, m.Subject, m.Body, m.Status, m.Error, m.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("enqueue email: %w", err)
	}

	return nil
}

func (r *OutboxRepository) ListPending(ctx context.Context, limit int) ([]*domain.EmailMessage, error) {
	query := `SELECT id, template, recipient, subject, body, status, error, created_at, sent_at
			  FROM email_messages
			  WHERE status = $1
			  ORDER BY created_at ASC
			  LIMIT $2`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, domain.EmailStatusPending, limit)
	if err != nil {
		return nil, fmt.Errorf("list pending emails: %w", err)
	}
	defer rows.Close()

	var res []*domain.EmailMessage
	for rows.Next() {
		var m domain.EmailMessage
		if err = rows.Scan(
			&m.ID, &m.Template, &m.Recipient, &m.Subject, &m.Body,
			&m.Status, &m.Error, &m.CreatedAt, &m.SentAt,
		); err != nil {
			return nil, fmt.Errorf("scan email: %w", err)
		}
		res = append(res, &m)
	}

	return res, rows.Err()
}

func (r *OutboxRepository) MarkSent(ctx context.Context, id string, at time.Time) error {
	query := `UPDATE email_messages SET status = $2, sent_at = $3 WHERE id = $1`
	if _, err := r.db.ExecWithRetry(ctx, r.strategy, query, id, domain.EmailStatusSent, at); err != nil {
		return fmt.Errorf("mark email sent: %w", err)
	}

	return nil
}

func (r *OutboxRepository) MarkFailed(ctx context.Context, id, errMsg string) error {
	query := `UPDATE email_messages SET status = $2, error = $3 WHERE id = $1`
	if _, err := r.db.ExecWithRetry(ctx, r.strategy, query, id, domain.EmailStatusFailed, errMsg); err != nil {
		return fmt.Errorf("mark email failed: %w", err)
	}

	return nil
}
