package ports

import (
	"context"

	"github.com/abdul977/lodgebooker/internal/domain"
)

// Notifier renders a template and records the message for delivery.
// Enqueue failures must be treated as non-fatal by callers: notification
// is best-effort and never rolls back the action that triggered it.
type Notifier interface {
	Enqueue(ctx context.Context, template domain.EmailTemplate, recipient string, data domain.EmailData) error
}
