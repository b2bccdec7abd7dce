package notification

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/logger"

	"github.com/abdul977/lodgebooker/internal/domain"
	"github.com/abdul977/lodgebooker/internal/service/ports"
)

// OutboxNotifier renders a template and writes the message into the
// outbox as a pending row. Actual delivery happens later in the
// dispatcher; the enqueue itself is the only thing a business flow
// waits on.
type OutboxNotifier struct {
	outbox ports.OutboxRepo
	log    logger.Logger
}

func NewOutboxNotifier(outbox ports.OutboxRepo, log logger.Logger) *OutboxNotifier {
	return &OutboxNotifier{outbox: outbox, log: log}
}

func (n *OutboxNotifier) Enqueue(ctx context.Context, template domain.EmailTemplate, recipient string, data domain.EmailData) error {
	subject, body, err := Render(template, data)
	if err != nil {
		return fmt.Errorf("render email: %w", err)
	}

	msg := &domain.EmailMessage{
		ID:        uuid.New().String(),
		Template:  template,
		Recipient: recipient,
		Subject:   subject,
		Body:      body,
		Status:    domain.EmailStatusPending,
		CreatedAt: time.Now().UTC(),
	}

	if err := n.outbox.Enqueue(ctx, msg); err != nil {
		return fmt.Errorf("enqueue email: %w", err)
	}

	n.log.LogAttrs(ctx, logger.DebugLevel, "email enqueued",
		logger.String("template", string(template)),
		logger.String("recipient", recipient),
	)

	return nil
}
