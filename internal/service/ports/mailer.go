package ports

import "context"

type Mailer interface {
	Send(ctx context.Context, recipient, subject, body string) error
}
