package service

import "context"

// MailSender delivers a rendered HTML email to a recipient. Delivery is
// best-effort from the core's perspective: callers dispatch it after the
// primary transaction commits and log failures instead of propagating them.
type MailSender interface {
	Send(ctx context.Context, to, subject, htmlBody string) error
}
