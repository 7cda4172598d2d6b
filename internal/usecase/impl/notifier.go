// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"ayurfresh/config"
	"ayurfresh/internal/domain/service"

	"go.uber.org/fx"
)

const notifyTimeout = 15 * time.Second

// notifier dispatches transactional mail and SMS after the surrounding
// database transaction has committed. Delivery is fire-and-forget: failures
// are logged, never propagated, so a flaky provider cannot roll back or fail
// an already-persisted state change.
type notifier struct {
	mail    service.MailSender
	sms     service.SMSSender
	baseURL string
	logger  *slog.Logger
}

// NotifierParams holds dependencies for the notifier, injected by Fx.
type NotifierParams struct {
	fx.In

	Mail   service.MailSender
	SMS    service.SMSSender
	Config *config.Config
	Logger *slog.Logger
}

// NewNotifier is the constructor for the notification dispatcher.
func NewNotifier(params NotifierParams) *notifier {
	baseURL := ""
	if params.Config != nil {
		baseURL = params.Config.App.BaseURL
	}

	return &notifier{
		mail:    params.Mail,
		sms:     params.SMS,
		baseURL: baseURL,
		logger:  params.Logger,
	}
}

// dispatch runs fn on its own goroutine with a fresh deadline, detached from
// the request context so an early client disconnect does not cancel delivery.
func (n *notifier) dispatch(kind, recipient string, fn func(ctx context.Context) error) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), notifyTimeout)
		defer cancel()

		if err := fn(ctx); err != nil {
			n.logger.Error("Notification delivery failed",
				slog.String("kind", kind),
				slog.String("recipient", recipient),
				slog.Any("error", err))

			return
		}
		n.logger.Debug("Notification delivered",
			slog.String("kind", kind),
			slog.String("recipient", recipient))
	}()
}

// SendVerificationMail mails the email-verification link.
func (n *notifier) SendVerificationMail(email, name, token string) {
	link := fmt.Sprintf("%s/verify-email?email=%s&token=%s", n.baseURL, email, token)
	body := fmt.Sprintf(
		`<p>Hi %s,</p>
<p>Welcome to Ayurfresh! Please confirm your email address by clicking the link below:</p>
<p><a href="%s">Verify my email</a></p>
<p>If you did not create an account, you can safely ignore this mail.</p>`,
		name, link)

	n.dispatch("email_verification", email, func(ctx context.Context) error {
		return n.mail.Send(ctx, email, "Verify your Ayurfresh account", body)
	})
}

// SendPasswordResetMail mails the password-reset link. The link expires with
// the token.
func (n *notifier) SendPasswordResetMail(email, name, token string) {
	link := fmt.Sprintf("%s/reset-password?email=%s&token=%s", n.baseURL, email, token)
	body := fmt.Sprintf(
		`<p>Hi %s,</p>
<p>We received a request to reset your password. Click the link below to choose a new one:</p>
<p><a href="%s">Reset my password</a></p>
<p>The link is valid for 30 minutes and can be used once. If you did not request this, ignore this mail.</p>`,
		name, link)

	n.dispatch("password_reset", email, func(ctx context.Context) error {
		return n.mail.Send(ctx, email, "Reset your Ayurfresh password", body)
	})
}

// SendPasswordChangedMail tells the account holder their password changed,
// so a hijacked change does not go unnoticed.
func (n *notifier) SendPasswordChangedMail(email, name string) {
	body := fmt.Sprintf(
		`<p>Hi %s,</p>
<p>Your Ayurfresh account password was just changed.</p>
<p>If this was not you, reset your password immediately and contact support.</p>`,
		name)

	n.dispatch("password_changed", email, func(ctx context.Context) error {
		return n.mail.Send(ctx, email, "Your Ayurfresh password was changed", body)
	})
}

// SendOTP texts the phone-verification code along with its validity window.
func (n *notifier) SendOTP(phone, otp string, expiresIn time.Duration) {
	minutes := int(expiresIn.Round(time.Minute) / time.Minute)
	if minutes < 1 {
		minutes = 1
	}
	window := fmt.Sprintf("%d minutes", minutes)
	if minutes == 1 {
		window = "1 minute"
	}
	message := fmt.Sprintf("%s is your Ayurfresh verification code. It expires in %s.", otp, window)

	n.dispatch("phone_otp", phone, func(ctx context.Context) error {
		messageID, err := n.sms.Send(ctx, phone, message)
		if err != nil {
			return err
		}
		n.logger.Debug("OTP SMS accepted by provider", slog.String("messageID", messageID))

		return nil
	})
}
