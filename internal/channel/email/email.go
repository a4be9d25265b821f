// Package email sends the staff notification for each submission through
// Resend. Unlike the ledger and task channels it cannot degrade: a missing
// API key or a provider error is reported as a failure and the submission
// service treats that as fatal.
package email

import (
	"context"
	"errors"

	"github.com/resend/resend-go/v2"
	"go.uber.org/zap"

	"github.com/kashfr/heart-and-soul-healthcare-v2/internal/channel"
	"github.com/kashfr/heart-and-soul-healthcare-v2/internal/domain/submission"
)

// Config holds the Resend credentials and the fixed addresses. From and To
// never vary per submission; reply-to is taken from the submitter.
type Config struct {
	APIKey string
	// From is the verified sender address.
	From string
	// To is the staff inbox that receives every notification.
	To string
}

// Configured reports whether the channel can send at all. Checked at
// startup: an unconfigured email channel is a fatal condition.
func (c Config) Configured() bool {
	return c.APIKey != "" && c.From != "" && c.To != ""
}

// Sender delivers submission notifications via Resend.
type Sender struct {
	cfg Config
	log *zap.Logger

	// deliver performs the actual send and returns the provider's
	// message id. Swapped in tests.
	deliver func(ctx context.Context, req *resend.SendEmailRequest) (string, error)
}

// NewSender creates the email channel.
func NewSender(cfg Config, log *zap.Logger) *Sender {
	client := resend.NewClient(cfg.APIKey)
	return &Sender{
		cfg: cfg,
		log: log,
		deliver: func(ctx context.Context, req *resend.SendEmailRequest) (string, error) {
			sent, err := client.Emails.SendWithContext(ctx, req)
			if err != nil {
				return "", err
			}
			return sent.Id, nil
		},
	}
}

// SendContact emails a contact submission to staff, reply-to set to the
// submitter so staff can answer directly.
func (s *Sender) SendContact(ctx context.Context, sub *submission.ContactSubmission) channel.Result {
	return s.send(ctx, &resend.SendEmailRequest{
		From:    s.cfg.From,
		To:      []string{s.cfg.To},
		ReplyTo: sub.Email,
		Subject: "New Contact Form Submission: " + sub.Subject,
		Html:    contactBody(sub),
	})
}

// SendReferral emails a referral submission to staff, reply-to set to the
// referrer when one was given.
func (s *Sender) SendReferral(ctx context.Context, sub *submission.ReferralSubmission) channel.Result {
	return s.send(ctx, &resend.SendEmailRequest{
		From:    s.cfg.From,
		To:      []string{s.cfg.To},
		ReplyTo: sub.Referrer.Email,
		Subject: "New Client Referral: " + sub.Client.FullName(),
		Html:    referralBody(sub),
	})
}

func (s *Sender) send(ctx context.Context, req *resend.SendEmailRequest) channel.Result {
	if !s.cfg.Configured() {
		return channel.Failed(errors.New("email credentials are not configured"))
	}

	id, err := s.deliver(ctx, req)
	if err != nil {
		return channel.Failed(err)
	}

	s.log.Info("notification email sent", zap.String("message_id", id))
	return channel.OK(id)
}
