package submission

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/kashfr/heart-and-soul-healthcare-v2/internal/channel"
	"github.com/kashfr/heart-and-soul-healthcare-v2/internal/pkg/validator"
)

// Service fans one validated submission out to the record store and the
// three delivery channels. Steps run sequentially: persist, then email,
// then the best-effort ledger and task channels. Only persistence and
// email failures reach the submitter.
type Service struct {
	store  Store
	email  EmailSender
	ledger LedgerAppender
	tasks  TaskCreator
	log    *zap.Logger
}

// NewService creates submission service
func NewService(store Store, email EmailSender, ledger LedgerAppender, tasks TaskCreator, log *zap.Logger) *Service {
	return &Service{
		store:  store,
		email:  email,
		ledger: ledger,
		tasks:  tasks,
		log:    log,
	}
}

// ProcessContact handles one contact-form submission end to end.
func (s *Service) ProcessContact(ctx context.Context, req *ContactRequest) (*Receipt, error) {
	// Required fields are checked client-side and in the handler; this is
	// the last gate before side effects.
	if errs := validator.Validate(req); errs != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, errs)
	}

	payload, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("%w: encode payload: %v", ErrPersistence, err)
	}
	sub := &ContactSubmission{
		ID:          uuid.NewString(),
		Name:        req.Name,
		Email:       req.Email,
		Phone:       req.Phone,
		Subject:     req.Subject,
		Message:     req.Message,
		Payload:     payload,
		Status:      StatusNew,
		SubmittedAt: time.Now().UTC(),
	}

	if err := s.store.CreateContact(ctx, sub); err != nil {
		s.log.Error("contact submission not persisted", zap.Error(err))
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}

	sent := s.email.SendContact(ctx, sub)
	if sent.Status != channel.StatusOK {
		// The record is already saved; log its id so staff can reconcile
		// the unnotified submission by hand.
		s.log.Error("contact notification failed",
			zap.String("submission_id", sub.ID),
			zap.String("status", string(sent.Status)),
			zap.String("reason", sent.Reason))
		return nil, fmt.Errorf("%w: %s", ErrNotification, sent.Reason)
	}

	s.bestEffort(ctx, "ledger", sub.ID, s.ledger.AppendRow(ctx, ContactSheet, contactRow(sub)))
	s.bestEffort(ctx, "tasks", sub.ID, s.tasks.CreateContactTask(ctx, sub))

	return &Receipt{SubmissionID: sub.ID, MessageID: sent.Ref}, nil
}

// ProcessReferral handles one client-referral submission end to end.
func (s *Service) ProcessReferral(ctx context.Context, req *ReferralRequest) (*Receipt, error) {
	if req.Details.Urgency == "" {
		req.Details.Urgency = UrgencyStandard
	}
	if req.Client.State == "" {
		req.Client.State = DefaultClientState
	}

	if errs := validator.Validate(req); errs != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, errs)
	}

	payload, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("%w: encode payload: %v", ErrPersistence, err)
	}
	sub := &ReferralSubmission{
		ID:          uuid.NewString(),
		Client:      Client(req.Client),
		Program:     Program(req.Program),
		Referrer:    Referrer(req.Referrer),
		Details:     Details(req.Details),
		Payload:     payload,
		Status:      StatusNew,
		SubmittedAt: time.Now().UTC(),
	}

	if err := s.store.CreateReferral(ctx, sub); err != nil {
		s.log.Error("referral submission not persisted", zap.Error(err))
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}

	sent := s.email.SendReferral(ctx, sub)
	if sent.Status != channel.StatusOK {
		s.log.Error("referral notification failed",
			zap.String("submission_id", sub.ID),
			zap.String("status", string(sent.Status)),
			zap.String("reason", sent.Reason))
		return nil, fmt.Errorf("%w: %s", ErrNotification, sent.Reason)
	}

	s.bestEffort(ctx, "ledger", sub.ID, s.ledger.AppendRow(ctx, ReferralSheet, referralRow(sub)))
	s.bestEffort(ctx, "tasks", sub.ID, s.tasks.CreateReferralTask(ctx, sub))

	return &Receipt{SubmissionID: sub.ID, MessageID: sent.Ref}, nil
}

// bestEffort logs a non-fatal channel outcome. Failures and skips never
// reach the submitter; there is no retry queue, a failed channel is
// abandoned for that submission.
func (s *Service) bestEffort(_ context.Context, name, subID string, res channel.Result) {
	switch res.Status {
	case channel.StatusFailed:
		s.log.Warn("best-effort channel failed",
			zap.String("channel", name),
			zap.String("submission_id", subID),
			zap.String("reason", res.Reason))
	case channel.StatusSkipped:
		s.log.Warn("channel not configured, skipping",
			zap.String("channel", name),
			zap.String("submission_id", subID),
			zap.String("reason", res.Reason))
	}
}
