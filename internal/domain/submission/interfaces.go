package submission

import (
	"context"

	"github.com/kashfr/heart-and-soul-healthcare-v2/internal/channel"
)

// Store persists accepted submissions. Records are write-only: nothing in
// this service updates or deletes them afterwards.
type Store interface {
	CreateContact(ctx context.Context, sub *ContactSubmission) error
	CreateReferral(ctx context.Context, sub *ReferralSubmission) error
}

// EmailSender is the staff notification channel. It is the only channel
// whose failure the service treats as fatal.
type EmailSender interface {
	SendContact(ctx context.Context, sub *ContactSubmission) channel.Result
	SendReferral(ctx context.Context, sub *ReferralSubmission) channel.Result
}

// LedgerAppender mirrors submissions into the staff spreadsheet, one row
// per submission, creating the sheet and header on first use.
type LedgerAppender interface {
	AppendRow(ctx context.Context, sheetName string, row channel.Row) channel.Result
}

// TaskCreator files a triage task in the work tracker.
type TaskCreator interface {
	CreateContactTask(ctx context.Context, sub *ContactSubmission) channel.Result
	CreateReferralTask(ctx context.Context, sub *ReferralSubmission) channel.Result
}
