// Package channel defines the shared outcome type for the side-effect
// channels a submission fans out to (email, spreadsheet ledger, task
// tracker). Channels report what happened; the submission service alone
// decides which failures are fatal.
package channel

// Status classifies a channel invocation.
type Status string

const (
	// StatusOK means the channel delivered.
	StatusOK Status = "ok"
	// StatusSkipped means the channel is not configured and did nothing.
	StatusSkipped Status = "skipped"
	// StatusFailed means the channel attempted delivery and failed.
	StatusFailed Status = "failed"
)

// Result is the uniform outcome of one channel invocation.
type Result struct {
	Status Status
	// Ref is a provider-assigned reference (e.g. message id) on success.
	Ref string
	// Reason describes a skip or failure.
	Reason string
}

// OK returns a successful result carrying a provider reference.
func OK(ref string) Result {
	return Result{Status: StatusOK, Ref: ref}
}

// Skipped returns a result for an unconfigured channel.
func Skipped(reason string) Result {
	return Result{Status: StatusSkipped, Reason: reason}
}

// Failed returns a result for a delivery failure.
func Failed(err error) Result {
	r := Result{Status: StatusFailed}
	if err != nil {
		r.Reason = err.Error()
	}
	return r
}
