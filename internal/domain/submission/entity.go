package submission

import (
	"time"

	"gorm.io/datatypes"
)

// Status represents submission status. Submissions are write-only records:
// this service only ever creates them as StatusNew, lifecycle beyond that
// lives in downstream staff tooling.
type Status string

const (
	StatusNew Status = "new"
)

// Program interest codes offered on the referral form.
const (
	ProgramGAPP       = "gapp"
	ProgramNowComp    = "now-comp"
	ProgramICWP       = "icwp"
	ProgramEDWP       = "edwp"
	ProgramPrivatePay = "private-pay"
	ProgramOther      = "other"
)

// Referral source codes offered on the referral form.
const (
	SourceHospital    = "hospital"
	SourcePhysician   = "physician"
	SourceCaseManager = "case-manager"
	SourceFamily      = "family"
	SourceSelf        = "self"
	SourceOther       = "other"
)

// Urgency levels for a referral.
const (
	UrgencyStandard  = "standard"
	UrgencyUrgent    = "urgent"
	UrgencyImmediate = "immediate"
)

// DefaultClientState is pre-filled on the referral form; the agency only
// serves Georgia.
const DefaultClientState = "GA"

// ContactSubmission is one contact-form record.
type ContactSubmission struct {
	ID string `gorm:"primaryKey;size:36" json:"id"`

	Name    string `gorm:"size:255" json:"name"`
	Email   string `gorm:"size:255" json:"email"`
	Phone   string `gorm:"size:64" json:"phone,omitempty"`
	Subject string `gorm:"size:255" json:"subject"`
	Message string `gorm:"type:text" json:"message"`

	// Payload keeps the submitted form body verbatim, document-store style.
	Payload datatypes.JSON `gorm:"type:json" json:"-"`

	Status      Status    `gorm:"size:32" json:"status"`
	SubmittedAt time.Time `json:"submitted_at"`
}

// TableName overrides the gorm default
func (ContactSubmission) TableName() string { return "contact_submissions" }

// Client is the referred person.
type Client struct {
	FirstName string `gorm:"size:128" json:"first_name"`
	LastName  string `gorm:"size:128" json:"last_name"`
	DOB       string `gorm:"size:32" json:"dob"`
	Phone     string `gorm:"size:64" json:"phone"`
	Email     string `gorm:"size:255" json:"email,omitempty"`
	Address   string `gorm:"size:255" json:"address,omitempty"`
	City      string `gorm:"size:128" json:"city,omitempty"`
	State     string `gorm:"size:8" json:"state,omitempty"`
	Zip       string `gorm:"size:16" json:"zip,omitempty"`
}

// FullName joins first and last name for email bodies, ledger rows and
// task titles.
func (c Client) FullName() string {
	return c.FirstName + " " + c.LastName
}

// Program captures program interest and insurance details.
type Program struct {
	Interest          string `gorm:"size:32" json:"interest"`
	MedicaidNumber    string `gorm:"size:64" json:"medicaid_number,omitempty"`
	InsuranceProvider string `gorm:"size:128" json:"insurance_provider,omitempty"`
	InsuranceNumber   string `gorm:"size:64" json:"insurance_number,omitempty"`
}

// Referrer is whoever filled in the referral form on the client's behalf.
type Referrer struct {
	Source       string `gorm:"size:32" json:"source"`
	Name         string `gorm:"size:255" json:"name"`
	Phone        string `gorm:"size:64" json:"phone,omitempty"`
	Email        string `gorm:"size:255" json:"email,omitempty"`
	Organization string `gorm:"size:255" json:"organization,omitempty"`
}

// Details holds the care details step of the referral form.
type Details struct {
	ServiceNeeds    string `gorm:"type:text" json:"service_needs"`
	Urgency         string `gorm:"size:32" json:"urgency"`
	AdditionalNotes string `gorm:"type:text" json:"additional_notes,omitempty"`
}

// ReferralSubmission is one client-referral record.
type ReferralSubmission struct {
	ID string `gorm:"primaryKey;size:36" json:"id"`

	Client   Client   `gorm:"embedded;embeddedPrefix:client_" json:"client"`
	Program  Program  `gorm:"embedded;embeddedPrefix:program_" json:"program"`
	Referrer Referrer `gorm:"embedded;embeddedPrefix:referrer_" json:"referrer"`
	Details  Details  `gorm:"embedded;embeddedPrefix:details_" json:"details"`

	Payload datatypes.JSON `gorm:"type:json" json:"-"`

	Status      Status    `gorm:"size:32" json:"status"`
	SubmittedAt time.Time `json:"submitted_at"`
}

// TableName overrides the gorm default
func (ReferralSubmission) TableName() string { return "referral_submissions" }

// IsImmediate reports whether the referral asked for same-day attention.
func (r *ReferralSubmission) IsImmediate() bool {
	return r.Details.Urgency == UrgencyImmediate
}
