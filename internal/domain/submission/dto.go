package submission

// ContactRequest represents a public contact-form submission
type ContactRequest struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required,email"`
	Phone   string `json:"phone"`
	Subject string `json:"subject" validate:"required"`
	Message string `json:"message" validate:"required"`
}

// ClientSection is step one of the referral form
type ClientSection struct {
	FirstName string `json:"first_name" validate:"required"`
	LastName  string `json:"last_name" validate:"required"`
	DOB       string `json:"dob" validate:"required,datetime=2006-01-02"`
	Phone     string `json:"phone" validate:"required"`
	Email     string `json:"email" validate:"omitempty,email"`
	Address   string `json:"address"`
	City      string `json:"city"`
	State     string `json:"state"`
	Zip       string `json:"zip"`
}

// ProgramSection is step two of the referral form
type ProgramSection struct {
	Interest          string `json:"interest" validate:"required,oneof=gapp now-comp icwp edwp private-pay other"`
	MedicaidNumber    string `json:"medicaid_number"`
	InsuranceProvider string `json:"insurance_provider"`
	InsuranceNumber   string `json:"insurance_number"`
}

// ReferrerSection is step three of the referral form
type ReferrerSection struct {
	Source       string `json:"source" validate:"required,oneof=hospital physician case-manager family self other"`
	Name         string `json:"name" validate:"required"`
	Phone        string `json:"phone"`
	Email        string `json:"email" validate:"omitempty,email"`
	Organization string `json:"organization"`
}

// DetailsSection is step four of the referral form
type DetailsSection struct {
	ServiceNeeds    string `json:"service_needs" validate:"required"`
	Urgency         string `json:"urgency" validate:"omitempty,oneof=standard urgent immediate"`
	AdditionalNotes string `json:"additional_notes"`
}

// ReferralRequest represents a public multi-step referral submission
type ReferralRequest struct {
	Client   ClientSection   `json:"client" validate:"required"`
	Program  ProgramSection  `json:"program" validate:"required"`
	Referrer ReferrerSection `json:"referrer" validate:"required"`
	Details  DetailsSection  `json:"details" validate:"required"`
}

// Receipt is returned to the submitter on success. MessageID is the email
// provider's identifier for the staff notification, kept for parity with
// what the confirmation has always reported.
type Receipt struct {
	SubmissionID string `json:"id"`
	MessageID    string `json:"message_id,omitempty"`
}
