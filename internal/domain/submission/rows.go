package submission

import (
	"time"

	"github.com/kashfr/heart-and-soul-healthcare-v2/internal/channel"
)

// Sheet titles in the staff spreadsheet, one per submission type.
const (
	ContactSheet  = "Contact Submissions"
	ReferralSheet = "Referral Submissions"
)

// contactRow flattens a contact submission into its ledger row.
func contactRow(sub *ContactSubmission) channel.Row {
	return channel.Row{
		{Name: "Date", Value: sub.SubmittedAt.Format(time.RFC3339)},
		{Name: "Name", Value: sub.Name},
		{Name: "Email", Value: sub.Email},
		{Name: "Phone", Value: sub.Phone},
		{Name: "Subject", Value: sub.Subject},
		{Name: "Message", Value: sub.Message},
	}
}

// referralRow flattens a referral's nested sections into prefixed columns.
func referralRow(sub *ReferralSubmission) channel.Row {
	return channel.Row{
		{Name: "Date", Value: sub.SubmittedAt.Format(time.RFC3339)},
		{Name: "Client Name", Value: sub.Client.FullName()},
		{Name: "Client Phone", Value: sub.Client.Phone},
		{Name: "Client Email", Value: sub.Client.Email},
		{Name: "Program", Value: sub.Program.Interest},
		{Name: "Referrer Name", Value: sub.Referrer.Name},
		{Name: "Referrer Source", Value: sub.Referrer.Source},
		{Name: "Referrer Org", Value: sub.Referrer.Organization},
		{Name: "Urgency", Value: sub.Details.Urgency},
		{Name: "Service Needs", Value: sub.Details.ServiceNeeds},
	}
}
