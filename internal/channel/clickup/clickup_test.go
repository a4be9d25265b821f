package clickup

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/kashfr/heart-and-soul-healthcare-v2/internal/channel"
	"github.com/kashfr/heart-and-soul-healthcare-v2/internal/domain/submission"
	"github.com/kashfr/heart-and-soul-healthcare-v2/internal/pkg/format"
)

var testFields = FieldIDs{
	ContactName:     "fid-contact-name",
	ContactEmail:    "fid-contact-email",
	ContactPhone:    "fid-contact-phone",
	Subject:         "fid-subject",
	Message:         "fid-message",
	ClientName:      "fid-client-name",
	ClientDOB:       "fid-client-dob",
	ClientPhone:     "fid-client-phone",
	ProgramInterest: "fid-program",
	ReferrerName:    "fid-referrer-name",
	ReferrerPhone:   "fid-referrer-phone",
	ReferralDate:    "fid-referral-date",
	ServiceNeeds:    "fid-service-needs",
}

func testClient(cfg Config) *Client {
	cfg.Fields = testFields
	return NewClient(cfg, format.PhoneForTracker, zap.NewNop())
}

func contactSub() *submission.ContactSubmission {
	return &submission.ContactSubmission{
		Name:        "Jane Doe",
		Email:       "jane@example.com",
		Phone:       "404-555-1212",
		Subject:     "Care options",
		Message:     "Hello",
		SubmittedAt: time.Now().UTC(),
	}
}

func referralSub(urgency string) *submission.ReferralSubmission {
	return &submission.ReferralSubmission{
		Client: submission.Client{
			FirstName: "Sam",
			LastName:  "Carter",
			DOB:       "1950-03-14",
			Phone:     "14045551212",
		},
		Program:     submission.Program{Interest: submission.ProgramICWP},
		Referrer:    submission.Referrer{Source: submission.SourceHospital, Name: "Dr. Lee"},
		Details:     submission.Details{ServiceNeeds: "Daily nursing", Urgency: urgency},
		SubmittedAt: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
	}
}

func TestCreateTaskSkippedWithoutToken(t *testing.T) {
	called := false
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	defer srv.Close()

	c := testClient(Config{ContactListID: "900100", BaseURL: srv.URL})
	res := c.CreateContactTask(context.Background(), contactSub())

	assert.Equal(t, channel.StatusSkipped, res.Status)
	assert.False(t, called)
}

func TestCreateTaskSkippedWithoutListID(t *testing.T) {
	called := false
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	defer srv.Close()

	c := testClient(Config{APIToken: "pk_test", BaseURL: srv.URL})
	res := c.CreateContactTask(context.Background(), contactSub())

	assert.Equal(t, channel.StatusSkipped, res.Status)
	assert.False(t, called)
}

func TestCreateContactTaskPayload(t *testing.T) {
	var gotPath, gotAuth string
	var gotBody taskRequest

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		raw, _ := io.ReadAll(r.Body)
		require.NoError(t, json.Unmarshal(raw, &gotBody))
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"id":"task-abc"}`))
	}))
	defer srv.Close()

	c := testClient(Config{APIToken: "pk_test", ContactListID: "900100", BaseURL: srv.URL})
	res := c.CreateContactTask(context.Background(), contactSub())

	require.Equal(t, channel.StatusOK, res.Status)
	assert.Equal(t, "task-abc", res.Ref)
	assert.Equal(t, "/list/900100/task", gotPath)
	assert.Equal(t, "pk_test", gotAuth)

	assert.Equal(t, "Website Contact: Jane Doe", gotBody.Name)
	assert.Nil(t, gotBody.Priority)
	assert.True(t, gotBody.NotifyAll)
	assert.Equal(t, "+1 (404) 555-1212", fieldValue(t, gotBody, "fid-contact-phone"))
	assert.Equal(t, "jane@example.com", fieldValue(t, gotBody, "fid-contact-email"))
}

func TestCreateReferralTaskUrgencyMapping(t *testing.T) {
	tests := []struct {
		urgency      string
		wantPriority int
	}{
		{submission.UrgencyImmediate, PriorityUrgent},
		{submission.UrgencyUrgent, PriorityNormal},
		{submission.UrgencyStandard, PriorityNormal},
	}

	for _, tt := range tests {
		t.Run(tt.urgency, func(t *testing.T) {
			var gotBody taskRequest
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				raw, _ := io.ReadAll(r.Body)
				require.NoError(t, json.Unmarshal(raw, &gotBody))
				w.Write([]byte(`{"id":"task-1"}`))
			}))
			defer srv.Close()

			c := testClient(Config{APIToken: "pk_test", ReferralListID: "900200", BaseURL: srv.URL})
			res := c.CreateReferralTask(context.Background(), referralSub(tt.urgency))

			require.Equal(t, channel.StatusOK, res.Status)
			require.NotNil(t, gotBody.Priority)
			assert.Equal(t, tt.wantPriority, *gotBody.Priority)
		})
	}
}

func TestCreateReferralTaskFieldValues(t *testing.T) {
	var gotBody taskRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw, _ := io.ReadAll(r.Body)
		require.NoError(t, json.Unmarshal(raw, &gotBody))
		w.Write([]byte(`{"id":"task-2"}`))
	}))
	defer srv.Close()

	c := testClient(Config{APIToken: "pk_test", ReferralListID: "900200", BaseURL: srv.URL})
	res := c.CreateReferralTask(context.Background(), referralSub(submission.UrgencyStandard))
	require.Equal(t, channel.StatusOK, res.Status)

	assert.Equal(t, "Client Referral: Sam Carter", gotBody.Name)
	assert.Equal(t, "Sam Carter", fieldValue(t, gotBody, "fid-client-name"))
	assert.Equal(t, "+1 (404) 555-1212", fieldValue(t, gotBody, "fid-client-phone"))
	assert.Equal(t, "icwp", fieldValue(t, gotBody, "fid-program"))

	// Dates travel as millisecond timestamps.
	dob := time.Date(1950, 3, 14, 0, 0, 0, 0, time.UTC).UnixMilli()
	assert.EqualValues(t, dob, fieldValue(t, gotBody, "fid-client-dob"))
	sent := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC).UnixMilli()
	assert.EqualValues(t, sent, fieldValue(t, gotBody, "fid-referral-date"))
}

func TestCreateTaskNonSuccessStatusFails(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"err":"Token invalid"}`))
	}))
	defer srv.Close()

	c := testClient(Config{APIToken: "pk_bad", ContactListID: "900100", BaseURL: srv.URL})
	res := c.CreateContactTask(context.Background(), contactSub())

	assert.Equal(t, channel.StatusFailed, res.Status)
	assert.Contains(t, res.Reason, "401")
}

func TestCreateTaskUndecodableBodyStillSucceeds(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<html>created</html>"))
	}))
	defer srv.Close()

	c := testClient(Config{APIToken: "pk_test", ContactListID: "900100", BaseURL: srv.URL})
	res := c.CreateContactTask(context.Background(), contactSub())

	// A 2xx means the task exists even when the body is garbage; only
	// the task reference is lost.
	assert.Equal(t, channel.StatusOK, res.Status)
	assert.Empty(t, res.Ref)
}

func TestCreateTaskTransportErrorFails(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // connection refused from here on

	c := testClient(Config{APIToken: "pk_test", ContactListID: "900100", BaseURL: srv.URL})
	res := c.CreateContactTask(context.Background(), contactSub())

	assert.Equal(t, channel.StatusFailed, res.Status)
}

// fieldValue pulls one custom field's value out of a captured request body.
func fieldValue(t *testing.T, body taskRequest, id string) interface{} {
	t.Helper()
	for _, f := range body.CustomFields {
		if f.ID == id {
			return f.Value
		}
	}
	t.Fatalf("custom field %s not present", id)
	return nil
}
