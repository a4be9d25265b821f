// Package clickup files a triage task in ClickUp for each submission.
// ClickUp has no maintained Go SDK, so this is a small JSON client over
// net/http against the v2 REST API. The channel is best-effort: missing
// configuration skips, HTTP failures are reported but never propagated.
package clickup

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/kashfr/heart-and-soul-healthcare-v2/internal/channel"
	"github.com/kashfr/heart-and-soul-healthcare-v2/internal/domain/submission"
)

const DefaultBaseURL = "https://api.clickup.com/api/v2"

// ClickUp priority levels.
const (
	PriorityUrgent = 1
	PriorityNormal = 3
)

// FieldIDs maps each logical submission field to the custom-field id
// ClickUp knows it by. The ids are external schema, supplied through
// configuration so the channel itself stays schema-agnostic.
type FieldIDs struct {
	ContactName  string
	ContactEmail string
	ContactPhone string
	Subject      string
	Message      string

	ClientName      string
	ClientDOB       string
	ClientPhone     string
	ProgramInterest string
	ReferrerName    string
	ReferrerPhone   string
	ReferralDate    string
	ServiceNeeds    string
}

// Config holds the API token, the per-submission-type target lists and
// the field-id mapping. Token and list id are both required for a task
// to be created; either one missing makes that submission type a no-op.
type Config struct {
	APIToken       string
	ContactListID  string
	ReferralListID string
	BaseURL        string
	Fields         FieldIDs
}

// Client creates ClickUp tasks from submissions.
type Client struct {
	cfg  Config
	http *http.Client
	log  *zap.Logger

	phoneFormat func(string) string
}

// NewClient creates the task channel. phoneFormat normalizes phone values
// into the shape ClickUp's phone field accepts.
func NewClient(cfg Config, phoneFormat func(string) string, log *zap.Logger) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	return &Client{
		cfg:         cfg,
		http:        &http.Client{Timeout: 15 * time.Second},
		log:         log,
		phoneFormat: phoneFormat,
	}
}

type customField struct {
	ID    string      `json:"id"`
	Value interface{} `json:"value"`
}

type taskRequest struct {
	Name         string        `json:"name"`
	Priority     *int          `json:"priority,omitempty"`
	NotifyAll    bool          `json:"notify_all"`
	CustomFields []customField `json:"custom_fields"`
}

// CreateContactTask files a task for a contact submission in the contact
// list. Contact tasks carry no priority.
func (c *Client) CreateContactTask(ctx context.Context, sub *submission.ContactSubmission) channel.Result {
	return c.createTask(ctx, c.cfg.ContactListID, contactTask(&c.cfg.Fields, c.phoneFormat, sub))
}

// CreateReferralTask files a task for a referral in the referral list,
// with urgent priority when the referral asked for immediate attention.
func (c *Client) CreateReferralTask(ctx context.Context, sub *submission.ReferralSubmission) channel.Result {
	return c.createTask(ctx, c.cfg.ReferralListID, referralTask(&c.cfg.Fields, c.phoneFormat, sub))
}

func (c *Client) createTask(ctx context.Context, listID string, task *taskRequest) channel.Result {
	if c.cfg.APIToken == "" {
		return channel.Skipped("api token not configured")
	}
	if listID == "" {
		return channel.Skipped("list id not configured")
	}

	body, err := json.Marshal(task)
	if err != nil {
		return channel.Failed(err)
	}

	url := fmt.Sprintf("%s/list/%s/task", c.cfg.BaseURL, listID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return channel.Failed(err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", c.cfg.APIToken)

	resp, err := c.http.Do(req)
	if err != nil {
		return channel.Failed(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return channel.Failed(fmt.Errorf("clickup returned %d: %s", resp.StatusCode, detail))
	}

	var created struct {
		ID string `json:"id"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&created); err != nil {
		// The task was created; only the reference is lost.
		c.log.Warn("clickup task created but response not decoded",
			zap.String("list_id", listID), zap.Error(err))
		return channel.OK("")
	}

	c.log.Info("clickup task created", zap.String("task_id", created.ID), zap.String("list_id", listID))
	return channel.OK(created.ID)
}

func contactTask(f *FieldIDs, phone func(string) string, sub *submission.ContactSubmission) *taskRequest {
	t := &taskRequest{
		Name:      "Website Contact: " + sub.Name,
		NotifyAll: true,
	}
	t.addField(f.ContactName, sub.Name)
	t.addField(f.ContactEmail, sub.Email)
	if sub.Phone != "" {
		t.addField(f.ContactPhone, phone(sub.Phone))
	}
	t.addField(f.Subject, sub.Subject)
	t.addField(f.Message, sub.Message)
	return t
}

func referralTask(f *FieldIDs, phone func(string) string, sub *submission.ReferralSubmission) *taskRequest {
	priority := PriorityNormal
	if sub.IsImmediate() {
		priority = PriorityUrgent
	}

	t := &taskRequest{
		Name:      "Client Referral: " + sub.Client.FullName(),
		Priority:  &priority,
		NotifyAll: true,
	}
	t.addField(f.ClientName, sub.Client.FullName())
	if ts, ok := dateMillis(sub.Client.DOB); ok {
		t.addDate(f.ClientDOB, ts)
	}
	t.addField(f.ClientPhone, phone(sub.Client.Phone))
	t.addField(f.ProgramInterest, sub.Program.Interest)
	t.addField(f.ReferrerName, sub.Referrer.Name)
	if sub.Referrer.Phone != "" {
		t.addField(f.ReferrerPhone, phone(sub.Referrer.Phone))
	}
	t.addDate(f.ReferralDate, sub.SubmittedAt.UnixMilli())
	t.addField(f.ServiceNeeds, sub.Details.ServiceNeeds)
	return t
}

// addField appends a custom field when both the id and the value are set.
func (t *taskRequest) addField(id, value string) {
	if id == "" || value == "" {
		return
	}
	t.CustomFields = append(t.CustomFields, customField{ID: id, Value: value})
}

func (t *taskRequest) addDate(id string, millis int64) {
	if id == "" {
		return
	}
	t.CustomFields = append(t.CustomFields, customField{ID: id, Value: millis})
}

// dateMillis converts a form date (YYYY-MM-DD) into the millisecond
// timestamp ClickUp date fields expect.
func dateMillis(date string) (int64, bool) {
	ts, err := time.Parse("2006-01-02", date)
	if err != nil {
		return 0, false
	}
	return ts.UnixMilli(), true
}
