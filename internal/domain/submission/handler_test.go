package submission

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/kashfr/heart-and-soul-healthcare-v2/internal/channel"
)

func newTestRouter(svc *Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	v1 := r.Group("/api/v1")
	RegisterRoutes(v1, NewHandler(svc))
	return r
}

func postJSON(t *testing.T, r *gin.Engine, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestSubmitContactCreated(t *testing.T) {
	svc, store, email, ledger, tasks := newTestService()
	store.On("CreateContact", mock.Anything, mock.Anything).Return(nil)
	email.On("SendContact", mock.Anything, mock.Anything).Return(channel.OK("msg-42"))
	ledger.On("AppendRow", mock.Anything, mock.Anything, mock.Anything).Return(channel.OK(""))
	tasks.On("CreateContactTask", mock.Anything, mock.Anything).Return(channel.Skipped("not configured"))

	w := postJSON(t, newTestRouter(svc), "/api/v1/submissions/contact", validContact())

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp struct {
		Success bool `json:"success"`
		Data    struct {
			ID        string `json:"id"`
			MessageID string `json:"message_id"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.NotEmpty(t, resp.Data.ID)
	assert.Equal(t, "msg-42", resp.Data.MessageID)
}

func TestSubmitContactInvalidJSON(t *testing.T) {
	svc, _, _, _, _ := newTestService()
	r := newTestRouter(svc)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/submissions/contact", bytes.NewReader([]byte("{not json")))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "INVALID_JSON")
}

func TestSubmitContactMissingFields(t *testing.T) {
	svc, store, _, _, _ := newTestService()

	req := validContact()
	req.Email = ""
	w := postJSON(t, newTestRouter(svc), "/api/v1/submissions/contact", req)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Contains(t, w.Body.String(), "VALIDATION_ERROR")
	store.AssertNotCalled(t, "CreateContact", mock.Anything, mock.Anything)
}

func TestSubmitContactNotificationFailureHidesDetail(t *testing.T) {
	svc, store, email, _, _ := newTestService()
	store.On("CreateContact", mock.Anything, mock.Anything).Return(nil)
	email.On("SendContact", mock.Anything, mock.Anything).Return(channel.Failed(errors.New("smtp exploded")))

	w := postJSON(t, newTestRouter(svc), "/api/v1/submissions/contact", validContact())

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "SUBMISSION_FAILED")
	assert.Contains(t, w.Body.String(), "call us directly")
	// Provider detail never reaches the submitter.
	assert.NotContains(t, w.Body.String(), "smtp exploded")
}

func TestSubmitReferralCreated(t *testing.T) {
	svc, store, email, ledger, tasks := newTestService()
	store.On("CreateReferral", mock.Anything, mock.Anything).Return(nil)
	email.On("SendReferral", mock.Anything, mock.Anything).Return(channel.OK("msg-77"))
	ledger.On("AppendRow", mock.Anything, mock.Anything, mock.Anything).Return(channel.OK(""))
	tasks.On("CreateReferralTask", mock.Anything, mock.Anything).Return(channel.OK("task-9"))

	w := postJSON(t, newTestRouter(svc), "/api/v1/submissions/referral", validReferral())

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), "msg-77")
}

func TestSubmitReferralMissingClient(t *testing.T) {
	svc, store, _, _, _ := newTestService()

	req := validReferral()
	req.Client.FirstName = ""
	w := postJSON(t, newTestRouter(svc), "/api/v1/submissions/referral", req)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	store.AssertNotCalled(t, "CreateReferral", mock.Anything, mock.Anything)
}
