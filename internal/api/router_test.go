package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"vitalis-server/internal/common/config"
	"vitalis-server/internal/common/logger"
	"vitalis-server/internal/directory"
	"vitalis-server/internal/models"
	"vitalis-server/internal/repository"
	"vitalis-server/internal/service/assistant"
	"vitalis-server/internal/service/mailer"
	"vitalis-server/internal/service/messages"
	"vitalis-server/internal/service/notifications"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockSES struct {
	mock.Mock
}

func (m *MockSES) SendEmail(ctx context.Context, params *ses.SendEmailInput, optFns ...func(*ses.Options)) (*ses.SendEmailOutput, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ses.SendEmailOutput), args.Error(1)
}

func emailEnabledConfig() config.IntegrationConfig {
	var cfg config.IntegrationConfig
	cfg.AWS.Region = "eu-west-1"
	cfg.AWS.SES.Enabled = true
	cfg.AWS.SES.FromEmail = "noreply@vitalis.example"
	cfg.AWS.SES.FromName = "Vitalis Hospital"
	cfg.GenAI.Timeout = 1000
	return cfg
}

type testEnv struct {
	router *Router
	ses    *MockSES
	notifs *notifications.Service
}

func newTestEnv(t *testing.T, integrations config.IntegrationConfig) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	log := logger.NewTestLogger(t)

	sesMock := new(MockSES)
	mailSvc := mailer.NewWithClient(integrations, sesMock, log)
	repo := repository.NewMemoryMessageRepository()
	msgSvc := messages.New(repo, mailSvc, log)
	notifSvc := notifications.New()
	dirSvc := directory.New()
	assistSvc := assistant.New(integrations, dirSvc.Specialties(), log)

	router := NewRouter(Handlers{
		Email:         NewEmailHandler(mailSvc, integrations, log),
		Messages:      NewMessagesHandler(msgSvc, log),
		Notifications: NewNotificationsHandler(notifSvc),
		Directory:     NewDirectoryHandler(dirSvc),
		Assistant:     NewAssistantHandler(assistSvc),
	}, log)

	return &testEnv{router: router, ses: sesMock, notifs: notifSvc}
}

func (e *testEnv) do(method, path string, body interface{}) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		raw, _ := json.Marshal(body)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	e.router.Engine.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

// --- config-status ---

func TestConfigStatus_AllDisabled(t *testing.T) {
	var cfg config.IntegrationConfig
	cfg.GenAI.Timeout = 1000
	env := newTestEnv(t, cfg)

	w := env.do(http.MethodGet, "/api/config-status", nil)
	require.Equal(t, http.StatusOK, w.Code)

	body := decodeBody(t, w)
	assert.Equal(t, false, body["emailService"])
	assert.Equal(t, false, body["mapsService"])
	assert.Equal(t, false, body["aiService"])
}

func TestConfigStatus_EmailAndMapsConfigured(t *testing.T) {
	cfg := emailEnabledConfig()
	cfg.Maps.APIKey = "maps-key"
	env := newTestEnv(t, cfg)

	body := decodeBody(t, env.do(http.MethodGet, "/api/config-status", nil))
	assert.Equal(t, true, body["emailService"])
	assert.Equal(t, true, body["mapsService"])
	assert.Equal(t, false, body["aiService"])
}

// --- send-email ---

func TestSendEmail_Success(t *testing.T) {
	env := newTestEnv(t, emailEnabledConfig())
	env.ses.On("SendEmail", mock.Anything, mock.Anything).
		Return(&ses.SendEmailOutput{MessageId: aws.String("prov-1")}, nil)

	w := env.do(http.MethodPost, "/api/send-email", gin.H{
		"to": "a@b.com", "subject": "S", "content": "C",
	})
	require.Equal(t, http.StatusOK, w.Code)

	body := decodeBody(t, w)
	assert.Equal(t, true, body["success"])
	data := body["data"].(map[string]interface{})
	assert.Equal(t, "prov-1", data["messageId"])
}

func TestSendEmail_CredentialMissing(t *testing.T) {
	var cfg config.IntegrationConfig
	cfg.GenAI.Timeout = 1000
	env := newTestEnv(t, cfg)

	w := env.do(http.MethodPost, "/api/send-email", gin.H{
		"to": "a@b.com", "subject": "S", "content": "C",
	})
	require.Equal(t, http.StatusInternalServerError, w.Code)

	body := decodeBody(t, w)
	assert.Contains(t, body["error"], "not configured")
	env.ses.AssertNotCalled(t, "SendEmail", mock.Anything, mock.Anything)
}

func TestSendEmail_ProviderFailureIsGeneric(t *testing.T) {
	env := newTestEnv(t, emailEnabledConfig())
	env.ses.On("SendEmail", mock.Anything, mock.Anything).
		Return(nil, errors.New("ses: account sandboxed, verify identity"))

	w := env.do(http.MethodPost, "/api/send-email", gin.H{
		"to": "a@b.com", "subject": "S", "content": "C",
	})
	require.Equal(t, http.StatusInternalServerError, w.Code)

	body := decodeBody(t, w)
	assert.Equal(t, "Failed to send email", body["error"])
	// Provider detail must not leak to the client.
	assert.NotContains(t, w.Body.String(), "sandboxed")
}

func TestSendEmail_InvalidBody(t *testing.T) {
	env := newTestEnv(t, emailEnabledConfig())

	w := env.do(http.MethodPost, "/api/send-email", gin.H{"to": "a@b.com"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

// --- messages ---

func TestMessages_SaveAndList(t *testing.T) {
	env := newTestEnv(t, emailEnabledConfig())
	env.ses.On("SendEmail", mock.Anything, mock.MatchedBy(func(in *ses.SendEmailInput) bool {
		return in.Destination.ToAddresses[0] == "a@b.com" && *in.Message.Subject.Data == "S"
	})).Return(&ses.SendEmailOutput{MessageId: aws.String("prov-1")}, nil)

	w := env.do(http.MethodPost, "/api/messages", gin.H{
		"type": "Appointment", "subject": "S", "content": "C", "to": "a@b.com",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	created := decodeBody(t, w)["message"].(map[string]interface{})
	assert.Equal(t, "a@b.com", created["to"])
	assert.NotEmpty(t, created["id"])

	listResp := env.do(http.MethodGet, "/api/messages", nil)
	require.Equal(t, http.StatusOK, listResp.Code)

	var listBody struct {
		Messages []models.Message `json:"messages"`
	}
	require.NoError(t, json.Unmarshal(listResp.Body.Bytes(), &listBody))
	require.Len(t, listBody.Messages, 1)
	assert.Equal(t, "a@b.com", listBody.Messages[0].To)

	env.ses.AssertNumberOfCalls(t, "SendEmail", 1)
}

func TestMessages_SaveSucceedsWhenProviderFails(t *testing.T) {
	env := newTestEnv(t, emailEnabledConfig())
	env.ses.On("SendEmail", mock.Anything, mock.Anything).
		Return(nil, errors.New("provider down"))

	w := env.do(http.MethodPost, "/api/messages", gin.H{
		"type": "Appointment", "subject": "S", "content": "C", "to": "a@b.com",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var listBody struct {
		Messages []models.Message `json:"messages"`
	}
	listResp := env.do(http.MethodGet, "/api/messages", nil)
	require.NoError(t, json.Unmarshal(listResp.Body.Bytes(), &listBody))
	assert.Len(t, listBody.Messages, 1)
}

func TestMessages_UnknownTypeRejected(t *testing.T) {
	env := newTestEnv(t, emailEnabledConfig())

	w := env.do(http.MethodPost, "/api/messages", gin.H{
		"type": "Telegram", "subject": "S", "content": "C", "to": "a@b.com",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

// --- notifications ---

func TestNotifications_AddListAndRead(t *testing.T) {
	env := newTestEnv(t, emailEnabledConfig())

	for _, title := range []string{"A", "B", "C"} {
		w := env.do(http.MethodPost, "/api/notifications", gin.H{
			"title": title, "message": "m", "type": "info",
		})
		require.Equal(t, http.StatusCreated, w.Code)
	}

	var listBody struct {
		Notifications []models.Notification `json:"notifications"`
	}
	listResp := env.do(http.MethodGet, "/api/notifications", nil)
	require.NoError(t, json.Unmarshal(listResp.Body.Bytes(), &listBody))
	require.Len(t, listBody.Notifications, 3)
	assert.Equal(t, "C", listBody.Notifications[0].Title)
	assert.Equal(t, "A", listBody.Notifications[2].Title)

	countBody := decodeBody(t, env.do(http.MethodGet, "/api/notifications/unread-count", nil))
	assert.Equal(t, float64(3), countBody["unreadCount"])

	readResp := env.do(http.MethodPost, "/api/notifications/"+listBody.Notifications[0].ID+"/read", nil)
	assert.Equal(t, http.StatusNoContent, readResp.Code)

	countBody = decodeBody(t, env.do(http.MethodGet, "/api/notifications/unread-count", nil))
	assert.Equal(t, float64(2), countBody["unreadCount"])

	allResp := env.do(http.MethodPost, "/api/notifications/read-all", nil)
	assert.Equal(t, http.StatusNoContent, allResp.Code)

	countBody = decodeBody(t, env.do(http.MethodGet, "/api/notifications/unread-count", nil))
	assert.Equal(t, float64(0), countBody["unreadCount"])
}

func TestNotifications_MarkUnknownIDStillNoContent(t *testing.T) {
	env := newTestEnv(t, emailEnabledConfig())

	w := env.do(http.MethodPost, "/api/notifications/no-such-id/read", nil)
	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestNotifications_UnknownTypeRejected(t *testing.T) {
	env := newTestEnv(t, emailEnabledConfig())

	w := env.do(http.MethodPost, "/api/notifications", gin.H{
		"title": "T", "message": "m", "type": "fatal",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

// --- directory ---

func TestDirectory_Endpoints(t *testing.T) {
	env := newTestEnv(t, emailEnabledConfig())

	var doctorsBody struct {
		Doctors []models.Doctor `json:"doctors"`
	}
	resp := env.do(http.MethodGet, "/api/doctors", nil)
	require.Equal(t, http.StatusOK, resp.Code)
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &doctorsBody))
	assert.Len(t, doctorsBody.Doctors, 4)

	resp = env.do(http.MethodGet, "/api/doctors?specialty=Cardiology", nil)
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &doctorsBody))
	require.Len(t, doctorsBody.Doctors, 1)
	assert.Equal(t, "Dr. Sarah Johnson", doctorsBody.Doctors[0].Name)

	resp = env.do(http.MethodGet, "/api/doctors/999", nil)
	assert.Equal(t, http.StatusNotFound, resp.Code)

	resp = env.do(http.MethodGet, "/api/specialties", nil)
	require.Equal(t, http.StatusOK, resp.Code)
	var specialtiesBody struct {
		Specialties []models.Specialty `json:"specialties"`
	}
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &specialtiesBody))
	assert.Len(t, specialtiesBody.Specialties, 6)
}

// --- assistant ---

func TestAssistant_FallsBackWhenUnconfigured(t *testing.T) {
	env := newTestEnv(t, emailEnabledConfig())

	w := env.do(http.MethodPost, "/api/assistant", gin.H{"query": "I have a headache"})
	require.Equal(t, http.StatusOK, w.Code)

	body := decodeBody(t, w)
	assert.Equal(t, assistant.FallbackReply, body["reply"])
}

func TestHealthz(t *testing.T) {
	env := newTestEnv(t, emailEnabledConfig())

	w := env.do(http.MethodGet, "/healthz", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}
