package v1_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"go-portfolio-backend/config"
	v1 "go-portfolio-backend/internal/delivery/http/v1"
	"go-portfolio-backend/internal/usecase"
	"go-portfolio-backend/pkg/email"
	"go-portfolio-backend/pkg/logger"
	"go-portfolio-backend/pkg/validation"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeGateway resolves against a real directory and records what it would
// have sent, without touching the network.
type fakeGateway struct {
	directory  email.Directory
	sendErr    error
	lastData   email.ContactEmailData
	resolvedTo string
}

func (f *fakeGateway) Send(ctx context.Context, data email.ContactEmailData) (string, error) {
	f.lastData = data
	if f.sendErr != nil {
		return "", f.sendErr
	}
	f.resolvedTo = f.directory.Resolve(data.Category)
	if f.resolvedTo == "" {
		return "", &email.SendError{Kind: email.KindRecipientNotConfigured}
	}
	return "<test-id@smtp.example.com>", nil
}

func newTestRouter(t *testing.T, gateway *fakeGateway) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	logger.Init()

	validate := validator.New()
	validation.RegisterValidators(validate)

	cfg := &config.Config{
		FrontendURL:               "http://localhost:3000",
		RateLimitWindowSeconds:    60,
		RateLimitContactThreshold: 1000,
		RateLimitGlobalThreshold:  1000,
	}

	return v1.NewRouter(v1.RouterDeps{
		ContactUC: usecase.NewContactUsecase(gateway, validate),
		Config:    cfg,
	})
}

func postContact(router *gin.Engine, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/contact", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

type envelope struct {
	Success   bool                `json:"success"`
	Message   string              `json:"message"`
	MessageID string              `json:"messageId"`
	Error     string              `json:"error"`
	Details   map[string][]string `json:"details"`
}

func decode(t *testing.T, w *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	return env
}

func TestSubmitContactSuccess(t *testing.T) {
	gateway := &fakeGateway{directory: email.Directory{"professional": "work@example.com"}}
	router := newTestRouter(t, gateway)

	w := postContact(router, `{"name":"Jane Doe","email":"jane@example.com","message":"Hello"}`)

	assert.Equal(t, http.StatusOK, w.Code)
	env := decode(t, w)
	assert.True(t, env.Success)
	assert.Equal(t, "<test-id@smtp.example.com>", env.MessageID)
	assert.Equal(t, "jane@example.com", gateway.lastData.SenderEmail)
}

func TestSubmitContactMissingName(t *testing.T) {
	gateway := &fakeGateway{directory: email.Directory{"professional": "work@example.com"}}
	router := newTestRouter(t, gateway)

	w := postContact(router, `{"name":"","email":"jane@example.com","message":"Hello"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	env := decode(t, w)
	assert.False(t, env.Success)
	assert.Equal(t, "Validation failed", env.Error)
	assert.Contains(t, env.Details, "name")
}

func TestSubmitContactInvalidEmail(t *testing.T) {
	gateway := &fakeGateway{directory: email.Directory{"professional": "work@example.com"}}
	router := newTestRouter(t, gateway)

	w := postContact(router, `{"name":"Jane","email":"not-an-email","message":"Hi"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	env := decode(t, w)
	assert.False(t, env.Success)
	assert.Contains(t, env.Details, "email")
}

func TestSubmitContactCategoryFallback(t *testing.T) {
	// Only professional configured: a personal inquiry still lands there
	gateway := &fakeGateway{directory: email.Directory{"professional": "work@example.com"}}
	router := newTestRouter(t, gateway)

	w := postContact(router, `{"name":"Jane","email":"jane@example.com","message":"Hi","emailType":"personal"}`)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "personal", gateway.lastData.Category)
	assert.Equal(t, "work@example.com", gateway.resolvedTo)
}

func TestSubmitContactTransportOutage(t *testing.T) {
	gateway := &fakeGateway{
		directory: email.Directory{"professional": "work@example.com"},
		sendErr:   &email.SendError{Kind: email.KindServiceUnavailable},
	}
	router := newTestRouter(t, gateway)

	w := postContact(router, `{"name":"Jane","email":"jane@example.com","message":"Hi"}`)

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	env := decode(t, w)
	assert.False(t, env.Success)
	assert.Equal(t, "Email service temporarily unavailable", env.Error)
}

func TestSubmitContactRecipientNotConfigured(t *testing.T) {
	gateway := &fakeGateway{directory: email.Directory{}}
	router := newTestRouter(t, gateway)

	w := postContact(router, `{"name":"Jane","email":"jane@example.com","message":"Hi"}`)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	env := decode(t, w)
	assert.False(t, env.Success)
	assert.Equal(t, "Recipient email not configured", env.Error)
}

func TestSubmitContactMalformedBody(t *testing.T) {
	gateway := &fakeGateway{directory: email.Directory{"professional": "work@example.com"}}
	router := newTestRouter(t, gateway)

	w := postContact(router, `{"name": `)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	env := decode(t, w)
	assert.False(t, env.Success)
	assert.Equal(t, "Invalid request body", env.Error)
}

func TestHealthRoute(t *testing.T) {
	gateway := &fakeGateway{directory: email.Directory{"professional": "work@example.com"}}
	router := newTestRouter(t, gateway)

	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	env := decode(t, w)
	assert.True(t, env.Success)
}

func TestRequestIDEchoed(t *testing.T) {
	gateway := &fakeGateway{directory: email.Directory{"professional": "work@example.com"}}
	router := newTestRouter(t, gateway)

	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	req.Header.Set("X-Request-ID", "abc-123")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, "abc-123", w.Header().Get("X-Request-ID"))
	assert.Contains(t, w.Body.String(), "abc-123")
}
