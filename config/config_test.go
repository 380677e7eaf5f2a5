package config_test

import (
	"testing"

	"go-portfolio-backend/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := config.LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "smtp.gmail.com", cfg.EmailHost)
	assert.Equal(t, "587", cfg.EmailPort)
	assert.False(t, cfg.EmailSecure)
	assert.Equal(t, 60, cfg.RateLimitWindowSeconds)
	assert.Equal(t, 5, cfg.RateLimitContactThreshold)
	assert.Equal(t, 10, cfg.SMTPTimeoutSeconds)
}

func TestLoadConfigOverrides(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("EMAIL_HOST", "smtp-relay.brevo.com")
	t.Setenv("EMAIL_SECURE", "true")
	t.Setenv("CONTACT_EMAIL_PROFESSIONAL", "work@example.com")
	t.Setenv("CONTACT_EMAIL_PERSONAL", "me@example.com")
	t.Setenv("RATE_LIMIT_CONTACT_THRESHOLD", "3")
	t.Setenv("FRONTEND_URL", "https://portfolio.example.com/")

	cfg, err := config.LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "9000", cfg.Port)
	assert.Equal(t, "smtp-relay.brevo.com", cfg.EmailHost)
	assert.True(t, cfg.EmailSecure)
	assert.Equal(t, "work@example.com", cfg.ContactEmailProfessional)
	assert.Equal(t, "me@example.com", cfg.ContactEmailPersonal)
	assert.Equal(t, 3, cfg.RateLimitContactThreshold)
	// Trailing slash is stripped to prevent double slashes in origins
	assert.Equal(t, "https://portfolio.example.com", cfg.FrontendURL)
}

func TestLoadConfigIgnoresInvalidNumbers(t *testing.T) {
	t.Setenv("RATE_LIMIT_WINDOW_SECONDS", "not-a-number")
	t.Setenv("EMAIL_SECURE", "definitely")

	cfg, err := config.LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, 60, cfg.RateLimitWindowSeconds)
	assert.False(t, cfg.EmailSecure)
}
