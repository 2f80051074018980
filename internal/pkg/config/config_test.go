//go:build unit

package config_test

import (
	"testing"
	"time"

	"refreshing-booking/internal/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var mailEnv = map[string]string{
	"SMTP_HOST": "smtp.example.se",
	"SMTP_PORT": "465",
	"SMTP_USER": "booking@refreshing.se",
	"SMTP_PASS": "hunter2",
	"SMTP_FROM": "Refreshing <booking@refreshing.se>",
}

func setMailEnv(t *testing.T, overrides map[string]string) {
	t.Helper()
	for k, v := range mailEnv {
		t.Setenv(k, v)
	}
	for k, v := range overrides {
		t.Setenv(k, v)
	}
}

func TestLoadConfig(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		cfg, err := config.LoadConfig()
		require.NoError(t, err)

		assert.Equal(t, "8080", cfg.Server.Port)
		assert.Equal(t, []string{"*"}, cfg.CORS.AllowOrigins)
		assert.Equal(t, []string{"Content-Type"}, cfg.CORS.AllowHeaders)
		assert.Equal(t, "info@refreshing.se", cfg.Site.BusinessInbox)
		assert.Equal(t, "Refreshing", cfg.Site.BrandName)
		assert.Equal(t, 15*time.Second, cfg.Site.SMTPTimeout)
		assert.True(t, cfg.RateLimit.Enabled())
	})

	t.Run("overrides", func(t *testing.T) {
		t.Setenv("PORT", "9000")
		t.Setenv("BUSINESS_INBOX", "test@refreshing.se")
		t.Setenv("RATE_LIMIT_PER_MINUTE", "0")

		cfg, err := config.LoadConfig()
		require.NoError(t, err)
		assert.Equal(t, "9000", cfg.Server.Port)
		assert.Equal(t, "test@refreshing.se", cfg.Site.BusinessInbox)
		assert.False(t, cfg.RateLimit.Enabled())
	})

	t.Run("unknown site timezone falls back to UTC", func(t *testing.T) {
		assert.Equal(t, time.UTC, config.SiteConfig{TimeZone: "Mars/Olympus"}.Location())
	})
}

func TestLoadMailConfig(t *testing.T) {
	t.Run("all variables present", func(t *testing.T) {
		setMailEnv(t, nil)

		cfg, err := config.NewEnvMailConfigLoader().LoadMail()
		require.NoError(t, err)
		assert.Equal(t, config.MailConfig{
			Host:     "smtp.example.se",
			Port:     465,
			User:     "booking@refreshing.se",
			Password: "hunter2",
			From:     "Refreshing <booking@refreshing.se>",
		}, cfg)
		assert.True(t, cfg.ImplicitTLS())
	})

	t.Run("submission port uses STARTTLS", func(t *testing.T) {
		setMailEnv(t, map[string]string{"SMTP_PORT": "587"})

		cfg, err := config.LoadMailConfig()
		require.NoError(t, err)
		assert.False(t, cfg.ImplicitTLS())
	})

	for _, name := range []string{"SMTP_HOST", "SMTP_USER", "SMTP_PASS", "SMTP_FROM"} {
		t.Run("blank "+name, func(t *testing.T) {
			setMailEnv(t, map[string]string{name: ""})

			_, err := config.LoadMailConfig()
			require.Error(t, err)
			assert.Contains(t, err.Error(), name)
			assert.NotContains(t, err.Error(), "hunter2")
		})
	}

	t.Run("port that is not a number", func(t *testing.T) {
		setMailEnv(t, map[string]string{"SMTP_PORT": "smtp"})

		_, err := config.LoadMailConfig()
		assert.Error(t, err)
	})

	t.Run("port out of range", func(t *testing.T) {
		setMailEnv(t, map[string]string{"SMTP_PORT": "70000"})

		_, err := config.LoadMailConfig()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "SMTP_PORT")
	})
}

func TestMailConfigValidate(t *testing.T) {
	assert.NoError(t, config.NewTestMailConfig().Validate())

	err := config.MailConfig{}.Validate()
	require.Error(t, err)
	assert.Equal(t, "missing or invalid env: SMTP_HOST, SMTP_PORT, SMTP_USER, SMTP_PASS, SMTP_FROM", err.Error())

	for _, port := range []int{-1, 65536, 70000} {
		cfg := config.NewTestMailConfig()
		cfg.Port = port
		err := cfg.Validate()
		require.Error(t, err, port)
		assert.Equal(t, "missing or invalid env: SMTP_PORT", err.Error())
	}

	cfg := config.NewTestMailConfig()
	cfg.Port = 65535
	assert.NoError(t, cfg.Validate())
}
