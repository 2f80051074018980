package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments and must never be guessed (SMTP credentials)
// - default: Values common across all environments (timezone, inbox, limits, etc.)
//
// Config is processed once at startup. MailConfig is processed on every
// submission so a missing credential is reported per request instead of
// keeping the whole site down.
// -----------------------------------------------------------------------------

type Config struct {
	Server    ServerConfig
	CORS      CORSConfig
	Log       LogConfig
	RateLimit RateLimitConfig
	Site      SiteConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" default:"8080"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"*"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Content-Type"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"false"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"Europe/Stockholm"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"3600"` // 1*60*60
}

type RateLimitConfig struct {
	PerMinute int `envconfig:"RATE_LIMIT_PER_MINUTE" default:"30"`
	Burst     int `envconfig:"RATE_LIMIT_BURST" default:"10"`
}

func (c RateLimitConfig) Enabled() bool {
	return c.PerMinute > 0
}

type SiteConfig struct {
	BusinessInbox string        `envconfig:"BUSINESS_INBOX" default:"info@refreshing.se"`
	BrandName     string        `envconfig:"BRAND_NAME" default:"Refreshing"`
	TimeZone      string        `envconfig:"SITE_TIMEZONE" default:"Europe/Stockholm"`
	SMTPTimeout   time.Duration `envconfig:"SMTP_TIMEOUT" default:"15s"`
}

// Location falls back to UTC when the zone database is unavailable.
func (c SiteConfig) Location() *time.Location {
	loc, err := time.LoadLocation(c.TimeZone)
	if err != nil {
		return time.UTC
	}
	return loc
}

// MailConfig is the outbound relay. Every field is mandatory.
type MailConfig struct {
	Host     string `envconfig:"SMTP_HOST" required:"true"`
	Port     int    `envconfig:"SMTP_PORT" required:"true"`
	User     string `envconfig:"SMTP_USER" required:"true"`
	Password string `envconfig:"SMTP_PASS" required:"true"`
	From     string `envconfig:"SMTP_FROM" required:"true"`
}

const (
	SMTPSPort = 465
	maxPort   = 65535
)

// ImplicitTLS reports whether the session starts with TLS instead of
// negotiating STARTTLS.
func (c MailConfig) ImplicitTLS() bool {
	return c.Port == SMTPSPort
}

// Validate catches variables that are present but blank or out of range,
// which envconfig's required tag lets through.
func (c MailConfig) Validate() error {
	var missing []string
	if strings.TrimSpace(c.Host) == "" {
		missing = append(missing, "SMTP_HOST")
	}
	if c.Port <= 0 || c.Port > maxPort {
		missing = append(missing, "SMTP_PORT")
	}
	if strings.TrimSpace(c.User) == "" {
		missing = append(missing, "SMTP_USER")
	}
	if c.Password == "" {
		missing = append(missing, "SMTP_PASS")
	}
	if strings.TrimSpace(c.From) == "" {
		missing = append(missing, "SMTP_FROM")
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing or invalid env: %s", strings.Join(missing, ", "))
	}
	return nil
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	return cfg, nil
}

func LoadMailConfig() (MailConfig, error) {
	var cfg MailConfig
	if err := envconfig.Process("", &cfg); err != nil {
		return MailConfig{}, fmt.Errorf("failed to process mail env config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return MailConfig{}, err
	}
	return cfg, nil
}

// EnvMailConfigLoader reads MailConfig from the process environment on each
// call.
type EnvMailConfigLoader struct{}

func NewEnvMailConfigLoader() *EnvMailConfigLoader {
	return &EnvMailConfigLoader{}
}

func (EnvMailConfigLoader) LoadMail() (MailConfig, error) {
	return LoadMailConfig()
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889", // Test port
		},
		CORS: CORSConfig{
			AllowOrigins:  []string{"*"},
			AllowMethods:  []string{"GET", "POST", "OPTIONS"},
			AllowHeaders:  []string{"Content-Type"},
			ExposeHeaders: []string{"Content-Length"},
			MaxAge:        12 * time.Hour,
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "Europe/Stockholm",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: 3600,
		},
		Site: SiteConfig{
			BusinessInbox: "info@refreshing.se",
			BrandName:     "Refreshing",
			TimeZone:      "Europe/Stockholm",
			SMTPTimeout:   5 * time.Second,
		},
	}
}

func NewTestMailConfig() MailConfig {
	return MailConfig{
		Host:     "smtp.test.local",
		Port:     587,
		User:     "booking@refreshing.se",
		Password: "s3cret-pass",
		From:     "Refreshing <booking@refreshing.se>",
	}
}
