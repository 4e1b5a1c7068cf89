package folio

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/eringen/folio/chat"
	"github.com/eringen/folio/content"
	"github.com/eringen/folio/mail"
)

// SiteConfig holds all configuration for a folio site.
type SiteConfig struct {
	Name        string // Site name (default "Portfolio")
	URL         string // Canonical URL (default "http://localhost:3000")
	Description string // Site description for meta tags

	Addr         string // Listen address (default ":3000")
	DatabasePath string // SQLite path (default "data/folio.db")
	DocumentID   string // Stored document id (default "portfolio")

	AdminPassword string // Required: editor secret, plain text or a bcrypt hash
	SessionSecret string // Required: session encryption secret
	CookieSecure  bool   // Set true for HTTPS

	GeminiAPIKey  string // Chat is unavailable when empty
	GeminiModel   string
	GeminiBaseURL string

	ResendAPIKey  string
	ResendBaseURL string
	SMTP          mail.SMTPConfig
	ContactTo     string // Recipient of contact notifications (default the document email)
	ContactFrom   string // default "Portfolio Contact <onboarding@resend.dev>"

	MetricsEnabled bool

	DocumentCacheTTL time.Duration // Document cache TTL (default 5min)
	ChatMaxTurns     int           // History turns forwarded to the model (default 20)
}

func (c *SiteConfig) setDefaults() {
	if c.Name == "" {
		c.Name = "Portfolio"
	}
	if c.URL == "" {
		c.URL = "http://localhost:3000"
	}
	if c.Addr == "" {
		c.Addr = ":3000"
	}
	if c.DatabasePath == "" {
		c.DatabasePath = "data/folio.db"
	}
	if c.DocumentID == "" {
		c.DocumentID = "portfolio"
	}
	if c.GeminiModel == "" {
		c.GeminiModel = chat.DefaultGeminiModel
	}
	if c.ContactFrom == "" {
		c.ContactFrom = "Portfolio Contact <onboarding@resend.dev>"
	}
	if c.DocumentCacheTTL == 0 {
		c.DocumentCacheTTL = 5 * time.Minute
	}
	if c.ChatMaxTurns == 0 {
		c.ChatMaxTurns = 20
	}
}

// ConfigFromEnv reads a SiteConfig from environment variables. Unset values
// are left for setDefaults.
func ConfigFromEnv() SiteConfig {
	return SiteConfig{
		Name:          os.Getenv("SITE_NAME"),
		URL:           os.Getenv("SITE_URL"),
		Description:   os.Getenv("SITE_DESCRIPTION"),
		Addr:          os.Getenv("ADDR"),
		DatabasePath:  os.Getenv("DATABASE_PATH"),
		DocumentID:    os.Getenv("DOCUMENT_ID"),
		AdminPassword: os.Getenv("ADMIN_PASSWORD"),
		SessionSecret: os.Getenv("ADMIN_SESSION_SECRET"),
		CookieSecure:  envBool("COOKIE_SECURE"),
		GeminiAPIKey:  EnvOr("GEMINI_API_KEY", os.Getenv("API_KEY")),
		GeminiModel:   os.Getenv("GEMINI_MODEL"),
		GeminiBaseURL: os.Getenv("GEMINI_BASE_URL"),
		ResendAPIKey:  os.Getenv("RESEND_API_KEY"),
		ResendBaseURL: os.Getenv("RESEND_BASE_URL"),
		SMTP: mail.SMTPConfig{
			Host:     os.Getenv("SMTP_HOST"),
			Port:     EnvOr("SMTP_PORT", "587"),
			Username: os.Getenv("SMTP_USERNAME"),
			Password: os.Getenv("SMTP_PASSWORD"),
		},
		ContactTo:        os.Getenv("CONTACT_TO"),
		ContactFrom:      os.Getenv("CONTACT_FROM"),
		MetricsEnabled:   envBool("METRICS_ENABLED"),
		DocumentCacheTTL: envDuration("DOCUMENT_CACHE_TTL"),
	}
}

// EnvOr returns the value of the environment variable key, or fallback if empty.
func EnvOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envBool(key string) bool {
	v, _ := strconv.ParseBool(strings.TrimSpace(os.Getenv(key)))
	return v
}

func envDuration(key string) time.Duration {
	d, _ := time.ParseDuration(strings.TrimSpace(os.Getenv(key)))
	return d
}

// Option configures additional App behavior.
type Option func(*App)

// WithCustomRoutes registers additional routes on the Echo instance.
// The callback receives the App after the built-in routes are registered.
func WithCustomRoutes(fn func(*App)) Option {
	return func(a *App) {
		a.customRoutes = append(a.customRoutes, fn)
	}
}

// WithStaticDir sets the directory for user-owned static assets (default "public").
func WithStaticDir(dir string) Option {
	return func(a *App) {
		a.staticDir = dir
	}
}

// WithDefaults replaces the built-in default document.
func WithDefaults(d content.Document) Option {
	return func(a *App) {
		a.defaults = content.Clone(d)
	}
}

// WithChatStreamer replaces the Gemini client built from the config.
func WithChatStreamer(s chat.Streamer) Option {
	return func(a *App) {
		a.streamer = s
	}
}

// WithMailSender replaces the sender built from the config.
func WithMailSender(s mail.Sender) Option {
	return func(a *App) {
		a.sender = s
	}
}
