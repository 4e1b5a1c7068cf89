// Package folio is a self-hosted portfolio site built with Go, Echo, and templ.
// It serves a single editable portfolio document, an admin editor, an AI chat
// widget backed by Gemini and a contact form that emails the owner.
//
// Pages are rendered by the components in ViewFuncs; any field left nil
// falls back to the components of the views package.
package folio

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"time"

	"github.com/a-h/templ"
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"

	"github.com/eringen/folio/chat"
	"github.com/eringen/folio/content"
	"github.com/eringen/folio/mail"
	"github.com/eringen/folio/views"
)

// ViewFuncs holds the templ components the App calls when rendering pages.
type ViewFuncs struct {
	Home        func(page views.HomePage) templ.Component
	AdminLogin  func(site views.SiteConfig, showError bool, csrfToken string) templ.Component
	AdminEditor func(page views.EditorPage) templ.Component
	AdminImages func(site views.SiteConfig, images []Image, heroImage, csrfToken string) templ.Component
	NotFound    func(site views.SiteConfig) templ.Component
	ServerError func(site views.SiteConfig) templ.Component
}

func (v *ViewFuncs) fillDefaults() {
	if v.Home == nil {
		v.Home = views.Home
	}
	if v.AdminLogin == nil {
		v.AdminLogin = views.AdminLogin
	}
	if v.AdminEditor == nil {
		v.AdminEditor = views.AdminEditor
	}
	if v.AdminImages == nil {
		v.AdminImages = views.AdminImages
	}
	if v.NotFound == nil {
		v.NotFound = views.NotFound
	}
	if v.ServerError == nil {
		v.ServerError = views.ServerError
	}
}

// App is the central folio application. It wires together the store,
// cache, handlers, middleware, and templates.
type App struct {
	Config SiteConfig
	Echo   *echo.Echo
	Store  *Store
	Cache  *DocumentCache
	Views  ViewFuncs

	loginLimiter   *RateLimiter
	chatLimiter    *RateLimiter
	contactLimiter *RateLimiter
	metrics        *metrics
	streamer       chat.Streamer
	sender         mail.Sender
	defaults       content.Document
	customRoutes   []func(*App)
	staticDir      string
	ready          bool
}

// New creates a new folio App with the given configuration and view functions.
func New(cfg SiteConfig, vf ViewFuncs, opts ...Option) *App {
	cfg.setDefaults()
	vf.fillDefaults()

	a := &App{
		Config:    cfg,
		Echo:      echo.New(),
		Views:     vf,
		defaults:  content.Default(),
		metrics:   newMetrics(),
		staticDir: "public",
	}
	a.Echo.HideBanner = true

	for _, opt := range opts {
		opt(a)
	}

	return a
}

func (c SiteConfig) viewSite() views.SiteConfig {
	return views.SiteConfig{Name: c.Name, URL: c.URL, Description: c.Description}
}

// Setup opens the store and registers middleware and routes without
// starting the server. Start calls it when needed.
func (a *App) Setup() error {
	if a.ready {
		return nil
	}
	if a.Config.AdminPassword == "" {
		return fmt.Errorf("folio: AdminPassword is required")
	}
	if a.Config.SessionSecret == "" {
		return fmt.Errorf("folio: SessionSecret is required")
	}

	store, err := NewStore(a.Config.DatabasePath)
	if err != nil {
		return fmt.Errorf("folio: init store: %w", err)
	}
	a.Store = store
	a.Cache = NewDocumentCache(a.Store, a.Config.DocumentID, a.defaults, a.Config.DocumentCacheTTL, a.Echo.Logger)

	a.loginLimiter = NewRateLimiter(5, time.Minute)
	a.chatLimiter = NewRateLimiter(20, time.Minute)
	a.contactLimiter = NewRateLimiter(5, time.Minute)

	if a.streamer == nil && a.Config.GeminiAPIKey != "" {
		gc := chat.NewGeminiClient(a.Config.GeminiAPIKey, a.Config.GeminiModel)
		if a.Config.GeminiBaseURL != "" {
			gc.BaseURL = a.Config.GeminiBaseURL
		}
		a.streamer = gc
	}
	if a.sender == nil {
		a.sender = a.newSender()
	}

	a.setupMiddleware()
	a.setupRoutes()
	for _, fn := range a.customRoutes {
		fn(a)
	}
	a.ready = true
	return nil
}

func (a *App) newSender() mail.Sender {
	if a.Config.ResendAPIKey != "" {
		rs := mail.NewResendSender(a.Config.ResendAPIKey)
		if a.Config.ResendBaseURL != "" {
			rs.BaseURL = a.Config.ResendBaseURL
		}
		return rs
	}
	if ss := mail.NewSMTPSender(a.Config.SMTP); ss.IsConfigured() {
		return ss
	}
	return nil
}

// Start sets the App up and serves until the server is shut down.
func (a *App) Start() error {
	if err := a.Setup(); err != nil {
		return err
	}
	if err := a.Echo.Start(a.Config.Addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown stops the server gracefully, then releases resources.
func (a *App) Shutdown(ctx context.Context) error {
	err := a.Echo.Shutdown(ctx)
	if cerr := a.Close(); err == nil {
		err = cerr
	}
	return err
}

func (a *App) setupRoutes() {
	e := a.Echo

	// Embedded assets are served under /public/ and take precedence over the
	// user's static dir.
	embeddedFS, _ := fs.Sub(EmbeddedAssets, "embedded")
	embeddedHandler := http.FileServer(http.FS(embeddedFS))
	e.GET("/public/site.js", echo.WrapHandler(http.StripPrefix("/public/", embeddedHandler)))
	e.GET("/public/site.css", echo.WrapHandler(http.StripPrefix("/public/", embeddedHandler)))

	e.Static("/public", a.staticDir)
	e.GET("/favicon.svg", a.handleFavicon)
	e.GET("/robots.txt", a.handleRobots)
	e.GET("/sitemap.xml", a.handleSitemap)
	e.GET("/", a.handleHome)

	e.GET("/api/content", a.handleContentAPI)
	e.PUT("/api/admin/content", a.handleContentUpdateAPI)
	e.POST("/api/chat", a.handleChat)
	e.POST("/api/contact", a.handleContact)

	e.GET("/admin/", a.handleAdmin)
	e.POST("/admin/login/", a.handleAdminLogin)
	e.POST("/admin/logout/", handleAdminLogout)
	e.POST("/admin/save/", a.handleAdminSave)
	e.POST("/admin/reset/", a.handleAdminReset)
	e.GET("/admin/images/", a.handleImageList)
	e.POST("/admin/images/upload/", a.handleImageUpload)
	e.DELETE("/admin/images/:filename/", a.handleImageDelete)
	e.POST("/admin/images/:filename/hero/", a.handleImageSetHero)

	if a.Config.MetricsEnabled {
		e.GET("/metrics", echoprometheus.NewHandlerWithConfig(echoprometheus.HandlerConfig{
			Gatherer: a.metrics.registry,
		}))
	}
}

// Close cleans up resources. Call this when the app is shutting down.
func (a *App) Close() error {
	for _, l := range []*RateLimiter{a.loginLimiter, a.chatLimiter, a.contactLimiter} {
		if l != nil {
			l.Stop()
		}
	}
	if a.Store != nil {
		return a.Store.Close()
	}
	return nil
}
