package folio

import (
	"encoding/json"
	"errors"
	"iter"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/eringen/folio/chat"
	"github.com/eringen/folio/content"
)

type chatRequest struct {
	History       []chat.Message  `json:"history"`
	PortfolioData json.RawMessage `json:"portfolioData,omitempty"`
}

func (a *App) handleChat(c echo.Context) error {
	if !a.chatLimiter.Allow(c.RealIP()) {
		a.metrics.chat.WithLabelValues("limited").Inc()
		return c.JSON(http.StatusTooManyRequests, apiError{Error: "Too many messages. Please wait a moment."})
	}
	if a.streamer == nil {
		a.metrics.chat.WithLabelValues("unconfigured").Inc()
		c.Logger().Errorf("chat: no model API key configured")
		return c.JSON(http.StatusInternalServerError, apiError{Error: "AI API key is not configured on the server."})
	}

	var req chatRequest
	if err := json.NewDecoder(c.Request().Body).Decode(&req); err != nil {
		a.metrics.chat.WithLabelValues("invalid").Inc()
		return c.JSON(http.StatusBadRequest, apiError{Error: "Invalid request body."})
	}
	history, err := chat.Normalize(req.History, a.Config.ChatMaxTurns)
	if err != nil {
		a.metrics.chat.WithLabelValues("invalid").Inc()
		if errors.Is(err, chat.ErrEmptyHistory) {
			return c.JSON(http.StatusBadRequest, apiError{Error: "No user message to process."})
		}
		return c.JSON(http.StatusBadRequest, apiError{Error: "Invalid chat history."})
	}

	ctx := c.Request().Context()
	doc := a.currentDocument(ctx)
	if len(req.PortfolioData) > 0 {
		doc = content.ReconcileJSON(req.PortfolioData, doc)
	}
	system := chat.SystemInstruction(content.Summary(doc))

	next, stop := iter.Pull2(a.streamer.Stream(ctx, system, history))
	defer stop()

	frag, err, ok := next()
	if ok && err != nil {
		a.metrics.chat.WithLabelValues("upstream_error").Inc()
		c.Logger().Errorf("chat: %v", err)
		return c.JSON(http.StatusBadGateway, apiError{Error: "The assistant is unavailable right now. Please try again later."})
	}

	res := c.Response()
	res.Header().Set(echo.HeaderContentType, echo.MIMETextPlainCharsetUTF8)
	res.Header().Set("Cache-Control", "no-store")
	res.WriteHeader(http.StatusOK)
	outcome := "ok"
	for ; ok; frag, err, ok = next() {
		if err != nil {
			c.Logger().Errorf("chat: stream interrupted: %v", err)
			outcome = "interrupted"
			break
		}
		if _, werr := res.Write([]byte(frag)); werr != nil {
			outcome = "client_gone"
			break
		}
		res.Flush()
	}
	a.metrics.chat.WithLabelValues(outcome).Inc()
	return nil
}
