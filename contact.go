package folio

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/eringen/folio/mail"
)

type contactResponse struct {
	Message   string `json:"message"`
	Reference string `json:"reference"`
}

func (a *App) handleContact(c echo.Context) error {
	if !a.contactLimiter.Allow(c.RealIP()) {
		a.metrics.contact.WithLabelValues("limited").Inc()
		return c.JSON(http.StatusTooManyRequests, apiError{Error: "Too many messages. Please try again later."})
	}

	var req mail.ContactRequest
	if err := c.Bind(&req); err != nil {
		a.metrics.contact.WithLabelValues("invalid").Inc()
		return c.JSON(http.StatusBadRequest, apiError{Error: "Invalid request body."})
	}
	if fe := req.Validate(); fe != nil {
		a.metrics.contact.WithLabelValues("invalid").Inc()
		msg := "Please check the highlighted fields."
		for _, v := range fe {
			if v == "required" {
				msg = "Missing required fields"
				break
			}
		}
		return c.JSON(http.StatusBadRequest, apiError{Error: msg, Fields: fe})
	}

	if a.sender == nil {
		a.metrics.contact.WithLabelValues("unconfigured").Inc()
		c.Logger().Errorf("contact: no email provider configured")
		return c.JSON(http.StatusInternalServerError, apiError{Error: "Email service is not configured."})
	}

	ctx := c.Request().Context()
	to := a.Config.ContactTo
	if to == "" {
		to = a.currentDocument(ctx).Email
	}
	msg, err := mail.Notification(req, to, a.Config.ContactFrom)
	if err != nil {
		return err
	}

	ref := uuid.NewString()
	id, err := a.sender.Send(ctx, msg)
	if err != nil {
		a.metrics.contact.WithLabelValues("failed").Inc()
		c.Logger().Errorf("contact %s: send: %v", ref, err)
		return c.JSON(http.StatusInternalServerError, apiError{Error: "Failed to send email."})
	}
	a.metrics.contact.WithLabelValues("sent").Inc()
	c.Logger().Infof("contact %s: delivered as %s", ref, id)
	return c.JSON(http.StatusOK, contactResponse{Message: "Email sent successfully!", Reference: ref})
}
