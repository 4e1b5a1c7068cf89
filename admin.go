package folio

import (
	"crypto/subtle"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"golang.org/x/crypto/bcrypt"

	"github.com/eringen/folio/views"
)

const maxDocumentSize = 1 << 20

// checkPassword compares pass with the configured secret. A secret that looks
// like a bcrypt hash is verified with bcrypt, anything else in constant time.
func (a *App) checkPassword(pass string) bool {
	secret := a.Config.AdminPassword
	if strings.HasPrefix(secret, "$2a$") || strings.HasPrefix(secret, "$2b$") || strings.HasPrefix(secret, "$2y$") {
		return bcrypt.CompareHashAndPassword([]byte(secret), []byte(pass)) == nil
	}
	return subtle.ConstantTimeCompare([]byte(pass), []byte(secret)) == 1
}

func (a *App) handleAdmin(c echo.Context) error {
	if !IsAdmin(c) {
		return Render(c, a.Views.AdminLogin(a.Config.viewSite(), false, CsrfToken(c)))
	}
	return a.renderEditor(c, c.QueryParam("msg"), false, "")
}

func (a *App) handleAdminLogin(c echo.Context) error {
	ip := c.RealIP()
	if !a.loginLimiter.Check(ip) {
		return c.String(http.StatusTooManyRequests, "Too many login attempts. Try again later.")
	}
	if a.checkPassword(c.FormValue("password")) {
		if err := setAdminSession(c); err != nil {
			return err
		}
		return c.Redirect(http.StatusSeeOther, "/admin/")
	}
	a.loginLimiter.Record(ip)
	c.Logger().Infof("admin login rejected from %s", ip)
	return RenderStatus(c, http.StatusUnauthorized, a.Views.AdminLogin(a.Config.viewSite(), true, CsrfToken(c)))
}

func handleAdminLogout(c echo.Context) error {
	if err := clearAdminSession(c); err != nil {
		return err
	}
	return c.Redirect(http.StatusSeeOther, "/admin/")
}

func (a *App) handleAdminSave(c echo.Context) error {
	if !IsAdmin(c) {
		return c.Redirect(http.StatusSeeOther, "/admin/")
	}
	text := c.FormValue("document")
	if _, err := a.SaveDocumentJSON(c.Request().Context(), []byte(text)); err != nil {
		if errors.Is(err, ErrInvalidDocument) {
			return a.renderEditor(c, "Not saved: the document must be a valid JSON object.", true, text)
		}
		c.Logger().Errorf("save document: %v", err)
		return a.renderEditor(c, "Not saved: the document could not be stored. Please try again.", true, text)
	}
	return a.renderEditor(c, "Saved.", false, "")
}

func (a *App) handleAdminReset(c echo.Context) error {
	if !IsAdmin(c) {
		return c.Redirect(http.StatusSeeOther, "/admin/")
	}
	if _, err := a.SaveDocument(c.Request().Context(), a.defaults); err != nil {
		c.Logger().Errorf("reset document: %v", err)
		return a.renderEditor(c, "Reset failed. Please try again.", true, "")
	}
	return a.renderEditor(c, "Document reset to defaults.", false, "")
}

// renderEditor shows the editor. A non-empty text is shown instead of the
// stored document so a rejected edit is not lost.
func (a *App) renderEditor(c echo.Context, msg string, isErr bool, text string) error {
	ctx := c.Request().Context()
	doc := a.currentDocument(ctx)
	if text == "" {
		b, err := json.MarshalIndent(doc, "", "  ")
		if err != nil {
			return err
		}
		text = string(b)
	}
	page := views.EditorPage{
		Site:      a.Config.viewSite(),
		JSON:      text,
		Message:   msg,
		Error:     isErr,
		HeroImage: doc.HeroImage,
		CSRFToken: CsrfToken(c),
	}
	if ts, err := a.Store.DocumentUpdatedAt(ctx, a.Config.DocumentID); err == nil {
		page.UpdatedAt = ts.Local().Format(time.RFC1123)
	}
	status := http.StatusOK
	if isErr {
		status = http.StatusUnprocessableEntity
	}
	return RenderStatus(c, status, a.Views.AdminEditor(page))
}

func (a *App) handleContentAPI(c echo.Context) error {
	doc, err := a.Cache.Document(c.Request().Context())
	if err != nil {
		c.Logger().Errorf("load document: %v", err)
		return c.JSON(http.StatusServiceUnavailable, apiError{Error: "Content is temporarily unavailable."})
	}
	return c.JSON(http.StatusOK, doc)
}

func (a *App) handleContentUpdateAPI(c echo.Context) error {
	if !IsAdmin(c) {
		return c.JSON(http.StatusUnauthorized, apiError{Error: "Unauthorized."})
	}
	body, err := io.ReadAll(io.LimitReader(c.Request().Body, maxDocumentSize+1))
	if err != nil {
		return err
	}
	if len(body) > maxDocumentSize {
		return c.JSON(http.StatusRequestEntityTooLarge, apiError{Error: "Document is too large."})
	}
	doc, err := a.SaveDocumentJSON(c.Request().Context(), body)
	switch {
	case errors.Is(err, ErrInvalidDocument):
		return c.JSON(http.StatusBadRequest, apiError{Error: "Document must be a JSON object."})
	case err != nil:
		c.Logger().Errorf("save document: %v", err)
		return c.JSON(http.StatusInternalServerError, apiError{Error: "Failed to save content."})
	}
	return c.JSON(http.StatusOK, doc)
}
