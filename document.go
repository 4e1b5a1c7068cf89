package folio

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/eringen/folio/content"
)

// ErrInvalidDocument is returned when submitted document text is not a JSON object.
var ErrInvalidDocument = errors.New("folio: document must be a JSON object")

// SaveDocument reconciles d against the defaults, persists it and refreshes
// the cache. It returns the document as stored.
func (a *App) SaveDocument(ctx context.Context, d content.Document) (content.Document, error) {
	raw, err := content.Marshal(d)
	if err != nil {
		a.metrics.saves.WithLabelValues("error").Inc()
		return content.Document{}, fmt.Errorf("folio: encode document: %w", err)
	}
	return a.SaveDocumentJSON(ctx, raw)
}

// SaveDocumentJSON is SaveDocument for document text, as submitted by the
// editor. Text that is not a JSON object yields ErrInvalidDocument and
// nothing is persisted.
func (a *App) SaveDocumentJSON(ctx context.Context, raw []byte) (content.Document, error) {
	var obj map[string]any
	if err := json.Unmarshal(raw, &obj); err != nil || obj == nil {
		a.metrics.saves.WithLabelValues("invalid").Inc()
		return content.Document{}, ErrInvalidDocument
	}
	doc := content.Reconcile(obj, a.defaults)
	body, err := content.Marshal(doc)
	if err != nil {
		a.metrics.saves.WithLabelValues("error").Inc()
		return content.Document{}, fmt.Errorf("folio: encode document: %w", err)
	}
	if err := content.Validate(body); err != nil {
		a.metrics.saves.WithLabelValues("invalid").Inc()
		return content.Document{}, fmt.Errorf("folio: %w", err)
	}
	if err := a.Store.PutDocument(ctx, a.Config.DocumentID, body); err != nil {
		a.metrics.saves.WithLabelValues("error").Inc()
		return content.Document{}, err
	}
	a.Cache.Set(doc)
	a.metrics.saves.WithLabelValues("ok").Inc()
	return doc, nil
}

// currentDocument returns the cached document, or the defaults when the
// store cannot be read. The error is logged once per call.
func (a *App) currentDocument(ctx context.Context) content.Document {
	doc, err := a.Cache.Document(ctx)
	if err != nil {
		a.Echo.Logger.Errorf("load document: %v", err)
		return a.Cache.Defaults()
	}
	return doc
}
