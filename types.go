package folio

import "github.com/eringen/folio/views"

// Image is the metadata of an uploaded file under <static>/uploads.
type Image = views.Image

// apiError is the JSON error body of every /api/ endpoint.
type apiError struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields,omitempty"`
}
