package content

import (
	_ "embed"
	"fmt"
	"strings"
	"sync"

	"github.com/xeipuuv/gojsonschema"
)

//go:embed schema.json
var schemaJSON []byte

var compiled struct {
	once   sync.Once
	schema *gojsonschema.Schema
	err    error
}

func documentSchema() (*gojsonschema.Schema, error) {
	compiled.once.Do(func() {
		compiled.schema, compiled.err = gojsonschema.NewSchema(gojsonschema.NewBytesLoader(schemaJSON))
	})
	return compiled.schema, compiled.err
}

// Validate checks a serialized document against the document schema. It is
// meant for documents that have already been reconciled; raw saved data is
// expected to fail and should go through Reconcile instead.
func Validate(data []byte) error {
	schema, err := documentSchema()
	if err != nil {
		return fmt.Errorf("load document schema: %w", err)
	}
	res, err := schema.Validate(gojsonschema.NewBytesLoader(data))
	if err != nil {
		return fmt.Errorf("validate document: %w", err)
	}
	if res.Valid() {
		return nil
	}
	msgs := make([]string, 0, len(res.Errors()))
	for _, e := range res.Errors() {
		msgs = append(msgs, e.String())
	}
	return fmt.Errorf("document schema validation failed: %s", strings.Join(msgs, "; "))
}
