package analyses

import (
	_ "embed"
	"fmt"
	"strings"
	"sync"

	"github.com/xeipuuv/gojsonschema"
)

//go:embed schema/result.schema.json
var resultSchemaJSON []byte

var (
	resultSchemaOnce sync.Once
	resultSchema     *gojsonschema.Schema
	resultSchemaErr  error
)

func loadResultSchema() (*gojsonschema.Schema, error) {
	resultSchemaOnce.Do(func() {
		resultSchema, resultSchemaErr = gojsonschema.NewSchema(gojsonschema.NewBytesLoader(resultSchemaJSON))
	})
	return resultSchema, resultSchemaErr
}

// ResultSchema returns the embedded JSON Schema of Result.
func ResultSchema() []byte {
	return append([]byte(nil), resultSchemaJSON...)
}

// ValidateResult checks r against the embedded JSON Schema.
func ValidateResult(r Result) error {
	schema, err := loadResultSchema()
	if err != nil {
		return fmt.Errorf("load result schema: %w", err)
	}
	res, err := schema.Validate(gojsonschema.NewGoLoader(r))
	if err != nil {
		return fmt.Errorf("validate result: %w", err)
	}
	if res.Valid() {
		return nil
	}
	msgs := make([]string, 0, len(res.Errors()))
	for _, e := range res.Errors() {
		msgs = append(msgs, e.String())
	}
	return fmt.Errorf("%w: %s", ErrInvalidOutput, strings.Join(msgs, "; "))
}
