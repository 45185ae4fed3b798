package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"
	"github.com/thenoetrevino/quadro/internal/models"
)

const boardSchemaURL = "quadro://board.schema.json"

// boardSchema only constrains the four known keys; anything else in the
// file is allowed and ignored on load.
var boardSchema = jsonschema.MustCompileString(boardSchemaURL, boardSchemaSource())

func boardSchemaSource() string {
	props := make(map[string]any, models.NumCategories)
	for _, c := range models.Categories() {
		props[c.DisplayName()] = map[string]any{
			"type":  "array",
			"items": map[string]any{"type": "string"},
		}
	}

	data, err := json.Marshal(map[string]any{
		"type":       "object",
		"properties": props,
	})
	if err != nil {
		panic(fmt.Sprintf("marshal board schema: %v", err))
	}
	return string(data)
}

// validateDocument checks a decoded JSON value against the board schema
func validateDocument(doc any) error {
	err := boardSchema.Validate(doc)
	if err == nil {
		return nil
	}

	var ve *jsonschema.ValidationError
	if !errors.As(err, &ve) {
		return err
	}

	var msgs []string
	collectSchemaMessages(ve, &msgs)
	return errors.New(strings.Join(msgs, "; "))
}

func collectSchemaMessages(ve *jsonschema.ValidationError, msgs *[]string) {
	if len(ve.Causes) == 0 {
		loc := ve.InstanceLocation
		if loc == "" {
			loc = "/"
		}
		*msgs = append(*msgs, fmt.Sprintf("at %s: %s", loc, ve.Message))
		return
	}
	for _, cause := range ve.Causes {
		collectSchemaMessages(cause, msgs)
	}
}
