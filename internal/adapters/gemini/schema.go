package gemini

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// matchedIDsResponseSchema is sent with the request (OpenAPI subset the API accepts).
var matchedIDsResponseSchema = map[string]any{
	"type": "OBJECT",
	"properties": map[string]any{
		"matchedIds": map[string]any{
			"type":  "ARRAY",
			"items": map[string]any{"type": "STRING"},
		},
	},
	"required": []string{"matchedIds"},
}

// matchedIDsSchema checks what actually came back.
var matchedIDsSchema = jsonschema.MustCompileString("matched_ids.json", `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "required": ["matchedIds"],
  "properties": {
    "matchedIds": {
      "type": "array",
      "items": {"type": "string", "minLength": 1}
    }
  }
}`)

func decodeMatchedIDs(txt string) ([]string, error) {
	dec := json.NewDecoder(bytes.NewReader([]byte(txt)))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, fmt.Errorf("gemini: reply is not JSON: %w", err)
	}
	if err := matchedIDsSchema.Validate(v); err != nil {
		return nil, fmt.Errorf("gemini: reply failed schema: %w", err)
	}
	var out struct {
		MatchedIDs []string `json:"matchedIds"`
	}
	if err := json.Unmarshal([]byte(txt), &out); err != nil {
		return nil, fmt.Errorf("gemini: decode reply: %w", err)
	}
	return out.MatchedIDs, nil
}
