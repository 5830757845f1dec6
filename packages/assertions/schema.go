package assertions

import (
	"github.com/xeipuuv/gojsonschema"
)

// recordSchemaJSON constrains the JSON types of record fields. Required
// fields and kind-specific rules are checked when the assertion is built.
const recordSchemaJSON = `{
  "type": "object",
  "properties": {
    "document-id":    {"type": "string"},
    "pdf":            {"type": "string"},
    "page":           {"type": "integer"},
    "id":             {"type": "string"},
    "type":           {"type": "string"},
    "max_diffs":      {"type": "integer", "minimum": 0},
    "url":            {"type": ["string", "null"]},
    "checked":        {"enum": ["verified", "rejected", "unchecked", null]},
    "text":           {"type": "string"},
    "case_sensitive": {"type": "boolean"},
    "first_n":        {"type": ["integer", "null"], "minimum": 0},
    "last_n":         {"type": ["integer", "null"], "minimum": 0},
    "before":         {"type": "string"},
    "after":          {"type": "string"},
    "cell":           {"type": "string"},
    "up":             {"type": ["string", "null"]},
    "down":           {"type": ["string", "null"]},
    "left":           {"type": ["string", "null"]},
    "right":          {"type": ["string", "null"]},
    "top_heading":    {"type": ["string", "null"]},
    "left_heading":   {"type": ["string", "null"]},
    "max_repeats":    {"type": "integer"},
    "math":           {"type": "string"}
  }
}`

var recordSchema = mustSchema(recordSchemaJSON)

func mustSchema(src string) *gojsonschema.Schema {
	schema, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(src))
	if err != nil {
		panic(err)
	}
	return schema
}

// checkSchema reports the first schema violation of a JSON record.
func checkSchema(data []byte) error {
	result, err := recordSchema.Validate(gojsonschema.NewBytesLoader(data))
	if err != nil {
		return &ValidationError{Field: "(root)", Reason: "schema validation error", Err: err}
	}
	if result.Valid() {
		return nil
	}
	first := result.Errors()[0]
	return &ValidationError{Field: first.Field(), Reason: first.Description()}
}
