package plan

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/xeipuuv/gojsonschema"
	"gopkg.in/yaml.v3"
)

var schemaLoader = gojsonschema.NewStringLoader(Schema)

// ValidateJSON checks a JSON plan document against the embedded schema.
func ValidateJSON(b []byte) error {
	result, err := gojsonschema.Validate(schemaLoader, gojsonschema.NewBytesLoader(b))
	if err != nil {
		return fmt.Errorf("plan json parse: %w", err)
	}
	if !result.Valid() {
		return fmt.Errorf("plan json invalid: %s", collect(result.Errors()))
	}
	return nil
}

// ValidateYAML converts a YAML plan to JSON and validates it with the same
// schema as ValidateJSON.
func ValidateYAML(b []byte) error {
	var v any
	if err := yaml.Unmarshal(b, &v); err != nil {
		return fmt.Errorf("yaml parse: %w", err)
	}
	jb, err := json.Marshal(v)
	if err != nil {
		return err
	}
	result, err := gojsonschema.Validate(schemaLoader, gojsonschema.NewBytesLoader(jb))
	if err != nil {
		return err
	}
	if !result.Valid() {
		return fmt.Errorf("plan yaml invalid: %s", collect(result.Errors()))
	}
	return nil
}

func collect(errs []gojsonschema.ResultError) string {
	var buf bytes.Buffer
	for _, e := range errs {
		buf.WriteString(e.String())
		buf.WriteByte(';')
	}
	return buf.String()
}
