package flexreport

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

//go:embed report_schema.json
var reportSchemaJSON []byte

var compiledReportSchema = mustCompileReportSchema()

func mustCompileReportSchema() *jsonschema.Schema {
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("flexacc-report.json", bytes.NewReader(reportSchemaJSON)); err != nil {
		panic(fmt.Sprintf("flexreport: invalid embedded schema: %v", err))
	}
	schema, err := compiler.Compile("flexacc-report.json")
	if err != nil {
		panic(fmt.Sprintf("flexreport: schema failed to compile: %v", err))
	}
	return schema
}

// RenderJSON marshals r and validates it against the embedded report
// schema before returning it, so a malformed report never reaches a
// consumer silently.
func RenderJSON(r Report) ([]byte, error) {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("flexreport: marshal report: %w", err)
	}

	var payload any
	if err := json.Unmarshal(data, &payload); err != nil {
		return nil, fmt.Errorf("flexreport: decode report for validation: %w", err)
	}
	if err := compiledReportSchema.Validate(payload); err != nil {
		return nil, fmt.Errorf("flexreport: report failed schema validation: %w", err)
	}
	return data, nil
}
