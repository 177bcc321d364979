// Package flexconfig loads the CLI's layered configuration (defaults,
// then an XDG/dotfile YAML file, then environment variable overrides),
// validating the merged result against an embedded JSON Schema.
//
// Grounded on config/config.go, config/layered.go, config/xdg.go and
// config/env.go, trimmed to a single flat schema: the elaborate
// multi-category "crucible" catalog and its metaschema-bundle resolver
// (schema/validator.go's localLoader) have no use here since this config
// has no $ref chains to resolve — see DESIGN.md.
package flexconfig

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"gopkg.in/yaml.v3"

	"github.com/flexacc/flexacc/internal/flexlog"
)

//go:embed schema.json
var schemaJSON []byte

// Config is the flexacc CLI's configuration surface. Coefficient grid
// values are not configurable here: they are a fixed property of the
// scoring algorithm, not a deployment concern.
type Config struct {
	LogLevel         flexlog.Severity `yaml:"log_level" json:"log_level"`
	LogJSON          bool             `yaml:"log_json" json:"log_json"`
	CacheCapacity    int              `yaml:"cache_capacity" json:"cache_capacity"`
	BatchConcurrency int              `yaml:"batch_concurrency" json:"batch_concurrency"`
	TelemetryEnabled bool             `yaml:"telemetry_enabled" json:"telemetry_enabled"`
	ReportFormat     string           `yaml:"report_format" json:"report_format"`
}

// Defaults returns the built-in configuration used when no file or
// environment override is present.
func Defaults() Config {
	return Config{
		LogLevel:         flexlog.INFO,
		LogJSON:          false,
		CacheCapacity:    10000,
		BatchConcurrency: 4,
		TelemetryEnabled: true,
		ReportFormat:     "ascii",
	}
}

var compiledSchema = mustCompileSchema()

func mustCompileSchema() *jsonschema.Schema {
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("flexacc-config.json", bytes.NewReader(schemaJSON)); err != nil {
		panic(fmt.Sprintf("flexconfig: invalid embedded schema: %v", err))
	}
	schema, err := compiler.Compile("flexacc-config.json")
	if err != nil {
		panic(fmt.Sprintf("flexconfig: schema failed to compile: %v", err))
	}
	return schema
}

// Validate checks a merged configuration map against the embedded schema,
// returning the first validation error (if any) in a human-readable form.
func Validate(merged map[string]any) error {
	// Round-trip through JSON so numeric types match what the schema
	// library expects from a decoded JSON document (e.g. float64 rather
	// than a YAML-decoded int), regardless of where merged came from.
	data, err := json.Marshal(merged)
	if err != nil {
		return fmt.Errorf("encode config for validation: %w", err)
	}
	var payload any
	if err := json.Unmarshal(data, &payload); err != nil {
		return fmt.Errorf("decode config for validation: %w", err)
	}
	return compiledSchema.Validate(payload)
}

// toMap round-trips a Config through JSON to get a plain map[string]any
// suitable for schema validation and YAML merging.
func toMap(cfg Config) (map[string]any, error) {
	data, err := json.Marshal(cfg)
	if err != nil {
		return nil, err
	}
	var m map[string]any
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, err
	}
	return m, nil
}

func fromMap(m map[string]any) (Config, error) {
	data, err := json.Marshal(m)
	if err != nil {
		return Config{}, err
	}
	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func loadYAMLFile(path string) (map[string]any, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- path comes from XDG search or an explicit CLI flag
	if err != nil {
		return nil, err
	}
	if len(data) == 0 {
		return map[string]any{}, nil
	}
	var raw any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse %s: %w", filepath.Base(path), err)
	}
	return normalizeToStringMap(raw)
}

func normalizeToStringMap(value any) (map[string]any, error) {
	switch v := value.(type) {
	case map[string]any:
		return v, nil
	case map[any]any:
		out := make(map[string]any, len(v))
		for k, val := range v {
			sk, ok := k.(string)
			if !ok {
				return nil, fmt.Errorf("non-string config key %v", k)
			}
			out[sk] = val
		}
		return out, nil
	default:
		return nil, fmt.Errorf("config file must contain an object at the top level")
	}
}

func mergeMaps(base, overlay map[string]any) map[string]any {
	if base == nil {
		base = make(map[string]any)
	}
	for k, v := range overlay {
		base[k] = v
	}
	return base
}
