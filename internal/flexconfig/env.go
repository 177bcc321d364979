package flexconfig

import (
	"os"
	"strconv"
	"strings"
)

// envVarSpec maps an environment variable to a config key and its parsed
// type, mirroring config/env.go's EnvVarSpec but flattened to this
// package's single-level Config (no nested paths needed).
type envVarSpec struct {
	name string
	key  string
	kind string // "string" | "int" | "bool"
}

var envVars = []envVarSpec{
	{name: "FLEXACC_LOG_LEVEL", key: "log_level", kind: "string"},
	{name: "FLEXACC_LOG_JSON", key: "log_json", kind: "bool"},
	{name: "FLEXACC_CACHE_CAPACITY", key: "cache_capacity", kind: "int"},
	{name: "FLEXACC_BATCH_CONCURRENCY", key: "batch_concurrency", kind: "int"},
	{name: "FLEXACC_TELEMETRY_ENABLED", key: "telemetry_enabled", kind: "bool"},
	{name: "FLEXACC_REPORT_FORMAT", key: "report_format", kind: "string"},
}

// envOverrides builds a config override map from whichever of envVars are
// set in the process environment.
func envOverrides() (map[string]any, error) {
	overrides := make(map[string]any)
	for _, spec := range envVars {
		raw, ok := os.LookupEnv(spec.name)
		if !ok {
			continue
		}
		value, err := parseEnvValue(raw, spec.kind)
		if err != nil {
			return nil, err
		}
		overrides[spec.key] = value
	}
	return overrides, nil
}

func parseEnvValue(raw, kind string) (any, error) {
	switch kind {
	case "int":
		return strconv.Atoi(strings.TrimSpace(raw))
	case "bool":
		return strconv.ParseBool(strings.TrimSpace(raw))
	default:
		return raw, nil
	}
}
