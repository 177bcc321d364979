package flexconfig

import (
	"fmt"

	"github.com/flexacc/flexacc/internal/flexerr"
)

// Load builds the effective Config by layering, lowest priority first:
// built-in Defaults(), an optional YAML file (explicitPath if given,
// otherwise the first of searchPaths() that exists), then environment
// variable overrides. The merged result is validated against the
// embedded schema before being decoded back into a Config.
func Load(explicitPath string) (Config, error) {
	merged, err := toMap(Defaults())
	if err != nil {
		return Config{}, flexerr.Wrap("flexacc.config.defaults", err)
	}

	filePath := explicitPath
	if filePath == "" {
		filePath = firstExisting(searchPaths())
	}
	if filePath != "" {
		fileLayer, err := loadYAMLFile(filePath)
		if err != nil {
			return Config{}, flexerr.Wrap("flexacc.config.file", fmt.Errorf("load %s: %w", filePath, err))
		}
		merged = mergeMaps(merged, fileLayer)
	}

	envLayer, err := envOverrides()
	if err != nil {
		return Config{}, flexerr.Wrap("flexacc.config.env", err)
	}
	merged = mergeMaps(merged, envLayer)

	if err := Validate(merged); err != nil {
		return Config{}, flexerr.Wrap("flexacc.config.invalid", err).WithSeverity(flexerr.SeverityHigh)
	}

	cfg, err := fromMap(merged)
	if err != nil {
		return Config{}, flexerr.Wrap("flexacc.config.decode", err)
	}
	return cfg, nil
}
