package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/iiot-workflow/wfinit/internal/workflow"
)

// Options are the resolved inputs for one initialization run.
type Options struct {
	ProjectName    string
	ProjectType    string
	Platforms      []string // Recognized platform IDs only, config.yml order not implied
	TemplateSource string
}

// ConfigData converts the options into the data written to config.yml.
func (o *Options) ConfigData() workflow.ConfigData {
	data := workflow.ConfigData{
		ProjectName: o.ProjectName,
		ProjectType: o.ProjectType,
	}
	data.EnablePlatforms(o.Platforms...)
	return data
}

// LoadOptions configures how options are loaded.
type LoadOptions struct {
	// OptionsFile is an optional YAML or JSON file (--config).
	OptionsFile string
	// Overrides holds values from flags the user set explicitly, keyed by option key.
	Overrides map[string]any
	// SkipEnv disables WFINIT_* environment overrides.
	SkipEnv bool
}

// Load resolves options.
// Priority: flags > environment variables > options file > defaults
func Load(opts LoadOptions) (*Options, error) {
	k := koanf.New(".")

	loadDefaults(k)

	if opts.OptionsFile != "" {
		if err := loadOptionsFile(k, opts.OptionsFile); err != nil {
			return nil, err
		}
	}

	if !opts.SkipEnv {
		if err := loadEnvironment(k); err != nil {
			return nil, err
		}
	}

	for key, value := range opts.Overrides {
		if err := k.Set(key, value); err != nil {
			return nil, fmt.Errorf("apply flag %s: %w", key, err)
		}
	}

	return finalize(k), nil
}

// loadDefaults applies default option values
func loadDefaults(k *koanf.Koanf) {
	for key, value := range GetDefaults() {
		_ = k.Set(key, value)
	}
}

// loadOptionsFile loads a YAML or JSON options file, chosen by extension.
func loadOptionsFile(k *koanf.Koanf, path string) error {
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("%w: %s", ErrOptionsFileNotFound, path)
	}

	var parser koanf.Parser
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yml", ".yaml":
		parser = yaml.Parser()
	case ".json":
		parser = json.Parser()
	default:
		return fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}

	if err := k.Load(file.Provider(path), parser); err != nil {
		return fmt.Errorf("load options file %s: %w", path, err)
	}
	return nil
}

// loadEnvironment loads WFINIT_* environment variable overrides
func loadEnvironment(k *koanf.Koanf) error {
	if err := k.Load(env.Provider(EnvPrefix, ".", envTransform), nil); err != nil {
		return fmt.Errorf("load environment options: %w", err)
	}
	return nil
}

// envTransform maps WFINIT_PROJECT_NAME to project_name.
func envTransform(s string) string {
	return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
}

// finalize reads the merged values into Options.
func finalize(k *koanf.Koanf) *Options {
	return &Options{
		ProjectName:    k.String(KeyProjectName),
		ProjectType:    k.String(KeyProjectType),
		Platforms:      platformsValue(k.Get(KeyPlatforms)),
		TemplateSource: k.String(KeyTemplateSource),
	}
}

// platformsValue accepts a comma-separated string (flags, environment) or a
// list (options file). Unknown platform names are dropped.
func platformsValue(v any) []string {
	switch val := v.(type) {
	case string:
		return workflow.ParsePlatformList(val)
	case []string:
		return workflow.ParsePlatformList(strings.Join(val, ","))
	case []any:
		parts := make([]string, 0, len(val))
		for _, item := range val {
			parts = append(parts, fmt.Sprint(item))
		}
		return workflow.ParsePlatformList(strings.Join(parts, ","))
	default:
		return nil
	}
}
