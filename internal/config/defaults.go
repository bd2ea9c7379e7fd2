package config

import "github.com/iiot-workflow/wfinit/internal/workflow"

// EnvPrefix is the prefix for environment variable overrides.
const EnvPrefix = "WFINIT_"

// Option keys shared by the options file, environment and flags.
const (
	KeyProjectName    = "project_name"
	KeyProjectType    = "project_type"
	KeyPlatforms      = "platforms"
	KeyTemplateSource = "template_source"
)

// GetDefaults returns the default value for every option key.
func GetDefaults() map[string]any {
	return map[string]any{
		KeyProjectName:    "",
		KeyProjectType:    workflow.DefaultProjectType,
		KeyPlatforms:      "",
		KeyTemplateSource: "",
	}
}
