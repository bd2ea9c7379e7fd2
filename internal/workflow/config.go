package workflow

import (
	"maps"
	"slices"
)

// Defaults applied when the caller leaves a field empty.
const (
	DefaultProjectName = "My Project"
	DefaultProjectType = "application"
)

// ConfigData carries the recognized configuration options for config.yml.
type ConfigData struct {
	ProjectName string          // Display name; DefaultProjectName when empty
	ProjectType string          // DefaultProjectType when empty
	Platforms   map[string]bool // Enabled flag per platform ID; missing means false
}

// ConfigDataFromMap builds ConfigData from the option-name mapping form:
// "project_name", "project_type", and one boolean per platform ID. Values of
// the wrong type and unrecognized keys are ignored.
func ConfigDataFromMap(m map[string]any) ConfigData {
	var data ConfigData
	if v, ok := m["project_name"].(string); ok {
		data.ProjectName = v
	}
	if v, ok := m["project_type"].(string); ok {
		data.ProjectType = v
	}
	for _, id := range PlatformIDs() {
		if v, ok := m[id].(bool); ok && v {
			data.EnablePlatforms(id)
		}
	}
	return data
}

// EnablePlatforms marks the given platform IDs as enabled. Unknown IDs are ignored.
func (c *ConfigData) EnablePlatforms(ids ...string) {
	for _, id := range ids {
		if !IsPlatform(id) {
			continue
		}
		if c.Platforms == nil {
			c.Platforms = make(map[string]bool)
		}
		c.Platforms[id] = true
	}
}

// EnabledPlatforms returns the enabled platform IDs in config.yml order.
func (c ConfigData) EnabledPlatforms() []string {
	var ids []string
	for _, id := range PlatformIDs() {
		if c.Platforms[id] {
			ids = append(ids, id)
		}
	}
	return ids
}

// withDefaults returns a copy with empty fields replaced by their defaults.
func (c ConfigData) withDefaults() ConfigData {
	out := c
	if out.ProjectName == "" {
		out.ProjectName = DefaultProjectName
	}
	if out.ProjectType == "" {
		out.ProjectType = DefaultProjectType
	}
	out.Platforms = maps.Clone(c.Platforms)
	maps.DeleteFunc(out.Platforms, func(id string, _ bool) bool {
		return !slices.Contains(PlatformIDs(), id)
	})
	return out
}
