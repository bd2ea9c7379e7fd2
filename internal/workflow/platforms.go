package workflow

import (
	"slices"
	"strings"

	"github.com/iiot-workflow/wfinit/internal/template"
)

// Platform is a deployment target tracked in config.yml.
type Platform struct {
	ID   string
	Name string // Display name written to config.yml
}

// Platforms lists every supported platform in config.yml order.
var Platforms = []Platform{
	{ID: "gateway", Name: "网关端"},
	{ID: "hmi", Name: "HMI运行端"},
	{ID: "configuration", Name: "组态端"},
	{ID: "cloud", Name: "云平台端"},
	{ID: "app", Name: "APP端"},
	{ID: "edge-ai", Name: "边缘智能服务器"},
	{ID: "scada", Name: "Scada软件"},
	{ID: "web-editor", Name: "Web可视化编辑器"},
}

// PlatformIDs returns the platform identifiers in config.yml order.
func PlatformIDs() []string {
	ids := make([]string, len(Platforms))
	for i, p := range Platforms {
		ids[i] = p.ID
	}
	return ids
}

// IsPlatform reports whether id names a supported platform.
func IsPlatform(id string) bool {
	return slices.ContainsFunc(Platforms, func(p Platform) bool { return p.ID == id })
}

// ParsePlatformList splits a comma-separated platform list. Entries are
// lower-cased and trimmed; unknown names and duplicates are dropped.
func ParsePlatformList(csv string) []string {
	var ids []string
	for part := range strings.SplitSeq(strings.ToLower(csv), ",") {
		id := strings.TrimSpace(part)
		if IsPlatform(id) && !slices.Contains(ids, id) {
			ids = append(ids, id)
		}
	}
	return ids
}

// platformEntries builds the config.yml platform table for the enabled set.
func platformEntries(enabled map[string]bool) []template.PlatformEntry {
	entries := make([]template.PlatformEntry, len(Platforms))
	for i, p := range Platforms {
		entries[i] = template.PlatformEntry{ID: p.ID, Name: p.Name, Enabled: enabled[p.ID]}
	}
	return entries
}
