package workflow

import (
	"path"
	"strings"

	"github.com/iiot-workflow/wfinit/internal/defs"
)

// platformSubdirs are created for every platform under 07-platforms/<id>/.
var platformSubdirs = []string{"requirements", "design", "implementation"}

// Directories lists every directory created under .claude-workflow/.
var Directories = buildDirectories()

func buildDirectories() []string {
	dirs := []string{
		"01-requirements/raw-requirements",
		"01-requirements/functional-requirements",
		"01-requirements/user-stories",
		"02-planning",
		"03-design/architecture/adr",
		"03-design/technical-solutions",
		"03-design/api-design",
		"03-design/database-design",
		"04-implementation/implementation-plans",
		"04-implementation/code-mapping",
		"04-implementation/implementation-logs",
		"05-verification/test-plans",
		"05-verification/test-cases",
		"05-verification/verification-reports",
		"06-documentation/technical-docs",
		"06-documentation/user-guides",
		"06-documentation/api-docs",
	}
	for _, p := range Platforms {
		for _, sub := range platformSubdirs {
			dirs = append(dirs, path.Join("07-platforms", p.ID, sub))
		}
	}
	return append(dirs, defs.ParallelTasksSubdir, defs.TemplatesSubdir, defs.StateHistorySubdir)
}

// TopLevelTemplates are copied from <source>/.claude-workflow/templates/ into templates/.
var TopLevelTemplates = []string{
	"REQ-template.md",
	"FE-template.md",
	"SOL-template.md",
	"IMP-template.md",
}

// StateTemplates are copied from <source>/.claude-workflow/ with the
// "-template" suffix stripped from the destination name.
var StateTemplates = []string{
	"parallel-tasks/active-tasks-template.md",
	"parallel-tasks/task-dependencies-template.md",
	"dependency-backlog-template.md",
	"feature-to-code-map-template.md",
	"rt-matrix-template.md",
}

// StateTemplateDest returns the destination path for a state template.
func StateTemplateDest(name string) string {
	return strings.Replace(name, defs.TemplateSuffix, "", 1)
}
