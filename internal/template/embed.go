package template

import (
	"embed"
	"fmt"
	"io/fs"
)

//go:embed templates/*.tmpl
var embedded embed.FS

// Document template names inside the embedded filesystem.
const (
	ConfigTemplate            = "config.yml.tmpl"
	CurrentPhaseTemplate      = "current-phase.md.tmpl"
	ActiveTasksTemplate       = "active-tasks.md.tmpl"
	TaskDependenciesTemplate  = "task-dependencies.md.tmpl"
	DependencyBacklogTemplate = "dependency-backlog.md.tmpl"
	FeatureToCodeMapTemplate  = "feature-to-code-map.md.tmpl"
	RTMatrixTemplate          = "rt-matrix.md.tmpl"
	ReadmeTemplate            = "README.md.tmpl"
)

// EmbeddedTemplates returns the document templates compiled into the binary,
// rooted so that names match the constants above.
func EmbeddedTemplates() (fs.FS, error) {
	sub, err := fs.Sub(embedded, "templates")
	if err != nil {
		return nil, fmt.Errorf("open embedded templates: %w", err)
	}
	return sub, nil
}
