package workflow

import (
	"path"
	"slices"
	"strings"

	"github.com/iiot-workflow/wfinit/internal/defs"
	"github.com/iiot-workflow/wfinit/internal/template"
)

// Document is a generated file under .claude-workflow/.
type Document struct {
	Key      string // Short name used by the show command
	Path     string // Slash-separated path relative to the workflow directory
	Template string // Embedded template rendered to produce the file
}

// ConfigDocument is the generated config.yml.
var ConfigDocument = Document{Key: "config", Path: defs.ConfigYML, Template: template.ConfigTemplate}

// StateDocuments are the state trackers written by CreateInitialState, in write order.
var StateDocuments = []Document{
	{Key: "current-phase", Path: defs.CurrentPhaseMD, Template: template.CurrentPhaseTemplate},
	{Key: "active-tasks", Path: path.Join(defs.ParallelTasksSubdir, defs.ActiveTasksMD), Template: template.ActiveTasksTemplate},
	{Key: "task-dependencies", Path: path.Join(defs.ParallelTasksSubdir, defs.TaskDependenciesMD), Template: template.TaskDependenciesTemplate},
	{Key: "dependency-backlog", Path: defs.DependencyBacklogMD, Template: template.DependencyBacklogTemplate},
	{Key: "feature-to-code-map", Path: defs.FeatureToCodeMapMD, Template: template.FeatureToCodeMapTemplate},
	{Key: "rt-matrix", Path: defs.RTMatrixMD, Template: template.RTMatrixTemplate},
}

// ReadmeDocument is the generated README.md.
var ReadmeDocument = Document{Key: "readme", Path: defs.ReadmeMD, Template: template.ReadmeTemplate}

// Documents returns every generated document in write order.
func Documents() []Document {
	docs := make([]Document, 0, len(StateDocuments)+2)
	docs = append(docs, ConfigDocument)
	docs = append(docs, StateDocuments...)
	return append(docs, ReadmeDocument)
}

// DocumentKeys returns the keys accepted by LookupDocument.
func DocumentKeys() []string {
	docs := Documents()
	keys := make([]string, len(docs))
	for i, d := range docs {
		keys[i] = d.Key
	}
	return keys
}

// LookupDocument finds a generated document by key (case-insensitive).
func LookupDocument(key string) (Document, bool) {
	key = strings.ToLower(strings.TrimSpace(key))
	i := slices.IndexFunc(Documents(), func(d Document) bool { return d.Key == key })
	if i < 0 {
		return Document{}, false
	}
	return Documents()[i], true
}
