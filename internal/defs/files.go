package defs

import "io/fs"

// WorkflowDir is the directory created under the project root that holds
// every generated artifact.
const WorkflowDir = ".claude-workflow"

// Generated file names under WorkflowDir.
const (
	ConfigYML             = "config.yml"
	CurrentPhaseMD        = "current-phase.md"
	ActiveTasksMD         = "active-tasks.md"
	TaskDependenciesMD    = "task-dependencies.md"
	DependencyBacklogMD   = "dependency-backlog.md"
	FeatureToCodeMapMD    = "feature-to-code-map.md"
	RTMatrixMD            = "rt-matrix.md"
	ReadmeMD              = "README.md"
	ParallelTasksSubdir   = "parallel-tasks"
	TemplatesSubdir       = "templates"
	StateHistorySubdir    = "state-history"
	TemplateSuffix        = "-template"
	BackupDirPrefix       = "backup-"
	BackupTimestampLayout = "20060102-150405"
)

// DateLayout is the layout used for every date interpolated into documents.
const DateLayout = "2006-01-02"

// Permissions for created directories and written files.
const (
	DirPerm  fs.FileMode = 0o755
	FilePerm fs.FileMode = 0o644
)
