package workflow

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"
	"gopkg.in/yaml.v3"

	"github.com/iiot-workflow/wfinit/internal/defs"
)

// ArtifactKind is a class of hand-authored workflow document counted by Inspect.
type ArtifactKind struct {
	Prefix  string // Document ID prefix, e.g. "REQ"
	Pattern string // doublestar pattern relative to the workflow directory
}

// ArtifactKinds lists the counted document classes in workflow order.
var ArtifactKinds = []ArtifactKind{
	{Prefix: "REQ", Pattern: "01-requirements/**/REQ-*.md"},
	{Prefix: "FE", Pattern: "01-requirements/**/FE-*.md"},
	{Prefix: "SOL", Pattern: "03-design/**/SOL-*.md"},
	{Prefix: "ADR", Pattern: "03-design/architecture/adr/**/ADR-*.md"},
	{Prefix: "IMP", Pattern: "04-implementation/**/IMP-*.md"},
}

// PlatformStatus is a platform row read back from config.yml.
type PlatformStatus struct {
	ID      string `yaml:"id"`
	Name    string `yaml:"name"`
	Enabled bool   `yaml:"enabled"`
}

// configFile mirrors the sections of config.yml that Inspect reads.
type configFile struct {
	Project struct {
		Name    string `yaml:"name"`
		Type    string `yaml:"type"`
		Version string `yaml:"version"`
	} `yaml:"project"`
	Platforms []PlatformStatus `yaml:"platforms"`
}

// Status describes an existing workflow tree.
type Status struct {
	ProjectRoot      string
	WorkflowDir      string
	ProjectName      string
	ProjectType      string
	Version          string
	Platforms        []PlatformStatus
	ConfigError      error          // Non-nil when config.yml is missing or unparsable
	MissingDirs      []string       // Manifest directories that do not exist
	MissingDocuments []string       // Generated documents that do not exist
	Artifacts        map[string]int // Count per ArtifactKind prefix
}

// EnabledPlatforms returns the IDs of platforms marked enabled in config.yml.
func (s *Status) EnabledPlatforms() []string {
	var ids []string
	for _, p := range s.Platforms {
		if p.Enabled {
			ids = append(ids, p.ID)
		}
	}
	return ids
}

// Complete reports whether every manifest directory and generated document exists.
func (s *Status) Complete() bool {
	return len(s.MissingDirs) == 0 && len(s.MissingDocuments) == 0 && s.ConfigError == nil
}

// Inspect reads the workflow tree under projectPath. It returns
// ErrNotInitialized when .claude-workflow does not exist. A missing or
// malformed config.yml is reported in Status.ConfigError, not as an error.
func Inspect(projectPath string) (*Status, error) {
	root, err := filepath.Abs(projectPath)
	if err != nil {
		return nil, fmt.Errorf("resolve project path %q: %w", projectPath, err)
	}
	workflowDir := filepath.Join(root, defs.WorkflowDir)

	info, err := os.Stat(workflowDir)
	if errors.Is(err, fs.ErrNotExist) || (err == nil && !info.IsDir()) {
		return nil, fmt.Errorf("%w: %s", ErrNotInitialized, root)
	}
	if err != nil {
		return nil, fmt.Errorf("stat %s: %w", workflowDir, err)
	}

	st := &Status{
		ProjectRoot: root,
		WorkflowDir: workflowDir,
		Artifacts:   make(map[string]int, len(ArtifactKinds)),
	}
	fsys := os.DirFS(workflowDir)

	st.ConfigError = st.readConfig(fsys)

	for _, dir := range Directories {
		if fi, err := fs.Stat(fsys, dir); err != nil || !fi.IsDir() {
			st.MissingDirs = append(st.MissingDirs, dir)
		}
	}
	for _, doc := range Documents() {
		if _, err := fs.Stat(fsys, doc.Path); err != nil {
			st.MissingDocuments = append(st.MissingDocuments, doc.Path)
		}
	}

	for _, kind := range ArtifactKinds {
		matches, err := doublestar.Glob(fsys, kind.Pattern, doublestar.WithFilesOnly())
		if err != nil {
			return nil, fmt.Errorf("count %s documents: %w", kind.Prefix, err)
		}
		st.Artifacts[kind.Prefix] = len(matches)
	}

	return st, nil
}

func (s *Status) readConfig(fsys fs.FS) error {
	data, err := fs.ReadFile(fsys, defs.ConfigYML)
	if err != nil {
		return fmt.Errorf("read %s: %w", defs.ConfigYML, err)
	}

	var cfg configFile
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return fmt.Errorf("parse %s: %w", defs.ConfigYML, err)
	}

	s.ProjectName = cfg.Project.Name
	s.ProjectType = cfg.Project.Type
	s.Version = cfg.Project.Version
	s.Platforms = cfg.Platforms
	return nil
}

// ReadDocument returns the contents of a generated document by key.
func ReadDocument(projectPath, key string) ([]byte, error) {
	doc, ok := LookupDocument(key)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownDocument, key)
	}

	root, err := filepath.Abs(projectPath)
	if err != nil {
		return nil, fmt.Errorf("resolve project path %q: %w", projectPath, err)
	}

	data, err := os.ReadFile(filepath.Join(root, defs.WorkflowDir, filepath.FromSlash(doc.Path)))
	if errors.Is(err, fs.ErrNotExist) {
		if _, statErr := os.Stat(filepath.Join(root, defs.WorkflowDir)); errors.Is(statErr, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotInitialized, root)
		}
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", doc.Path, err)
	}
	return data, nil
}
