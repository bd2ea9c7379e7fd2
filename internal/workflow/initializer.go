package workflow

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path"
	"path/filepath"
	"time"

	"github.com/iiot-workflow/wfinit/internal/defs"
	"github.com/iiot-workflow/wfinit/internal/template"
)

// Result summarizes the outcome of an initialization run.
type Result struct {
	ProjectRoot      string   // Absolute project root.
	WorkflowDir      string   // Absolute path of .claude-workflow/.
	CreatedDirs      []string // Manifest directories, relative to WorkflowDir.
	WrittenFiles     []string // Generated documents, relative to WorkflowDir.
	CopiedTemplates  []string // Templates copied from the template source.
	OverwrittenFiles []string // Files that existed before this run and were replaced.
	Warnings         []string // Non-fatal problems such as missing templates.
	TemplatesSkipped bool     // True when no template source was given.
	BackupPath       string   // Non-empty if --backup saved previous files.
}

// Initializer scaffolds the workflow tree for one project root.
// It is not safe for concurrent use.
type Initializer struct {
	projectRoot string
	workflowDir string
	started     time.Time
	now         func() time.Time
	renderer    template.Renderer
	reporter    Reporter
	logger      *slog.Logger
	backup      bool

	result  *Result
	written map[string]bool // files written during this run
}

// Option configures an Initializer.
type Option func(*Initializer)

// WithReporter sets the progress reporter. The default discards events.
func WithReporter(r Reporter) Option {
	return func(i *Initializer) {
		if r != nil {
			i.reporter = r
		}
	}
}

// WithLogger sets the structured logger. The default discards records.
func WithLogger(l *slog.Logger) Option {
	return func(i *Initializer) {
		if l != nil {
			i.logger = l
		}
	}
}

// WithClock overrides the time source used for document dates and backup names.
func WithClock(now func() time.Time) Option {
	return func(i *Initializer) {
		if now != nil {
			i.now = now
		}
	}
}

// WithBackup makes the Initializer copy existing generated files into
// state-history/ before overwriting them.
func WithBackup(enabled bool) Option {
	return func(i *Initializer) {
		i.backup = enabled
	}
}

// WithRenderer replaces the embedded document renderer.
func WithRenderer(r template.Renderer) Option {
	return func(i *Initializer) {
		if r != nil {
			i.renderer = r
		}
	}
}

// New creates an Initializer for projectPath, resolved to an absolute path.
func New(projectPath string, opts ...Option) (*Initializer, error) {
	if projectPath == "" {
		projectPath = "."
	}
	root, err := filepath.Abs(projectPath)
	if err != nil {
		return nil, fmt.Errorf("resolve project path %q: %w", projectPath, err)
	}

	i := &Initializer{
		projectRoot: root,
		workflowDir: filepath.Join(root, defs.WorkflowDir),
		now:         time.Now,
		reporter:    NopReporter{},
		logger:      slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(i)
	}

	if i.renderer == nil {
		fsys, err := template.EmbeddedTemplates()
		if err != nil {
			return nil, err
		}
		i.renderer = template.NewRenderer(fsys)
	}

	i.started = i.now()
	i.logger = i.logger.With("component", "workflow")
	i.reset()
	return i, nil
}

// ProjectRoot returns the absolute project root.
func (i *Initializer) ProjectRoot() string { return i.projectRoot }

// WorkflowDir returns the absolute path of the .claude-workflow directory.
func (i *Initializer) WorkflowDir() string { return i.workflowDir }

// Result returns what has been done since the last Initialize call began.
func (i *Initializer) Result() *Result { return i.result }

func (i *Initializer) reset() {
	i.result = &Result{ProjectRoot: i.projectRoot, WorkflowDir: i.workflowDir}
	i.written = make(map[string]bool)
}

// Initialize runs every step in order: directories, templates (only when
// templateSource is non-empty), config, state documents, README. Steps that
// already completed are not rolled back when a later step fails.
func (i *Initializer) Initialize(ctx context.Context, data ConfigData, templateSource string) (*Result, error) {
	i.reset()

	i.logger.Info("initializing workflow",
		"root", i.projectRoot,
		"templateSource", templateSource,
	)
	i.reporter.Begin()

	if err := ctx.Err(); err != nil {
		return i.result, err
	}
	if err := i.CreateDirectories(); err != nil {
		return i.result, fmt.Errorf("create directories: %w", err)
	}

	if err := ctx.Err(); err != nil {
		return i.result, err
	}
	if templateSource != "" {
		if err := i.CopyTemplates(templateSource); err != nil {
			return i.result, fmt.Errorf("copy templates: %w", err)
		}
	} else {
		i.result.TemplatesSkipped = true
		i.logger.Info("template copy skipped, no source given")
		i.reporter.TemplatesSkipped()
	}

	if err := ctx.Err(); err != nil {
		return i.result, err
	}
	if err := i.CreateInitialConfig(data); err != nil {
		return i.result, fmt.Errorf("create config: %w", err)
	}

	if err := ctx.Err(); err != nil {
		return i.result, err
	}
	if err := i.CreateInitialState(); err != nil {
		return i.result, fmt.Errorf("create state documents: %w", err)
	}

	if err := ctx.Err(); err != nil {
		return i.result, err
	}
	if err := i.CreateReadme(); err != nil {
		return i.result, fmt.Errorf("create README: %w", err)
	}

	i.logger.Info("workflow initialized",
		"dirs", len(i.result.CreatedDirs),
		"files", len(i.result.WrittenFiles),
		"templates", len(i.result.CopiedTemplates),
		"warnings", len(i.result.Warnings),
	)
	i.reporter.Finished(i.result)

	return i.result, nil
}

// CreateDirectories creates every manifest directory with missing parents.
// Existing directories are left as they are.
func (i *Initializer) CreateDirectories() error {
	i.reporter.StepStarted(StepDirectories)
	for _, dir := range Directories {
		dirPath := filepath.Join(i.workflowDir, filepath.FromSlash(dir))
		if err := os.MkdirAll(dirPath, defs.DirPerm); err != nil {
			return fmt.Errorf("mkdir %s: %w", dirPath, err)
		}
		i.result.CreatedDirs = append(i.result.CreatedDirs, dir)
	}
	i.reporter.StepDone(StepDirectories)
	return nil
}

// CopyTemplates copies the template manifest from
// <templateSource>/.claude-workflow/. Missing files are recorded as warnings
// and skipped; other I/O errors abort the copy.
func (i *Initializer) CopyTemplates(templateSource string) error {
	i.reporter.StepStarted(StepTemplates)

	info, err := os.Stat(templateSource)
	switch {
	case err == nil && !info.IsDir():
		return fmt.Errorf("%w: %s", ErrTemplateSourceNotDir, templateSource)
	case err != nil && !errors.Is(err, os.ErrNotExist):
		return fmt.Errorf("stat template source %s: %w", templateSource, err)
	case err != nil:
		i.logger.Warn("template source not found", "path", templateSource)
	}

	copier := template.NewCopier(os.DirFS(templateSource), i.workflowDir)

	for _, name := range TopLevelTemplates {
		src := path.Join(defs.WorkflowDir, defs.TemplatesSubdir, name)
		if err := i.copyTemplate(copier, src, path.Join(defs.TemplatesSubdir, name), name); err != nil {
			return err
		}
	}
	for _, name := range StateTemplates {
		src := path.Join(defs.WorkflowDir, name)
		if err := i.copyTemplate(copier, src, StateTemplateDest(name), name); err != nil {
			return err
		}
	}

	i.reporter.StepDone(StepTemplates)
	return nil
}

func (i *Initializer) copyTemplate(copier template.Copier, src, dest, name string) error {
	if !copier.Exists(src) {
		i.result.Warnings = append(i.result.Warnings, "template not found: "+name)
		i.logger.Warn("template not found", "template", name)
		i.reporter.TemplateMissing(name)
		return nil
	}
	if err := i.prepareWrite(dest); err != nil {
		return err
	}
	if err := copier.Copy(src, dest); err != nil {
		return fmt.Errorf("copy %s: %w", name, err)
	}
	i.written[dest] = true
	i.result.CopiedTemplates = append(i.result.CopiedTemplates, dest)
	i.logger.Debug("template copied", "template", name, "dest", dest)
	i.reporter.TemplateCopied(name)
	return nil
}

// CreateInitialConfig writes config.yml from data with defaults applied.
func (i *Initializer) CreateInitialConfig(data ConfigData) error {
	i.reporter.StepStarted(StepConfig)

	data = data.withDefaults()
	docCtx := i.documentContext(
		template.WithProject(data.ProjectName, data.ProjectType),
		template.WithPlatforms(platformEntries(data.Platforms)),
	)
	if err := i.writeDocument(ConfigDocument, docCtx); err != nil {
		return err
	}

	i.reporter.StepDone(StepConfig)
	return nil
}

// CreateInitialState writes the six state-tracking documents.
func (i *Initializer) CreateInitialState() error {
	i.reporter.StepStarted(StepState)

	docCtx := i.documentContext()
	for _, doc := range StateDocuments {
		if err := i.writeDocument(doc, docCtx); err != nil {
			return err
		}
	}

	i.reporter.StepDone(StepState)
	return nil
}

// CreateReadme writes the static README.md describing the tree.
func (i *Initializer) CreateReadme() error {
	i.reporter.StepStarted(StepReadme)
	if err := i.writeDocument(ReadmeDocument, i.documentContext()); err != nil {
		return err
	}
	i.reporter.StepDone(StepReadme)
	return nil
}

// documentContext returns rendering data dated at construction time.
func (i *Initializer) documentContext(opts ...template.ContextOption) *template.DocumentContext {
	base := []template.ContextOption{
		template.WithProjectDir(filepath.Base(i.projectRoot)),
		template.WithTime(i.started),
	}
	return template.NewDocumentContext(append(base, opts...)...)
}

// writeDocument renders doc and writes it under the workflow directory.
func (i *Initializer) writeDocument(doc Document, docCtx *template.DocumentContext) error {
	content, err := i.renderer.Render(doc.Template, docCtx)
	if err != nil {
		return fmt.Errorf("render %s: %w", doc.Path, err)
	}

	if err := i.prepareWrite(doc.Path); err != nil {
		return err
	}

	dest := filepath.Join(i.workflowDir, filepath.FromSlash(doc.Path))
	if err := os.MkdirAll(filepath.Dir(dest), defs.DirPerm); err != nil {
		return fmt.Errorf("mkdir %s: %w", filepath.Dir(dest), err)
	}
	if err := os.WriteFile(dest, content, defs.FilePerm); err != nil {
		return fmt.Errorf("write %s: %w", dest, err)
	}

	i.written[doc.Path] = true
	i.result.WrittenFiles = append(i.result.WrittenFiles, doc.Path)
	i.logger.Debug("document written", "path", doc.Path, "bytes", len(content))
	return nil
}
