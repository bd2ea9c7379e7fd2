package workflow

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"
	"testing/fstest"
	"time"

	"github.com/iiot-workflow/wfinit/internal/template"
)

var fixedClock = func() time.Time {
	return time.Date(2026, 3, 14, 9, 30, 0, 0, time.Local)
}

// newTestInitializer returns an Initializer for <tmp>/demo-plant with a fixed clock.
func newTestInitializer(t *testing.T, opts ...Option) *Initializer {
	t.Helper()
	return newTestInitializerIn(t, "demo-plant", opts...)
}

// newTestInitializerIn returns an Initializer for <tmp>/<dirName> with a fixed clock.
func newTestInitializerIn(t *testing.T, dirName string, opts ...Option) *Initializer {
	t.Helper()
	root := filepath.Join(t.TempDir(), dirName)
	if err := os.MkdirAll(root, 0o755); err != nil {
		t.Fatalf("mkdir project root: %v", err)
	}
	ini, err := New(root, append([]Option{WithClock(fixedClock)}, opts...)...)
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	return ini
}

func demoConfig() ConfigData {
	data := ConfigData{ProjectName: "Demo Plant", ProjectType: "service"}
	data.EnablePlatforms("gateway", "hmi")
	return data
}

func readWorkflowFile(t *testing.T, i *Initializer, rel string) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(i.WorkflowDir(), filepath.FromSlash(rel)))
	if err != nil {
		t.Fatalf("read %s: %v", rel, err)
	}
	return string(data)
}

func TestInitialize_GoldenDocuments(t *testing.T) {
	i := newTestInitializer(t)

	if _, err := i.Initialize(context.Background(), demoConfig(), ""); err != nil {
		t.Fatalf("Initialize() error: %v", err)
	}

	for _, doc := range Documents() {
		t.Run(doc.Key, func(t *testing.T) {
			goldenName := filepath.Base(doc.Path) + ".golden"
			want, err := os.ReadFile(filepath.Join("testdata", "golden", goldenName))
			if err != nil {
				t.Fatalf("read golden %s: %v", goldenName, err)
			}
			got := readWorkflowFile(t, i, doc.Path)
			if got != string(want) {
				t.Errorf("%s does not match %s\n--- got ---\n%s\n--- want ---\n%s", doc.Path, goldenName, got, want)
			}
		})
	}
}

func TestInitialize_CreatesAllDirectories(t *testing.T) {
	i := newTestInitializer(t)

	result, err := i.Initialize(context.Background(), ConfigData{}, "")
	if err != nil {
		t.Fatalf("Initialize() error: %v", err)
	}

	if len(result.CreatedDirs) != len(Directories) {
		t.Errorf("CreatedDirs = %d, want %d", len(result.CreatedDirs), len(Directories))
	}
	for _, dir := range Directories {
		info, err := os.Stat(filepath.Join(i.WorkflowDir(), filepath.FromSlash(dir)))
		if err != nil {
			t.Errorf("directory %s: %v", dir, err)
			continue
		}
		if !info.IsDir() {
			t.Errorf("%s is not a directory", dir)
		}
	}
	if !result.TemplatesSkipped {
		t.Error("TemplatesSkipped = false, want true without a template source")
	}
	if len(result.WrittenFiles) != len(Documents()) {
		t.Errorf("WrittenFiles = %v, want %d files", result.WrittenFiles, len(Documents()))
	}
}

func TestInitialize_Defaults(t *testing.T) {
	i := newTestInitializer(t)

	if _, err := i.Initialize(context.Background(), ConfigData{}, ""); err != nil {
		t.Fatalf("Initialize() error: %v", err)
	}

	cfg := readWorkflowFile(t, i, ConfigDocument.Path)
	for _, want := range []string{
		`name: "My Project"`,
		`type: "application"`,
		`version: "1.0.0"`,
	} {
		if !strings.Contains(cfg, want) {
			t.Errorf("config.yml missing %q", want)
		}
	}
	if strings.Contains(cfg, "enabled: true") {
		t.Error("config.yml enables a platform although none were requested")
	}
	if n := strings.Count(cfg, "enabled: false"); n != len(Platforms) {
		t.Errorf("config.yml has %d disabled platforms, want %d", n, len(Platforms))
	}
}

func TestInitialize_CurrentPhaseUsesDirectoryName(t *testing.T) {
	i := newTestInitializer(t)

	if _, err := i.Initialize(context.Background(), ConfigData{ProjectName: "Other Name"}, ""); err != nil {
		t.Fatalf("Initialize() error: %v", err)
	}

	phase := readWorkflowFile(t, i, "current-phase.md")
	if !strings.Contains(phase, "- **项目名称**: demo-plant\n") {
		t.Errorf("current-phase.md does not use the directory name:\n%s", phase)
	}
	if !strings.Contains(phase, "- **开始日期**: 2026-03-14\n") {
		t.Errorf("current-phase.md does not carry the run date:\n%s", phase)
	}
}

func TestInitialize_TokenLikeProjectName(t *testing.T) {
	for _, name := range []string{"Budget $USD Line", "Line ${X}", "{{Plant}}"} {
		t.Run(name, func(t *testing.T) {
			i := newTestInitializer(t)

			if _, err := i.Initialize(context.Background(), ConfigData{ProjectName: name}, ""); err != nil {
				t.Fatalf("Initialize() error: %v", err)
			}
			cfg := readWorkflowFile(t, i, ConfigDocument.Path)
			if !strings.Contains(cfg, `name: "`+name+`"`) {
				t.Errorf("config.yml does not carry %q verbatim:\n%s", name, cfg)
			}
		})
	}
}

func TestInitialize_TokenLikeProjectDir(t *testing.T) {
	i := newTestInitializerIn(t, "PLANT$LINE")

	if _, err := i.Initialize(context.Background(), ConfigData{}, ""); err != nil {
		t.Fatalf("Initialize() error: %v", err)
	}
	phase := readWorkflowFile(t, i, "current-phase.md")
	if !strings.Contains(phase, "- **项目名称**: PLANT$LINE\n") {
		t.Errorf("current-phase.md does not carry the directory name verbatim:\n%s", phase)
	}
}

func TestInitialize_RenderFailure(t *testing.T) {
	broken := template.NewRenderer(fstest.MapFS{
		template.ConfigTemplate: &fstest.MapFile{Data: []byte("name: {{.Missing}}\n")},
	})
	i := newTestInitializer(t, WithRenderer(broken))

	result, err := i.Initialize(context.Background(), ConfigData{}, "")
	if !errors.Is(err, template.ErrMissingTemplateKey) {
		t.Fatalf("Initialize() error = %v, want ErrMissingTemplateKey", err)
	}
	if !strings.HasPrefix(err.Error(), "create config:") {
		t.Errorf("error = %q, want create config prefix", err)
	}
	if len(result.CreatedDirs) != len(Directories) {
		t.Errorf("CreatedDirs = %d, want directories kept after the failed step", len(result.CreatedDirs))
	}
	if _, statErr := os.Stat(filepath.Join(i.WorkflowDir(), ConfigDocument.Path)); !os.IsNotExist(statErr) {
		t.Error("config.yml written despite render failure")
	}
}

func TestInitialize_Idempotent(t *testing.T) {
	i := newTestInitializer(t)
	ctx := context.Background()

	if _, err := i.Initialize(ctx, demoConfig(), ""); err != nil {
		t.Fatalf("first Initialize() error: %v", err)
	}
	first := make(map[string]string)
	for _, doc := range Documents() {
		first[doc.Path] = readWorkflowFile(t, i, doc.Path)
	}

	result, err := i.Initialize(ctx, demoConfig(), "")
	if err != nil {
		t.Fatalf("second Initialize() error: %v", err)
	}
	for _, doc := range Documents() {
		if got := readWorkflowFile(t, i, doc.Path); got != first[doc.Path] {
			t.Errorf("%s changed between runs", doc.Path)
		}
	}

	if len(result.OverwrittenFiles) != len(Documents()) {
		t.Errorf("OverwrittenFiles = %v, want all %d documents", result.OverwrittenFiles, len(Documents()))
	}
	if result.BackupPath != "" {
		t.Errorf("BackupPath = %q, want empty without backup", result.BackupPath)
	}
}

func TestInitialize_PreservesUnrelatedFiles(t *testing.T) {
	i := newTestInitializer(t)
	ctx := context.Background()

	if _, err := i.Initialize(ctx, ConfigData{}, ""); err != nil {
		t.Fatalf("Initialize() error: %v", err)
	}
	userDoc := filepath.Join(i.WorkflowDir(), "01-requirements", "raw-requirements", "REQ-001.md")
	if err := os.WriteFile(userDoc, []byte("# REQ-001\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := i.Initialize(ctx, ConfigData{}, ""); err != nil {
		t.Fatalf("second Initialize() error: %v", err)
	}
	data, err := os.ReadFile(userDoc)
	if err != nil {
		t.Fatalf("user document removed: %v", err)
	}
	if string(data) != "# REQ-001\n" {
		t.Errorf("user document changed: %q", data)
	}
}

func TestInitialize_Backup(t *testing.T) {
	i := newTestInitializer(t, WithBackup(true))
	ctx := context.Background()

	if _, err := i.Initialize(ctx, ConfigData{}, ""); err != nil {
		t.Fatalf("first Initialize() error: %v", err)
	}
	cfgPath := filepath.Join(i.WorkflowDir(), ConfigDocument.Path)
	if err := os.WriteFile(cfgPath, []byte("edited: true\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	result, err := i.Initialize(ctx, ConfigData{}, "")
	if err != nil {
		t.Fatalf("second Initialize() error: %v", err)
	}

	wantBackup := filepath.Join(i.WorkflowDir(), "state-history", "backup-20260314-093000")
	if result.BackupPath != wantBackup {
		t.Fatalf("BackupPath = %q, want %q", result.BackupPath, wantBackup)
	}
	saved, err := os.ReadFile(filepath.Join(wantBackup, ConfigDocument.Path))
	if err != nil {
		t.Fatalf("read backup: %v", err)
	}
	if string(saved) != "edited: true\n" {
		t.Errorf("backup content = %q, want the edited config", saved)
	}
	for _, doc := range StateDocuments {
		if _, err := os.Stat(filepath.Join(wantBackup, filepath.FromSlash(doc.Path))); err != nil {
			t.Errorf("backup of %s missing: %v", doc.Path, err)
		}
	}
	if got := readWorkflowFile(t, i, ConfigDocument.Path); !strings.Contains(got, `name: "My Project"`) {
		t.Error("config.yml was not regenerated after backup")
	}
}

// writeTemplateSource creates a template source tree with the named files
// under .claude-workflow/.
func writeTemplateSource(t *testing.T, files map[string]string) string {
	t.Helper()
	src := t.TempDir()
	for name, content := range files {
		p := filepath.Join(src, ".claude-workflow", filepath.FromSlash(name))
		if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(p, []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	return src
}

func TestInitialize_CopyTemplates(t *testing.T) {
	files := map[string]string{
		"dependency-backlog-template.md":          "backlog template\n",
		"parallel-tasks/active-tasks-template.md": "active template\n",
	}
	for _, name := range TopLevelTemplates {
		files["templates/"+name] = "# " + name + "\n"
	}
	src := writeTemplateSource(t, files)

	rec := &recordingReporter{}
	i := newTestInitializer(t, WithReporter(rec))

	result, err := i.Initialize(context.Background(), ConfigData{}, src)
	if err != nil {
		t.Fatalf("Initialize() error: %v", err)
	}

	for _, name := range TopLevelTemplates {
		got := readWorkflowFile(t, i, "templates/"+name)
		if got != "# "+name+"\n" {
			t.Errorf("templates/%s = %q", name, got)
		}
	}

	// Three state templates are absent from the source.
	if len(result.Warnings) != 3 {
		t.Errorf("Warnings = %v, want 3 entries", result.Warnings)
	}
	wantMissing := []string{
		"parallel-tasks/task-dependencies-template.md",
		"feature-to-code-map-template.md",
		"rt-matrix-template.md",
	}
	if !slices.Equal(rec.missing, wantMissing) {
		t.Errorf("TemplateMissing events = %v, want %v", rec.missing, wantMissing)
	}
	if len(rec.copied) != len(TopLevelTemplates)+2 {
		t.Errorf("TemplateCopied events = %v", rec.copied)
	}

	// Copied state templates are replaced by the generated documents.
	backlog := readWorkflowFile(t, i, "dependency-backlog.md")
	if backlog == "backlog template\n" {
		t.Error("dependency-backlog.md kept template content, want generated document")
	}
	if slices.Contains(result.OverwrittenFiles, "dependency-backlog.md") {
		t.Error("file copied in the same run reported as overwritten")
	}
	if result.TemplatesSkipped {
		t.Error("TemplatesSkipped = true with a template source")
	}
}

func TestInitialize_MissingTemplateSource(t *testing.T) {
	i := newTestInitializer(t)

	result, err := i.Initialize(context.Background(), ConfigData{}, filepath.Join(t.TempDir(), "nope"))
	if err != nil {
		t.Fatalf("Initialize() error: %v", err)
	}
	want := len(TopLevelTemplates) + len(StateTemplates)
	if len(result.Warnings) != want {
		t.Errorf("Warnings = %d, want %d", len(result.Warnings), want)
	}
	if len(result.WrittenFiles) != len(Documents()) {
		t.Errorf("WrittenFiles = %d, want %d", len(result.WrittenFiles), len(Documents()))
	}
}

func TestInitialize_TemplateSourceIsFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), "source.txt")
	if err := os.WriteFile(file, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	i := newTestInitializer(t)

	_, err := i.Initialize(context.Background(), ConfigData{}, file)
	if !errors.Is(err, ErrTemplateSourceNotDir) {
		t.Fatalf("Initialize() error = %v, want ErrTemplateSourceNotDir", err)
	}
	if _, statErr := os.Stat(filepath.Join(i.WorkflowDir(), "02-planning")); statErr != nil {
		t.Errorf("directories from the completed step were removed: %v", statErr)
	}
}

func TestInitialize_CancelledContext(t *testing.T) {
	i := newTestInitializer(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := i.Initialize(ctx, ConfigData{}, "")
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("Initialize() error = %v, want context.Canceled", err)
	}
	if _, statErr := os.Stat(i.WorkflowDir()); !os.IsNotExist(statErr) {
		t.Error("workflow directory created despite cancelled context")
	}
}

func TestInitialize_ReporterSequence(t *testing.T) {
	rec := &recordingReporter{}
	i := newTestInitializer(t, WithReporter(rec))

	if _, err := i.Initialize(context.Background(), ConfigData{}, ""); err != nil {
		t.Fatalf("Initialize() error: %v", err)
	}

	want := []Step{StepDirectories, StepConfig, StepState, StepReadme}
	if !slices.Equal(rec.started, want) {
		t.Errorf("started = %v, want %v", rec.started, want)
	}
	if !slices.Equal(rec.done, want) {
		t.Errorf("done = %v, want %v", rec.done, want)
	}
	if !rec.begun || !rec.skipped || rec.finished == nil {
		t.Errorf("begun=%v skipped=%v finished=%v", rec.begun, rec.skipped, rec.finished)
	}
}

func TestNew_DefaultsToCurrentDirectory(t *testing.T) {
	i, err := New("")
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if i.ProjectRoot() != wd {
		t.Errorf("ProjectRoot() = %q, want %q", i.ProjectRoot(), wd)
	}
	if i.WorkflowDir() != filepath.Join(wd, ".claude-workflow") {
		t.Errorf("WorkflowDir() = %q", i.WorkflowDir())
	}
}

type recordingReporter struct {
	begun    bool
	skipped  bool
	started  []Step
	done     []Step
	copied   []string
	missing  []string
	replaced []string
	finished *Result
}

func (r *recordingReporter) Begin() { r.begun = true }
func (r *recordingReporter) StepStarted(s Step) { r.started = append(r.started, s) }
func (r *recordingReporter) StepDone(s Step) { r.done = append(r.done, s) }
func (r *recordingReporter) TemplateCopied(name string) { r.copied = append(r.copied, name) }
func (r *recordingReporter) TemplateMissing(name string) { r.missing = append(r.missing, name) }
func (r *recordingReporter) TemplatesSkipped() { r.skipped = true }
func (r *recordingReporter) FileOverwritten(path string) { r.replaced = append(r.replaced, path) }
func (r *recordingReporter) Finished(result *Result) { r.finished = result }
