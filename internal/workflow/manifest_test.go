package workflow

import (
	"slices"
	"testing"
)

func TestDirectories(t *testing.T) {
	if len(Directories) != 44 {
		t.Errorf("len(Directories) = %d, want 44", len(Directories))
	}
	for _, want := range []string{
		"01-requirements/raw-requirements",
		"03-design/architecture/adr",
		"07-platforms/gateway/requirements",
		"07-platforms/web-editor/implementation",
		"parallel-tasks",
		"templates",
		"state-history",
	} {
		if !slices.Contains(Directories, want) {
			t.Errorf("Directories missing %s", want)
		}
	}

	seen := make(map[string]bool)
	for _, d := range Directories {
		if seen[d] {
			t.Errorf("duplicate directory %s", d)
		}
		seen[d] = true
	}
}

func TestStateTemplateDest(t *testing.T) {
	tests := map[string]string{
		"parallel-tasks/active-tasks-template.md": "parallel-tasks/active-tasks.md",
		"rt-matrix-template.md":                   "rt-matrix.md",
		"feature-to-code-map-template.md":         "feature-to-code-map.md",
	}
	for in, want := range tests {
		if got := StateTemplateDest(in); got != want {
			t.Errorf("StateTemplateDest(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestLookupDocument(t *testing.T) {
	keys := DocumentKeys()
	if len(keys) != 8 {
		t.Fatalf("DocumentKeys() = %v, want 8 keys", keys)
	}
	for _, key := range keys {
		doc, ok := LookupDocument(key)
		if !ok || doc.Key != key {
			t.Errorf("LookupDocument(%q) = %+v, %v", key, doc, ok)
		}
	}
	if doc, ok := LookupDocument("TASK-DEPENDENCIES"); !ok || doc.Path != "parallel-tasks/task-dependencies.md" {
		t.Errorf("case-insensitive lookup = %+v, %v", doc, ok)
	}
	if _, ok := LookupDocument("adr"); ok {
		t.Error("LookupDocument(adr) found a document")
	}
}
