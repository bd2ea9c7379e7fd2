package cli

import (
	"bytes"
	"strings"
	"testing"
)

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer

	newLogger(&buf, false).Info("hidden")
	if buf.Len() != 0 {
		t.Errorf("quiet logger wrote %q", buf.String())
	}

	newLogger(&buf, true).Debug("shown", "key", "value")
	if !strings.Contains(buf.String(), "msg=shown") || !strings.Contains(buf.String(), "key=value") {
		t.Errorf("verbose logger output = %q", buf.String())
	}
}

func TestProjectPathArg(t *testing.T) {
	tests := []struct {
		args  []string
		index int
		want  string
	}{
		{nil, 0, "."},
		{[]string{"plant"}, 0, "plant"},
		{[]string{"config"}, 1, "."},
		{[]string{"config", "plant"}, 1, "plant"},
		{[]string{""}, 0, "."},
	}
	for _, tt := range tests {
		if got := projectPathArg(tt.args, tt.index); got != tt.want {
			t.Errorf("projectPathArg(%v, %d) = %q, want %q", tt.args, tt.index, got, tt.want)
		}
	}
}

func TestRenderKeyValueLines(t *testing.T) {
	out := renderKeyValueLines([]kvPair{{"Root", "/tmp/plant"}, {"Platforms", "hmi"}})
	lines := strings.Split(out, "\n")
	if len(lines) != 2 {
		t.Fatalf("lines = %d, want 2", len(lines))
	}
	if strings.Index(lines[0], "/tmp/plant") != strings.Index(lines[1], "hmi") {
		t.Errorf("values not aligned:\n%s", out)
	}
}
