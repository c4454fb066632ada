package cli

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/squarespiral/pkg/config"
	"github.com/matzehuels/squarespiral/pkg/layout"
	"github.com/matzehuels/squarespiral/pkg/pipeline"
)

// isolate points config and cache lookups at temp dirs.
func isolate(t *testing.T) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("XDG_CACHE_HOME", t.TempDir())
	t.Setenv(config.EnvRedisAddr, "")
	t.Setenv(config.EnvMongoURI, "")
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	c := New(io.Discard, log.InfoLevel)
	root := c.RootCommand()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

func TestPackAndRender(t *testing.T) {
	isolate(t)
	dir := t.TempDir()
	input := filepath.Join(dir, "sales.csv")
	if err := os.WriteFile(input, []byte("label,value\nnorth,4\nsouth,1\n"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := execute(t, "pack", input, "--format", "svg,json"); err != nil {
		t.Fatalf("pack: %v", err)
	}

	layoutPath := filepath.Join(dir, "sales.layout.json")
	l, err := layout.ReadFile(layoutPath)
	if err != nil {
		t.Fatalf("read layout: %v", err)
	}
	if len(l.Squares) != 2 || l.Squares[0].Label != "north" || l.Squares[1].Size != 0.5 {
		t.Errorf("layout squares = %+v", l.Squares)
	}
	if _, err := os.Stat(filepath.Join(dir, "sales.svg")); err != nil {
		t.Errorf("pack --format svg did not write sales.svg: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "sales.json")); !os.IsNotExist(err) {
		t.Errorf("pack wrote a separate json render: %v", err)
	}

	out := filepath.Join(dir, "out", "chart")
	if err := os.MkdirAll(filepath.Dir(out), 0755); err != nil {
		t.Fatal(err)
	}
	if _, err := execute(t, "render", layoutPath, "-o", out, "--style", "handdrawn", "--outline"); err != nil {
		t.Fatalf("render: %v", err)
	}
	svg, err := os.ReadFile(out + ".svg")
	if err != nil {
		t.Fatalf("read render: %v", err)
	}
	if !bytes.Contains(svg, []byte(`data-style="handdrawn"`)) {
		t.Error("render ignored --style handdrawn")
	}
}

func TestPackWarnsWhenSquaresOverlap(t *testing.T) {
	tests := []struct {
		name string
		csv  string
		warn bool
	}{
		{"clean", "label,value\nnorth,4\nsouth,1\n", false},
		{"narrow notch", "value\n94.11\n81.55\n68.99\n66.79\n52.01\n44.33\n43.04\n38.69\n30.79\n22.21\n", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			isolate(t)
			input := filepath.Join(t.TempDir(), "data.csv")
			if err := os.WriteFile(input, []byte(tt.csv), 0644); err != nil {
				t.Fatal(err)
			}

			var err error
			out := captureStdout(t, func() { _, err = execute(t, "pack", input, "--no-cache") })
			if err != nil {
				t.Fatalf("pack: %v", err)
			}
			if !strings.Contains(out, "Pack complete") {
				t.Errorf("output %q missing success line", out)
			}
			if got := strings.Contains(out, "squares overlap"); got != tt.warn {
				t.Errorf("overlap warning printed = %v, want %v; output %q", got, tt.warn, out)
			}
		})
	}
}

func TestPackErrors(t *testing.T) {
	isolate(t)
	dir := t.TempDir()
	bad := filepath.Join(dir, "bad.csv")
	if err := os.WriteFile(bad, []byte("a,-1\n"), 0644); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name string
		args []string
	}{
		{"missing file", []string{"pack", filepath.Join(dir, "absent.csv")}},
		{"negative value", []string{"pack", bad}},
		{"bad style", []string{"render", filepath.Join(dir, "absent.layout.json"), "--style", "neon"}},
		{"no args", []string{"pack"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := execute(t, tt.args...); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestConfigCommands(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("[render]\nstyle = \"handdrawn\"\n"), 0644); err != nil {
		t.Fatal(err)
	}

	out, err := execute(t, "--config", path, "config", "show")
	if err != nil {
		t.Fatalf("config show: %v", err)
	}
	if !strings.Contains(out, `style = "handdrawn"`) {
		t.Errorf("config show output missing style:\n%s", out)
	}

	out, err = execute(t, "--config", path, "config", "path")
	if err != nil {
		t.Fatalf("config path: %v", err)
	}
	if strings.TrimSpace(out) != path {
		t.Errorf("config path = %q, want %q", out, path)
	}

	if err := os.WriteFile(path, []byte("[cache]\nbackend = \"tape\"\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := execute(t, "--config", path, "config", "show"); err == nil {
		t.Error("invalid config accepted")
	}
}

func TestCachePathAndClear(t *testing.T) {
	isolate(t)
	cacheHome := os.Getenv("XDG_CACHE_HOME")

	out, err := execute(t, "cache", "path")
	if err != nil {
		t.Fatalf("cache path: %v", err)
	}
	if want := filepath.Join(cacheHome, appName); strings.TrimSpace(out) != want {
		t.Errorf("cache path = %q, want %q", out, want)
	}

	input := filepath.Join(t.TempDir(), "v.json")
	if err := os.WriteFile(input, []byte("[3, 2, 1]"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := execute(t, "pack", input); err != nil {
		t.Fatalf("pack: %v", err)
	}
	entries, _ := os.ReadDir(filepath.Join(cacheHome, appName))
	if len(entries) == 0 {
		t.Fatal("pack did not populate the file cache")
	}

	if _, err := execute(t, "cache", "clear"); err != nil {
		t.Fatalf("cache clear: %v", err)
	}
}

func TestCompletion(t *testing.T) {
	isolate(t)
	out, err := execute(t, "completion", "bash")
	if err != nil {
		t.Fatalf("completion: %v", err)
	}
	if !strings.Contains(out, "squarespiral") {
		t.Error("bash completion does not mention the command name")
	}
}

func TestParseFormats(t *testing.T) {
	tests := []struct {
		input string
		want  []string
	}{
		{"", []string{"svg"}},
		{"svg", []string{"svg"}},
		{"SVG, png,pdf", []string{"svg", "png", "pdf"}},
	}
	for _, tt := range tests {
		got := parseFormats(tt.input)
		if strings.Join(got, ",") != strings.Join(tt.want, ",") {
			t.Errorf("parseFormats(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestBasePath(t *testing.T) {
	tests := map[string]string{
		"data/sales.layout.json": "data/sales",
		"data/sales.json":        "data/sales",
		"chart":                  "chart",
	}
	for in, want := range tests {
		if got := basePath(in); got != want {
			t.Errorf("basePath(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestRenderFlagsOnlyOverrideChanged(t *testing.T) {
	c := New(io.Discard, log.InfoLevel)
	cmd := c.renderCommand()
	if err := cmd.ParseFlags([]string{"--width", "1024", "--labels"}); err != nil {
		t.Fatal(err)
	}

	var rf renderFlags
	rf.width = 1024
	rf.labels = true
	opts := pipeline.Options{Width: 800, Height: 600, Style: "handdrawn"}
	rf.apply(cmd, &opts)

	if opts.Width != 1024 || !opts.ShowLabels {
		t.Errorf("changed flags not applied: %+v", opts)
	}
	if opts.Height != 600 || opts.Style != "handdrawn" {
		t.Errorf("unchanged flags overrode config: %+v", opts)
	}
}
