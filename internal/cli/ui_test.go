package cli

import (
	"bytes"
	"io"
	"os"
	"strings"
	"testing"
)

// captureStdout returns what fn prints to os.Stdout.
func captureStdout(t *testing.T, fn func()) string {
	t.Helper()
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatal(err)
	}
	old := os.Stdout
	os.Stdout = w
	defer func() { os.Stdout = old }()

	done := make(chan string)
	go func() {
		var buf bytes.Buffer
		_, _ = io.Copy(&buf, r)
		done <- buf.String()
	}()

	fn()
	w.Close()
	return <-done
}

func TestPrinters(t *testing.T) {
	tests := []struct {
		name  string
		print func()
		want  []string
	}{
		{"warning", func() { printWarning("%d squares overlap", 2) }, []string{iconWarning, "2 squares overlap"}},
		{"key value", func() { printKeyValue("store", "mongo") }, []string{"store", "mongo"}},
		{"stats", func() { printStats(3, 8, true) }, []string{"3 squares", "8 outline vertices", iconCached}},
		{"next step", func() { printNextStep("Render", "squarespiral render x") }, []string{"Render:", "squarespiral render x"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := captureStdout(t, tt.print)
			for _, w := range tt.want {
				if !strings.Contains(out, w) {
					t.Errorf("output %q missing %q", out, w)
				}
			}
		})
	}
}
