package pipeline

import (
	"bytes"
	"context"
	"sync"
	"testing"
	"time"

	"github.com/matzehuels/squarespiral/pkg/cache"
	"github.com/matzehuels/squarespiral/pkg/layout"
	"github.com/matzehuels/squarespiral/pkg/observability"
)

func newTestRunner(t *testing.T) *Runner {
	t.Helper()
	c, err := cache.NewFileCache(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	r := NewRunner(c, nil, nil)
	t.Cleanup(func() { r.Close() })
	return r
}

func TestRunnerExecute(t *testing.T) {
	r := newTestRunner(t)
	ctx := context.Background()
	opts := Options{
		Values:     []float64{1, 4},
		Labels:     []string{"small", "big"},
		Formats:    []string{FormatSVG, FormatJSON},
		ShowLabels: true,
	}

	res, err := r.Execute(ctx, opts)
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if res.CacheInfo.LayoutHit || res.CacheInfo.RenderHit {
		t.Error("first run should miss the cache")
	}
	if res.Stats.SquareCount != 2 {
		t.Errorf("SquareCount = %d, want 2", res.Stats.SquareCount)
	}
	if !bytes.Contains(res.Artifacts[FormatSVG], []byte(">big</text>")) {
		t.Error("svg artifact should carry labels")
	}
	if _, err := layout.Unmarshal(res.Artifacts[FormatJSON]); err != nil {
		t.Errorf("json artifact: %v", err)
	}
	if res.Layout.Squares[0].Label != "small" {
		t.Errorf("unsorted run should keep input order, got %q first", res.Layout.Squares[0].Label)
	}

	again, err := r.Execute(ctx, opts)
	if err != nil {
		t.Fatalf("second Execute: %v", err)
	}
	if !again.CacheInfo.LayoutHit || !again.CacheInfo.RenderHit {
		t.Errorf("second run CacheInfo = %+v, want both hits", again.CacheInfo)
	}
	if !bytes.Equal(again.Artifacts[FormatSVG], res.Artifacts[FormatSVG]) {
		t.Error("cached svg differs from rendered svg")
	}
	if again.DatasetHash != res.DatasetHash {
		t.Error("DatasetHash should be stable")
	}
}

func TestRunnerSort(t *testing.T) {
	r := newTestRunner(t)
	res, err := r.Execute(context.Background(), Options{
		Values: []float64{1, 4, 2},
		Labels: []string{"c", "a", "b"},
		Sort:   true,
	})
	if err != nil {
		t.Fatal(err)
	}
	got := []string{res.Layout.Squares[0].Label, res.Layout.Squares[1].Label, res.Layout.Squares[2].Label}
	if got[0] != "a" || got[1] != "b" || got[2] != "c" {
		t.Errorf("sorted labels = %v, want [a b c]", got)
	}
	if !res.Layout.Sorted {
		t.Error("layout should record that it was sorted")
	}
	if res.Dataset.Items[0].Label != "a" {
		t.Error("result dataset should be in packing order")
	}
	if res.Layout.Squares[0].Size != 1 {
		t.Errorf("largest square size = %v, want 1", res.Layout.Squares[0].Size)
	}
}

func TestRunnerRefresh(t *testing.T) {
	r := newTestRunner(t)
	ctx := context.Background()
	opts := Options{Values: []float64{4, 1}}

	if _, _, err := r.PackWithCacheInfo(ctx, opts); err != nil {
		t.Fatal(err)
	}
	if _, hit, _ := r.PackWithCacheInfo(ctx, opts); !hit {
		t.Error("second pack should hit")
	}
	opts.Refresh = true
	if _, hit, _ := r.PackWithCacheInfo(ctx, opts); hit {
		t.Error("refresh should bypass the cache")
	}
}

func TestRunnerInvalidOptions(t *testing.T) {
	r := NewRunner(nil, nil, nil)
	if _, err := r.Execute(context.Background(), Options{}); err == nil {
		t.Error("empty values should fail")
	}
	if _, err := r.Execute(context.Background(), Options{Values: []float64{1}, Formats: []string{"gif"}}); err == nil {
		t.Error("unknown format should fail")
	}
}

func TestRunnerEmitsHooks(t *testing.T) {
	hooks := &recordingHooks{}
	observability.SetPipelineHooks(hooks)
	defer observability.Reset()

	r := NewRunner(nil, nil, nil)
	if _, err := r.Execute(context.Background(), Options{Values: []float64{1, 1, 1}}); err != nil {
		t.Fatal(err)
	}
	hooks.mu.Lock()
	defer hooks.mu.Unlock()
	if hooks.packed != 3 {
		t.Errorf("OnPackComplete count = %d, want 3", hooks.packed)
	}
	if hooks.renders != 1 {
		t.Errorf("OnRenderComplete calls = %d, want 1", hooks.renders)
	}
}

type recordingHooks struct {
	observability.NoopPipelineHooks
	mu      sync.Mutex
	packed  int
	renders int
}

func (h *recordingHooks) OnPackComplete(_ context.Context, count int, _ time.Duration, _ error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.packed += count
}

func (h *recordingHooks) OnRenderComplete(context.Context, []string, time.Duration, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.renders++
}
