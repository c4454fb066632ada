package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/squarespiral/pkg/dataset"
	"github.com/matzehuels/squarespiral/pkg/layout"
	"github.com/matzehuels/squarespiral/pkg/pipeline"
)

// packCommand creates the pack command.
func (c *CLI) packCommand() *cobra.Command {
	var (
		output   string
		sheet    string
		maxValue float64
		sort     bool
		noCache  bool
		refresh  bool
		rf       renderFlags
	)

	cmd := &cobra.Command{
		Use:   "pack [data.json|.yaml|.csv|.xlsx]",
		Short: "Pack a dataset into a square spiral",
		Long: `Pack a dataset into a square spiral.

Each value becomes a square whose area is proportional to value/max-value.
The packed layout is written to <input>.layout.json; use --format to render
SVG, PNG or PDF at the same time. PNG and PDF need rsvg-convert on PATH.

Results are cached locally for faster subsequent runs.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := c.Config.PipelineOptions()
			if cmd.Flags().Changed("max") {
				opts.MaxValue = maxValue
			}
			if cmd.Flags().Changed("sort") {
				opts.Sort = sort
			}
			opts.Refresh = refresh
			rf.apply(cmd, &opts)
			if !cmd.Flags().Changed("format") {
				opts.Formats = nil
			}
			return c.runPack(cmd.Context(), args[0], sheet, output, noCache, opts)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output layout file (default: <input>.layout.json)")
	cmd.Flags().StringVar(&sheet, "sheet", "", "worksheet name for .xlsx input (default: first sheet)")
	cmd.Flags().Float64Var(&maxValue, "max", 0, "value that maps to a unit square (default: largest value)")
	cmd.Flags().BoolVar(&sort, "sort", false, "pack largest values first")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")
	cmd.Flags().BoolVar(&refresh, "refresh", false, "recompute even when cached")
	rf.bind(cmd)

	return cmd
}

// runPack reads the dataset, packs it and writes the layout plus any
// requested renders next to it.
func (c *CLI) runPack(ctx context.Context, input, sheet, output string, noCache bool, opts pipeline.Options) error {
	prog := newProgress(c.Logger)
	ds, err := dataset.Read(input, dataset.WithSheet(sheet))
	if err != nil {
		return fmt.Errorf("read %s: %w", input, err)
	}
	prog.done("read dataset", "items", ds.Len())
	opts.Dataset = ds
	opts.Logger = c.Logger

	runner, err := c.newRunner(ctx, noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	spinner := newSpinner(ctx, os.Stderr, fmt.Sprintf("Packing %d squares...", ds.Len()))
	spinner.Start()
	l, cacheHit, err := runner.PackWithCacheInfo(ctx, opts)
	if err != nil {
		spinner.StopWithError("Pack failed")
		return fmt.Errorf("pack: %w", err)
	}
	if ctx.Err() != nil {
		spinner.Stop()
		return ctx.Err()
	}
	spinner.StopWithSuccess("Pack complete")

	layoutPath := output
	if layoutPath == "" {
		layoutPath = strings.TrimSuffix(input, filepath.Ext(input)) + ".layout.json"
	}
	if err := layout.WriteFile(l, layoutPath); err != nil {
		return fmt.Errorf("write output %s: %w", layoutPath, err)
	}

	printFile(layoutPath)
	if l.SelfIntersecting() {
		printWarning("Outline crosses itself: some squares overlap. A different value order may pack cleanly.")
	}

	// JSON is already on disk as the layout file.
	opts.Formats = slices.DeleteFunc(opts.Formats, func(f string) bool { return f == pipeline.FormatJSON })
	if len(opts.Formats) > 0 {
		paths, err := c.writeRenders(ctx, runner, l, opts, basePath(layoutPath))
		if err != nil {
			return err
		}
		for _, p := range paths {
			printFile(p)
		}
	}

	printStats(len(l.Squares), len(l.Outline), cacheHit)
	printNewline()
	printNextStep("Render", appName+" render "+layoutPath+" -f svg,png")
	return nil
}

// basePath strips ".layout.json" or the final extension.
func basePath(path string) string {
	if base, ok := strings.CutSuffix(path, ".layout.json"); ok {
		return base
	}
	return strings.TrimSuffix(path, filepath.Ext(path))
}
