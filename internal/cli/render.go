package cli

import (
	"context"
	"fmt"
	"os"
	"slices"

	"github.com/spf13/cobra"

	"github.com/matzehuels/squarespiral/pkg/layout"
	"github.com/matzehuels/squarespiral/pkg/pipeline"
)

// renderCommand creates the render command.
func (c *CLI) renderCommand() *cobra.Command {
	var (
		output  string
		noCache bool
		rf      renderFlags
	)

	cmd := &cobra.Command{
		Use:   "render [layout.json]",
		Short: "Render a packed layout to SVG, PNG or PDF",
		Long: `Render a packed layout to SVG, PNG or PDF.

The layout file is produced by 'pack'. Output files are written next to it
(or to --output as base path) with the format as extension.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := c.Config.PipelineOptions()
			rf.apply(cmd, &opts)
			return c.runRender(cmd.Context(), args[0], output, noCache, opts)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output base path (default: input without .layout.json)")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")
	rf.bind(cmd)

	return cmd
}

func (c *CLI) runRender(ctx context.Context, input, output string, noCache bool, opts pipeline.Options) error {
	l, err := layout.ReadFile(input)
	if err != nil {
		return fmt.Errorf("load layout %s: %w", input, err)
	}
	opts.Logger = c.Logger

	runner, err := c.newRunner(ctx, noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	base := output
	if base == "" {
		base = basePath(input)
	} else {
		base = basePath(base)
	}

	paths, err := c.writeRenders(ctx, runner, l, opts, base)
	if err != nil {
		return err
	}

	printSuccess("Render complete")
	for _, p := range paths {
		printFile(p)
	}
	return nil
}

// writeRenders renders every requested format and writes <base>.<format>.
// Paths are returned in format order.
func (c *CLI) writeRenders(ctx context.Context, runner *pipeline.Runner, l layout.Layout, opts pipeline.Options, base string) ([]string, error) {
	spinner := newSpinner(ctx, os.Stderr, "Rendering...")
	spinner.Start()
	artifacts, hit, err := runner.RenderWithCacheInfo(ctx, l, opts)
	if err != nil {
		spinner.StopWithError("Render failed")
		return nil, fmt.Errorf("render: %w", err)
	}
	spinner.Stop()
	c.Logger.Debug("rendered", "formats", opts.Formats, "cached", hit)

	formats := make([]string, 0, len(artifacts))
	for f := range artifacts {
		formats = append(formats, f)
	}
	slices.Sort(formats)

	paths := make([]string, 0, len(formats))
	for _, f := range formats {
		path := base + "." + f
		if err := os.WriteFile(path, artifacts[f], 0644); err != nil {
			return nil, fmt.Errorf("write %s: %w", path, err)
		}
		paths = append(paths, path)
	}
	return paths, nil
}
