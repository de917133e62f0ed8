package cli

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	padringio "github.com/chenzc24/padring/pkg/io"
	"github.com/chenzc24/padring/pkg/pipeline"
)

// placeCommand creates the place command for resolving ring specs.
func (c *CLI) placeCommand() *cobra.Command {
	var (
		output  string
		noCache bool
	)
	opts := pipeline.Options{}

	cmd := &cobra.Command{
		Use:   "place [spec file]",
		Short: "Resolve a ring spec into a placed layout artifact",
		Long: `Resolve a ring spec into a placed layout artifact.

The place command takes a spec file (TOML or JSON), resolves every pad,
corner and filler cell to a physical position on the die boundary, and
writes the result as a layout artifact. When the spec enables auto-fill
the gaps between pads are closed with synthesized boundary cells.

Results are cached locally for faster subsequent runs.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runPlace(cmd.Context(), args[0], opts, output, noCache)
		},
	}

	// Common flags
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: <input>"+artifactExt+")")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")

	// Resolution flags
	cmd.Flags().StringVar(&opts.Order, "order", "", "override ring traversal order: cw, ccw")
	cmd.Flags().BoolVar(&opts.NoFill, "no-fill", false, "disable boundary cell synthesis")
	cmd.Flags().BoolVar(&opts.Refresh, "refresh", false, "resolve fresh even when a cached result exists")

	return cmd
}

// runPlace resolves the spec and writes the layout artifact.
func (c *CLI) runPlace(ctx context.Context, input string, opts pipeline.Options, output string, noCache bool) error {
	runner, err := c.newRunner(noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	opts.SpecPath = input
	opts.Logger = c.Logger

	result, err := runner.Execute(ctx, opts)
	if err != nil {
		return fmt.Errorf("resolve ring: %w", err)
	}

	if ctx.Err() != nil {
		return ctx.Err()
	}

	outputPath := output
	if outputPath == "" {
		base := strings.TrimSuffix(input, filepath.Ext(input))
		outputPath = base + artifactExt
	}

	if err := padringio.ExportArtifact(result.Artifact, outputPath); err != nil {
		return fmt.Errorf("write output %s: %w", outputPath, err)
	}

	printSuccess("Placement complete")
	printFile(outputPath)
	printStats(result.Stats.InstanceCount, result.Stats.SynthesizedCount, result.CacheInfo.ArtifactHit)
	printNewline()
	printNextStep("Inspect", "padring inspect "+outputPath)

	return nil
}
