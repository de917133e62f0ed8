package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	padringio "github.com/chenzc24/padring/pkg/io"
	"github.com/chenzc24/padring/pkg/render"
)

// drawCommand creates the draw command for rendering ring diagrams.
func (c *CLI) drawCommand() *cobra.Command {
	var (
		output   string
		scale    float64
		noLegend bool
		noLabels bool
	)

	cmd := &cobra.Command{
		Use:   "draw [artifact]",
		Short: "Draw a layout artifact as an SVG diagram",
		Long: `Draw a layout artifact as an SVG diagram.

The draw command renders a placed layout artifact as a colored die diagram:
pads tinted by voltage domain family, corners and boundary cells in neutral
tones, synthesized cells dashed. The diagram reads its coordinates straight
from the artifact, so it always matches what the placement script places.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runDraw(args[0], output, scale, noLegend, noLabels)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: <input>.svg)")
	cmd.Flags().Float64Var(&scale, "scale", 1, "pixels per micron")
	cmd.Flags().BoolVar(&noLegend, "no-legend", false, "omit the class color legend")
	cmd.Flags().BoolVar(&noLabels, "no-labels", false, "omit instance name labels")

	return cmd
}

// runDraw renders the artifact and writes the SVG file.
func (c *CLI) runDraw(input, output string, scale float64, noLegend, noLabels bool) error {
	a, err := padringio.ImportArtifact(input)
	if err != nil {
		return fmt.Errorf("load artifact %s: %w", input, err)
	}

	opts := []render.Option{render.WithScale(scale)}
	if !noLegend {
		opts = append(opts, render.WithLegend())
	}
	if noLabels {
		opts = append(opts, render.WithoutLabels())
	}
	svg := render.RenderSVG(a, opts...)

	outputPath := output
	if outputPath == "" {
		outputPath = derivedPath(input, ".svg")
	}
	if err := os.WriteFile(outputPath, svg, 0644); err != nil {
		return fmt.Errorf("write output %s: %w", outputPath, err)
	}

	printSuccess("Diagram written")
	printFile(outputPath)
	printDetail("%d instances on a %g x %g um die", len(a.Instances), a.DieWidth, a.DieHeight)

	return nil
}

// derivedPath swaps the artifact extension for ext, falling back to the
// plain extension for inputs without the artifact suffix.
func derivedPath(input, ext string) string {
	base := strings.TrimSuffix(input, artifactExt)
	if base == input {
		base = strings.TrimSuffix(input, filepath.Ext(input))
	}
	return base + ext
}
