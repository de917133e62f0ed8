package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	padringio "github.com/chenzc24/padring/pkg/io"
)

// scriptCommand creates the script command for CAD placement generation.
func (c *CLI) scriptCommand() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "script [artifact]",
		Short: "Emit a layout artifact as CAD placement commands",
		Long: `Emit a layout artifact as CAD placement commands.

The script command turns a placed layout artifact into a SKILL script with
one placement call per instance. Replaying the script in a layout editor
reproduces the ring exactly as resolved; no coordinate is re-derived.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runScript(args[0], output)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: <input>.il)")

	return cmd
}

// runScript loads the artifact and writes the placement script.
func (c *CLI) runScript(input, output string) error {
	a, err := padringio.ImportArtifact(input)
	if err != nil {
		return fmt.Errorf("load artifact %s: %w", input, err)
	}

	outputPath := output
	if outputPath == "" {
		outputPath = derivedPath(input, ".il")
	}
	if err := padringio.ExportScript(a, outputPath); err != nil {
		return fmt.Errorf("write output %s: %w", outputPath, err)
	}

	printSuccess("Placement script written")
	printFile(outputPath)
	printDetail("%d placement calls", len(a.Instances))

	return nil
}
