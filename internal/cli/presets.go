package cli

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/chenzc24/padring/pkg/ring"
)

// presetsCommand creates the presets command for showing process defaults.
func (c *CLI) presetsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "presets [process]",
		Short: "Show process presets and device catalogs",
		Long: `Show process presets and device catalogs.

Without arguments the presets command lists every supported process with
its default ring configuration and the devices its IO library provides.
Pass a process name (c180, c55) to show a single preset.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				p, err := ring.ParseProcess(args[0])
				if err != nil {
					return fmt.Errorf("unknown process %q", args[0])
				}
				return printPreset(p)
			}
			for i, p := range ring.Processes() {
				if i > 0 {
					printNewline()
				}
				if err := printPreset(p); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

// printPreset prints the default configuration and device catalog of one process.
func printPreset(p ring.Process) error {
	cfg, err := ring.DefaultConfig(p)
	if err != nil {
		return err
	}

	pitch := "variable pitch"
	if p.Uniform() {
		pitch = "uniform pitch"
	}
	fmt.Println(StyleTitle.Render(string(p)) + " " + StyleHighlight.Render(pitch))

	printKeyValue("library", cfg.Library)
	printKeyValue("view", cfg.View)
	printKeyValue("order", string(cfg.Order))
	printKeyValue("pad", fmt.Sprintf("%g x %g um", cfg.PadWidth, cfg.PadHeight))
	if cfg.PadSpacing > 0 {
		printKeyValue("pitch", fmt.Sprintf("%g um", cfg.PadSpacing))
	}
	printKeyValue("corner", fmt.Sprintf("%g um", cfg.CornerSize))
	printNewline()

	rows := [][]string{}
	for _, e := range ring.Catalog(p) {
		family := ""
		if e.Family != ring.FamilyUnknown {
			family = e.Family.String()
		}
		width := ""
		if e.Width > 0 {
			width = fmt.Sprintf("%g", e.Width)
		}
		rows = append(rows, []string{e.Device, e.Class.String(), family, width})
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("Device", "Class", "Family", "Width").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}
			if col == 3 {
				return StyleNumber
			}
			return lipgloss.NewStyle().Foreground(colorWhite)
		})
	fmt.Println(t.Render())

	return nil
}
