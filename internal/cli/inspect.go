package cli

import (
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	padringio "github.com/chenzc24/padring/pkg/io"
)

// List styles
var (
	listDimStyle = lipgloss.NewStyle().Foreground(colorDim)
)

// inspectCommand creates the inspect command for browsing layout artifacts.
func (c *CLI) inspectCommand() *cobra.Command {
	var plain bool

	cmd := &cobra.Command{
		Use:   "inspect [layout file]",
		Short: "Browse a resolved layout artifact",
		Long: `Browse a resolved layout artifact.

The inspect command opens the instance table of a layout artifact (produced
by 'place') in an interactive browser. Use arrow keys or j/k to scroll and
q to quit. With --plain the table is printed once without interaction.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runInspect(args[0], plain)
		},
	}

	cmd.Flags().BoolVar(&plain, "plain", false, "print the table once instead of browsing interactively")

	return cmd
}

// runInspect loads the artifact and shows the instance table.
func (c *CLI) runInspect(input string, plain bool) error {
	a, err := padringio.ImportArtifact(input)
	if err != nil {
		return fmt.Errorf("load artifact %s: %w", input, err)
	}

	if plain {
		fmt.Println(artifactHeader(a))
		fmt.Println(instanceTable(a, 0, len(a.Instances), -1))
		return nil
	}

	p := tea.NewProgram(NewInstanceListModel(a))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("browse artifact: %w", err)
	}
	return nil
}

// =============================================================================
// InstanceListModel - Interactive instance browsing
// =============================================================================

// InstanceListModel is the bubbletea model for scrolling through the
// instances of a layout artifact.
type InstanceListModel struct {
	Artifact padringio.Artifact
	Cursor   int
	Height   int
	Offset   int
}

// NewInstanceListModel creates a new instance list model.
func NewInstanceListModel(a padringio.Artifact) InstanceListModel {
	return InstanceListModel{
		Artifact: a,
		Cursor:   0,
		Height:   15,
		Offset:   0,
	}
}

func (m InstanceListModel) Init() tea.Cmd {
	return nil
}

func (m InstanceListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.Cursor > 0 {
				m.Cursor--
				if m.Cursor < m.Offset {
					m.Offset = m.Cursor
				}
			}
		case "down", "j":
			if m.Cursor < len(m.Artifact.Instances)-1 {
				m.Cursor++
				if m.Cursor >= m.Offset+m.Height {
					m.Offset = m.Cursor - m.Height + 1
				}
			}
		}
	case tea.WindowSizeMsg:
		m.Height = msg.Height - 8
		if m.Height < 5 {
			m.Height = 5
		}
	}
	return m, nil
}

func (m InstanceListModel) View() string {
	var b strings.Builder

	b.WriteString(artifactHeader(m.Artifact))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  q quit"))
	b.WriteString("\n\n")

	end := m.Offset + m.Height
	if end > len(m.Artifact.Instances) {
		end = len(m.Artifact.Instances)
	}

	b.WriteString(instanceTable(m.Artifact, m.Offset, end, m.Cursor))
	b.WriteString("\n\n")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d/%d]", m.Cursor+1, len(m.Artifact.Instances))))

	return b.String()
}

// =============================================================================
// Helpers
// =============================================================================

// artifactHeader renders the die summary line shown above the table.
func artifactHeader(a padringio.Artifact) string {
	die := fmt.Sprintf("%g x %g um", a.DieWidth, a.DieHeight)
	return StyleTitle.Render(a.Process+" ring") + " " +
		StyleHighlight.Render(die) + " " +
		listDimStyle.Render(fmt.Sprintf("%s/%s · %s", a.Library, a.View, a.Order))
}

// instanceTable renders artifact instances [from, to) as a bordered table.
// Row cursor marks the selected instance; pass -1 for no selection.
func instanceTable(a padringio.Artifact, from, to, cursor int) string {
	rows := make([][]string, 0, to-from)
	for i := from; i < to; i++ {
		inst := a.Instances[i]

		marker := "  "
		if i == cursor {
			marker = "▸ "
		}

		domain := "—"
		if inst.Domain != nil {
			domain = inst.Domain.Key
		}

		origin := ""
		if inst.Synthesized {
			origin = "synth"
		}

		rows = append(rows, []string{
			marker,
			inst.Name,
			inst.Device,
			inst.Class,
			domain,
			formatUm(inst.Position[0]),
			formatUm(inst.Position[1]),
			inst.Orientation,
			origin,
		})
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("", "Instance", "Device", "Class", "Domain", "X", "Y", "Orient", "").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}

			actualIdx := from + row
			if actualIdx >= len(a.Instances) {
				return lipgloss.NewStyle()
			}
			inst := a.Instances[actualIdx]

			switch {
			case actualIdx == cursor:
				return lipgloss.NewStyle().Foreground(colorCyan).Bold(true)
			case inst.Synthesized:
				return lipgloss.NewStyle().Foreground(colorDim)
			case col == 5 || col == 6:
				return StyleNumber
			}
			return lipgloss.NewStyle().Foreground(colorWhite)
		})

	return t.Render()
}

// formatUm formats a coordinate in micrometers without trailing zeros.
func formatUm(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
