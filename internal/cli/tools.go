package cli

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/plotsvg/pkg/tools"
)

func (c *CLI) toolsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "tools [name]",
		Short: "List chart tools, or describe one",
		Example: `  plotsvg tools
  plotsvg tools plot_histogram`,
		Args:              cobra.MaximumNArgs(1),
		ValidArgsFunction: completeToolNames,
		RunE: func(cmd *cobra.Command, args []string) error {
			reg := tools.NewRegistry()
			if len(args) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), toolTable(reg.List()))
				return nil
			}
			t, err := reg.Lookup(args[0])
			if err != nil {
				return err
			}
			example, err := reg.Example(t.Name)
			if err != nil {
				return err
			}
			describeTool(cmd.OutOrStdout(), t, string(example))
			return nil
		},
	}
}

var headerStyle = lipgloss.NewStyle().Foreground(colorGray).Bold(true)

func toolTable(list []tools.Tool) string {
	rows := make([][]string, len(list))
	for i, t := range list {
		rows[i] = []string{t.Name, string(t.Kind), t.Description}
	}
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("Tool", "Kind", "Description").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == -1:
				return headerStyle
			case col == 0:
				return lipgloss.NewStyle().Foreground(colorCyan)
			default:
				return lipgloss.NewStyle()
			}
		}).
		Render()
}

func paramTable(params []tools.Param) string {
	rows := make([][]string, len(params))
	for i, p := range params {
		rows[i] = []string{p.Name, p.Type, p.Default, p.Description}
	}
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("Field", "Type", "Default", "Description").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}
			if col == 2 {
				return StyleDim
			}
			return lipgloss.NewStyle()
		}).
		Render()
}

func describeTool(w io.Writer, t tools.Tool, example string) {
	fmt.Fprintln(w, StyleTitle.Render(t.Name)+" "+StyleDim.Render(string(t.Kind)))
	fmt.Fprintln(w, t.Description)
	fmt.Fprintln(w)
	fmt.Fprintln(w, StyleTitle.Render("Data"))
	fmt.Fprintln(w, paramTable(t.Data))
	if len(t.Options) > 0 {
		fmt.Fprintln(w, StyleTitle.Render("Options"))
		fmt.Fprintln(w, paramTable(t.Options))
	}
	fmt.Fprintln(w, StyleTitle.Render("Example"))
	fmt.Fprintln(w, example)
}
