package cli

import (
	"fmt"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/katalvlaran/mincover/experiment"
)

var (
	colorCyan = lipgloss.Color("36")
	colorGray = lipgloss.Color("245")
	colorDim  = lipgloss.Color("240")

	styleTitle  = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	styleHeader = lipgloss.NewStyle().Bold(true).Foreground(colorGray)
	styleBorder = lipgloss.NewStyle().Foreground(colorDim)
)

// renderSummaries formats experiment results as a bordered table.
func renderSummaries(sums []experiment.Summary) string {
	rows := make([][]string, 0, len(sums))
	for _, s := range sums {
		rows = append(rows, []string{
			s.Name,
			fmt.Sprintf("%d", s.Vertices),
			fmt.Sprintf("%d", s.Edges),
			fmt.Sprintf("%d", s.MaxNode),
			fmt.Sprintf("%d", s.BestCovered),
			fmt.Sprintf("%.1f", s.MeanCovered),
			fmt.Sprintf("%.2f", s.StdDevCovered),
			s.MeanRuntime.Round(time.Microsecond).String(),
		})
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(styleBorder).
		Headers("Graph", "V", "E", "MaxNode", "Best", "Mean", "StdDev", "MeanTime").
		Rows(rows...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == -1 {
				return styleHeader
			}

			return lipgloss.NewStyle().Padding(0, 1)
		})

	return t.Render()
}
