package cmd

import (
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// renderTable lays rows out under headers, aligning every column
// as told by aligns (left when not given): rows are expected to
// carry as many cells as headers
func renderTable(headers []string, rows [][]string, aligns ...text.Align) string {
	if len(headers) == 0 {
		return ""
	}

	writer := table.NewWriter()
	writer.SetStyle(table.StyleRounded)
	writer.AppendHeader(row(headers))
	for _, cells := range rows {
		writer.AppendRow(row(cells))
	}

	configs := make([]table.ColumnConfig, len(headers))
	for index := range configs {
		configs[index] = table.ColumnConfig{Number: index + 1, Align: text.AlignLeft, AlignHeader: text.AlignLeft}
		if index < len(aligns) {
			configs[index].Align = aligns[index]
		}
	}
	writer.SetColumnConfigs(configs)
	return writer.Render()
}

func row(cells []string) table.Row {
	row := make(table.Row, 0, len(cells))
	for _, cell := range cells {
		row = append(row, cell)
	}
	return row
}
