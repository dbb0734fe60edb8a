package main

import (
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"booklint/internal/checker"
)

// renderSummaryTable renders the end-of-scan counters as a two-column table.
func renderSummaryTable(summary checker.Summary) string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(table.Row{"Metric", "Count"})

	rows := []struct {
		label string
		value int
	}{
		{"Files checked", summary.FilesChecked},
		{"Files with issues", summary.FilesWithIssues},
		{"Files clean", summary.FilesChecked - summary.FilesWithIssues},
		{"Spelling errors", summary.SpellingErrors},
		{"Grammar issues", summary.GrammarIssues},
	}
	for _, row := range rows {
		tw.AppendRow(table.Row{row.label, strconv.Itoa(row.value)})
	}

	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignLeft, AlignHeader: text.AlignLeft},
		{Number: 2, Align: text.AlignRight, AlignHeader: text.AlignLeft},
	})

	return tw.Render()
}
