package live

import (
	"time"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
)

// tableStyles returns table styles for the UI.
func tableStyles(noColor bool) table.Styles {
	if noColor {
		return table.DefaultStyles()
	}
	styles := table.DefaultStyles()
	styles.Header = styles.Header.Foreground(lipgloss.Color("252"))
	return styles
}

// defaultColumns returns the column layout for an 80 column terminal.
func defaultColumns() []table.Column {
	return columnsForWidth(80)
}

// columnsForWidth gives the spare width to the file column.
func columnsForWidth(width int) []table.Column {
	const fixed = 4 + 10 + 8 + 8 + 8
	fileWidth := max(width-fixed-12, 16)
	return []table.Column{
		{Title: "#", Width: 4},
		{Title: "File", Width: fileWidth},
		{Title: "Status", Width: 10},
		{Title: "Sections", Width: 8},
		{Title: "Tables", Width: 8},
		{Title: "Time", Width: 8},
	}
}

// rowsForState converts UI state into table rows.
func rowsForState(state State, now time.Time, noColor bool) []table.Row {
	rows := make([]table.Row, 0, len(state.Rows))
	for _, row := range state.Rows {
		rows = append(rows, table.Row{
			formatIndex(row.Index),
			formatPath(row.Path),
			formatStatus(row, noColor),
			formatCount(row, row.Sections),
			formatCount(row, row.Tables),
			formatRowDuration(row, now),
		})
	}
	return rows
}
