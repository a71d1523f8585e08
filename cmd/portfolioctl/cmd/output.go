package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
)

// renderTable prints rows as an ASCII table on stdout
func renderTable(headers []string, rows [][]string) {
	if len(rows) == 0 {
		fmt.Println("No data to display")
		return
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader(headers)
	table.SetBorder(false)
	table.SetAutoWrapText(false)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)

	for _, row := range rows {
		table.Append(row)
	}
	table.Render()
}

// printSuccess prints a green confirmation message
func printSuccess(format string, args ...interface{}) {
	color.Green("✓ "+format, args...)
}

// printError prints a red error message
func printError(format string, args ...interface{}) {
	color.Red("✗ "+format, args...)
}

// formatTime renders timestamps for table cells
func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Local().Format("2006-01-02 15:04")
}

// truncate shortens long free-text cells
func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}

// yesNo renders booleans for table cells
func yesNo(v bool) string {
	if v {
		return "yes"
	}
	return "no"
}
