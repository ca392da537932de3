package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/sensmetry/detect/internal/evaluate"
)

var bannerStyle = lipgloss.NewStyle().
	Bold(true).
	Padding(0, 1).
	Border(lipgloss.RoundedBorder())

// printResult renders the size banner and both result tables.
func printResult(w io.Writer, res *evaluate.Result) {
	banner := fmt.Sprintf("System size: %s (score %d)", res.Category, res.Score)
	fmt.Fprintln(w, bannerStyle.Render(banner))

	if len(res.Criteria) > 0 {
		fmt.Fprintf(w, "\nCriteria (%d):\n", len(res.Criteria))
		rows := make([][]string, 0, len(res.Criteria))
		for _, c := range res.Criteria {
			rows = append(rows, []string{c.ID, formatValue(c.Value), truncate(c.Criteria, 60), truncate(c.Context, 40)})
		}
		printTable(w, []string{"ID", "VALUE", "CRITERIA", "CONTEXT"}, rows)
	}

	if len(res.Requirements) > 0 {
		fmt.Fprintf(w, "\nRequirements (%d):\n", len(res.Requirements))
		rows := make([][]string, 0, len(res.Requirements))
		for _, r := range res.Requirements {
			rows = append(rows, []string{r.ID, formatValue(r.Value), truncate(r.Description, 80)})
		}
		printTable(w, []string{"ID", "VALUE", "DESCRIPTION"}, rows)
	}
}

// printTable renders rows with columns padded to their widest cell.
func printTable(w io.Writer, headers []string, rows [][]string) {
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = runewidth.StringWidth(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if cw := runewidth.StringWidth(cell); cw > widths[i] {
				widths[i] = cw
			}
		}
	}

	printRow := func(cells []string) {
		parts := make([]string, len(cells))
		for i, cell := range cells {
			parts[i] = padRight(cell, widths[i])
		}
		fmt.Fprintln(w, "  "+strings.TrimRight(strings.Join(parts, "  "), " "))
	}

	printRow(headers)
	for _, row := range rows {
		printRow(row)
	}
}

func formatValue(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// truncate shortens s to maxLen runes, ellipsis included.
func truncate(s string, maxLen int) string {
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	return string(runes[:maxLen-1]) + "…"
}

// padRight pads s with spaces so its terminal display width reaches width.
func padRight(s string, width int) string {
	sw := runewidth.StringWidth(s)
	if sw >= width {
		return s
	}
	return s + strings.Repeat(" ", width-sw)
}
