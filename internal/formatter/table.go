// Package formatter renders student records as aligned text tables.
package formatter

import (
	"strconv"
	"strings"

	"github.com/mattn/go-runewidth"

	"dadeserasmus/internal/models"
)

const (
	minColumnWidth = 3
	ellipsis       = "..."
)

// RosterHeader is the header row of the roster table.
var RosterHeader = []string{"#", "Nom", "Carrera", "Origen"}

// FormatRoster renders students as a markdown table, numbering rows from 1.
// Cells wider than maxWidth display columns are truncated; maxWidth <= 0 disables truncation.
func FormatRoster(students []models.Student, maxWidth int) string {
	rows := make([][]string, 0, len(students))
	for i, s := range students {
		rows = append(rows, []string{strconv.Itoa(i + 1), s.Name, s.Program, s.Origin})
	}

	return FormatTable(RosterHeader, rows, maxWidth)
}

// FormatTable renders a header and rows as a markdown table whose columns are
// padded to the same display width. Wide and combining runes are measured with
// their terminal width, not their byte or rune count.
func FormatTable(header []string, rows [][]string, maxWidth int) string {
	colCount := len(header)
	for _, row := range rows {
		colCount = max(colCount, len(row))
	}

	if colCount == 0 {
		return ""
	}

	table := make([][]string, 0, len(rows)+1)
	table = append(table, clampRow(header, colCount, maxWidth))

	for _, row := range rows {
		table = append(table, clampRow(row, colCount, maxWidth))
	}

	colWidths := make([]int, colCount)
	for i := range colWidths {
		colWidths[i] = minColumnWidth
	}

	for _, row := range table {
		for i, cell := range row {
			colWidths[i] = max(colWidths[i], runewidth.StringWidth(cell))
		}
	}

	var sb strings.Builder

	writeRow(&sb, table[0], colWidths)
	writeSeparator(&sb, colWidths)

	for _, row := range table[1:] {
		writeRow(&sb, row, colWidths)
	}

	return sb.String()
}

// clampRow pads row to colCount cells, collapses whitespace and truncates to maxWidth.
func clampRow(row []string, colCount, maxWidth int) []string {
	cells := make([]string, colCount)

	for i := range cells {
		if i >= len(row) {
			continue
		}

		cell := strings.Join(strings.Fields(row[i]), " ")

		if maxWidth > 0 && runewidth.StringWidth(cell) > maxWidth {
			cell = runewidth.Truncate(cell, maxWidth, ellipsis)
		}

		cells[i] = strings.ReplaceAll(cell, "|", `\|`)
	}

	return cells
}

func writeRow(sb *strings.Builder, row []string, colWidths []int) {
	sb.WriteString("|")

	for i, cell := range row {
		sb.WriteString(" ")
		sb.WriteString(runewidth.FillRight(cell, colWidths[i]))
		sb.WriteString(" |")
	}

	sb.WriteString("\n")
}

func writeSeparator(sb *strings.Builder, colWidths []int) {
	sb.WriteString("|")

	for _, w := range colWidths {
		sb.WriteString(" ")
		sb.WriteString(strings.Repeat("-", w))
		sb.WriteString(" |")
	}

	sb.WriteString("\n")
}
