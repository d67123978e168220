package formatter

import (
	"fmt"
	"strings"

	"feedbuilder/internal/feed"
	"feedbuilder/internal/normalizer"
	"feedbuilder/pkg/utils"

	"github.com/mattn/go-runewidth"
)

// Preview normalizes up to limit products (all of them when limit <= 0) and
// renders them as a markdown table. Cells wider than maxCellWidth display
// columns are truncated; maxCellWidth <= 0 disables truncation.
func Preview(f *feed.Feed, n normalizer.Normalizer, limit, maxCellWidth int) (string, error) {
	var records []normalizer.Record

	for i, p := range f.All() {
		if limit > 0 && i >= limit {
			break
		}

		rec, err := n.Normalize(p)
		if err != nil {
			return "", fmt.Errorf("product %d: %w", i, err)
		}

		records = append(records, rec)
	}

	return FormatMarkdownTable(records, maxCellWidth), nil
}

// FormatMarkdownTable renders records as an aligned markdown table whose
// header is the first record's field names. Column widths are measured in
// display width, so CJK text lines up.
func FormatMarkdownTable(records []normalizer.Record, maxCellWidth int) string {
	if len(records) == 0 {
		return ""
	}

	// 1. Collect cells
	table := make([][]string, 0, len(records)+1)
	table = append(table, records[0].Names())

	for _, rec := range records {
		table = append(table, rec.Strings())
	}

	colCount := 0
	for _, row := range table {
		colCount = max(colCount, len(row))
	}

	for _, row := range table {
		for j := range row {
			row[j] = cleanCell(row[j], maxCellWidth)
		}
	}

	// 2. Calculate max widths (using display width)
	colWidths := make([]int, colCount)

	for _, row := range table {
		for i, cell := range row {
			colWidths[i] = max(colWidths[i], runewidth.StringWidth(cell))
		}
	}

	// Separator needs at least "---"
	for i := range colWidths {
		colWidths[i] = max(colWidths[i], 3)
	}

	// 3. Reconstruct lines
	lines := make([]string, 0, len(table)+1)
	lines = append(lines, renderRow(table[0], colWidths))

	separator := make([]string, colCount)
	for i, width := range colWidths {
		separator[i] = strings.Repeat("-", width)
	}

	lines = append(lines, renderRow(separator, colWidths))

	for _, row := range table[1:] {
		lines = append(lines, renderRow(row, colWidths))
	}

	return strings.Join(lines, "\n")
}

func renderRow(row []string, colWidths []int) string {
	var sb strings.Builder

	sb.WriteString("|")

	for j, width := range colWidths {
		content := ""
		if j < len(row) {
			content = row[j]
		}

		sb.WriteString(" ")
		sb.WriteString(content)

		// Pad with spaces based on display width
		if padding := width - runewidth.StringWidth(content); padding > 0 {
			sb.WriteString(strings.Repeat(" ", padding))
		}

		sb.WriteString(" |")
	}

	return sb.String()
}

// cleanCell flattens newlines, escapes pipes and truncates to maxWidth columns.
func cleanCell(cell string, maxWidth int) string {
	cell = utils.NewStringHelper().NormalizeWhitespace(cell)
	cell = strings.ReplaceAll(cell, "|", `\|`)

	if maxWidth > 0 && runewidth.StringWidth(cell) > maxWidth {
		cell = runewidth.Truncate(cell, maxWidth, "…")
	}

	return cell
}
