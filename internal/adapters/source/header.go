package source

import (
	"fmt"
	"strings"
)

// normalizeHeader makes every column name usable as a unique key. Blank
// names become "Unnamed: <index>" and repeated names get ".1", ".2", ...
// suffixes. The header is padded to width columns.
func normalizeHeader(cells []string, width int) []string {
	if width < len(cells) {
		width = len(cells)
	}

	header := make([]string, width)
	used := make(map[string]bool, width)
	suffix := make(map[string]int)
	for i := 0; i < width; i++ {
		name := cellAt(cells, i)
		if strings.TrimSpace(name) == "" {
			name = fmt.Sprintf("Unnamed: %d", i)
		}

		candidate := name
		for used[candidate] {
			suffix[name]++
			candidate = fmt.Sprintf("%s.%d", name, suffix[name])
		}
		used[candidate] = true
		header[i] = candidate
	}
	return header
}

func maxWidth(rows [][]string) int {
	width := 0
	for _, row := range rows {
		if len(row) > width {
			width = len(row)
		}
	}
	return width
}

func cellAt(row []string, i int) string {
	if i < len(row) {
		return row[i]
	}
	return ""
}
