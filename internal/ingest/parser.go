// Package ingest turns raw delimited text into candidate product records.
// Parsing is best-effort: malformed rows are skipped and counted, never
// raised, and re-parsing the same text yields the same record sequence.
package ingest

import "strings"

const bom = "\uFEFF"

// Parse splits raw CSV/TSV text into rows of cells. The field separator is a
// single global decision: tab when the text contains any tab character,
// comma otherwise. Fields may be double-quoted; a doubled quote inside a
// quoted field is a literal quote, and quoted fields may embed line breaks.
// Rows where every cell trims to empty are dropped.
func Parse(text string) [][]string {
	src := strings.TrimPrefix(text, bom)

	sep := byte(',')
	if strings.IndexByte(src, '\t') >= 0 {
		sep = '\t'
	}

	var rows [][]string
	var cur []string
	var cell strings.Builder
	inQuote := false

	endCell := func() {
		cur = append(cur, cell.String())
		cell.Reset()
	}
	endRow := func() {
		endCell()
		rows = append(rows, cur)
		cur = nil
	}

	for i := 0; i < len(src); i++ {
		ch := src[i]

		if ch == '"' {
			if inQuote && i+1 < len(src) && src[i+1] == '"' {
				cell.WriteByte('"')
				i++
			} else {
				inQuote = !inQuote
			}
			continue
		}

		if !inQuote {
			switch ch {
			case sep:
				endCell()
				continue
			case '\n':
				endRow()
				continue
			case '\r':
				endRow()
				if i+1 < len(src) && src[i+1] == '\n' {
					i++
				}
				continue
			}
		}

		cell.WriteByte(ch)
	}
	if cell.Len() > 0 || len(cur) > 0 {
		endRow()
	}

	out := rows[:0]
	for _, r := range rows {
		if !blankRow(r) {
			out = append(out, r)
		}
	}
	return out
}

func blankRow(cells []string) bool {
	for _, c := range cells {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}
