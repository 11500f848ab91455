package workbook

import (
	"fmt"
	"io"
	"strings"

	toon "github.com/mateuszkardas/toon-go"
)

// WriteText prints the report the way the inspector shows it on a terminal.
func (r *Report) WriteText(w io.Writer) error {
	names := make([]string, len(r.Sheets))
	for i, s := range r.Sheets {
		names[i] = s.Name
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Opened %q\n", r.Path)
	fmt.Fprintf(&b, "Sheet names: [%s]\n", strings.Join(quoteAll(names), ", "))
	for _, s := range r.Sheets {
		fmt.Fprintf(&b, "\n--- Sheet: %s ---\n", s.Name)
		fmt.Fprintf(&b, "Columns:\n[%s]\n", strings.Join(quoteAll(s.Headers), ", "))
		fmt.Fprintf(&b, "First %d of %d rows:\n", len(s.Rows), s.TotalRows)
		if len(s.Rows) == 0 {
			b.WriteString("  (no data rows)\n")
		}
		for i, row := range s.Rows {
			fmt.Fprintf(&b, "  %4d | %s\n", i+1, strings.Join(row, " | "))
		}
		if s.Truncated {
			b.WriteString("  ...\n")
		}
	}
	_, err := io.WriteString(w, b.String())
	return err
}

// Markdown renders one table per sheet.
func (r *Report) Markdown() string {
	var b strings.Builder
	b.WriteString("# Workbook Inspect Report\n\n")
	fmt.Fprintf(&b, "- File: `%s`\n", r.Path)
	fmt.Fprintf(&b, "- Sheets: %d\n", len(r.Sheets))

	for _, s := range r.Sheets {
		fmt.Fprintf(&b, "\n## %s\n\n", escapeMarkdownCell(s.Name))
		width := len(s.Headers)
		for _, row := range s.Rows {
			if len(row) > width {
				width = len(row)
			}
		}
		if width == 0 {
			b.WriteString("_Empty sheet._\n")
			continue
		}

		headers := make([]string, width)
		for i := range headers {
			if i < len(s.Headers) && strings.TrimSpace(s.Headers[i]) != "" {
				headers[i] = escapeMarkdownCell(s.Headers[i])
			} else {
				headers[i] = fmt.Sprintf("Column %d", i+1)
			}
		}
		writeMarkdownRow(&b, headers)
		sep := make([]string, width)
		for i := range sep {
			sep[i] = "---"
		}
		writeMarkdownRow(&b, sep)

		for _, row := range s.Rows {
			cells := make([]string, width)
			for i := range cells {
				if i < len(row) {
					cells[i] = escapeMarkdownCell(row[i])
				}
			}
			writeMarkdownRow(&b, cells)
		}
		if len(s.Rows) == 0 {
			b.WriteString("\n_No data rows._\n")
		} else if s.Truncated {
			fmt.Fprintf(&b, "\n_Showing first %d of %d rows._\n", len(s.Rows), s.TotalRows)
		}
	}
	return b.String()
}

// TOON encodes the report in Token-Oriented Object Notation.
func (r *Report) TOON() (string, error) {
	return toon.Marshal(r, nil)
}

func writeMarkdownRow(b *strings.Builder, cells []string) {
	b.WriteString("| ")
	b.WriteString(strings.Join(cells, " | "))
	b.WriteString(" |\n")
}

func escapeMarkdownCell(v string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return ""
	}
	v = strings.ReplaceAll(v, "\\", "\\\\")
	v = strings.ReplaceAll(v, "|", "\\|")
	v = strings.ReplaceAll(v, "\n", " ")
	return v
}

func quoteAll(vs []string) []string {
	out := make([]string, len(vs))
	for i, v := range vs {
		out[i] = fmt.Sprintf("'%s'", v)
	}
	return out
}
