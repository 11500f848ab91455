package workbook

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/xuri/excelize/v2"
)

const DefaultPreviewRows = 5

type SheetPreview struct {
	Name      string     `json:"name"`
	Headers   []string   `json:"headers"`
	Rows      [][]string `json:"rows"`
	HeaderRow int        `json:"header_row"`
	TotalRows int        `json:"total_rows"`
	Truncated bool       `json:"truncated,omitempty"`
}

type Report struct {
	Path   string         `json:"path"`
	Sheets []SheetPreview `json:"sheets"`
}

type InspectOption func(*inspectOptions)

type inspectOptions struct {
	maxRows int
}

// WithMaxRows caps the number of data rows previewed per sheet.
func WithMaxRows(n int) InspectOption {
	return func(o *inspectOptions) {
		if n >= 0 {
			o.maxRows = n
		}
	}
}

// ResolvePath returns the first of paths that exists on disk.
func ResolvePath(paths ...string) (string, error) {
	var tried []string
	for _, p := range paths {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		tried = append(tried, p)
		info, err := os.Stat(p)
		if err == nil && !info.IsDir() {
			return p, nil
		}
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return "", &Error{Kind: KindFileRead, Path: p, Err: err}
		}
	}
	return "", &Error{Kind: KindFileNotFound, Path: strings.Join(tried, ", "), Err: fs.ErrNotExist}
}

// Inspect opens the first existing workbook among paths and previews every
// sheet. The workbook is never modified.
func Inspect(paths []string, opts ...InspectOption) (*Report, error) {
	o := inspectOptions{maxRows: DefaultPreviewRows}
	for _, opt := range opts {
		opt(&o)
	}

	path, err := ResolvePath(paths...)
	if err != nil {
		return nil, err
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, &Error{Kind: KindFileRead, Path: path, Err: err}
	}
	defer f.Close()

	report := &Report{Path: path}
	for _, name := range f.GetSheetList() {
		preview, err := previewSheet(f, name, o)
		if err != nil {
			return nil, &Error{Kind: KindFileRead, Path: path, Err: err}
		}
		report.Sheets = append(report.Sheets, preview)
	}
	return report, nil
}

// previewSheet takes the first non-blank row as the header. Every row after
// it counts towards TotalRows, but only the previewed ones are decoded.
func previewSheet(f *excelize.File, name string, o inspectOptions) (SheetPreview, error) {
	preview := SheetPreview{Name: name, Headers: []string{}, Rows: [][]string{}}

	rows, err := f.Rows(name)
	if err != nil {
		return preview, fmt.Errorf("read sheet %q: %w", name, err)
	}
	defer rows.Close()

	rowNum := 0
	for rows.Next() {
		rowNum++
		if preview.HeaderRow > 0 && len(preview.Rows) >= o.maxRows {
			preview.TotalRows++
			continue
		}
		cols, err := rows.Columns()
		if err != nil {
			return preview, fmt.Errorf("read sheet %q: %w", name, err)
		}
		if preview.HeaderRow == 0 {
			if isBlankRow(cols) {
				continue
			}
			preview.Headers = cols
			preview.HeaderRow = rowNum
			continue
		}
		preview.TotalRows++
		preview.Rows = append(preview.Rows, cols)
	}
	if err := rows.Error(); err != nil {
		return preview, fmt.Errorf("read sheet %q: %w", name, err)
	}
	preview.Truncated = preview.TotalRows > len(preview.Rows)
	return preview, nil
}

func isBlankRow(cols []string) bool {
	for _, c := range cols {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}
