package workbook

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"
)

// Build renders the template into a new excelize workbook. The caller owns
// the returned file and must Close it.
func Build(t *Template) (*excelize.File, error) {
	if len(t.Sheets) == 0 {
		return nil, fmt.Errorf("template has no sheets")
	}

	f := excelize.NewFile()
	headerStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("create header style: %w", err)
	}

	defaultSheet := f.GetSheetName(0)
	for i, s := range t.Sheets {
		if i == 0 {
			if err := f.SetSheetName(defaultSheet, s.Name); err != nil {
				f.Close()
				return nil, fmt.Errorf("rename sheet %q: %w", defaultSheet, err)
			}
		} else if _, err := f.NewSheet(s.Name); err != nil {
			f.Close()
			return nil, fmt.Errorf("failed to create sheet %q: %w", s.Name, err)
		}
		if err := writeSheet(f, s, headerStyle); err != nil {
			f.Close()
			return nil, err
		}
	}
	f.SetActiveSheet(0)
	return f, nil
}

func writeSheet(f *excelize.File, s Sheet, headerStyle int) error {
	if len(s.Header) > 0 {
		headers := make([]interface{}, len(s.Header))
		for i, h := range s.Header {
			headers[i] = h
		}
		if err := f.SetSheetRow(s.Name, "A1", &headers); err != nil {
			return fmt.Errorf("failed to write headers of %q: %w", s.Name, err)
		}
		last, err := excelize.CoordinatesToCellName(len(headers), 1)
		if err != nil {
			return err
		}
		if err := f.SetCellStyle(s.Name, "A1", last, headerStyle); err != nil {
			return fmt.Errorf("failed to style headers of %q: %w", s.Name, err)
		}
	}

	for _, c := range s.Cells {
		var err error
		if c.Formula != "" {
			err = f.SetCellFormula(s.Name, c.Ref, strings.TrimPrefix(c.Formula, "="))
		} else {
			err = f.SetCellValue(s.Name, c.Ref, c.Value)
		}
		if err != nil {
			return fmt.Errorf("failed to write %s!%s: %w", s.Name, c.Ref, err)
		}
	}
	return nil
}

// Save writes the template to path, replacing any existing file. The
// destination directory must already exist.
func Save(t *Template, path string) error {
	dir := filepath.Dir(path)
	if info, err := os.Stat(dir); err != nil {
		return &Error{Kind: KindFileWrite, Path: path, Err: err}
	} else if !info.IsDir() {
		return &Error{Kind: KindFileWrite, Path: path, Err: fmt.Errorf("%s is not a directory", dir)}
	}

	f, err := Build(t)
	if err != nil {
		return &Error{Kind: KindFileWrite, Path: path, Err: err}
	}
	defer f.Close()

	if err := f.SaveAs(path); err != nil {
		return &Error{Kind: KindFileWrite, Path: path, Err: err}
	}
	return nil
}
