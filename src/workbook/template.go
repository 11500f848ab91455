package workbook

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

const ExamplePlayer = "ExamplePlayer"

// Cell is a single value or formula below a sheet's header row.
// Formula, when set, holds the formula text including the leading "=".
type Cell struct {
	Ref     string
	Value   interface{}
	Formula string
}

type Sheet struct {
	Name   string
	Header []string
	Cells  []Cell
}

// Template is the in-memory layout of the check-in workbook. Nothing in
// it is evaluated; formula text is handed to the spreadsheet engine as is.
type Template struct {
	Sheets []Sheet

	refs    attendanceRefs
	players int
}

// attendanceRefs are the whole-column references into the Attendance
// sheet, resolved from the Attendance schema.
type attendanceRefs struct {
	player, present, charge, paid string
}

func resolveAttendanceRefs() (attendanceRefs, error) {
	var refs attendanceRefs
	for _, r := range []struct {
		col string
		dst *string
	}{
		{ColPlayerName, &refs.player},
		{ColPresent, &refs.present},
		{ColCharge, &refs.charge},
		{ColPaid, &refs.paid},
	} {
		ref, err := Attendance.ColumnRange(r.col)
		if err != nil {
			return attendanceRefs{}, err
		}
		*r.dst = ref
	}
	return refs, nil
}

// NewTemplate builds the five-sheet template: Reservations, Attendance and
// Fees with headers only, followed by the two summary sheets.
func NewTemplate() (*Template, error) {
	refs, err := resolveAttendanceRefs()
	if err != nil {
		return nil, err
	}
	t := &Template{refs: refs}
	t.buildStructuralSheets()
	if err := t.buildSummarySheets(); err != nil {
		return nil, err
	}
	return t, nil
}

func (t *Template) buildStructuralSheets() {
	for _, s := range StructuralSchemas() {
		t.Sheets = append(t.Sheets, Sheet{Name: s.Sheet, Header: append([]string(nil), s.Columns...)})
	}
}

func (t *Template) buildSummarySheets() error {
	t.Sheets = append(t.Sheets, Sheet{
		Name:   PlayerSummary.Sheet,
		Header: append([]string(nil), PlayerSummary.Columns...),
	})
	if err := t.AddPlayers(ExamplePlayer); err != nil {
		return err
	}

	t.Sheets = append(t.Sheets, Sheet{
		Name:   MonthlySummary.Sheet,
		Header: append([]string(nil), MonthlySummary.Columns...),
		Cells: []Cell{
			{Ref: "A2", Value: "Total Revenue (Paid)"},
			{Ref: "B2", Formula: SumIf(Condition{t.refs.paid, "TRUE"}, t.refs.charge)},
			{Ref: "A3", Value: "Total Unpaid"},
			{Ref: "B3", Formula: SumIf(Condition{t.refs.paid, "FALSE"}, t.refs.charge)},
		},
	})
	return nil
}

// AddPlayers appends one Summary by Player row per name. The row's
// formulas compare the Attendance player column against its own label cell.
func (t *Template) AddPlayers(names ...string) error {
	sheet := t.Sheet(SheetPlayerSummary)
	if sheet == nil {
		return fmt.Errorf("sheet %q not in template", SheetPlayerSummary)
	}
	for _, name := range names {
		row := t.players + 2
		refs := make([]string, 3)
		for i := range refs {
			ref, err := excelize.CoordinatesToCellName(i+1, row)
			if err != nil {
				return fmt.Errorf("player row %d: %w", row, err)
			}
			refs[i] = ref
		}
		label, sessions, paid := refs[0], refs[1], refs[2]

		sheet.Cells = append(sheet.Cells,
			Cell{Ref: label, Value: name},
			Cell{Ref: sessions, Formula: CountIfs(
				Condition{t.refs.player, label},
				Condition{t.refs.present, "1"},
			)},
			Cell{Ref: paid, Formula: SumIfs(t.refs.charge,
				Condition{t.refs.player, label},
				Condition{t.refs.paid, "TRUE"},
			)},
		)
		t.players++
	}
	return nil
}

// Sheet returns the named sheet, or nil.
func (t *Template) Sheet(name string) *Sheet {
	for i := range t.Sheets {
		if t.Sheets[i].Name == name {
			return &t.Sheets[i]
		}
	}
	return nil
}

func (t *Template) SheetNames() []string {
	names := make([]string, len(t.Sheets))
	for i, s := range t.Sheets {
		names[i] = s.Name
	}
	return names
}

// Grid lays the sheet out as rows of values, header first. Formula cells
// contribute their formula text.
func (s *Sheet) Grid() ([][]interface{}, error) {
	grid := [][]interface{}{make([]interface{}, len(s.Header))}
	for i, h := range s.Header {
		grid[0][i] = h
	}
	for _, c := range s.Cells {
		col, row, err := excelize.CellNameToCoordinates(c.Ref)
		if err != nil {
			return nil, fmt.Errorf("sheet %q: %w", s.Name, err)
		}
		for len(grid) < row {
			grid = append(grid, []interface{}{})
		}
		for len(grid[row-1]) < col {
			grid[row-1] = append(grid[row-1], "")
		}
		if c.Formula != "" {
			grid[row-1][col-1] = c.Formula
		} else {
			grid[row-1][col-1] = c.Value
		}
	}
	return grid, nil
}
