package workbook

import (
	"errors"
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"
)

const (
	SheetReservations   = "Reservations"
	SheetAttendance     = "Attendance"
	SheetFees           = "Fees"
	SheetPlayerSummary  = "Summary by Player"
	SheetMonthlySummary = "Monthly Summary"
)

// Attendance column names referenced by the summary formulas.
const (
	ColPlayerName = "Player Name"
	ColPresent    = "Present (1/0)"
	ColCharge     = "Charge (auto)"
	ColPaid       = "PAID"
)

var ErrUnknownColumn = errors.New("unknown column")

// Schema is the ordered header of one sheet.
type Schema struct {
	Sheet   string
	Columns []string
}

var (
	Reservations = Schema{
		Sheet:   SheetReservations,
		Columns: []string{"Id", "Date", "Start", "End", "Court", "Capacity", "BaseFee"},
	}
	Attendance = Schema{
		Sheet:   SheetAttendance,
		Columns: []string{"Date", "Hours", ColPlayerName, ColPresent, ColCharge, ColPaid, "ReservationId"},
	}
	Fees = Schema{
		Sheet:   SheetFees,
		Columns: []string{"ReservationId", "FeeName", "Amount"},
	}
	PlayerSummary = Schema{
		Sheet:   SheetPlayerSummary,
		Columns: []string{"Player", "Sessions Attended", "Total Paid"},
	}
	MonthlySummary = Schema{
		Sheet:   SheetMonthlySummary,
		Columns: []string{"Metric", "Value"},
	}
)

// StructuralSchemas returns the raw-data sheets in output order.
func StructuralSchemas() []Schema {
	return []Schema{Reservations, Attendance, Fees}
}

// Index returns the 1-based position of the named column.
func (s Schema) Index(name string) (int, error) {
	for i, c := range s.Columns {
		if c == name {
			return i + 1, nil
		}
	}
	return 0, fmt.Errorf("%w %q in sheet %q", ErrUnknownColumn, name, s.Sheet)
}

// Letter returns the column letter of the named column, e.g. "C".
func (s Schema) Letter(name string) (string, error) {
	idx, err := s.Index(name)
	if err != nil {
		return "", err
	}
	return excelize.ColumnNumberToName(idx)
}

// ColumnRange returns a whole-column reference such as Attendance!C:C.
func (s Schema) ColumnRange(name string) (string, error) {
	col, err := s.Letter(name)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s!%s:%s", quoteSheet(s.Sheet), col, col), nil
}

// quoteSheet wraps sheet names that are not plain identifiers in quotes.
func quoteSheet(name string) string {
	plain := true
	for _, r := range name {
		if !(r == '_' || r >= '0' && r <= '9' || r >= 'A' && r <= 'Z' || r >= 'a' && r <= 'z') {
			plain = false
			break
		}
	}
	if plain && name != "" {
		return name
	}
	return "'" + strings.ReplaceAll(name, "'", "''") + "'"
}
