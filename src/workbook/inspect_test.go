package workbook

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

// writeFixture saves a workbook with 8 reservations and 2 attendance rows.
func writeFixture(t *testing.T, dir string) string {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()

	require.NoError(t, f.SetSheetName("Sheet1", SheetReservations))
	_, err := f.NewSheet(SheetAttendance)
	require.NoError(t, err)

	header := []interface{}{"Id", "Date", "Court"}
	require.NoError(t, f.SetSheetRow(SheetReservations, "A1", &header))
	for i := 1; i <= 8; i++ {
		row := []interface{}{fmt.Sprintf("R%d", i), "2025-10-01", "North"}
		require.NoError(t, f.SetSheetRow(SheetReservations, fmt.Sprintf("A%d", i+1), &row))
	}

	att := []interface{}{"Date", "Player Name", "PAID"}
	require.NoError(t, f.SetSheetRow(SheetAttendance, "A1", &att))
	for i, name := range []string{"Alice", "Bob"} {
		row := []interface{}{"2025-10-01", name, "TRUE"}
		require.NoError(t, f.SetSheetRow(SheetAttendance, fmt.Sprintf("A%d", i+2), &row))
	}

	path := filepath.Join(dir, "club.xlsx")
	require.NoError(t, f.SaveAs(path))
	return path
}

func TestInspectPreviewsEverySheet(t *testing.T) {
	path := writeFixture(t, t.TempDir())

	report, err := Inspect([]string{path})
	require.NoError(t, err)
	assert.Equal(t, path, report.Path)
	require.Len(t, report.Sheets, 2)

	res := report.Sheets[0]
	assert.Equal(t, SheetReservations, res.Name)
	assert.Equal(t, []string{"Id", "Date", "Court"}, res.Headers)
	assert.Len(t, res.Rows, DefaultPreviewRows)
	assert.Equal(t, []string{"R1", "2025-10-01", "North"}, res.Rows[0])
	assert.Equal(t, 1, res.HeaderRow)
	assert.Equal(t, 8, res.TotalRows)
	assert.True(t, res.Truncated)

	att := report.Sheets[1]
	assert.Equal(t, SheetAttendance, att.Name)
	assert.Equal(t, []string{"Date", "Player Name", "PAID"}, att.Headers)
	assert.Len(t, att.Rows, 2)
	assert.Equal(t, 2, att.TotalRows)
	assert.False(t, att.Truncated)
}

func TestInspectCountsRowsBeyondPreview(t *testing.T) {
	path := writeFixture(t, t.TempDir())

	report, err := Inspect([]string{path}, WithMaxRows(3))
	require.NoError(t, err)
	res := report.Sheets[0]
	assert.Len(t, res.Rows, 3)
	assert.Equal(t, []string{"R3", "2025-10-01", "North"}, res.Rows[2])
	assert.Equal(t, 8, res.TotalRows)
	assert.True(t, res.Truncated)

	report, err = Inspect([]string{path}, WithMaxRows(0))
	require.NoError(t, err)
	assert.Empty(t, report.Sheets[0].Rows)
	assert.Equal(t, 8, report.Sheets[0].TotalRows)
}

func TestInspectTOONReportsFullRowCount(t *testing.T) {
	path := writeFixture(t, t.TempDir())

	report, err := Inspect([]string{path})
	require.NoError(t, err)
	out, err := report.TOON()
	require.NoError(t, err)
	assert.Contains(t, out, "total_rows: 8")
	assert.NotContains(t, out, "total_rows: 5")
}

func TestInspectSkipsBlankRowsBeforeHeader(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	header := []interface{}{"Id", "Date"}
	require.NoError(t, f.SetSheetRow("Sheet1", "A3", &header))
	row := []interface{}{"R1", "x"}
	require.NoError(t, f.SetSheetRow("Sheet1", "A4", &row))
	path := filepath.Join(t.TempDir(), "gap.xlsx")
	require.NoError(t, f.SaveAs(path))

	report, err := Inspect([]string{path})
	require.NoError(t, err)
	require.Len(t, report.Sheets, 1)
	s := report.Sheets[0]
	assert.Equal(t, 3, s.HeaderRow)
	assert.Equal(t, []string{"Id", "Date"}, s.Headers)
	assert.Equal(t, [][]string{{"R1", "x"}}, s.Rows)
	assert.Equal(t, 1, s.TotalRows)
	assert.False(t, s.Truncated)
}

func TestIsBlankRow(t *testing.T) {
	assert.True(t, isBlankRow(nil))
	assert.True(t, isBlankRow([]string{"", "  "}))
	assert.False(t, isBlankRow([]string{"", "Id"}))
}

func TestInspectUsesFallback(t *testing.T) {
	dir := t.TempDir()
	path := writeFixture(t, dir)

	report, err := Inspect([]string{filepath.Join(dir, "missing.xlsx"), "", path})
	require.NoError(t, err)
	assert.Equal(t, path, report.Path)
	assert.Len(t, report.Sheets, 2)
}

func TestInspectNotFound(t *testing.T) {
	dir := t.TempDir()
	_, err := Inspect([]string{filepath.Join(dir, "a.xlsx"), filepath.Join(dir, "b.xlsx")})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrFileNotFound))
	assert.True(t, errors.Is(err, os.ErrNotExist))
	assert.Equal(t, KindFileNotFound, KindOf(err))
}

func TestInspectCorruptWorkbook(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.xlsx")
	require.NoError(t, os.WriteFile(path, []byte("not a workbook"), 0o644))

	_, err := Inspect([]string{path})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrFileRead))
	assert.False(t, errors.Is(err, ErrFileNotFound))
}

func TestResolvePathSkipsDirectories(t *testing.T) {
	dir := t.TempDir()
	path := writeFixture(t, dir)

	got, err := ResolvePath(dir, path)
	require.NoError(t, err)
	assert.Equal(t, path, got)
}

func TestInspectGeneratedTemplate(t *testing.T) {
	report, err := Inspect([]string{saveTemplate(t)})
	require.NoError(t, err)
	require.Len(t, report.Sheets, 5)
	for _, s := range report.Sheets[:3] {
		assert.Empty(t, s.Rows, s.Name)
		assert.Zero(t, s.TotalRows, s.Name)
	}
	assert.Equal(t, Attendance.Columns, report.Sheets[1].Headers)
}
