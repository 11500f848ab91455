package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"checkin_sheets/src/common"
	"checkin_sheets/src/logger"
	"checkin_sheets/src/workbook"
)

func main() {
	lg := logger.New()

	cfg, err := common.LoadConfig()
	if err != nil {
		lg.Fatal("CONFIG", err.Error())
	}

	filePath := flag.String("file", cfg.WorkbookPath, "Path to the .xlsx file to read")
	fallbacks := flag.String("fallback", "", "Comma separated paths tried when -file does not exist")
	maxRows := flag.Int("rows", cfg.PreviewRows, "Maximum number of data rows to print per sheet (preview)")
	format := flag.String("format", "text", "Output format: text, markdown or toon")
	flag.Parse()

	paths := []string{*filePath}
	if *fallbacks != "" {
		paths = append(paths, common.SplitList(*fallbacks)...)
	} else {
		paths = append(paths, cfg.Fallbacks...)
	}

	if err := run(lg, paths, *maxRows, *format); err != nil {
		lg.Error("INSPECT", fmt.Sprintf("Error reading file: %v", err))
		os.Exit(1)
	}
}

func run(lg *logger.Logger, paths []string, maxRows int, format string) error {
	report, err := workbook.Inspect(paths, workbook.WithMaxRows(maxRows))
	if err != nil {
		return err
	}
	if primary, ok := missedPrimary(paths, report.Path); ok {
		lg.Warn("INSPECT", fmt.Sprintf("File not found at: %s, using %s", primary, report.Path))
	}

	switch format {
	case "text", "":
		return report.WriteText(os.Stdout)
	case "markdown", "md":
		_, err = fmt.Fprint(os.Stdout, report.Markdown())
		return err
	case "toon":
		out, err := report.TOON()
		if err != nil {
			return fmt.Errorf("encode toon: %w", err)
		}
		_, err = fmt.Fprintln(os.Stdout, out)
		return err
	default:
		return fmt.Errorf("unknown format %q", format)
	}
}

// missedPrimary reports the primary path when the workbook was opened from
// a fallback. A blank primary is not reported.
func missedPrimary(paths []string, opened string) (string, bool) {
	if len(paths) == 0 {
		return "", false
	}
	primary := strings.TrimSpace(paths[0])
	if primary == "" || primary == opened {
		return "", false
	}
	return primary, true
}
