package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"checkin_sheets/src/common"
	"checkin_sheets/src/logger"
	"checkin_sheets/src/sheets"
	"checkin_sheets/src/workbook"
)

func main() {
	lg := logger.New()

	cfg, err := common.LoadConfig()
	if err != nil {
		lg.Fatal("CONFIG", err.Error())
	}

	outPath := flag.String("out", cfg.TemplateOut, "Path of the .xlsx template to write")
	players := flag.String("players", "", "Comma separated player names to add to Summary by Player")
	spreadsheetID := flag.String("spreadsheet", cfg.SpreadsheetID, "Google Sheets spreadsheet ID to publish the template to (empty: skip)")
	credsFile := flag.String("creds", cfg.CredentialsFile, "Service account JSON used for publishing")
	flag.Parse()

	if err := run(context.Background(), lg, *outPath, common.SplitList(*players), *spreadsheetID, *credsFile); err != nil {
		lg.Error("TEMPLATE", fmt.Sprintf("Error creating template: %v", err))
		os.Exit(1)
	}
}

func run(ctx context.Context, lg *logger.Logger, outPath string, players []string, spreadsheetID, credsFile string) error {
	tpl, err := workbook.NewTemplate()
	if err != nil {
		return err
	}
	if len(players) > 0 {
		if err := tpl.AddPlayers(players...); err != nil {
			return err
		}
	}

	if err := workbook.Save(tpl, outPath); err != nil {
		return err
	}
	lg.Info("TEMPLATE", fmt.Sprintf("Successfully created %s (%d sheets)", outPath, len(tpl.Sheets)))

	if spreadsheetID == "" {
		return nil
	}
	b, err := os.ReadFile(credsFile)
	if err != nil {
		return fmt.Errorf("unable to read service account file: %w", err)
	}
	pub, err := sheets.NewPublisher(ctx, b)
	if err != nil {
		return err
	}
	if err := pub.Publish(ctx, spreadsheetID, tpl); err != nil {
		return err
	}
	lg.Info("SHEETS", fmt.Sprintf("Published %d sheets to spreadsheet %s", len(tpl.Sheets), spreadsheetID))
	return nil
}
