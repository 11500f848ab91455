// Package sheets pushes the check-in template to a Google Sheets spreadsheet.
package sheets

import (
	"context"
	"fmt"
	"strings"

	"checkin_sheets/src/workbook"

	"golang.org/x/oauth2/google"
	"google.golang.org/api/option"
	gsheets "google.golang.org/api/sheets/v4"
)

type Publisher struct {
	srv *gsheets.Service
}

// NewPublisher authenticates with a service account key file's contents.
func NewPublisher(ctx context.Context, credentialsJSON []byte) (*Publisher, error) {
	config, err := google.JWTConfigFromJSON(credentialsJSON, gsheets.SpreadsheetsScope)
	if err != nil {
		return nil, fmt.Errorf("unable to parse service account file: %w", err)
	}
	srv, err := gsheets.NewService(ctx, option.WithHTTPClient(config.Client(ctx)))
	if err != nil {
		return nil, fmt.Errorf("unable to retrieve Sheets client: %w", err)
	}
	return NewPublisherWithService(srv), nil
}

func NewPublisherWithService(srv *gsheets.Service) *Publisher {
	return &Publisher{srv: srv}
}

// Publish creates any missing tabs and writes the template values. Summary
// tabs and newly added tabs are cleared first. Data tabs that already exist
// only get their header row replaced so recorded rows survive. Values are
// sent as USER_ENTERED so Google Sheets evaluates the formula cells.
func (p *Publisher) Publish(ctx context.Context, spreadsheetID string, t *workbook.Template) error {
	ss, err := p.srv.Spreadsheets.Get(spreadsheetID).Fields("sheets.properties.title").Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("unable to read spreadsheet %s: %w", spreadsheetID, err)
	}
	existing := make(map[string]bool, len(ss.Sheets))
	for _, s := range ss.Sheets {
		if s.Properties != nil {
			existing[s.Properties.Title] = true
		}
	}

	var addRequests []*gsheets.Request
	for _, name := range t.SheetNames() {
		if existing[name] {
			continue
		}
		addRequests = append(addRequests, &gsheets.Request{
			AddSheet: &gsheets.AddSheetRequest{Properties: &gsheets.SheetProperties{Title: name}},
		})
	}
	if len(addRequests) > 0 {
		req := &gsheets.BatchUpdateSpreadsheetRequest{Requests: addRequests}
		if _, err := p.srv.Spreadsheets.BatchUpdate(spreadsheetID, req).Context(ctx).Do(); err != nil {
			return fmt.Errorf("unable to add sheets: %w", err)
		}
	}

	structural := make(map[string]bool)
	for _, schema := range workbook.StructuralSchemas() {
		structural[schema.Sheet] = true
	}

	ranges := make([]string, 0, len(t.Sheets))
	data := make([]*gsheets.ValueRange, 0, len(t.Sheets))
	for i := range t.Sheets {
		s := &t.Sheets[i]
		grid, err := s.Grid()
		if err != nil {
			return err
		}
		if structural[s.Name] && existing[s.Name] {
			ranges = append(ranges, A1Range(s.Name, "1:1"))
		} else {
			ranges = append(ranges, A1Range(s.Name, ""))
		}
		data = append(data, &gsheets.ValueRange{Range: A1Range(s.Name, "A1"), Values: grid})
	}

	clearReq := &gsheets.BatchClearValuesRequest{Ranges: ranges}
	if _, err := p.srv.Spreadsheets.Values.BatchClear(spreadsheetID, clearReq).Context(ctx).Do(); err != nil {
		return fmt.Errorf("unable to clear sheets: %w", err)
	}

	updateReq := &gsheets.BatchUpdateValuesRequest{ValueInputOption: "USER_ENTERED", Data: data}
	if _, err := p.srv.Spreadsheets.Values.BatchUpdate(spreadsheetID, updateReq).Context(ctx).Do(); err != nil {
		return fmt.Errorf("unable to write sheets: %w", err)
	}
	return nil
}

// A1Range builds an A1 notation range, quoting the sheet title. An empty
// cell selects the whole sheet.
func A1Range(sheet, cell string) string {
	quoted := "'" + strings.ReplaceAll(sheet, "'", "''") + "'"
	if cell == "" {
		return quoted
	}
	return quoted + "!" + cell
}
