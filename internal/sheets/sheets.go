/**
* Name: 			sheets.go
* Description: 		Google Sheets tabular store client
* Workflow: 		ensure columns, overwrite header row, append data row
 */
package sheets

import (
	"context"
	"fmt"
	"log"

	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

// TabularStore is the spreadsheet-like persistence collaborator. One
// submission produces one header overwrite and one appended row.
type TabularStore interface {
	EnsureColumns(ctx context.Context, count int) error
	OverwriteHeader(ctx context.Context, header []string) error
	AppendRow(ctx context.Context, row []string) error
}

// Client writes to one tab of one Google spreadsheet.
type Client struct {
	service       *sheets.Service
	spreadsheetID string
	tabName       string
}

func NewClient(ctx context.Context, credentialsFile, spreadsheetID, tabName string) (*Client, error) {
	service, err := sheets.NewService(ctx, option.WithCredentialsFile(credentialsFile))
	if err != nil {
		log.Printf("sheets.NewClient(): failed to create sheets service: %v", err)
		return nil, err
	}
	return &Client{
		service:       service,
		spreadsheetID: spreadsheetID,
		tabName:       tabName,
	}, nil
}

// EnsureColumns grows the tab to at least count columns. Columns are
// only ever added, never removed.
func (c *Client) EnsureColumns(ctx context.Context, count int) error {
	spreadsheet, err := c.service.Spreadsheets.Get(c.spreadsheetID).Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("EnsureColumns(): failed to get spreadsheet: %w", err)
	}

	var sheetID int64 = -1
	var current int64
	for _, sheet := range spreadsheet.Sheets {
		if sheet.Properties.Title == c.tabName {
			sheetID = sheet.Properties.SheetId
			if sheet.Properties.GridProperties != nil {
				current = sheet.Properties.GridProperties.ColumnCount
			}
			break
		}
	}
	if sheetID < 0 {
		return fmt.Errorf("EnsureColumns(): tab %q not found in spreadsheet %s", c.tabName, c.spreadsheetID)
	}
	if current >= int64(count) {
		return nil
	}

	_, err = c.service.Spreadsheets.BatchUpdate(c.spreadsheetID, &sheets.BatchUpdateSpreadsheetRequest{
		Requests: []*sheets.Request{{
			AppendDimension: &sheets.AppendDimensionRequest{
				SheetId:   sheetID,
				Dimension: "COLUMNS",
				Length:    int64(count) - current,
			},
		}},
	}).Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("EnsureColumns(): failed to append columns: %w", err)
	}
	return nil
}

// OverwriteHeader replaces row 1 of the tab with the given header.
func (c *Client) OverwriteHeader(ctx context.Context, header []string) error {
	_, err := c.service.Spreadsheets.Values.Update(
		c.spreadsheetID,
		fmt.Sprintf("%s!1:1", c.tabName),
		&sheets.ValueRange{Values: [][]any{toCells(header)}},
	).ValueInputOption("RAW").Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("OverwriteHeader(): failed to update header row: %w", err)
	}
	return nil
}

// AppendRow appends one data row after the tab's last filled row.
func (c *Client) AppendRow(ctx context.Context, row []string) error {
	_, err := c.service.Spreadsheets.Values.Append(
		c.spreadsheetID,
		fmt.Sprintf("%s!A1", c.tabName),
		&sheets.ValueRange{Values: [][]any{toCells(row)}},
	).ValueInputOption("RAW").InsertDataOption("INSERT_ROWS").Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("AppendRow(): failed to append row: %w", err)
	}
	return nil
}

func toCells(values []string) []any {
	cells := make([]any, len(values))
	for i, v := range values {
		cells[i] = v
	}
	return cells
}

// Disabled is the no-op store used when no spreadsheet is configured.
type Disabled struct{}

func (Disabled) EnsureColumns(context.Context, int) error { return nil }

func (Disabled) OverwriteHeader(context.Context, []string) error { return nil }

func (Disabled) AppendRow(context.Context, []string) error { return nil }
