package sheets

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
	sheetsapi "google.golang.org/api/sheets/v4"

	"idcard/models"
)

const DefaultSheetName = "Employees"

type Config struct {
	APIKey    string
	SheetID   string
	SheetName string
}

// Configured reports whether both the API key and the sheet ID are set.
func (c Config) Configured() bool {
	return c.APIKey != "" && c.SheetID != ""
}

// Client reads the employee tab through the Google Sheets v4 API. Every call
// goes to the network; nothing is cached.
type Client struct {
	cfg  Config
	opts []option.ClientOption
}

// NewClient returns a client for cfg. Extra options are appended to the
// API key option, e.g. option.WithEndpoint in tests.
func NewClient(cfg Config, opts ...option.ClientOption) *Client {
	if cfg.SheetName == "" {
		cfg.SheetName = DefaultSheetName
	}
	return &Client{cfg: cfg, opts: opts}
}

// Range is the A1 range requested from the API, e.g. "Employees!A:T".
func (c *Client) Range() string {
	return c.cfg.SheetName + "!" + CellRange
}

func (c *Client) FetchEmployees(ctx context.Context) ([]models.Employee, error) {
	if !c.cfg.Configured() {
		return nil, ErrNotConfigured
	}

	opts := append([]option.ClientOption{option.WithAPIKey(c.cfg.APIKey)}, c.opts...)
	srv, err := sheetsapi.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("sheets: create service: %w", err)
	}

	resp, err := srv.Spreadsheets.Values.Get(c.cfg.SheetID, c.Range()).Context(ctx).Do()
	if err != nil {
		return nil, classify(err)
	}
	if resp == nil || len(resp.Values) == 0 {
		return nil, ErrNoData
	}

	return ParseRows(toRows(resp.Values)), nil
}

func classify(err error) error {
	var gerr *googleapi.Error
	if !errors.As(err, &gerr) {
		return fmt.Errorf("sheets: fetch employee data: %w", err)
	}

	switch gerr.Code {
	case http.StatusForbidden:
		return ErrAccessDenied
	case http.StatusNotFound:
		return ErrSheetNotFound
	}
	return &APIError{StatusCode: gerr.Code, Message: http.StatusText(gerr.Code)}
}

// toRows flattens the API's loosely typed cells into strings.
func toRows(values [][]interface{}) [][]string {
	rows := make([][]string, len(values))
	for i, row := range values {
		cells := make([]string, len(row))
		for j, v := range row {
			switch cell := v.(type) {
			case string:
				cells[j] = cell
			case nil:
			default:
				cells[j] = fmt.Sprint(cell)
			}
		}
		rows[i] = cells
	}
	return rows
}
