package sheets

import (
	"context"
	"fmt"

	"github.com/xuri/excelize/v2"

	"idcard/models"
)

// Workbook reads the employee tab from a local .xlsx export of the sheet.
// The layout is the same A to T layout the API client reads.
type Workbook struct {
	Path      string
	SheetName string
}

func (w *Workbook) FetchEmployees(ctx context.Context) ([]models.Employee, error) {
	if w.Path == "" {
		return nil, ErrNotConfigured
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	name := w.SheetName
	if name == "" {
		name = DefaultSheetName
	}

	f, err := excelize.OpenFile(w.Path)
	if err != nil {
		return nil, fmt.Errorf("sheets: open workbook %s: %w", w.Path, err)
	}
	defer f.Close()

	idx, err := f.GetSheetIndex(name)
	if err != nil || idx < 0 {
		return nil, ErrSheetNotFound
	}

	rows, err := f.GetRows(name)
	if err != nil {
		return nil, fmt.Errorf("sheets: read workbook rows: %w", err)
	}
	if len(rows) == 0 {
		return nil, ErrNoData
	}
	return ParseRows(rows), nil
}
