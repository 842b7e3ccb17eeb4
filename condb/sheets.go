package condb

import (
	"go.uber.org/zap"

	"idcard/config"
	"idcard/directory"
	"idcard/sheets"
)

// Open picks the employee source: a local workbook when one is configured,
// the Google Sheets API otherwise. An unconfigured API client is still
// returned; it fails fast and the directory serves demo employees.
func Open(cfg config.Sheets, logger *zap.Logger) directory.Fetcher {
	if logger == nil {
		logger = zap.NewNop()
	}

	if cfg.Workbook != "" {
		logger.Info("reading employees from local workbook",
			zap.String("path", cfg.Workbook), zap.String("sheet", cfg.SheetName))
		return &sheets.Workbook{Path: cfg.Workbook, SheetName: cfg.SheetName}
	}

	sc := sheets.Config{APIKey: cfg.APIKey, SheetID: cfg.SheetID, SheetName: cfg.SheetName}
	client := sheets.NewClient(sc)
	if !sc.Configured() {
		logger.Warn("Google Sheets is not configured, demo employees will be served")
	} else {
		logger.Info("reading employees from Google Sheets", zap.String("range", client.Range()))
	}
	return client
}
