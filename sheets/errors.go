package sheets

import (
	"errors"
	"fmt"
)

var (
	// ErrNotConfigured is returned before any network call when the API key
	// or sheet ID is missing.
	ErrNotConfigured = errors.New("sheets: google sheets configuration is missing, check GOOGLE_SHEETS_API_KEY and GOOGLE_SHEET_ID")
	ErrAccessDenied  = errors.New("sheets: access denied, check the API key and sheet permissions")
	ErrSheetNotFound = errors.New("sheets: sheet not found, check the sheet ID and sheet name")
	ErrNoData        = errors.New("sheets: no data found in the sheet range")
)

// APIError reports a non-success status that has no dedicated sentinel.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("sheets: google sheets api error: %d", e.StatusCode)
	}
	return fmt.Sprintf("sheets: google sheets api error: %d %s", e.StatusCode, e.Message)
}
