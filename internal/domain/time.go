package domain

import (
	"time"

	"github.com/araddon/dateparse"
)

// FormatTimestamp renders a backend timestamp for display. The backend is not
// consistent about timestamp layouts, so parsing is tolerant; an unparseable
// or empty value is shown as-is.
func FormatTimestamp(raw string) string {
	if raw == "" {
		return ""
	}
	t, err := dateparse.ParseAny(raw)
	if err != nil {
		return raw
	}
	return t.Format(time.DateTime)
}
