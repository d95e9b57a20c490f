package draw

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// DisplayLayout is the day-first rendering used by Result.String.
const DisplayLayout = "02-01-2006"

var ErrDate = errors.New("unrecognized draw date")

// dateLayouts lists the layouts worth trying for raw, in order.
// Slash-separated values are day-first; "yyyymmdd" is always the fallback.
func dateLayouts(raw string) []string {
	var layouts []string
	if strings.Contains(raw, "/") {
		layouts = append(layouts, "2/1/2006", "2/1/06")
	}
	return append(layouts, "20060102")
}

// ParseDate returns the first successful parse of raw. When every layout
// fails, the returned error joins ErrDate with each attempt's failure.
func ParseDate(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	errs := []error{ErrDate}
	for _, layout := range dateLayouts(raw) {
		t, err := time.Parse(layout, raw)
		if err == nil {
			return t, nil
		}
		errs = append(errs, fmt.Errorf("layout %q: %w", layout, err))
	}
	return time.Time{}, errors.Join(errs...)
}
