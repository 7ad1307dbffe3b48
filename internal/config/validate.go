package config

import (
	"errors"
	"fmt"
	"time"
)

const dateLayout = "2006-01-02"

// Validate checks the config for values the generator cannot work with.
// An inverted window is allowed; it simply produces empty fixtures.
func (c *Config) Validate() error {
	var errs []error

	if c.Output.Dir == "" {
		errs = append(errs, errors.New("output.dir is required"))
	}
	switch c.Output.Format {
	case FormatJSON, FormatJSONL:
	default:
		errs = append(errs, fmt.Errorf("output.format %q must be %q or %q", c.Output.Format, FormatJSON, FormatJSONL))
	}
	if c.Output.Indent < 0 || c.Output.Indent > 8 {
		errs = append(errs, fmt.Errorf("output.indent %d must be between 0 and 8", c.Output.Indent))
	}
	if c.Seed < 0 {
		errs = append(errs, fmt.Errorf("seed %d must not be negative", c.Seed))
	}

	loc, err := time.LoadLocation(c.Window.Location)
	if err != nil {
		errs = append(errs, fmt.Errorf("window.location: %w", err))
	} else {
		if _, err := parseDate(c.Window.Start, loc); err != nil {
			errs = append(errs, fmt.Errorf("window.start: %w", err))
		}
		if c.Window.End != "" {
			if _, err := parseDate(c.Window.End, loc); err != nil {
				errs = append(errs, fmt.Errorf("window.end: %w", err))
			}
		}
	}

	return errors.Join(errs...)
}

// Bounds resolves the window to concrete instants. An empty End resolves to now.
func (w Window) Bounds(now time.Time) (time.Time, time.Time, error) {
	loc, err := time.LoadLocation(w.Location)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("load location: %w", err)
	}
	start, err := parseDate(w.Start, loc)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("parse start: %w", err)
	}
	end := now.In(loc)
	if w.End != "" {
		if end, err = parseDate(w.End, loc); err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("parse end: %w", err)
		}
	}
	return start, end, nil
}

func parseDate(s string, loc *time.Location) (time.Time, error) {
	if t, err := time.ParseInLocation(dateLayout, s, loc); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%q is neither YYYY-MM-DD nor RFC3339", s)
	}
	return t.In(loc), nil
}
