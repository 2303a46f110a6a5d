package query

import (
	"net/url"
	"testing"
	"time"
)

func TestParseFilters(t *testing.T) {
	values := url.Values{
		"search":    {"jazz"},
		"category":  {"Music"},
		"location":  {"New Orleans"},
		"startDate": {"2026-07-01"},
		"endDate":   {"2026-07-31T23:59:59Z"},
		"maxPrice":  {"50"},
	}

	f, err := ParseFilters(values)
	if err != nil {
		t.Fatalf("ParseFilters() error = %v", err)
	}
	if f.Search != "jazz" || f.Category != "Music" || f.Location != "New Orleans" {
		t.Errorf("unexpected text filters: %+v", f)
	}
	if f.StartDate == nil || !f.StartDate.Equal(time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("StartDate = %v", f.StartDate)
	}
	if f.EndDate == nil || !f.EndDate.Equal(time.Date(2026, 7, 31, 23, 59, 59, 0, time.UTC)) {
		t.Errorf("EndDate = %v", f.EndDate)
	}
	if f.PriceRange == nil || f.PriceRange.Min != DefaultMinPrice || f.PriceRange.Max != 50 {
		t.Errorf("PriceRange = %+v", f.PriceRange)
	}
}

func TestParseFiltersEmpty(t *testing.T) {
	f, err := ParseFilters(url.Values{"search": {""}})
	if err != nil {
		t.Fatalf("ParseFilters() error = %v", err)
	}
	if !f.IsZero() {
		t.Errorf("expected zero filters, got %+v", f)
	}
}

func TestParseFiltersInvalid(t *testing.T) {
	for _, values := range []url.Values{
		{"startDate": {"next tuesday"}},
		{"endDate": {"2026-13-01"}},
		{"minPrice": {"cheap"}},
		{"minPrice": {"NaN"}},
		{"maxPrice": {"nan"}},
		{"maxPrice": {"+Inf"}},
		{"minPrice": {"-Infinity"}},
	} {
		if _, err := ParseFilters(values); err == nil {
			t.Errorf("ParseFilters(%v) expected error", values)
		}
	}
}

func TestValuesRoundTrip(t *testing.T) {
	in := url.Values{
		"search":    {"tech"},
		"location":  {"CA"},
		"startDate": {"2026-06-01"},
		"minPrice":  {"10"},
		"maxPrice":  {"99.5"},
	}
	f, err := ParseFilters(in)
	if err != nil {
		t.Fatalf("ParseFilters() error = %v", err)
	}
	if got, want := Values(f).Encode(), in.Encode(); got != want {
		t.Errorf("Values() = %q, want %q", got, want)
	}
}
