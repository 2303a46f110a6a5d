package query

import (
	"fmt"
	"math"
	"net/url"
	"strconv"
	"time"

	"github.com/farellandr/eventhub/internal/models"
)

const (
	dateLayout = "2006-01-02"

	DefaultMinPrice = 0
	DefaultMaxPrice = 1000
)

// ParseFilters builds filters from listing query parameters. Absent or empty
// parameters impose no constraint.
func ParseFilters(values url.Values) (models.EventFilters, error) {
	filters := models.EventFilters{
		Search:   values.Get("search"),
		Category: values.Get("category"),
		Location: values.Get("location"),
	}

	var err error
	if filters.StartDate, err = parseDate(values.Get("startDate")); err != nil {
		return models.EventFilters{}, fmt.Errorf("startDate: %w", err)
	}
	if filters.EndDate, err = parseDate(values.Get("endDate")); err != nil {
		return models.EventFilters{}, fmt.Errorf("endDate: %w", err)
	}

	minStr, maxStr := values.Get("minPrice"), values.Get("maxPrice")
	if minStr != "" || maxStr != "" {
		pr := &models.PriceRange{Min: DefaultMinPrice, Max: DefaultMaxPrice}
		if minStr != "" {
			if pr.Min, err = parsePrice(minStr); err != nil {
				return models.EventFilters{}, fmt.Errorf("minPrice: %w", err)
			}
		}
		if maxStr != "" {
			if pr.Max, err = parsePrice(maxStr); err != nil {
				return models.EventFilters{}, fmt.Errorf("maxPrice: %w", err)
			}
		}
		filters.PriceRange = pr
	}

	return filters, nil
}

// Values encodes filters back into query parameters understood by ParseFilters.
func Values(filters models.EventFilters) url.Values {
	values := url.Values{}
	if filters.Search != "" {
		values.Set("search", filters.Search)
	}
	if filters.Category != "" {
		values.Set("category", filters.Category)
	}
	if filters.Location != "" {
		values.Set("location", filters.Location)
	}
	if filters.StartDate != nil {
		values.Set("startDate", formatDate(*filters.StartDate))
	}
	if filters.EndDate != nil {
		values.Set("endDate", formatDate(*filters.EndDate))
	}
	if pr := filters.PriceRange; pr != nil {
		values.Set("minPrice", strconv.FormatFloat(pr.Min, 'f', -1, 64))
		values.Set("maxPrice", strconv.FormatFloat(pr.Max, 'f', -1, 64))
	}
	return values
}

// parsePrice rejects NaN and infinities, which would silently disable a bound.
func parsePrice(s string) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid price %q", s)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("price %q is not a finite number", s)
	}
	return v, nil
}

// parseDate accepts RFC 3339 timestamps and bare dates (midnight UTC).
func parseDate(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return &t, nil
	}
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return nil, fmt.Errorf("invalid date %q", s)
	}
	return &t, nil
}

func formatDate(t time.Time) string {
	if t.Equal(t.Truncate(24*time.Hour)) && t.Location() == time.UTC {
		return t.Format(dateLayout)
	}
	return t.Format(time.RFC3339)
}
