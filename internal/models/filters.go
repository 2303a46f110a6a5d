package models

import "time"

type PriceRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// EventFilters narrows an event listing. Unset fields impose no constraint.
type EventFilters struct {
	Search     string      `json:"search,omitempty"`
	Category   string      `json:"category,omitempty"`
	Location   string      `json:"location,omitempty"`
	StartDate  *time.Time  `json:"startDate,omitempty"`
	EndDate    *time.Time  `json:"endDate,omitempty"`
	PriceRange *PriceRange `json:"priceRange,omitempty"`
}

func (f EventFilters) IsZero() bool {
	return f.Search == "" && f.Category == "" && f.Location == "" &&
		f.StartDate == nil && f.EndDate == nil && f.PriceRange == nil
}
