package query

import (
	"math"
	"reflect"
	"testing"
	"time"

	"github.com/farellandr/eventhub/internal/models"
)

func date(s string) time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		panic(err)
	}
	return t
}

func ptr[T any](v T) *T { return &v }

func sampleEvents() []models.Event {
	return []models.Event{
		{
			ID:          "event-1",
			Title:       "Tech Summit",
			Description: "Talks about cloud and AI",
			StartDate:   date("2026-06-01T09:00:00Z"),
			EndDate:     date("2026-06-01T17:00:00Z"),
			Location:    models.Location{City: "San Francisco", State: "CA"},
			Category:    "Technology",
			Price:       100,
			Capacity:    200,
			IsFeatured:  true,
		},
		{
			ID:               "event-2",
			Title:            "Jazz Night",
			Description:      "An evening of live TECHNO-free jazz",
			ShortDescription: "summit of sound",
			StartDate:        date("2026-07-10T19:00:00Z"),
			EndDate:          date("2026-07-10T23:00:00Z"),
			Location:         models.Location{City: "New Orleans", State: "LA"},
			Category:         "Music",
			Price:            0,
			Capacity:         80,
		},
		{
			ID:          "event-3",
			Title:       "Startup Pitch",
			Description: "Founders pitch to investors",
			StartDate:   date("2026-08-15T10:00:00Z"),
			EndDate:     date("2026-08-16T18:00:00Z"),
			Location:    models.Location{City: "Austin", State: "TX"},
			Category:    "Business",
			Price:       250,
			Capacity:    50,
			IsFeatured:  true,
		},
	}
}

func ids(events []models.Event) []string {
	out := make([]string, 0, len(events))
	for _, e := range events {
		out = append(out, e.ID)
	}
	return out
}

func TestFilter(t *testing.T) {
	tests := []struct {
		name    string
		filters models.EventFilters
		want    []string
	}{
		{"empty filter", models.EventFilters{}, []string{"event-1", "event-2", "event-3"}},
		{"search title", models.EventFilters{Search: "summit"}, []string{"event-1"}},
		{"search description", models.EventFilters{Search: "investors"}, []string{"event-3"}},
		{"search matches title or description", models.EventFilters{Search: "tech"}, []string{"event-1", "event-2"}},
		{"search ignores short description", models.EventFilters{Search: "of sound"}, []string{}},
		{"category exact", models.EventFilters{Category: "Music"}, []string{"event-2"}},
		{"category is case sensitive", models.EventFilters{Category: "music"}, []string{}},
		{"location city", models.EventFilters{Location: "austin"}, []string{"event-3"}},
		{"location city and state", models.EventFilters{Location: "francisco, ca"}, []string{"event-1"}},
		{"start date", models.EventFilters{StartDate: ptr(date("2026-07-01T00:00:00Z"))}, []string{"event-2", "event-3"}},
		{"end date", models.EventFilters{EndDate: ptr(date("2026-08-01T00:00:00Z"))}, []string{"event-1", "event-2"}},
		{"price range", models.EventFilters{PriceRange: &models.PriceRange{Min: 50, Max: 200}}, []string{"event-1"}},
		{"combined", models.EventFilters{Search: "tech", Category: "Technology", Location: "CA"}, []string{"event-1"}},
		{"no match", models.EventFilters{Search: "gardening"}, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ids(Filter(sampleEvents(), tt.filters))
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Filter() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFilterEmptyIsIdentity(t *testing.T) {
	events := sampleEvents()
	if got := Filter(events, models.EventFilters{}); !reflect.DeepEqual(got, events) {
		t.Errorf("Filter with empty filters changed the collection")
	}
}

func TestFilterIsSubsetAndIdempotent(t *testing.T) {
	events := sampleEvents()
	all := []models.EventFilters{
		{Search: "e"},
		{Location: "a"},
		{PriceRange: &models.PriceRange{Min: 0, Max: 100}},
		{StartDate: ptr(date("2026-06-01T09:00:00Z")), EndDate: ptr(date("2026-07-10T23:00:00Z"))},
	}

	for _, f := range all {
		once := Filter(events, f)
		for _, e := range once {
			if ByID(events, e.ID) == nil {
				t.Errorf("Filter invented event %s", e.ID)
			}
		}
		if twice := Filter(once, f); !reflect.DeepEqual(once, twice) {
			t.Errorf("Filter not idempotent for %+v: %v vs %v", f, ids(once), ids(twice))
		}
	}
}

func TestFilterSearchCaseInsensitive(t *testing.T) {
	upper := Filter(sampleEvents(), models.EventFilters{Search: "TECH"})
	lower := Filter(sampleEvents(), models.EventFilters{Search: "tech"})
	if !reflect.DeepEqual(upper, lower) {
		t.Errorf("search is case sensitive: %v vs %v", ids(upper), ids(lower))
	}
}

func TestFilterInclusiveBounds(t *testing.T) {
	events := sampleEvents()

	got := ids(Filter(events, models.EventFilters{PriceRange: &models.PriceRange{Min: 100, Max: 250}}))
	if want := []string{"event-1", "event-3"}; !reflect.DeepEqual(got, want) {
		t.Errorf("price bounds: got %v, want %v", got, want)
	}

	got = ids(Filter(events, models.EventFilters{StartDate: ptr(events[1].StartDate)}))
	if want := []string{"event-2", "event-3"}; !reflect.DeepEqual(got, want) {
		t.Errorf("start bound: got %v, want %v", got, want)
	}

	got = ids(Filter(events, models.EventFilters{EndDate: ptr(events[1].EndDate)}))
	if want := []string{"event-1", "event-2"}; !reflect.DeepEqual(got, want) {
		t.Errorf("end bound: got %v, want %v", got, want)
	}
}

func TestFeatured(t *testing.T) {
	if got := ids(Featured(sampleEvents())); !reflect.DeepEqual(got, []string{"event-1", "event-3"}) {
		t.Errorf("Featured() = %v", got)
	}
	if got := Featured(nil); got == nil || len(got) != 0 {
		t.Errorf("Featured(nil) = %v, want empty slice", got)
	}
}

func TestByID(t *testing.T) {
	events := sampleEvents()
	if e := ByID(events, "event-2"); e == nil || e.Title != "Jazz Night" {
		t.Errorf("ByID(event-2) = %v", e)
	}
	if e := ByID(events, "missing"); e != nil {
		t.Errorf("ByID(missing) = %v, want nil", e)
	}
}

func TestPaginate(t *testing.T) {
	events := sampleEvents()
	if got := ids(Paginate(events, 1, 2)); !reflect.DeepEqual(got, []string{"event-1", "event-2"}) {
		t.Errorf("page 1 = %v", got)
	}
	if got := ids(Paginate(events, 2, 2)); !reflect.DeepEqual(got, []string{"event-3"}) {
		t.Errorf("page 2 = %v", got)
	}
	if got := Paginate(events, 3, 2); len(got) != 0 {
		t.Errorf("page 3 = %v", ids(got))
	}
	if got := TotalPages(3, 2); got != 2 {
		t.Errorf("TotalPages(3, 2) = %d", got)
	}
}

func TestPaginateHugeValues(t *testing.T) {
	events := sampleEvents()
	tests := []struct {
		name        string
		page, limit int
		want        []string
	}{
		{"page overflows offset", math.MaxInt/2 + 2, 2, nil},
		{"max page", math.MaxInt, 1, nil},
		{"max limit", 1, math.MaxInt, []string{"event-1", "event-2", "event-3"}},
		{"second page of max limit", 2, math.MaxInt, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Paginate(events, tt.page, tt.limit)
			if len(got) != len(tt.want) {
				t.Fatalf("Paginate(%d, %d) = %v, want %v", tt.page, tt.limit, ids(got), tt.want)
			}
			if len(tt.want) > 0 && !reflect.DeepEqual(ids(got), tt.want) {
				t.Errorf("Paginate(%d, %d) = %v, want %v", tt.page, tt.limit, ids(got), tt.want)
			}
		})
	}
	if got := TotalPages(math.MaxInt, math.MaxInt-1); got != 2 {
		t.Errorf("TotalPages(MaxInt, MaxInt-1) = %d, want 2", got)
	}
}
