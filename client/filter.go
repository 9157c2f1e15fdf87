package client

import (
	"strings"
	"time"
)

type TripFilter string

const (
	FilterAll      TripFilter = "all"
	FilterUpcoming TripFilter = "upcoming"
	FilterPast     TripFilter = "past"
)

// FilterTrips narrows the saved-trips list by free text against the
// destination city and country, then by date window. Upcoming keeps trips
// starting after now; past keeps trips already ended.
func FilterTrips(trips []Trip, query string, filter TripFilter, now time.Time) []Trip {
	out := []Trip{}
	needle := strings.ToLower(strings.TrimSpace(query))
	for _, t := range trips {
		if needle != "" &&
			!strings.Contains(strings.ToLower(t.Destination.City), needle) &&
			!strings.Contains(strings.ToLower(t.Destination.Country), needle) {
			continue
		}
		switch filter {
		case FilterUpcoming:
			if !t.StartDate.After(now) {
				continue
			}
		case FilterPast:
			if !t.EndDate.Before(now) {
				continue
			}
		}
		out = append(out, t)
	}
	return out
}
