package client

import "time"

// fallbackCity fills the dashboard weather card when no upcoming trip
// names a destination.
const fallbackCity = "Delhi"

type DashboardSummary struct {
	TotalTrips    int
	UpcomingTrips int
	CitiesVisited int
}

// Summarize folds the trip list into the dashboard stat cards. Upcoming
// means the start date lies strictly after now; cities are counted once
// per distinct destination name.
func Summarize(trips []Trip, now time.Time) DashboardSummary {
	cities := map[string]struct{}{}
	summary := DashboardSummary{TotalTrips: len(trips)}
	for _, t := range trips {
		if t.StartDate.After(now) {
			summary.UpcomingTrips++
		}
		if t.Destination.City != "" {
			cities[t.Destination.City] = struct{}{}
		}
	}
	summary.CitiesVisited = len(cities)
	return summary
}

// NextDestination picks the city of the soonest upcoming trip.
func NextDestination(trips []Trip, now time.Time) string {
	var next *Trip
	for i := range trips {
		t := &trips[i]
		if !t.StartDate.After(now) || t.Destination.City == "" {
			continue
		}
		if next == nil || t.StartDate.Before(next.StartDate) {
			next = t
		}
	}
	if next == nil {
		return fallbackCity
	}
	return next.Destination.City
}

// Recent returns the first n trips as listed, which the API already orders
// newest-created first.
func Recent(trips []Trip, n int) []Trip {
	if n > len(trips) {
		n = len(trips)
	}
	return trips[:n]
}
