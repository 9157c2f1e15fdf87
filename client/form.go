package client

import (
	"errors"
	"time"
)

// ErrFormIncomplete is the planner's single validation message.
var ErrFormIncomplete = errors.New("please fill in all required fields")

type TripType struct {
	Value string
	Label string
	Icon  string
}

// TripTypes is the planner's fixed type picker.
var TripTypes = []TripType{
	{Value: "leisure", Label: "Leisure", Icon: "🏖️"},
	{Value: "business", Label: "Business", Icon: "💼"},
	{Value: "adventure", Label: "Adventure", Icon: "🏔️"},
	{Value: "cultural", Label: "Cultural", Icon: "🏛️"},
	{Value: "romantic", Label: "Romantic", Icon: "💕"},
	{Value: "family", Label: "Family", Icon: "👨‍👩‍👧‍👦"},
}

// TripForm is the planner's form state. City, start and end are required;
// the rest are optional extras.
type TripForm struct {
	City      *City
	StartDate time.Time
	EndDate   time.Time
	Notes     string
	Budget    float64
	Travelers int
	TripType  string
}

func NewTripForm() TripForm {
	return TripForm{Travelers: 1, TripType: "leisure"}
}

func (f TripForm) Validate() error {
	if f.City == nil || f.StartDate.IsZero() || f.EndDate.IsZero() {
		return ErrFormIncomplete
	}
	return nil
}

// BuildTrip shapes the form into the payload the planner posts: the title
// is derived from the city, and the notes double as the description.
func (f TripForm) BuildTrip() (Trip, error) {
	if err := f.Validate(); err != nil {
		return Trip{}, err
	}
	return Trip{
		Title: f.City.Name + " Trip",
		Destination: Destination{
			City:    f.City.Name,
			Country: f.City.Country,
			Coordinates: &Coordinates{
				Lat: f.City.Latitude,
				Lng: f.City.Longitude,
			},
		},
		StartDate:   f.StartDate,
		EndDate:     f.EndDate,
		Notes:       f.Notes,
		Description: f.Notes,
		Budget:      f.Budget,
	}, nil
}
