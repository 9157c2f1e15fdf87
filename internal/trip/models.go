package trip

import "time"

const (
	StatusPlanned   = "planned"
	StatusOngoing   = "ongoing"
	StatusCompleted = "completed"
	StatusCancelled = "cancelled"
)

type Coordinates struct {
	Lat float64 `bson:"lat" json:"lat"`
	Lng float64 `bson:"lng" json:"lng"`
}

type Destination struct {
	City        string       `bson:"city" json:"city" validate:"required"`
	Country     string       `bson:"country" json:"country" validate:"required"`
	Coordinates *Coordinates `bson:"coordinates,omitempty" json:"coordinates,omitempty"`
}

type Activity struct {
	Name        string    `bson:"name" json:"name"`
	Description string    `bson:"description" json:"description"`
	Date        time.Time `bson:"date" json:"date"`
	Completed   bool      `bson:"completed" json:"completed"`
}

// WeatherSnapshot is a cached forecast stored on the trip, refreshed by
// clients rather than by any server-side job.
type WeatherSnapshot struct {
	Temperature float64   `bson:"temperature" json:"temperature"`
	Description string    `bson:"description" json:"description"`
	Icon        string    `bson:"icon" json:"icon"`
	LastUpdated time.Time `bson:"lastUpdated" json:"lastUpdated"`
}

// Trip is owned by the Firebase subject in UserID; every query filters on
// both _id and userId so cross-user access cannot happen. Start and end
// dates are required but deliberately unordered.
type Trip struct {
	ID          string           `bson:"_id" json:"id"`
	UserID      string           `bson:"userId" json:"userId"`
	Title       string           `bson:"title" json:"title" validate:"required"`
	Destination Destination      `bson:"destination" json:"destination"`
	StartDate   time.Time        `bson:"startDate" json:"startDate" validate:"required"`
	EndDate     time.Time        `bson:"endDate" json:"endDate" validate:"required"`
	Description string           `bson:"description" json:"description"`
	Notes       string           `bson:"notes" json:"notes"`
	Budget      float64          `bson:"budget" json:"budget"`
	Status      string           `bson:"status" json:"status" validate:"omitempty,oneof=planned ongoing completed cancelled"`
	Activities  []Activity       `bson:"activities" json:"activities"`
	Weather     *WeatherSnapshot `bson:"weather,omitempty" json:"weather,omitempty"`
	CreatedAt   time.Time        `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time        `bson:"updatedAt" json:"updatedAt"`
}
