package user

import "time"

// Stats are denormalized counters adjusted on trip create/delete, not
// recomputed from the trips collection.
type Stats struct {
	TripsPlanned     int `bson:"tripsPlanned" json:"tripsPlanned"`
	CitiesVisited    int `bson:"citiesVisited" json:"citiesVisited"`
	CountriesVisited int `bson:"countriesVisited" json:"countriesVisited"`
}

type User struct {
	ID                string    `bson:"_id" json:"id"`
	FirebaseUID       string    `bson:"firebaseUid" json:"firebaseUid" validate:"required"`
	Email             string    `bson:"email" json:"email" validate:"required,email"`
	DisplayName       string    `bson:"displayName" json:"displayName" validate:"required"`
	PhotoURL          string    `bson:"photoURL" json:"photoURL"`
	Bio               string    `bson:"bio" json:"bio"`
	Location          string    `bson:"location" json:"location"`
	TravelPreferences []string  `bson:"travelPreferences" json:"travelPreferences"`
	Stats             Stats     `bson:"stats" json:"stats"`
	CreatedAt         time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt         time.Time `bson:"updatedAt" json:"updatedAt"`
}

// Update is a partial profile update; nil fields are left untouched.
type Update struct {
	DisplayName       *string   `json:"displayName"`
	PhotoURL          *string   `json:"photoURL"`
	Bio               *string   `json:"bio"`
	Location          *string   `json:"location"`
	TravelPreferences *[]string `json:"travelPreferences"`
}
