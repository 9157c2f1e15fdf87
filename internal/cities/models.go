package cities

// City is one search result shaped for the browser's autocomplete list.
type City struct {
	ID          int     `json:"id"`
	Name        string  `json:"name"`
	Country     string  `json:"country"`
	CountryCode string  `json:"countryCode"`
	Region      string  `json:"region"`
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
	Population  int     `json:"population"`
}

type Attraction struct {
	Name        string `json:"name"`
	Address     string `json:"address"`
	Photo       string `json:"photo"`
	Description string `json:"description"`
	Rating      string `json:"rating"`
}

type Insights struct {
	City            string       `json:"city"`
	Country         string       `json:"country"`
	MainAttractions []Attraction `json:"mainAttractions"`
	Tips            []string     `json:"tips"`
}
