package models

// Restaurant is read-only from the client's perspective.
type Restaurant struct {
	ID         string   `json:"id"`
	Name       string   `json:"name"`
	Address    string   `json:"address,omitempty"`
	Tel        string   `json:"tel,omitempty"`
	Genres     []string `json:"genres"`
	PriceRange int      `json:"price_range"`
	Rating     float64  `json:"rating"`
	Location   Location `json:"location"`
	Pictures   []string `json:"pictures,omitempty"`
}

// Location is a GeoJSON point; Coordinates are ordered [lon, lat].
type Location struct {
	Type        string    `json:"type,omitempty"`
	Coordinates []float64 `json:"coordinates,omitempty"`
}

func (l Location) HasCoordinates() bool {
	return len(l.Coordinates) >= 2
}

func (l Location) Lon() float64 {
	if !l.HasCoordinates() {
		return 0
	}
	return l.Coordinates[0]
}

func (l Location) Lat() float64 {
	if !l.HasCoordinates() {
		return 0
	}
	return l.Coordinates[1]
}

// RestaurantFilter narrows a restaurant listing. Zero values mean "not set"
// and are left out of the query.
type RestaurantFilter struct {
	Query      string
	Genres     []string
	PriceRange int
	Lat        float64
	Lon        float64
}
