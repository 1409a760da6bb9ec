package models

// Visit records a user having been to a restaurant. Visits are immutable
// once created.
type Visit struct {
	ID           string `json:"id"`
	RestaurantID string `json:"restaurant_id"`
	UserID       string `json:"user_id"`
	Comment      string `json:"comment"`
	Rating       int    `json:"rating"`
	Date         string `json:"date"`
}

// NewVisit is the creation payload.
type NewVisit struct {
	RestaurantID string `json:"restaurant_id"`
	Comment      string `json:"comment"`
	Rating       int    `json:"rating"`
	Date         string `json:"date"`
}
