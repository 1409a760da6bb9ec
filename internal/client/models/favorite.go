package models

// FavoriteList is a named, user-owned ordered collection of restaurants.
type FavoriteList struct {
	ID          string               `json:"id"`
	Name        string               `json:"name"`
	Owner       UserRef              `json:"owner"`
	Restaurants []FavoriteRestaurant `json:"restaurants"`
}

// FavoriteRestaurant is a restaurant reference inside a favorite list.
type FavoriteRestaurant struct {
	ID   string `json:"id"`
	Name string `json:"name,omitempty"`
}

// FavoriteListSummary is the {id, name} projection used for list pickers.
type FavoriteListSummary struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Contains reports whether restaurantID is in the list.
func (f *FavoriteList) Contains(restaurantID string) bool {
	if f == nil {
		return false
	}
	for _, r := range f.Restaurants {
		if r.ID == restaurantID {
			return true
		}
	}
	return false
}
