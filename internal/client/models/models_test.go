package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocation_Coordinates(t *testing.T) {
	l := Location{Type: "Point", Coordinates: []float64{-71.2, 46.8}}
	assert.True(t, l.HasCoordinates())
	assert.Equal(t, -71.2, l.Lon())
	assert.Equal(t, 46.8, l.Lat())

	var empty Location
	assert.False(t, empty.HasCoordinates())
	assert.Zero(t, empty.Lat())
	assert.Zero(t, empty.Lon())
}

func TestRestaurant_DecodesRemoteShape(t *testing.T) {
	body := `{
		"id": "r1",
		"name": "Chez Ti-Jean",
		"genres": ["french", "bistro"],
		"price_range": 2,
		"rating": 4.5,
		"location": {"type": "Point", "coordinates": [-71.21, 46.81]}
	}`

	var r Restaurant
	require.NoError(t, json.Unmarshal([]byte(body), &r))
	assert.Equal(t, "r1", r.ID)
	assert.Equal(t, []string{"french", "bistro"}, r.Genres)
	assert.Equal(t, 2, r.PriceRange)
	assert.Equal(t, 46.81, r.Location.Lat())
}

func TestUser_IsFollowing(t *testing.T) {
	u := &User{ID: "me", Following: []UserRef{{ID: "u2"}, {ID: "u3"}}}
	assert.True(t, u.IsFollowing("u3"))
	assert.False(t, u.IsFollowing("u4"))

	var nilUser *User
	assert.False(t, nilUser.IsFollowing("u2"))
}

func TestFavoriteList_Contains(t *testing.T) {
	f := &FavoriteList{Restaurants: []FavoriteRestaurant{{ID: "r1"}, {ID: "r2"}}}
	assert.True(t, f.Contains("r2"))
	assert.False(t, f.Contains("r9"))
}

func TestNewVisit_EncodesRemoteFieldNames(t *testing.T) {
	b, err := json.Marshal(NewVisit{RestaurantID: "r1", Comment: "Great food", Rating: 5, Date: "2024-01-01"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"restaurant_id":"r1","comment":"Great food","rating":5,"date":"2024-01-01"}`, string(b))
}
