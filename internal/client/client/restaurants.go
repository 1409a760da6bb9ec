package client

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/ufood/internal/client/models"
	"github.com/dmitrijs2005/ufood/internal/client/ranking"
)

// similarCandidates is how many restaurants are fetched before ranking.
const similarCandidates = 10

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

func restaurantQuery(limit, page int, f models.RestaurantFilter) url.Values {
	q := url.Values{}
	q.Set("limit", strconv.Itoa(limit))
	q.Set("page", strconv.Itoa(page))
	if f.Query != "" {
		q.Set("q", f.Query)
	}
	if len(f.Genres) > 0 {
		q.Set("genres", strings.Join(f.Genres, ","))
	}
	if f.PriceRange > 0 {
		q.Set("price_range", strconv.Itoa(f.PriceRange))
	}
	if f.Lat != 0 {
		q.Set("lat", formatFloat(f.Lat))
	}
	if f.Lon != 0 {
		q.Set("lon", formatFloat(f.Lon))
	}
	return q
}

// GetRestaurants lists restaurants. Anonymous callers are served by the
// /unsecure variant. On failure it returns nil.
func (c *HTTPClient) GetRestaurants(ctx context.Context, limit, page int, filter models.RestaurantFilter) (*models.Page[models.Restaurant], error) {
	var res models.Page[models.Restaurant]
	err := c.do(ctx, request{
		op:     OpGetRestaurants,
		method: http.MethodGet,
		path:   "/restaurants",
		query:  restaurantQuery(limit, page, filter),
		auth:   authAnonymous,
	}, &res)
	if err != nil {
		return nil, c.settle(ctx, OpGetRestaurants, err)
	}
	return &res, nil
}

func (c *HTTPClient) GetRestaurantByID(ctx context.Context, restaurantID string) (*models.Restaurant, error) {
	var r models.Restaurant
	err := c.do(ctx, request{
		op:     OpGetRestaurantByID,
		method: http.MethodGet,
		path:   pathf("/restaurants/%s", restaurantID),
		auth:   authAnonymous,
	}, &r)
	if err != nil {
		return nil, c.settle(ctx, OpGetRestaurantByID, err)
	}
	return &r, nil
}

// GetSimilarRestaurants fetches restaurants sharing target's genres, price
// range and neighbourhood, then ranks them with ranking.Similar. A target
// without genres gives an empty result without a request.
func (c *HTTPClient) GetSimilarRestaurants(ctx context.Context, target models.Restaurant) ([]models.Restaurant, error) {
	if len(target.Genres) == 0 {
		return []models.Restaurant{}, nil
	}

	filter := models.RestaurantFilter{Genres: target.Genres, PriceRange: target.PriceRange}
	if target.Location.Lat() != 0 && target.Location.Lon() != 0 {
		filter.Lat = target.Location.Lat()
		filter.Lon = target.Location.Lon()
	}

	var res models.Page[models.Restaurant]
	err := c.do(ctx, request{
		op:     OpGetSimilarRestaurants,
		method: http.MethodGet,
		path:   "/restaurants",
		query:  restaurantQuery(similarCandidates, 0, filter),
		auth:   authAnonymous,
	}, &res)
	if err != nil {
		return []models.Restaurant{}, c.settle(ctx, OpGetSimilarRestaurants, err)
	}

	return ranking.Similar(target, res.Items), nil
}
