package client

import (
	"context"
	"errors"
	"net/http"

	"github.com/dmitrijs2005/ufood/internal/client/models"
)

func (c *HTTPClient) createFavoriteList(ctx context.Context, op Operation, name string) (*models.FavoriteList, error) {
	var list models.FavoriteList
	err := c.do(ctx, request{
		op:     op,
		method: http.MethodPost,
		path:   "/favorites",
		json:   map[string]string{"name": name},
		auth:   authRequired,
	}, &list)
	if err != nil {
		return nil, c.settle(ctx, op, err)
	}
	return &list, nil
}

// CreateFavoriteList returns the new list, or nil on failure.
func (c *HTTPClient) CreateFavoriteList(ctx context.Context, name string) (*models.FavoriteList, error) {
	return c.createFavoriteList(ctx, OpCreateFavoriteList, name)
}

func (c *HTTPClient) UpdateFavoriteList(ctx context.Context, listID, name string) error {
	err := c.do(ctx, request{
		op:     OpUpdateFavoriteList,
		method: http.MethodPut,
		path:   pathf("/favorites/%s", listID),
		json:   map[string]string{"name": name},
		auth:   authRequired,
	}, nil)
	return c.settle(ctx, OpUpdateFavoriteList, err)
}

func (c *HTTPClient) DeleteFavoriteList(ctx context.Context, listID string) error {
	err := c.do(ctx, request{
		op:     OpDeleteFavoriteList,
		method: http.MethodDelete,
		path:   pathf("/favorites/%s", listID),
		auth:   authRequired,
	}, nil)
	return c.settle(ctx, OpDeleteFavoriteList, err)
}

// GetFavoriteRestaurants returns the restaurants of one list. An empty
// listID or a failed call gives an empty slice.
func (c *HTTPClient) GetFavoriteRestaurants(ctx context.Context, listID string) ([]models.FavoriteRestaurant, error) {
	if err := c.requireToken(); err != nil {
		return nil, c.settle(ctx, OpGetFavoriteRestaurants, err)
	}
	if listID == "" {
		return []models.FavoriteRestaurant{}, c.settle(ctx, OpGetFavoriteRestaurants, ErrNoFavoriteList)
	}

	var list models.FavoriteList
	err := c.do(ctx, request{
		op:     OpGetFavoriteRestaurants,
		method: http.MethodGet,
		path:   pathf("/favorites/%s", listID),
		auth:   authRequired,
	}, &list)
	if err != nil {
		return []models.FavoriteRestaurant{}, c.settle(ctx, OpGetFavoriteRestaurants, err)
	}
	if list.Restaurants == nil {
		return []models.FavoriteRestaurant{}, nil
	}
	return list.Restaurants, nil
}

// GetUserFavoriteLists resolves the current user through /tokenInfo and
// returns the {id, name} of each of their lists. Any failure, at either
// step, gives an empty slice.
func (c *HTTPClient) GetUserFavoriteLists(ctx context.Context) ([]models.FavoriteListSummary, error) {
	var me models.User
	err := c.do(ctx, request{
		op:     OpGetUserFavoriteLists,
		method: http.MethodGet,
		path:   "/tokenInfo",
		auth:   authRequired,
	}, &me)
	if err == nil && me.ID == "" {
		err = &TransportError{Op: OpGetUserFavoriteLists, Err: errors.New("token info carries no user id")}
	}
	if err != nil {
		return []models.FavoriteListSummary{}, c.settle(ctx, OpGetUserFavoriteLists, err)
	}

	var page models.Page[models.FavoriteList]
	err = c.do(ctx, request{
		op:     OpGetUserFavoriteLists,
		method: http.MethodGet,
		path:   pathf("/users/%s/favorites", me.ID),
		auth:   authRequired,
	}, &page)
	if err != nil {
		return []models.FavoriteListSummary{}, c.settle(ctx, OpGetUserFavoriteLists, err)
	}

	out := make([]models.FavoriteListSummary, 0, len(page.Items))
	for _, l := range page.Items {
		out = append(out, models.FavoriteListSummary{ID: l.ID, Name: l.Name})
	}
	return out, nil
}

// AddFavoriteRestaurant appends restaurantID to a list and returns the
// updated list, or nil on failure.
func (c *HTTPClient) AddFavoriteRestaurant(ctx context.Context, listID, restaurantID string) (*models.FavoriteList, error) {
	var list models.FavoriteList
	err := c.do(ctx, request{
		op:     OpAddFavoriteRestaurant,
		method: http.MethodPost,
		path:   pathf("/favorites/%s/restaurants", listID),
		json:   map[string]string{"id": restaurantID},
		auth:   authRequired,
	}, &list)
	if err != nil {
		return nil, c.settle(ctx, OpAddFavoriteRestaurant, err)
	}
	return &list, nil
}

// RemoveFavoriteRestaurant reports whether the restaurant was removed.
func (c *HTTPClient) RemoveFavoriteRestaurant(ctx context.Context, listID, restaurantID string) (bool, error) {
	err := c.do(ctx, request{
		op:     OpRemoveFavoriteRestaurant,
		method: http.MethodDelete,
		path:   pathf("/favorites/%s/restaurants/%s", listID, restaurantID),
		auth:   authRequired,
	}, nil)
	if err != nil {
		return false, c.settle(ctx, OpRemoveFavoriteRestaurant, err)
	}
	return true, nil
}
