package client

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/dmitrijs2005/ufood/internal/client/models"
)

// GetAllUsers lists users; query filters by name and is omitted when empty.
// On failure it returns an empty page.
func (c *HTTPClient) GetAllUsers(ctx context.Context, limit, page int, query string) (models.Page[models.User], error) {
	q := url.Values{}
	q.Set("limit", strconv.Itoa(limit))
	q.Set("page", strconv.Itoa(page))
	if query != "" {
		q.Set("q", query)
	}

	var res models.Page[models.User]
	err := c.do(ctx, request{
		op:     OpGetAllUsers,
		method: http.MethodGet,
		path:   "/users",
		query:  q,
		auth:   authRequired,
	}, &res)
	if err != nil {
		return models.Page[models.User]{Items: []models.User{}}, c.settle(ctx, OpGetAllUsers, err)
	}
	if res.Items == nil {
		res.Items = []models.User{}
	}
	return res, nil
}

func (c *HTTPClient) GetUserByID(ctx context.Context, userID string) (*models.User, error) {
	var u models.User
	err := c.do(ctx, request{
		op:     OpGetUserByID,
		method: http.MethodGet,
		path:   pathf("/users/%s", userID),
		auth:   authRequired,
	}, &u)
	if err != nil {
		return nil, c.settle(ctx, OpGetUserByID, err)
	}
	return &u, nil
}

// FollowUser adds a follow edge from the current user to userID and returns
// the updated profile of the current user.
func (c *HTTPClient) FollowUser(ctx context.Context, userID string) (*models.User, error) {
	var u models.User
	err := c.do(ctx, request{
		op:     OpFollowUser,
		method: http.MethodPost,
		path:   "/follow",
		json:   map[string]string{"id": userID},
		auth:   authRequired,
	}, &u)
	if err != nil {
		return nil, c.settle(ctx, OpFollowUser, err)
	}
	return &u, nil
}

func (c *HTTPClient) UnfollowUser(ctx context.Context, userID string) (*models.User, error) {
	var u models.User
	err := c.do(ctx, request{
		op:     OpUnfollowUser,
		method: http.MethodDelete,
		path:   pathf("/follow/%s", userID),
		auth:   authRequired,
	}, &u)
	if err != nil {
		return nil, c.settle(ctx, OpUnfollowUser, err)
	}
	return &u, nil
}
