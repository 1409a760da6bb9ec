package client

import (
	"context"
	"net/http"
	"net/url"

	"github.com/dmitrijs2005/ufood/internal/client/models"
	"github.com/dmitrijs2005/ufood/internal/common"
)

// Login exchanges credentials for a token and stores it, with the user id,
// in the session. The profile is not fetched here.
func (c *HTTPClient) Login(ctx context.Context, email, password string) (*models.LoginResult, error) {
	var res models.LoginResult
	err := c.do(ctx, request{
		op:     OpLogin,
		method: http.MethodPost,
		path:   "/login",
		json:   map[string]string{"email": email, "password": password},
		auth:   authNone,
	}, &res)
	if err != nil {
		return nil, c.settle(ctx, OpLogin, err)
	}

	c.session.SetToken(res.Token, res.ID)
	return &res, nil
}

// Logout invalidates the token remotely and clears the session. Without a
// token there is nothing to invalidate and only the session is cleared. On
// failure the session is left as it was.
func (c *HTTPClient) Logout(ctx context.Context) error {
	if c.session.IsAuthenticated() {
		err := c.do(ctx, request{
			op:     OpLogout,
			method: http.MethodPost,
			path:   "/logout",
			auth:   authIfPresent,
		}, nil)
		if err != nil {
			return c.settle(ctx, OpLogout, err)
		}
	}

	c.session.ClearSession()
	return nil
}

// Register creates an account. The body is sent form-encoded.
func (c *HTTPClient) Register(ctx context.Context, name, email, password string) (*models.User, error) {
	form := url.Values{}
	form.Set("name", name)
	form.Set("email", email)
	form.Set("password", password)

	var u models.User
	err := c.do(ctx, request{
		op:     OpRegister,
		method: http.MethodPost,
		path:   "/signup",
		form:   form,
		auth:   authNone,
	}, &u)
	if err != nil {
		return nil, c.settle(ctx, OpRegister, err)
	}
	return &u, nil
}

// GetUserInfo returns the profile of the token owner, or nil on failure.
func (c *HTTPClient) GetUserInfo(ctx context.Context) (*models.User, error) {
	var u models.User
	err := c.do(ctx, request{
		op:     OpGetUserInfo,
		method: http.MethodGet,
		path:   "/tokenInfo",
		auth:   authRequired,
	}, &u)
	if err != nil {
		return nil, c.settle(ctx, OpGetUserInfo, err)
	}
	return &u, nil
}

// CreateDefaultFavoriteList creates the "My Favorites" list for a new user.
func (c *HTTPClient) CreateDefaultFavoriteList(ctx context.Context) (*models.FavoriteList, error) {
	return c.createFavoriteList(ctx, OpCreateDefaultFavoriteList, common.DefaultFavoriteListName)
}
