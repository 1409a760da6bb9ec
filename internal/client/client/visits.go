package client

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"

	"github.com/dmitrijs2005/ufood/internal/client/models"
)

// visitList accepts both a bare JSON array and a {"items": [...]} page.
type visitList []models.Visit

func (v *visitList) UnmarshalJSON(b []byte) error {
	if trimmed := bytes.TrimSpace(b); len(trimmed) > 0 && trimmed[0] == '[' {
		return json.Unmarshal(trimmed, (*[]models.Visit)(v))
	}
	var page models.Page[models.Visit]
	if err := json.Unmarshal(b, &page); err != nil {
		return err
	}
	*v = page.Items
	return nil
}

// GetUserVisits returns the items of one page of userID's visits, or an
// empty slice on failure.
func (c *HTTPClient) GetUserVisits(ctx context.Context, userID string, limit, page int) ([]models.Visit, error) {
	q := url.Values{}
	q.Set("limit", strconv.Itoa(limit))
	q.Set("page", strconv.Itoa(page))

	var res models.Page[models.Visit]
	err := c.do(ctx, request{
		op:     OpGetUserVisits,
		method: http.MethodGet,
		path:   pathf("/users/%s/restaurants/visits", userID),
		query:  q,
		auth:   authRequired,
	}, &res)
	if err != nil {
		return []models.Visit{}, c.settle(ctx, OpGetUserVisits, err)
	}
	if res.Items == nil {
		return []models.Visit{}, nil
	}
	return res.Items, nil
}

func (c *HTTPClient) GetVisitByID(ctx context.Context, userID, visitID string) (*models.Visit, error) {
	var v models.Visit
	err := c.do(ctx, request{
		op:     OpGetVisitByID,
		method: http.MethodGet,
		path:   pathf("/users/%s/restaurants/visits/%s", userID, visitID),
		auth:   authRequired,
	}, &v)
	if err != nil {
		return nil, c.settle(ctx, OpGetVisitByID, err)
	}
	return &v, nil
}

// GetVisitsByRestaurantID returns userID's visits to one restaurant, or nil
// on failure.
func (c *HTTPClient) GetVisitsByRestaurantID(ctx context.Context, userID, restaurantID string) ([]models.Visit, error) {
	var res visitList
	err := c.do(ctx, request{
		op:     OpGetVisitsByRestaurantID,
		method: http.MethodGet,
		path:   pathf("/users/%s/restaurants/%s/visits", userID, restaurantID),
		auth:   authRequired,
	}, &res)
	if err != nil {
		return nil, c.settle(ctx, OpGetVisitsByRestaurantID, err)
	}
	return []models.Visit(res), nil
}

// CreateVisit records a visit for userID and returns it as stored remotely,
// or nil on failure.
func (c *HTTPClient) CreateVisit(ctx context.Context, userID string, visit models.NewVisit) (*models.Visit, error) {
	var v models.Visit
	err := c.do(ctx, request{
		op:     OpCreateVisit,
		method: http.MethodPost,
		path:   pathf("/users/%s/restaurants/visits", userID),
		json:   visit,
		auth:   authRequired,
	}, &v)
	if err != nil {
		return nil, c.settle(ctx, OpCreateVisit, err)
	}
	return &v, nil
}
