package client

import (
	"context"

	"github.com/dmitrijs2005/ufood/internal/client/models"
)

// AuthAPI covers identity calls.
type AuthAPI interface {
	Login(ctx context.Context, email, password string) (*models.LoginResult, error)
	Logout(ctx context.Context) error
	Register(ctx context.Context, name, email, password string) (*models.User, error)
	GetUserInfo(ctx context.Context) (*models.User, error)
	CreateDefaultFavoriteList(ctx context.Context) (*models.FavoriteList, error)
}

type UsersAPI interface {
	GetAllUsers(ctx context.Context, limit, page int, query string) (models.Page[models.User], error)
	GetUserByID(ctx context.Context, userID string) (*models.User, error)
	FollowUser(ctx context.Context, userID string) (*models.User, error)
	UnfollowUser(ctx context.Context, userID string) (*models.User, error)
}

type RestaurantsAPI interface {
	GetRestaurants(ctx context.Context, limit, page int, filter models.RestaurantFilter) (*models.Page[models.Restaurant], error)
	GetRestaurantByID(ctx context.Context, restaurantID string) (*models.Restaurant, error)
	GetSimilarRestaurants(ctx context.Context, target models.Restaurant) ([]models.Restaurant, error)
}

type VisitsAPI interface {
	GetUserVisits(ctx context.Context, userID string, limit, page int) ([]models.Visit, error)
	GetVisitByID(ctx context.Context, userID, visitID string) (*models.Visit, error)
	GetVisitsByRestaurantID(ctx context.Context, userID, restaurantID string) ([]models.Visit, error)
	CreateVisit(ctx context.Context, userID string, visit models.NewVisit) (*models.Visit, error)
}

type FavoritesAPI interface {
	CreateFavoriteList(ctx context.Context, name string) (*models.FavoriteList, error)
	UpdateFavoriteList(ctx context.Context, listID, name string) error
	DeleteFavoriteList(ctx context.Context, listID string) error
	GetFavoriteRestaurants(ctx context.Context, listID string) ([]models.FavoriteRestaurant, error)
	GetUserFavoriteLists(ctx context.Context) ([]models.FavoriteListSummary, error)
	AddFavoriteRestaurant(ctx context.Context, listID, restaurantID string) (*models.FavoriteList, error)
	RemoveFavoriteRestaurant(ctx context.Context, listID, restaurantID string) (bool, error)
}

// Client is the full UFood API surface.
type Client interface {
	AuthAPI
	UsersAPI
	RestaurantsAPI
	VisitsAPI
	FavoritesAPI
}
