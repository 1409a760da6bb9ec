// Package common contains constants shared by the client layers.
package common

const (
	// AuthorizationHeaderName carries "Bearer <token>" on authenticated calls.
	AuthorizationHeaderName = "Authorization"
	BearerPrefix            = "Bearer "

	// RequestIDHeaderName tags every outgoing request for log correlation.
	RequestIDHeaderName = "X-Request-Id"

	// UnsecurePathPrefix selects the anonymous variant of read-only endpoints.
	UnsecurePathPrefix = "/unsecure"

	DefaultFavoriteListName = "My Favorites"
)

// Keys of the local key-value store.
const (
	MetaUserID               = "user_id"
	MetaUserProfile          = "user"
	MetaSelectedFavoriteList = "selected_favorite_list_id"
)
