// Package models defines the client-side copies of the entities owned by the
// UFood API. Field names follow the remote JSON contract.
package models

// Page is the envelope used by the remote listing endpoints.
type Page[T any] struct {
	Items []T `json:"items"`
	Total int `json:"total"`
}
