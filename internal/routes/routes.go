// Package routes defines HTTP route constants for the application.
package routes

const (
	// API
	APIPosts    = "/api/posts"
	APIPostSlug = "/api/posts/{slug}"

	// Ops
	Health = "/healthz"
)
