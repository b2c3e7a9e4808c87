package middleware

import (
	"net/http"

	"github.com/go-chi/cors"
)

// Cors allows all origins, methods and headers. The API is open, there is no
// auth layer in front of it.
func Cors() func(http.Handler) http.Handler {
	return cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"*"},
		MaxAge:         300,
	})
}
