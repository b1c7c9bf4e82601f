package middleware

import (
	"net/http"

	"github.com/go-chi/cors"
)

// corsMaxAge время кеширования preflight ответа браузером, секунды
const corsMaxAge = 3600

// CORS разрешает запросы сайта к API с разрешенных origin
// Пустой список разрешает любой origin (режим разработки)
func CORS(allowedOrigins []string) func(http.Handler) http.Handler {
	if len(allowedOrigins) == 0 {
		allowedOrigins = []string{"*"}
	}

	return cors.Handler(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", "Origin"},
		MaxAge:         corsMaxAge,
	})
}
