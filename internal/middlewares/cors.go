package middlewares

import (
	"net/http"

	"github.com/rs/cors"
)

// Origins are reflected instead of "*" so credentials stay allowed.
var corsHandler = cors.New(cors.Options{
	AllowOriginFunc: func(string) bool { return true },
	AllowedMethods: []string{
		http.MethodGet,
		http.MethodHead,
		http.MethodPost,
		http.MethodPut,
		http.MethodPatch,
		http.MethodDelete,
		http.MethodOptions,
	},
	AllowedHeaders:   []string{"*"},
	AllowCredentials: true,
})

func CorsMiddleware(next http.Handler) http.Handler {
	return corsHandler.Handler(next)
}
