// Package middleware provides HTTP middleware for the API.
package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// CORSMiddleware restricts cross-origin access to the configured
// launcher origins and answers preflight requests.
type CORSMiddleware struct {
	allowedOrigins map[string]struct{}
}

// NewCORSMiddleware creates a new CORS middleware instance.
func NewCORSMiddleware(allowedOrigins []string) *CORSMiddleware {
	origins := make(map[string]struct{}, len(allowedOrigins))
	for _, origin := range allowedOrigins {
		origins[origin] = struct{}{}
	}
	return &CORSMiddleware{allowedOrigins: origins}
}

// Handle returns the gin middleware function.
func (m *CORSMiddleware) Handle() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		origin := ctx.GetHeader("Origin")
		if _, ok := m.allowedOrigins[origin]; ok {
			ctx.Header("Access-Control-Allow-Origin", origin)
			ctx.Header("Access-Control-Allow-Methods", "POST, OPTIONS")
			ctx.Header("Access-Control-Allow-Headers", "*")
			ctx.Header("Vary", "Origin")
		}

		if ctx.Request.Method == http.MethodOptions {
			ctx.AbortWithStatus(http.StatusNoContent)
			return
		}

		ctx.Next()
	}
}
