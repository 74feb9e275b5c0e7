package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mrghanchi007/tph-live-r2/internal/seo"
)

// MetaRewrite serves crawler-correct HTML for product detail paths.
// Anything the rewriter declines (non-product paths, unknown slugs,
// template fetch failure) continues down the chain untouched.
func MetaRewrite(rw *seo.Rewriter, fallbackOrigin string) gin.HandlerFunc {
	return func(c *gin.Context) {
		origin := requestOrigin(c, fallbackOrigin)
		body, ok := rw.Rewrite(c.Request.Context(), c.Request.URL.Path, origin)
		if !ok {
			c.Next()
			return
		}
		c.Data(http.StatusOK, "text/html; charset=utf-8", body)
		c.Abort()
	}
}

func requestOrigin(c *gin.Context, fallback string) string {
	host := c.Request.Host
	if host == "" {
		return fallback
	}
	scheme := "http"
	if c.Request.TLS != nil || c.GetHeader("X-Forwarded-Proto") == "https" {
		scheme = "https"
	}
	return scheme + "://" + host
}
