package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// CORSMiddleware applies an open policy: any origin, method and header.
// This backend serves preview and development frontends only.
func CORSMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		origin := c.Request.Header.Get("Origin")

		// "*" is not honored by browsers for credentialed requests, so echo the origin
		if origin != "" {
			c.Header("Access-Control-Allow-Origin", origin)
			c.Header("Access-Control-Allow-Credentials", "true")
			c.Header("Vary", "Origin")
		} else {
			c.Header("Access-Control-Allow-Origin", "*")
		}

		allowHeaders := c.Request.Header.Get("Access-Control-Request-Headers")
		if allowHeaders == "" {
			allowHeaders = "*"
		}
		c.Header("Access-Control-Allow-Headers", allowHeaders)
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, HEAD, OPTIONS")
		c.Header("Access-Control-Max-Age", "600")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}
