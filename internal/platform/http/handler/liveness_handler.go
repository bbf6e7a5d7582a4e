// Package handler provides HTTP handlers for platform-level endpoints.
package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// livenessMessage is the plain-text body of GET /.
const livenessMessage = "API do Projeto DFS-2025.2 está funcionando ✅"

// Liveness handles GET / as a plain-text liveness probe.
// Responses are never cached.
func Liveness(c *gin.Context) {
	c.Header("Cache-Control", "no-store")

	switch c.Request.Method {
	case http.MethodHead:
		c.Status(http.StatusOK)
	case http.MethodOptions:
		c.Status(http.StatusNoContent)
	default:
		c.String(http.StatusOK, livenessMessage)
	}
}
