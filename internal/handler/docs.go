package handler

import (
	_ "embed"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Minimal HTML that loads Swagger UI from a CDN and points to /openapi.yaml.
//
//go:embed swagger.html
var swaggerHTML string

//go:embed openapi.yaml
var openAPISpec []byte

// RegisterDocs mounts documentation endpoints at the root:
//   - GET /openapi.yaml: raw OpenAPI document compiled into the binary
//   - GET /docs: Swagger UI rendering of that document
func RegisterDocs(r *gin.Engine) {
	r.GET("/openapi.yaml", func(c *gin.Context) {
		c.Data(http.StatusOK, "application/yaml; charset=utf-8", openAPISpec)
	})
	r.GET("/docs", func(c *gin.Context) {
		c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(swaggerHTML))
	})
}
