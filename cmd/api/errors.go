package main

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// handleNotFound renders the 404 page, or a JSON error under /api
func (app *App) handleNotFound(c *gin.Context) {
	if isAPIRequest(c) {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "not found"})
		return
	}
	c.HTML(http.StatusNotFound, "404.html", gin.H{"Path": c.Request.URL.Path})
}

// handlePanic is the last line of defence: it turns a panic into a 500 response
func (app *App) handlePanic(c *gin.Context, recovered any) {
	app.logger.Error("recovered from panic",
		"method", c.Request.Method,
		"path", c.Request.URL.Path,
		"panic", recovered,
	)

	if isAPIRequest(c) {
		c.AbortWithStatusJSON(http.StatusInternalServerError, ErrorResponse{Error: "internal server error"})
		return
	}
	c.HTML(http.StatusInternalServerError, "500.html", nil)
	c.Abort()
}

func isAPIRequest(c *gin.Context) bool {
	return strings.HasPrefix(c.Request.URL.Path, "/api/")
}
