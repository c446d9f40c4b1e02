package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// registerRoutes sets up all endpoints
func (app *App) registerRoutes() {
	// HTML front end
	app.router.GET("/", app.handleIndex)
	app.router.POST("/", app.handleLookup)

	// Health check endpoint
	app.router.GET("/ping", app.handlePing)

	// JSON API
	api := app.router.Group("/api")
	api.GET("/weather", app.handleGetWeather)

	// Swagger documentation
	app.router.GET("/swagger/*any", func(c *gin.Context) {
		path := c.Param("any")
		if path == "/" {
			c.Redirect(http.StatusMovedPermanently, "/swagger/index.html")
			return
		}
		ginSwagger.WrapHandler(swaggerFiles.Handler)(c)
	})

	app.router.NoRoute(app.handleNotFound)
}
