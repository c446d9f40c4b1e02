package main

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

const serviceName = "weather-app"

// PingResponse represents the response for the ping endpoint
type PingResponse struct {
	Message string `json:"message" example:"pong"`        // Response message
	Service string `json:"service" example:"weather-app"` // Service name
	Time    string `json:"time" example:"2025-01-15T10:30:00Z"`
}

// handlePing godoc
// @Summary Ping health check
// @Description Check if the server is running. The upstream provider is not contacted.
// @Tags health
// @Produce json
// @Success 200 {object} PingResponse
// @Router /ping [get]
func (app *App) handlePing(c *gin.Context) {
	c.JSON(http.StatusOK, PingResponse{
		Message: "pong",
		Service: serviceName,
		Time:    time.Now().UTC().Format(time.RFC3339),
	})
}
