package main

import (
	"net/http"

	"weather-app/internal/weather"

	"github.com/gin-gonic/gin"
)

// ErrorResponse is the JSON body for failed lookups
type ErrorResponse struct {
	Error string `json:"error" example:"city not found"`
}

// handleIndex renders the empty search form
func (app *App) handleIndex(c *gin.Context) {
	app.renderIndex(c, "", nil)
}

// handleLookup looks up the submitted city and renders the result or its error message
func (app *App) handleLookup(c *gin.Context) {
	city := c.PostForm("city")
	result := app.weatherService.Lookup(c.Request.Context(), city)
	app.renderIndex(c, city, &result)
}

func (app *App) renderIndex(c *gin.Context, city string, result *weather.Result) {
	bgColor := weather.DefaultColor
	if result != nil {
		bgColor = result.BackgroundColor()
	}

	c.HTML(http.StatusOK, "index.html", gin.H{
		"City":    city,
		"Result":  result,
		"BgColor": bgColor,
	})
}

// handleGetWeather godoc
// @Summary Get current weather
// @Description Look up current conditions for a city. Failures carry the same messages as the HTML page.
// @Tags weather
// @Produce json
// @Param city query string true "City name" example(London)
// @Success 200 {object} weather.Report
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Router /api/weather [get]
func (app *App) handleGetWeather(c *gin.Context) {
	result := app.weatherService.Lookup(c.Request.Context(), c.Query("city"))
	if result.OK() {
		c.JSON(http.StatusOK, result.Report)
		return
	}

	c.JSON(statusForOutcome(result.Outcome), ErrorResponse{Error: result.Message})
}

func statusForOutcome(outcome weather.Outcome) int {
	switch outcome {
	case weather.OutcomeSuccess:
		return http.StatusOK
	case weather.OutcomeValidationError:
		return http.StatusBadRequest
	case weather.OutcomeNotFoundError:
		return http.StatusNotFound
	case weather.OutcomeProviderError, weather.OutcomeNetworkError:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
