package weather

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"weather-app/internal/config"
	"weather-app/internal/providers/openweathermap"
	"weather-app/internal/types"
)

const iconURLFormat = "https://openweathermap.org/img/wn/%s@2x.png"

type CurrentWeatherProvider interface {
	// CurrentWeather fetches current conditions for a city name
	CurrentWeather(ctx context.Context, city string) (*openweathermap.CurrentWeatherResponse, error)
}

type Service interface {
	// Lookup never fails: every error is folded into the returned Result
	Lookup(ctx context.Context, city string) Result
}

type weatherService struct {
	provider CurrentWeatherProvider
	colors   ColorMap
	logger   *slog.Logger
}

func NewWeatherService(cfg *config.Config, logger *slog.Logger) Service {
	return NewWeatherServiceWithProvider(openweathermap.NewClient(cfg.Provider, logger), DefaultColorMap(), logger)
}

func NewWeatherServiceWithProvider(provider CurrentWeatherProvider, colors ColorMap, logger *slog.Logger) Service {
	return &weatherService{
		provider: provider,
		colors:   colors,
		logger:   logger.With("component", "weather-service"),
	}
}

func (s *weatherService) Lookup(ctx context.Context, city string) (result Result) {
	city = strings.TrimSpace(city)
	if city == "" {
		s.logger.Info("rejected lookup without city")
		return failure(OutcomeValidationError, MsgEmptyCity)
	}

	defer func() {
		if r := recover(); r != nil {
			s.logger.Error("recovered panic during lookup", "city", city, "panic", r)
			result = unexpected(fmt.Errorf("%v", r))
		}
	}()

	s.logger.Info("looking up current weather", "city", city)

	resp, err := s.provider.CurrentWeather(ctx, city)
	if err != nil {
		result = s.classify(city, err)
		s.logger.Error("weather lookup failed",
			"city", city,
			"outcome", result.Outcome.String(),
			"error", err,
		)
		return result
	}

	report, err := s.mapReport(resp)
	if err != nil {
		s.logger.Error("failed to map weather response", "city", city, "error", err)
		return unexpected(err)
	}

	s.logger.Info("weather lookup succeeded",
		"city", city,
		"resolved_name", report.City,
		"condition", report.Condition,
		"bg_color", report.BackgroundColor,
	)

	return Result{Outcome: OutcomeSuccess, Report: report}
}

func (s *weatherService) classify(city string, err error) Result {
	var apiErr *openweathermap.APIError
	var netErr *openweathermap.NetworkError

	switch {
	case errors.As(err, &apiErr):
		if apiErr.IsNotFound() {
			return failure(OutcomeNotFoundError, messageOr(apiErr.Message, fmt.Sprintf("City '%s' not found", city)))
		}
		return failure(OutcomeProviderError, messageOr(apiErr.Message, fmt.Sprintf("Weather provider returned code %d", apiErr.Code)))
	case errors.As(err, &netErr):
		return failure(OutcomeNetworkError, fmt.Sprintf("Network error occurred: %v", netErr.Err))
	default:
		return unexpected(err)
	}
}

func (s *weatherService) mapReport(resp *openweathermap.CurrentWeatherResponse) (*Report, error) {
	if resp == nil {
		return nil, errors.New("weather response is nil")
	}
	if len(resp.Weather) == 0 {
		return nil, errors.New("weather response contains no conditions")
	}

	condition := resp.Weather[0]
	report := &Report{
		City:            resp.Name,
		Country:         resp.Sys.Country,
		Temperature:     types.NewTemperatureFromCelsius(resp.Main.Temp),
		FeelsLike:       types.NewTemperatureFromCelsius(resp.Main.FeelsLike),
		Description:     titleCase(condition.Description),
		Humidity:        resp.Main.Humidity,
		Wind:            types.NewWindFromMps(resp.Wind.Speed, resp.Wind.Deg),
		Icon:            condition.Icon,
		Condition:       condition.Main,
		BackgroundColor: s.colors.Lookup(condition.Main),
	}
	if condition.Icon != "" {
		report.IconURL = fmt.Sprintf(iconURLFormat, condition.Icon)
	}

	return report, nil
}

func messageOr(message, fallback string) string {
	if message == "" {
		return fallback
	}
	return message
}

// titleCase capitalizes the first letter of each word, e.g. "light rain" -> "Light Rain".
// A Caser is stateful, so one is built per call.
func titleCase(s string) string {
	return cases.Title(language.Und).String(s)
}
