package weather

import (
	"fmt"

	"weather-app/internal/types"
)

// Outcome tags a lookup Result
type Outcome int

const (
	OutcomeSuccess Outcome = iota
	OutcomeValidationError
	OutcomeNotFoundError
	OutcomeProviderError
	OutcomeNetworkError
	OutcomeUnexpectedError
)

func (o Outcome) String() string {
	switch o {
	case OutcomeSuccess:
		return "success"
	case OutcomeValidationError:
		return "validation_error"
	case OutcomeNotFoundError:
		return "not_found_error"
	case OutcomeProviderError:
		return "provider_error"
	case OutcomeNetworkError:
		return "network_error"
	case OutcomeUnexpectedError:
		return "unexpected_error"
	default:
		return fmt.Sprintf("unknown (%d)", int(o))
	}
}

// User-facing messages
const (
	MsgEmptyCity = "Please enter a city name"
)

// Result is the view model handed to the rendering layer.
// Report is set only when Outcome is OutcomeSuccess; Message only otherwise.
type Result struct {
	Outcome Outcome
	Report  *Report
	Message string
}

// OK reports whether the lookup produced weather data
func (r Result) OK() bool {
	return r.Outcome == OutcomeSuccess && r.Report != nil
}

// BackgroundColor is the page color for this result
func (r Result) BackgroundColor() string {
	if r.OK() {
		return r.Report.BackgroundColor
	}
	return DefaultColor
}

// Report is the normalized current-weather data for one city
type Report struct {
	City            string            `json:"city"`
	Country         string            `json:"country,omitempty"`
	Temperature     types.Temperature `json:"temperature"`
	FeelsLike       types.Temperature `json:"feels_like"`
	Description     string            `json:"description"`
	Humidity        int               `json:"humidity"`
	Wind            types.Wind        `json:"wind"`
	Icon            string            `json:"icon"`
	IconURL         string            `json:"icon_url,omitempty"`
	Condition       string            `json:"condition"`
	BackgroundColor string            `json:"bg_color"`
}

func failure(outcome Outcome, message string) Result {
	return Result{Outcome: outcome, Message: message}
}

func unexpected(err error) Result {
	return failure(OutcomeUnexpectedError, fmt.Sprintf("An unexpected error occurred: %v", err))
}
