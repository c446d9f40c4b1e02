package openweathermap

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// Code is the provider's body-level status. OpenWeatherMap sends it as a
// number on success and as a string ("404") on most errors.
type Code int

const CodeOK Code = 200

func (c *Code) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		return nil
	}

	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		n, err := strconv.Atoi(s)
		if err != nil {
			return fmt.Errorf("invalid cod %q: %w", s, err)
		}
		*c = Code(n)
		return nil
	}

	var n int
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("invalid cod %s: %w", string(data), err)
	}
	*c = Code(n)
	return nil
}

type CurrentWeatherResponse struct {
	Cod     Code   `json:"cod"`
	Message string `json:"message,omitempty"`
	Id      int    `json:"id"`
	Name    string `json:"name"`
	Sys     struct {
		Country string `json:"country"`
	} `json:"sys"`
	Main struct {
		Temp      float64 `json:"temp"`
		FeelsLike float64 `json:"feels_like"`
		Humidity  int     `json:"humidity"`
		Pressure  int     `json:"pressure"`
	} `json:"main"`
	Wind struct {
		Speed float64 `json:"speed"`
		Deg   float64 `json:"deg"`
	} `json:"wind"`
	Weather []Condition `json:"weather"`
}

type Condition struct {
	Id          int    `json:"id"`
	Main        string `json:"main"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

// errorBody is the subset of an error response needed for classification.
// Message is decoded loosely because some gateways put non-string values there.
type errorBody struct {
	Cod     *Code           `json:"cod"`
	Message json.RawMessage `json:"message"`
}

func (b errorBody) message() string {
	if len(b.Message) == 0 {
		return ""
	}
	var s string
	if err := json.Unmarshal(b.Message, &s); err == nil {
		return s
	}
	return ""
}
