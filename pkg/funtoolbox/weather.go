package funtoolbox

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"

	"github.com/germanamz/weekender/pkg/tools/toolbox"
)

const defaultWeatherURL = "https://api.open-meteo.com/v1/forecast"

type weatherArgs struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type weatherResult struct {
	OK          bool    `json:"ok"`
	Temperature float64 `json:"temperature"`
	WindSpeed   float64 `json:"wind_speed"`
	Description string  `json:"description"`
}

func (f *FunTools) weatherTool() toolbox.Tool {
	return toolbox.Tool{
		Name:        "get_weather",
		Description: "Current weather at coordinates via Open-Meteo.",
		InputSchema: json.RawMessage(`{
			"type": "object",
			"properties": {
				"latitude": {"type": "number", "description": "Latitude in decimal degrees"},
				"longitude": {"type": "number", "description": "Longitude in decimal degrees"}
			},
			"required": ["latitude", "longitude"]
		}`),
		Handler: f.getWeather,
	}
}

func (f *FunTools) getWeather(ctx context.Context, input json.RawMessage) (string, error) {
	var args weatherArgs
	if len(input) > 0 {
		if err := json.Unmarshal(input, &args); err != nil {
			return "", fmt.Errorf("funtoolbox: get_weather arguments: %w", err)
		}
	}

	params := url.Values{}
	params.Set("latitude", strconv.FormatFloat(args.Latitude, 'f', -1, 64))
	params.Set("longitude", strconv.FormatFloat(args.Longitude, 'f', -1, 64))
	params.Set("current", "temperature_2m,weather_code,wind_speed_10m")
	params.Set("timezone", "auto")

	var resp struct {
		Current struct {
			Temperature float64 `json:"temperature_2m"`
			WeatherCode int     `json:"weather_code"`
			WindSpeed   float64 `json:"wind_speed_10m"`
		} `json:"current"`
	}
	if err := f.getJSON(ctx, f.weatherURL, params, &resp); err != nil {
		return "", err
	}

	return marshalResult(weatherResult{
		OK:          true,
		Temperature: resp.Current.Temperature,
		WindSpeed:   resp.Current.WindSpeed,
		Description: weatherDescription(resp.Current.WeatherCode),
	})
}

// weatherDescription maps WMO weather interpretation codes (as used by
// Open-Meteo) to short human-readable conditions.
func weatherDescription(code int) string {
	switch code {
	case 0:
		return "clear sky"
	case 1:
		return "mainly clear"
	case 2:
		return "partly cloudy"
	case 3:
		return "overcast"
	case 45, 48:
		return "fog"
	case 51, 53, 55:
		return "drizzle"
	case 56, 57:
		return "freezing drizzle"
	case 61, 63, 65:
		return "rain"
	case 66, 67:
		return "freezing rain"
	case 71, 73, 75:
		return "snowfall"
	case 77:
		return "snow grains"
	case 80, 81, 82:
		return "rain showers"
	case 85, 86:
		return "snow showers"
	case 95:
		return "thunderstorm"
	case 96, 99:
		return "thunderstorm with hail"
	default:
		return "unknown conditions"
	}
}
