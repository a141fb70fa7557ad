package weatherapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"net/http"
	"net/url"
	"strings"
	"time"

	"jetski-rentals/internal/domain/weather"
	"jetski-rentals/internal/infra"
	"jetski-rentals/internal/pkg/config"
)

// hourlyTimeLayout is the timestamp format Open-Meteo uses for hourly
// series (no zone suffix; the zone is requested separately).
const hourlyTimeLayout = "2006-01-02T15:04"

const hourlyFields = "wind_speed_10m,wind_gusts_10m,temperature_2m,wind_direction_10m,weather_code"

// Client fetches the hourly marine forecast for the ride spot from an
// Open-Meteo compatible endpoint.
type Client struct {
	baseURL    string
	latitude   float64
	longitude  float64
	days       int
	httpClient *http.Client
}

func NewClient(cfg config.WeatherConfig) *Client {
	days := cfg.ForecastDays
	if days <= 0 {
		days = 7
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		baseURL:   strings.TrimRight(cfg.BaseURL, "/"),
		latitude:  cfg.Latitude,
		longitude: cfg.Longitude,
		days:      days,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

type forecastResponse struct {
	Hourly hourlySeries `json:"hourly"`
}

// Parallel arrays, index-aligned on Time. Values may be null.
type hourlySeries struct {
	Time         []string   `json:"time"`
	WindSpeed    []*float64 `json:"wind_speed_10m"`
	WindGusts    []*float64 `json:"wind_gusts_10m"`
	Temperature  []*float64 `json:"temperature_2m"`
	WindDir      []*float64 `json:"wind_direction_10m"`
	WeatherCodes []*int     `json:"weather_code"`
}

// Forecast retrieves the hourly series and flattens it into samples.
// Missing wind readings become NaN so the classifier can degrade them
// instead of dropping the hour.
func (c *Client) Forecast(ctx context.Context) ([]weather.Sample, error) {
	query := url.Values{}
	query.Set("latitude", fmt.Sprintf("%.4f", c.latitude))
	query.Set("longitude", fmt.Sprintf("%.4f", c.longitude))
	query.Set("hourly", hourlyFields)
	query.Set("forecast_days", fmt.Sprintf("%d", c.days))
	query.Set("wind_speed_unit", "kmh")
	query.Set("timezone", "auto")

	endpoint := c.baseURL + "/v1/forecast?" + query.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, infra.WrapGatewayErr("build forecast request", err, infra.KindBadResponse)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, infra.WrapGatewayErr("forecast request failed", err, infra.KindUnavailable)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		payload, _ := io.ReadAll(io.LimitReader(resp.Body, 4<<10))
		msg := fmt.Sprintf("forecast responded %d: %s", resp.StatusCode, string(payload))
		if resp.StatusCode >= 500 {
			return nil, infra.WrapGatewayErr(msg, nil, infra.KindUnavailable)
		}
		return nil, infra.WrapGatewayErr(msg, nil, infra.KindBadResponse)
	}

	var raw forecastResponse
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, infra.WrapGatewayErr("decode forecast response", err, infra.KindBadResponse)
	}

	return flattenSeries(raw.Hourly), nil
}

func flattenSeries(series hourlySeries) []weather.Sample {
	samples := make([]weather.Sample, 0, len(series.Time))
	for i, raw := range series.Time {
		ts, err := time.Parse(hourlyTimeLayout, raw)
		if err != nil {
			continue
		}
		samples = append(samples, weather.Sample{
			Time:         ts,
			WindKmh:      floatAt(series.WindSpeed, i),
			GustKmh:      floatAt(series.WindGusts, i),
			TemperatureC: ptrAt(series.Temperature, i),
			DirectionDeg: ptrAt(series.WindDir, i),
			WeatherCode:  intPtrAt(series.WeatherCodes, i),
		})
	}
	return samples
}

func floatAt(values []*float64, i int) float64 {
	if i >= len(values) || values[i] == nil {
		return math.NaN()
	}
	return *values[i]
}

func ptrAt(values []*float64, i int) *float64 {
	if i >= len(values) {
		return nil
	}
	return values[i]
}

func intPtrAt(values []*int, i int) *int {
	if i >= len(values) {
		return nil
	}
	return values[i]
}
