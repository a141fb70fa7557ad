package response

import (
	"time"

	"jetski-rentals/internal/usecase/queries"

	"github.com/jinzhu/copier"
)

type WeatherSampleResponse struct {
	Time         time.Time `json:"time"`
	TimeLabel    string    `json:"timeLabel"`
	WindKmh      float64   `json:"windKmh"`
	GustKmh      float64   `json:"gustKmh"`
	TemperatureC *float64  `json:"temperatureC,omitempty"`
	Severity     string    `json:"severity"`
}

type BestWindowResponse struct {
	StartLabel string  `json:"startLabel"`
	EndLabel   string  `json:"endLabel"`
	WindKmh    float64 `json:"windKmh"`
	Severity   string  `json:"severity"`
}

type WeatherDayResponse struct {
	DayKey     string                  `json:"dayKey"`
	DateLabel  string                  `json:"dateLabel"`
	Severity   string                  `json:"severity"`
	MaxWindKmh float64                 `json:"maxWindKmh"`
	MaxGustKmh float64                 `json:"maxGustKmh"`
	BestWindow *BestWindowResponse     `json:"bestWindow,omitempty"`
	Samples    []WeatherSampleResponse `json:"samples"`
}

type WeatherResponse struct {
	Days []WeatherDayResponse `json:"days"`
}

func FromWeatherView(view *queries.WeatherView) *WeatherResponse {
	var resp WeatherResponse
	_ = copier.Copy(&resp, view)
	return &resp
}
