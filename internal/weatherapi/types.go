package weatherapi

import (
	"errors"
	"fmt"
	"strings"
)

// Provider error code for an unresolvable location query.
const codeNoMatchingLocation = 1006

var (
	// ErrLocationNotFound matches APIErrors for queries the provider could not resolve.
	ErrLocationNotFound = errors.New("location not found")
	// ErrIncompleteReport is returned when a success payload lacks today's forecast.
	ErrIncompleteReport = errors.New("incomplete forecast payload")
)

// APIError is the provider's error object.
type APIError struct {
	Status  int
	Code    int
	Message string
}

func (e *APIError) Error() string {
	msg := strings.TrimSpace(e.Message)
	if msg == "" {
		msg = "unknown provider error"
	}
	return fmt.Sprintf("provider error %d: %s", e.Code, msg)
}

// NotFound reports whether the provider could not resolve the query.
func (e *APIError) NotFound() bool {
	return e != nil && e.Code == codeNoMatchingLocation
}

// Is lets errors.Is(err, ErrLocationNotFound) match not-found provider errors.
func (e *APIError) Is(target error) bool {
	return target == ErrLocationNotFound && e.NotFound()
}

// Report is a fully populated weather report for one query.
type Report struct {
	Location   string
	Region     string
	Country    string
	LocalTime  string
	TempC      float64
	Condition  string
	Humidity   int
	FeelsLikeC float64
	UV         float64
	WindKPH    float64
	MoonPhase  string
	Today      ForecastDay
}

// ForecastDay summarizes today's forecast block.
type ForecastDay struct {
	Date         string
	MaxTempC     float64
	MinTempC     float64
	ChanceOfRain int
	Condition    string
	Sunrise      string
	Sunset       string
	MoonPhase    string
}

// forecastResponse mirrors the forecast.json payload.
type forecastResponse struct {
	Location struct {
		Name      string `json:"name"`
		Region    string `json:"region"`
		Country   string `json:"country"`
		LocalTime string `json:"localtime"`
	} `json:"location"`
	Current  *currentInfo `json:"current"`
	Forecast struct {
		ForecastDay []forecastDay `json:"forecastday"`
	} `json:"forecast"`
}

type currentInfo struct {
	TempC     float64       `json:"temp_c"`
	Condition conditionInfo `json:"condition"`
	Humidity  int           `json:"humidity"`
	FeelsLike float64       `json:"feelslike_c"`
	UV        float64       `json:"uv"`
	WindKPH   float64       `json:"wind_kph"`
}

type conditionInfo struct {
	Text string `json:"text"`
}

type forecastDay struct {
	Date string `json:"date"`
	Day  struct {
		MaxTempC          float64       `json:"maxtemp_c"`
		MinTempC          float64       `json:"mintemp_c"`
		DailyChanceOfRain int           `json:"daily_chance_of_rain"`
		Condition         conditionInfo `json:"condition"`
	} `json:"day"`
	Astro struct {
		Sunrise   string `json:"sunrise"`
		Sunset    string `json:"sunset"`
		MoonPhase string `json:"moon_phase"`
	} `json:"astro"`
}

func (r forecastResponse) report() (*Report, error) {
	if len(r.Forecast.ForecastDay) == 0 {
		return nil, ErrIncompleteReport
	}
	if strings.TrimSpace(r.Location.Name) == "" {
		return nil, fmt.Errorf("%w: missing location name", ErrIncompleteReport)
	}
	cur := r.Current
	if cur == nil || strings.TrimSpace(cur.Condition.Text) == "" {
		return nil, fmt.Errorf("%w: missing current conditions", ErrIncompleteReport)
	}
	day := r.Forecast.ForecastDay[0]
	return &Report{
		Location:   r.Location.Name,
		Region:     r.Location.Region,
		Country:    r.Location.Country,
		LocalTime:  r.Location.LocalTime,
		TempC:      cur.TempC,
		Condition:  cur.Condition.Text,
		Humidity:   cur.Humidity,
		FeelsLikeC: cur.FeelsLike,
		UV:         cur.UV,
		WindKPH:    cur.WindKPH,
		MoonPhase:  day.Astro.MoonPhase,
		Today: ForecastDay{
			Date:         day.Date,
			MaxTempC:     day.Day.MaxTempC,
			MinTempC:     day.Day.MinTempC,
			ChanceOfRain: day.Day.DailyChanceOfRain,
			Condition:    day.Day.Condition.Text,
			Sunrise:      day.Astro.Sunrise,
			Sunset:       day.Astro.Sunset,
			MoonPhase:    day.Astro.MoonPhase,
		},
	}, nil
}
