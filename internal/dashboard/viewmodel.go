package dashboard

import (
	"github.com/five82/nimbus/internal/display"
	"github.com/five82/nimbus/internal/weatherapi"
)

// ViewModel is everything the UI needs for one render. When Found is false
// only Message and Query are set.
type ViewModel struct {
	Query    string
	Found    bool
	Message  string
	Card     Card
	Metrics  Metrics
	Guidance Guidance
	Today    Today
}

// Card is the headline block.
type Card struct {
	Location  string
	Country   string
	Emoji     string
	TempC     float64
	Condition string
	Tint      display.Tint
}

// Metrics are the raw current values.
type Metrics struct {
	Humidity   int
	FeelsLikeC float64
	UV         float64
	Moon       string
}

// Guidance holds the derived hints.
type Guidance struct {
	Clothing string
	Caution  string
}

// Today summarizes the one-day forecast.
type Today struct {
	HighC        float64
	LowC         float64
	ChanceOfRain int
	Sunrise      string
	Sunset       string
}

// Render derives the view from one fetch result. It is pure: any error, or a
// missing report, yields the failure view with nothing else populated.
func Render(report *weatherapi.Report, err error) ViewModel {
	if err != nil || report == nil {
		return ViewModel{Message: NotFoundMessage}
	}
	return ViewModel{
		Found: true,
		Card: Card{
			Location:  report.Location,
			Country:   report.Country,
			Emoji:     display.Emoji(report.Condition),
			TempC:     report.TempC,
			Condition: report.Condition,
			Tint:      display.Background(report.TempC),
		},
		Metrics: Metrics{
			Humidity:   report.Humidity,
			FeelsLikeC: report.FeelsLikeC,
			UV:         report.UV,
			Moon:       display.MoonLabel(report.MoonPhase),
		},
		Guidance: Guidance{
			Clothing: display.Clothing(report.TempC),
			Caution:  display.Caution(report.Condition, report.UV),
		},
		Today: Today{
			HighC:        report.Today.MaxTempC,
			LowC:         report.Today.MinTempC,
			ChanceOfRain: report.Today.ChanceOfRain,
			Sunrise:      report.Today.Sunrise,
			Sunset:       report.Today.Sunset,
		},
	}
}
