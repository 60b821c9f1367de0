package analytics

import (
	"fmt"
	"time"

	"github.com/BadarHossain1/maplenest-admin-api/models"
)

const (
	DefaultAlpha   = 0.5
	DefaultHistory = 12
	DefaultHorizon = 3

	MinHistory = 2
	MaxHistory = 36
	MaxHorizon = 12
)

// ForecastOptions configures ForecastRevenue. ForecastRevenue fills zero
// fields with the defaults; Validate checks the values as given.
type ForecastOptions struct {
	Alpha   float64
	History int
	Horizon int
}

func DefaultForecastOptions() ForecastOptions {
	return ForecastOptions{Alpha: DefaultAlpha, History: DefaultHistory, Horizon: DefaultHorizon}
}

func (o ForecastOptions) withDefaults() ForecastOptions {
	if o.Alpha == 0 {
		o.Alpha = DefaultAlpha
	}
	if o.History == 0 {
		o.History = DefaultHistory
	}
	if o.Horizon == 0 {
		o.Horizon = DefaultHorizon
	}
	return o
}

func (o ForecastOptions) Validate() error {
	if o.Alpha <= 0 || o.Alpha > 1 {
		return fmt.Errorf("alpha must be in (0, 1], got %v", o.Alpha)
	}
	if o.History < MinHistory || o.History > MaxHistory {
		return fmt.Errorf("history must be between %d and %d months", MinHistory, MaxHistory)
	}
	if o.Horizon < 1 || o.Horizon > MaxHorizon {
		return fmt.Errorf("horizon must be between 1 and %d months", MaxHorizon)
	}
	return nil
}

// ExponentialSmoothing applies simple exponential smoothing:
// s0 = x0, s_t = alpha*x_t + (1-alpha)*s_{t-1}.
func ExponentialSmoothing(series []float64, alpha float64) []float64 {
	out := make([]float64, len(series))
	for i, x := range series {
		if i == 0 {
			out[i] = x
			continue
		}
		out[i] = alpha*x + (1-alpha)*out[i-1]
	}
	return out
}

// ForecastRevenue smooths the monthly revenue series ending at the month of
// now and projects it flat at the final level for the horizon.
func ForecastRevenue(orders []models.Order, now time.Time, opts ForecastOptions) (models.RevenueForecast, error) {
	opts = opts.withDefaults()
	if err := opts.Validate(); err != nil {
		return models.RevenueForecast{}, err
	}

	monthly := MonthlyRevenue(orders, now, opts.History)
	series := make([]float64, len(monthly))
	for i, m := range monthly {
		series[i] = m.Revenue
	}
	smoothed := ExponentialSmoothing(series, opts.Alpha)

	history := make([]models.ForecastPoint, len(monthly))
	for i, m := range monthly {
		s := round2(smoothed[i])
		history[i] = models.ForecastPoint{Month: m.Month, Revenue: m.Revenue, Smoothed: &s}
	}

	level := 0.0
	if len(smoothed) > 0 {
		level = round2(smoothed[len(smoothed)-1])
	}

	last := monthIndex(now)
	forecast := make([]models.ForecastPoint, opts.Horizon)
	for h := 0; h < opts.Horizon; h++ {
		forecast[h] = models.ForecastPoint{Month: monthKey(last + h + 1), Revenue: level}
	}

	return models.RevenueForecast{
		Alpha:    opts.Alpha,
		Level:    level,
		History:  history,
		Forecast: forecast,
	}, nil
}

func round2(f float64) float64 {
	return cents(dec(f))
}
