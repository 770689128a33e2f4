package domain

import (
	"math"
	"strings"
)

// AirQuality is the categorical air-quality reading supplied by the weather
// collaborator. The zero value means no reading was available.
type AirQuality string

const (
	AirQualityExcellent AirQuality = "Excellent"
	AirQualityGood      AirQuality = "Good"
	AirQualityModerate  AirQuality = "Moderate"
	AirQualityPoor      AirQuality = "Poor"
	AirQualityVeryPoor  AirQuality = "Very Poor"
)

// Valid reports whether q is one of the five recognized categories.
func (q AirQuality) Valid() bool {
	switch q {
	case AirQualityExcellent, AirQualityGood, AirQualityModerate, AirQualityPoor, AirQualityVeryPoor:
		return true
	default:
		return false
	}
}

// Observation is a single set of raw environmental readings. Values are metric.
// Condition is a free-text label and is only inspected for snow.
type Observation struct {
	TemperatureC     float64    `json:"temperature_c"`
	HumidityPct      int        `json:"humidity_pct"`
	WindSpeedKmh     float64    `json:"wind_speed_kmh"`
	UVIndex          int        `json:"uv_index"`
	PrecipitationPct int        `json:"precipitation_pct"`
	AirQuality       AirQuality `json:"air_quality"`
	Condition        string     `json:"condition,omitempty"`
}

// IsSnow reports whether the condition label mentions snow, ignoring case.
func (o Observation) IsSnow() bool {
	return mentionsSnow(o.Condition)
}

func mentionsSnow(condition string) bool {
	return strings.Contains(strings.ToLower(condition), "snow")
}

// Parameter identifies one of the six classified weather parameters.
type Parameter string

const (
	ParamTemperature   Parameter = "temperature"
	ParamHumidity      Parameter = "humidity"
	ParamWind          Parameter = "wind"
	ParamUVIndex       Parameter = "uvIndex"
	ParamPrecipitation Parameter = "precipitation"
	ParamAirQuality    Parameter = "airQuality"
)

// AllParameters returns the six parameters in evaluation order.
func AllParameters() []Parameter {
	return []Parameter{
		ParamTemperature,
		ParamHumidity,
		ParamWind,
		ParamUVIndex,
		ParamPrecipitation,
		ParamAirQuality,
	}
}

// UnitSystem selects how readings are expressed to the user.
type UnitSystem string

const (
	Metric   UnitSystem = "metric"
	Imperial UnitSystem = "imperial"
)

// ParseUnitSystem maps a preference string to a UnitSystem. Anything other than
// "imperial" (case-insensitive) is metric.
func ParseUnitSystem(s string) UnitSystem {
	if strings.EqualFold(strings.TrimSpace(s), string(Imperial)) {
		return Imperial
	}
	return Metric
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
