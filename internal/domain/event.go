package domain

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// RawEvent represents an unprocessed message from the source topic.
type RawEvent struct {
	Key       []byte
	Value     []byte
	Headers   map[string]string
	Topic     string
	Partition int
	Offset    int64
	Timestamp time.Time
	Commit    func(ctx context.Context) error
}

// OutputEvent is the serialized form destined for the sink topic.
type OutputEvent struct {
	Key     []byte
	Value   []byte
	Headers map[string]string
}

// ObservationMessage is the wire form of an observation, shared by the source
// topic and the HTTP API. Units defaults to metric.
type ObservationMessage struct {
	ID            string     `json:"id,omitempty" validate:"max=128"`
	Station       string     `json:"station,omitempty" validate:"max=128"`
	ObservedAt    time.Time  `json:"observed_at,omitempty"`
	Units         UnitSystem `json:"units,omitempty" validate:"omitempty,oneof=metric imperial"`
	DisplayUnits  UnitSystem `json:"display_units,omitempty" validate:"omitempty,oneof=metric imperial"`
	Temperature   *float64   `json:"temperature" field:"temperatureC" validate:"required"`
	Humidity      *int       `json:"humidity" field:"humidityPct" validate:"required"`
	WindSpeed     *float64   `json:"wind_speed" field:"windSpeedKmh" validate:"required"`
	UVIndex       *int       `json:"uv_index" field:"uvIndex" validate:"required"`
	Precipitation *int       `json:"precipitation" field:"precipitationPct" validate:"required"`
	AirQuality    AirQuality `json:"air_quality,omitempty" field:"airQuality"`
	Condition     string     `json:"condition,omitempty" validate:"max=256"`
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Readings report the same field names as the classifiers; the rest use
	// their JSON names.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		if name := fld.Tag.Get("field"); name != "" {
			return name
		}
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// ParseObservationMessage decodes and validates a wire observation. Structural
// problems are reported as *InvalidObservation naming the JSON field.
func ParseObservationMessage(data []byte) (ObservationMessage, error) {
	var msg ObservationMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		return ObservationMessage{}, fmt.Errorf("parse observation: %w", err)
	}
	if err := msg.Validate(); err != nil {
		return ObservationMessage{}, err
	}
	return msg, nil
}

// Validate checks presence of the readings and the unit enums.
func (m ObservationMessage) Validate() error {
	err := validate.Struct(m)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		return invalid(fe.Field(), "failed %q validation", fe.Tag())
	}
	return fmt.Errorf("validate observation: %w", err)
}

// Observation converts the message to canonical metric units.
func (m ObservationMessage) Observation() Observation {
	obs := Observation{
		AirQuality: m.AirQuality,
		Condition:  m.Condition,
	}
	if m.Temperature != nil {
		obs.TemperatureC = *m.Temperature
	}
	if m.Humidity != nil {
		obs.HumidityPct = *m.Humidity
	}
	if m.WindSpeed != nil {
		obs.WindSpeedKmh = *m.WindSpeed
	}
	if m.UVIndex != nil {
		obs.UVIndex = *m.UVIndex
	}
	if m.Precipitation != nil {
		obs.PrecipitationPct = *m.Precipitation
	}
	if m.Units == Imperial {
		obs.TemperatureC = FahrenheitToCelsius(obs.TemperatureC)
		obs.WindSpeedKmh = ToKmh(obs.WindSpeedKmh)
	}
	return obs
}

// Display returns the unit system readings should be reported in: DisplayUnits,
// then Units, then fallback.
func (m ObservationMessage) Display(fallback UnitSystem) UnitSystem {
	if m.DisplayUnits != "" {
		return m.DisplayUnits
	}
	if m.Units != "" {
		return m.Units
	}
	return fallback
}

// AdvisoryReport is the envelope published for each processed observation.
type AdvisoryReport struct {
	ID          string      `json:"id"`
	SourceID    string      `json:"source_id,omitempty"`
	Station     string      `json:"station,omitempty"`
	ObservedAt  time.Time   `json:"observed_at,omitempty"`
	Observation Observation `json:"observation"`
	Report      Report      `json:"report"`
	Alerts      []Alert     `json:"alerts,omitempty"`
	ProcessedAt time.Time   `json:"processed_at"`
}

var reportNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("github.com/couchcryptid/athlete-weather-advisory/report"))

// NewAdvisoryReport wraps report with a deterministic ID derived from the
// station, observation time, and canonical readings, and stamps ProcessedAt.
// Replaying the same observation yields the same ID.
func NewAdvisoryReport(msg ObservationMessage, obs Observation, report Report, alerts []Alert) AdvisoryReport {
	return AdvisoryReport{
		ID:          reportID(msg.Station, msg.ObservedAt, obs),
		SourceID:    msg.ID,
		Station:     msg.Station,
		ObservedAt:  msg.ObservedAt,
		Observation: obs,
		Report:      report,
		Alerts:      alerts,
		ProcessedAt: clock.Now().UTC(),
	}
}

func reportID(station string, observedAt time.Time, obs Observation) string {
	input := fmt.Sprintf("%s|%s|%.4f|%d|%.4f|%d|%d|%s|%s",
		station, observedAt.UTC().Format(time.RFC3339),
		obs.TemperatureC, obs.HumidityPct, obs.WindSpeedKmh,
		obs.UVIndex, obs.PrecipitationPct, obs.AirQuality, strings.ToLower(obs.Condition))
	return uuid.NewSHA1(reportNamespace, []byte(input)).String()
}

// SerializeAdvisoryReport encodes the report for the sink topic, keyed by ID.
func SerializeAdvisoryReport(r AdvisoryReport) (OutputEvent, error) {
	value, err := json.Marshal(r)
	if err != nil {
		return OutputEvent{}, fmt.Errorf("serialize advisory report: %w", err)
	}
	return OutputEvent{
		Key:   []byte(r.ID),
		Value: value,
		Headers: map[string]string{
			"venue":        string(r.Report.Composite.Venue),
			"processed_at": r.ProcessedAt.Format(time.RFC3339),
		},
	}, nil
}
