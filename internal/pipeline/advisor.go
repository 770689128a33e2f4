package pipeline

import (
	"context"
	"errors"
	"log/slog"

	"github.com/couchcryptid/athlete-weather-advisory/internal/domain"
	"github.com/couchcryptid/athlete-weather-advisory/internal/observability"
)

// Sources label where an observation entered the service.
const (
	SourceKafka = "kafka"
	SourceHTTP  = "http"
)

// AdvisorOptions configures an Advisor.
type AdvisorOptions struct {
	Source       string
	DefaultUnits domain.UnitSystem
	Alerts       domain.AlertPreferences
	AlertMinTier domain.SeverityTier
}

// Advisor runs the advisory engine on wire observations and records metrics.
// It holds no mutable state and is safe for concurrent use.
type Advisor struct {
	opts    AdvisorOptions
	metrics *observability.Metrics
	logger  *slog.Logger
}

// NewAdvisor creates an Advisor.
func NewAdvisor(opts AdvisorOptions, metrics *observability.Metrics, logger *slog.Logger) *Advisor {
	if opts.DefaultUnits == "" {
		opts.DefaultUnits = domain.Metric
	}
	return &Advisor{opts: opts, metrics: metrics, logger: logger}
}

// Advise classifies msg and wraps the result in a report envelope. Invalid
// observations return an error matching domain.ErrInvalidObservation.
func (a *Advisor) Advise(_ context.Context, msg domain.ObservationMessage) (domain.AdvisoryReport, error) {
	obs := msg.Observation()
	report, err := domain.Advise(obs, msg.Display(a.opts.DefaultUnits))
	if err != nil {
		a.recordFailure(err)
		return domain.AdvisoryReport{}, err
	}

	alerts := domain.SelectAlerts(report, a.opts.Alerts, a.opts.AlertMinTier)
	out := domain.NewAdvisoryReport(msg, obs, report, alerts)
	a.recordSuccess(out)

	a.logger.Debug("advisory computed",
		"id", out.ID,
		"station", out.Station,
		"venue", report.Composite.Venue,
		"alerts", len(alerts),
	)
	return out, nil
}

func (a *Advisor) recordFailure(err error) {
	var inv *domain.InvalidObservation
	if errors.As(err, &inv) {
		a.metrics.InvalidObservations.WithLabelValues(inv.Field).Inc()
		a.metrics.AdvisoryRequests.WithLabelValues(a.opts.Source, "invalid").Inc()
		return
	}
	a.metrics.AdvisoryRequests.WithLabelValues(a.opts.Source, "error").Inc()
}

func (a *Advisor) recordSuccess(r domain.AdvisoryReport) {
	a.metrics.AdvisoryRequests.WithLabelValues(a.opts.Source, "ok").Inc()
	for _, pa := range r.Report.Parameters {
		a.metrics.BandsClassified.WithLabelValues(string(pa.Parameter), string(pa.Band)).Inc()
	}
	a.metrics.VenueDecisions.WithLabelValues(string(r.Report.Composite.Venue)).Inc()
	for _, al := range r.Alerts {
		a.metrics.AlertsRaised.WithLabelValues(string(al.Parameter), al.Tier.String()).Inc()
	}
}
