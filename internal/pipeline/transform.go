package pipeline

import (
	"context"

	"github.com/couchcryptid/athlete-weather-advisory/internal/domain"
)

// AdvisoryTransformer implements Transformer by parsing an observation
// message and publishing its advisory report.
type AdvisoryTransformer struct {
	advisor *Advisor
}

// NewTransformer creates an AdvisoryTransformer backed by advisor.
func NewTransformer(advisor *Advisor) *AdvisoryTransformer {
	return &AdvisoryTransformer{advisor: advisor}
}

func (t *AdvisoryTransformer) Transform(ctx context.Context, raw domain.RawEvent) (domain.OutputEvent, error) {
	msg, err := domain.ParseObservationMessage(raw.Value)
	if err != nil {
		t.advisor.recordFailure(err)
		return domain.OutputEvent{}, err
	}

	report, err := t.advisor.Advise(ctx, msg)
	if err != nil {
		return domain.OutputEvent{}, err
	}
	return domain.SerializeAdvisoryReport(report)
}
