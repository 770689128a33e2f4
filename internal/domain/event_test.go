package domain

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testObservationJSON = `{
	"id": "obs-001",
	"station": "riverside-track",
	"observed_at": "2026-06-01T07:30:00Z",
	"temperature": 28,
	"humidity": 65,
	"wind_speed": 19,
	"uv_index": 7,
	"precipitation": 15,
	"air_quality": "Good",
	"condition": "Partly cloudy"
}`

func TestParseObservationMessage(t *testing.T) {
	t.Run("metric message", func(t *testing.T) {
		msg, err := ParseObservationMessage([]byte(testObservationJSON))
		require.NoError(t, err)
		assert.Equal(t, "riverside-track", msg.Station)
		assert.Equal(t, time.Date(2026, 6, 1, 7, 30, 0, 0, time.UTC), msg.ObservedAt)
		assert.Equal(t, Metric, msg.Display(Metric))
		assert.Equal(t, Imperial, msg.Display(Imperial))
		assert.Equal(t, scenarioObservation(), msg.Observation())
	})

	t.Run("zero readings are present", func(t *testing.T) {
		msg, err := ParseObservationMessage([]byte(`{"temperature":0,"humidity":0,"wind_speed":0,"uv_index":0,"precipitation":0}`))
		require.NoError(t, err)
		assert.Equal(t, Observation{}, msg.Observation())
	})

	t.Run("imperial message converts to metric", func(t *testing.T) {
		msg, err := ParseObservationMessage([]byte(`{"units":"imperial","temperature":85,"humidity":40,"wind_speed":10,"uv_index":3,"precipitation":0}`))
		require.NoError(t, err)
		assert.Equal(t, Imperial, msg.Display(Metric))

		obs := msg.Observation()
		assert.InDelta(t, 29.444, obs.TemperatureC, 0.001)
		assert.InDelta(t, 16.09, obs.WindSpeedKmh, 1e-9)

		band, err := ClassifyTemperature(obs.TemperatureC)
		require.NoError(t, err)
		assert.Equal(t, TemperatureHot, band)
	})

	t.Run("display units override", func(t *testing.T) {
		msg, err := ParseObservationMessage([]byte(`{"units":"metric","display_units":"imperial","temperature":1,"humidity":1,"wind_speed":1,"uv_index":1,"precipitation":1}`))
		require.NoError(t, err)
		assert.Equal(t, Imperial, msg.Display(Metric))
	})

	t.Run("missing reading", func(t *testing.T) {
		_, err := ParseObservationMessage([]byte(`{"humidity":40,"wind_speed":10,"uv_index":3,"precipitation":0}`))
		assertInvalidField(t, err, FieldTemperature)
	})

	t.Run("missing readings use classifier field names", func(t *testing.T) {
		tests := []struct {
			body  string
			field string
		}{
			{`{"temperature":1,"wind_speed":1,"uv_index":1,"precipitation":1}`, FieldHumidity},
			{`{"temperature":1,"humidity":1,"uv_index":1,"precipitation":1}`, FieldWindSpeed},
			{`{"temperature":1,"humidity":1,"wind_speed":1,"precipitation":1}`, FieldUVIndex},
			{`{"temperature":1,"humidity":1,"wind_speed":1,"uv_index":1}`, FieldPrecipitation},
		}
		for _, tt := range tests {
			_, err := ParseObservationMessage([]byte(tt.body))
			assertInvalidField(t, err, tt.field)
		}

		msg, err := ParseObservationMessage([]byte(`{"temperature":1,"humidity":140,"wind_speed":1,"uv_index":1,"precipitation":1}`))
		require.NoError(t, err)
		_, err = Classify(msg.Observation())
		assertInvalidField(t, err, FieldHumidity)
	})

	t.Run("unknown unit system", func(t *testing.T) {
		_, err := ParseObservationMessage([]byte(`{"units":"kelvin","temperature":1,"humidity":1,"wind_speed":1,"uv_index":1,"precipitation":1}`))
		assertInvalidField(t, err, "units")
	})

	t.Run("invalid JSON", func(t *testing.T) {
		_, err := ParseObservationMessage([]byte("{invalid json"))
		require.Error(t, err)
		assert.False(t, errors.Is(err, ErrInvalidObservation))
		assert.Contains(t, err.Error(), "parse observation")
	})
}

func TestNewAdvisoryReport(t *testing.T) {
	fixed := time.Date(2026, 6, 1, 7, 31, 0, 0, time.UTC)
	SetClock(clockwork.NewFakeClockAt(fixed))
	defer SetClock(nil)

	msg, err := ParseObservationMessage([]byte(testObservationJSON))
	require.NoError(t, err)
	obs := msg.Observation()
	report, err := Advise(obs, msg.Display(Metric))
	require.NoError(t, err)

	r := NewAdvisoryReport(msg, obs, report, nil)
	assert.Equal(t, fixed, r.ProcessedAt)
	assert.Equal(t, "obs-001", r.SourceID)
	assert.Equal(t, "riverside-track", r.Station)

	id, err := uuid.Parse(r.ID)
	require.NoError(t, err)
	assert.Equal(t, uuid.Version(5), id.Version())

	t.Run("deterministic", func(t *testing.T) {
		again := NewAdvisoryReport(msg, obs, report, nil)
		assert.Equal(t, r.ID, again.ID)
	})

	t.Run("station changes the ID", func(t *testing.T) {
		other := msg
		other.Station = "harbour-pool"
		assert.NotEqual(t, r.ID, NewAdvisoryReport(other, obs, report, nil).ID)
	})

	t.Run("readings change the ID", func(t *testing.T) {
		changed := obs
		changed.UVIndex = 8
		assert.NotEqual(t, r.ID, NewAdvisoryReport(msg, changed, report, nil).ID)
	})
}

func TestSerializeAdvisoryReport(t *testing.T) {
	fixed := time.Date(2026, 6, 1, 7, 31, 0, 0, time.UTC)
	SetClock(clockwork.NewFakeClockAt(fixed))
	defer SetClock(nil)

	msg, err := ParseObservationMessage([]byte(testObservationJSON))
	require.NoError(t, err)
	obs := msg.Observation()
	report, err := Advise(obs, Metric)
	require.NoError(t, err)
	alerts := SelectAlerts(report, DefaultAlertPreferences(), TierHigh)

	out, err := SerializeAdvisoryReport(NewAdvisoryReport(msg, obs, report, alerts))
	require.NoError(t, err)
	assert.NotEmpty(t, out.Key)
	assert.Equal(t, "Outdoor", out.Headers["venue"])
	assert.Equal(t, "2026-06-01T07:31:00Z", out.Headers["processed_at"])

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(out.Value, &decoded))
	assert.Equal(t, string(out.Key), decoded["id"])
	assert.Equal(t, "riverside-track", decoded["station"])

	body := decoded["report"].(map[string]any)
	composite := body["composite"].(map[string]any)
	assert.Equal(t, "Outdoor", composite["venue"])

	params := body["parameters"].([]any)
	require.Len(t, params, 6)
	uv := params[3].(map[string]any)
	assert.Equal(t, "uvIndex", uv["parameter"])
	assert.Equal(t, "uv_high", uv["band"])
	assert.Equal(t, "high", uv["tier"])

	alertList := decoded["alerts"].([]any)
	require.Len(t, alertList, 1)
}

func TestSetClock(t *testing.T) {
	t.Run("set custom clock", func(t *testing.T) {
		fixedTime := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
		SetClock(clockwork.NewFakeClockAt(fixedTime))
		assert.Equal(t, fixedTime, clock.Now())
		SetClock(nil)
	})

	t.Run("reset to real clock", func(t *testing.T) {
		SetClock(clockwork.NewFakeClockAt(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)))
		SetClock(nil)
		assert.True(t, time.Since(clock.Now()) < time.Second)
	})
}
