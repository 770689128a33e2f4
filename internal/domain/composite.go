package domain

import (
	"fmt"
	"strings"
)

// Venue is the binary training-location recommendation.
type Venue string

const (
	VenueIndoor  Venue = "Indoor"
	VenueOutdoor Venue = "Outdoor"
)

// Venue thresholds.
const (
	indoorPrecipitationPct = 50
)

// Action rule thresholds. Temperature and wind are compared in the observed
// metric units.
const (
	heatHydrationC        = 25
	humidHydrationPct     = 70
	sunscreenUVIndex      = 6
	waveCautionKmh        = 20
	perfectConditionsMaxC = 30
	highIntensityMaxC     = 25
)

// CompositeAdvisory is the session-level recommendation spanning all parameters.
type CompositeAdvisory struct {
	Venue       Venue    `json:"venue"`
	VenueReason string   `json:"venue_reason"`
	Narrative   string   `json:"narrative"`
	Actions     []string `json:"actions"`
}

// DecideVenue returns Indoor when precipitation is at least 50% or air quality
// is Poor or Very Poor, otherwise Outdoor. The reason names the rule that fired.
func DecideVenue(precipitationPct int, aq AirQuality) (Venue, string) {
	switch {
	case precipitationPct >= indoorPrecipitationPct:
		return VenueIndoor, fmt.Sprintf("%d%% chance of precipitation", precipitationPct)
	case aq == AirQualityPoor || aq == AirQualityVeryPoor:
		return VenueIndoor, fmt.Sprintf("%s air quality", strings.ToLower(string(aq)))
	default:
		return VenueOutdoor, "conditions allow outdoor training"
	}
}

// ActionRule appends Bullet to the action list when Applies holds.
type ActionRule struct {
	Name    string
	Applies func(Observation) bool
	Bullet  string
}

// Action bullets.
const (
	BulletHeatHydration     = "Stay hydrated - drink water before, during, and after training in the heat."
	BulletHumidityHydration = "High humidity - increase fluid intake and take more frequent breaks."
	BulletSunscreen         = "Apply water-resistant sunscreen (SPF 30+) before heading out."
	BulletWaveCaution       = "Strong winds - watch for rough water, waves, and currents."
	BulletPerfectConditions = "Perfect conditions - a great day to train hard."
	BulletStretching        = "Warm up properly and stretch after your session."
)

var actionRules = []ActionRule{
	{
		Name:    "heat-hydration",
		Applies: func(o Observation) bool { return o.TemperatureC > heatHydrationC },
		Bullet:  BulletHeatHydration,
	},
	{
		Name:    "humidity-hydration",
		Applies: func(o Observation) bool { return o.HumidityPct > humidHydrationPct },
		Bullet:  BulletHumidityHydration,
	},
	{
		Name:    "sunscreen",
		Applies: func(o Observation) bool { return o.UVIndex > sunscreenUVIndex },
		Bullet:  BulletSunscreen,
	},
	{
		Name:    "wave-caution",
		Applies: func(o Observation) bool { return o.WindSpeedKmh > waveCautionKmh },
		Bullet:  BulletWaveCaution,
	},
	{
		Name:    "perfect-conditions",
		Applies: perfectConditions,
		Bullet:  BulletPerfectConditions,
	},
	{
		Name:    "stretching",
		Applies: func(Observation) bool { return true },
		Bullet:  BulletStretching,
	},
}

// ActionRules returns the ordered rule list. The last rule always applies.
func ActionRules() []ActionRule {
	return append([]ActionRule(nil), actionRules...)
}

// BuildActions evaluates ActionRules in order and returns the bullets of the
// rules that apply, keeping the first occurrence of any repeated bullet.
func BuildActions(obs Observation) []string {
	seen := make(map[string]struct{}, len(actionRules))
	actions := make([]string, 0, len(actionRules))
	for _, r := range actionRules {
		if !r.Applies(obs) {
			continue
		}
		if _, dup := seen[r.Bullet]; dup {
			continue
		}
		seen[r.Bullet] = struct{}{}
		actions = append(actions, r.Bullet)
	}
	return actions
}

// BuildNarrative fills the one-sentence session summary.
func BuildNarrative(obs Observation) string {
	aq := strings.ToLower(string(obs.AirQuality))
	if aq == "" {
		aq = "unknown"
	}

	judgment := "moderate"
	if perfectConditions(obs) {
		judgment = "excellent"
	}

	intensity := "moderate-intensity"
	if obs.TemperatureC < highIntensityMaxC {
		intensity = "high-intensity"
	}

	return fmt.Sprintf(
		"With %s air quality and a temperature of %d°F, conditions are %s for training. Humidity is at %d%%, making it suitable for %s workouts.",
		aq, ToFahrenheit(obs.TemperatureC), judgment, obs.HumidityPct, intensity,
	)
}

// BuildComposite validates obs and assembles the venue, narrative, and actions.
// An invalid observation yields no partial result.
func BuildComposite(obs Observation) (CompositeAdvisory, error) {
	if _, err := Classify(obs); err != nil {
		return CompositeAdvisory{}, err
	}
	return buildComposite(obs), nil
}

func buildComposite(obs Observation) CompositeAdvisory {
	venue, reason := DecideVenue(obs.PrecipitationPct, obs.AirQuality)
	return CompositeAdvisory{
		Venue:       venue,
		VenueReason: reason,
		Narrative:   BuildNarrative(obs),
		Actions:     BuildActions(obs),
	}
}

func perfectConditions(o Observation) bool {
	return o.AirQuality == AirQualityGood && o.TemperatureC < perfectConditionsMaxC
}
