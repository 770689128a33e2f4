// Package domain maps raw weather observations to athlete training guidance.
//
// # Pipeline
//
// An [Observation] is classified parameter by parameter into a [Band]; each band
// keys a static [Advisory] in the narrative catalog; the same observation feeds
// the composite builder that decides the training venue and the ordered action
// list. Every step is a pure function of its inputs. Nothing here reads the
// network, the filesystem, or shared mutable state, so callers may invoke the
// engine concurrently without coordination.
//
// # Units
//
// Observations are metric (°C, km/h). Thresholds are compared in one canonical
// unit per parameter:
//
//	Temperature:   °F, after ToFahrenheit (rounded half away from zero)
//	Wind:          km/h, as observed
//	Humidity, UV, precipitation: unit-less
//
// Imperial inputs are converted at the ingest boundary by the unrounded
// [FahrenheitToCelsius] and [ToKmh], so classification rounds only once.
// [ToCelsius] rounds its result, so a round trip such as
// ToFahrenheit(ToCelsius(f)) can drift from f by one degree.
//
// # Bands
//
// Upper bounds are exclusive except for the UV index, whose bounds are
// inclusive. The first matching band wins, tested low to high:
//
//	Temperature:   <50°F cold | <75°F cool | <85°F warm | else hot
//	Humidity:      <40% low | <60% ideal | <80% high | else very high
//	Wind:          <10 km/h calm | <25 light-moderate | <40 moderate-strong | else strong
//	UV index:      ≤2 low | ≤5 moderate | ≤7 high | ≤10 very high | else extreme
//	Precipitation: <20% low | <40% moderate | <60% high | else heavy
//	               ≥40% with "snow" in the condition label → snow
//	Air quality:   one band per category (Excellent, Good, Moderate, Poor, Very Poor)
//
// Every parameter also owns an explicit Unknown band. It is returned together
// with an [InvalidObservation] error, and for a missing air-quality reading,
// which maps to the "data unavailable" advisory.
//
// # Severity tiers
//
// Bands carry a [SeverityTier] (low, moderate, high, severe) so a presentation
// layer can style different parameters consistently. Unknown bands carry the
// neutral unknown tier.
//
// # Composite advisory
//
// The venue is Indoor when precipitation is at least 50% or air quality is Poor
// or Very Poor, and Outdoor otherwise. Temperature, humidity, wind, and UV
// never influence the venue. Action bullets come from [ActionRules], evaluated
// in fixed priority order, and always end with the stretching reminder.
package domain
