package domain

import "fmt"

// SeverityTier is the coarse cross-parameter risk grouping attached to every band.
type SeverityTier int

const (
	TierUnknown SeverityTier = iota
	TierLow
	TierModerate
	TierHigh
	TierSevere
)

var tierNames = [...]string{
	TierUnknown:  "unknown",
	TierLow:      "low",
	TierModerate: "moderate",
	TierHigh:     "high",
	TierSevere:   "severe",
}

func (t SeverityTier) String() string {
	if t < TierUnknown || t > TierSevere {
		return tierNames[TierUnknown]
	}
	return tierNames[t]
}

// MarshalText encodes the tier as its lower-case name.
func (t SeverityTier) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// UnmarshalText decodes a tier name produced by MarshalText.
func (t *SeverityTier) UnmarshalText(b []byte) error {
	tier, ok := ParseSeverityTier(string(b))
	if !ok {
		return fmt.Errorf("unknown severity tier %q", b)
	}
	*t = tier
	return nil
}

// ParseSeverityTier maps a tier name back to its value.
func ParseSeverityTier(s string) (SeverityTier, bool) {
	for i, name := range tierNames {
		if name == s {
			return SeverityTier(i), true
		}
	}
	return TierUnknown, false
}

// Band is the discrete classification of a single parameter. Values are unique
// across parameters so a Band alone keys the narrative catalog.
type Band string

const (
	TemperatureUnknown Band = "temperature_unknown"
	TemperatureCold    Band = "temperature_cold"
	TemperatureCool    Band = "temperature_cool"
	TemperatureWarm    Band = "temperature_warm"
	TemperatureHot     Band = "temperature_hot"

	HumidityUnknown  Band = "humidity_unknown"
	HumidityLow      Band = "humidity_low"
	HumidityIdeal    Band = "humidity_ideal"
	HumidityHigh     Band = "humidity_high"
	HumidityVeryHigh Band = "humidity_very_high"

	WindUnknown        Band = "wind_unknown"
	WindCalm           Band = "wind_calm"
	WindLightModerate  Band = "wind_light_moderate"
	WindModerateStrong Band = "wind_moderate_strong"
	WindStrong         Band = "wind_strong"

	UVUnknown  Band = "uv_unknown"
	UVLow      Band = "uv_low"
	UVModerate Band = "uv_moderate"
	UVHigh     Band = "uv_high"
	UVVeryHigh Band = "uv_very_high"
	UVExtreme  Band = "uv_extreme"

	PrecipitationUnknown  Band = "precipitation_unknown"
	PrecipitationLow      Band = "precipitation_low"
	PrecipitationModerate Band = "precipitation_moderate"
	PrecipitationHigh     Band = "precipitation_high"
	PrecipitationHeavy    Band = "precipitation_heavy"
	PrecipitationSnow     Band = "precipitation_snow"

	AirQualityUnknown       Band = "air_quality_unknown"
	AirQualityBandExcellent Band = "air_quality_excellent"
	AirQualityBandGood      Band = "air_quality_good"
	AirQualityBandModerate  Band = "air_quality_moderate"
	AirQualityBandPoor      Band = "air_quality_poor"
	AirQualityBandVeryPoor  Band = "air_quality_very_poor"
)

type bandInfo struct {
	param Parameter
	tier  SeverityTier
}

var bandTable = map[Band]bandInfo{
	TemperatureUnknown: {ParamTemperature, TierUnknown},
	TemperatureCold:    {ParamTemperature, TierModerate},
	TemperatureCool:    {ParamTemperature, TierLow},
	TemperatureWarm:    {ParamTemperature, TierModerate},
	TemperatureHot:     {ParamTemperature, TierHigh},

	HumidityUnknown:  {ParamHumidity, TierUnknown},
	HumidityLow:      {ParamHumidity, TierModerate},
	HumidityIdeal:    {ParamHumidity, TierLow},
	HumidityHigh:     {ParamHumidity, TierModerate},
	HumidityVeryHigh: {ParamHumidity, TierHigh},

	WindUnknown:        {ParamWind, TierUnknown},
	WindCalm:           {ParamWind, TierLow},
	WindLightModerate:  {ParamWind, TierLow},
	WindModerateStrong: {ParamWind, TierModerate},
	WindStrong:         {ParamWind, TierHigh},

	UVUnknown:  {ParamUVIndex, TierUnknown},
	UVLow:      {ParamUVIndex, TierLow},
	UVModerate: {ParamUVIndex, TierModerate},
	UVHigh:     {ParamUVIndex, TierHigh},
	UVVeryHigh: {ParamUVIndex, TierSevere},
	UVExtreme:  {ParamUVIndex, TierSevere},

	PrecipitationUnknown:  {ParamPrecipitation, TierUnknown},
	PrecipitationLow:      {ParamPrecipitation, TierLow},
	PrecipitationModerate: {ParamPrecipitation, TierModerate},
	PrecipitationHigh:     {ParamPrecipitation, TierHigh},
	PrecipitationHeavy:    {ParamPrecipitation, TierSevere},
	PrecipitationSnow:     {ParamPrecipitation, TierHigh},

	AirQualityUnknown:       {ParamAirQuality, TierUnknown},
	AirQualityBandExcellent: {ParamAirQuality, TierLow},
	AirQualityBandGood:      {ParamAirQuality, TierLow},
	AirQualityBandModerate:  {ParamAirQuality, TierModerate},
	AirQualityBandPoor:      {ParamAirQuality, TierHigh},
	AirQualityBandVeryPoor:  {ParamAirQuality, TierSevere},
}

// bandOrder lists each parameter's bands, Unknown first, then low to high.
var bandOrder = map[Parameter][]Band{
	ParamTemperature:   {TemperatureUnknown, TemperatureCold, TemperatureCool, TemperatureWarm, TemperatureHot},
	ParamHumidity:      {HumidityUnknown, HumidityLow, HumidityIdeal, HumidityHigh, HumidityVeryHigh},
	ParamWind:          {WindUnknown, WindCalm, WindLightModerate, WindModerateStrong, WindStrong},
	ParamUVIndex:       {UVUnknown, UVLow, UVModerate, UVHigh, UVVeryHigh, UVExtreme},
	ParamPrecipitation: {PrecipitationUnknown, PrecipitationLow, PrecipitationModerate, PrecipitationHigh, PrecipitationHeavy, PrecipitationSnow},
	ParamAirQuality:    {AirQualityUnknown, AirQualityBandExcellent, AirQualityBandGood, AirQualityBandModerate, AirQualityBandPoor, AirQualityBandVeryPoor},
}

// BandsFor returns the ordered bands of p. The result is a fresh slice.
func BandsFor(p Parameter) []Band {
	return append([]Band(nil), bandOrder[p]...)
}

// AllBands returns every band of every parameter in parameter order.
func AllBands() []Band {
	var out []Band
	for _, p := range AllParameters() {
		out = append(out, bandOrder[p]...)
	}
	return out
}

// Parameter returns the parameter that owns b, or "" for an unrecognized band.
func (b Band) Parameter() Parameter {
	return bandTable[b].param
}

// Tier returns the severity tier of b.
func (b Band) Tier() SeverityTier {
	return bandTable[b].tier
}

// IsUnknown reports whether b is a parameter's Unknown band.
func (b Band) IsUnknown() bool {
	info, ok := bandTable[b]
	return !ok || bandOrder[info.param][0] == b
}

func unknownBand(p Parameter) Band {
	return bandOrder[p][0]
}
