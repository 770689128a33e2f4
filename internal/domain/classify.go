package domain

// Field names reported in InvalidObservation errors.
const (
	FieldTemperature   = "temperatureC"
	FieldHumidity      = "humidityPct"
	FieldWindSpeed     = "windSpeedKmh"
	FieldUVIndex       = "uvIndex"
	FieldPrecipitation = "precipitationPct"
	FieldAirQuality    = "airQuality"
)

// Classification holds the band of each parameter for one observation.
type Classification struct {
	Temperature   Band `json:"temperature"`
	Humidity      Band `json:"humidity"`
	Wind          Band `json:"wind"`
	UVIndex       Band `json:"uv_index"`
	Precipitation Band `json:"precipitation"`
	AirQuality    Band `json:"air_quality"`
}

// Band returns the band assigned to p.
func (c Classification) Band(p Parameter) Band {
	switch p {
	case ParamTemperature:
		return c.Temperature
	case ParamHumidity:
		return c.Humidity
	case ParamWind:
		return c.Wind
	case ParamUVIndex:
		return c.UVIndex
	case ParamPrecipitation:
		return c.Precipitation
	case ParamAirQuality:
		return c.AirQuality
	default:
		return ""
	}
}

// Classify runs the six classifiers in parameter order and stops at the first
// invalid field.
func Classify(obs Observation) (Classification, error) {
	var (
		c   Classification
		err error
	)
	if c.Temperature, err = ClassifyTemperature(obs.TemperatureC); err != nil {
		return Classification{}, err
	}
	if c.Humidity, err = ClassifyHumidity(obs.HumidityPct); err != nil {
		return Classification{}, err
	}
	if c.Wind, err = ClassifyWind(obs.WindSpeedKmh); err != nil {
		return Classification{}, err
	}
	if c.UVIndex, err = ClassifyUV(obs.UVIndex); err != nil {
		return Classification{}, err
	}
	if c.Precipitation, err = ClassifyPrecipitation(obs.PrecipitationPct, obs.Condition); err != nil {
		return Classification{}, err
	}
	if c.AirQuality, err = ClassifyAirQuality(obs.AirQuality); err != nil {
		return Classification{}, err
	}
	return c, nil
}

// ClassifyTemperature bands a Celsius reading after converting it to whole
// degrees Fahrenheit: <50 cold, <75 cool, <85 warm, else hot.
func ClassifyTemperature(celsius float64) (Band, error) {
	if !isFinite(celsius) {
		return TemperatureUnknown, invalid(FieldTemperature, "must be a finite number")
	}

	f := ToFahrenheit(celsius)
	switch {
	case f < 50:
		return TemperatureCold, nil
	case f < 75:
		return TemperatureCool, nil
	case f < 85:
		return TemperatureWarm, nil
	default:
		return TemperatureHot, nil
	}
}

// ClassifyHumidity bands relative humidity: <40 low, <60 ideal, <80 high, else very high.
func ClassifyHumidity(pct int) (Band, error) {
	if pct < 0 || pct > 100 {
		return HumidityUnknown, invalid(FieldHumidity, "%d outside [0, 100]", pct)
	}

	switch {
	case pct < 40:
		return HumidityLow, nil
	case pct < 60:
		return HumidityIdeal, nil
	case pct < 80:
		return HumidityHigh, nil
	default:
		return HumidityVeryHigh, nil
	}
}

// ClassifyWind bands wind speed in km/h: <10 calm, <25 light to moderate,
// <40 moderate to strong, else strong.
func ClassifyWind(kmh float64) (Band, error) {
	if !isFinite(kmh) {
		return WindUnknown, invalid(FieldWindSpeed, "must be a finite number")
	}
	if kmh < 0 {
		return WindUnknown, invalid(FieldWindSpeed, "%g must not be negative", kmh)
	}

	switch {
	case kmh < 10:
		return WindCalm, nil
	case kmh < 25:
		return WindLightModerate, nil
	case kmh < 40:
		return WindModerateStrong, nil
	default:
		return WindStrong, nil
	}
}

// ClassifyUV bands the UV index with inclusive bounds: ≤2 low, ≤5 moderate,
// ≤7 high, ≤10 very high, else extreme.
func ClassifyUV(index int) (Band, error) {
	if index < 0 {
		return UVUnknown, invalid(FieldUVIndex, "%d must not be negative", index)
	}

	switch {
	case index <= 2:
		return UVLow, nil
	case index <= 5:
		return UVModerate, nil
	case index <= 7:
		return UVHigh, nil
	case index <= 10:
		return UVVeryHigh, nil
	default:
		return UVExtreme, nil
	}
}

// ClassifyPrecipitation bands precipitation probability: <20 low, <40 moderate,
// <60 high, else heavy. A condition mentioning snow turns the high and heavy
// bands into the snow band.
func ClassifyPrecipitation(pct int, condition string) (Band, error) {
	if pct < 0 || pct > 100 {
		return PrecipitationUnknown, invalid(FieldPrecipitation, "%d outside [0, 100]", pct)
	}

	var b Band
	switch {
	case pct < 20:
		b = PrecipitationLow
	case pct < 40:
		b = PrecipitationModerate
	case pct < 60:
		b = PrecipitationHigh
	default:
		b = PrecipitationHeavy
	}

	if (b == PrecipitationHigh || b == PrecipitationHeavy) && mentionsSnow(condition) {
		return PrecipitationSnow, nil
	}
	return b, nil
}

// ClassifyAirQuality maps each category to its own band. A missing reading
// maps to the Unknown band without error; an unrecognized label is invalid.
func ClassifyAirQuality(q AirQuality) (Band, error) {
	switch q {
	case AirQualityExcellent:
		return AirQualityBandExcellent, nil
	case AirQualityGood:
		return AirQualityBandGood, nil
	case AirQualityModerate:
		return AirQualityBandModerate, nil
	case AirQualityPoor:
		return AirQualityBandPoor, nil
	case AirQualityVeryPoor:
		return AirQualityBandVeryPoor, nil
	case "":
		return AirQualityUnknown, nil
	default:
		return AirQualityUnknown, invalid(FieldAirQuality, "unrecognized category %q", string(q))
	}
}
