package domain

import "strconv"

// Reading is an observed value formatted for the caller's unit preference.
type Reading struct {
	Value string `json:"value"`
	Unit  string `json:"unit,omitempty"`
}

func (r Reading) String() string {
	return r.Value + r.Unit
}

// ParameterAdvisory is the classified result for one parameter.
type ParameterAdvisory struct {
	Parameter Parameter     `json:"parameter"`
	Band      Band          `json:"band"`
	Tier      SeverityTier  `json:"tier"`
	Reading   Reading       `json:"reading"`
	Advisory  Advisory      `json:"advisory"`
	Guidance  GuidanceNotes `json:"guidance"`
}

// Report is the full engine output for one observation: six per-parameter
// advisories in parameter order and the composite recommendation.
type Report struct {
	Units          UnitSystem          `json:"units"`
	Classification Classification      `json:"classification"`
	Parameters     []ParameterAdvisory `json:"parameters"`
	Composite      CompositeAdvisory   `json:"composite"`
}

// Parameter returns the advisory for p and whether it was present.
func (r Report) Parameter(p Parameter) (ParameterAdvisory, bool) {
	for _, pa := range r.Parameters {
		if pa.Parameter == p {
			return pa, true
		}
	}
	return ParameterAdvisory{}, false
}

// Advise classifies obs, looks up the narrative for each band, and builds the
// composite advisory. Readings are expressed in units; classification always
// uses the canonical units regardless.
func Advise(obs Observation, units UnitSystem) (Report, error) {
	c, err := Classify(obs)
	if err != nil {
		return Report{}, err
	}
	if units != Imperial {
		units = Metric
	}

	params := AllParameters()
	out := Report{
		Units:          units,
		Classification: c,
		Parameters:     make([]ParameterAdvisory, 0, len(params)),
		Composite:      buildComposite(obs),
	}
	for _, p := range params {
		b := c.Band(p)
		out.Parameters = append(out.Parameters, ParameterAdvisory{
			Parameter: p,
			Band:      b,
			Tier:      b.Tier(),
			Reading:   reading(obs, p, units),
			Advisory:  Lookup(b),
			Guidance:  Guidance(p),
		})
	}
	return out, nil
}

func reading(obs Observation, p Parameter, units UnitSystem) Reading {
	switch p {
	case ParamTemperature:
		if units == Imperial {
			return Reading{Value: strconv.Itoa(ToFahrenheit(obs.TemperatureC)), Unit: "°F"}
		}
		return Reading{Value: strconv.Itoa(Round(obs.TemperatureC)), Unit: "°C"}
	case ParamHumidity:
		return Reading{Value: strconv.Itoa(obs.HumidityPct), Unit: "%"}
	case ParamWind:
		if units == Imperial {
			return Reading{Value: strconv.Itoa(ToMph(obs.WindSpeedKmh)), Unit: " mph"}
		}
		return Reading{Value: strconv.Itoa(Round(obs.WindSpeedKmh)), Unit: " km/h"}
	case ParamUVIndex:
		return Reading{Value: strconv.Itoa(obs.UVIndex)}
	case ParamPrecipitation:
		return Reading{Value: strconv.Itoa(obs.PrecipitationPct), Unit: "%"}
	case ParamAirQuality:
		if obs.AirQuality == "" {
			return Reading{Value: "unavailable"}
		}
		return Reading{Value: string(obs.AirQuality)}
	default:
		return Reading{}
	}
}
