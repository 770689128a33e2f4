package domain

// AlertPreferences controls which parameters raise alerts. Humidity has no
// toggle and only alerts through ExtremeWeather.
type AlertPreferences struct {
	Enabled        bool
	Parameters     map[Parameter]bool
	ExtremeWeather bool
}

// DefaultAlertPreferences enables temperature, air-quality, UV, wind, and
// extreme-weather alerts. Precipitation alerts start disabled.
func DefaultAlertPreferences() AlertPreferences {
	return AlertPreferences{
		Enabled: true,
		Parameters: map[Parameter]bool{
			ParamTemperature:   true,
			ParamAirQuality:    true,
			ParamUVIndex:       true,
			ParamPrecipitation: false,
			ParamWind:          true,
		},
		ExtremeWeather: true,
	}
}

// Alert is a per-parameter advisory whose tier crossed the alert threshold.
type Alert struct {
	Parameter      Parameter    `json:"parameter"`
	Band           Band         `json:"band"`
	Tier           SeverityTier `json:"tier"`
	Title          string       `json:"title"`
	Recommendation string       `json:"recommendation"`
}

// SelectAlerts returns, in parameter order, the advisories of r at or above
// minTier whose parameter is toggled on. With ExtremeWeather set, Severe bands
// alert even when their parameter is off. Unknown bands never alert.
func SelectAlerts(r Report, prefs AlertPreferences, minTier SeverityTier) []Alert {
	if !prefs.Enabled {
		return nil
	}
	if minTier < TierLow {
		minTier = TierLow
	}

	var alerts []Alert
	for _, pa := range r.Parameters {
		if pa.Tier < minTier {
			continue
		}
		if !prefs.Parameters[pa.Parameter] && !(prefs.ExtremeWeather && pa.Tier == TierSevere) {
			continue
		}
		alerts = append(alerts, Alert{
			Parameter:      pa.Parameter,
			Band:           pa.Band,
			Tier:           pa.Tier,
			Title:          pa.Advisory.Title,
			Recommendation: pa.Advisory.Recommendation,
		})
	}
	return alerts
}
