package domain

// ExtraField names a supplementary advisory field. Which fields are present
// depends on the parameter.
type ExtraField string

const (
	ExtraHydrationTip      ExtraField = "hydrationTip"
	ExtraPerformanceImpact ExtraField = "performanceImpactEstimate"
	ExtraSportsImpact      ExtraField = "sportsImpact"
	ExtraRiskLevel         ExtraField = "riskLevel"
	ExtraProtectionLevel   ExtraField = "protectionLevel"
	ExtraEquipmentNote     ExtraField = "equipmentNote"
)

// Advisory is the narrative attached to one band.
type Advisory struct {
	Title          string                `json:"title"`
	Insights       []string              `json:"insights"`
	Recommendation string                `json:"recommendation"`
	Extra          map[ExtraField]string `json:"extra,omitempty"`
}

func (a Advisory) clone() Advisory {
	out := Advisory{
		Title:          a.Title,
		Insights:       append([]string(nil), a.Insights...),
		Recommendation: a.Recommendation,
	}
	if a.Extra != nil {
		out.Extra = make(map[ExtraField]string, len(a.Extra))
		for k, v := range a.Extra {
			out.Extra[k] = v
		}
	}
	return out
}

// GuidanceNotes is static context shown alongside every band of a parameter.
type GuidanceNotes struct {
	Heading string   `json:"heading"`
	Notes   []string `json:"notes"`
}

// Lookup returns a copy of the catalog entry for b. Bands outside the catalog
// fall back to the air-quality "data unavailable" entry.
func Lookup(b Band) Advisory {
	if a, ok := catalog[b]; ok {
		return a.clone()
	}
	return catalog[AirQualityUnknown].clone()
}

// Catalog returns a copy of the whole narrative table.
func Catalog() map[Band]Advisory {
	out := make(map[Band]Advisory, len(catalog))
	for b, a := range catalog {
		out[b] = a.clone()
	}
	return out
}

// Guidance returns a copy of the static notes for p.
func Guidance(p Parameter) GuidanceNotes {
	g := guidance[p]
	return GuidanceNotes{Heading: g.Heading, Notes: append([]string(nil), g.Notes...)}
}

var catalog = map[Band]Advisory{
	TemperatureUnknown: {
		Title:          "Temperature Information",
		Insights:       []string{"Temperature data not available"},
		Recommendation: "Check back later for updated temperature readings.",
	},
	TemperatureCold: {
		Title: "Cold Weather Training",
		Insights: []string{
			"Optimal for endurance activities",
			"Reduced heat stress and dehydration risk",
			"Improved cardiovascular efficiency",
			"Longer warm-up period required",
		},
		Recommendation: "Excellent for long-distance training. Ensure proper warm-up and layering.",
		Extra: map[ExtraField]string{
			ExtraHydrationTip: "Cold air is dry - continue regular hydration despite feeling less thirsty.",
		},
	},
	TemperatureCool: {
		Title: "Cool Training Conditions",
		Insights: []string{
			"Ideal for high-intensity training",
			"Optimal muscle performance",
			"Comfortable for extended outdoor sessions",
			"Good conditions for speed work",
		},
		Recommendation: "Perfect conditions for most training activities. Ideal for performance testing.",
		Extra: map[ExtraField]string{
			ExtraHydrationTip: "Standard hydration protocols apply.",
		},
	},
	TemperatureWarm: {
		Title: "Warm Training Conditions",
		Insights: []string{
			"Good for most training activities",
			"Increased sweating and fluid loss",
			"Slightly reduced performance in endurance events",
			"Monitor for heat-related symptoms",
		},
		Recommendation: "Suitable for training with increased attention to hydration and cooling.",
		Extra: map[ExtraField]string{
			ExtraHydrationTip: "Increase fluid intake. Consider electrolyte replacement for longer sessions.",
		},
	},
	TemperatureHot: {
		Title: "Hot Weather Training",
		Insights: []string{
			"High risk of heat-related illnesses",
			"Significantly reduced performance capacity",
			"Increased cardiovascular stress",
			"High dehydration risk",
		},
		Recommendation: "Limit outdoor training intensity and duration. Consider early morning or evening sessions.",
		Extra: map[ExtraField]string{
			ExtraHydrationTip: "Aggressive hydration required. Pre-hydrate and replace electrolytes frequently.",
		},
	},

	HumidityUnknown: {
		Title:          "Humidity Information",
		Insights:       []string{"Humidity data not available"},
		Recommendation: "Check back later for updated humidity readings.",
	},
	HumidityLow: {
		Title: "Low Humidity Conditions",
		Insights: []string{
			"Dry air can cause increased water loss",
			"Higher risk of dehydration",
			"Improved heat dissipation from skin",
			"Potential for dry throat and nasal passages",
		},
		Recommendation: "Increase fluid intake significantly. Consider using a humidifier indoors.",
		Extra: map[ExtraField]string{
			ExtraPerformanceImpact: "Better heat tolerance but monitor hydration closely.",
		},
	},
	HumidityIdeal: {
		Title: "Ideal Humidity Range",
		Insights: []string{
			"Optimal conditions for most sports",
			"Balanced heat dissipation and moisture retention",
			"Comfortable breathing conditions",
			"Good for both endurance and power sports",
		},
		Recommendation: "Perfect conditions for training. Standard hydration protocols apply.",
		Extra: map[ExtraField]string{
			ExtraPerformanceImpact: "Optimal performance conditions with minimal environmental stress.",
		},
	},
	HumidityHigh: {
		Title: "High Humidity Conditions",
		Insights: []string{
			"Reduced heat dissipation efficiency",
			"Increased perceived heat stress",
			"Higher risk of overheating",
			"Sweat may not evaporate effectively",
		},
		Recommendation: "Reduce training intensity and increase rest periods. Focus on hydration.",
		Extra: map[ExtraField]string{
			ExtraPerformanceImpact: "Performance may be reduced by 5-15% due to heat stress.",
		},
	},
	HumidityVeryHigh: {
		Title: "Very High Humidity",
		Insights: []string{
			"Extremely difficult heat dissipation",
			"High risk of heat-related illnesses",
			"Significantly reduced performance capacity",
			"Sweat accumulation on skin",
		},
		Recommendation: "Consider indoor training or postpone outdoor activities. High health risk.",
		Extra: map[ExtraField]string{
			ExtraPerformanceImpact: "Performance can be reduced by 20-30% in extreme humidity.",
		},
	},

	WindUnknown: {
		Title:          "Wind Information",
		Insights:       []string{"Wind data not available"},
		Recommendation: "Check back later for updated wind readings.",
	},
	WindCalm: {
		Title: "Calm Wind Conditions",
		Insights: []string{
			"Ideal for precision sports and technical training",
			"No wind resistance for running or cycling",
			"Perfect for outdoor photography and filming",
			"Stable conditions for equipment setup",
		},
		Recommendation: "Excellent conditions for all outdoor activities. Ideal for performance testing.",
		Extra: map[ExtraField]string{
			ExtraSportsImpact: "Perfect for: Running, Cycling, Golf, Tennis, Archery",
		},
	},
	WindLightModerate: {
		Title: "Light to Moderate Winds",
		Insights: []string{
			"Slight cooling effect during exercise",
			"Minimal impact on most sports performance",
			"Good for endurance activities",
			"May affect precision sports slightly",
		},
		Recommendation: "Good conditions for most activities. Consider wind direction for planning.",
		Extra: map[ExtraField]string{
			ExtraSportsImpact: "Good for: Most outdoor sports with minor adjustments",
		},
	},
	WindModerateStrong: {
		Title: "Moderate to Strong Winds",
		Insights: []string{
			"Noticeable wind resistance for running/cycling",
			"May affect ball sports significantly",
			"Good cooling effect but can be distracting",
			"Equipment may need securing",
		},
		Recommendation: "Adjust training intensity. Consider wind direction and plan routes accordingly.",
		Extra: map[ExtraField]string{
			ExtraSportsImpact: "Challenging for: Cycling, Running, Ball sports, Precision activities",
		},
	},
	WindStrong: {
		Title: "Strong Wind Conditions",
		Insights: []string{
			"Significant impact on performance",
			"High risk of equipment damage",
			"Difficult to maintain balance",
			"Safety concerns for outdoor activities",
		},
		Recommendation: "Consider indoor alternatives. If outdoors, use extreme caution and reduce intensity.",
		Extra: map[ExtraField]string{
			ExtraSportsImpact: "Not recommended for: Most outdoor activities due to safety concerns",
		},
	},

	UVUnknown: {
		Title:          "UV Index Information",
		Insights:       []string{"UV index data not available"},
		Recommendation: "Check back later for updated UV index readings.",
	},
	UVLow: {
		Title: "Low UV Index",
		Insights: []string{
			"Safe for extended outdoor activities",
			"Minimal sun protection needed",
			"Good conditions for outdoor training",
			"Low risk of sunburn",
		},
		Recommendation: "Enjoy outdoor activities with minimal sun protection requirements.",
		Extra: map[ExtraField]string{
			ExtraRiskLevel:       "Minimal",
			ExtraProtectionLevel: "Sunscreen SPF 15+ recommended for prolonged exposure.",
		},
	},
	UVModerate: {
		Title: "Moderate UV Index",
		Insights: []string{
			"Safe for outdoor activities with protection",
			"Good conditions for training with sun care",
			"Moderate sun protection recommended",
			"Risk of sunburn increases with time",
		},
		Recommendation: "Good conditions for outdoor training with proper sun protection.",
		Extra: map[ExtraField]string{
			ExtraRiskLevel:       "Low",
			ExtraProtectionLevel: "Sunscreen SPF 30+, hat, and sunglasses recommended.",
		},
	},
	UVHigh: {
		Title: "High UV Index",
		Insights: []string{
			"Increased risk of sunburn",
			"Sun protection essential",
			"Limit midday outdoor activities",
			"Higher risk for athletes with light skin",
		},
		Recommendation: "Train early morning or late afternoon. Use comprehensive sun protection.",
		Extra: map[ExtraField]string{
			ExtraRiskLevel:       "Moderate",
			ExtraProtectionLevel: "Sunscreen SPF 30+, protective clothing, hat, and sunglasses essential.",
		},
	},
	UVVeryHigh: {
		Title: "Very High UV Index",
		Insights: []string{
			"High risk of sunburn and skin damage",
			"Not recommended for extended outdoor exposure",
			"Significant risk for all skin types",
			"Increased risk of heat-related illnesses",
		},
		Recommendation: "Avoid outdoor training during peak hours (10 AM - 4 PM).",
		Extra: map[ExtraField]string{
			ExtraRiskLevel:       "High",
			ExtraProtectionLevel: "Maximum sun protection required: SPF 50+, full coverage clothing, wide-brimmed hat.",
		},
	},
	UVExtreme: {
		Title: "Extreme UV Index",
		Insights: []string{
			"Extreme risk of sunburn and skin damage",
			"Indoor training strongly recommended",
			"Dangerous for all skin types",
			"High risk of heat stroke and dehydration",
		},
		Recommendation: "Strongly recommend indoor training. Avoid outdoor activities.",
		Extra: map[ExtraField]string{
			ExtraRiskLevel:       "Very High",
			ExtraProtectionLevel: "Maximum protection required if outdoor exposure is unavoidable.",
		},
	},

	PrecipitationUnknown: {
		Title:          "Precipitation Information",
		Insights:       []string{"Precipitation data not available"},
		Recommendation: "Check back later for updated precipitation forecasts.",
	},
	PrecipitationLow: {
		Title: "Low Precipitation Risk",
		Insights: []string{
			"Excellent conditions for outdoor training",
			"Minimal risk of weather interruption",
			"Good for equipment-sensitive activities",
			"Ideal for long-duration training sessions",
		},
		Recommendation: "Perfect conditions for outdoor activities. No weather concerns.",
		Extra: map[ExtraField]string{
			ExtraEquipmentNote: "Standard equipment suitable. No special weather protection needed.",
		},
	},
	PrecipitationModerate: {
		Title: "Moderate Precipitation Risk",
		Insights: []string{
			"Possible light rain or drizzle",
			"Most outdoor activities still possible",
			"May need weather contingency plans",
			"Good for training with weather adaptation",
		},
		Recommendation: "Monitor conditions. Have backup plans for outdoor training.",
		Extra: map[ExtraField]string{
			ExtraEquipmentNote: "Consider lightweight rain gear. Protect electronic devices.",
		},
	},
	PrecipitationHigh: {
		Title: "High Precipitation Risk",
		Insights: []string{
			"Significant chance of rain",
			"Outdoor activities may be interrupted",
			"Safety concerns for certain sports",
			"Equipment protection essential",
		},
		Recommendation: "Consider indoor alternatives or flexible scheduling.",
		Extra: map[ExtraField]string{
			ExtraEquipmentNote: "Waterproof gear recommended. Protect all equipment from moisture.",
		},
	},
	PrecipitationHeavy: {
		Title: "Heavy Precipitation Expected",
		Insights: []string{
			"High risk of weather interruption",
			"Safety concerns for outdoor activities",
			"Equipment damage risk",
			"Indoor training strongly recommended",
		},
		Recommendation: "Strongly recommend indoor training or postponing outdoor activities.",
		Extra: map[ExtraField]string{
			ExtraEquipmentNote: "Maximum protection required. Consider indoor alternatives.",
		},
	},
	PrecipitationSnow: {
		Title: "Snow Conditions",
		Insights: []string{
			"Winter sports conditions available",
			"Reduced traction for running/cycling",
			"Increased injury risk on slippery surfaces",
			"Specialized winter training opportunities",
		},
		Recommendation: "Consider winter sports or indoor training. Use appropriate footwear.",
		Extra: map[ExtraField]string{
			ExtraEquipmentNote: "Winter gear essential. Ice grips for footwear recommended.",
		},
	},

	AirQualityUnknown: {
		Title:          "Air Quality Information",
		Insights:       []string{"Air quality data not available"},
		Recommendation: "Check back later for updated air quality information.",
	},
	AirQualityBandExcellent: {
		Title: "Perfect Training Conditions",
		Insights: []string{
			"Ideal air quality for all outdoor activities",
			"No respiratory stress expected during exercise",
			"Optimal conditions for endurance training",
			"Great day for high-intensity workouts",
		},
		Recommendation: "Take advantage of these perfect conditions for your most demanding training sessions.",
	},
	AirQualityBandGood: {
		Title: "Great Training Conditions",
		Insights: []string{
			"Suitable for all outdoor activities",
			"Minimal impact on breathing performance",
			"Good conditions for moderate to high-intensity training",
			"Safe for extended outdoor sessions",
		},
		Recommendation: "Excellent conditions for your training. You can push your limits safely.",
	},
	AirQualityBandModerate: {
		Title: "Moderate Air Quality",
		Insights: []string{
			"Suitable for light to moderate activities",
			"Consider reducing intensity for sensitive individuals",
			"Monitor breathing during high-intensity sessions",
			"Good for shorter training sessions",
		},
		Recommendation: "Consider reducing workout intensity if you experience breathing difficulties.",
	},
	AirQualityBandPoor: {
		Title: "Poor Air Quality",
		Insights: []string{
			"Not recommended for high-intensity outdoor activities",
			"Increased risk of respiratory irritation",
			"Consider indoor alternatives",
			"Limit outdoor training duration",
		},
		Recommendation: "Consider moving your training indoors or reducing intensity significantly.",
	},
	AirQualityBandVeryPoor: {
		Title: "Very Poor Air Quality",
		Insights: []string{
			"Not recommended for outdoor activities",
			"High risk of respiratory problems",
			"Indoor training strongly recommended",
			"Avoid prolonged outdoor exposure",
		},
		Recommendation: "Strongly recommend indoor training or postponing outdoor activities.",
	},
}

var guidance = map[Parameter]GuidanceNotes{
	ParamTemperature: {
		Heading: "Temperature Impact on Performance",
		Notes: []string{
			"Optimal performance typically occurs between 50-68°F (10-20°C).",
			"Extreme temperatures can reduce performance by 10-20%.",
		},
	},
	ParamHumidity: {
		Heading: "Heat Index",
		Notes: []string{
			"High humidity makes temperatures feel much hotter because sweat cannot evaporate effectively.",
			"This increases the risk of heat-related illnesses during exercise.",
		},
	},
	ParamWind: {
		Heading: "Wind Strategy Tips",
		Notes: []string{
			"Start against the wind, finish with the wind",
			"Use wind as natural resistance training",
			"Plan routes to minimize crosswinds",
			"Adjust equipment and clothing for wind protection",
		},
	},
	ParamUVIndex: {
		Heading: "Athlete Sun Safety Tips",
		Notes: []string{
			"UV index scale: 0-2 Low, 3-5 Moderate, 6-7 High, 8-10 Very High, 11+ Extreme",
			"Apply sunscreen 30 minutes before training",
			"Reapply every 2 hours or after sweating",
			"Use water-resistant sunscreen for sports",
			"Wear UV-protective athletic clothing",
			"Hydrate more in high UV conditions",
		},
	},
	ParamPrecipitation: {
		Heading: "Wet Weather Planning",
		Notes: []string{
			"Precipitation probability is the chance of rain in the next few hours.",
			"Sessions move indoors once the chance of precipitation reaches 50%.",
		},
	},
	ParamAirQuality: {
		Heading: "Air Quality and Breathing",
		Notes: []string{
			"Poor and Very Poor air quality move sessions indoors regardless of other conditions.",
			"Athletes with asthma or other respiratory conditions should follow the more cautious recommendation.",
		},
	},
}
