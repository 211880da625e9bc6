// Package glucose maps a blood-glucose reading (mmol/L) to the carbohydrate
// cap and qualitative label used by the recipe search.
package glucose

// Thresholds in mmol/L. Readings at exactly a threshold resolve to the outer
// band (>= high is High, <= low is Low), so the "in range" band is the open
// interval (4.0, 8.0).
const (
	HighThreshold = 8.0
	LowThreshold  = 4.0
)

// Carb caps in grams for each band.
const (
	MaxCarbsHigh    = 35
	MaxCarbsInRange = 55
	MaxCarbsLow     = 80
)

// Labels shown to the user.
const (
	LabelHigh    = "High"
	LabelLow     = "Low"
	LabelInRange = "In Range"
)

// MaxCarbs returns the maximum-carbohydrate threshold for a glucose value.
// Out-of-physiological-range values are not rejected.
func MaxCarbs(value float64) int {
	if value >= HighThreshold {
		return MaxCarbsHigh
	}
	if value <= LowThreshold {
		return MaxCarbsLow
	}
	return MaxCarbsInRange
}

// Label returns the qualitative band for a glucose value.
func Label(value float64) string {
	if value >= HighThreshold {
		return LabelHigh
	}
	if value <= LowThreshold {
		return LabelLow
	}
	return LabelInRange
}
