// Package stats computes the body metrics shown in a plan's stats box.
package stats

import (
	"errors"
	"math"
	"strconv"
	"strings"
)

// Unknown is shown for metrics that cannot be computed.
const Unknown = "--"

// ErrInvalidMeasurement is returned for non-positive or non-finite inputs.
var ErrInvalidMeasurement = errors.New("stats: invalid measurement")

// Summary holds the caller-supplied values drawn in the document header.
type Summary struct {
	BMI      string `json:"bmi"`
	Category string `json:"category"`
	Focus    string `json:"focus"`
	Strategy string `json:"strategy,omitempty"` // recommended plan type, optional
}

// Profile is the subset of the intake form needed for the summary.
type Profile struct {
	HeightCM float64
	WeightKG float64
	Goal     string
	Activity string
}

// Compute builds a Summary from a profile. Invalid measurements yield Unknown
// for BMI and category rather than an error.
func Compute(p Profile) Summary {
	s := Summary{
		BMI:      Unknown,
		Category: Unknown,
		Strategy: RecommendPlan(p.Goal, p.Activity),
	}
	if p.Goal != "" {
		s.Focus = p.Goal + " Focus"
	}
	if bmi, err := BMI(p.WeightKG, p.HeightCM); err == nil {
		s.BMI = strconv.FormatFloat(bmi, 'f', -1, 64)
		s.Category = Category(bmi)
	}
	return s
}

// BMI returns weight / height² rounded to two decimals.
func BMI(weightKG, heightCM float64) (float64, error) {
	if !(heightCM > 0) || !(weightKG > 0) || math.IsInf(heightCM, 0) || math.IsInf(weightKG, 0) {
		return 0, ErrInvalidMeasurement
	}
	h := heightCM / 100
	return math.Round(weightKG/(h*h)*100) / 100, nil
}

// Category classifies a BMI value.
func Category(bmi float64) string {
	switch {
	case bmi < 18.5:
		return "Underweight"
	case bmi < 25:
		return "Normal Weight"
	case bmi < 30:
		return "Overweight"
	default:
		return "Obese"
	}
}

// RecommendPlan maps a goal and activity level to a high-level plan type.
func RecommendPlan(goal, activity string) string {
	switch strings.ToLower(strings.TrimSpace(goal)) {
	case "weight loss":
		if strings.EqualFold(strings.TrimSpace(activity), "low") {
			return "Low-Impact Fat Burn"
		}
		return "High-Intensity Interval Training (HIIT) & Cardio"
	case "muscle gain":
		return "Hypertrophy & Strength Training"
	case "maintenance":
		return "Functional Fitness & Flexibility"
	}
	return "Balanced Fitness"
}

// Line formats the stats box text.
func (s Summary) Line() string {
	return "BMI: " + orUnknown(s.BMI) + "   |   Category: " + orUnknown(s.Category) + "   |   Focus: " + orUnknown(s.Focus)
}

func orUnknown(v string) string {
	if strings.TrimSpace(v) == "" {
		return Unknown
	}
	return v
}
