package model

import "fmt"

// BMICategory is one of the four fixed weight bands
type BMICategory string

const (
	BMIUnderweight   BMICategory = "Underweight"
	BMIHealthyWeight BMICategory = "Healthy Weight"
	BMIOverweight    BMICategory = "Overweight"
	BMIObese         BMICategory = "Obese"
)

// Band upper bounds (exclusive)
const (
	UnderweightLimit = 18.5
	HealthyLimit     = 24.9
	OverweightLimit  = 29.9
)

// String returns the display label of the category
func (c BMICategory) String() string {
	return string(c)
}

// StyleClass returns the style class name the result panel uses for the band
func (c BMICategory) StyleClass() string {
	switch c {
	case BMIUnderweight:
		return "bmi_result_Underweight"
	case BMIHealthyWeight:
		return "bmi_result_healthy_weight"
	case BMIOverweight:
		return "bmi_result_overweight"
	case BMIObese:
		return "bmi_result_obese"
	default:
		return ""
	}
}

// CategoryFor classifies a BMI value into its band
func CategoryFor(value float64) BMICategory {
	switch {
	case value < UnderweightLimit:
		return BMIUnderweight
	case value < HealthyLimit:
		return BMIHealthyWeight
	case value < OverweightLimit:
		return BMIOverweight
	default:
		return BMIObese
	}
}

// BMIResult holds one calculation. Nothing is retained between calculations.
type BMIResult struct {
	HeightCm float64
	WeightKg float64
	Value    float64
	Category BMICategory
}

// FormatValue returns the BMI rounded to two decimals
func (r BMIResult) FormatValue() string {
	return fmt.Sprintf("%.2f", r.Value)
}
