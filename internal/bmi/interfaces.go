package bmi

import (
	"github.com/ytget/checkup/internal/model"
)

// Calculator defines the interface for the BMI service.
type Calculator interface {
	// Calculate parses raw field values (height in cm, weight in kg) and
	// returns a fully recomputed result.
	Calculate(heightText, weightText string) (model.BMIResult, error)

	// Compute works on already parsed measurements.
	Compute(heightCm, weightKg float64) (model.BMIResult, error)
}
