package bmi

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/ytget/checkup/internal/model"
)

// CentimetersPerMeter converts the height field to meters
const CentimetersPerMeter = 100

// ErrInvalidMeasurements is returned when height or weight is missing,
// non-numeric, non-finite or not positive
var ErrInvalidMeasurements = errors.New("invalid weight or height")

// leadingNumber matches the numeric prefix a browser's parseFloat accepts
var leadingNumber = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?`)

// Service performs BMI calculations. It keeps no state between calls.
type Service struct{}

// NewService creates a new BMI service
func NewService() Calculator {
	return &Service{}
}

// Calculate parses both fields and computes the result
func (s *Service) Calculate(heightText, weightText string) (model.BMIResult, error) {
	height, err := ParseMeasurement(heightText)
	if err != nil {
		return model.BMIResult{}, fmt.Errorf("height %q: %w", heightText, err)
	}
	weight, err := ParseMeasurement(weightText)
	if err != nil {
		return model.BMIResult{}, fmt.Errorf("weight %q: %w", weightText, err)
	}
	return s.Compute(height, weight)
}

// Compute returns weight / (height in meters)^2 with its category
func (s *Service) Compute(heightCm, weightKg float64) (model.BMIResult, error) {
	if !isPositive(heightCm) || !isPositive(weightKg) {
		return model.BMIResult{}, ErrInvalidMeasurements
	}

	meters := heightCm / CentimetersPerMeter
	value := weightKg / (meters * meters)
	if math.IsInf(value, 0) || math.IsNaN(value) {
		return model.BMIResult{}, ErrInvalidMeasurements
	}

	return model.BMIResult{
		HeightCm: heightCm,
		WeightKg: weightKg,
		Value:    value,
		Category: model.CategoryFor(value),
	}, nil
}

// ParseMeasurement reads the leading number of a field value, ignoring
// leading whitespace and any trailing text ("170cm" reads as 170)
func ParseMeasurement(text string) (float64, error) {
	prefix := leadingNumber.FindString(strings.TrimLeft(text, " \t\r\n"))
	if prefix == "" {
		return 0, ErrInvalidMeasurements
	}

	value, err := strconv.ParseFloat(prefix, 64)
	if err != nil {
		// out of range exponents end up here
		return 0, fmt.Errorf("%w: %v", ErrInvalidMeasurements, err)
	}
	return value, nil
}

func isPositive(v float64) bool {
	return v > 0 && !math.IsInf(v, 0) && !math.IsNaN(v)
}
