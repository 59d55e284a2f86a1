package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCategoryFor(t *testing.T) {
	tests := []struct {
		value    float64
		expected BMICategory
	}{
		{10, BMIUnderweight},
		{18.49, BMIUnderweight},
		{18.5, BMIHealthyWeight},
		{24.22, BMIHealthyWeight},
		{24.89, BMIHealthyWeight},
		{24.9, BMIOverweight},
		{29.89, BMIOverweight},
		{29.9, BMIObese},
		{44.44, BMIObese},
	}

	for _, test := range tests {
		assert.Equal(t, test.expected, CategoryFor(test.value), "CategoryFor(%v)", test.value)
	}
}

func TestBMICategory_StyleClass(t *testing.T) {
	assert.Equal(t, "bmi_result_Underweight", BMIUnderweight.StyleClass())
	assert.Equal(t, "bmi_result_healthy_weight", BMIHealthyWeight.StyleClass())
	assert.Equal(t, "bmi_result_overweight", BMIOverweight.StyleClass())
	assert.Equal(t, "bmi_result_obese", BMIObese.StyleClass())
	assert.Empty(t, BMICategory("").StyleClass())
}

func TestBMIResult_FormatValue(t *testing.T) {
	assert.Equal(t, "24.22", BMIResult{Value: 70 / (1.7 * 1.7)}.FormatValue())
	assert.Equal(t, "44.44", BMIResult{Value: 100 / (1.5 * 1.5)}.FormatValue())
	assert.Equal(t, "20.00", BMIResult{Value: 20}.FormatValue())
}
