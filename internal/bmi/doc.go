package bmi

// Package bmi implements the Body Mass Index calculation behind the BMI
// panel: lenient parsing of the height and weight fields, the ratio itself
// and classification into the four fixed bands.
