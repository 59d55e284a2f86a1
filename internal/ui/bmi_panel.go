package ui

import (
	"errors"
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/checkup/internal/bmi"
	"github.com/ytget/checkup/internal/model"
)

// BMIField identifies which input raised an Enter key press
type BMIField int

const (
	FieldHeight BMIField = iota
	FieldWeight
)

// BMIView is the BMI tab: height and weight inputs and the result panel
type BMIView struct {
	window       fyne.Window
	calculator   bmi.Calculator
	localization *Localization

	// UI components
	heightEntry  *widget.Entry
	weightEntry  *widget.Entry
	calculateBtn *widget.Button
	resultLabel  *widget.Label
	container    *fyne.Container

	// Last rendered state
	lastResult *model.BMIResult
	styleClass string
}

// NewBMIView creates the BMI tab
func NewBMIView(window fyne.Window, calculator bmi.Calculator, localization *Localization, mobileUI *MobileUI) *BMIView {
	v := &BMIView{
		window:       window,
		calculator:   calculator,
		localization: localization,
	}
	v.createUI(mobileUI)
	return v
}

// Container returns the root object of the tab
func (v *BMIView) Container() *fyne.Container {
	return v.container
}

func (v *BMIView) createUI(mobileUI *MobileUI) {
	v.heightEntry = mobileUI.CreateMobileEntry(v.localization.GetText(KeyHeightPlaceholder))
	v.heightEntry.OnSubmitted = func(string) {
		v.HandleKeyPress(FieldHeight)
	}

	v.weightEntry = mobileUI.CreateMobileEntry(v.localization.GetText(KeyWeightPlaceholder))
	v.weightEntry.OnSubmitted = func(string) {
		v.HandleKeyPress(FieldWeight)
	}

	v.calculateBtn = mobileUI.CreateMobileButton(v.localization.GetText(KeyCalculate), v.CalculateBMI)
	v.calculateBtn.Importance = widget.HighImportance

	v.resultLabel = widget.NewLabel("")
	v.resultLabel.Wrapping = fyne.TextWrapWord
	v.resultLabel.TextStyle = fyne.TextStyle{Bold: true}

	form := container.NewVBox(
		v.heightEntry,
		v.weightEntry,
		v.calculateBtn,
		widget.NewSeparator(),
		v.resultLabel,
	)

	v.container = container.NewCenter(fixedWidth(BMIPanelWidth, form))
}

// CalculateBMI reads both fields and renders the result or the validation message
func (v *BMIView) CalculateBMI() {
	v.clearResult()

	result, err := v.calculator.Calculate(v.heightEntry.Text, v.weightEntry.Text)
	if err != nil {
		if !errors.Is(err, bmi.ErrInvalidMeasurements) {
			log.Printf("BMI calculation failed: %v", err)
		}
		v.resultLabel.SetText(v.localization.GetText(KeyBMIInvalid))
		return
	}

	v.lastResult = &result
	v.renderResult()
}

// HandleKeyPress reacts to Enter in one of the inputs: height moves focus
// to weight, weight triggers the calculation
func (v *BMIView) HandleKeyPress(field BMIField) {
	switch field {
	case FieldHeight:
		if v.window != nil {
			v.window.Canvas().Focus(v.weightEntry)
		}
	case FieldWeight:
		v.CalculateBMI()
	}
}

// ResultText returns the text shown in the result panel
func (v *BMIView) ResultText() string {
	return v.resultLabel.Text
}

// StyleClass returns the style class of the last rendered category, or ""
func (v *BMIView) StyleClass() string {
	return v.styleClass
}

// LastResult returns the last successful result, nil after invalid input
func (v *BMIView) LastResult() *model.BMIResult {
	return v.lastResult
}

// RefreshTexts updates all texts after a language change
func (v *BMIView) RefreshTexts() {
	v.heightEntry.SetPlaceHolder(v.localization.GetText(KeyHeightPlaceholder))
	v.weightEntry.SetPlaceHolder(v.localization.GetText(KeyWeightPlaceholder))
	v.calculateBtn.SetText(v.localization.GetText(KeyCalculate))
	if v.lastResult != nil {
		v.renderResult()
	} else if v.resultLabel.Text != "" {
		v.resultLabel.SetText(v.localization.GetText(KeyBMIInvalid))
	}
}

func (v *BMIView) renderResult() {
	result := v.lastResult
	v.styleClass = result.Category.StyleClass()
	v.resultLabel.Importance = importanceFor(result.Category)
	v.resultLabel.SetText(v.localization.Format(KeyBMIResult, map[string]any{
		"Value":    result.FormatValue(),
		"Category": v.localization.CategoryLabel(result.Category),
	}))
}

func (v *BMIView) clearResult() {
	v.lastResult = nil
	v.styleClass = ""
	v.resultLabel.Importance = widget.MediumImportance
	v.resultLabel.SetText("")
}

// importanceFor maps a band to the label color
func importanceFor(category model.BMICategory) widget.Importance {
	switch category {
	case model.BMIHealthyWeight:
		return widget.SuccessImportance
	case model.BMIUnderweight, model.BMIOverweight:
		return widget.WarningImportance
	case model.BMIObese:
		return widget.DangerImportance
	default:
		return widget.MediumImportance
	}
}
