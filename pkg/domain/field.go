package domain

import "fmt"

// Kind identifies the display shape of an output value.
type Kind string

const (
	// KindText is a plain or markdown text value.
	KindText Kind = "text"
	// KindJSON is a structured mapping rendered as a JSON tree.
	KindJSON Kind = "json"
	// KindTable is row-oriented tabular data.
	KindTable Kind = "table"
	// KindFigure is a declarative chart descriptor.
	KindFigure Kind = "figure"
)

// Valid reports whether k is one of the declared kinds.
func (k Kind) Valid() bool {
	switch k {
	case KindText, KindJSON, KindTable, KindFigure:
		return true
	}
	return false
}

// Widget identifies the control type backing an input field.
type Widget string

const (
	WidgetTextbox       Widget = "textbox"
	WidgetTextarea      Widget = "textarea"
	WidgetRadio         Widget = "radio"
	WidgetDropdown      Widget = "dropdown"
	WidgetCheckbox      Widget = "checkbox"
	WidgetCheckboxGroup Widget = "checkbox_group"
	WidgetSlider        Widget = "slider"
	WidgetFile          Widget = "file"
	WidgetDateRange     Widget = "date_range"
)

// Valid reports whether w is one of the declared widgets.
func (w Widget) Valid() bool {
	switch w {
	case WidgetTextbox, WidgetTextarea, WidgetRadio, WidgetDropdown,
		WidgetCheckbox, WidgetCheckboxGroup, WidgetSlider, WidgetFile,
		WidgetDateRange:
		return true
	}
	return false
}

// InputField declares one input of an action. The widget constraints
// (Choices, Min/Max/Step) mirror what the corresponding UI control enforces;
// handlers do not re-validate beyond them.
type InputField struct {
	Name        string   `json:"name"`
	Widget      Widget   `json:"widget"`
	Label       string   `json:"label,omitempty"`
	Placeholder string   `json:"placeholder,omitempty"`
	Choices     []string `json:"choices,omitempty"`
	Min         float64  `json:"min,omitempty"`
	Max         float64  `json:"max,omitempty"`
	Step        float64  `json:"step,omitempty"`
	Default     any      `json:"default,omitempty"`
	Lines       int      `json:"lines,omitempty"`
}

// Validate reports whether the input declaration is well formed.
func (f InputField) Validate() error {
	if f.Name == "" {
		return fmt.Errorf("input field has no name")
	}
	if !f.Widget.Valid() {
		return fmt.Errorf("input field %q has invalid widget %q", f.Name, f.Widget)
	}
	switch f.Widget {
	case WidgetRadio, WidgetDropdown, WidgetCheckboxGroup:
		if len(f.Choices) == 0 {
			return fmt.Errorf("input field %q (%s) has no choices", f.Name, f.Widget)
		}
	case WidgetSlider:
		if f.Max <= f.Min {
			return fmt.Errorf("input field %q slider range is empty (%v..%v)", f.Name, f.Min, f.Max)
		}
	}
	return nil
}

// OutputField declares one output of an action.
type OutputField struct {
	Name  string `json:"name"`
	Kind  Kind   `json:"kind"`
	Label string `json:"label,omitempty"`
}

// Validate reports whether the output declaration is well formed.
func (f OutputField) Validate() error {
	if f.Name == "" {
		return fmt.Errorf("output field has no name")
	}
	if !f.Kind.Valid() {
		return fmt.Errorf("output field %q has invalid kind %q", f.Name, f.Kind)
	}
	return nil
}

// Convenience constructors used by handler specs and the composer.

func Textbox(name, label, placeholder string) InputField {
	return InputField{Name: name, Widget: WidgetTextbox, Label: label, Placeholder: placeholder}
}

func Textarea(name, label, placeholder string, lines int) InputField {
	return InputField{Name: name, Widget: WidgetTextarea, Label: label, Placeholder: placeholder, Lines: lines}
}

func Radio(name, label, def string, choices ...string) InputField {
	return InputField{Name: name, Widget: WidgetRadio, Label: label, Default: def, Choices: choices}
}

func Dropdown(name, label string, choices ...string) InputField {
	return InputField{Name: name, Widget: WidgetDropdown, Label: label, Choices: choices}
}

func Checkbox(name, label string, def bool) InputField {
	return InputField{Name: name, Widget: WidgetCheckbox, Label: label, Default: def}
}

func CheckboxGroup(name, label string, choices []string, def ...string) InputField {
	return InputField{Name: name, Widget: WidgetCheckboxGroup, Label: label, Choices: choices, Default: def}
}

func Slider(name, label string, min, max, step, def float64) InputField {
	return InputField{Name: name, Widget: WidgetSlider, Label: label, Min: min, Max: max, Step: step, Default: def}
}

func TextOut(name, label string) OutputField {
	return OutputField{Name: name, Kind: KindText, Label: label}
}

func JSONOut(name, label string) OutputField {
	return OutputField{Name: name, Kind: KindJSON, Label: label}
}

func TableOut(name, label string) OutputField {
	return OutputField{Name: name, Kind: KindTable, Label: label}
}

func FigureOut(name, label string) OutputField {
	return OutputField{Name: name, Kind: KindFigure, Label: label}
}
