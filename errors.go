package infogen

import "errors"

// Sentinel errors for the infogen package.
var (
	// ErrNotFound is returned when the input file does not exist.
	ErrNotFound = errors.New("infogen: input file not found")

	// ErrParse is returned when the input is not valid JSON of the expected shape.
	ErrParse = errors.New("infogen: malformed input")

	// ErrMissingField is returned when a required key is absent.
	ErrMissingField = errors.New("infogen: missing required field")

	// ErrEmptySeries is returned when a chart has no values to scale.
	ErrEmptySeries = errors.New("infogen: empty numeric series")

	// ErrNegativeValue is returned when a donut wedge size is negative.
	ErrNegativeValue = errors.New("infogen: negative wedge size")

	// ErrNotNumeric is returned when a chart value cannot be read as a number.
	ErrNotNumeric = errors.New("infogen: value is not numeric")

	// ErrInvalidColor is returned for colour strings that are neither hex nor a known name.
	ErrInvalidColor = errors.New("infogen: invalid color")

	// ErrInvalidConfig is returned when a layout, theme or preset is unusable.
	ErrInvalidConfig = errors.New("infogen: invalid config")
)

// InputError reports a failure to load the input document.
type InputError struct {
	Path  string // empty when decoding from a reader
	Field string // key path for missing or malformed fields
	Err   error
}

func (e *InputError) Error() string {
	msg := "infogen: input"
	if e.Path != "" {
		msg += " " + e.Path
	}
	if e.Field != "" {
		msg += ": " + e.Field
	}
	return msg + ": " + e.Err.Error()
}

func (e *InputError) Unwrap() error { return e.Err }

// RenderError reports a failure while drawing a panel.
type RenderError struct {
	Panel PanelID
	Err   error
}

func (e *RenderError) Error() string {
	return "infogen: render " + string(e.Panel) + ": " + e.Err.Error()
}

func (e *RenderError) Unwrap() error { return e.Err }
