package forms

// State is the outcome of one form submission attempt. A fresh form starts
// from Initial, every submit produces a new State, and the form re-renders
// from it: field errors next to inputs, the top-level error as a banner, and
// Values echoed back into the inputs so a failed attempt never loses input.
type State struct {
	FieldErrors map[string]string
	Values      map[string]string
	Message     string
	Error       string
	Success     bool
}

// Initial returns the state of an untouched form.
func Initial() State {
	return State{
		FieldErrors: map[string]string{},
		Values:      map[string]string{},
	}
}

// Succeeded returns a success state with a clean slate: no field errors and
// no retained values, so the next use of the form starts empty.
func Succeeded(message string) State {
	return State{
		Success:     true,
		Message:     message,
		FieldErrors: map[string]string{},
		Values:      map[string]string{},
	}
}

// Invalid returns a failed state for client-side validation issues.
// Values must be exactly the raw submitted input.
func Invalid(values Values, issues Issues) State {
	return State{
		Message:     "Validation failed",
		Error:       issues.FormError("Please fix the highlighted fields."),
		FieldErrors: issues.ByField(),
		Values:      values.clone(),
	}
}

// Failed returns a failed state for transport or server errors. The message
// is surfaced as both Message and Error; submitted values are retained.
func Failed(values Values, message string) State {
	return State{
		Message:     message,
		Error:       message,
		FieldErrors: map[string]string{},
		Values:      values.clone(),
	}
}

// FieldError returns the error message for a field, or "" if the field is valid.
func (s State) FieldError(name string) string {
	return s.FieldErrors[name]
}

// Value returns the last-submitted raw value for a field, or fallback when
// the field was never submitted.
func (s State) Value(name, fallback string) string {
	if v, ok := s.Values[name]; ok {
		return v
	}
	return fallback
}

// HasFieldErrors reports whether any field failed validation.
func (s State) HasFieldErrors() bool {
	return len(s.FieldErrors) > 0
}

// Values is the raw form input keyed by field name.
type Values map[string]string

func (v Values) clone() Values {
	out := make(Values, len(v))
	for k, val := range v {
		out[k] = val
	}
	return out
}

// Get returns the raw value for a field, "" if absent.
func (v Values) Get(name string) string {
	return v[name]
}
