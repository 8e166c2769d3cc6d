// Package forms implements the form submission lifecycle: a declarative
// validation schema producing typed values, and the per-attempt State that
// carries errors and echoed input back to the rendering layer.
package forms

import (
	"net/mail"
	"strconv"
	"time"
)

// Issue is a single validation failure. Field is empty for form-level
// issues produced by cross-field rules.
type Issue struct {
	Field   string
	Message string
}

// Issues is an ordered list of validation failures.
type Issues []Issue

// IsEmpty reports whether validation passed.
func (is Issues) IsEmpty() bool {
	return len(is) == 0
}

// ByField maps each failed field to its first issue. Later issues for an
// already-errored field are dropped; form-level issues are excluded.
func (is Issues) ByField() map[string]string {
	out := make(map[string]string)
	for _, issue := range is {
		if issue.Field == "" {
			continue
		}
		if _, seen := out[issue.Field]; !seen {
			out[issue.Field] = issue.Message
		}
	}
	return out
}

// FormError returns the first form-level issue message, or fallback when
// every issue is attached to a field.
func (is Issues) FormError(fallback string) string {
	for _, issue := range is {
		if issue.Field == "" {
			return issue.Message
		}
	}
	if len(is) > 0 {
		return fallback
	}
	return ""
}

// Result holds validated, typed values keyed by field name. It contains
// exactly the schema's declared fields: strings for text fields, int/float64
// for numeric fields, bool for toggles.
type Result map[string]any

// Str returns the string value for a field.
func (r Result) Str(name string) string {
	v, _ := r[name].(string)
	return v
}

// Int returns the int value for a field.
func (r Result) Int(name string) int {
	v, _ := r[name].(int)
	return v
}

// Float returns the float64 value for a field.
func (r Result) Float(name string) float64 {
	v, _ := r[name].(float64)
	return v
}

// Bool returns the bool value for a field.
func (r Result) Bool(name string) bool {
	v, _ := r[name].(bool)
	return v
}

// CrossRule validates a relationship between fields after all field rules
// ran. It returns the failing field name (or "" for a form-level issue) and
// a message; both empty means the rule passed.
type CrossRule func(v Values) (field, message string)

// Schema declares the validation rules for one form.
type Schema struct {
	fields []*Field
	cross  []CrossRule
}

// NewSchema builds a schema from ordered field declarations.
func NewSchema(fields ...*Field) *Schema {
	return &Schema{fields: fields}
}

// Cross appends cross-field rules, evaluated in order after field rules.
func (s *Schema) Cross(rules ...CrossRule) *Schema {
	s.cross = append(s.cross, rules...)
	return s
}

// Validate applies every field rule and then every cross-field rule to the
// raw input. It is a pure function of its input: calling it twice on the
// same values yields identical results.
//
// On success the Result contains one typed entry per declared field. Issues
// preserve schema declaration order; cross-field issues come last.
func (s *Schema) Validate(values Values) (Result, Issues) {
	var issues Issues
	result := make(Result, len(s.fields))

	for _, f := range s.fields {
		raw := values.Get(f.name)
		typed, msg := f.check(raw)
		if msg != "" {
			issues = append(issues, Issue{Field: f.name, Message: msg})
			continue
		}
		result[f.name] = typed
	}

	for _, rule := range s.cross {
		if field, msg := rule(values); msg != "" {
			issues = append(issues, Issue{Field: field, Message: msg})
		}
	}

	if !issues.IsEmpty() {
		return nil, issues
	}
	return result, nil
}

// kind selects the typed representation of a field value.
type kind int

const (
	kindText kind = iota
	kindInt
	kindFloat
	kindBool
)

// stringRule validates a raw value; a non-empty return is the error message.
type stringRule func(raw string) string

// Field declares the rules for one form input.
type Field struct {
	name     string
	kind     kind
	optional bool
	rules    []stringRule
	min      *float64
	minMsg   string
}

// Text declares a string field.
func Text(name string) *Field {
	return &Field{name: name, kind: kindText}
}

// Int declares an integer field.
func Int(name string) *Field {
	return &Field{name: name, kind: kindInt}
}

// Float declares a decimal number field.
func Float(name string) *Field {
	return &Field{name: name, kind: kindFloat}
}

// Bool declares a toggle field: "true" parses to true, anything else to
// false. Bool fields never fail validation.
func Bool(name string) *Field {
	return &Field{name: name, kind: kindBool, optional: true}
}

// Optional marks the field as skippable: an empty raw value passes all
// rules and yields the zero value of the field's type.
func (f *Field) Optional() *Field {
	f.optional = true
	return f
}

// Required rejects empty values with the given message.
func (f *Field) Required(message string) *Field {
	f.rules = append(f.rules, func(raw string) string {
		if raw == "" {
			return message
		}
		return ""
	})
	return f
}

// MinLen rejects values shorter than n characters. An empty value fails
// too, so MinLen implies required-ness.
func (f *Field) MinLen(n int, message string) *Field {
	f.rules = append(f.rules, func(raw string) string {
		if len([]rune(raw)) < n {
			return message
		}
		return ""
	})
	return f
}

// MaxLen rejects values longer than n characters.
func (f *Field) MaxLen(n int, message string) *Field {
	f.rules = append(f.rules, func(raw string) string {
		if len([]rune(raw)) > n {
			return message
		}
		return ""
	})
	return f
}

// Email rejects values that are not a plain address form like a@b.c.
func (f *Field) Email(message string) *Field {
	f.rules = append(f.rules, func(raw string) string {
		addr, err := mail.ParseAddress(raw)
		if err != nil || addr.Address != raw {
			return message
		}
		return ""
	})
	return f
}

// OneOf rejects values outside the allowed set.
func (f *Field) OneOf(allowed []string, message string) *Field {
	set := make(map[string]struct{}, len(allowed))
	for _, a := range allowed {
		set[a] = struct{}{}
	}
	f.rules = append(f.rules, func(raw string) string {
		if _, ok := set[raw]; !ok {
			return message
		}
		return ""
	})
	return f
}

// Datetime rejects values that do not parse as a date-time.
func (f *Field) Datetime(message string) *Field {
	f.rules = append(f.rules, func(raw string) string {
		if _, err := ParseDatetime(raw); err != nil {
			return message
		}
		return ""
	})
	return f
}

// Min rejects numbers below n. Only meaningful for Int and Float fields.
func (f *Field) Min(n float64, message string) *Field {
	f.min = &n
	f.minMsg = message
	return f
}

// check runs the field's rules against a raw value and converts it to the
// field's typed representation. Returns the typed value and the first
// failing rule's message ("" when valid).
func (f *Field) check(raw string) (any, string) {
	if raw == "" && f.optional {
		return f.zero(), ""
	}

	for _, rule := range f.rules {
		if msg := rule(raw); msg != "" {
			return nil, msg
		}
	}

	switch f.kind {
	case kindInt:
		n, err := strconv.Atoi(raw)
		if err != nil {
			if f.minMsg != "" {
				return nil, f.minMsg
			}
			return nil, "Must be a number"
		}
		if f.min != nil && float64(n) < *f.min {
			return nil, f.minMsg
		}
		return n, ""
	case kindFloat:
		n, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			if f.minMsg != "" {
				return nil, f.minMsg
			}
			return nil, "Must be a number"
		}
		if f.min != nil && n < *f.min {
			return nil, f.minMsg
		}
		return n, ""
	case kindBool:
		return raw == "true", ""
	default:
		return raw, ""
	}
}

func (f *Field) zero() any {
	switch f.kind {
	case kindInt:
		return 0
	case kindFloat:
		return 0.0
	case kindBool:
		return false
	default:
		return ""
	}
}

// datetimeLayouts are accepted date-time input formats: the HTML
// datetime-local value first, then RFC 3339 variants.
var datetimeLayouts = []string{
	"2006-01-02T15:04",
	"2006-01-02T15:04:05",
	time.RFC3339,
}

// ParseDatetime parses a raw form date-time value.
func ParseDatetime(raw string) (time.Time, error) {
	var lastErr error
	for _, layout := range datetimeLayouts {
		t, err := time.Parse(layout, raw)
		if err == nil {
			return t, nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}

// EndAfterStart returns a form-level cross rule rejecting pairs where the
// end timestamp is not strictly after the start. Comparison is on parsed
// timestamps, never on the raw strings. Unparseable values are ignored
// here so the field-level Datetime rule reports them instead.
func EndAfterStart(startField, endField, message string) CrossRule {
	return func(v Values) (string, string) {
		start, err := ParseDatetime(v.Get(startField))
		if err != nil {
			return "", ""
		}
		end, err := ParseDatetime(v.Get(endField))
		if err != nil {
			return "", ""
		}
		if !end.After(start) {
			return "", message
		}
		return "", ""
	}
}

// FieldsMatch returns a cross rule attached to field b that rejects input
// where fields a and b differ.
func FieldsMatch(a, b, message string) CrossRule {
	return func(v Values) (string, string) {
		if v.Get(a) != v.Get(b) {
			return b, message
		}
		return "", ""
	}
}
