package views

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"github.com/gatherly-app/gatherly/internal/forms"
)

// Banner shows the form-level outcome of the last submission: a success
// message, a failure message, or nothing on first render.
func Banner(st forms.State) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		switch {
		case st.Success && st.Message != "":
			return writef(w, `<p class="alert alert-success" role="status">%s</p>`, e(st.Message))
		case st.Error != "":
			return writef(w, `<p class="alert alert-error" role="alert">%s</p>`, e(st.Error))
		}
		return nil
	})
}

// field emits a labelled input with its preserved value and inline error.
func field(st forms.State, name, label, inputType, fallback string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		value := ""
		if inputType != "password" {
			value = st.Value(name, fallback)
		}
		if err := writef(w, `<div class="field"><label for="%s">%s</label><input type="%s" id="%s" name="%s" value="%s">`, e(name), e(label), e(inputType), e(name), e(name), e(value)); err != nil {
			return err
		}
		return fieldError(w, st, name)
	})
}

// textarea is the multi-line counterpart of field.
func textarea(st forms.State, name, label, fallback string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if err := writef(w, `<div class="field"><label for="%s">%s</label><textarea id="%s" name="%s">%s</textarea>`, e(name), e(label), e(name), e(name), e(st.Value(name, fallback))); err != nil {
			return err
		}
		return fieldError(w, st, name)
	})
}

// selectField emits a select with the preserved choice marked selected.
func selectField(st forms.State, name, label, fallback string, options []selectOption) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		selected := st.Value(name, fallback)
		if err := writef(w, `<div class="field"><label for="%s">%s</label><select id="%s" name="%s">`, e(name), e(label), e(name), e(name)); err != nil {
			return err
		}
		for _, opt := range options {
			marker := ""
			if opt.Value == selected {
				marker = " selected"
			}
			if err := writef(w, `<option value="%s"%s>%s</option>`, e(opt.Value), marker, e(opt.Label)); err != nil {
				return err
			}
		}
		if err := writef(w, `</select>`); err != nil {
			return err
		}
		return fieldError(w, st, name)
	})
}

type selectOption struct {
	Value string
	Label string
}

func fieldError(w io.Writer, st forms.State, name string) error {
	if msg := st.FieldError(name); msg != "" {
		if err := writef(w, `<p class="field-error">%s</p>`, e(msg)); err != nil {
			return err
		}
	}
	return writef(w, `</div>`)
}

// checkbox emits a boolean input; checked follows the preserved value.
func checkbox(st forms.State, name, label, fallback string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		marker := ""
		if st.Value(name, fallback) == "true" {
			marker = " checked"
		}
		if err := writef(w, `<div class="field field-checkbox"><label><input type="checkbox" name="%s" value="true"%s> %s</label>`, e(name), marker, e(label)); err != nil {
			return err
		}
		return fieldError(w, st, name)
	})
}
