// Package views renders the application's HTML. Components implement the
// templ.Component contract so handlers can stream them straight into the
// response writer.
package views

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"
)

// e escapes text for safe interpolation into HTML.
func e(s string) string {
	return templ.EscapeString(s)
}

// writef is a thin fmt.Fprintf wrapper used by all components.
func writef(w io.Writer, format string, args ...any) error {
	_, err := fmt.Fprintf(w, format, args...)
	return err
}

// Raw renders a pre-sanitized HTML fragment as-is. Callers must only pass
// markup that went through the sanitizer.
func Raw(html string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := io.WriteString(w, html)
		return err
	})
}

// join renders a sequence of components in order.
func join(components ...templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		for _, c := range components {
			if c == nil {
				continue
			}
			if err := c.Render(ctx, w); err != nil {
				return err
			}
		}
		return nil
	})
}
