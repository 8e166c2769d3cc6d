package sanitizer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gatherly-app/gatherly/pkg/sanitizer"
)

func TestPlainText(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Morning Run", sanitizer.PlainText("Morning <b>Run</b>"))
	assert.Equal(t, "Riverside Park", sanitizer.PlainText("  Riverside Park  "))
	assert.Equal(t, "alert(1)", sanitizer.PlainText("<script>alert(1)</script>"))
	assert.Equal(t, "", sanitizer.PlainText("<img src=x onerror=alert(1)>"))
}

func TestBasicHTML(t *testing.T) {
	t.Parallel()

	// Formatting survives.
	assert.Equal(t, "<p>Fun for <strong>everyone</strong></p>",
		sanitizer.BasicHTML("<p>Fun for <strong>everyone</strong></p>"))
	assert.Equal(t, "<ul><li>Bring water</li></ul>",
		sanitizer.BasicHTML("<ul><li>Bring water</li></ul>"))

	// Dangerous content does not.
	out := sanitizer.BasicHTML(`Join us <script>alert(1)</script> today`)
	assert.NotContains(t, out, "<script>")

	out = sanitizer.BasicHTML(`<a href="javascript:alert(1)">click</a>`)
	assert.NotContains(t, out, "javascript:")
	assert.NotContains(t, out, "<a")
}
