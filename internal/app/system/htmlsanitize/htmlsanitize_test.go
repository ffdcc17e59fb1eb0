package htmlsanitize_test

import (
	"testing"

	"github.com/uovhub/campusevents/internal/app/system/htmlsanitize"
)

func TestSanitize_Empty(t *testing.T) {
	if got := htmlsanitize.Sanitize(""); got != "" {
		t.Errorf("expected empty string, got %q", got)
	}
}

func TestSanitize_PlainText(t *testing.T) {
	if got := htmlsanitize.Sanitize("Hello, World!"); got != "Hello, World!" {
		t.Errorf("expected plain text unchanged, got %q", got)
	}
}

func TestSanitize_SafeHTML(t *testing.T) {
	input := "<p><strong>Bold</strong> and <em>italic</em></p>"
	if got := htmlsanitize.Sanitize(input); got != input {
		t.Errorf("expected safe HTML preserved, got %q", got)
	}
}

func TestSanitize_RemovesScript(t *testing.T) {
	input := "<p>Hello</p><script>alert('xss')</script>"
	if got := htmlsanitize.Sanitize(input); got != "<p>Hello</p>" {
		t.Errorf("expected script removed, got %q", got)
	}
}

func TestSanitize_RemovesOnclick(t *testing.T) {
	input := `<button onclick="alert('xss')">Click</button>`
	if got := htmlsanitize.Sanitize(input); got == input {
		t.Error("expected onclick attribute to be removed")
	}
}

func TestStripTags_RemovesAllMarkup(t *testing.T) {
	input := "<p>Tech <strong>Meetup</strong></p>"
	if got := htmlsanitize.StripTags(input); got != "Tech Meetup" {
		t.Errorf("expected plain text, got %q", got)
	}
}

func TestStripTags_PlainTextUnchanged(t *testing.T) {
	if got := htmlsanitize.StripTags("Main Auditorium"); got != "Main Auditorium" {
		t.Errorf("expected unchanged, got %q", got)
	}
}
