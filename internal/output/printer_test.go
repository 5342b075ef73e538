package output

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	adopcion "github.com/facundocornejo/adopcionResposanble"
)

func TestParseColorMode(t *testing.T) {
	for s, want := range map[string]ColorMode{
		"auto":   ColorAuto,
		"always": ColorAlways,
		"never":  ColorNever,
	} {
		got, err := ParseColorMode(s)
		assert.NoError(t, err)
		assert.Equal(t, want, got)
	}

	_, err := ParseColorMode("rainbow")
	assert.Error(t, err)
}

func TestResolveColors(t *testing.T) {
	assert.True(t, ResolveColors(ColorAlways, false))
	assert.False(t, ResolveColors(ColorNever, true))

	t.Setenv("NO_COLOR", "1")
	assert.False(t, ResolveColors(ColorAuto, true))
}

func TestResolveColors_DumbTerm(t *testing.T) {
	t.Setenv("TERM", "dumb")
	assert.False(t, ResolveColors(ColorAuto, true))
}

func TestPrinter_PlainOutput(t *testing.T) {
	var out, errw bytes.Buffer
	p := NewPrinterWithWriters(&out, &errw, false)

	p.Success("created %s", "Luna")
	p.Error("boom")
	p.Plain("hello")

	assert.Contains(t, out.String(), "[OK] created Luna")
	assert.Contains(t, out.String(), "hello")
	assert.Contains(t, errw.String(), "[ERROR] boom")
}

func TestPrinter_Notify(t *testing.T) {
	var out, errw bytes.Buffer
	p := NewPrinterWithWriters(&out, &errw, false)

	p.Notify(adopcion.Notice{Severity: adopcion.SeverityError, Message: "Sesión expirada"})
	p.Notify(adopcion.Notice{Severity: adopcion.SeveritySuccess, Message: "Listo"})

	assert.Contains(t, errw.String(), "Sesión expirada")
	assert.Contains(t, out.String(), "Listo")
}

func TestFormatError(t *testing.T) {
	var out, errw bytes.Buffer
	p := NewPrinterWithWriters(&out, &errw, false)

	p.FormatError(&CLIError{
		Summary:    "not logged in",
		Detail:     "no session found",
		Suggestion: "Run 'adopctl login'",
		ExitCode:   ExitAuthError,
	})

	msg := errw.String()
	assert.Contains(t, msg, "not logged in")
	assert.Contains(t, msg, "no session found")
	assert.Contains(t, msg, "Run 'adopctl login'")
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", Truncate("short", 10))
	assert.Equal(t, "una his...", Truncate("una historia muy larga", 10))
	assert.Equal(t, "ab", Truncate("abcdef", 2))
}
