package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestErrorString(t *testing.T) {
	cause := errors.New("unexpected EOF")

	tests := []struct {
		name string
		err  *Error
		want string
	}{
		{"plain", New(ErrCodeInvalidInput, "scale must be positive, got %v", -1), "INVALID_INPUT: scale must be positive, got -1"},
		{"element", New(ErrCodeInvalidDiagram, "unknown source %q", "x").For("c"), `INVALID_DIAGRAM: element c: unknown source "x"`},
		{"cause", Wrap(ErrCodeInvalidTheme, cause, "decode theme"), "INVALID_THEME: decode theme: unexpected EOF"},
		{"element and cause", Wrap(ErrCodeInternal, cause, "bounds of outline").For("a"), "INTERNAL_ERROR: element a: bounds of outline: unexpected EOF"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestWrapUnwraps(t *testing.T) {
	cause := errors.New("underlying")
	err := Wrap(ErrCodeNoRenderer, cause, "render shape")

	if errors.Unwrap(err) != cause {
		t.Errorf("Unwrap() = %v, want %v", errors.Unwrap(err), cause)
	}
	if !errors.Is(err, cause) {
		t.Error("errors.Is(err, cause) = false")
	}
}

func TestLookups(t *testing.T) {
	inner := New(ErrCodeInvalidDiagram, "duplicate ID").For("a")

	tests := []struct {
		name    string
		err     error
		code    Code
		element string
		message string
	}{
		{"coded", New(ErrCodeInvalidInput, "bad"), ErrCodeInvalidInput, "", "bad"},
		{"with element", inner, ErrCodeInvalidDiagram, "a", "element a: duplicate ID"},
		{"fmt wrapped", fmt.Errorf("load: %w", inner), ErrCodeInvalidDiagram, "a", "element a: duplicate ID"},
		{"outermost wins", Wrap(ErrCodeNoRenderer, inner, "outer"), ErrCodeNoRenderer, "", "outer"},
		{"plain", errors.New("plain error"), "", "", "plain error"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GetCode(tt.err); got != tt.code {
				t.Errorf("GetCode() = %q, want %q", got, tt.code)
			}
			if tt.code != "" && !Is(tt.err, tt.code) {
				t.Errorf("Is(%q) = false", tt.code)
			}
			if Is(tt.err, ErrCodeUnsupported) {
				t.Error("Is(UNSUPPORTED) = true")
			}
			if got := ElementID(tt.err); got != tt.element {
				t.Errorf("ElementID() = %q, want %q", got, tt.element)
			}
			if got := UserMessage(tt.err); got != tt.message {
				t.Errorf("UserMessage() = %q, want %q", got, tt.message)
			}
		})
	}

	if Is(nil, ErrCodeInvalidInput) || GetCode(nil) != "" || ElementID(nil) != "" {
		t.Error("nil error should match nothing")
	}
}

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"invalid diagram", New(ErrCodeInvalidDiagram, "bad"), 400},
		{"invalid format", New(ErrCodeInvalidFormat, "bad"), 400},
		{"invalid theme", New(ErrCodeInvalidTheme, "bad"), 400},
		{"file not found", New(ErrCodeFileNotFound, "missing"), 404},
		{"no renderer", New(ErrCodeNoRenderer, "shape").For("a"), 422},
		{"unsupported", New(ErrCodeUnsupported, "pdf"), 422},
		{"plain error", errors.New("boom"), 500},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := HTTPStatus(tt.err); got != tt.want {
				t.Errorf("HTTPStatus() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestErrorCodesAreUnique(t *testing.T) {
	codes := []Code{
		ErrCodeInvalidInput, ErrCodeInvalidDiagram, ErrCodeInvalidFormat, ErrCodeInvalidTheme,
		ErrCodeFileNotFound, ErrCodeNoRenderer, ErrCodeInternal, ErrCodeUnsupported,
	}
	seen := make(map[Code]bool)
	for _, code := range codes {
		if seen[code] {
			t.Errorf("duplicate error code: %s", code)
		}
		seen[code] = true
	}
}
