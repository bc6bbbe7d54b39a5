package errors

import (
	"errors"
	"testing"
)

func TestWrap(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		msg      string
		expected string
	}{
		{
			name:     "wrap nil error",
			err:      nil,
			msg:      "additional context",
			expected: "",
		},
		{
			name:     "wrap standard error",
			err:      errors.New("original error"),
			msg:      "additional context",
			expected: "additional context: original error",
		},
		{
			name:     "wrap sentinel",
			err:      ErrNoManifestFound,
			msg:      "install",
			expected: "install: elm.json not found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Wrap(tt.err, tt.msg)
			if tt.err == nil {
				if result != nil {
					t.Errorf("Expected nil, got %v", result)
				}
				return
			}
			if result.Error() != tt.expected {
				t.Errorf("Expected %q, got %q", tt.expected, result.Error())
			}
			if !errors.Is(result, tt.err) {
				t.Errorf("Expected wrapped error to contain original error")
			}
		})
	}
}

func TestWrapf(t *testing.T) {
	base := errors.New("boom")
	result := Wrapf(base, "package %s@%s", "elm/html", "1.0.0")
	if result.Error() != "package elm/html@1.0.0: boom" {
		t.Errorf("unexpected message: %q", result.Error())
	}
	if !errors.Is(result, base) {
		t.Errorf("Expected wrapped error to contain original error")
	}
	if Wrapf(nil, "ignored") != nil {
		t.Errorf("Expected nil for nil error")
	}
}
