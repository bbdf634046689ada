package errors

import (
	"fmt"
	"net/http"
	"testing"
)

func TestHTTPStatus(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "nil", err: nil, want: http.StatusOK},
		{name: "plain", err: fmt.Errorf("boom"), want: http.StatusInternalServerError},
		{name: "invalid input", err: E(KindInvalidInput, "bad"), want: http.StatusBadRequest},
		{name: "forbidden", err: E(KindForbidden, "no"), want: http.StatusForbidden},
		{name: "not found", err: E(KindNotFound, "missing"), want: http.StatusNotFound},
		{name: "too many", err: E(KindTooManyRequests, "slow down"), want: http.StatusTooManyRequests},
		{name: "unknown", err: E(KindUnknown, ""), want: http.StatusInternalServerError},
		{name: "wrapped", err: fmt.Errorf("ctx: %w", E(KindNotFound, "missing")), want: http.StatusNotFound},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := HTTPStatus(tc.err); got != tc.want {
				t.Fatalf("HTTPStatus() = %d, want %d", got, tc.want)
			}
		})
	}
}

func TestLocalizationKey(t *testing.T) {
	t.Parallel()

	if got := LocalizationKey(EK(KindInvalidInput, " board.action.unknown ", "bad action")); got != "board.action.unknown" {
		t.Fatalf("LocalizationKey() = %q", got)
	}
	if got := LocalizationKey(fmt.Errorf("plain")); got != "" {
		t.Fatalf("LocalizationKey(plain) = %q", got)
	}
	if got := E(KindNotFound, "").Error(); got != "not_found" {
		t.Fatalf("Error() = %q", got)
	}
}

func TestKindOf(t *testing.T) {
	t.Parallel()

	if got := KindOf(fmt.Errorf("wrap: %w", E(KindForbidden, "no"))); got != KindForbidden {
		t.Fatalf("KindOf(wrapped) = %q", got)
	}
	if got := KindOf(fmt.Errorf("plain")); got != KindUnknown {
		t.Fatalf("KindOf(plain) = %q", got)
	}
	if got := KindOf(nil); got != KindUnknown {
		t.Fatalf("KindOf(nil) = %q", got)
	}
}
