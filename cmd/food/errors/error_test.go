package errors_test

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"testing"

	cerr "github.com/opst/foodfab/cmd/food/errors"
)

func TestCuiError(t *testing.T) {
	t.Run("when it has detail, Error returns detailed message", func(t *testing.T) {
		testee := cerr.NewCuiError(
			"client error",
			cerr.WithDetail(func(summary string) (string, error) {
				return summary + "\nnot found", nil
			}),
		)
		if actual := testee.Error(); actual != "client error\nnot found" {
			t.Errorf("message: %s", actual)
		}
	})

	t.Run("when detail printer fails, Error returns summary with the failure", func(t *testing.T) {
		testee := cerr.NewCuiError(
			"client error",
			cerr.WithDetail(func(string) (string, error) { return "", errors.New("broken") }),
		)
		if actual := testee.Error(); !strings.HasPrefix(actual, "client error\n") || !strings.Contains(actual, "broken") {
			t.Errorf("message: %s", actual)
		}
	})

	t.Run("Verbose includes verbose message and causes", func(t *testing.T) {
		cause := errors.New("connection refused")
		testee := cerr.NewCuiError("server error", cerr.WithVerbose("POST orders"), cerr.WithCause(cause))

		actual := testee.Verbose()
		for _, part := range []string{"server error", "POST orders", "connection refused"} {
			if !strings.Contains(actual, part) {
				t.Errorf("%q is missing in %q", part, actual)
			}
		}
		if !errors.Is(testee, cause) {
			t.Error("cause is not unwrapped")
		}
	})

	t.Run("StatusOf finds status code in wrapped errors", func(t *testing.T) {
		testee := fmt.Errorf("failed: %w", cerr.NewCuiError("client error", cerr.WithStatus(http.StatusUnauthorized)))
		if code, ok := cerr.StatusOf(testee); !ok || code != http.StatusUnauthorized {
			t.Errorf("(code, ok) = (%d, %v)", code, ok)
		}
		if _, ok := cerr.StatusOf(errors.New("plain")); ok {
			t.Error("plain error has status code, unexpectedly")
		}
	})
}
