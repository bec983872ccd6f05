package rest_test

import (
	"net/http"
	"testing"

	"github.com/opst/foodfab/cmd/food/rest"
)

func TestStatusCodeRangeOf(t *testing.T) {
	for code, expected := range map[int]rest.StatusCodeRange{
		http.StatusContinue:            rest.Status1xx,
		http.StatusOK:                  rest.Status2xx,
		http.StatusNoContent:           rest.Status2xx,
		http.StatusFound:               rest.Status3xx,
		http.StatusUnauthorized:        rest.Status4xx,
		http.StatusConflict:            rest.Status4xx,
		http.StatusInternalServerError: rest.Status5xx,
		http.StatusServiceUnavailable:  rest.Status5xx,
		600:                            rest.StatusUnknown,
	} {
		actual := rest.StatusCodeRangeOf(&http.Response{StatusCode: code})
		if actual != expected {
			t.Errorf("%d: (actual, expected) = (%s, %s)", code, actual, expected)
		}
	}
}
