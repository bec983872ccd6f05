package rest_test

import (
	"bytes"
	"io"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/opst/foodfab/cmd/food/config/profiles"
	"github.com/opst/foodfab/cmd/food/rest"
	"github.com/opst/foodfab/pkg/utils/try"
)

// received is a request the fake backend has got.
type received struct {
	Method        string
	Path          string
	Authorization string
	ContentType   string
	RequestId     string
	Body          []byte
}

// fakeBackend is a backend serving under "/api", built with echo.
type fakeBackend struct {
	*echo.Echo
	Api *echo.Group

	mu       sync.Mutex
	received []received
}

func newFakeBackend(t *testing.T) *fakeBackend {
	t.Helper()
	e := echo.New()
	e.HideBanner = true
	fb := &fakeBackend{Echo: e}

	e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()
			body := []byte{}
			if req.Body != nil {
				b, err := io.ReadAll(req.Body)
				if err != nil {
					return err
				}
				body = b
				req.Body = io.NopCloser(bytes.NewReader(body))
			}
			fb.mu.Lock()
			fb.received = append(fb.received, received{
				Method:        req.Method,
				Path:          req.URL.Path,
				Authorization: req.Header.Get("Authorization"),
				ContentType:   req.Header.Get("Content-Type"),
				RequestId:     req.Header.Get(rest.HeaderRequestId),
				Body:          body,
			})
			fb.mu.Unlock()
			return next(c)
		}
	})
	fb.Api = e.Group("/api")
	return fb
}

func (fb *fakeBackend) Received() []received {
	fb.mu.Lock()
	defer fb.mu.Unlock()
	return append([]received{}, fb.received...)
}

// start serves the backend and returns a client for it.
func (fb *fakeBackend) start(t *testing.T, options ...rest.Option) rest.FoodClient {
	t.Helper()
	server := httptest.NewServer(fb.Echo)
	t.Cleanup(server.Close)

	profile := profiles.FoodProfile{ApiRoot: server.URL + "/api/"}
	return try.To(rest.NewClient(&profile, options...)).OrFatal(t)
}
