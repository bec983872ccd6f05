package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"
)

// HeaderRequestId carries an id unique to each request, for tracing on both sides.
const HeaderRequestId = "X-Request-Id"

// request sends a HTTP request to the api root.
//
// When body is not nil, it is sent as JSON.
// Caller should close the response body.
func (c *client) request(ctx context.Context, method string, body any, path ...string) (*http.Response, error) {
	var payload io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return nil, err
		}
		payload = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.apipath(path...), payload)
	if err != nil {
		return nil, err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")
	if token := c.token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	reqId := uuid.NewString()
	req.Header.Set(HeaderRequestId, reqId)

	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, err
		}
	}

	started := time.Now()
	resp, err := c.httpclient.Do(req)
	if err != nil {
		c.log.Debug().
			Str("request_id", reqId).
			Str("method", method).
			Str("url", req.URL.String()).
			Dur("elapsed", time.Since(started)).
			Err(err).
			Msg("request failed")
		return nil, err
	}

	c.log.Debug().
		Str("request_id", reqId).
		Str("method", method).
		Str("url", req.URL.String()).
		Int("status", resp.StatusCode).
		Dur("elapsed", time.Since(started)).
		Msg("request")

	return resp, nil
}

// getJson sends GET and decodes the JSON response into T.
func getJson[T any](ctx context.Context, c *client, messageFor MessageFor, path ...string) (*T, error) {
	resp, err := c.request(ctx, http.MethodGet, nil, path...)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	ret := new(T)
	if err := unmarshalJsonResponse(resp, ret, messageFor); err != nil {
		return nil, err
	}
	return ret, nil
}

// sendJson sends body with method, and decodes the JSON response into T.
func sendJson[T any](ctx context.Context, c *client, method string, body any, messageFor MessageFor, path ...string) (*T, error) {
	resp, err := c.request(ctx, method, body, path...)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	ret := new(T)
	if err := unmarshalJsonResponse(resp, ret, messageFor); err != nil {
		return nil, err
	}
	return ret, nil
}

// send sends body with method, and discards the response payload.
func (c *client) send(ctx context.Context, method string, body any, messageFor MessageFor, path ...string) error {
	resp, err := c.request(ctx, method, body, path...)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	return unmarshalResponseDiscardingPayload(resp, messageFor)
}
