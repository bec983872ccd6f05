package rest

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	cerr "github.com/opst/foodfab/cmd/food/errors"
	apierr "github.com/opst/foodfab/pkg/api/types/errors"
)

// ErrEmptyPayload is the cause when a successful response has no JSON payload.
var ErrEmptyPayload = errors.New("response has no payload")

type StatusCodeRange int

const (
	StatusUnknown StatusCodeRange = iota
	Status1xx
	Status2xx
	Status3xx
	Status4xx
	Status5xx
)

func (sc StatusCodeRange) String() string {
	switch sc {
	case Status1xx:
		return "informational response"
	case Status2xx:
		return "success"
	case Status3xx:
		return "redirect"
	case Status4xx:
		return "client error"
	case Status5xx:
		return "server error"
	default:
		return fmt.Sprintf("unknown (%d)", sc)
	}
}

func StatusCodeRangeOf(resp *http.Response) StatusCodeRange {
	sc := resp.StatusCode
	if sc < 200 {
		return Status1xx
	}
	if sc < 300 {
		return Status2xx
	}
	if sc < 400 {
		return Status3xx
	}
	if sc < 500 {
		return Status4xx
	}
	if sc < 600 {
		return Status5xx
	}
	return StatusUnknown
}

// MessageFor is the summary of error messages per status code range.
//
// Ranges without a message are summarized by StatusCodeRange.String.
type MessageFor map[StatusCodeRange]string

func (m MessageFor) summary(scr StatusCodeRange) string {
	if message, ok := m[scr]; ok {
		return message
	}
	return scr.String()
}

// unmarshal http response which has json content.
//
// args:
//   - resp: http response to be processed.
//   - v: value which response should be.
//   - messageFor: title of error message for HTTP status code range.
//
// return:
//
//	error if...
//	- can not read response body
//	- response body is not shaped of v (ErrEmptyPayload is the cause if it is empty)
//	- status code is not 2xx
func unmarshalJsonResponse[T any](resp *http.Response, v *T, messageFor MessageFor) error {
	scr := StatusCodeRangeOf(resp)
	if scr != Status2xx {
		return errorFromResponse(resp, scr, messageFor)
	}

	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		if errors.Is(err, io.EOF) {
			err = ErrEmptyPayload
		}
		message := fmt.Sprintf("unexpected response: %s (status code = %d)", err.Error(), resp.StatusCode)
		return cerr.NewCuiError(message, cerr.WithCause(err), cerr.WithStatus(resp.StatusCode))
	}
	return nil
}

func unmarshalResponseDiscardingPayload(resp *http.Response, messageFor MessageFor) error {
	scr := StatusCodeRangeOf(resp)
	if scr != Status2xx {
		return errorFromResponse(resp, scr, messageFor)
	}
	io.Copy(io.Discard, resp.Body)
	return nil
}

func errorFromResponse(resp *http.Response, scr StatusCodeRange, messageFor MessageFor) error {
	message := messageFor.summary(scr)
	verbose := resp.Status
	if req := resp.Request; req != nil {
		verbose = fmt.Sprintf("%s %s: %s", req.Method, req.URL.Path, resp.Status)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return cerr.NewCuiError(
			fmt.Sprintf("%s\ncannot read server message: %s", message, err.Error()),
			cerr.WithCause(err),
			cerr.WithStatus(resp.StatusCode),
			cerr.WithVerbose(verbose),
		)
	}

	detail := parseErrorMessage(body)
	return cerr.NewCuiError(
		message,
		cerr.WithStatus(resp.StatusCode),
		cerr.WithVerbose(verbose),
		cerr.WithDetail(func(summary string) (string, error) {
			if detail == "" {
				return summary, nil
			}
			return summary + "\n" + detail, nil
		}),
	)
}

func jsonUnmarshal[T any](buf []byte) (*T, error) {
	ret := new(T)
	if err := json.Unmarshal(buf, ret); err != nil {
		return nil, err
	}
	return ret, nil
}

// parseErrorMessage makes server's error payload readable.
//
// It understands {"reason", "advice"}, problem details ({"title", "detail"})
// {"message"} and JSON strings. Other payloads are returned as they are.
func parseErrorMessage(body []byte) string {
	if emsg, err := jsonUnmarshal[apierr.ErrorMessage](body); err == nil {
		return emsg.String()
	}

	if msg, err := jsonUnmarshal[struct {
		Message *string `json:"message"`
	}](body); err == nil && msg.Message != nil {
		return *msg.Message
	}

	if str, err := jsonUnmarshal[string](body); err == nil {
		return *str
	}

	return string(body)
}
