package errors

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
)

// ErrorMessage is an error payload from the backend.
//
// Besides its own shape ({"reason", "advice"}), it can be decoded from
// RFC 7807 problem details ({"title", "detail"}) which ASP.NET style backends send.
type ErrorMessage struct {
	Reason string `json:"reason"`
	Advice string `json:"advice,omitempty"`
	Cause  error  `json:"-"`
}

func (em *ErrorMessage) UnmarshalJSON(bytes []byte) error {
	f := new(struct {
		Reason *string `json:"reason"`
		Advice *string `json:"advice,omitempty"`
		Title  *string `json:"title"`
		Detail *string `json:"detail"`
	})
	if err := json.Unmarshal(bytes, f); err != nil {
		return err
	}

	switch {
	case f.Reason != nil:
		em.Reason = *f.Reason
		if f.Advice != nil {
			em.Advice = *f.Advice
		}
	case f.Title != nil:
		em.Reason = *f.Title
		if f.Detail != nil {
			em.Advice = *f.Detail
		}
	default:
		return fmt.Errorf(`required field missing: "reason" or "title"`)
	}

	return nil
}

// implement json.Marshaler.
//
// echo writes HTTPError messages implementing it as they are.
func (e ErrorMessage) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Reason string `json:"reason"`
		Advice string `json:"advice,omitempty"`
	}{Reason: e.Reason, Advice: e.Advice})
}

func (e ErrorMessage) String() string {
	lines := []string{e.Reason}
	if e.Advice != "" {
		lines = append(lines, e.Advice)
	}
	if e.Cause != nil {
		lines = append(lines, fmt.Sprint(" caused by:", e.Cause.Error()))
	}
	return strings.Join(lines, "\n")
}

func (e ErrorMessage) Error() string {
	return e.String()
}

func (e ErrorMessage) Unwrap() error {
	return e.Cause
}

type ErrorMessageOption func(in *ErrorMessage) *ErrorMessage

func WithAdvice(advice string) ErrorMessageOption {
	return func(in *ErrorMessage) *ErrorMessage {
		if advice != "" {
			in.Advice = advice
		}
		return in
	}
}

func WithError(err error) ErrorMessageOption {
	return func(in *ErrorMessage) *ErrorMessage {
		if err != nil {
			in.Cause = err
		}
		return in
	}
}

// NewErrorMessage builds echo.HTTPError carrying ErrorMessage.
//
// Handlers serving this API (and fake backends in tests) return it to respond
// with the error shape clients understand.
func NewErrorMessage(code int, reason string, opts ...ErrorMessageOption) *echo.HTTPError {
	msg := ErrorMessage{Reason: reason}
	for _, opt := range opts {
		msg = *opt(&msg)
	}

	return echo.NewHTTPError(code, msg).SetInternal(msg)
}

func NotFound() *echo.HTTPError {
	return NewErrorMessage(http.StatusNotFound, "not found")
}

func BadRequest(advice string, err error) *echo.HTTPError {
	return NewErrorMessage(
		http.StatusBadRequest,
		"bad request",
		WithAdvice(advice),
		WithError(err),
	)
}

func Unauthorized(advice string) *echo.HTTPError {
	return NewErrorMessage(http.StatusUnauthorized, "unauthorized", WithAdvice(advice))
}

func Forbidden() *echo.HTTPError {
	return NewErrorMessage(http.StatusForbidden, "forbidden")
}

func Conflict(message string, options ...ErrorMessageOption) *echo.HTTPError {
	return NewErrorMessage(http.StatusConflict, message, options...)
}

func InternalServerError(err error) *echo.HTTPError {
	return NewErrorMessage(
		http.StatusInternalServerError,
		"unexpected error",
		WithError(err),
	)
}
