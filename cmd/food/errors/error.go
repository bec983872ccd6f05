// Package errors carries errors to be shown on the terminal.
package errors

import (
	"errors"
	"fmt"
	"strings"
)

type Verbose interface {
	Verbose() string
}

// CUIError is an error with a human readable summary, and verbose details for --verbose.
type CUIError interface {
	error
	Verbose

	// HTTP status code of the response causing the error, or 0.
	StatusCode() int
}

type cuierror struct {
	summary     string
	verbose     string
	status      int
	printDetail func(summary string) (string, error)
	base        error
}

func (ce *cuierror) Unwrap() error {
	return ce.base
}

func (ce *cuierror) StatusCode() int {
	return ce.status
}

func (ce *cuierror) Error() string {
	if ce.printDetail == nil {
		return ce.summary
	}
	message, err := ce.printDetail(ce.summary)
	if err != nil {
		message = fmt.Sprintf(
			"%s\n(building detailed message causes error: %s)",
			ce.summary, err.Error(),
		)
	}
	return message
}

func (ce *cuierror) Verbose() string {
	message := []string{ce.Error()}
	if ce.verbose != "" {
		message = append(message, " ("+ce.verbose+") ")
	}

	switch base := ce.base.(type) {
	case nil:
	case Verbose:
		message = append(message, "caused by: ", base.Verbose())
	default:
		message = append(message, "caused by: ", base.Error())
	}
	return strings.Join(message, "\n")
}

type CuiErrorOption func(cerr *cuierror) *cuierror

func NewCuiError(summary string, options ...CuiErrorOption) CUIError {
	err := &cuierror{summary: summary}
	for _, o := range options {
		err = o(err)
	}
	return err
}

func WithVerbose(verbose string) CuiErrorOption {
	return func(cerr *cuierror) *cuierror {
		cerr.verbose = verbose
		return cerr
	}
}

func WithDetail(printer func(summary string) (string, error)) CuiErrorOption {
	return func(cerr *cuierror) *cuierror {
		cerr.printDetail = printer
		return cerr
	}
}

func WithCause(err error) CuiErrorOption {
	return func(cerr *cuierror) *cuierror {
		cerr.base = err
		return cerr
	}
}

func WithStatus(code int) CuiErrorOption {
	return func(cerr *cuierror) *cuierror {
		cerr.status = code
		return cerr
	}
}

// StatusOf finds the HTTP status code from CUIError in the chain of err.
func StatusOf(err error) (int, bool) {
	var cerr CUIError
	if errors.As(err, &cerr) && cerr.StatusCode() != 0 {
		return cerr.StatusCode(), true
	}
	return 0, false
}
