// Package checkout drives an order from a composed cart to a confirmed order.
//
// A Workflow moves through states
//
//	Composing -> Validating -> Submitting -> Confirmed
//
// and falls back to Composing via Failed when validation or submission fails.
package checkout

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/opst/foodfab/pkg/api/types/ids"
	"github.com/opst/foodfab/pkg/api/types/orders"
	"github.com/opst/foodfab/pkg/cart"
)

type State int

const (
	Composing State = iota
	Validating
	Submitting
	Confirmed
	Failed
)

func (s State) String() string {
	switch s {
	case Composing:
		return "Composing"
	case Validating:
		return "Validating"
	case Submitting:
		return "Submitting"
	case Confirmed:
		return "Confirmed"
	case Failed:
		return "Failed"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

var (
	// Submit is called while another submission is in flight.
	ErrSubmitInProgress = errors.New("order submission is in progress")

	// Submit is called after the order has been confirmed.
	ErrConfirmed = errors.New("order is already confirmed")
)

type Reason string

const (
	EmptyAddress Reason = "EmptyAddress"
	EmptyCart    Reason = "EmptyCart"
)

// ValidationError is a local error found before submission.
type ValidationError struct {
	Reason  Reason
	Message string
}

func (v *ValidationError) Error() string {
	return v.Message
}

// SubmitError wraps errors caused by the submission.
type SubmitError struct {
	Err error
}

func (s *SubmitError) Error() string {
	return fmt.Sprintf("failed to place order: %s", s.Err)
}

func (s *SubmitError) Unwrap() error {
	return s.Err
}

// Submitter places an order draft and returns the created order.
//
// *rest.client of the command line satisfies this.
type Submitter interface {
	CreateOrder(ctx context.Context, draft orders.Draft) (*orders.Detail, error)
}

type SubmitterFunc func(context.Context, orders.Draft) (*orders.Detail, error)

func (f SubmitterFunc) CreateOrder(ctx context.Context, draft orders.Draft) (*orders.Detail, error) {
	return f(ctx, draft)
}

type Option func(*Workflow) *Workflow

// WithNavigator sets the function called with the new order id on confirmation.
func WithNavigator(nav func(orderId ids.ID)) Option {
	return func(w *Workflow) *Workflow {
		w.navigate = nav
		return w
	}
}

// WithTransitionHook sets the function observing every state transition.
//
// The hook is called with the workflow lock held; it must not call the Workflow.
func WithTransitionHook(hook func(from, to State)) Option {
	return func(w *Workflow) *Workflow {
		w.onTransition = hook
		return w
	}
}

type Workflow struct {
	mu sync.Mutex

	cart       *cart.Cart
	customerId ids.ID
	submitter  Submitter

	address      string
	instructions string

	state   State
	lastErr error
	order   *orders.Detail

	navigate     func(ids.ID)
	onTransition func(from, to State)
}

func New(c *cart.Cart, customerId ids.ID, submitter Submitter, options ...Option) *Workflow {
	w := &Workflow{
		cart:       c,
		customerId: customerId,
		submitter:  submitter,
		state:      Composing,
	}
	for _, opt := range options {
		w = opt(w)
	}
	return w
}

func (w *Workflow) transit(to State) {
	from := w.state
	w.state = to
	if w.onTransition != nil {
		w.onTransition(from, to)
	}
}

func (w *Workflow) Cart() *cart.Cart {
	return w.cart
}

func (w *Workflow) State() State {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.state
}

// LastError is the error of the last failed Submit, or nil.
func (w *Workflow) LastError() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.lastErr
}

// Order is the confirmed order, or nil before confirmation.
func (w *Workflow) Order() *orders.Detail {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.order
}

func (w *Workflow) SetDeliveryAddress(address string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.address = address
}

func (w *Workflow) DeliveryAddress() string {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.address
}

func (w *Workflow) SetSpecialInstructions(instructions string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.instructions = instructions
}

func (w *Workflow) SpecialInstructions() string {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.instructions
}

// Validate checks the order can be submitted, without changing state.
func (w *Workflow) Validate() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.validate()
}

func (w *Workflow) validate() error {
	if strings.TrimSpace(w.address) == "" {
		return &ValidationError{Reason: EmptyAddress, Message: "Please enter a delivery address"}
	}
	if w.cart.IsEmpty() {
		return &ValidationError{Reason: EmptyCart, Message: "Your cart is empty"}
	}
	return nil
}

// Draft builds the order draft from the current cart and form.
func (w *Workflow) Draft() orders.Draft {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.draft()
}

func (w *Workflow) draft() orders.Draft {
	return orders.Draft{
		CustomerId:          w.customerId,
		RestaurantId:        w.cart.RestaurantId(),
		DeliveryAddress:     strings.TrimSpace(w.address),
		SpecialInstructions: w.instructions,
		Items:               w.cart.LineItems(),
	}
}

// Submit validates and places the order.
//
// On success, the cart is cleared and the navigator is called with the new
// order id. On failure, the workflow returns to Composing with the cart and
// the form kept, and the error is a *ValidationError or a *SubmitError.
//
// The submitter is called at most once per Submit. Submit never retries.
func (w *Workflow) Submit(ctx context.Context) (*orders.Detail, error) {
	w.mu.Lock()
	switch w.state {
	case Submitting, Validating:
		w.mu.Unlock()
		return nil, ErrSubmitInProgress
	case Confirmed:
		w.mu.Unlock()
		return nil, ErrConfirmed
	}

	w.transit(Validating)
	if err := w.validate(); err != nil {
		w.fail(err)
		w.mu.Unlock()
		return nil, err
	}

	w.transit(Submitting)
	draft := w.draft()
	w.mu.Unlock()

	created, err := w.submitter.CreateOrder(ctx, draft)

	w.mu.Lock()
	if err == nil && (created == nil || created.Id.IsZero()) {
		err = errors.New("server returned no order id")
	}
	if err != nil {
		serr := &SubmitError{Err: err}
		w.fail(serr)
		w.mu.Unlock()
		return nil, serr
	}

	w.order = created
	w.lastErr = nil
	w.cart.Clear()
	w.transit(Confirmed)
	nav := w.navigate
	w.mu.Unlock()

	if nav != nil {
		nav(created.Id)
	}
	return created, nil
}

func (w *Workflow) fail(err error) {
	w.lastErr = err
	w.transit(Failed)
	w.transit(Composing)
}
