// Package cart is the in-memory order composition engine.
//
// A Cart holds lines of (menu item, quantity) for exactly one restaurant and
// computes prices with exact decimal arithmetic.
package cart

import (
	"fmt"
	"slices"

	"github.com/opst/foodfab/pkg/api/types/ids"
	"github.com/opst/foodfab/pkg/api/types/orders"
	"github.com/opst/foodfab/pkg/api/types/restaurants"
	"github.com/opst/foodfab/pkg/money"
)

var (
	// flat delivery fee per order.
	DeliveryFee = money.FromCents(299)

	// tax rate, in percent of subtotal.
	TaxPercent int64 = 8
)

// Line is a menu item in the cart with its quantity.
//
// Quantity is always 1 or more.
type Line struct {
	Item     restaurants.MenuItem
	Quantity int
}

// Amount is UnitPrice x Quantity.
func (l Line) Amount() money.Amount {
	return l.Item.Price.Times(l.Quantity)
}

// Notifier receives user-visible messages on cart mutations.
type Notifier interface {
	Notify(message string)
}

// NotifierFunc adapts a function to Notifier.
type NotifierFunc func(string)

func (f NotifierFunc) Notify(message string) {
	f(message)
}

type nopNotifier struct{}

func (nopNotifier) Notify(string) {}

type Option func(*Cart) *Cart

func WithNotifier(n Notifier) Option {
	return func(c *Cart) *Cart {
		if n != nil {
			c.notifier = n
		}
		return c
	}
}

type Cart struct {
	restaurantId ids.ID
	lines        []Line
	notifier     Notifier
}

// New creates an empty cart for the restaurant.
func New(restaurantId ids.ID, options ...Option) *Cart {
	c := &Cart{restaurantId: restaurantId, notifier: nopNotifier{}}
	for _, opt := range options {
		c = opt(c)
	}
	return c
}

func (c *Cart) RestaurantId() ids.ID {
	return c.restaurantId
}

func (c *Cart) indexOf(itemId ids.ID) int {
	return slices.IndexFunc(c.lines, func(l Line) bool { return l.Item.Id == itemId })
}

// AddItem puts one more of item into the cart.
//
// When the cart has no line for the item, a new line with quantity 1 is
// appended at the end.
func (c *Cart) AddItem(item restaurants.MenuItem) {
	if i := c.indexOf(item.Id); 0 <= i {
		c.lines[i].Quantity += 1
	} else {
		c.lines = append(c.lines, Line{Item: item, Quantity: 1})
	}
	c.notifier.Notify(fmt.Sprintf("%s added to cart!", item.Name))
}

// DecrementItem takes one of the item out of the cart.
//
// The line is removed when its quantity reaches 0.
// It does nothing if the item is not in the cart.
func (c *Cart) DecrementItem(itemId ids.ID) {
	i := c.indexOf(itemId)
	if i < 0 {
		return
	}
	if 1 < c.lines[i].Quantity {
		c.lines[i].Quantity -= 1
		return
	}
	c.lines = slices.Delete(c.lines, i, i+1)
}

// RemoveItem removes the line of the item regardless of its quantity.
func (c *Cart) RemoveItem(itemId ids.ID) {
	if i := c.indexOf(itemId); 0 <= i {
		c.lines = slices.Delete(c.lines, i, i+1)
	}
}

func (c *Cart) Clear() {
	c.lines = nil
}

// Reset clears the cart and binds it to another restaurant.
func (c *Cart) Reset(restaurantId ids.ID) {
	c.restaurantId = restaurantId
	c.Clear()
}

// Lines returns a copy of lines in the order they were first added.
func (c *Cart) Lines() []Line {
	return slices.Clone(c.lines)
}

func (c *Cart) Len() int {
	return len(c.lines)
}

func (c *Cart) IsEmpty() bool {
	return len(c.lines) == 0
}

// Quantity of the item in the cart. 0 if absent.
func (c *Cart) Quantity(itemId ids.ID) int {
	if i := c.indexOf(itemId); 0 <= i {
		return c.lines[i].Quantity
	}
	return 0
}

// ItemCount is the sum of quantities.
func (c *Cart) ItemCount() int {
	n := 0
	for _, l := range c.lines {
		n += l.Quantity
	}
	return n
}

func (c *Cart) Subtotal() money.Amount {
	sub := money.Amount{}
	for _, l := range c.lines {
		sub = sub.Add(l.Amount())
	}
	return sub
}

func (c *Cart) DeliveryFee() money.Amount {
	return DeliveryFee
}

func (c *Cart) Tax() money.Amount {
	return c.Subtotal().Percent(TaxPercent)
}

func (c *Cart) Total() money.Amount {
	sub := c.Subtotal()
	return money.Sum(sub, c.DeliveryFee(), sub.Percent(TaxPercent))
}

type Summary struct {
	Subtotal    money.Amount
	DeliveryFee money.Amount
	Tax         money.Amount
	Total       money.Amount
}

func (c *Cart) Summary() Summary {
	sub := c.Subtotal()
	fee := c.DeliveryFee()
	tax := sub.Percent(TaxPercent)
	return Summary{
		Subtotal:    sub,
		DeliveryFee: fee,
		Tax:         tax,
		Total:       money.Sum(sub, fee, tax),
	}
}

// LineItems converts lines into order line items, capturing current unit prices.
func (c *Cart) LineItems() []orders.LineItem {
	items := make([]orders.LineItem, 0, len(c.lines))
	for _, l := range c.lines {
		items = append(items, orders.LineItem{
			MenuItemId: l.Item.Id,
			Quantity:   l.Quantity,
			UnitPrice:  l.Item.Price,
		})
	}
	return items
}
