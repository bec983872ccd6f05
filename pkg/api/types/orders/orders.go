package orders

import (
	"fmt"
	"slices"
	"strings"

	"github.com/opst/foodfab/pkg/api/types/ids"
	"github.com/opst/foodfab/pkg/money"
	"github.com/opst/foodfab/pkg/utils/rfctime"
)

// Status of an order, owned by the server.
//
// Values outside of the known ones are kept as they are.
type Status string

const (
	StatusPending        Status = "Pending"
	StatusConfirmed      Status = "Confirmed"
	StatusPreparing      Status = "Preparing"
	StatusOutForDelivery Status = "OutForDelivery"
	StatusDelivered      Status = "Delivered"
	StatusCancelled      Status = "Cancelled"
)

var knownStatuses = []Status{
	StatusPending, StatusConfirmed, StatusPreparing,
	StatusOutForDelivery, StatusDelivered, StatusCancelled,
}

func KnownStatuses() []Status {
	return slices.Clone(knownStatuses)
}

func (s Status) Known() bool {
	return slices.Contains(knownStatuses, s)
}

// ParseStatus finds the known status matching s case-insensitively.
func ParseStatus(s string) (Status, error) {
	for _, st := range knownStatuses {
		if strings.EqualFold(string(st), strings.TrimSpace(s)) {
			return st, nil
		}
	}
	return "", fmt.Errorf("unknown order status: %s", s)
}

// LineItem is a menu item with quantity and the unit price captured by the client.
//
// The unit price is advisory: the server is expected to price orders on its own.
type LineItem struct {
	MenuItemId ids.ID       `json:"menuItemId"`
	Quantity   int          `json:"quantity"`
	UnitPrice  money.Amount `json:"unitPrice"`
}

func (l LineItem) Equal(o LineItem) bool {
	return l.MenuItemId == o.MenuItemId &&
		l.Quantity == o.Quantity &&
		l.UnitPrice.Equal(o.UnitPrice)
}

// Draft is the request body of POST /orders.
type Draft struct {
	CustomerId          ids.ID     `json:"customerId"`
	RestaurantId        ids.ID     `json:"restaurantId"`
	DeliveryAddress     string     `json:"deliveryAddress"`
	SpecialInstructions string     `json:"specialInstructions"`
	Items               []LineItem `json:"items"`
}

func (d Draft) Equal(o Draft) bool {
	return d.CustomerId == o.CustomerId &&
		d.RestaurantId == o.RestaurantId &&
		d.DeliveryAddress == o.DeliveryAddress &&
		d.SpecialInstructions == o.SpecialInstructions &&
		slices.EqualFunc(d.Items, o.Items, LineItem.Equal)
}

type Customer struct {
	Id       ids.ID `json:"id"`
	Username string `json:"username"`
}

type Detail struct {
	Id                  ids.ID           `json:"id"`
	Status              Status           `json:"status"`
	TotalAmount         money.Amount     `json:"totalAmount"`
	CreatedAt           *rfctime.RFC3339 `json:"createdAt,omitempty"`
	CustomerId          ids.ID           `json:"customerId,omitempty"`
	Customer            *Customer        `json:"customer,omitempty"`
	RestaurantId        ids.ID           `json:"restaurantId,omitempty"`
	DeliveryAddress     string           `json:"deliveryAddress,omitempty"`
	SpecialInstructions string           `json:"specialInstructions,omitempty"`
	Items               []LineItem       `json:"items,omitempty"`
}

func (d Detail) Equal(o Detail) bool {
	customerEq := (d.Customer == nil && o.Customer == nil) ||
		(d.Customer != nil && o.Customer != nil && *d.Customer == *o.Customer)

	return d.Id == o.Id &&
		d.Status == o.Status &&
		d.TotalAmount.Equal(o.TotalAmount) &&
		rfctime.PEqual(d.CreatedAt, o.CreatedAt) &&
		d.CustomerId == o.CustomerId &&
		customerEq &&
		d.RestaurantId == o.RestaurantId &&
		d.DeliveryAddress == o.DeliveryAddress &&
		d.SpecialInstructions == o.SpecialInstructions &&
		slices.EqualFunc(d.Items, o.Items, LineItem.Equal)
}

// StatusChange is the request body of PUT /orders/{id}/status
type StatusChange struct {
	Status Status `json:"status"`
}
