package rest

import (
	"context"
	"net/http"

	"github.com/opst/foodfab/pkg/api/types/ids"
	"github.com/opst/foodfab/pkg/api/types/orders"
)

func (c *client) CreateOrder(ctx context.Context, draft orders.Draft) (*orders.Detail, error) {
	return sendJson[orders.Detail](ctx, c, http.MethodPost, draft, MessageFor{
		Status4xx: "order is rejected",
		Status5xx: "server error",
	}, "orders")
}

func (c *client) GetOrder(ctx context.Context, orderId ids.ID) (*orders.Detail, error) {
	return getJson[orders.Detail](ctx, c, MessageFor{
		Status4xx: "order not found",
		Status5xx: "server error",
	}, "orders", orderId.String())
}

func (c *client) GetCustomerOrders(ctx context.Context, customerId ids.ID) ([]orders.Detail, error) {
	found, err := getJson[[]orders.Detail](ctx, c, MessageFor{
		Status4xx: "cannot list orders",
		Status5xx: "server error",
	}, "orders", "customer", customerId.String())
	if err != nil {
		return nil, err
	}
	return *found, nil
}

func (c *client) GetOrders(ctx context.Context) ([]orders.Detail, error) {
	found, err := getJson[[]orders.Detail](ctx, c, MessageFor{
		Status4xx: "cannot list orders",
		Status5xx: "server error",
	}, "orders")
	if err != nil {
		return nil, err
	}
	return *found, nil
}

func (c *client) CancelOrder(ctx context.Context, orderId ids.ID) error {
	return c.send(ctx, http.MethodPut, nil, MessageFor{
		Status4xx: "cannot cancel order",
		Status5xx: "server error",
	}, "orders", orderId.String(), "cancel")
}

func (c *client) UpdateOrderStatus(ctx context.Context, orderId ids.ID, status orders.Status) error {
	return c.send(ctx, http.MethodPut, orders.StatusChange{Status: status}, MessageFor{
		Status4xx: "cannot update order status",
		Status5xx: "server error",
	}, "orders", orderId.String(), "status")
}
