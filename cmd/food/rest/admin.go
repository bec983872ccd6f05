package rest

import (
	"context"
	"net/http"

	"github.com/opst/foodfab/pkg/api/types/ids"
	"github.com/opst/foodfab/pkg/api/types/orders"
	"github.com/opst/foodfab/pkg/api/types/restaurants"
	"github.com/opst/foodfab/pkg/api/types/users"
)

var adminMessage = MessageFor{
	Status4xx: "admin request is rejected. are you signed in as Admin?",
	Status5xx: "server error",
}

func (c *client) AdminUsers(ctx context.Context) ([]users.User, error) {
	us, err := getJson[[]users.User](ctx, c, adminMessage, "admin", "users")
	if err != nil {
		return nil, err
	}
	return *us, nil
}

func (c *client) AdminDeleteUser(ctx context.Context, userId ids.ID) error {
	return c.send(ctx, http.MethodDelete, nil, adminMessage, "admin", "users", userId.String())
}

func (c *client) AdminRestaurants(ctx context.Context) ([]restaurants.Detail, error) {
	rs, err := getJson[[]restaurants.Detail](ctx, c, adminMessage, "admin", "restaurants")
	if err != nil {
		return nil, err
	}
	return *rs, nil
}

func (c *client) AdminDeleteRestaurant(ctx context.Context, restaurantId ids.ID) error {
	return c.send(ctx, http.MethodDelete, nil, adminMessage, "admin", "restaurants", restaurantId.String())
}

func (c *client) AdminOrders(ctx context.Context) ([]orders.Detail, error) {
	found, err := getJson[[]orders.Detail](ctx, c, adminMessage, "admin", "orders")
	if err != nil {
		return nil, err
	}
	return *found, nil
}
