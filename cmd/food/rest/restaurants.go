package rest

import (
	"context"
	"net/http"

	"github.com/opst/foodfab/pkg/api/types/ids"
	"github.com/opst/foodfab/pkg/api/types/restaurants"
)

func (c *client) Health(ctx context.Context) error {
	return c.send(ctx, http.MethodGet, nil, MessageFor{
		Status4xx: "backend is not serving the API. check apiRoot of your profile",
		Status5xx: "backend is unhealthy",
	})
}

func (c *client) GetRestaurants(ctx context.Context) ([]restaurants.Detail, error) {
	rs, err := getJson[[]restaurants.Detail](ctx, c, MessageFor{
		Status4xx: "cannot list restaurants",
		Status5xx: "server error",
	}, "restaurants")
	if err != nil {
		return nil, err
	}
	return *rs, nil
}

func (c *client) GetRestaurant(ctx context.Context, restaurantId ids.ID) (*restaurants.Detail, error) {
	return getJson[restaurants.Detail](ctx, c, MessageFor{
		Status4xx: "restaurant not found",
		Status5xx: "server error",
	}, "restaurants", restaurantId.String())
}

func (c *client) CreateRestaurant(ctx context.Context, spec restaurants.Spec) (*restaurants.Detail, error) {
	return sendJson[restaurants.Detail](ctx, c, http.MethodPost, spec, MessageFor{
		Status4xx: "cannot create restaurant",
		Status5xx: "server error",
	}, "restaurants")
}

func (c *client) UpdateRestaurant(ctx context.Context, restaurantId ids.ID, spec restaurants.Spec) error {
	return c.send(ctx, http.MethodPut, spec, MessageFor{
		Status4xx: "cannot update restaurant",
		Status5xx: "server error",
	}, "restaurants", restaurantId.String())
}

func (c *client) DeleteRestaurant(ctx context.Context, restaurantId ids.ID) error {
	return c.send(ctx, http.MethodDelete, nil, MessageFor{
		Status4xx: "cannot delete restaurant",
		Status5xx: "server error",
	}, "restaurants", restaurantId.String())
}

func (c *client) GetMenu(ctx context.Context, restaurantId ids.ID) ([]restaurants.MenuItem, error) {
	menu, err := getJson[[]restaurants.MenuItem](ctx, c, MessageFor{
		Status4xx: "cannot get menu",
		Status5xx: "server error",
	}, "restaurants", restaurantId.String(), "menu")
	if err != nil {
		return nil, err
	}
	return *menu, nil
}

func (c *client) AddMenuItem(ctx context.Context, restaurantId ids.ID, spec restaurants.MenuItemSpec) (*restaurants.MenuItem, error) {
	return sendJson[restaurants.MenuItem](ctx, c, http.MethodPost, spec, MessageFor{
		Status4xx: "cannot add menu item",
		Status5xx: "server error",
	}, "restaurants", restaurantId.String(), "menu")
}
