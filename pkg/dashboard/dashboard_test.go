package dashboard_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/opst/foodfab/pkg/api/types/ids"
	"github.com/opst/foodfab/pkg/api/types/orders"
	"github.com/opst/foodfab/pkg/api/types/restaurants"
	"github.com/opst/foodfab/pkg/api/types/users"
	"github.com/opst/foodfab/pkg/dashboard"
	"github.com/opst/foodfab/pkg/money"
	"github.com/opst/foodfab/pkg/utils/rfctime"
)

type fakeSource struct {
	users       []users.User
	restaurants []restaurants.Detail
	orders      []orders.Detail
	errOrders   error
}

func (f fakeSource) AdminUsers(ctx context.Context) ([]users.User, error) {
	return f.users, nil
}

func (f fakeSource) AdminRestaurants(ctx context.Context) ([]restaurants.Detail, error) {
	return f.restaurants, nil
}

func (f fakeSource) AdminOrders(ctx context.Context) ([]orders.Detail, error) {
	if f.errOrders != nil {
		return nil, f.errOrders
	}
	return f.orders, nil
}

func order(id ids.ID, status orders.Status, total string) orders.Detail {
	return orders.Detail{Id: id, Status: status, TotalAmount: money.MustParse(total)}
}

func TestCollect(t *testing.T) {
	lastLogin := rfctime.RFC3339(time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC))

	t.Run("it summarizes collections", func(t *testing.T) {
		src := fakeSource{
			users: []users.User{
				{Id: "1", Username: "a", LastLogin: &lastLogin},
				{Id: "2", Username: "b"},
				{Id: "3", Username: "c", LastLogin: &lastLogin},
			},
			restaurants: []restaurants.Detail{{Id: "1"}, {Id: "2"}},
			orders: []orders.Detail{
				order("1", orders.StatusPending, "10.10"),
				order("2", orders.StatusDelivered, "20.20"),
				order("3", orders.StatusPending, "0.1"),
				order("4", orders.StatusCancelled, "0.2"),
				order("5", orders.Status("Refunded"), "1"),
				order("6", orders.StatusConfirmed, "2"),
			},
		}

		actual, err := dashboard.Collect(context.Background(), src)
		if err != nil {
			t.Fatal(err)
		}

		expected := dashboard.Stats{
			TotalUsers:       3,
			TotalRestaurants: 2,
			TotalOrders:      6,
			TotalRevenue:     money.MustParse("33.6"),
			PendingOrders:    2,
			ActiveUsers:      2,
		}
		if actual.Stats.TotalUsers != expected.TotalUsers ||
			actual.Stats.TotalRestaurants != expected.TotalRestaurants ||
			actual.Stats.TotalOrders != expected.TotalOrders ||
			!actual.Stats.TotalRevenue.Equal(expected.TotalRevenue) ||
			actual.Stats.PendingOrders != expected.PendingOrders ||
			actual.Stats.ActiveUsers != expected.ActiveUsers {
			t.Errorf("stats: (actual, expected) = (%+v, %+v)", actual.Stats, expected)
		}

		if len(actual.Recent) != 5 {
			t.Fatalf("recent: %d orders", len(actual.Recent))
		}
		for i, o := range actual.Recent {
			if !o.Equal(src.orders[i]) {
				t.Errorf("recent[%d]: (actual, expected) = (%+v, %+v)", i, o, src.orders[i])
			}
		}
	})

	t.Run("when there are no orders, revenue is 0 and recent is empty", func(t *testing.T) {
		actual, err := dashboard.Collect(context.Background(), fakeSource{})
		if err != nil {
			t.Fatal(err)
		}
		if !actual.Stats.TotalRevenue.IsZero() || len(actual.Recent) != 0 {
			t.Errorf("unexpected: %+v", actual)
		}
	})

	t.Run("when a fetch fails, it returns the error", func(t *testing.T) {
		cause := errors.New("forbidden")
		_, err := dashboard.Collect(context.Background(), fakeSource{errOrders: cause})
		if !errors.Is(err, cause) {
			t.Errorf("unexpected error: %v", err)
		}
	})
}
