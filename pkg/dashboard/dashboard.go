// Package dashboard computes administrative statistics.
package dashboard

import (
	"context"

	"github.com/opst/foodfab/pkg/api/types/orders"
	"github.com/opst/foodfab/pkg/api/types/restaurants"
	"github.com/opst/foodfab/pkg/api/types/users"
	"github.com/opst/foodfab/pkg/money"
	"golang.org/x/sync/errgroup"
)

// number of orders in Dashboard.Recent
const RecentOrders = 5

// Source provides the whole collections. Admin endpoints of the backend serve this.
type Source interface {
	AdminUsers(ctx context.Context) ([]users.User, error)
	AdminRestaurants(ctx context.Context) ([]restaurants.Detail, error)
	AdminOrders(ctx context.Context) ([]orders.Detail, error)
}

type Stats struct {
	TotalUsers       int          `json:"totalUsers"`
	TotalRestaurants int          `json:"totalRestaurants"`
	TotalOrders      int          `json:"totalOrders"`
	TotalRevenue     money.Amount `json:"totalRevenue"`
	PendingOrders    int          `json:"pendingOrders"`

	// users who have logged in at least once
	ActiveUsers int `json:"activeUsers"`
}

type Dashboard struct {
	Stats Stats `json:"stats"`

	// first orders as the backend listed them
	Recent []orders.Detail `json:"recentOrders"`
}

// Collect fetches users, restaurants and orders concurrently, and summarizes them.
//
// If any fetch fails, the others are cancelled and the first error is returned.
func Collect(ctx context.Context, src Source) (*Dashboard, error) {
	var us []users.User
	var rs []restaurants.Detail
	var ords []orders.Detail

	eg, ctx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		var err error
		us, err = src.AdminUsers(ctx)
		return err
	})
	eg.Go(func() error {
		var err error
		rs, err = src.AdminRestaurants(ctx)
		return err
	})
	eg.Go(func() error {
		var err error
		ords, err = src.AdminOrders(ctx)
		return err
	})
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	return Summarize(us, rs, ords), nil
}

// Summarize computes a Dashboard from collections.
func Summarize(us []users.User, rs []restaurants.Detail, ords []orders.Detail) *Dashboard {
	stats := Stats{
		TotalUsers:       len(us),
		TotalRestaurants: len(rs),
		TotalOrders:      len(ords),
	}
	for _, o := range ords {
		stats.TotalRevenue = stats.TotalRevenue.Add(o.TotalAmount)
		if o.Status == orders.StatusPending {
			stats.PendingOrders += 1
		}
	}
	for _, u := range us {
		if u.LastLogin != nil {
			stats.ActiveUsers += 1
		}
	}

	recent := ords[:min(len(ords), RecentOrders)]
	return &Dashboard{Stats: stats, Recent: append([]orders.Detail{}, recent...)}
}
