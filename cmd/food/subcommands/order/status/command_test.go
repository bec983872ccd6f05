package status_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/opst/foodfab/cmd/food/env"
	"github.com/opst/foodfab/cmd/food/rest/mock"
	"github.com/opst/foodfab/cmd/food/subcommands/internal/commandline"
	"github.com/opst/foodfab/cmd/food/subcommands/internal/sessions"
	"github.com/opst/foodfab/cmd/food/subcommands/logger"
	order_status "github.com/opst/foodfab/cmd/food/subcommands/order/status"
	"github.com/opst/foodfab/pkg/api/types/ids"
	"github.com/opst/foodfab/pkg/api/types/orders"
	"github.com/opst/foodfab/pkg/api/types/users"
	"github.com/opst/foodfab/pkg/session"
	"github.com/youta-t/flarc"
)

func TestStatusCommand(t *testing.T) {
	type When struct {
		user   users.User
		status string
	}
	type Then struct {
		err   error
		calls []mock.UpdateOrderStatusArgs
	}

	theory := func(when When, then Then) func(*testing.T) {
		return func(t *testing.T) {
			client := mock.New(t)
			client.Impl.UpdateOrderStatus = func(ctx context.Context, orderId ids.ID, status orders.Status) error {
				return nil
			}

			err := order_status.Task()(
				context.Background(), logger.Null(), *env.New(), client,
				sessions.SignedIn(t, client, "tok", when.user),
				commandline.MockCommandline[struct{}]{
					Args_: map[string][]string{
						order_status.ARG_ORDER_ID: {"77"},
						order_status.ARG_STATUS:   {when.status},
					},
				},
				[]any{},
			)
			if then.err != nil {
				if !errors.Is(err, then.err) {
					t.Errorf("unexpected error: (actual, expected) = (%v, %v)", err, then.err)
				}
			} else if err != nil {
				t.Fatal(err)
			}

			if diff := cmp.Diff(then.calls, client.Calls.UpdateOrderStatus); diff != "" {
				t.Errorf("UpdateOrderStatus calls: (-expected, +actual)\n%s", diff)
			}
		}
	}

	owner := users.User{Id: "2", Username: "bob", Role: users.RoleRestaurantOwner}

	t.Run("when an owner sets a status, it is sent", theory(
		When{user: owner, status: "outfordelivery"},
		Then{calls: []mock.UpdateOrderStatusArgs{{OrderId: "77", Status: orders.StatusOutForDelivery}}},
	))

	t.Run("when an admin sets a status, it is sent", theory(
		When{user: users.User{Id: "3", Username: "carol", Role: users.RoleAdmin}, status: "Delivered"},
		Then{calls: []mock.UpdateOrderStatusArgs{{OrderId: "77", Status: orders.StatusDelivered}}},
	))

	t.Run("when the status is unknown, it is a usage error", theory(
		When{user: owner, status: "Eaten"},
		Then{err: flarc.ErrUsage},
	))

	t.Run("when a customer sets a status, it is forbidden", theory(
		When{user: users.User{Id: "1", Username: "alice", Role: users.RoleCustomer}, status: "Delivered"},
		Then{err: session.ErrForbidden},
	))
}
