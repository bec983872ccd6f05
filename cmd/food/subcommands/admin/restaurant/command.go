package restaurant

import (
	"context"
	"log"

	"github.com/opst/foodfab/cmd/food/env"
	frest "github.com/opst/foodfab/cmd/food/rest"
	"github.com/opst/foodfab/cmd/food/subcommands/common"
	order_create "github.com/opst/foodfab/cmd/food/subcommands/order/create"
	restaurant_rm "github.com/opst/foodfab/cmd/food/subcommands/restaurant/rm"
	"github.com/opst/foodfab/pkg/api/types/ids"
	"github.com/opst/foodfab/pkg/api/types/users"
	"github.com/opst/foodfab/pkg/session"
	"github.com/youta-t/flarc"
)

func New() (flarc.Command, error) {
	ls, err := flarc.NewCommand(
		"List all restaurants.",
		struct{}{},
		flarc.Args{},
		common.NewTask(ListTask()),
	)
	if err != nil {
		return nil, err
	}
	rm, err := restaurant_rm.New(restaurant_rm.WithRemover(RunDeleteRestaurant))
	if err != nil {
		return nil, err
	}

	return flarc.NewCommandGroup(
		"Manage restaurants. Admin only.",
		struct{}{},
		flarc.WithSubcommand("ls", ls),
		flarc.WithSubcommand("rm", rm),
	)
}

func ListTask() common.Task[struct{}] {
	return func(
		ctx context.Context,
		logger *log.Logger,
		_ env.FoodEnv,
		client frest.FoodClient,
		sess *session.Session,
		cl flarc.Commandline[struct{}],
		_ []any,
	) error {
		if err := sess.Require(users.RoleAdmin); err != nil {
			return err
		}
		found, err := client.AdminRestaurants(ctx)
		if err != nil {
			return err
		}
		return order_create.Print(cl.Stdout(), found)
	}
}

// RunDeleteRestaurant deletes the restaurant through the admin endpoint.
func RunDeleteRestaurant(ctx context.Context, client frest.FoodClient, restaurantId ids.ID) error {
	return client.AdminDeleteRestaurant(ctx, restaurantId)
}
