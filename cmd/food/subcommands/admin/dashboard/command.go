package dashboard

import (
	"context"
	"log"

	"github.com/opst/foodfab/cmd/food/env"
	frest "github.com/opst/foodfab/cmd/food/rest"
	"github.com/opst/foodfab/cmd/food/subcommands/common"
	order_create "github.com/opst/foodfab/cmd/food/subcommands/order/create"
	"github.com/opst/foodfab/pkg/api/types/users"
	"github.com/opst/foodfab/pkg/dashboard"
	"github.com/opst/foodfab/pkg/session"
	"github.com/youta-t/flarc"
)

func New() (flarc.Command, error) {
	return flarc.NewCommand(
		"Show statistics of the service.",
		struct{}{},
		flarc.Args{},
		common.NewTask(Task(dashboard.Collect)),
		flarc.WithDescription(`
Show numbers of users, restaurants and orders, revenue and recent orders.

Admin only.
`),
	)
}

func Task(
	collect func(context.Context, dashboard.Source) (*dashboard.Dashboard, error),
) common.Task[struct{}] {
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
		d, err := collect(ctx, client)
		if err != nil {
			return err
		}
		return order_create.Print(cl.Stdout(), d)
	}
}
