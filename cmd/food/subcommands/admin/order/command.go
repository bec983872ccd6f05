package order

import (
	"context"
	"log"

	"github.com/opst/foodfab/cmd/food/env"
	frest "github.com/opst/foodfab/cmd/food/rest"
	"github.com/opst/foodfab/cmd/food/subcommands/common"
	order_create "github.com/opst/foodfab/cmd/food/subcommands/order/create"
	"github.com/opst/foodfab/pkg/api/types/orders"
	"github.com/opst/foodfab/pkg/api/types/users"
	kflag "github.com/opst/foodfab/pkg/commandline/flag"
	"github.com/opst/foodfab/pkg/session"
	"github.com/youta-t/flarc"
)

type Flags struct {
	Status kflag.Status `flag:"status" alias:"s" metavar:"Pending|Confirmed|Preparing|OutForDelivery|Delivered|Cancelled" help:"list orders in this status only."`
}

func New() (flarc.Command, error) {
	ls, err := flarc.NewCommand(
		"List all orders.",
		Flags{},
		flarc.Args{},
		common.NewTask(ListTask()),
	)
	if err != nil {
		return nil, err
	}
	return flarc.NewCommandGroup(
		"Manage orders. Admin only.",
		struct{}{},
		flarc.WithSubcommand("ls", ls),
	)
}

func ListTask() common.Task[Flags] {
	return func(
		ctx context.Context,
		logger *log.Logger,
		_ env.FoodEnv,
		client frest.FoodClient,
		sess *session.Session,
		cl flarc.Commandline[Flags],
		_ []any,
	) error {
		if err := sess.Require(users.RoleAdmin); err != nil {
			return err
		}
		status := orders.Status(cl.Flags().Status)

		found, err := client.AdminOrders(ctx)
		if err != nil {
			return err
		}
		ret := make([]orders.Detail, 0, len(found))
		for _, o := range found {
			if status != "" && o.Status != status {
				continue
			}
			ret = append(ret, o)
		}
		return order_create.Print(cl.Stdout(), ret)
	}
}
