package find

import (
	"context"
	"fmt"
	"log"

	"github.com/opst/foodfab/cmd/food/env"
	frest "github.com/opst/foodfab/cmd/food/rest"
	"github.com/opst/foodfab/cmd/food/subcommands/common"
	order_create "github.com/opst/foodfab/cmd/food/subcommands/order/create"
	"github.com/opst/foodfab/pkg/api/types/ids"
	"github.com/opst/foodfab/pkg/api/types/orders"
	"github.com/opst/foodfab/pkg/session"
	"github.com/youta-t/flarc"
)

type Flags struct {
	Customer string   `flag:"customer" alias:"c" help:"find orders of this customer. Defaults to you."`
	All      bool     `flag:"all" help:"find all orders visible to you. Exclusive with --customer."`
	Status   []string `flag:"status" alias:"s" metavar:"Pending|Confirmed|Preparing|OutForDelivery|Delivered|Cancelled..." help:"find orders in this status. Repeatable."`
}

func New() (flarc.Command, error) {
	return flarc.NewCommand(
		"Find orders.",
		Flags{},
		flarc.Args{},
		common.NewTask(Task()),
		flarc.WithDescription(`
Find orders and print them as JSON.

By default, it finds orders placed by you.
`),
	)
}

func Task() common.Task[Flags] {
	return func(
		ctx context.Context,
		logger *log.Logger,
		_ env.FoodEnv,
		client frest.FoodClient,
		sess *session.Session,
		cl flarc.Commandline[Flags],
		_ []any,
	) error {
		if err := sess.Require(); err != nil {
			return err
		}
		flags := cl.Flags()
		if flags.All && flags.Customer != "" {
			return fmt.Errorf("%w: --all and --customer are exclusive", flarc.ErrUsage)
		}
		statuses := map[orders.Status]struct{}{}
		for _, s := range flags.Status {
			st, err := orders.ParseStatus(s)
			if err != nil {
				return fmt.Errorf("%w: %w", flarc.ErrUsage, err)
			}
			statuses[st] = struct{}{}
		}

		var found []orders.Detail
		var err error
		switch {
		case flags.All:
			found, err = client.GetOrders(ctx)
		case flags.Customer != "":
			found, err = client.GetCustomerOrders(ctx, ids.ID(flags.Customer))
		default:
			found, err = client.GetCustomerOrders(ctx, sess.User().Id)
		}
		if err != nil {
			return err
		}

		ret := make([]orders.Detail, 0, len(found))
		for _, o := range found {
			if len(statuses) != 0 {
				if _, ok := statuses[o.Status]; !ok {
					continue
				}
			}
			ret = append(ret, o)
		}
		return order_create.Print(cl.Stdout(), ret)
	}
}
