package show

import (
	"context"
	"fmt"
	"log"

	"github.com/opst/foodfab/cmd/food/env"
	frest "github.com/opst/foodfab/cmd/food/rest"
	"github.com/opst/foodfab/cmd/food/subcommands/common"
	order_create "github.com/opst/foodfab/cmd/food/subcommands/order/create"
	"github.com/opst/foodfab/pkg/api/types/ids"
	"github.com/opst/foodfab/pkg/session"
	"github.com/youta-t/flarc"
)

const ARG_ORDER_ID = "ORDER_ID"

func New() (flarc.Command, error) {
	return flarc.NewCommand(
		"Return the order for the specified Order Id.",
		struct{}{},
		flarc.Args{
			{
				Name: ARG_ORDER_ID, Required: true,
				Help: "Id of the order to be shown",
			},
		},
		common.NewTask(Task()),
	)
}

func Task() common.Task[struct{}] {
	return func(
		ctx context.Context,
		logger *log.Logger,
		_ env.FoodEnv,
		client frest.FoodClient,
		sess *session.Session,
		cl flarc.Commandline[struct{}],
		_ []any,
	) error {
		if err := sess.Require(); err != nil {
			return err
		}
		orderId := ids.ID(cl.Args()[ARG_ORDER_ID][0])

		o, err := client.GetOrder(ctx, orderId)
		if err != nil {
			return fmt.Errorf("%w: Order Id:%s", err, orderId)
		}
		if !o.Status.Known() {
			logger.Printf("order %s is in unknown status: %s", orderId, o.Status)
		}
		return order_create.Print(cl.Stdout(), o)
	}
}
