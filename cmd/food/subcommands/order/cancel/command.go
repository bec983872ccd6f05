package cancel

import (
	"context"
	"fmt"
	"log"

	"github.com/opst/foodfab/cmd/food/env"
	frest "github.com/opst/foodfab/cmd/food/rest"
	"github.com/opst/foodfab/cmd/food/subcommands/common"
	"github.com/opst/foodfab/pkg/api/types/ids"
	"github.com/opst/foodfab/pkg/session"
	"github.com/youta-t/flarc"
)

const ARG_ORDER_ID = "ORDER_ID"

func New() (flarc.Command, error) {
	return flarc.NewCommand(
		"Cancel the order for the specified Order Id.",
		struct{}{},
		flarc.Args{
			{
				Name: ARG_ORDER_ID, Required: true,
				Help: "Id of the order to be cancelled",
			},
		},
		common.NewTask(Task()),
		flarc.WithDescription(`
Ask the backend to cancel the order.

The backend decides whether the order can be cancelled.
`),
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

		if err := client.CancelOrder(ctx, orderId); err != nil {
			return fmt.Errorf("%w: Order Id:%s", err, orderId)
		}
		logger.Printf("cancelled Order Id:%s", orderId)
		return nil
	}
}
