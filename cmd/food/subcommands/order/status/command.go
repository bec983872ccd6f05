package status

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/opst/foodfab/cmd/food/env"
	frest "github.com/opst/foodfab/cmd/food/rest"
	"github.com/opst/foodfab/cmd/food/subcommands/common"
	"github.com/opst/foodfab/pkg/api/types/ids"
	"github.com/opst/foodfab/pkg/api/types/orders"
	"github.com/opst/foodfab/pkg/api/types/users"
	"github.com/opst/foodfab/pkg/session"
	"github.com/youta-t/flarc"
)

const (
	ARG_ORDER_ID = "ORDER_ID"
	ARG_STATUS   = "STATUS"
)

func New() (flarc.Command, error) {
	return flarc.NewCommand(
		"Change status of the order.",
		struct{}{},
		flarc.Args{
			{
				Name: ARG_ORDER_ID, Required: true,
				Help: "Id of the order",
			},
			{
				Name: ARG_STATUS, Required: true,
				Help: "new status. Pending, Confirmed, Preparing, OutForDelivery, Delivered or Cancelled",
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
		if err := sess.Require(users.RoleRestaurantOwner, users.RoleAdmin); err != nil {
			return err
		}
		orderId := ids.ID(cl.Args()[ARG_ORDER_ID][0])
		st, err := orders.ParseStatus(cl.Args()[ARG_STATUS][0])
		if err != nil {
			return errors.Join(flarc.ErrUsage, err)
		}

		if err := client.UpdateOrderStatus(ctx, orderId, st); err != nil {
			return fmt.Errorf("%w: Order Id:%s", err, orderId)
		}
		logger.Printf("Order Id:%s is %s", orderId, st)
		return nil
	}
}
