package rm

import (
	"context"
	"log"

	"github.com/opst/foodfab/cmd/food/env"
	frest "github.com/opst/foodfab/cmd/food/rest"
	"github.com/opst/foodfab/cmd/food/subcommands/common"
	"github.com/opst/foodfab/pkg/api/types/ids"
	"github.com/opst/foodfab/pkg/api/types/users"
	"github.com/opst/foodfab/pkg/session"
	"github.com/youta-t/flarc"
)

type Option struct {
	remove func(
		ctx context.Context,
		client frest.FoodClient,
		restaurantId ids.ID,
	) error
}

func WithRemover(
	remove func(
		ctx context.Context,
		client frest.FoodClient,
		restaurantId ids.ID,
	) error,
) func(*Option) *Option {
	return func(opt *Option) *Option {
		opt.remove = remove
		return opt
	}
}

const ARG_RESTAURANT_ID = "RESTAURANT_ID"

func New(
	options ...func(*Option) *Option,
) (flarc.Command, error) {
	option := &Option{
		remove: RunDeleteRestaurant,
	}
	for _, opt := range options {
		option = opt(option)
	}

	return flarc.NewCommand(
		"Delete the restaurant for the specified Restaurant Id.",
		struct{}{},
		flarc.Args{
			{
				Name:       ARG_RESTAURANT_ID,
				Required:   true,
				Repeatable: false,
				Help:       "Id of the restaurant to be deleted.",
			},
		},
		common.NewTask(Task(option.remove)),
	)
}

func Task(
	remove func(context.Context, frest.FoodClient, ids.ID) error,
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
		if err := sess.Require(users.RoleRestaurantOwner, users.RoleAdmin); err != nil {
			return err
		}

		restaurantId := ids.ID(cl.Args()[ARG_RESTAURANT_ID][0])
		if err := remove(ctx, client, restaurantId); err != nil {
			return err
		}
		logger.Printf("deleted Restaurant Id:%v", restaurantId)
		return nil
	}
}

func RunDeleteRestaurant(ctx context.Context, client frest.FoodClient, restaurantId ids.ID) error {
	return client.DeleteRestaurant(ctx, restaurantId)
}
