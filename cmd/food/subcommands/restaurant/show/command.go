package show

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/opst/foodfab/cmd/food/env"
	frest "github.com/opst/foodfab/cmd/food/rest"
	"github.com/opst/foodfab/cmd/food/subcommands/common"
	"github.com/opst/foodfab/pkg/api/types/ids"
	"github.com/opst/foodfab/pkg/api/types/restaurants"
	"github.com/opst/foodfab/pkg/session"
	"github.com/youta-t/flarc"
	"golang.org/x/sync/errgroup"
)

const ARG_RESTAURANT_ID = "RESTAURANT_ID"

type Flags struct {
	Available bool `flag:"available" alias:"a" help:"show available menu items only"`
}

// Detail is a restaurant with its menu.
type Detail struct {
	Restaurant restaurants.Detail     `json:"restaurant"`
	Menu       []restaurants.MenuItem `json:"menu"`
}

func New() (flarc.Command, error) {
	return flarc.NewCommand(
		"Show a restaurant with its menu.",
		Flags{},
		flarc.Args{
			{
				Name: ARG_RESTAURANT_ID, Required: true,
				Help: "Id of the restaurant to be shown",
			},
		},
		common.NewTask(Task(RunShowRestaurant)),
	)
}

func Task(
	show func(context.Context, frest.FoodClient, ids.ID) (*Detail, error),
) common.Task[Flags] {
	return func(
		ctx context.Context,
		logger *log.Logger,
		_ env.FoodEnv,
		client frest.FoodClient,
		_ *session.Session,
		cl flarc.Commandline[Flags],
		_ []any,
	) error {
		restaurantId := ids.ID(cl.Args()[ARG_RESTAURANT_ID][0])

		d, err := show(ctx, client, restaurantId)
		if err != nil {
			return fmt.Errorf("%w: Restaurant Id:%s", err, restaurantId)
		}
		if cl.Flags().Available {
			menu := make([]restaurants.MenuItem, 0, len(d.Menu))
			for _, m := range d.Menu {
				if m.Available() {
					menu = append(menu, m)
				}
			}
			d.Menu = menu
		}

		enc := json.NewEncoder(cl.Stdout())
		enc.SetIndent("", "    ")
		if err := enc.Encode(d); err != nil {
			logger.Panicf("fail to dump found restaurant")
		}
		return nil
	}
}

// RunShowRestaurant fetches the restaurant and its menu concurrently.
func RunShowRestaurant(
	ctx context.Context, client frest.FoodClient, restaurantId ids.ID,
) (*Detail, error) {
	var r *restaurants.Detail
	var menu []restaurants.MenuItem

	eg, ctx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		got, err := client.GetRestaurant(ctx, restaurantId)
		if err != nil {
			return err
		}
		r = got
		return nil
	})
	eg.Go(func() error {
		got, err := client.GetMenu(ctx, restaurantId)
		if err != nil {
			return err
		}
		menu = got
		return nil
	})
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	if menu == nil {
		menu = []restaurants.MenuItem{}
	}
	return &Detail{Restaurant: *r, Menu: menu}, nil
}
