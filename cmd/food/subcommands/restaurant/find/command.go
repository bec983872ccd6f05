package find

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"slices"

	"github.com/opst/foodfab/cmd/food/env"
	frest "github.com/opst/foodfab/cmd/food/rest"
	"github.com/opst/foodfab/cmd/food/subcommands/common"
	"github.com/opst/foodfab/pkg/api/types/restaurants"
	kflag "github.com/opst/foodfab/pkg/commandline/flag"
	"github.com/opst/foodfab/pkg/listing"
	"github.com/opst/foodfab/pkg/session"
	"github.com/youta-t/flarc"
)

type Flags struct {
	Search  string       `flag:"search" alias:"s" help:"find restaurants whose name, description or cuisine contains this, case-insensitively."`
	Cuisine string       `flag:"cuisine" alias:"c" help:"find restaurants of this cuisine type. \"all\" for any."`
	Rating  kflag.Rating `flag:"rating" alias:"r" metavar:"all|number" help:"find restaurants rated this or higher."`
	Sort    string       `flag:"sort" metavar:"name|rating|newest" help:"order of restaurants."`
}

func New() (flarc.Command, error) {
	return flarc.NewCommand(
		"Find restaurants.",
		Flags{
			Cuisine: listing.CuisineAll,
			Sort:    string(listing.SortByName),
		},
		flarc.Args{},
		common.NewTask(Task(RunFindRestaurants)),
		flarc.WithDescription(`
Find restaurants matching all of the given conditions, and print them as JSON.

    {{ .Command }} --search pizza --rating 4 --sort rating
`),
	)
}

// Query builds listing.Query from flags.
func Query(flags Flags) (listing.Query, error) {
	sort := listing.SortKey(flags.Sort)
	if !slices.Contains([]listing.SortKey{listing.SortByName, listing.SortByRating, listing.SortByNewest}, sort) {
		return listing.Query{}, fmt.Errorf("%w: unknown sort key: %s", flarc.ErrUsage, flags.Sort)
	}
	return listing.Query{
		Search:    flags.Search,
		Cuisine:   flags.Cuisine,
		MinRating: flags.Rating.Min(),
		Sort:      sort,
	}, nil
}

func Task(
	find func(context.Context, frest.FoodClient, listing.Query) ([]restaurants.Detail, error),
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
		q, err := Query(cl.Flags())
		if err != nil {
			return err
		}

		found, err := find(ctx, client, q)
		if err != nil {
			return err
		}

		enc := json.NewEncoder(cl.Stdout())
		enc.SetIndent("", "    ")
		if err := enc.Encode(found); err != nil {
			logger.Panicf("fail to dump found restaurants")
		}
		return nil
	}
}

// RunFindRestaurants fetches all restaurants and narrows them down by q.
func RunFindRestaurants(
	ctx context.Context, client frest.FoodClient, q listing.Query,
) ([]restaurants.Detail, error) {
	all, err := client.GetRestaurants(ctx)
	if err != nil {
		return nil, err
	}
	return listing.Apply(all, q), nil
}

func NewCuisines() (flarc.Command, error) {
	return flarc.NewCommand(
		"List cuisine types of restaurants.",
		struct{}{},
		flarc.Args{},
		common.NewTask(CuisinesTask()),
	)
}

func CuisinesTask() common.Task[struct{}] {
	return func(
		ctx context.Context,
		logger *log.Logger,
		_ env.FoodEnv,
		client frest.FoodClient,
		_ *session.Session,
		cl flarc.Commandline[struct{}],
		_ []any,
	) error {
		all, err := client.GetRestaurants(ctx)
		if err != nil {
			return err
		}
		for _, c := range listing.Cuisines(all) {
			fmt.Fprintln(cl.Stdout(), c)
		}
		return nil
	}
}
