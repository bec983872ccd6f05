package show_test

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/opst/foodfab/cmd/food/env"
	"github.com/opst/foodfab/cmd/food/rest/mock"
	"github.com/opst/foodfab/cmd/food/subcommands/internal/commandline"
	"github.com/opst/foodfab/cmd/food/subcommands/internal/sessions"
	"github.com/opst/foodfab/cmd/food/subcommands/logger"
	restaurant_show "github.com/opst/foodfab/cmd/food/subcommands/restaurant/show"
	"github.com/opst/foodfab/pkg/api/types/ids"
	"github.com/opst/foodfab/pkg/api/types/restaurants"
	"github.com/opst/foodfab/pkg/money"
)

func ptr[T any](v T) *T {
	return &v
}

var (
	sushiGo = restaurants.Detail{Id: "2", Name: "Sushi Go", CuisineType: "Japanese", Rating: 4.7}
	menu    = []restaurants.MenuItem{
		{Id: "21", Name: "Salmon Roll", Price: money.MustParse("6.50")},
		{Id: "22", Name: "Uni", Price: money.MustParse("12.00"), IsAvailable: ptr(false)},
	}
)

func TestShowCommand(t *testing.T) {
	theory := func(flags restaurant_show.Flags, expectedMenu []ids.ID) func(*testing.T) {
		return func(t *testing.T) {
			client := mock.New(t)
			client.Impl.GetRestaurant = func(ctx context.Context, restaurantId ids.ID) (*restaurants.Detail, error) {
				return &sushiGo, nil
			}
			client.Impl.GetMenu = func(ctx context.Context, restaurantId ids.ID) ([]restaurants.MenuItem, error) {
				return menu, nil
			}
			stdout := new(strings.Builder)

			err := restaurant_show.Task(restaurant_show.RunShowRestaurant)(
				context.Background(), logger.Null(), *env.New(), client, sessions.SignedOut(client),
				commandline.MockCommandline[restaurant_show.Flags]{
					Stdout_: stdout,
					Flags_:  flags,
					Args_:   map[string][]string{restaurant_show.ARG_RESTAURANT_ID: {"2"}},
				},
				[]any{},
			)
			if err != nil {
				t.Fatal(err)
			}

			if len(client.Calls.GetRestaurant) != 1 || client.Calls.GetRestaurant[0] != "2" {
				t.Errorf("GetRestaurant calls: %v", client.Calls.GetRestaurant)
			}
			if len(client.Calls.GetMenu) != 1 || client.Calls.GetMenu[0] != "2" {
				t.Errorf("GetMenu calls: %v", client.Calls.GetMenu)
			}

			var actual restaurant_show.Detail
			if err := json.Unmarshal([]byte(stdout.String()), &actual); err != nil {
				t.Fatal(err)
			}
			if !actual.Restaurant.Equal(sushiGo) {
				t.Errorf("restaurant: %+v", actual.Restaurant)
			}
			got := []ids.ID{}
			for _, m := range actual.Menu {
				got = append(got, m.Id)
			}
			if diff := cmp.Diff(expectedMenu, got); diff != "" {
				t.Errorf("menu: (-expected, +actual)\n%s", diff)
			}
		}
	}

	t.Run("it prints the restaurant with whole menu", theory(
		restaurant_show.Flags{}, []ids.ID{"21", "22"},
	))
	t.Run("when --available, it prints available items only", theory(
		restaurant_show.Flags{Available: true}, []ids.ID{"21"},
	))
}

func TestRunShowRestaurant(t *testing.T) {
	t.Run("when the menu cannot be fetched, it returns the error", func(t *testing.T) {
		expectedError := errors.New("fake error")
		client := mock.New(t)
		client.Impl.GetRestaurant = func(ctx context.Context, restaurantId ids.ID) (*restaurants.Detail, error) {
			return &sushiGo, nil
		}
		client.Impl.GetMenu = func(ctx context.Context, restaurantId ids.ID) ([]restaurants.MenuItem, error) {
			return nil, expectedError
		}

		if _, err := restaurant_show.RunShowRestaurant(context.Background(), client, "2"); !errors.Is(err, expectedError) {
			t.Errorf("unexpected error: %v", err)
		}
	})

	t.Run("when the menu is empty, it is an empty list", func(t *testing.T) {
		client := mock.New(t)
		client.Impl.GetRestaurant = func(ctx context.Context, restaurantId ids.ID) (*restaurants.Detail, error) {
			return &sushiGo, nil
		}
		client.Impl.GetMenu = func(ctx context.Context, restaurantId ids.ID) ([]restaurants.MenuItem, error) {
			return nil, nil
		}

		d, err := restaurant_show.RunShowRestaurant(context.Background(), client, "2")
		if err != nil {
			t.Fatal(err)
		}
		if d.Menu == nil || len(d.Menu) != 0 {
			t.Errorf("menu: %v", d.Menu)
		}
	})
}
