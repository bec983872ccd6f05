package menu

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/opst/foodfab/cmd/food/env"
	frest "github.com/opst/foodfab/cmd/food/rest"
	"github.com/opst/foodfab/cmd/food/subcommands/common"
	"github.com/opst/foodfab/pkg/api/types/ids"
	"github.com/opst/foodfab/pkg/api/types/restaurants"
	"github.com/opst/foodfab/pkg/api/types/users"
	"github.com/opst/foodfab/pkg/session"
	"github.com/youta-t/flarc"
	"gopkg.in/yaml.v3"
)

const (
	ARG_RESTAURANT_ID  = "RESTAURANT_ID"
	ARG_MENU_ITEM_FILE = "MENU_ITEM_FILE"
)

var ErrInvalidMenuItem = errors.New("menu item file is invalid")

func New() (flarc.Command, error) {
	add, err := NewAdd()
	if err != nil {
		return nil, err
	}
	return flarc.NewCommandGroup(
		"Manipulate menu of restaurants.",
		struct{}{},
		flarc.WithSubcommand("add", add),
	)
}

// ReadSpec reads a menu item from yaml file.
func ReadSpec(path string) (restaurants.MenuItemSpec, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return restaurants.MenuItemSpec{}, err
	}
	spec := restaurants.MenuItemSpec{}
	if err := yaml.Unmarshal(content, &spec); err != nil {
		return restaurants.MenuItemSpec{}, fmt.Errorf("%w: %s: %w", ErrInvalidMenuItem, path, err)
	}
	spec.Name = strings.TrimSpace(spec.Name)
	if spec.Name == "" {
		return restaurants.MenuItemSpec{}, fmt.Errorf("%w: %s: name is required", ErrInvalidMenuItem, path)
	}
	if spec.Price.IsNegative() {
		return restaurants.MenuItemSpec{}, fmt.Errorf("%w: %s: price should not be negative", ErrInvalidMenuItem, path)
	}
	return spec, nil
}

func NewAdd() (flarc.Command, error) {
	return flarc.NewCommand(
		"Add an item to the menu of a restaurant.",
		struct{}{},
		flarc.Args{
			{
				Name: ARG_RESTAURANT_ID, Required: true,
				Help: "Id of the restaurant",
			},
			{
				Name: ARG_MENU_ITEM_FILE, Required: true,
				Help: "path to the menu item yaml file",
			},
		},
		common.NewTask(AddTask()),
		flarc.WithDescription(`
MENU_ITEM_FILE is a yaml file like below:

    name: Salmon Roll
    description: 8 pieces
    price: 6.50
    category: Rolls

"name" is required. "price" should not be negative.
`),
	)
}

func AddTask() common.Task[struct{}] {
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
		spec, err := ReadSpec(cl.Args()[ARG_MENU_ITEM_FILE][0])
		if err != nil {
			return errors.Join(flarc.ErrUsage, err)
		}

		added, err := client.AddMenuItem(ctx, restaurantId, spec)
		if err != nil {
			return fmt.Errorf("%w: Restaurant Id:%s", err, restaurantId)
		}

		enc := json.NewEncoder(cl.Stdout())
		enc.SetIndent("", "    ")
		if err := enc.Encode(added); err != nil {
			logger.Panicf("fail to dump added menu item")
		}
		return nil
	}
}
