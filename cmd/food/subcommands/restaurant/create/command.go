package create

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
	ARG_RESTAURANT_FILE = "RESTAURANT_FILE"
	ARG_RESTAURANT_ID   = "RESTAURANT_ID"
)

var ErrInvalidSpec = errors.New("restaurant file is invalid")

const description = `
RESTAURANT_FILE is a yaml file like below:

    name: Sushi Go
    description: conveyor belt sushi
    cuisineType: Japanese
    address: 2 Harbor Rd
    phoneNumber: 555-0100
    imageUrl: https://example.com/sushi.png

"name" is required.
`

// ReadSpec reads a restaurant spec from yaml file.
func ReadSpec(path string) (restaurants.Spec, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return restaurants.Spec{}, err
	}
	spec := restaurants.Spec{}
	if err := yaml.Unmarshal(content, &spec); err != nil {
		return restaurants.Spec{}, fmt.Errorf("%w: %s: %w", ErrInvalidSpec, path, err)
	}
	spec.Name = strings.TrimSpace(spec.Name)
	if spec.Name == "" {
		return restaurants.Spec{}, fmt.Errorf("%w: %s: name is required", ErrInvalidSpec, path)
	}
	return spec, nil
}

func New() (flarc.Command, error) {
	return flarc.NewCommand(
		"Register a new restaurant.",
		struct{}{},
		flarc.Args{
			{
				Name: ARG_RESTAURANT_FILE, Required: true,
				Help: "path to the restaurant yaml file",
			},
		},
		common.NewTask(Task()),
		flarc.WithDescription(description),
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

		spec, err := ReadSpec(cl.Args()[ARG_RESTAURANT_FILE][0])
		if err != nil {
			return errors.Join(flarc.ErrUsage, err)
		}

		created, err := client.CreateRestaurant(ctx, spec)
		if err != nil {
			return err
		}

		enc := json.NewEncoder(cl.Stdout())
		enc.SetIndent("", "    ")
		if err := enc.Encode(created); err != nil {
			logger.Panicf("fail to dump created restaurant")
		}
		return nil
	}
}

func NewUpdate() (flarc.Command, error) {
	return flarc.NewCommand(
		"Overwrite a restaurant.",
		struct{}{},
		flarc.Args{
			{
				Name: ARG_RESTAURANT_ID, Required: true,
				Help: "Id of the restaurant to be updated",
			},
			{
				Name: ARG_RESTAURANT_FILE, Required: true,
				Help: "path to the restaurant yaml file",
			},
		},
		common.NewTask(UpdateTask()),
		flarc.WithDescription(description),
	)
}

func UpdateTask() common.Task[struct{}] {
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
		spec, err := ReadSpec(cl.Args()[ARG_RESTAURANT_FILE][0])
		if err != nil {
			return errors.Join(flarc.ErrUsage, err)
		}

		if err := client.UpdateRestaurant(ctx, restaurantId, spec); err != nil {
			return fmt.Errorf("%w: Restaurant Id:%s", err, restaurantId)
		}
		logger.Printf("updated Restaurant Id:%s", restaurantId)
		return nil
	}
}
