package restaurant

import (
	restaurant_create "github.com/opst/foodfab/cmd/food/subcommands/restaurant/create"
	restaurant_find "github.com/opst/foodfab/cmd/food/subcommands/restaurant/find"
	restaurant_menu "github.com/opst/foodfab/cmd/food/subcommands/restaurant/menu"
	restaurant_rm "github.com/opst/foodfab/cmd/food/subcommands/restaurant/rm"
	restaurant_show "github.com/opst/foodfab/cmd/food/subcommands/restaurant/show"
	"github.com/youta-t/flarc"
)

func New() (flarc.Command, error) {
	find, err := restaurant_find.New()
	if err != nil {
		return nil, err
	}
	cuisines, err := restaurant_find.NewCuisines()
	if err != nil {
		return nil, err
	}
	show, err := restaurant_show.New()
	if err != nil {
		return nil, err
	}
	create, err := restaurant_create.New()
	if err != nil {
		return nil, err
	}
	update, err := restaurant_create.NewUpdate()
	if err != nil {
		return nil, err
	}
	rm, err := restaurant_rm.New()
	if err != nil {
		return nil, err
	}
	menu, err := restaurant_menu.New()
	if err != nil {
		return nil, err
	}

	return flarc.NewCommandGroup(
		"Browse and manage restaurants.",
		struct{}{},
		flarc.WithSubcommand("find", find),
		flarc.WithSubcommand("cuisines", cuisines),
		flarc.WithSubcommand("show", show),
		flarc.WithSubcommand("create", create),
		flarc.WithSubcommand("update", update),
		flarc.WithSubcommand("rm", rm),
		flarc.WithSubcommand("menu", menu),
	)
}
