package order

import (
	order_cancel "github.com/opst/foodfab/cmd/food/subcommands/order/cancel"
	order_compose "github.com/opst/foodfab/cmd/food/subcommands/order/compose"
	order_create "github.com/opst/foodfab/cmd/food/subcommands/order/create"
	order_find "github.com/opst/foodfab/cmd/food/subcommands/order/find"
	order_show "github.com/opst/foodfab/cmd/food/subcommands/order/show"
	order_status "github.com/opst/foodfab/cmd/food/subcommands/order/status"
	"github.com/youta-t/flarc"
)

func New() (flarc.Command, error) {
	create, err := order_create.New()
	if err != nil {
		return nil, err
	}
	compose, err := order_compose.New()
	if err != nil {
		return nil, err
	}
	show, err := order_show.New()
	if err != nil {
		return nil, err
	}
	find, err := order_find.New()
	if err != nil {
		return nil, err
	}
	cancel, err := order_cancel.New()
	if err != nil {
		return nil, err
	}
	status, err := order_status.New()
	if err != nil {
		return nil, err
	}

	return flarc.NewCommandGroup(
		"Place and track orders.",
		struct{}{},
		flarc.WithSubcommand("create", create),
		flarc.WithSubcommand("compose", compose),
		flarc.WithSubcommand("show", show),
		flarc.WithSubcommand("find", find),
		flarc.WithSubcommand("cancel", cancel),
		flarc.WithSubcommand("status", status),
	)
}
