package admin

import (
	admin_dashboard "github.com/opst/foodfab/cmd/food/subcommands/admin/dashboard"
	admin_order "github.com/opst/foodfab/cmd/food/subcommands/admin/order"
	admin_restaurant "github.com/opst/foodfab/cmd/food/subcommands/admin/restaurant"
	admin_user "github.com/opst/foodfab/cmd/food/subcommands/admin/user"
	"github.com/youta-t/flarc"
)

func New() (flarc.Command, error) {
	dashboard, err := admin_dashboard.New()
	if err != nil {
		return nil, err
	}
	user, err := admin_user.New()
	if err != nil {
		return nil, err
	}
	restaurant, err := admin_restaurant.New()
	if err != nil {
		return nil, err
	}
	order, err := admin_order.New()
	if err != nil {
		return nil, err
	}

	return flarc.NewCommandGroup(
		"Administrate the service. Admin only.",
		struct{}{},
		flarc.WithSubcommand("dashboard", dashboard),
		flarc.WithSubcommand("user", user),
		flarc.WithSubcommand("restaurant", restaurant),
		flarc.WithSubcommand("order", order),
	)
}
