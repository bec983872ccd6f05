package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path"

	"github.com/opst/foodfab/cmd/food/subcommands/admin"
	"github.com/opst/foodfab/cmd/food/subcommands/auth"
	"github.com/opst/foodfab/cmd/food/subcommands/common"
	subinit "github.com/opst/foodfab/cmd/food/subcommands/init"
	"github.com/opst/foodfab/cmd/food/subcommands/logger"
	suborder "github.com/opst/foodfab/cmd/food/subcommands/order"
	subrestaurant "github.com/opst/foodfab/cmd/food/subcommands/restaurant"
	subver "github.com/opst/foodfab/cmd/food/subcommands/version"
	"github.com/opst/foodfab/pkg/utils/try"
	"github.com/youta-t/flarc"
)

func main() {
	name := path.Base(os.Args[0])
	logger := logger.Default()
	logger.SetPrefix(fmt.Sprintf("[%s] ", name))

	ctx, cancel := signal.NotifyContext(
		context.Background(), os.Interrupt, os.Kill,
	)
	defer cancel()

	cf := try.To(common.Flags(".")).OrFatal(logger)
	init := try.To(subinit.New()).OrFatal(logger)
	register := try.To(auth.NewRegister()).OrFatal(logger)
	login := try.To(auth.NewLogin()).OrFatal(logger)
	logout := try.To(auth.NewLogout()).OrFatal(logger)
	whoami := try.To(auth.NewWhoami()).OrFatal(logger)
	restaurant := try.To(subrestaurant.New()).OrFatal(logger)
	order := try.To(suborder.New()).OrFatal(logger)
	adm := try.To(admin.New()).OrFatal(logger)
	version := try.To(subver.New()).OrFatal(logger)

	food := try.To(
		flarc.NewCommandGroup(
			"Food delivery commandline interface",
			cf,
			flarc.WithSubcommand("init", init),
			flarc.WithSubcommand("register", register),
			flarc.WithSubcommand("login", login),
			flarc.WithSubcommand("logout", logout),
			flarc.WithSubcommand("whoami", whoami),
			flarc.WithSubcommand("restaurant", restaurant),
			flarc.WithSubcommand("order", order),
			flarc.WithSubcommand("admin", adm),
			flarc.WithSubcommand("version", version),
		),
	).OrFatal(logger)

	os.Exit(flarc.Run(ctx, food, flarc.WithHelp(true)))
}
