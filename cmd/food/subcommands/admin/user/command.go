package user

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/opst/foodfab/cmd/food/env"
	frest "github.com/opst/foodfab/cmd/food/rest"
	"github.com/opst/foodfab/cmd/food/subcommands/common"
	order_create "github.com/opst/foodfab/cmd/food/subcommands/order/create"
	"github.com/opst/foodfab/pkg/api/types/ids"
	"github.com/opst/foodfab/pkg/api/types/users"
	"github.com/opst/foodfab/pkg/session"
	"github.com/youta-t/flarc"
)

const ARG_USER_ID = "USER_ID"

type Flags struct {
	Role string `flag:"role" metavar:"all|Customer|RestaurantOwner|Admin" help:"list users in this role only."`
}

func New() (flarc.Command, error) {
	ls, err := flarc.NewCommand(
		"List users.",
		Flags{Role: "all"},
		flarc.Args{},
		common.NewTask(ListTask()),
	)
	if err != nil {
		return nil, err
	}
	rm, err := flarc.NewCommand(
		"Delete the user for the specified User Id.",
		struct{}{},
		flarc.Args{
			{
				Name: ARG_USER_ID, Required: true,
				Help: "Id of the user to be deleted.",
			},
		},
		common.NewTask(RemoveTask()),
	)
	if err != nil {
		return nil, err
	}

	return flarc.NewCommandGroup(
		"Manage users. Admin only.",
		struct{}{},
		flarc.WithSubcommand("ls", ls),
		flarc.WithSubcommand("rm", rm),
	)
}

func ListTask() common.Task[Flags] {
	return func(
		ctx context.Context,
		logger *log.Logger,
		_ env.FoodEnv,
		client frest.FoodClient,
		sess *session.Session,
		cl flarc.Commandline[Flags],
		_ []any,
	) error {
		if err := sess.Require(users.RoleAdmin); err != nil {
			return err
		}
		role := cl.Flags().Role

		found, err := client.AdminUsers(ctx)
		if err != nil {
			return err
		}
		ret := make([]users.User, 0, len(found))
		for _, u := range found {
			if role != "" && role != "all" && !strings.EqualFold(string(u.Role), role) {
				continue
			}
			ret = append(ret, u)
		}
		return order_create.Print(cl.Stdout(), ret)
	}
}

func RemoveTask() common.Task[struct{}] {
	return func(
		ctx context.Context,
		logger *log.Logger,
		_ env.FoodEnv,
		client frest.FoodClient,
		sess *session.Session,
		cl flarc.Commandline[struct{}],
		_ []any,
	) error {
		if err := sess.Require(users.RoleAdmin); err != nil {
			return err
		}
		userId := ids.ID(cl.Args()[ARG_USER_ID][0])
		if userId == sess.User().Id {
			return fmt.Errorf("%w: you cannot delete yourself", flarc.ErrUsage)
		}
		if err := client.AdminDeleteUser(ctx, userId); err != nil {
			return err
		}
		logger.Printf("deleted User Id:%v", userId)
		return nil
	}
}
