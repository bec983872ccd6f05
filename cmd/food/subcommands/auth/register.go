package auth

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"github.com/opst/foodfab/cmd/food/env"
	frest "github.com/opst/foodfab/cmd/food/rest"
	"github.com/opst/foodfab/cmd/food/subcommands/common"
	"github.com/opst/foodfab/pkg/api/types/users"
	"github.com/opst/foodfab/pkg/session"
	"github.com/youta-t/flarc"
)

type RegisterFlags struct {
	Username string `flag:"username" alias:"u" help:"name shown to others. Required."`
	Email    string `flag:"email" alias:"e" help:"email to sign in with. Required."`
	Role     string `flag:"role" metavar:"Customer|RestaurantOwner|Admin" help:"role of the new user."`
	Password string `flag:"password" help:"password. Prompted without echo when omitted."`
}

func NewRegister() (flarc.Command, error) {
	return flarc.NewCommand(
		"Sign up a new user.",
		RegisterFlags{Role: string(users.RoleCustomer)},
		flarc.Args{},
		common.NewTask(RegisterTask(nil)),
		flarc.WithDescription(`
Sign up a new user, and print the user as JSON.

It does not sign in. Run "food login" after that.
`),
	)
}

func parseRole(s string) (users.Role, error) {
	for _, r := range []users.Role{users.RoleCustomer, users.RoleRestaurantOwner, users.RoleAdmin} {
		if strings.EqualFold(string(r), s) {
			return r, nil
		}
	}
	return "", fmt.Errorf("%w: unknown role: %s", flarc.ErrUsage, s)
}

func RegisterTask(prompter Prompter) common.Task[RegisterFlags] {
	return func(
		ctx context.Context,
		logger *log.Logger,
		_ env.FoodEnv,
		_ frest.FoodClient,
		sess *session.Session,
		cl flarc.Commandline[RegisterFlags],
		_ []any,
	) error {
		flags := cl.Flags()
		username := strings.TrimSpace(flags.Username)
		email := strings.TrimSpace(flags.Email)
		if username == "" || email == "" {
			return fmt.Errorf("%w: --username and --email are required", flarc.ErrUsage)
		}
		role, err := parseRole(flags.Role)
		if err != nil {
			return err
		}

		password := flags.Password
		if password == "" {
			p := prompter
			if p == nil {
				p = NewPrompter(cl.Stdin(), cl.Stderr())
			}
			pw, err := p.AskSecret("Password: ")
			if err != nil {
				return fmt.Errorf("%w: failed to read password", err)
			}
			confirm, err := p.AskSecret("Password (again): ")
			if err != nil {
				return fmt.Errorf("%w: failed to read password", err)
			}
			if pw != confirm {
				return fmt.Errorf("%w: passwords do not match", flarc.ErrUsage)
			}
			password = pw
		}
		if password == "" {
			return fmt.Errorf("%w: password is required", flarc.ErrUsage)
		}

		u, err := sess.Register(ctx, users.Registration{
			Username: username,
			Email:    email,
			Password: password,
			Role:     role,
		})
		if err != nil {
			return err
		}

		enc := json.NewEncoder(cl.Stdout())
		enc.SetIndent("", "    ")
		if err := enc.Encode(u); err != nil {
			return err
		}
		logger.Printf("registered %s. run \"food login\" to sign in", u.Username)
		return nil
	}
}
