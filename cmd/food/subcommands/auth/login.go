// Package auth holds commands to sign in, sign up and sign out.
package auth

import (
	"context"
	"errors"
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

type LoginFlags struct {
	Email    string `flag:"email" alias:"e" help:"email to sign in with. Prompted when omitted."`
	Password string `flag:"password" help:"password. Prompted without echo when omitted."`
}

func NewLogin() (flarc.Command, error) {
	return flarc.NewCommand(
		"Sign in to the food-delivery backend.",
		LoginFlags{},
		flarc.Args{},
		common.NewTask(LoginTask(nil)),
		flarc.WithDescription(`
Sign in with email and password.

The token is kept for the profile until "food logout".
`),
	)
}

// LoginTask builds the task of "food login".
//
// When prompter is nil, it prompts on stdin/stderr of the command line.
func LoginTask(prompter Prompter) common.Task[LoginFlags] {
	return func(
		ctx context.Context,
		logger *log.Logger,
		_ env.FoodEnv,
		_ frest.FoodClient,
		sess *session.Session,
		cl flarc.Commandline[LoginFlags],
		_ []any,
	) error {
		p := prompter
		if p == nil {
			p = NewPrompter(cl.Stdin(), cl.Stderr())
		}

		flags := cl.Flags()
		email := strings.TrimSpace(flags.Email)
		if email == "" {
			e, err := p.Ask("Email: ")
			if err != nil {
				return fmt.Errorf("%w: failed to read email", err)
			}
			email = e
		}
		if email == "" {
			return fmt.Errorf("%w: email is required", flarc.ErrUsage)
		}

		password := flags.Password
		if password == "" {
			pw, err := p.AskSecret("Password: ")
			if err != nil {
				return fmt.Errorf("%w: failed to read password", err)
			}
			password = pw
		}
		if password == "" {
			return fmt.Errorf("%w: password is required", flarc.ErrUsage)
		}

		u, err := sess.Login(ctx, users.Credentials{Email: email, Password: password})
		if err != nil {
			if aerr := new(session.AuthError); errors.As(err, &aerr) {
				return fmt.Errorf("%w. Check your email and password", err)
			}
			return err
		}

		logger.Printf("signed in as %s (%s)", u.Username, u.Role)
		return nil
	}
}
