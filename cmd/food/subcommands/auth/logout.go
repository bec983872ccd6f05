package auth

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/opst/foodfab/cmd/food/env"
	frest "github.com/opst/foodfab/cmd/food/rest"
	"github.com/opst/foodfab/cmd/food/subcommands/common"
	"github.com/opst/foodfab/pkg/api/types/users"
	"github.com/opst/foodfab/pkg/session"
	"github.com/youta-t/flarc"
)

func NewLogout() (flarc.Command, error) {
	return flarc.NewCommand(
		"Sign out. The saved token is discarded.",
		struct{}{},
		flarc.Args{},
		common.NewTask(LogoutTask()),
	)
}

func LogoutTask() common.Task[struct{}] {
	return func(
		ctx context.Context,
		logger *log.Logger,
		_ env.FoodEnv,
		_ frest.FoodClient,
		sess *session.Session,
		cl flarc.Commandline[struct{}],
		_ []any,
	) error {
		if !sess.IsAuthenticated() {
			logger.Println("not signed in")
			return nil
		}
		if err := sess.Logout(); err != nil {
			return err
		}
		logger.Println("signed out")
		return nil
	}
}

// Identity is the output of "food whoami".
type Identity struct {
	users.User
	ExpiresAt *time.Time `json:"expiresAt,omitempty"`
}

func NewWhoami() (flarc.Command, error) {
	return flarc.NewCommand(
		"Show the signed-in user.",
		struct{}{},
		flarc.Args{},
		common.NewTask(WhoamiTask(time.Now)),
	)
}

func WhoamiTask(now func() time.Time) common.Task[struct{}] {
	return func(
		ctx context.Context,
		logger *log.Logger,
		_ env.FoodEnv,
		_ frest.FoodClient,
		sess *session.Session,
		cl flarc.Commandline[struct{}],
		_ []any,
	) error {
		if err := sess.Require(); err != nil {
			return err
		}

		id := Identity{User: *sess.User()}
		if exp, ok := sess.ExpiresAt(); ok {
			id.ExpiresAt = &exp
			if exp.Before(now()) {
				logger.Printf("token has expired at %s. try \"food login\" again", exp.Format(time.RFC3339))
			}
		}

		enc := json.NewEncoder(cl.Stdout())
		enc.SetIndent("", "    ")
		return enc.Encode(id)
	}
}
