package common

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/opst/foodfab/cmd/food/config/profiles"
	"github.com/opst/foodfab/cmd/food/env"
	frest "github.com/opst/foodfab/cmd/food/rest"
	"github.com/opst/foodfab/pkg/session"
	"github.com/rs/zerolog"
	"github.com/youta-t/flarc"
)

type FoodTaskWithCommonFlag[T any] func(
	ctx context.Context,
	logger *log.Logger,
	commonFlag CommonFlags,
	cl flarc.Commandline[T],
	params []any,
) error

func NewTaskWithCommonFlag[T any](task FoodTaskWithCommonFlag[T]) flarc.Task[T] {
	return func(ctx context.Context, cl flarc.Commandline[T], pos []any) error {
		var commonFlag CommonFlags
		found := false
		newpos := make([]any, 0, len(pos))
		for _, p := range pos {
			switch v := p.(type) {
			case CommonFlags:
				found = true
				commonFlag = v
			default:
				newpos = append(newpos, p)
			}
		}
		if !found {
			return errors.New("programming error: common flags not found")
		}

		logger := log.New(cl.Stderr(), "", log.LstdFlags)
		logger.SetPrefix(fmt.Sprintf("[%s] ", cl.Fullname()))

		return task(
			ctx,
			logger,
			commonFlag,
			cl,
			newpos,
		)
	}
}

type Task[T any] func(
	ctx context.Context,
	logger *log.Logger,
	foodEnv env.FoodEnv,
	client frest.FoodClient,
	sess *session.Session,
	cl flarc.Commandline[T],
	params []any,
) error

// TraceLogger builds the logger tracing requests to the backend.
//
// Unless verbose, it discards everything.
func TraceLogger(w io.Writer, verbose bool) zerolog.Logger {
	if !verbose {
		return zerolog.Nop()
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: w}).
		Level(zerolog.DebugLevel).
		With().Timestamp().Logger()
}

// NewTask wraps task with loading profile, foodenv and session.
//
// The client passed to task sends the token of the session.
func NewTask[T any](task Task[T]) flarc.Task[T] {

	return NewTaskWithCommonFlag(func(
		ctx context.Context,
		logger *log.Logger,
		commonFlag CommonFlags,
		cl flarc.Commandline[T],
		params []any,
	) error {
		profile, err := profiles.LoadProfileStore(commonFlag.ProfileStore)
		if err != nil {
			if errors.Is(err, os.ErrNotExist) {
				return fmt.Errorf(
					"%w: foodprofile store (%s) is not found. Please try `food init` first",
					err, commonFlag.ProfileStore,
				)
			}
			return fmt.Errorf(
				"%w: failed to load foodprofile store (%s)",
				err, commonFlag.ProfileStore,
			)
		}
		prof, ok := profile[commonFlag.Profile]
		if !ok {
			return fmt.Errorf(
				"profile '%s' not found in the profile store (%s)",
				commonFlag.Profile, commonFlag.ProfileStore,
			)
		}

		e, err := env.LoadFoodEnv(commonFlag.Env)
		if err != nil {
			return fmt.Errorf("%w: failed to load foodenv (%s)", err, commonFlag.Env)
		}

		var sess *session.Session
		client, err := frest.NewClient(
			prof,
			frest.WithTokenSource(func() string { return sess.Token() }),
			frest.WithLogger(TraceLogger(cl.Stderr(), commonFlag.Verbose)),
		)
		if err != nil {
			return fmt.Errorf(
				"%w: failed to create food client. Your foodprofile (%s in %s) can be broken.\n\nRemove it and try `food init` again",
				err, commonFlag.Profile, commonFlag.ProfileStore,
			)
		}

		sess = session.New(session.NewFileStore(commonFlag.SessionPath()), client)
		if err := sess.Hydrate(); err != nil {
			logger.Printf("saved session is broken. you are signed out: %s", err)
			if err := sess.Logout(); err != nil {
				return fmt.Errorf("%w: failed to discard broken session", err)
			}
		}

		return task(ctx, logger, *e, client, sess, cl, params)
	})
}
