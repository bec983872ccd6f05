package auth_test

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/go-cmp/cmp"
	"github.com/opst/foodfab/cmd/food/env"
	"github.com/opst/foodfab/cmd/food/rest/mock"
	"github.com/opst/foodfab/cmd/food/subcommands/auth"
	"github.com/opst/foodfab/cmd/food/subcommands/internal/commandline"
	"github.com/opst/foodfab/cmd/food/subcommands/internal/sessions"
	"github.com/opst/foodfab/cmd/food/subcommands/logger"
	"github.com/opst/foodfab/pkg/api/types/users"
	"github.com/opst/foodfab/pkg/session"
	"github.com/youta-t/flarc"
)

type fakePrompter struct {
	answers []string
	asked   []string
}

func (f *fakePrompter) next(prompt string) (string, error) {
	f.asked = append(f.asked, prompt)
	if len(f.answers) == 0 {
		return "", errors.New("no more answers")
	}
	a := f.answers[0]
	f.answers = f.answers[1:]
	return a, nil
}

func (f *fakePrompter) Ask(prompt string) (string, error) {
	return f.next(prompt)
}

func (f *fakePrompter) AskSecret(prompt string) (string, error) {
	return f.next(prompt)
}

var alice = users.User{Id: "1", Username: "alice", Email: "alice@example.com", Role: users.RoleCustomer}

func TestLogin(t *testing.T) {
	type When struct {
		flags    auth.LoginFlags
		answers  []string
		loginErr error
	}
	type Then struct {
		cred      *users.Credentials
		asked     []string
		err       bool
		authError bool
		signedIn  bool
	}

	theory := func(when When, then Then) func(*testing.T) {
		return func(t *testing.T) {
			client := mock.New(t)
			client.Impl.Login = func(ctx context.Context, cred users.Credentials) (*users.LoginResponse, error) {
				if when.loginErr != nil {
					return nil, when.loginErr
				}
				return &users.LoginResponse{Token: "tok", User: alice}, nil
			}
			sess := sessions.SignedOut(client)
			prompter := &fakePrompter{answers: when.answers}

			testee := auth.LoginTask(prompter)
			err := testee(
				context.Background(), logger.Null(), *env.New(), client, sess,
				commandline.MockCommandline[auth.LoginFlags]{
					Fullname_: "food login",
					Flags_:    when.flags,
				},
				[]any{},
			)

			if (err != nil) != then.err {
				t.Fatalf("unexpected error: %v", err)
			}
			if then.authError {
				var aerr *session.AuthError
				if !errors.As(err, &aerr) {
					t.Errorf("error is not AuthError: %v", err)
				}
			}
			if then.cred == nil {
				if len(client.Calls.Login) != 0 {
					t.Errorf("login is called: %v", client.Calls.Login)
				}
			} else if diff := cmp.Diff([]users.Credentials{*then.cred}, client.Calls.Login); diff != "" {
				t.Errorf("credentials: (-expected, +actual)\n%s", diff)
			}
			if diff := cmp.Diff(then.asked, prompter.asked); diff != "" {
				t.Errorf("prompts: (-expected, +actual)\n%s", diff)
			}
			if sess.IsAuthenticated() != then.signedIn {
				t.Errorf("signed in: (actual, expected) = (%v, %v)", sess.IsAuthenticated(), then.signedIn)
			}
		}
	}

	t.Run("when email and password are passed by flags, it signs in without prompts", theory(
		When{flags: auth.LoginFlags{Email: "alice@example.com", Password: "secret"}},
		Then{
			cred:     &users.Credentials{Email: "alice@example.com", Password: "secret"},
			asked:    nil,
			signedIn: true,
		},
	))

	t.Run("when they are omitted, it prompts them", theory(
		When{answers: []string{"alice@example.com", "secret"}},
		Then{
			cred:     &users.Credentials{Email: "alice@example.com", Password: "secret"},
			asked:    []string{"Email: ", "Password: "},
			signedIn: true,
		},
	))

	t.Run("when the backend rejects, it returns AuthError and stays signed out", theory(
		When{
			flags:    auth.LoginFlags{Email: "alice@example.com", Password: "wrong"},
			loginErr: errors.New("401 Unauthorized"),
		},
		Then{
			cred:      &users.Credentials{Email: "alice@example.com", Password: "wrong"},
			err:       true,
			authError: true,
		},
	))

	t.Run("when email is empty, it is a usage error without network", theory(
		When{answers: []string{"", "secret"}},
		Then{err: true, asked: []string{"Email: "}},
	))
}

func TestRegister(t *testing.T) {
	t.Run("when flags are complete, it registers and prints the user", func(t *testing.T) {
		client := mock.New(t)
		client.Impl.Register = func(ctx context.Context, reg users.Registration) (*users.User, error) {
			return &users.User{Id: "9", Username: reg.Username, Email: reg.Email, Role: reg.Role}, nil
		}
		sess := sessions.SignedOut(client)
		stdout := new(strings.Builder)
		prompter := &fakePrompter{answers: []string{"pw", "pw"}}

		err := auth.RegisterTask(prompter)(
			context.Background(), logger.Null(), *env.New(), client, sess,
			commandline.MockCommandline[auth.RegisterFlags]{
				Stdout_: stdout,
				Flags_:  auth.RegisterFlags{Username: "bob", Email: "bob@example.com", Role: "restaurantowner"},
			},
			[]any{},
		)
		if err != nil {
			t.Fatal(err)
		}

		expected := []users.Registration{
			{Username: "bob", Email: "bob@example.com", Password: "pw", Role: users.RoleRestaurantOwner},
		}
		if diff := cmp.Diff(expected, client.Calls.Register); diff != "" {
			t.Errorf("(-expected, +actual)\n%s", diff)
		}

		var printed users.User
		if err := json.Unmarshal([]byte(stdout.String()), &printed); err != nil {
			t.Fatal(err)
		}
		if printed.Id != "9" || printed.Username != "bob" {
			t.Errorf("printed: %+v", printed)
		}
		if sess.IsAuthenticated() {
			t.Error("signed in after register")
		}
	})

	t.Run("when passwords do not match, it fails without network", func(t *testing.T) {
		client := mock.New(t)
		err := auth.RegisterTask(&fakePrompter{answers: []string{"pw", "px"}})(
			context.Background(), logger.Null(), *env.New(), client, sessions.SignedOut(client),
			commandline.MockCommandline[auth.RegisterFlags]{
				Flags_: auth.RegisterFlags{Username: "bob", Email: "bob@example.com", Role: "Customer"},
			},
			[]any{},
		)
		if !errors.Is(err, flarc.ErrUsage) {
			t.Errorf("unexpected error: %v", err)
		}
	})

	t.Run("when role is unknown, it is a usage error", func(t *testing.T) {
		client := mock.New(t)
		err := auth.RegisterTask(&fakePrompter{})(
			context.Background(), logger.Null(), *env.New(), client, sessions.SignedOut(client),
			commandline.MockCommandline[auth.RegisterFlags]{
				Flags_: auth.RegisterFlags{Username: "bob", Email: "bob@example.com", Role: "Chef", Password: "pw"},
			},
			[]any{},
		)
		if !errors.Is(err, flarc.ErrUsage) {
			t.Errorf("unexpected error: %v", err)
		}
	})

	t.Run("when the backend rejects, it returns AuthError", func(t *testing.T) {
		client := mock.New(t)
		client.Impl.Register = func(ctx context.Context, reg users.Registration) (*users.User, error) {
			return nil, errors.New("email is taken")
		}
		err := auth.RegisterTask(&fakePrompter{})(
			context.Background(), logger.Null(), *env.New(), client, sessions.SignedOut(client),
			commandline.MockCommandline[auth.RegisterFlags]{
				Flags_: auth.RegisterFlags{Username: "bob", Email: "bob@example.com", Role: "Customer", Password: "pw"},
			},
			[]any{},
		)
		var aerr *session.AuthError
		if !errors.As(err, &aerr) || aerr.Op != "register" {
			t.Errorf("unexpected error: %v", err)
		}
	})
}

func TestLogout(t *testing.T) {
	client := mock.New(t)
	sess := sessions.SignedIn(t, client, "tok", alice)

	err := auth.LogoutTask()(
		context.Background(), logger.Null(), *env.New(), client, sess,
		commandline.MockCommandline[struct{}]{}, []any{},
	)
	if err != nil {
		t.Fatal(err)
	}
	if sess.IsAuthenticated() || sess.User() != nil {
		t.Error("still signed in")
	}
}

func TestWhoami(t *testing.T) {
	t.Run("when signed in, it prints the user and expiry", func(t *testing.T) {
		exp := time.Date(2030, 1, 2, 3, 4, 5, 0, time.UTC)
		token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
			Subject:   "1",
			ExpiresAt: jwt.NewNumericDate(exp),
		}).SignedString([]byte("key"))
		if err != nil {
			t.Fatal(err)
		}

		client := mock.New(t)
		sess := sessions.SignedIn(t, client, token, alice)
		stdout := new(strings.Builder)

		err = auth.WhoamiTask(func() time.Time { return exp.Add(-time.Hour) })(
			context.Background(), logger.Null(), *env.New(), client, sess,
			commandline.MockCommandline[struct{}]{Stdout_: stdout}, []any{},
		)
		if err != nil {
			t.Fatal(err)
		}

		var actual auth.Identity
		if err := json.Unmarshal([]byte(stdout.String()), &actual); err != nil {
			t.Fatal(err)
		}
		if !actual.User.Equal(alice) {
			t.Errorf("user: (actual, expected) = (%+v, %+v)", actual.User, alice)
		}
		if actual.ExpiresAt == nil || !actual.ExpiresAt.Equal(exp) {
			t.Errorf("expiresAt: %v", actual.ExpiresAt)
		}
	})

	t.Run("when signed out, it returns ErrNotAuthenticated", func(t *testing.T) {
		client := mock.New(t)
		err := auth.WhoamiTask(time.Now)(
			context.Background(), logger.Null(), *env.New(), client, sessions.SignedOut(client),
			commandline.MockCommandline[struct{}]{}, []any{},
		)
		if !errors.Is(err, session.ErrNotAuthenticated) {
			t.Errorf("unexpected error: %v", err)
		}
	})
}
