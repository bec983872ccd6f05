package rest_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	cerr "github.com/opst/foodfab/cmd/food/errors"
	"github.com/opst/foodfab/cmd/food/rest"
	apierr "github.com/opst/foodfab/pkg/api/types/errors"
	"github.com/opst/foodfab/pkg/api/types/users"
	"github.com/opst/foodfab/pkg/utils/try"
)

func withToken(token string) rest.Option {
	return rest.WithTokenSource(func() string { return token })
}

func TestLogin(t *testing.T) {
	backend := newFakeBackend(t)
	backend.Api.POST("/auth/login", func(c echo.Context) error {
		cred := new(users.Credentials)
		if err := c.Bind(cred); err != nil {
			return apierr.BadRequest("broken body", err)
		}
		if cred.Email == "locked@example.com" {
			return apierr.Unauthorized("account is locked")
		}
		if cred.Password != "secret" {
			return c.JSONBlob(http.StatusUnauthorized, []byte(`"Invalid email or password"`))
		}
		return c.JSONBlob(http.StatusOK, []byte(`{
			"token": "jwt-token",
			"user": {"id": 7, "username": "alice", "email": "alice@example.com", "role": "Customer"}
		}`))
	})
	testee := backend.start(t)

	t.Run("when credentials are right, it returns token and user", func(t *testing.T) {
		actual := try.To(testee.Login(
			context.Background(),
			users.Credentials{Email: "alice@example.com", Password: "secret"},
		)).OrFatal(t)

		expected := users.LoginResponse{
			Token: "jwt-token",
			User:  users.User{Id: "7", Username: "alice", Email: "alice@example.com", Role: users.RoleCustomer},
		}
		if actual.Token != expected.Token || !actual.User.Equal(expected.User) {
			t.Errorf("(actual, expected) = (%+v, %+v)", actual, expected)
		}
	})

	t.Run("when credentials are wrong, it returns error with status 401 and server's message", func(t *testing.T) {
		_, err := testee.Login(
			context.Background(),
			users.Credentials{Email: "alice@example.com", Password: "wrong"},
		)
		var cuiErr cerr.CUIError
		if !errors.As(err, &cuiErr) || cuiErr.StatusCode() != http.StatusUnauthorized {
			t.Fatalf("unexpected error: %v", err)
		}
		expected := "login is rejected. check your email and password\nInvalid email or password"
		if err.Error() != expected {
			t.Errorf("message: (actual, expected) = (%q, %q)", err.Error(), expected)
		}
	})

	t.Run("when server rejects with reason and advice, it returns error with them", func(t *testing.T) {
		_, err := testee.Login(
			context.Background(),
			users.Credentials{Email: "locked@example.com", Password: "secret"},
		)
		if code, ok := cerr.StatusOf(err); !ok || code != http.StatusUnauthorized {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.Contains(err.Error(), "unauthorized") || !strings.Contains(err.Error(), "account is locked") {
			t.Errorf("message does not include server's reason: %s", err.Error())
		}
	})
}

func TestRegister(t *testing.T) {
	t.Run("when server returns the user, it returns that", func(t *testing.T) {
		backend := newFakeBackend(t)
		backend.Api.POST("/auth/register", func(c echo.Context) error {
			reg := new(users.Registration)
			if err := c.Bind(reg); err != nil {
				return apierr.BadRequest("broken body", err)
			}
			return c.JSON(http.StatusCreated, users.User{Id: "8", Username: reg.Username, Email: reg.Email, Role: reg.Role})
		})
		testee := backend.start(t)

		reg := users.Registration{Username: "bob", Email: "bob@example.com", Password: "pw", Role: users.RoleRestaurantOwner}
		actual := try.To(testee.Register(context.Background(), reg)).OrFatal(t)
		if actual.Id != "8" || actual.Role != users.RoleRestaurantOwner {
			t.Errorf("registered: %+v", actual)
		}

		sent := new(users.Registration)
		if err := json.Unmarshal(backend.Received()[0].Body, sent); err != nil {
			t.Fatal(err)
		}
		if *sent != reg {
			t.Errorf("sent: (actual, expected) = (%+v, %+v)", sent, reg)
		}
	})

	t.Run("when server returns no body, it returns the user as registered", func(t *testing.T) {
		backend := newFakeBackend(t)
		backend.Api.POST("/auth/register", func(c echo.Context) error {
			return c.NoContent(http.StatusOK)
		})
		testee := backend.start(t)

		actual := try.To(testee.Register(
			context.Background(),
			users.Registration{Username: "bob", Email: "bob@example.com", Password: "pw", Role: users.RoleCustomer},
		)).OrFatal(t)
		expected := users.User{Username: "bob", Email: "bob@example.com", Role: users.RoleCustomer}
		if !actual.Equal(expected) {
			t.Errorf("(actual, expected) = (%+v, %+v)", actual, expected)
		}
	})

	t.Run("when server rejects, it returns error", func(t *testing.T) {
		backend := newFakeBackend(t)
		backend.Api.POST("/auth/register", func(c echo.Context) error {
			return apierr.Conflict("email is already registered")
		})
		testee := backend.start(t)

		_, err := testee.Register(context.Background(), users.Registration{Email: "alice@example.com"})
		if code, ok := cerr.StatusOf(err); !ok || code != http.StatusConflict {
			t.Errorf("unexpected error: %v", err)
		}
	})

	t.Run("when server fails, it returns error without server internals", func(t *testing.T) {
		backend := newFakeBackend(t)
		backend.Api.POST("/auth/register", func(c echo.Context) error {
			return apierr.InternalServerError(errors.New("db is down"))
		})
		testee := backend.start(t)

		_, err := testee.Register(context.Background(), users.Registration{Email: "alice@example.com"})
		if code, ok := cerr.StatusOf(err); !ok || code != http.StatusInternalServerError {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.Contains(err.Error(), "unexpected error") {
			t.Errorf("message does not include server's reason: %s", err.Error())
		}
		if strings.Contains(err.Error(), "db is down") {
			t.Errorf("message leaks the cause: %s", err.Error())
		}
	})
}
