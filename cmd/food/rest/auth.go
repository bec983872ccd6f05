package rest

import (
	"context"
	"errors"
	"net/http"

	"github.com/opst/foodfab/pkg/api/types/users"
)

func (c *client) Register(ctx context.Context, reg users.Registration) (*users.User, error) {
	u, err := sendJson[users.User](ctx, c, http.MethodPost, reg, MessageFor{
		Status4xx: "registration is rejected",
		Status5xx: "server error",
	}, "auth", "register")
	if errors.Is(err, ErrEmptyPayload) {
		return &users.User{Username: reg.Username, Email: reg.Email, Role: reg.Role}, nil
	}
	return u, err
}

func (c *client) Login(ctx context.Context, cred users.Credentials) (*users.LoginResponse, error) {
	return sendJson[users.LoginResponse](ctx, c, http.MethodPost, cred, MessageFor{
		Status4xx: "login is rejected. check your email and password",
		Status5xx: "server error",
	}, "auth", "login")
}
